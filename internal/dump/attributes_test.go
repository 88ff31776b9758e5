package dump

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/vadumpcaps/internal/document"
	"github.com/jacoelho/vadumpcaps/internal/va"
)

func decodeCompact(t *testing.T, attrib va.ConfigAttrib) string {
	t.Helper()

	var buf bytes.Buffer
	w := document.NewWriter(&buf, document.Options{Compact: true})
	decodeAttribute(w, attrib)
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return buf.String()
}

func TestDecodeAttribute(t *testing.T) {
	tests := []struct {
		name   string
		attrib va.ConfigAttrib
		want   string
	}{
		{
			name:   "rate control flags in table order",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribRateControl, Value: 0x441},
			want:   `"rate_control_modes":["NONE","ICQ","QVBR",],`,
		},
		{
			name:   "rate control unknown bits dropped",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribRateControl, Value: 0x80000000},
			want:   `"rate_control_modes":[],`,
		},
		{
			name:   "rt formats",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribRTFormat, Value: 0x105},
			want:   `"rt_formats":["YUV420","YUV444","YUV420_10",],`,
		},
		{
			name:   "packed headers",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncPackedHeaders, Value: 0x19},
			want:   `"packed_headers":["SEQUENCE","MISC","RAW_DATA",],`,
		},
		{
			name:   "max ref frames without backward list",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncMaxRefFrames, Value: 4},
			want:   `"max_ref_frames":{"list0":4,},`,
		},
		{
			name:   "max ref frames with backward list",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncMaxRefFrames, Value: 0x10002},
			want:   `"max_ref_frames":{"list0":2,"list1":1,},`,
		},
		{
			name:   "decode processing",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribDecProcessing, Value: 1},
			want:   `"decode_processing":true,`,
		},
		{
			name:   "decode jpeg rotation",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribDecJPEG, Value: 0x5},
			want:   `"decode_jpeg":{"rotation":["NONE","180",],},`,
		},
		{
			name:   "encode jpeg fields",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncJPEG, Value: 0x1 | 3<<4 | 4<<7 | 2<<11 | 2<<14},
			want: `"encode_jpeg":{"arithmatic_coding_mode":1,"progressive_dct_mode":0,` +
				`"non_interleaved_mode":0,"differential_mode":0,"max_num_components":3,` +
				`"max_num_scans":4,"max_num_huffman_tables":2,"max_num_quantization_tables":2,},`,
		},
		{
			name:   "quantization trellis",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncQuantization, Value: 1},
			want:   `"quantization":["TRELLIS_SUPPORTED",],`,
		},
		{
			name:   "roi",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncROI, Value: 8 | 1<<8 | 1<<9},
			want:   `"roi":{"num_regions":8,"rc_priority_support":1,"rc_qp_delta_support":1,},`,
		},
		{
			name:   "stats",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribStats, Value: 2 | 1<<4 | 3<<8 | 1<<11},
			want: `"stats":{"max_num_past_references":2,"max_num_future_references":1,` +
				`"num_outputs":3,"interlaced":1,},`,
		},
		{
			name:   "max frame size",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribMaxFrameSize, Value: 0x3},
			want:   `"max_frame_size":{"max_frame_size":true,"multiple_pass":true,},`,
		},
		{
			name:   "context priority",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribContextPriority, Value: 31},
			want:   `"context_priority":{"priority":31,},`,
		},
		{
			name:   "scalar count",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncMaxSlices, Value: 32},
			want:   `"max_slices":32,`,
		},
		{
			name:   "scalar boolean",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncTileSupport, Value: 1},
			want:   `"encode_tile_support":true,`,
		},
		{
			name:   "hevc features support levels",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribEncHEVCFeatures, Value: 1 | 2<<2 | 3<<28},
			want: `"enc_hevc_features":{"separate_colour_planes":"supported",` +
				`"scaling_lists":"required","amp":"not_supported","sao":"not_supported",` +
				`"pcm":"not_supported","temporal_mvp":"not_supported",` +
				`"strong_intra_smoothing":"not_supported","dependent_slices":"not_supported",` +
				`"sign_data_hiding":"not_supported","constrained_intra_pred":"not_supported",` +
				`"transform_skip":"not_supported","cu_qp_delta":"not_supported",` +
				`"weighted_prediction":"not_supported","transquant_bypass":"not_supported",` +
				`"deblocking_filter_disable":"undefined",},`,
		},
		{
			name:   "unrecognised type falls back to raw object",
			attrib: va.ConfigAttrib{Type: va.ConfigAttribType(9), Value: 0xbeef},
			want:   `"unknown":{"type":9,"value":48879,},`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeCompact(t, tc.attrib)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("decoded attribute mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
