// Package snapshot implements a capability provider backed by a YAML
// recording of a driver, so reports can be produced and tested without the
// device the recording was taken from.
package snapshot

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/jacoelho/vadumpcaps/internal/va"
)

type document struct {
	Driver            driverSection  `yaml:"driver"`
	Profiles          []profileEntry `yaml:"profiles"`
	ImageFormats      []formatEntry  `yaml:"image_formats"`
	SubpictureFormats []formatEntry  `yaml:"subpicture_formats"`
	Processing        *processing    `yaml:"processing"`
}

type driverSection struct {
	Version version `yaml:"version"`
	Vendor  string  `yaml:"vendor"`
}

type version struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

type profileEntry struct {
	Profile     int32             `yaml:"profile"`
	Entrypoints []entrypointEntry `yaml:"entrypoints"`
}

type entrypointEntry struct {
	Entrypoint     int32                `yaml:"entrypoint"`
	Attributes     []attributeEntry     `yaml:"attributes"`
	SurfaceFormats []surfaceFormatEntry `yaml:"surface_formats"`
}

type attributeEntry struct {
	Type  uint32 `yaml:"type"`
	Value uint32 `yaml:"value"`
}

type surfaceFormatEntry struct {
	RTFormat   uint32                  `yaml:"rt_format"`
	Attributes []surfaceAttributeEntry `yaml:"attributes"`
}

// surfaceAttributeEntry is one surface attribute record. Pixel format
// attributes carry the code in format; modifier list attributes carry
// modifiers; everything else uses value.
type surfaceAttributeEntry struct {
	Type      uint32    `yaml:"type"`
	Flags     uint32    `yaml:"flags"`
	Value     int64     `yaml:"value"`
	Format    va.FourCC `yaml:"format"`
	Modifiers []uint64  `yaml:"modifiers"`
}

type formatEntry struct {
	FourCC       va.FourCC `yaml:"fourcc"`
	ByteOrder    uint32    `yaml:"byte_order"`
	BitsPerPixel uint32    `yaml:"bits_per_pixel"`
	Depth        uint32    `yaml:"depth"`
	RedMask      uint32    `yaml:"red_mask"`
	GreenMask    uint32    `yaml:"green_mask"`
	BlueMask     uint32    `yaml:"blue_mask"`
	AlphaMask    uint32    `yaml:"alpha_mask"`
	Flags        uint32    `yaml:"flags"`
}

type processing struct {
	Filters              []uint32              `yaml:"filters"`
	Deinterlacing        []deinterlacingEntry  `yaml:"deinterlacing"`
	ColorBalance         []rangeCapEntry       `yaml:"color_balance"`
	TotalColorCorrection []rangeCapEntry       `yaml:"total_color_correction"`
	HDRToneMapping       []hdrCapEntry         `yaml:"hdr_tone_mapping"`
	LUT3D                []lut3dCapEntry       `yaml:"lut3d"`
	Ranges               map[uint32]rangeEntry `yaml:"ranges"`
	Pipelines            []pipelineEntry       `yaml:"pipelines"`
}

type deinterlacingEntry struct {
	Type uint32 `yaml:"type"`
}

type rangeEntry struct {
	Min     float32 `yaml:"min"`
	Max     float32 `yaml:"max"`
	Default float32 `yaml:"default"`
	Step    float32 `yaml:"step"`
}

type rangeCapEntry struct {
	Type  uint32     `yaml:"type"`
	Range rangeEntry `yaml:",inline"`
}

type hdrCapEntry struct {
	Type        uint32 `yaml:"type"`
	ToneMapping uint32 `yaml:"tone_mapping"`
}

type lut3dCapEntry struct {
	Size     uint32   `yaml:"size"`
	Stride   []uint32 `yaml:"stride"`
	BitDepth uint32   `yaml:"bit_depth"`
	Channels uint32   `yaml:"channels"`
	Mapping  uint32   `yaml:"mapping"`
}

type pipelineEntry struct {
	Filter                uint32      `yaml:"filter"`
	PipelineFlags         uint32      `yaml:"pipeline_flags"`
	FilterFlags           uint32      `yaml:"filter_flags"`
	NumForwardReferences  uint32      `yaml:"num_forward_references"`
	NumBackwardReferences uint32      `yaml:"num_backward_references"`
	InputColorStandards   []uint32    `yaml:"input_colour_standards"`
	OutputColorStandards  []uint32    `yaml:"output_colour_standards"`
	RotationFlags         uint32      `yaml:"rotation_flags"`
	BlendFlags            uint32      `yaml:"blend_flags"`
	MirrorFlags           uint32      `yaml:"mirror_flags"`
	NumAdditionalOutputs  uint32      `yaml:"num_additional_outputs"`
	InputPixelFormats     []va.FourCC `yaml:"input_pixel_formats"`
	OutputPixelFormats    []va.FourCC `yaml:"output_pixel_formats"`
	MaxInputWidth         uint32      `yaml:"max_input_width"`
	MaxInputHeight        uint32      `yaml:"max_input_height"`
	MinInputWidth         uint32      `yaml:"min_input_width"`
	MinInputHeight        uint32      `yaml:"min_input_height"`
	MaxOutputWidth        uint32      `yaml:"max_output_width"`
	MaxOutputHeight       uint32      `yaml:"max_output_height"`
	MinOutputWidth        uint32      `yaml:"min_output_width"`
	MinOutputHeight       uint32      `yaml:"min_output_height"`
}

// Load reads and parses a snapshot file.
func Load(path string) (*Display, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot %s", path)
	}

	display, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot %s", path)
	}
	return display, nil
}

// Parse decodes a YAML capability snapshot.
func Parse(data []byte) (*Display, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "decode snapshot"),
			"snapshots are YAML documents; see internal/va/snapshot/testdata for the layout")
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	return &Display{
		doc:      doc,
		nextID:   1,
		configs:  make(map[va.ConfigID]configState),
		contexts: make(map[va.ContextID]va.ConfigID),
		buffers:  make(map[va.BufferID]bufferState),
		sticky:   make(map[string]va.Status),
		queued:   make(map[string][]va.Status),
	}, nil
}

func validate(doc *document) error {
	seen := make(map[int32]bool, len(doc.Profiles))
	for _, p := range doc.Profiles {
		if seen[p.Profile] {
			return errors.Newf("duplicate profile %d", p.Profile)
		}
		seen[p.Profile] = true

		entrypoints := make(map[int32]bool, len(p.Entrypoints))
		for _, e := range p.Entrypoints {
			if entrypoints[e.Entrypoint] {
				return errors.Newf("profile %d: duplicate entrypoint %d", p.Profile, e.Entrypoint)
			}
			entrypoints[e.Entrypoint] = true
		}
	}

	if doc.Processing != nil {
		for i, l := range doc.Processing.LUT3D {
			if len(l.Stride) != 3 {
				return errors.WithHint(
					errors.Newf("lut3d entry %d: stride has %d elements", i, len(l.Stride)),
					"lookup table strides always have three elements")
			}
		}
	}
	return nil
}
