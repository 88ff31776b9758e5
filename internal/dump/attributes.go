package dump

import (
	"github.com/jacoelho/vadumpcaps/internal/document"
	"github.com/jacoelho/vadumpcaps/internal/va"
)

var rateControlModes = []va.FlagName{
	{Flag: va.RateControlNone, Name: "NONE"},
	{Flag: va.RateControlCBR, Name: "CBR"},
	{Flag: va.RateControlVBR, Name: "VBR"},
	{Flag: va.RateControlVCM, Name: "VCM"},
	{Flag: va.RateControlCQP, Name: "CQP"},
	{Flag: va.RateControlVBRConstrained, Name: "VBR_CONSTRAINED"},
	{Flag: va.RateControlICQ, Name: "ICQ"},
	{Flag: va.RateControlMB, Name: "MB"},
	{Flag: va.RateControlCFS, Name: "CFS"},
	{Flag: va.RateControlParallel, Name: "PARALLEL"},
	{Flag: va.RateControlQVBR, Name: "QVBR"},
	{Flag: va.RateControlAVBR, Name: "AVBR"},
	{Flag: va.RateControlTCBRC, Name: "TCBRC"},
}

var decodeSliceModes = []va.FlagName{
	{Flag: va.DecSliceModeNormal, Name: "NORMAL"},
	{Flag: va.DecSliceModeBase, Name: "BASE"},
}

var packedHeaders = []va.FlagName{
	{Flag: va.EncPackedHeaderSequence, Name: "SEQUENCE"},
	{Flag: va.EncPackedHeaderPicture, Name: "PICTURE"},
	{Flag: va.EncPackedHeaderSlice, Name: "SLICE"},
	{Flag: va.EncPackedHeaderMisc, Name: "MISC"},
	{Flag: va.EncPackedHeaderRawData, Name: "RAW_DATA"},
}

var interlaceModes = []va.FlagName{
	{Flag: va.EncInterlacedFrame, Name: "FRAME"},
	{Flag: va.EncInterlacedField, Name: "FIELD"},
	{Flag: va.EncInterlacedMBAFF, Name: "MBAFF"},
	{Flag: va.EncInterlacedPAFF, Name: "PAFF"},
}

var sliceStructureModes = []va.FlagName{
	{Flag: va.EncSliceStructureArbitraryRows, Name: "ARBITRARY_ROWS"},
	{Flag: va.EncSliceStructurePowerOfTwoRows, Name: "POWER_OF_TWO_ROWS"},
	{Flag: va.EncSliceStructureArbitraryMacroblocks, Name: "ARBITRARY_MACROBLOCKS"},
	{Flag: va.EncSliceStructureEqualRows, Name: "EQUAL_ROWS"},
	{Flag: va.EncSliceStructureMaxSliceSize, Name: "MAX_SLICE_SIZE"},
	{Flag: va.EncSliceStructureEqualMultiRows, Name: "EQUAL_MULTI_ROWS"},
}

var quantizationModes = []va.FlagName{
	{Flag: va.EncQuantizationTrellisSupported, Name: "TRELLIS_SUPPORTED"},
}

var intraRefreshModes = []va.FlagName{
	{Flag: va.EncIntraRefreshRollingColumn, Name: "ROLLING_COLUMN"},
	{Flag: va.EncIntraRefreshRollingRow, Name: "ROLLING_ROW"},
	{Flag: va.EncIntraRefreshAdaptive, Name: "ADAPTIVE"},
	{Flag: va.EncIntraRefreshCyclic, Name: "CYCLIC"},
	{Flag: va.EncIntraRefreshPFrame, Name: "P_FRAME"},
	{Flag: va.EncIntraRefreshBFrame, Name: "B_FRAME"},
	{Flag: va.EncIntraRefreshMultiRef, Name: "MULTI_REF"},
}

var processingRates = []va.FlagName{
	{Flag: va.ProcessingRateEncode, Name: "ENCODE"},
	{Flag: va.ProcessingRateDecode, Name: "DECODE"},
}

var feiFunctionTypes = []va.FlagName{
	{Flag: va.FEIFunctionEnc, Name: "ENC"},
	{Flag: va.FEIFunctionPak, Name: "PAK"},
	{Flag: va.FEIFunctionEncPak, Name: "ENC_PAK"},
}

var predictionDirections = []va.FlagName{
	{Flag: va.PredictionDirectionPrevious, Name: "PREVIOUS"},
	{Flag: va.PredictionDirectionFuture, Name: "FUTURE"},
	{Flag: va.PredictionDirectionBiNotEmpty, Name: "BI_NOT_EMPTY"},
}

// dumpConfigAttributes queries the full attribute range for the pair in one
// batch and renders every supported attribute. The pixel format class
// attribute additionally reports its value through rtFormats.
func (d *Dumper) dumpConfigAttributes(profile va.Profile, entrypoint va.Entrypoint, rtFormats *uint32) {
	attribs := make([]va.ConfigAttrib, va.ConfigAttribTypeMax)
	for i := range attribs {
		attribs[i].Type = va.ConfigAttribType(i)
	}

	err := d.display.GetConfigAttributes(profile, entrypoint, attribs)
	if d.failed(err, "unable to get config attributes") {
		return
	}

	for _, attrib := range attribs {
		if attrib.Value == va.AttribNotSupported {
			continue
		}

		if attrib.Type == va.ConfigAttribRTFormat {
			*rtFormats = attrib.Value
		}

		decodeAttribute(d.w, attrib)
	}
}

// decodeAttribute renders one supported attribute. Types without a decoder
// fall back to a raw "unknown" object, which keeps the dump usable against
// enumerants newer than this build.
func decodeAttribute(w *document.Writer, attrib va.ConfigAttrib) {
	value := attrib.Value

	switch attrib.Type {
	case va.ConfigAttribRTFormat:
		writeFlagArray(w, "rt_formats", value, va.RTFormats)
	case va.ConfigAttribRateControl:
		writeFlagArray(w, "rate_control_modes", value, rateControlModes)
	case va.ConfigAttribDecSliceMode:
		writeFlagArray(w, "decode_slice_modes", value, decodeSliceModes)
	case va.ConfigAttribDecJPEG:
		decodeDecJPEG(w, value)
	case va.ConfigAttribDecProcessing:
		w.Bool("decode_processing", value == va.DecProcessing)
	case va.ConfigAttribEncPackedHeaders:
		writeFlagArray(w, "packed_headers", value, packedHeaders)
	case va.ConfigAttribEncInterlaced:
		writeFlagArray(w, "interlace_modes", value, interlaceModes)
	case va.ConfigAttribEncMaxRefFrames:
		decodeEncMaxRefFrames(w, value)
	case va.ConfigAttribEncMaxSlices:
		w.Int("max_slices", int64(value))
	case va.ConfigAttribEncSliceStructure:
		writeFlagArray(w, "slice_structure_modes", value, sliceStructureModes)
	case va.ConfigAttribEncMacroblockInfo:
		w.Int("macroblock_info", int64(value))
	case va.ConfigAttribMaxPictureWidth:
		w.Int("max_picture_width", int64(value))
	case va.ConfigAttribMaxPictureHeight:
		w.Int("max_picture_height", int64(value))
	case va.ConfigAttribEncJPEG:
		decodeEncJPEG(w, value)
	case va.ConfigAttribEncQualityRange:
		w.Int("quality_range", int64(value))
	case va.ConfigAttribEncQuantization:
		writeFlagArray(w, "quantization", value, quantizationModes)
	case va.ConfigAttribEncIntraRefresh:
		writeFlagArray(w, "intra_refresh", value, intraRefreshModes)
	case va.ConfigAttribEncSkipFrame:
		w.Int("skip_frame", int64(value))
	case va.ConfigAttribEncROI:
		decodeEncROI(w, value)
	case va.ConfigAttribEncRateControlExt:
		decodeEncRateControlExt(w, value)
	case va.ConfigAttribProcessingRate:
		writeFlagArray(w, "processing_rate", value, processingRates)
	case va.ConfigAttribEncDirtyRect:
		w.Bool("encode_dirty_rectangle", value != 0)
	case va.ConfigAttribEncParallelRateControl:
		w.Int("encode_parallel_rate_control_layers", int64(value))
	case va.ConfigAttribEncDynamicScaling:
		w.Bool("encode_dynamic_scaling", value != 0)
	case va.ConfigAttribFrameSizeToleranceSupport:
		w.Bool("encode_frame_size_tolerance", value != 0)
	case va.ConfigAttribFEIFunctionType:
		writeFlagArray(w, "fei_function_type", value, feiFunctionTypes)
	case va.ConfigAttribFEIMVPredictors:
		w.Int("fei_mv_predictors", int64(value))
	case va.ConfigAttribStats:
		decodeStats(w, value)
	case va.ConfigAttribEncTileSupport:
		w.Bool("encode_tile_support", value != 0)
	case va.ConfigAttribCustomRoundingControl:
		w.Bool("custom_rounding_control", value != 0)
	case va.ConfigAttribQPBlockSize:
		w.Int("qp_block_size", int64(value))
	case va.ConfigAttribMaxFrameSize:
		decodeMaxFrameSize(w, value)
	case va.ConfigAttribPredictionDirection:
		writeFlagArray(w, "prediction_direction", value, predictionDirections)
	case va.ConfigAttribMultipleFrame:
		decodeMultipleFrame(w, value)
	case va.ConfigAttribContextPriority:
		decodeContextPriority(w, value)
	case va.ConfigAttribDecAV1Features:
		decodeDecAV1Features(w, value)
	case va.ConfigAttribTEEType:
		w.Int("tee_type", int64(value))
	case va.ConfigAttribTEETypeClient:
		w.Int("tee_type_client", int64(value))
	case va.ConfigAttribProtectedContentCipherAlgorithm:
		w.Int("protected_content_cipher_algorithm", int64(value))
	case va.ConfigAttribProtectedContentCipherBlockSize:
		w.Int("protected_content_cipher_block_size", int64(value))
	case va.ConfigAttribProtectedContentCipherMode:
		w.Int("protected_content_cipher_mode", int64(value))
	case va.ConfigAttribProtectedContentCipherSampleType:
		w.Int("protected_content_cipher_sample_type", int64(value))
	case va.ConfigAttribProtectedContentUsage:
		w.Int("protected_content_usage", int64(value))
	case va.ConfigAttribEncHEVCFeatures:
		decodeEncHEVCFeatures(w, value)
	case va.ConfigAttribEncHEVCBlockSizes:
		decodeEncHEVCBlockSizes(w, value)
	default:
		w.StartObject("unknown")
		w.Int("type", int64(attrib.Type))
		w.Int("value", int64(value))
		w.EndObject()
	}
}

func decodeDecJPEG(w *document.Writer, value uint32) {
	jpeg := va.ParseDecJPEGValue(value)
	w.StartObject("decode_jpeg")
	writeValueBitArray(w, "rotation", jpeg.Rotation, va.Rotations)
	w.EndObject()
}

func decodeEncMaxRefFrames(w *document.Writer, value uint32) {
	w.StartObject("max_ref_frames")
	w.Int("list0", int64(value&0xffff))
	if value>>16 != 0 {
		w.Int("list1", int64(value>>16))
	}
	w.EndObject()
}

func decodeEncJPEG(w *document.Writer, value uint32) {
	jpeg := va.ParseEncJPEGValue(value)
	w.StartObject("encode_jpeg")
	w.Int("arithmatic_coding_mode", int64(jpeg.ArithmaticCodingMode))
	w.Int("progressive_dct_mode", int64(jpeg.ProgressiveDCTMode))
	w.Int("non_interleaved_mode", int64(jpeg.NonInterleavedMode))
	w.Int("differential_mode", int64(jpeg.DifferentialMode))
	w.Int("max_num_components", int64(jpeg.MaxNumComponents))
	w.Int("max_num_scans", int64(jpeg.MaxNumScans))
	w.Int("max_num_huffman_tables", int64(jpeg.MaxNumHuffmanTables))
	w.Int("max_num_quantization_tables", int64(jpeg.MaxNumQuantizationTables))
	w.EndObject()
}

func decodeEncROI(w *document.Writer, value uint32) {
	roi := va.ParseEncROIValue(value)
	w.StartObject("roi")
	w.Int("num_regions", int64(roi.NumROIRegions))
	w.Int("rc_priority_support", int64(roi.ROIRCPrioritySupport))
	w.Int("rc_qp_delta_support", int64(roi.ROIRCQPDeltaSupport))
	w.EndObject()
}

func decodeEncRateControlExt(w *document.Writer, value uint32) {
	rce := va.ParseEncRateControlExtValue(value)
	w.StartObject("rate_control_ext")
	w.Int("max_num_temporal_layers_minus1", int64(rce.MaxNumTemporalLayersMinus1))
	w.Int("temporal_layer_bitrate_control_flag", int64(rce.TemporalLayerBitrateControlFlag))
	w.EndObject()
}

func decodeStats(w *document.Writer, value uint32) {
	stats := va.ParseStatsValue(value)
	w.StartObject("stats")
	w.Int("max_num_past_references", int64(stats.MaxNumPastReferences))
	w.Int("max_num_future_references", int64(stats.MaxNumFutureReferences))
	w.Int("num_outputs", int64(stats.NumOutputs))
	w.Int("interlaced", int64(stats.Interlaced))
	w.EndObject()
}

func decodeMaxFrameSize(w *document.Writer, value uint32) {
	mfs := va.ParseMaxFrameSizeValue(value)
	w.StartObject("max_frame_size")
	w.Bool("max_frame_size", mfs.MaxFrameSize != 0)
	w.Bool("multiple_pass", mfs.MultiplePass != 0)
	w.EndObject()
}

func decodeMultipleFrame(w *document.Writer, value uint32) {
	mf := va.ParseMultipleFrameValue(value)
	w.StartObject("multiple_frame")
	w.Int("max_num_concurrent_frames", int64(mf.MaxNumConcurrentFrames))
	w.Bool("mixed_quality_level", mf.MixedQualityLevel != 0)
	w.EndObject()
}

func decodeContextPriority(w *document.Writer, value uint32) {
	cp := va.ParseContextPriorityValue(value)
	w.StartObject("context_priority")
	w.Int("priority", int64(cp.Priority))
	w.EndObject()
}

func decodeDecAV1Features(w *document.Writer, value uint32) {
	daf := va.ParseDecAV1FeaturesValue(value)
	w.StartObject("dec_av1_features")
	w.Bool("lst_support", daf.LSTSupport != 0)
	w.EndObject()
}

func decodeEncHEVCFeatures(w *document.Writer, value uint32) {
	ehf := va.ParseEncHEVCFeaturesValue(value)
	w.StartObject("enc_hevc_features")
	w.String("separate_colour_planes", va.FeatureName(ehf.SeparateColourPlanes))
	w.String("scaling_lists", va.FeatureName(ehf.ScalingLists))
	w.String("amp", va.FeatureName(ehf.AMP))
	w.String("sao", va.FeatureName(ehf.SAO))
	w.String("pcm", va.FeatureName(ehf.PCM))
	w.String("temporal_mvp", va.FeatureName(ehf.TemporalMVP))
	w.String("strong_intra_smoothing", va.FeatureName(ehf.StrongIntraSmoothing))
	w.String("dependent_slices", va.FeatureName(ehf.DependentSlices))
	w.String("sign_data_hiding", va.FeatureName(ehf.SignDataHiding))
	w.String("constrained_intra_pred", va.FeatureName(ehf.ConstrainedIntraPred))
	w.String("transform_skip", va.FeatureName(ehf.TransformSkip))
	w.String("cu_qp_delta", va.FeatureName(ehf.CUQPDelta))
	w.String("weighted_prediction", va.FeatureName(ehf.WeightedPrediction))
	w.String("transquant_bypass", va.FeatureName(ehf.TransquantBypass))
	w.String("deblocking_filter_disable", va.FeatureName(ehf.DeblockingFilterDisable))
	w.EndObject()
}

func decodeEncHEVCBlockSizes(w *document.Writer, value uint32) {
	ehbs := va.ParseEncHEVCBlockSizesValue(value)
	w.StartObject("enc_hevc_block_sizes")
	w.Int("log2_max_coding_tree_block_size_minus3", int64(ehbs.Log2MaxCodingTreeBlockSizeMinus3))
	w.Int("log2_min_coding_tree_block_size_minus3", int64(ehbs.Log2MinCodingTreeBlockSizeMinus3))
	w.Int("log2_min_luma_coding_block_size_minus3", int64(ehbs.Log2MinLumaCodingBlockSizeMinus3))
	w.Int("log2_max_luma_transform_block_size_minus2", int64(ehbs.Log2MaxLumaTransformBlockSizeMinus2))
	w.Int("log2_min_luma_transform_block_size_minus2", int64(ehbs.Log2MinLumaTransformBlockSizeMinus2))
	w.Int("max_max_transform_hierarchy_depth_inter", int64(ehbs.MaxMaxTransformHierarchyDepthInter))
	w.Int("min_max_transform_hierarchy_depth_inter", int64(ehbs.MinMaxTransformHierarchyDepthInter))
	w.Int("max_max_transform_hierarchy_depth_intra", int64(ehbs.MaxMaxTransformHierarchyDepthIntra))
	w.Int("min_max_transform_hierarchy_depth_intra", int64(ehbs.MinMaxTransformHierarchyDepthIntra))
	w.Int("log2_max_pcm_coding_block_size_minus3", int64(ehbs.Log2MaxPCMCodingBlockSizeMinus3))
	w.Int("log2_min_pcm_coding_block_size_minus3", int64(ehbs.Log2MinPCMCodingBlockSizeMinus3))
	w.EndObject()
}
