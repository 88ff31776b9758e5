package va

// ConfigAttribType identifies a configuration attribute. The enumeration
// has gaps; values without a named constant are reported as unknown.
type ConfigAttribType uint32

const (
	ConfigAttribRTFormat                         ConfigAttribType = 0
	ConfigAttribSpatialResidual                  ConfigAttribType = 1
	ConfigAttribSpatialClipping                  ConfigAttribType = 2
	ConfigAttribIntraResidual                    ConfigAttribType = 3
	ConfigAttribEncryption                       ConfigAttribType = 4
	ConfigAttribRateControl                      ConfigAttribType = 5
	ConfigAttribDecSliceMode                     ConfigAttribType = 6
	ConfigAttribDecJPEG                          ConfigAttribType = 7
	ConfigAttribDecProcessing                    ConfigAttribType = 8
	ConfigAttribEncPackedHeaders                 ConfigAttribType = 10
	ConfigAttribEncInterlaced                    ConfigAttribType = 11
	ConfigAttribEncMaxRefFrames                  ConfigAttribType = 13
	ConfigAttribEncMaxSlices                     ConfigAttribType = 14
	ConfigAttribEncSliceStructure                ConfigAttribType = 15
	ConfigAttribEncMacroblockInfo                ConfigAttribType = 16
	ConfigAttribMaxPictureWidth                  ConfigAttribType = 18
	ConfigAttribMaxPictureHeight                 ConfigAttribType = 19
	ConfigAttribEncJPEG                          ConfigAttribType = 20
	ConfigAttribEncQualityRange                  ConfigAttribType = 21
	ConfigAttribEncQuantization                  ConfigAttribType = 22
	ConfigAttribEncIntraRefresh                  ConfigAttribType = 23
	ConfigAttribEncSkipFrame                     ConfigAttribType = 24
	ConfigAttribEncROI                           ConfigAttribType = 25
	ConfigAttribEncRateControlExt                ConfigAttribType = 26
	ConfigAttribProcessingRate                   ConfigAttribType = 27
	ConfigAttribEncDirtyRect                     ConfigAttribType = 28
	ConfigAttribEncParallelRateControl           ConfigAttribType = 29
	ConfigAttribEncDynamicScaling                ConfigAttribType = 30
	ConfigAttribFrameSizeToleranceSupport        ConfigAttribType = 31
	ConfigAttribFEIFunctionType                  ConfigAttribType = 32
	ConfigAttribFEIMVPredictors                  ConfigAttribType = 33
	ConfigAttribStats                            ConfigAttribType = 34
	ConfigAttribEncTileSupport                   ConfigAttribType = 35
	ConfigAttribCustomRoundingControl            ConfigAttribType = 36
	ConfigAttribQPBlockSize                      ConfigAttribType = 37
	ConfigAttribMaxFrameSize                     ConfigAttribType = 38
	ConfigAttribPredictionDirection              ConfigAttribType = 39
	ConfigAttribMultipleFrame                    ConfigAttribType = 40
	ConfigAttribContextPriority                  ConfigAttribType = 41
	ConfigAttribDecAV1Features                   ConfigAttribType = 42
	ConfigAttribTEEType                          ConfigAttribType = 43
	ConfigAttribTEETypeClient                    ConfigAttribType = 44
	ConfigAttribProtectedContentCipherAlgorithm  ConfigAttribType = 45
	ConfigAttribProtectedContentCipherBlockSize  ConfigAttribType = 46
	ConfigAttribProtectedContentCipherMode       ConfigAttribType = 47
	ConfigAttribProtectedContentCipherSampleType ConfigAttribType = 48
	ConfigAttribProtectedContentUsage            ConfigAttribType = 49
	ConfigAttribEncHEVCFeatures                  ConfigAttribType = 50
	ConfigAttribEncHEVCBlockSizes                ConfigAttribType = 51

	// ConfigAttribTypeMax bounds the attribute enumeration for batch
	// queries.
	ConfigAttribTypeMax ConfigAttribType = 52
)

// AttribNotSupported is the value a provider reports for attributes it does
// not support.
const AttribNotSupported uint32 = 0x80000000

// ConfigAttrib is a single configuration attribute record. Type is set by
// the caller and Value is filled by the provider.
type ConfigAttrib struct {
	Type  ConfigAttribType
	Value uint32
}

// Rate control modes.
const (
	RateControlNone           uint32 = 0x00000001
	RateControlCBR            uint32 = 0x00000002
	RateControlVBR            uint32 = 0x00000004
	RateControlVCM            uint32 = 0x00000008
	RateControlCQP            uint32 = 0x00000010
	RateControlVBRConstrained uint32 = 0x00000020
	RateControlICQ            uint32 = 0x00000040
	RateControlMB             uint32 = 0x00000080
	RateControlCFS            uint32 = 0x00000100
	RateControlParallel       uint32 = 0x00000200
	RateControlQVBR           uint32 = 0x00000400
	RateControlAVBR           uint32 = 0x00000800
	RateControlTCBRC          uint32 = 0x00001000
)

// Decode slice modes.
const (
	DecSliceModeNormal uint32 = 0x00000001
	DecSliceModeBase   uint32 = 0x00000002
)

// DecProcessing is the attribute value reporting decode-time processing
// support.
const DecProcessing uint32 = 0x00000001

// Packed header kinds.
const (
	EncPackedHeaderSequence uint32 = 0x00000001
	EncPackedHeaderPicture  uint32 = 0x00000002
	EncPackedHeaderSlice    uint32 = 0x00000004
	EncPackedHeaderMisc     uint32 = 0x00000008
	EncPackedHeaderRawData  uint32 = 0x00000010
)

// Interlacing modes.
const (
	EncInterlacedFrame uint32 = 0x00000001
	EncInterlacedField uint32 = 0x00000002
	EncInterlacedMBAFF uint32 = 0x00000004
	EncInterlacedPAFF  uint32 = 0x00000008
)

// Slice structure modes.
const (
	EncSliceStructureArbitraryRows        uint32 = 0x00000001
	EncSliceStructurePowerOfTwoRows       uint32 = 0x00000002
	EncSliceStructureArbitraryMacroblocks uint32 = 0x00000004
	EncSliceStructureEqualRows            uint32 = 0x00000008
	EncSliceStructureMaxSliceSize         uint32 = 0x00000010
	EncSliceStructureEqualMultiRows       uint32 = 0x00000020
)

// EncQuantizationTrellisSupported reports trellis quantization support.
const EncQuantizationTrellisSupported uint32 = 0x00000001

// Intra refresh modes.
const (
	EncIntraRefreshRollingColumn uint32 = 0x00000001
	EncIntraRefreshRollingRow    uint32 = 0x00000002
	EncIntraRefreshAdaptive      uint32 = 0x00000010
	EncIntraRefreshCyclic        uint32 = 0x00000020
	EncIntraRefreshPFrame        uint32 = 0x00010000
	EncIntraRefreshBFrame        uint32 = 0x00020000
	EncIntraRefreshMultiRef      uint32 = 0x00040000
)

// Processing rate support.
const (
	ProcessingRateEncode uint32 = 0x00000001
	ProcessingRateDecode uint32 = 0x00000002
)

// FEI function types.
const (
	FEIFunctionEnc    uint32 = 0x00000001
	FEIFunctionPak    uint32 = 0x00000002
	FEIFunctionEncPak uint32 = 0x00000004
)

// Prediction directions.
const (
	PredictionDirectionPrevious   uint32 = 0x00000001
	PredictionDirectionFuture     uint32 = 0x00000002
	PredictionDirectionBiNotEmpty uint32 = 0x00000004
)

// Support levels carried by two-bit attribute fields.
const (
	FeatureNotSupported uint32 = 0
	FeatureSupported    uint32 = 1
	FeatureRequired     uint32 = 2
)

// FeatureName returns the report label for a two-bit support field.
func FeatureName(v uint32) string {
	switch v {
	case FeatureNotSupported:
		return "not_supported"
	case FeatureSupported:
		return "supported"
	case FeatureRequired:
		return "required"
	default:
		return "undefined"
	}
}

// bits extracts width bits of v starting at shift, lowest bit first.
func bits(v, shift, width uint32) uint32 {
	return v >> shift & (1<<width - 1)
}

// EncJPEGValue is the unpacked JPEG encoding attribute. The first field
// keeps the misspelling it is reported under.
type EncJPEGValue struct {
	ArithmaticCodingMode     uint32
	ProgressiveDCTMode       uint32
	NonInterleavedMode       uint32
	DifferentialMode         uint32
	MaxNumComponents         uint32
	MaxNumScans              uint32
	MaxNumHuffmanTables      uint32
	MaxNumQuantizationTables uint32
}

// ParseEncJPEGValue unpacks a JPEG encoding attribute value.
func ParseEncJPEGValue(v uint32) EncJPEGValue {
	return EncJPEGValue{
		ArithmaticCodingMode:     bits(v, 0, 1),
		ProgressiveDCTMode:       bits(v, 1, 1),
		NonInterleavedMode:       bits(v, 2, 1),
		DifferentialMode:         bits(v, 3, 1),
		MaxNumComponents:         bits(v, 4, 3),
		MaxNumScans:              bits(v, 7, 4),
		MaxNumHuffmanTables:      bits(v, 11, 3),
		MaxNumQuantizationTables: bits(v, 14, 3),
	}
}

// DecJPEGValue is the unpacked JPEG decoding attribute. Rotation is a
// bitset indexed by rotation enumerants.
type DecJPEGValue struct {
	Rotation uint32
}

// ParseDecJPEGValue unpacks a JPEG decoding attribute value.
func ParseDecJPEGValue(v uint32) DecJPEGValue {
	return DecJPEGValue{Rotation: bits(v, 0, 4)}
}

// EncROIValue is the unpacked region of interest attribute.
type EncROIValue struct {
	NumROIRegions        uint32
	ROIRCPrioritySupport uint32
	ROIRCQPDeltaSupport  uint32
}

// ParseEncROIValue unpacks a region of interest attribute value.
func ParseEncROIValue(v uint32) EncROIValue {
	return EncROIValue{
		NumROIRegions:        bits(v, 0, 8),
		ROIRCPrioritySupport: bits(v, 8, 1),
		ROIRCQPDeltaSupport:  bits(v, 9, 1),
	}
}

// EncRateControlExtValue is the unpacked extended rate control attribute.
type EncRateControlExtValue struct {
	MaxNumTemporalLayersMinus1      uint32
	TemporalLayerBitrateControlFlag uint32
}

// ParseEncRateControlExtValue unpacks an extended rate control attribute
// value.
func ParseEncRateControlExtValue(v uint32) EncRateControlExtValue {
	return EncRateControlExtValue{
		MaxNumTemporalLayersMinus1:      bits(v, 0, 8),
		TemporalLayerBitrateControlFlag: bits(v, 8, 1),
	}
}

// StatsValue is the unpacked statistics attribute.
type StatsValue struct {
	MaxNumPastReferences   uint32
	MaxNumFutureReferences uint32
	NumOutputs             uint32
	Interlaced             uint32
}

// ParseStatsValue unpacks a statistics attribute value.
func ParseStatsValue(v uint32) StatsValue {
	return StatsValue{
		MaxNumPastReferences:   bits(v, 0, 4),
		MaxNumFutureReferences: bits(v, 4, 4),
		NumOutputs:             bits(v, 8, 3),
		Interlaced:             bits(v, 11, 1),
	}
}

// MaxFrameSizeValue is the unpacked maximum frame size attribute.
type MaxFrameSizeValue struct {
	MaxFrameSize uint32
	MultiplePass uint32
}

// ParseMaxFrameSizeValue unpacks a maximum frame size attribute value.
func ParseMaxFrameSizeValue(v uint32) MaxFrameSizeValue {
	return MaxFrameSizeValue{
		MaxFrameSize: bits(v, 0, 1),
		MultiplePass: bits(v, 1, 1),
	}
}

// MultipleFrameValue is the unpacked multiple frame attribute.
type MultipleFrameValue struct {
	MaxNumConcurrentFrames uint32
	MixedQualityLevel      uint32
}

// ParseMultipleFrameValue unpacks a multiple frame attribute value.
func ParseMultipleFrameValue(v uint32) MultipleFrameValue {
	return MultipleFrameValue{
		MaxNumConcurrentFrames: bits(v, 0, 8),
		MixedQualityLevel:      bits(v, 8, 1),
	}
}

// ContextPriorityValue is the unpacked context priority attribute.
type ContextPriorityValue struct {
	Priority uint32
}

// ParseContextPriorityValue unpacks a context priority attribute value.
func ParseContextPriorityValue(v uint32) ContextPriorityValue {
	return ContextPriorityValue{Priority: bits(v, 0, 16)}
}

// DecAV1FeaturesValue is the unpacked AV1 decoding features attribute.
type DecAV1FeaturesValue struct {
	LSTSupport uint32
}

// ParseDecAV1FeaturesValue unpacks an AV1 decoding features attribute
// value.
func ParseDecAV1FeaturesValue(v uint32) DecAV1FeaturesValue {
	return DecAV1FeaturesValue{LSTSupport: bits(v, 0, 2)}
}

// EncHEVCFeaturesValue is the unpacked HEVC encoding features attribute.
// Every field is a two-bit support level.
type EncHEVCFeaturesValue struct {
	SeparateColourPlanes    uint32
	ScalingLists            uint32
	AMP                     uint32
	SAO                     uint32
	PCM                     uint32
	TemporalMVP             uint32
	StrongIntraSmoothing    uint32
	DependentSlices         uint32
	SignDataHiding          uint32
	ConstrainedIntraPred    uint32
	TransformSkip           uint32
	CUQPDelta               uint32
	WeightedPrediction      uint32
	TransquantBypass        uint32
	DeblockingFilterDisable uint32
}

// ParseEncHEVCFeaturesValue unpacks an HEVC encoding features attribute
// value.
func ParseEncHEVCFeaturesValue(v uint32) EncHEVCFeaturesValue {
	return EncHEVCFeaturesValue{
		SeparateColourPlanes:    bits(v, 0, 2),
		ScalingLists:            bits(v, 2, 2),
		AMP:                     bits(v, 4, 2),
		SAO:                     bits(v, 6, 2),
		PCM:                     bits(v, 8, 2),
		TemporalMVP:             bits(v, 10, 2),
		StrongIntraSmoothing:    bits(v, 12, 2),
		DependentSlices:         bits(v, 14, 2),
		SignDataHiding:          bits(v, 16, 2),
		ConstrainedIntraPred:    bits(v, 18, 2),
		TransformSkip:           bits(v, 20, 2),
		CUQPDelta:               bits(v, 22, 2),
		WeightedPrediction:      bits(v, 24, 2),
		TransquantBypass:        bits(v, 26, 2),
		DeblockingFilterDisable: bits(v, 28, 2),
	}
}

// EncHEVCBlockSizesValue is the unpacked HEVC encoding block sizes
// attribute.
type EncHEVCBlockSizesValue struct {
	Log2MaxCodingTreeBlockSizeMinus3    uint32
	Log2MinCodingTreeBlockSizeMinus3    uint32
	Log2MinLumaCodingBlockSizeMinus3    uint32
	Log2MaxLumaTransformBlockSizeMinus2 uint32
	Log2MinLumaTransformBlockSizeMinus2 uint32
	MaxMaxTransformHierarchyDepthInter  uint32
	MinMaxTransformHierarchyDepthInter  uint32
	MaxMaxTransformHierarchyDepthIntra  uint32
	MinMaxTransformHierarchyDepthIntra  uint32
	Log2MaxPCMCodingBlockSizeMinus3     uint32
	Log2MinPCMCodingBlockSizeMinus3     uint32
}

// ParseEncHEVCBlockSizesValue unpacks an HEVC encoding block sizes
// attribute value.
func ParseEncHEVCBlockSizesValue(v uint32) EncHEVCBlockSizesValue {
	return EncHEVCBlockSizesValue{
		Log2MaxCodingTreeBlockSizeMinus3:    bits(v, 0, 2),
		Log2MinCodingTreeBlockSizeMinus3:    bits(v, 2, 2),
		Log2MinLumaCodingBlockSizeMinus3:    bits(v, 4, 2),
		Log2MaxLumaTransformBlockSizeMinus2: bits(v, 6, 2),
		Log2MinLumaTransformBlockSizeMinus2: bits(v, 8, 2),
		MaxMaxTransformHierarchyDepthInter:  bits(v, 10, 2),
		MinMaxTransformHierarchyDepthInter:  bits(v, 12, 2),
		MaxMaxTransformHierarchyDepthIntra:  bits(v, 14, 2),
		MinMaxTransformHierarchyDepthIntra:  bits(v, 16, 2),
		Log2MaxPCMCodingBlockSizeMinus3:     bits(v, 18, 4),
		Log2MinPCMCodingBlockSizeMinus3:     bits(v, 22, 4),
	}
}
