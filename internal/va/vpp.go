package va

// FilterType identifies a video processing filter.
type FilterType uint32

const (
	ProcFilterNone FilterType = iota
	ProcFilterNoiseReduction
	ProcFilterDeinterlacing
	ProcFilterSharpening
	ProcFilterColorBalance
	ProcFilterSkinToneEnhancement
	ProcFilterTotalColorCorrection
	ProcFilterHVSNoiseReduction
	ProcFilterHighDynamicRangeToneMapping
	ProcFilter3DLUT

	// ProcFilterCount bounds the filter enumeration for list queries.
	ProcFilterCount
)

var filterNames = []struct {
	filter FilterType
	name   string
}{
	{ProcFilterNone, "None"},
	{ProcFilterNoiseReduction, "NoiseReduction"},
	{ProcFilterDeinterlacing, "Deinterlacing"},
	{ProcFilterSharpening, "Sharpening"},
	{ProcFilterColorBalance, "ColorBalance"},
	{ProcFilterSkinToneEnhancement, "SkinToneEnhancement"},
	{ProcFilterTotalColorCorrection, "TotalColorCorrection"},
	{ProcFilterHVSNoiseReduction, "HVSNoiseReduction"},
	{ProcFilterHighDynamicRangeToneMapping, "HighDynamicRangeToneMapping"},
	{ProcFilter3DLUT, "3DLUT"},
}

// Name returns the report label of a known filter.
func (f FilterType) Name() (string, bool) {
	for _, n := range filterNames {
		if n.filter == f {
			return n.name, true
		}
	}
	return "", false
}

// DeinterlacingType identifies a deinterlacing algorithm.
type DeinterlacingType uint32

const (
	DeinterlacingNone DeinterlacingType = iota
	DeinterlacingBob
	DeinterlacingWeave
	DeinterlacingMotionAdaptive
	DeinterlacingMotionCompensated

	// DeinterlacingCount bounds the algorithm enumeration for caps queries.
	DeinterlacingCount
)

var deinterlacingNames = []struct {
	typ  DeinterlacingType
	name string
}{
	{DeinterlacingNone, "None"},
	{DeinterlacingBob, "Bob"},
	{DeinterlacingWeave, "Weave"},
	{DeinterlacingMotionAdaptive, "MotionAdaptive"},
	{DeinterlacingMotionCompensated, "MotionCompensated"},
}

// Name returns the report label of a known deinterlacing algorithm.
func (t DeinterlacingType) Name() (string, bool) {
	for _, n := range deinterlacingNames {
		if n.typ == t {
			return n.name, true
		}
	}
	return "", false
}

// ColorBalanceType identifies an adjustable colour balance channel.
type ColorBalanceType uint32

const (
	ColorBalanceNone ColorBalanceType = iota
	ColorBalanceHue
	ColorBalanceSaturation
	ColorBalanceBrightness
	ColorBalanceContrast
	ColorBalanceAutoSaturation
	ColorBalanceAutoBrightness
	ColorBalanceAutoContrast

	// ColorBalanceCount bounds the channel enumeration for caps queries.
	ColorBalanceCount
)

var colorBalanceNames = []struct {
	typ  ColorBalanceType
	name string
}{
	{ColorBalanceNone, "None"},
	{ColorBalanceHue, "Hue"},
	{ColorBalanceSaturation, "Saturation"},
	{ColorBalanceBrightness, "Brightness"},
	{ColorBalanceContrast, "Contrast"},
	{ColorBalanceAutoSaturation, "AutoSaturation"},
	{ColorBalanceAutoBrightness, "AutoBrightness"},
	{ColorBalanceAutoContrast, "AutoContrast"},
}

// Name returns the report label of a known colour balance channel.
func (t ColorBalanceType) Name() (string, bool) {
	for _, n := range colorBalanceNames {
		if n.typ == t {
			return n.name, true
		}
	}
	return "", false
}

// TotalColorCorrectionType identifies a correctable colour.
type TotalColorCorrectionType uint32

const (
	TotalColorCorrectionNone TotalColorCorrectionType = iota
	TotalColorCorrectionRed
	TotalColorCorrectionGreen
	TotalColorCorrectionBlue
	TotalColorCorrectionCyan
	TotalColorCorrectionMagenta
	TotalColorCorrectionYellow

	// TotalColorCorrectionCount bounds the colour enumeration for caps
	// queries.
	TotalColorCorrectionCount
)

var totalColorCorrectionNames = []struct {
	typ  TotalColorCorrectionType
	name string
}{
	{TotalColorCorrectionNone, "None"},
	{TotalColorCorrectionRed, "Red"},
	{TotalColorCorrectionGreen, "Green"},
	{TotalColorCorrectionBlue, "Blue"},
	{TotalColorCorrectionCyan, "Cyan"},
	{TotalColorCorrectionMagenta, "Magenta"},
	{TotalColorCorrectionYellow, "Yellow"},
}

// Name returns the report label of a known correctable colour.
func (t TotalColorCorrectionType) Name() (string, bool) {
	for _, n := range totalColorCorrectionNames {
		if n.typ == t {
			return n.name, true
		}
	}
	return "", false
}

// HDRMetadataType identifies a high dynamic range metadata format.
type HDRMetadataType uint32

const (
	HDRMetadataNone HDRMetadataType = iota
	HDRMetadataHDR10

	// HDRMetadataTypeCount bounds the metadata enumeration for caps
	// queries.
	HDRMetadataTypeCount
)

var hdrMetadataNames = []struct {
	typ  HDRMetadataType
	name string
}{
	{HDRMetadataNone, "None"},
	{HDRMetadataHDR10, "HDR10"},
}

// Name returns the report label of a known metadata format.
func (t HDRMetadataType) Name() (string, bool) {
	for _, n := range hdrMetadataNames {
		if n.typ == t {
			return n.name, true
		}
	}
	return "", false
}

// ColorStandard identifies a colour encoding standard.
type ColorStandard uint32

const (
	ColorStandardNone ColorStandard = iota
	ColorStandardBT601
	ColorStandardBT709
	ColorStandardBT470M
	ColorStandardBT470BG
	ColorStandardSMPTE170M
	ColorStandardSMPTE240M
	ColorStandardGenericFilm
	ColorStandardSRGB
	ColorStandardSTRGB
	ColorStandardXVYCC601
	ColorStandardXVYCC709
	ColorStandardBT2020
)

var colorStandardNames = []struct {
	typ  ColorStandard
	name string
}{
	{ColorStandardNone, "None"},
	{ColorStandardBT601, "BT601"},
	{ColorStandardBT709, "BT709"},
	{ColorStandardBT470M, "BT470M"},
	{ColorStandardBT470BG, "BT470BG"},
	{ColorStandardSMPTE170M, "SMPTE170M"},
	{ColorStandardSMPTE240M, "SMPTE240M"},
	{ColorStandardGenericFilm, "GenericFilm"},
	{ColorStandardSRGB, "SRGB"},
	{ColorStandardSTRGB, "STRGB"},
	{ColorStandardXVYCC601, "XVYCC601"},
	{ColorStandardXVYCC709, "XVYCC709"},
	{ColorStandardBT2020, "BT2020"},
}

// Name returns the report label of a known colour standard.
func (c ColorStandard) Name() (string, bool) {
	for _, n := range colorStandardNames {
		if n.typ == c {
			return n.name, true
		}
	}
	return "", false
}

// Range bounds a scalar filter parameter.
type Range struct {
	Min     float32
	Max     float32
	Default float32
	Step    float32
}

// DeinterlacingCap reports one supported deinterlacing algorithm.
type DeinterlacingCap struct {
	Type DeinterlacingType
}

// ColorBalanceCap reports one adjustable colour balance channel.
type ColorBalanceCap struct {
	Type  ColorBalanceType
	Range Range
}

// TotalColorCorrectionCap reports one correctable colour.
type TotalColorCorrectionCap struct {
	Type  TotalColorCorrectionType
	Range Range
}

// HDRToneMappingCap reports tone mapping support for one metadata format.
type HDRToneMappingCap struct {
	MetadataType HDRMetadataType
	CapsFlag     uint32
}

// LUT3DCap reports one supported lookup table layout.
type LUT3DCap struct {
	LUTSize        uint32
	LUTStride      [3]uint32
	BitDepth       uint32
	NumChannel     uint32
	ChannelMapping uint32
}

// FilterCap is the generic scalar filter capability.
type FilterCap struct {
	Range Range
}

// DeinterlacingParam is the buffer payload probing a deinterlacing filter.
type DeinterlacingParam struct {
	Type      FilterType
	Algorithm DeinterlacingType
	Flags     uint32
}

// ColorBalanceParam is one element of the buffer payload probing a colour
// balance filter.
type ColorBalanceParam struct {
	Type   FilterType
	Attrib ColorBalanceType
	Value  float32
}

// TotalColorCorrectionParam is one element of the buffer payload probing a
// total colour correction filter.
type TotalColorCorrectionParam struct {
	Type   FilterType
	Attrib TotalColorCorrectionType
	Value  float32
}

// HVSNoiseReductionParam is the buffer payload probing an HVS noise
// reduction filter.
type HVSNoiseReductionParam struct {
	Type     FilterType
	QP       uint16
	Strength uint16
}

// HDR10Metadata carries mastering display metadata for tone mapping probes.
type HDR10Metadata struct {
	DisplayPrimariesX            [3]uint16
	DisplayPrimariesY            [3]uint16
	WhitePointX                  uint16
	WhitePointY                  uint16
	MaxDisplayMasteringLuminance uint32
	MinDisplayMasteringLuminance uint32
	MaxContentLightLevel         uint16
	MaxPicAverageLightLevel      uint16
}

// HDRToneMappingParam is the buffer payload probing a tone mapping filter.
type HDRToneMappingParam struct {
	Type         FilterType
	MetadataType HDRMetadataType
	Metadata     *HDR10Metadata
}

// LUT3DParam is the buffer payload probing a 3D lookup table filter.
type LUT3DParam struct {
	Type           FilterType
	LUTSurface     SurfaceID
	LUTSize        uint32
	LUTStride      [3]uint32
	BitDepth       uint32
	NumChannel     uint32
	ChannelMapping uint32
}

// FilterParam is the generic scalar buffer payload probing a filter.
type FilterParam struct {
	Type  FilterType
	Value float32
}

// Pipeline flags.
const (
	PipelineSubpictures uint32 = 0x00000001
	PipelineFast        uint32 = 0x00000002
)

// PipelineFlags lists pipeline flags in report order.
var PipelineFlags = []FlagName{
	{PipelineSubpictures, "SUBPICTURES"},
	{PipelineFast, "FAST"},
}

// Filter flags reported by pipeline queries. Some members are composite or
// zero masks.
const (
	ProcFilterMandatory uint32 = 0x00000001

	FramePicture uint32 = 0x00000000
	TopField     uint32 = 0x00000001
	BottomField  uint32 = 0x00000002

	SrcBT601    uint32 = 0x00000010
	SrcBT709    uint32 = 0x00000020
	SrcSMPTE240 uint32 = 0x00000040

	FilterScalingDefault      uint32 = 0x00000000
	FilterScalingFast         uint32 = 0x00000100
	FilterScalingHQ           uint32 = 0x00000200
	FilterScalingNLAnamorphic uint32 = 0x00000300

	FilterInterpolationNearestNeighbor uint32 = 0x00001000
	FilterInterpolationBilinear        uint32 = 0x00002000
	FilterInterpolationAdvanced        uint32 = 0x00003000
)

// FilterFlags lists filter flags in report order.
var FilterFlags = []FlagName{
	{ProcFilterMandatory, "PROC_FILTER_MANDATORY"},
	{FramePicture, "FRAME_PICTURE"},
	{TopField, "TOP_FIELD"},
	{BottomField, "BOTTOM_FIELD"},
	{SrcBT601, "SRC_BT601"},
	{SrcBT709, "SRC_BT709"},
	{SrcSMPTE240, "SRC_SMPTE_240"},
	{FilterScalingDefault, "FILTER_SCALING_DEFAULT"},
	{FilterScalingFast, "FILTER_SCALING_FAST"},
	{FilterScalingHQ, "FILTER_SCALING_HQ"},
	{FilterScalingNLAnamorphic, "FILTER_SCALING_NL_ANAMORPHIC"},
	{FilterInterpolationNearestNeighbor, "FILTER_INTERPOLATION_NEAREST_NEIGHBOR"},
	{FilterInterpolationBilinear, "FILTER_INTERPOLATION_BILINEAR"},
	{FilterInterpolationAdvanced, "FILTER_INTERPOLATION_ADVANCED"},
}

// Rotation angles. Pipeline caps report them as a bitset indexed by the
// enumerant.
const (
	RotationNone int32 = 0
	Rotation90   int32 = 1
	Rotation180  int32 = 2
	Rotation270  int32 = 3
)

// Rotations lists rotation angles in report order.
var Rotations = []ValueName{
	{RotationNone, "NONE"},
	{Rotation90, "90"},
	{Rotation180, "180"},
	{Rotation270, "270"},
}

// Blend modes. Pipeline caps report them as a bitset indexed by the
// enumerant, not by the mask values below.
const (
	BlendGlobalAlpha        int32 = 0x0001
	BlendPremultipliedAlpha int32 = 0x0002
	BlendLumaKey            int32 = 0x0010
)

// BlendModes lists blend modes in report order.
var BlendModes = []ValueName{
	{BlendGlobalAlpha, "GLOBAL_ALPHA"},
	{BlendPremultipliedAlpha, "PREMULTIPLIED_ALPHA"},
	{BlendLumaKey, "LUMA_KEY"},
}

// Mirror directions. Pipeline caps report them as a bitset indexed by the
// enumerant.
const (
	MirrorNone       int32 = 0
	MirrorHorizontal int32 = 1
	MirrorVertical   int32 = 2
)

// Mirrors lists mirror directions in report order.
var Mirrors = []ValueName{
	{MirrorNone, "NONE"},
	{MirrorHorizontal, "HORIZONTAL"},
	{MirrorVertical, "VERTICAL"},
}

// Tone mapping directions.
const (
	ToneMappingHDRToHDR uint32 = 0x0001
	ToneMappingHDRToSDR uint32 = 0x0002
	ToneMappingHDRToEDR uint32 = 0x0004
	ToneMappingSDRToHDR uint32 = 0x0008
)

// ToneMappings lists tone mapping directions in report order.
var ToneMappings = []FlagName{
	{ToneMappingHDRToHDR, "HDR_TO_HDR"},
	{ToneMappingHDRToSDR, "HDR_TO_SDR"},
	{ToneMappingHDRToEDR, "HDR_TO_EDR"},
	{ToneMappingSDRToHDR, "SDR_TO_HDR"},
}

// Lookup table channel layouts.
const (
	LUT3DChannelRGBRGB uint32 = 0x0001
	LUT3DChannelYUVRGB uint32 = 0x0002
	LUT3DChannelVUYRGB uint32 = 0x0004
)

// LUT3DChannels lists channel layouts in report order.
var LUT3DChannels = []FlagName{
	{LUT3DChannelRGBRGB, "RGB_RGB"},
	{LUT3DChannelYUVRGB, "YUV_RGB"},
	{LUT3DChannelVUYRGB, "VUY_RGB"},
}

// PipelineCaps aggregates everything a pipeline query reports for a filter
// chain.
type PipelineCaps struct {
	PipelineFlags         uint32
	FilterFlags           uint32
	NumForwardReferences  uint32
	NumBackwardReferences uint32
	InputColorStandards   []ColorStandard
	OutputColorStandards  []ColorStandard
	RotationFlags         uint32
	BlendFlags            uint32
	MirrorFlags           uint32
	NumAdditionalOutputs  uint32
	InputPixelFormats     []FourCC
	OutputPixelFormats    []FourCC
	MaxInputWidth         uint32
	MaxInputHeight        uint32
	MinInputWidth         uint32
	MinInputHeight        uint32
	MaxOutputWidth        uint32
	MaxOutputHeight       uint32
	MinOutputWidth        uint32
	MinOutputHeight       uint32
}
