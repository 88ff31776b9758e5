package va

// SurfaceAttribType identifies a surface attribute record.
type SurfaceAttribType uint32

const (
	SurfaceAttribNone SurfaceAttribType = iota
	SurfaceAttribPixelFormat
	SurfaceAttribMinWidth
	SurfaceAttribMaxWidth
	SurfaceAttribMinHeight
	SurfaceAttribMaxHeight
	SurfaceAttribMemoryType
	SurfaceAttribExternalBufferDescriptor
	SurfaceAttribUsageHint
	SurfaceAttribDRMFormatModifiers
)

// GenericValueType discriminates the union carried by a GenericValue.
type GenericValueType int32

const (
	GenericValueInteger GenericValueType = 1
	GenericValueFloat   GenericValueType = 2
	GenericValuePointer GenericValueType = 3
	GenericValueFunc    GenericValueType = 4
)

// GenericValue is the tagged union surface attributes carry. P holds
// []uint64 for DRM format modifier lists.
type GenericValue struct {
	Type GenericValueType
	I    int32
	F    float32
	P    any
}

// SurfaceAttrib is a single surface attribute record.
type SurfaceAttrib struct {
	Type  SurfaceAttribType
	Flags uint32
	Value GenericValue
}

// Surface attribute access flags.
const (
	SurfaceAttribFlagNotSupported uint32 = 0x00000000
	SurfaceAttribFlagGettable     uint32 = 0x00000001
	SurfaceAttribFlagSettable     uint32 = 0x00000002
)

// Surface memory types.
const (
	MemTypeVA        uint32 = 0x00000001
	MemTypeV4L2      uint32 = 0x00000002
	MemTypeUserPtr   uint32 = 0x00000004
	MemTypeKernelDRM uint32 = 0x10000000
	MemTypeDRMPrime  uint32 = 0x20000000
	MemTypeDRMPrime2 uint32 = 0x40000000
)

// MemoryTypes lists surface memory types in report order.
var MemoryTypes = []FlagName{
	{MemTypeVA, "VA"},
	{MemTypeV4L2, "V4L2"},
	{MemTypeUserPtr, "USER_PTR"},
	{MemTypeKernelDRM, "KERNEL_DRM"},
	{MemTypeDRMPrime, "DRM_PRIME"},
	{MemTypeDRMPrime2, "DRM_PRIME_2"},
}

// Surface usage hints.
const (
	UsageHintDecoder  uint32 = 0x00000001
	UsageHintEncoder  uint32 = 0x00000002
	UsageHintVPPRead  uint32 = 0x00000004
	UsageHintVPPWrite uint32 = 0x00000008
	UsageHintDisplay  uint32 = 0x00000010
)

// UsageHints lists surface usage hints in report order.
var UsageHints = []FlagName{
	{UsageHintDecoder, "DECODER"},
	{UsageHintEncoder, "ENCODER"},
	{UsageHintVPPRead, "VPP_READ"},
	{UsageHintVPPWrite, "VPP_WRITE"},
	{UsageHintDisplay, "DISPLAY"},
}
