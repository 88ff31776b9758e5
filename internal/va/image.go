package va

// Byte orders for image formats.
const (
	LSBFirst uint32 = 1
	MSBFirst uint32 = 2
)

// ImageFormat describes an image or subpicture pixel layout. The mask
// fields are meaningful only when Depth is set.
type ImageFormat struct {
	FourCC       FourCC
	ByteOrder    uint32
	BitsPerPixel uint32
	Depth        uint32
	RedMask      uint32
	GreenMask    uint32
	BlueMask     uint32
	AlphaMask    uint32
}

// Subpicture capability flags.
const (
	SubpictureChromaKeying             uint32 = 0x00000001
	SubpictureGlobalAlpha              uint32 = 0x00000002
	SubpictureDestinationIsScreenCoord uint32 = 0x00000004
)

// SubpictureFlags lists subpicture capabilities in report order.
var SubpictureFlags = []FlagName{
	{SubpictureChromaKeying, "CHROMA_KEYING"},
	{SubpictureGlobalAlpha, "GLOBAL_ALPHA"},
	{SubpictureDestinationIsScreenCoord, "DESTINATION_IS_SCREEN_COORD"},
}
