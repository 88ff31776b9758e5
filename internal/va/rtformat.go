package va

// Pixel format classes reported through the RTFormat attribute.
const (
	RTFormatYUV420    uint32 = 0x00000001
	RTFormatYUV422    uint32 = 0x00000002
	RTFormatYUV444    uint32 = 0x00000004
	RTFormatYUV411    uint32 = 0x00000008
	RTFormatYUV400    uint32 = 0x00000010
	RTFormatYUV420_10 uint32 = 0x00000100
	RTFormatYUV422_10 uint32 = 0x00000200
	RTFormatYUV444_10 uint32 = 0x00000400
	RTFormatYUV420_12 uint32 = 0x00001000
	RTFormatYUV422_12 uint32 = 0x00002000
	RTFormatYUV444_12 uint32 = 0x00004000
	RTFormatRGB16     uint32 = 0x00010000
	RTFormatRGB32     uint32 = 0x00020000
	RTFormatRGBP      uint32 = 0x00100000
	RTFormatRGB32_10  uint32 = 0x00200000
)

// RTFormats lists pixel format classes in report order.
var RTFormats = []FlagName{
	{RTFormatYUV420, "YUV420"},
	{RTFormatYUV422, "YUV422"},
	{RTFormatYUV444, "YUV444"},
	{RTFormatYUV411, "YUV411"},
	{RTFormatYUV400, "YUV400"},
	{RTFormatYUV420_10, "YUV420_10"},
	{RTFormatYUV422_10, "YUV422_10"},
	{RTFormatYUV444_10, "YUV444_10"},
	{RTFormatYUV420_12, "YUV420_12"},
	{RTFormatYUV422_12, "YUV422_12"},
	{RTFormatYUV444_12, "YUV444_12"},
	{RTFormatRGB16, "RGB16"},
	{RTFormatRGB32, "RGB32"},
	{RTFormatRGBP, "RGBP"},
	{RTFormatRGB32_10, "RGB32_10"},
}
