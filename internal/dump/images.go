package dump

import (
	"github.com/jacoelho/vadumpcaps/internal/va"
)

func (d *Dumper) writeImageFormat(format va.ImageFormat) {
	d.w.String("pixel_format", format.FourCC.String())

	switch format.ByteOrder {
	case va.LSBFirst:
		d.w.String("byte_order", "LE")
	case va.MSBFirst:
		d.w.String("byte_order", "BE")
	default:
		d.w.String("byte_order", "unknown")
	}

	d.w.Int("bits_per_pixel", int64(format.BitsPerPixel))

	if format.Depth != 0 {
		d.w.Int("depth", int64(format.Depth))

		d.w.Int("red_mask", int64(format.RedMask))
		d.w.Int("green_mask", int64(format.GreenMask))
		d.w.Int("blue_mask", int64(format.BlueMask))
		d.w.Int("alpha_mask", int64(format.AlphaMask))
	}
}

func (d *Dumper) dumpImageFormats() {
	formats := make([]va.ImageFormat, d.display.MaxNumImageFormats())
	n, err := d.display.QueryImageFormats(formats)
	if d.failed(err, "unable to query image formats") {
		return
	}

	for _, format := range formats[:n] {
		d.w.StartObject("")
		d.writeImageFormat(format)
		d.w.EndObject()
	}
}

func (d *Dumper) dumpSubpictureFormats() {
	count := d.display.MaxNumSubpictureFormats()
	formats := make([]va.ImageFormat, count)
	flags := make([]uint32, count)

	n, err := d.display.QuerySubpictureFormats(formats, flags)
	if d.failed(err, "unable to query subpicture formats") {
		return
	}

	for i, format := range formats[:n] {
		d.w.StartObject("")
		d.writeImageFormat(format)
		writeFlagArray(d.w, "flags", flags[i], va.SubpictureFlags)
		d.w.EndObject()
	}
}
