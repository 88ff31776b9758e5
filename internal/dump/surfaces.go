package dump

import (
	"github.com/jacoelho/vadumpcaps/internal/va"
)

// dumpSurfaceFormats probes surface attributes once per pixel format class
// bit, low to high. A query failure abandons the remaining bits.
func (d *Dumper) dumpSurfaceFormats(profile va.Profile, entrypoint va.Entrypoint, rtFormats uint32) {
	for bit := uint32(1); bit != 0; bit <<= 1 {
		if rtFormats&bit == 0 {
			continue
		}
		if !d.dumpSurfaceFormat(profile, entrypoint, bit) {
			return
		}
	}
}

func (d *Dumper) dumpSurfaceFormat(profile va.Profile, entrypoint va.Entrypoint, rtFormat uint32) bool {
	config, err := d.display.CreateConfig(profile, entrypoint, []va.ConfigAttrib{{
		Type:  va.ConfigAttribRTFormat,
		Value: rtFormat,
	}})
	if d.failed(err, "unable to create config to test surface attributes") {
		return false
	}
	defer d.display.DestroyConfig(config)

	count, err := d.display.QuerySurfaceAttributes(config, nil)
	if d.failed(err, "unable to query surface attributes") {
		return false
	}

	attribs := make([]va.SurfaceAttrib, count)
	n, err := d.display.QuerySurfaceAttributes(config, attribs)
	if d.failed(err, "unable to query surface attributes") {
		return false
	}
	attribs = attribs[:n]

	d.w.StartObject("")

	label := "unknown"
	for _, f := range va.RTFormats {
		if rtFormat&f.Flag != 0 {
			label = f.Name
			break
		}
	}
	d.w.String("rt_format", label)

	hasFormats := false

	for _, attrib := range attribs {
		switch attrib.Type {
		case va.SurfaceAttribPixelFormat:
			hasFormats = true
		case va.SurfaceAttribMinWidth:
			d.w.Int("min_width", int64(attrib.Value.I))
		case va.SurfaceAttribMaxWidth:
			d.w.Int("max_width", int64(attrib.Value.I))
		case va.SurfaceAttribMinHeight:
			d.w.Int("min_height", int64(attrib.Value.I))
		case va.SurfaceAttribMaxHeight:
			d.w.Int("max_height", int64(attrib.Value.I))
		case va.SurfaceAttribMemoryType:
			writeFlagArray(d.w, "memory_types", uint32(attrib.Value.I), va.MemoryTypes)
		case va.SurfaceAttribExternalBufferDescriptor:
			// Write-only; nothing to report.
		case va.SurfaceAttribUsageHint:
			writeFlagArray(d.w, "usage_hints", uint32(attrib.Value.I), va.UsageHints)
		case va.SurfaceAttribDRMFormatModifiers:
			d.w.StartArray("drm_format_modifiers")
			if modifiers, ok := attrib.Value.P.([]uint64); ok {
				for _, modifier := range modifiers {
					d.w.Int("", int64(modifier))
				}
			}
			d.w.EndArray()
		default:
			d.w.StartObject("unknown")
			d.w.Int("type", int64(attrib.Type))
			d.w.Int("value", int64(attrib.Value.I))
			d.w.EndObject()
		}
	}

	if hasFormats {
		d.w.StartArray("pixel_formats")
		for _, attrib := range attribs {
			if attrib.Type != va.SurfaceAttribPixelFormat {
				continue
			}
			d.w.String("", va.FourCC(uint32(attrib.Value.I)).String())
		}
		d.w.EndArray()
	}

	d.w.EndObject()

	return true
}
