package dump

import (
	"github.com/jacoelho/vadumpcaps/internal/va"
)

// lut3DCapSlots is the query capacity for 3D LUT capabilities; the
// enumeration has no declared bound.
const lut3DCapSlots = 16

// dumpFilters enumerates processing filters through an ephemeral video
// processing config and context. The implicit None filter leads the list
// and stands for the pipeline with no filter applied.
func (d *Dumper) dumpFilters(rtFormats uint32) {
	config, err := d.display.CreateConfig(va.ProfileNone, va.EntrypointVideoProc, []va.ConfigAttrib{{
		Type:  va.ConfigAttribRTFormat,
		Value: rtFormats,
	}})
	if d.failed(err, "unable to create config to test filters") {
		return
	}
	defer d.display.DestroyConfig(config)

	context, err := d.display.CreateContext(config, 1280, 720, 0)
	if d.failed(err, "unable to create context to test filters") {
		return
	}
	defer d.display.DestroyContext(context)

	filters := make([]va.FilterType, va.ProcFilterCount)
	n, err := d.display.QueryVideoProcFilters(context, filters)
	if d.failed(err, "failed to query filters") {
		return
	}

	d.w.StartArray("filters")

	for i := -1; i < n; i++ {
		filter := va.ProcFilterNone
		if i >= 0 {
			filter = filters[i]
		}

		d.w.StartObject("")

		d.w.Int("filter", int64(filter))
		if name, ok := filter.Name(); ok {
			d.w.String("name", name)
		}

		if d.enabled(SectionFilterCaps) && filter != va.ProcFilterNone {
			d.dumpFilterCaps(context, filter)
		}

		if d.enabled(SectionPipelineCaps) {
			d.dumpFilterPipeline(context, filter)
		}

		d.w.EndObject()
	}

	d.w.EndArray()
}

func (d *Dumper) writeRange(r va.Range) {
	d.w.Float("min_value", float64(r.Min))
	d.w.Float("max_value", float64(r.Max))
	d.w.Float("default_value", float64(r.Default))
	d.w.Float("step", float64(r.Step))
}

func (d *Dumper) dumpFilterCaps(context va.ContextID, filter va.FilterType) {
	switch filter {
	case va.ProcFilterDeinterlacing:
		caps := make([]va.DeinterlacingCap, va.DeinterlacingCount)
		n, err := d.display.QueryDeinterlacingCaps(context, caps)
		if d.failed(err, "failed to query deinterlacing caps") {
			return
		}

		d.w.StartArray("types")
		for _, c := range caps[:n] {
			d.w.StartObject("")
			d.w.Int("type", int64(c.Type))
			if name, ok := c.Type.Name(); ok {
				d.w.String("name", name)
			}
			d.w.EndObject()
		}
		d.w.EndArray()

	case va.ProcFilterColorBalance:
		caps := make([]va.ColorBalanceCap, va.ColorBalanceCount)
		n, err := d.display.QueryColorBalanceCaps(context, caps)
		if d.failed(err, "failed to query colour balance caps") {
			return
		}

		d.w.StartArray("types")
		for _, c := range caps[:n] {
			d.w.StartObject("")
			d.w.Int("type", int64(c.Type))
			if name, ok := c.Type.Name(); ok {
				d.w.String("name", name)
			}
			d.writeRange(c.Range)
			d.w.EndObject()
		}
		d.w.EndArray()

	case va.ProcFilterTotalColorCorrection:
		caps := make([]va.TotalColorCorrectionCap, va.TotalColorCorrectionCount)
		n, err := d.display.QueryTotalColorCorrectionCaps(context, caps)
		if d.failed(err, "failed to query total colour correction caps") {
			return
		}

		d.w.StartArray("types")
		for _, c := range caps[:n] {
			d.w.StartObject("")
			d.w.Int("type", int64(c.Type))
			if name, ok := c.Type.Name(); ok {
				d.w.String("name", name)
			}
			d.writeRange(c.Range)
			d.w.EndObject()
		}
		d.w.EndArray()

	case va.ProcFilterHVSNoiseReduction:
		// No caps, and the generic range query is rejected for this
		// filter.

	case va.ProcFilterHighDynamicRangeToneMapping:
		caps := make([]va.HDRToneMappingCap, va.HDRMetadataTypeCount)
		n, err := d.display.QueryHDRToneMappingCaps(context, caps)
		if d.failed(err, "failed to query HDR tone mapping caps") {
			return
		}

		d.w.StartArray("types")
		for _, c := range caps[:n] {
			d.w.StartObject("")
			d.w.Int("type", int64(c.MetadataType))
			if name, ok := c.MetadataType.Name(); ok {
				d.w.String("name", name)
			}
			writeFlagArray(d.w, "tone_mapping", c.CapsFlag, va.ToneMappings)
			d.w.EndObject()
		}
		d.w.EndArray()

	case va.ProcFilter3DLUT:
		caps := make([]va.LUT3DCap, lut3DCapSlots)
		n, err := d.display.Query3DLUTCaps(context, caps)
		if d.failed(err, "failed to query 3D LUT caps") {
			return
		}

		d.w.StartArray("types")
		for _, c := range caps[:n] {
			d.w.Int("lut_size", int64(c.LUTSize))
			d.w.StartArray("lut_stride")
			for _, stride := range c.LUTStride {
				d.w.Int("", int64(stride))
			}
			d.w.EndArray()
			d.w.Int("bit_depth", int64(c.BitDepth))
			d.w.Int("num_channel", int64(c.NumChannel))
			writeFlagArray(d.w, "channel_mapping", c.ChannelMapping, va.LUT3DChannels)
		}
		d.w.EndArray()

	default:
		caps := make([]va.FilterCap, 1)
		n, err := d.display.QueryFilterCaps(context, filter, caps)
		if d.failed(err, "failed to query filter caps") {
			return
		}
		if n > 0 {
			d.writeRange(caps[0].Range)
		}
	}
}

// dumpFilterPipeline probes the pipeline capability report for one filter,
// using a throwaway parameter buffer built from the filter's default
// parameters. Filters reporting no usable defaults are still probed, with
// an empty filter chain.
func (d *Dumper) dumpFilterPipeline(context va.ContextID, filter va.FilterType) {
	buffer := va.InvalidBuffer

	switch filter {
	case va.ProcFilterNone:

	case va.ProcFilterDeinterlacing:
		caps := make([]va.DeinterlacingCap, va.DeinterlacingCount)
		n, err := d.display.QueryDeinterlacingCaps(context, caps)
		if d.failed(err, "failed to query deinterlacing caps") {
			return
		}

		// Probe with the most capable algorithm reported.
		algorithm := va.DeinterlacingNone
		for _, c := range caps[:n] {
			if c.Type > algorithm {
				algorithm = c.Type
			}
		}

		if algorithm != va.DeinterlacingNone {
			buffer, err = d.display.CreateBuffer(context, va.ProcFilterParameterBufferType, va.DeinterlacingParam{
				Type:      filter,
				Algorithm: algorithm,
			})
			if d.failed(err, "failed to create deinterlacing parameter buffer") {
				return
			}
		}

	case va.ProcFilterColorBalance:
		caps := make([]va.ColorBalanceCap, va.ColorBalanceCount)
		n, err := d.display.QueryColorBalanceCaps(context, caps)
		if d.failed(err, "failed to query colour balance caps") {
			return
		}

		if n > 0 {
			params := make([]va.ColorBalanceParam, n)
			for i, c := range caps[:n] {
				params[i] = va.ColorBalanceParam{
					Type:   filter,
					Attrib: c.Type,
					Value:  c.Range.Default,
				}
			}
			buffer, err = d.display.CreateBuffer(context, va.ProcFilterParameterBufferType, params)
			if d.failed(err, "failed to create colour balance parameter buffer") {
				return
			}
		}

	case va.ProcFilterTotalColorCorrection:
		caps := make([]va.TotalColorCorrectionCap, va.TotalColorCorrectionCount)
		n, err := d.display.QueryTotalColorCorrectionCaps(context, caps)
		if d.failed(err, "failed to query total colour correction caps") {
			return
		}

		if n > 0 {
			params := make([]va.TotalColorCorrectionParam, n)
			for i, c := range caps[:n] {
				params[i] = va.TotalColorCorrectionParam{
					Type:   filter,
					Attrib: c.Type,
					Value:  c.Range.Default,
				}
			}
			buffer, err = d.display.CreateBuffer(context, va.ProcFilterParameterBufferType, params)
			if d.failed(err, "failed to create colour correction parameter buffer") {
				return
			}
		}

	case va.ProcFilterHVSNoiseReduction:
		var err error
		buffer, err = d.display.CreateBuffer(context, va.ProcFilterParameterBufferType, va.HVSNoiseReductionParam{
			Type:     filter,
			QP:       26,
			Strength: 10,
		})
		if d.failed(err, "failed to create HVS NR parameter buffer") {
			return
		}

	case va.ProcFilterHighDynamicRangeToneMapping:
		caps := make([]va.HDRToneMappingCap, va.HDRMetadataTypeCount)
		n, err := d.display.QueryHDRToneMappingCaps(context, caps)
		if d.failed(err, "failed to query HDR tone mapping caps") {
			return
		}

		if n > 0 && caps[0].MetadataType == va.HDRMetadataHDR10 {
			buffer, err = d.display.CreateBuffer(context, va.ProcFilterParameterBufferType, va.HDRToneMappingParam{
				Type:         filter,
				MetadataType: va.HDRMetadataHDR10,
				Metadata: &va.HDR10Metadata{
					DisplayPrimariesX:            [3]uint16{13245, 7500, 34000},
					DisplayPrimariesY:            [3]uint16{34500, 3000, 16000},
					WhitePointX:                  15635,
					WhitePointY:                  15635,
					MaxDisplayMasteringLuminance: 10000000,
					MinDisplayMasteringLuminance: 10,
				},
			})
			if d.failed(err, "failed to create HDR tone mapping parameter buffer") {
				return
			}
		}

	case va.ProcFilter3DLUT:
		caps := make([]va.LUT3DCap, lut3DCapSlots)
		n, err := d.display.Query3DLUTCaps(context, caps)
		if d.failed(err, "failed to query 3D LUT caps") {
			return
		}

		if n > 0 {
			buffer, err = d.display.CreateBuffer(context, va.ProcFilterParameterBufferType, va.LUT3DParam{
				Type:           filter,
				LUTSurface:     va.InvalidSurface,
				LUTSize:        caps[0].LUTSize,
				LUTStride:      caps[0].LUTStride,
				BitDepth:       caps[0].BitDepth,
				NumChannel:     caps[0].NumChannel,
				ChannelMapping: caps[0].ChannelMapping & -caps[0].ChannelMapping,
			})
			if d.failed(err, "failed to create 3D LUT parameter buffer") {
				return
			}
		}

	default:
		caps := make([]va.FilterCap, 1)
		n, err := d.display.QueryFilterCaps(context, filter, caps)
		if d.failed(err, "failed to query filter caps") {
			return
		}

		if n > 0 {
			buffer, err = d.display.CreateBuffer(context, va.ProcFilterParameterBufferType, va.FilterParam{
				Type:  filter,
				Value: caps[0].Range.Default,
			})
			if d.failed(err, "failed to create filter parameter buffer") {
				return
			}
		}
	}

	if buffer == va.InvalidBuffer {
		d.dumpPipelineCaps(context, nil)
		return
	}
	defer d.display.DestroyBuffer(buffer)

	d.dumpPipelineCaps(context, []va.BufferID{buffer})
}
