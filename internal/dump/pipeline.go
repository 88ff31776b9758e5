package dump

import (
	"github.com/jacoelho/vadumpcaps/internal/va"
)

func (d *Dumper) dumpPipelineCaps(context va.ContextID, filters []va.BufferID) {
	caps, err := d.display.QueryVideoProcPipelineCaps(context, filters)
	if d.failed(err, "failed to query pipeline caps") {
		return
	}

	d.w.StartObject("pipeline")

	writeFlagArray(d.w, "pipeline_flags", caps.PipelineFlags, va.PipelineFlags)
	writeFlagArray(d.w, "filter_flags", caps.FilterFlags, va.FilterFlags)

	d.w.Int("num_forward_references", int64(caps.NumForwardReferences))
	d.w.Int("num_backward_references", int64(caps.NumBackwardReferences))

	d.writeColorStandards("input_colour_standards", caps.InputColorStandards)
	d.writeColorStandards("output_colour_standards", caps.OutputColorStandards)

	writeValueBitArray(d.w, "rotation_flags", caps.RotationFlags, va.Rotations)
	writeValueBitArray(d.w, "blend_flags", caps.BlendFlags, va.BlendModes)
	writeValueBitArray(d.w, "mirror_flags", caps.MirrorFlags, va.Mirrors)

	d.w.Int("num_additional_outputs", int64(caps.NumAdditionalOutputs))

	d.w.StartArray("input_pixel_formats")
	for _, format := range caps.InputPixelFormats {
		d.w.String("", format.String())
	}
	d.w.EndArray()

	d.w.StartArray("output_pixel_formats")
	for _, format := range caps.OutputPixelFormats {
		d.w.String("", format.String())
	}
	d.w.EndArray()

	d.w.Int("max_input_width", int64(caps.MaxInputWidth))
	d.w.Int("max_input_height", int64(caps.MaxInputHeight))
	d.w.Int("min_input_width", int64(caps.MinInputWidth))
	d.w.Int("min_input_height", int64(caps.MinInputHeight))

	d.w.Int("max_output_width", int64(caps.MaxOutputWidth))
	d.w.Int("max_output_height", int64(caps.MaxOutputHeight))
	d.w.Int("min_output_width", int64(caps.MinOutputWidth))
	d.w.Int("min_output_height", int64(caps.MinOutputHeight))

	d.w.EndObject()
}

// writeColorStandards renders colour standards as type/name pairs. Codes
// without a table entry keep their number and are named "unknown".
func (d *Dumper) writeColorStandards(tag string, standards []va.ColorStandard) {
	d.w.StartArray(tag)
	for _, standard := range standards {
		d.w.StartObject("")
		d.w.Int("type", int64(standard))
		if name, ok := standard.Name(); ok {
			d.w.String("name", name)
		} else {
			d.w.String("name", "unknown")
		}
		d.w.EndObject()
	}
	d.w.EndArray()
}
