// Package dump walks a device's capability hierarchy and renders it as a
// nested document.
//
// The walk is strictly hierarchical: profiles contain entry points, entry
// points contain attributes, surface formats and (for video processing)
// filters, and filters carry capability and pipeline reports. Each level
// runs only when its section is selected. A failed query abandons the
// branch it occurred in and is reported through the logger; siblings and
// shallower levels continue.
package dump

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/jacoelho/vadumpcaps/internal/document"
	"github.com/jacoelho/vadumpcaps/internal/va"
)

// Section selects parts of the capability hierarchy. Sections combine as a
// bitmask.
type Section uint32

const (
	SectionProfiles Section = 1 << iota
	SectionEntrypoints
	SectionAttributes
	SectionSurfaceFormats
	SectionFilters
	SectionFilterCaps
	SectionPipelineCaps
	SectionImageFormats
	SectionSubpictureFormats

	// AllSections selects everything.
	AllSections = SectionSubpictureFormats<<1 - 1
)

// Dumper drives capability queries against a display and writes the
// resulting document.
type Dumper struct {
	display  va.Display
	w        *document.Writer
	sections Section
	log      *zap.SugaredLogger
}

// New returns a Dumper writing to w. An empty section mask selects all
// sections.
func New(display va.Display, w *document.Writer, sections Section) *Dumper {
	if sections == 0 {
		sections = AllSections
	}
	return &Dumper{
		display:  display,
		w:        w,
		sections: sections,
		log:      zap.NewNop().Sugar(),
	}
}

// SetLogger replaces the diagnostic logger used for query failures.
func (d *Dumper) SetLogger(log *zap.SugaredLogger) {
	d.log = log
}

func (d *Dumper) enabled(s Section) bool {
	return d.sections&s != 0
}

// failed reports a query error and tells the caller to abandon the current
// branch.
func (d *Dumper) failed(err error, msg string) bool {
	if err == nil {
		return false
	}
	var status va.Status
	if errors.As(err, &status) {
		d.log.Errorw(msg, "status", uint32(status), "description", status.Description())
	} else {
		d.log.Errorw(msg, "error", err)
	}
	return true
}

// Run walks the selected sections and writes the document. Query failures
// are reported through the logger and truncate only their own branch; Run
// returns an error only when the writer cannot flush.
func (d *Dumper) Run() error {
	d.w.StartObject("")

	d.w.StartObject("build_version")
	d.w.Int("major", va.VersionMajor)
	d.w.Int("minor", va.VersionMinor)
	d.w.Int("micro", va.VersionMicro)
	d.w.EndObject()

	major, minor := d.display.Version()
	d.w.StartObject("driver_version")
	d.w.Int("major", int64(major))
	d.w.Int("minor", int64(minor))
	d.w.EndObject()

	vendor := d.display.Vendor()
	if vendor == "" {
		vendor = "unknown"
	}
	d.w.String("driver_vendor", vendor)

	if d.enabled(SectionProfiles) {
		d.w.StartArray("profiles")
		d.dumpProfiles()
		d.w.EndArray()
	}

	if d.enabled(SectionImageFormats) {
		d.w.StartArray("image_formats")
		d.dumpImageFormats()
		d.w.EndArray()
	}

	if d.enabled(SectionSubpictureFormats) {
		d.w.StartArray("subpicture_formats")
		d.dumpSubpictureFormats()
		d.w.EndArray()
	}

	d.w.EndObject()

	return d.w.Flush()
}

func (d *Dumper) dumpProfiles() {
	profiles := make([]va.Profile, d.display.MaxNumProfiles())
	n, err := d.display.QueryProfiles(profiles)
	if d.failed(err, "unable to query profiles") {
		return
	}

	for _, profile := range profiles[:n] {
		d.w.StartObject("")

		d.w.Int("profile", int64(profile))
		if name, description, ok := profile.Describe(); ok {
			d.w.String("name", name)
			d.w.String("description", description)
		}

		if d.enabled(SectionEntrypoints) {
			d.dumpEntrypoints(profile)
		}

		d.w.EndObject()
	}
}

func (d *Dumper) dumpEntrypoints(profile va.Profile) {
	entrypoints := make([]va.Entrypoint, d.display.MaxNumEntrypoints())
	n, err := d.display.QueryEntrypoints(profile, entrypoints)
	if d.failed(err, "unable to query entrypoints") {
		// No entrypoints key at all for this profile, not an empty array.
		return
	}

	d.w.StartArray("entrypoints")
	for _, entrypoint := range entrypoints[:n] {
		d.w.StartObject("")

		d.w.Int("entrypoint", int64(entrypoint))
		if name, description, ok := entrypoint.Describe(); ok {
			d.w.String("name", name)
			d.w.String("description", description)
		}

		// The attribute pass reports the supported pixel format classes,
		// which the surface format and filter probes below reuse.
		var rtFormats uint32

		if d.enabled(SectionAttributes) {
			d.w.StartObject("attributes")
			d.dumpConfigAttributes(profile, entrypoint, &rtFormats)
			d.w.EndObject()
		}

		if d.enabled(SectionSurfaceFormats) && rtFormats != 0 {
			d.w.StartArray("surface_formats")
			d.dumpSurfaceFormats(profile, entrypoint, rtFormats)
			d.w.EndArray()
		}

		if d.enabled(SectionFilters) && entrypoint == va.EntrypointVideoProc {
			d.dumpFilters(rtFormats)
		}

		d.w.EndObject()
	}
	d.w.EndArray()
}

// writeFlagArray renders the names of the table flags set in value, in
// table order. Bits without a table entry are dropped.
func writeFlagArray(w *document.Writer, tag string, value uint32, names []va.FlagName) {
	w.StartArray(tag)
	for _, f := range names {
		if value&f.Flag != 0 {
			w.String("", f.Name)
		}
	}
	w.EndArray()
}

// writeValueBitArray renders the names whose enumerant value, taken as a
// bit index, is set in value.
func writeValueBitArray(w *document.Writer, tag string, value uint32, names []va.ValueName) {
	w.StartArray(tag)
	for _, v := range names {
		if value&(1<<uint32(v.Value)) != 0 {
			w.String("", v.Name)
		}
	}
	w.EndArray()
}
