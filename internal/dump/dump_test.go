package dump

import (
	"bytes"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jacoelho/vadumpcaps/internal/document"
	"github.com/jacoelho/vadumpcaps/internal/va"
	"github.com/jacoelho/vadumpcaps/internal/va/snapshot"
)

// headerSnapshot is a single decode profile with a handful of attributes,
// small enough to compare rendered output verbatim.
const headerSnapshot = `
driver:
  version:
    major: 1
    minor: 17
  vendor: test-vendor 1.0
profiles:
  - profile: 6
    entrypoints:
      - entrypoint: 1
        attributes:
          - {type: 0, value: 0x1}
          - {type: 1, value: 7}
          - {type: 5, value: 0x12}
          - {type: 13, value: 0x10002}
`

// testSnapshot exercises the full hierarchy: surface formats on a decode
// profile, and the processing filter list with capability ranges and
// pipeline entries on the video processing pseudo profile.
const testSnapshot = `
driver:
  version:
    major: 1
    minor: 17
  vendor: test-vendor 1.0
profiles:
  - profile: 6
    entrypoints:
      - entrypoint: 1
        attributes:
          - {type: 0, value: 0x1}
        surface_formats:
          - rt_format: 0x1
            attributes:
              - {type: 1, flags: 3, format: NV12}
              - {type: 1, flags: 3, format: I420}
              - {type: 2, value: 32}
              - {type: 3, value: 4096}
              - {type: 4, value: 32}
              - {type: 5, value: 4096}
              - {type: 6, value: 0x60000001}
              - {type: 7, value: 0}
              - {type: 8, value: 0x17}
              - {type: 9, modifiers: [0, 144115188075855873]}
              - {type: 11, value: 42}
  - profile: -1
    entrypoints:
      - entrypoint: 10
        attributes:
          - {type: 0, value: 0x1}
        surface_formats:
          - rt_format: 0x1
            attributes:
              - {type: 1, flags: 3, format: NV12}
image_formats:
  - fourcc: NV12
    byte_order: 1
    bits_per_pixel: 12
subpicture_formats:
  - fourcc: BGRA
    byte_order: 1
    bits_per_pixel: 32
    depth: 32
    red_mask: 0xff0000
    green_mask: 0xff00
    blue_mask: 0xff
    alpha_mask: 0xff000000
    flags: 0x2
processing:
  filters: [3, 2, 1]
  deinterlacing:
    - type: 1
    - type: 3
  ranges:
    3: {min: 0, max: 1, default: 0.5, step: 0.1}
  pipelines:
    - filter: 0
      pipeline_flags: 0x1
      filter_flags: 0x3
      input_colour_standards: [1, 2]
      output_colour_standards: [1]
      rotation_flags: 0xf
      blend_flags: 0x10002
      mirror_flags: 0x7
      num_additional_outputs: 1
      input_pixel_formats: [NV12, I420]
      output_pixel_formats: [NV12]
      max_input_width: 4096
      max_input_height: 4096
      min_input_width: 16
      min_input_height: 16
      max_output_width: 4096
      max_output_height: 4096
      min_output_width: 16
      min_output_height: 16
    - filter: 2
      num_forward_references: 2
      num_backward_references: 1
    - filter: 3
      num_forward_references: 3
`

func parseSnapshot(t *testing.T, doc string) *snapshot.Display {
	t.Helper()

	display, err := snapshot.Parse([]byte(doc))
	require.NoError(t, err)
	return display
}

func runDump(t *testing.T, display va.Display, sections Section, opts document.Options) string {
	t.Helper()

	var buf bytes.Buffer
	d := New(display, document.NewWriter(&buf, opts), sections)
	require.NoError(t, d.Run())
	return buf.String()
}

func pretty() document.Options {
	return document.Options{Indent: document.DefaultIndent}
}

// parseReport reads a rendered document back as YAML, which tolerates the
// trailing commas inside flow collections. Only the root comma has to go.
func parseReport(t *testing.T, report string) map[string]any {
	t.Helper()

	trimmed := strings.TrimSuffix(strings.TrimSpace(report), ",")
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(trimmed), &doc))
	return doc
}

func child(t *testing.T, v any, key string) any {
	t.Helper()

	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	value, ok := m[key]
	require.True(t, ok, "missing key %q", key)
	return value
}

func object(t *testing.T, v any) map[string]any {
	t.Helper()

	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	return m
}

func list(t *testing.T, v any) []any {
	t.Helper()

	s, ok := v.([]any)
	require.True(t, ok, "expected array, got %T", v)
	return s
}

func stringValues(t *testing.T, v any) []string {
	t.Helper()

	items := list(t, v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		require.True(t, ok, "expected string, got %T", item)
		out = append(out, s)
	}
	return out
}

func asInt(t *testing.T, v any) int64 {
	t.Helper()

	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	default:
		t.Fatalf("expected integer, got %T", v)
		return 0
	}
}

// videoProcEntrypoint digs out the single entry point of the video
// processing pseudo profile from a parsed report.
func videoProcEntrypoint(t *testing.T, doc map[string]any) map[string]any {
	t.Helper()

	for _, p := range list(t, doc["profiles"]) {
		entry := object(t, p)
		if asInt(t, entry["profile"]) != -1 {
			continue
		}
		entrypoints := list(t, entry["entrypoints"])
		require.Len(t, entrypoints, 1)
		return object(t, entrypoints[0])
	}
	t.Fatal("report has no video processing profile")
	return nil
}

func filterEntry(t *testing.T, filters []any, filter int64) map[string]any {
	t.Helper()

	for _, item := range filters {
		entry := object(t, item)
		if asInt(t, entry["filter"]) == filter {
			return entry
		}
	}
	t.Fatalf("no entry for filter %d", filter)
	return nil
}

func TestRunRendersProfileHierarchy(t *testing.T) {
	display := parseSnapshot(t, headerSnapshot)

	got := runDump(t, display, SectionProfiles|SectionEntrypoints|SectionAttributes, pretty())

	want := `{
    "build_version": {
        "major": 1,
        "minor": 13,
        "micro": 0,
    },
    "driver_version": {
        "major": 1,
        "minor": 17,
    },
    "driver_vendor": "test-vendor 1.0",
    "profiles": [
        {
            "profile": 6,
            "name": "H264Main",
            "description": "H.264 / MPEG-4 part 10 (AVC) Main Profile",
            "entrypoints": [
                {
                    "entrypoint": 1,
                    "name": "VLD",
                    "description": "Decode Slice",
                    "attributes": {
                        "rt_formats": [
                            "YUV420",
                        ],
                        "unknown": {
                            "type": 1,
                            "value": 7,
                        },
                        "rate_control_modes": [
                            "CBR",
                            "CQP",
                        ],
                        "max_ref_frames": {
                            "list0": 2,
                            "list1": 1,
                        },
                    },
                },
            ],
        },
    ],
},
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRunEmptySnapshot(t *testing.T) {
	display := parseSnapshot(t, "driver:\n  version:\n    major: 1\n    minor: 0\n")

	got := runDump(t, display, AllSections, pretty())

	want := `{
    "build_version": {
        "major": 1,
        "minor": 13,
        "micro": 0,
    },
    "driver_version": {
        "major": 1,
        "minor": 0,
    },
    "driver_vendor": "unknown",
    "profiles": [
    ],
    "image_formats": [
    ],
    "subpicture_formats": [
    ],
},
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCompact(t *testing.T) {
	display := parseSnapshot(t, headerSnapshot)

	got := runDump(t, display, SectionProfiles, document.Options{Compact: true})

	assert.True(t, strings.HasPrefix(got, `{"build_version":{"major":1,"minor":13,"micro":0,},`), "got %q", got)
	assert.NotContains(t, got, "\n")
}

func TestRunSectionKeys(t *testing.T) {
	header := []string{"build_version", "driver_vendor", "driver_version"}
	everything := append(slices.Clone(header), "image_formats", "profiles", "subpicture_formats")

	tests := []struct {
		name     string
		sections Section
		want     []string
	}{
		{
			name:     "profiles only",
			sections: SectionProfiles,
			want:     append(slices.Clone(header), "profiles"),
		},
		{
			name:     "image formats only",
			sections: SectionImageFormats,
			want:     append(slices.Clone(header), "image_formats"),
		},
		{
			name:     "subpicture formats only",
			sections: SectionSubpictureFormats,
			want:     append(slices.Clone(header), "subpicture_formats"),
		},
		{
			name:     "everything",
			sections: AllSections,
			want:     everything,
		},
		{
			name:     "zero mask selects everything",
			sections: 0,
			want:     everything,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			display := parseSnapshot(t, testSnapshot)
			doc := parseReport(t, runDump(t, display, tc.sections, pretty()))

			got := slices.Sorted(maps.Keys(doc))
			want := slices.Clone(tc.want)
			slices.Sort(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("top level keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// countingDisplay wraps a display and counts selected calls, so tests can
// assert that unselected sections issue no queries at all.
type countingDisplay struct {
	va.Display
	profileQueries int
	configsCreated int
}

func (c *countingDisplay) QueryProfiles(dst []va.Profile) (int, error) {
	c.profileQueries++
	return c.Display.QueryProfiles(dst)
}

func (c *countingDisplay) CreateConfig(profile va.Profile, entrypoint va.Entrypoint, attribs []va.ConfigAttrib) (va.ConfigID, error) {
	c.configsCreated++
	return c.Display.CreateConfig(profile, entrypoint, attribs)
}

func TestRunSkipsUnselectedQueries(t *testing.T) {
	display := &countingDisplay{Display: parseSnapshot(t, testSnapshot)}

	doc := parseReport(t, runDump(t, display, SectionImageFormats, pretty()))

	assert.Equal(t, 0, display.profileQueries)
	assert.Equal(t, 0, display.configsCreated)
	assert.NotContains(t, doc, "profiles")
}

func TestRunSurfaceFormats(t *testing.T) {
	display := parseSnapshot(t, testSnapshot)

	doc := parseReport(t, runDump(t, display, AllSections, pretty()))

	profiles := list(t, doc["profiles"])
	entrypoints := list(t, child(t, profiles[0], "entrypoints"))
	formats := list(t, child(t, entrypoints[0], "surface_formats"))
	require.Len(t, formats, 1)

	format := object(t, formats[0])
	assert.Equal(t, "YUV420", format["rt_format"])
	assert.EqualValues(t, 32, asInt(t, format["min_width"]))
	assert.EqualValues(t, 4096, asInt(t, format["max_width"]))
	assert.EqualValues(t, 32, asInt(t, format["min_height"]))
	assert.EqualValues(t, 4096, asInt(t, format["max_height"]))
	assert.Equal(t, []string{"VA", "DRM_PRIME", "DRM_PRIME_2"}, stringValues(t, format["memory_types"]))
	assert.Equal(t, []string{"DECODER", "ENCODER", "VPP_READ", "DISPLAY"}, stringValues(t, format["usage_hints"]))
	assert.Equal(t, []string{"NV12", "I420"}, stringValues(t, format["pixel_formats"]))

	modifiers := list(t, format["drm_format_modifiers"])
	require.Len(t, modifiers, 2)
	assert.EqualValues(t, 0, asInt(t, modifiers[0]))
	assert.EqualValues(t, 144115188075855873, asInt(t, modifiers[1]))

	unknown := object(t, format["unknown"])
	assert.EqualValues(t, 11, asInt(t, unknown["type"]))
	assert.EqualValues(t, 42, asInt(t, unknown["value"]))
}

func TestRunSurfaceFormatsRequireAttributePass(t *testing.T) {
	display := &countingDisplay{Display: parseSnapshot(t, testSnapshot)}

	doc := parseReport(t, runDump(t, display, SectionProfiles|SectionEntrypoints|SectionSurfaceFormats, pretty()))

	// Without the attribute pass no pixel format classes are known, so
	// there is nothing to probe.
	assert.Equal(t, 0, display.configsCreated)

	for _, p := range list(t, doc["profiles"]) {
		for _, e := range list(t, child(t, p, "entrypoints")) {
			assert.NotContains(t, object(t, e), "surface_formats")
		}
	}
}

func TestRunFilterReports(t *testing.T) {
	display := parseSnapshot(t, testSnapshot)

	doc := parseReport(t, runDump(t, display, AllSections, pretty()))

	filters := list(t, videoProcEntrypoint(t, doc)["filters"])
	require.Len(t, filters, 4)

	var names []string
	for _, f := range filters {
		names = append(names, object(t, f)["name"].(string))
	}
	assert.Equal(t, []string{"None", "Sharpening", "Deinterlacing", "NoiseReduction"}, names)

	sharpening := filterEntry(t, filters, 3)
	assert.EqualValues(t, 0, sharpening["min_value"])
	assert.EqualValues(t, 1, sharpening["max_value"])
	assert.EqualValues(t, 0.5, sharpening["default_value"])
	assert.EqualValues(t, 0.1, sharpening["step"])

	deinterlacing := filterEntry(t, filters, 2)
	types := list(t, deinterlacing["types"])
	require.Len(t, types, 2)
	first := object(t, types[0])
	assert.EqualValues(t, 1, asInt(t, first["type"]))
	assert.Equal(t, "Bob", first["name"])
	second := object(t, types[1])
	assert.EqualValues(t, 3, asInt(t, second["type"]))
	assert.Equal(t, "MotionAdaptive", second["name"])

	// The noise reduction filter reports no capability range, so its entry
	// carries neither a range nor algorithm types.
	noiseReduction := filterEntry(t, filters, 1)
	assert.NotContains(t, noiseReduction, "min_value")
	assert.NotContains(t, noiseReduction, "types")
}

func TestRunPipelineReports(t *testing.T) {
	display := parseSnapshot(t, testSnapshot)

	doc := parseReport(t, runDump(t, display, AllSections, pretty()))
	filters := list(t, videoProcEntrypoint(t, doc)["filters"])

	pipeline := object(t, filterEntry(t, filters, 0)["pipeline"])
	assert.Equal(t, []string{"SUBPICTURES"}, stringValues(t, pipeline["pipeline_flags"]))
	assert.Equal(t, []string{"PROC_FILTER_MANDATORY", "TOP_FIELD", "BOTTOM_FIELD"}, stringValues(t, pipeline["filter_flags"]))
	assert.Equal(t, []string{"NONE", "90", "180", "270"}, stringValues(t, pipeline["rotation_flags"]))
	assert.Equal(t, []string{"GLOBAL_ALPHA", "LUMA_KEY"}, stringValues(t, pipeline["blend_flags"]))
	assert.Equal(t, []string{"NONE", "HORIZONTAL", "VERTICAL"}, stringValues(t, pipeline["mirror_flags"]))
	assert.Equal(t, []string{"NV12", "I420"}, stringValues(t, pipeline["input_pixel_formats"]))
	assert.Equal(t, []string{"NV12"}, stringValues(t, pipeline["output_pixel_formats"]))
	assert.EqualValues(t, 1, asInt(t, pipeline["num_additional_outputs"]))
	assert.EqualValues(t, 4096, asInt(t, pipeline["max_input_width"]))
	assert.EqualValues(t, 16, asInt(t, pipeline["min_output_height"]))

	standards := list(t, pipeline["input_colour_standards"])
	require.Len(t, standards, 2)
	first := object(t, standards[0])
	assert.EqualValues(t, 1, asInt(t, first["type"]))
	assert.Equal(t, "BT601", first["name"])
	second := object(t, standards[1])
	assert.EqualValues(t, 2, asInt(t, second["type"]))
	assert.Equal(t, "BT709", second["name"])

	// Deinterlacing probes with a parameter buffer for its best reported
	// algorithm and reaches its own pipeline entry.
	deinterlacing := object(t, filterEntry(t, filters, 2)["pipeline"])
	assert.EqualValues(t, 2, asInt(t, deinterlacing["num_forward_references"]))
	assert.EqualValues(t, 1, asInt(t, deinterlacing["num_backward_references"]))

	sharpening := object(t, filterEntry(t, filters, 3)["pipeline"])
	assert.EqualValues(t, 3, asInt(t, sharpening["num_forward_references"]))

	// With no capability range there is no parameter buffer to build, so
	// the noise reduction probe falls back to the empty filter chain.
	noiseReduction := object(t, filterEntry(t, filters, 1)["pipeline"])
	assert.EqualValues(t, 1, asInt(t, noiseReduction["num_additional_outputs"]))
	assert.EqualValues(t, 0, asInt(t, noiseReduction["num_forward_references"]))
}

func TestRunFiltersWithoutAttributePass(t *testing.T) {
	display := parseSnapshot(t, testSnapshot)

	sections := SectionProfiles | SectionEntrypoints | SectionFilters | SectionFilterCaps | SectionPipelineCaps
	doc := parseReport(t, runDump(t, display, sections, pretty()))

	// The filter walk does not depend on the attribute pass; it probes
	// with whatever pixel format classes were reported, including none.
	entrypoint := videoProcEntrypoint(t, doc)
	assert.NotContains(t, entrypoint, "attributes")
	assert.Len(t, list(t, entrypoint["filters"]), 4)

	profiles := list(t, doc["profiles"])
	decode := list(t, child(t, profiles[0], "entrypoints"))
	assert.NotContains(t, object(t, decode[0]), "filters")
}

func TestRunImageFormats(t *testing.T) {
	display := parseSnapshot(t, testSnapshot)

	doc := parseReport(t, runDump(t, display, AllSections, pretty()))

	images := list(t, doc["image_formats"])
	require.Len(t, images, 1)
	image := object(t, images[0])
	assert.Equal(t, "NV12", image["pixel_format"])
	assert.Equal(t, "LE", image["byte_order"])
	assert.EqualValues(t, 12, asInt(t, image["bits_per_pixel"]))
	assert.NotContains(t, image, "depth")

	subpictures := list(t, doc["subpicture_formats"])
	require.Len(t, subpictures, 1)
	subpicture := object(t, subpictures[0])
	assert.Equal(t, "BGRA", subpicture["pixel_format"])
	assert.EqualValues(t, 32, asInt(t, subpicture["depth"]))
	assert.EqualValues(t, 0xff0000, asInt(t, subpicture["red_mask"]))
	assert.EqualValues(t, 0xff000000, asInt(t, subpicture["alpha_mask"]))
	assert.Equal(t, []string{"GLOBAL_ALPHA"}, stringValues(t, subpicture["flags"]))
}

func TestRunQueryFailureTruncatesBranch(t *testing.T) {
	display := parseSnapshot(t, testSnapshot)
	display.FailOnce("QueryEntrypoints", va.StatusErrorOperationFailed)

	core, logs := observer.New(zapcore.ErrorLevel)

	var buf bytes.Buffer
	d := New(display, document.NewWriter(&buf, pretty()), SectionProfiles|SectionEntrypoints|SectionAttributes)
	d.SetLogger(zap.New(core).Sugar())
	require.NoError(t, d.Run())

	doc := parseReport(t, buf.String())
	profiles := list(t, doc["profiles"])
	require.Len(t, profiles, 2)

	// The failed query removes only the first profile's branch; the second
	// profile is unaffected.
	assert.NotContains(t, object(t, profiles[0]), "entrypoints")
	assert.Len(t, list(t, child(t, profiles[1], "entrypoints")), 1)

	entries := logs.FilterMessage("unable to query entrypoints").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, uint32(va.StatusErrorOperationFailed), fields["status"])
	assert.Equal(t, va.StatusErrorOperationFailed.Description(), fields["description"])
}

func TestRunLeavesNoLiveHandles(t *testing.T) {
	display := parseSnapshot(t, testSnapshot)

	runDump(t, display, AllSections, pretty())

	assert.Equal(t, 0, display.Leaked())
}
