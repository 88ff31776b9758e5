package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `
driver:
    version: {major: 1, minor: 17}
    vendor: test-vendor 1.0
profiles:
    - profile: 6
      entrypoints:
          - entrypoint: 1
            attributes:
                - {type: 0, value: 0x1}
                - {type: 5, value: 0x12}
image_formats:
    - {fourcc: NV12, byte_order: 1, bits_per_pixel: 12}
`

func writeSnapshot(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))

	return path
}

// parseReport reads the trailing-comma dialect back as YAML flow syntax.
func parseReport(t *testing.T, report string) map[string]any {
	t.Helper()

	trimmed := strings.TrimSuffix(strings.TrimSpace(report), ",")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(trimmed), &doc))

	return doc
}

func TestRunFullReport(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{path}, &out)
	require.Equal(t, 0, code)

	doc := parseReport(t, out.String())
	assert.Equal(t, "test-vendor 1.0", doc["driver_vendor"])
	assert.Contains(t, doc, "build_version")
	assert.Contains(t, doc, "profiles")
	assert.Contains(t, doc, "image_formats")
	assert.Contains(t, doc, "subpicture_formats")
}

func TestRunSectionFlagLimitsReport(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{"-m", path}, &out)
	require.Equal(t, 0, code)

	doc := parseReport(t, out.String())
	assert.Contains(t, doc, "image_formats")
	assert.NotContains(t, doc, "profiles")
	assert.NotContains(t, doc, "subpicture_formats")
}

func TestRunCompactReport(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{"-u", path}, &out)
	require.Equal(t, 0, code)

	report := out.String()
	assert.True(t, strings.HasPrefix(report, `{"build_version":{"major":`), "got %q", report)
	assert.NotContains(t, report, "\n")
}

func TestRunWritesOutputFile(t *testing.T) {
	path := writeSnapshot(t)
	outFile := filepath.Join(t.TempDir(), "report.json")

	var out bytes.Buffer
	code := run([]string{"-o", outFile, path}, &out)
	require.Equal(t, 0, code)
	assert.Zero(t, out.Len())

	report, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(report), `"driver_vendor": "test-vendor 1.0",`)
}

func TestRunQuery(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{"--query", "$.driver_vendor", path}, &out)
	require.Equal(t, 0, code)
	assert.Equal(t, "test-vendor 1.0\n", out.String())
}

func TestRunQueryList(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{"--query", "$.profiles[*].name", path}, &out)
	require.Equal(t, 0, code)
	assert.Equal(t, "H264Main\n", out.String())
}

func TestRunQueryNoMatch(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{"--query", "$.missing", path}, &out)
	assert.Equal(t, 1, code)
	assert.Zero(t, out.Len())
}

func TestRunInvalidQuery(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{"--query", "$[", path}, &out)
	assert.Equal(t, 1, code)
}

func TestRunMissingSnapshot(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "absent.yaml")}, &out)
	assert.Equal(t, 1, code)
}

func TestRunUnknownFlag(t *testing.T) {
	path := writeSnapshot(t)

	var out bytes.Buffer
	code := run([]string{"--bogus", path}, &out)
	assert.Equal(t, 1, code)
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--help"}, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage: vadumpcaps")
}
