package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/jacoelho/vadumpcaps/internal/dump"
)

// parseArgs runs the flag surface over argv the way the CLI does.
func parseArgs(t *testing.T, argv []string) (*Config, error) {
	t.Helper()

	fs := pflag.NewFlagSet("vadumpcaps", pflag.ContinueOnError)
	AddFlags(fs)
	if err := fs.Parse(argv); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	return Parse(fs, fs.Args())
}

func writeSnapshotFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	content := "driver:\n    version: {major: 1, minor: 17}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestParse(t *testing.T) {
	snapshotFile := writeSnapshotFile(t)

	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{snapshotFile},
			want: &Config{
				SnapshotPath: snapshotFile,
				Indent:       4,
			},
		},
		{
			name: "short_section_flags_combine",
			args: []string{"-p", "-e", snapshotFile},
			want: &Config{
				SnapshotPath: snapshotFile,
				Indent:       4,
				Sections:     dump.SectionProfiles | dump.SectionEntrypoints,
			},
		},
		{
			name: "long_section_flags",
			args: []string{"--image-formats", "--subpicture-formats", snapshotFile},
			want: &Config{
				SnapshotPath: snapshotFile,
				Indent:       4,
				Sections:     dump.SectionImageFormats | dump.SectionSubpictureFormats,
			},
		},
		{
			name: "all_overrides_individual_sections",
			args: []string{"-a", "-p", snapshotFile},
			want: &Config{
				SnapshotPath: snapshotFile,
				Indent:       4,
				Sections:     dump.AllSections,
			},
		},
		{
			name: "ugly_with_indent",
			args: []string{"-u", "-i", "2", snapshotFile},
			want: &Config{
				SnapshotPath: snapshotFile,
				Indent:       2,
				Ugly:         true,
			},
		},
		{
			name: "output_and_verbose",
			args: []string{"-o", "report.json", "-v", snapshotFile},
			want: &Config{
				SnapshotPath: snapshotFile,
				Indent:       4,
				Output:       "report.json",
				Verbose:      true,
			},
		},
		{
			name: "query_flags",
			args: []string{"--query", "$.profiles[*].name", "--query-rate", "2.5", snapshotFile},
			want: &Config{
				SnapshotPath: snapshotFile,
				Indent:       4,
				Query:        "$.profiles[*].name",
				QueryRate:    2.5,
			},
		},
		{
			name:    "no_arguments",
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "two_snapshots",
			args:    []string{snapshotFile, snapshotFile},
			wantErr: true,
		},
		{
			name:    "missing_snapshot",
			args:    []string{filepath.Join(t.TempDir(), "absent.yaml")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(t, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseErrorValues(t *testing.T) {
	if _, err := parseArgs(t, nil); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Parse() error = %v, want %v", err, ErrNoSnapshot)
	}

	if _, err := parseArgs(t, []string{"a.yaml", "b.yaml"}); !errors.Is(err, ErrTooManyArguments) {
		t.Errorf("Parse() error = %v, want %v", err, ErrTooManyArguments)
	}
}

func TestParseEnvironmentDefaults(t *testing.T) {
	snapshotFile := writeSnapshotFile(t)

	t.Setenv("VADUMPCAPS_INDENT", "2")
	t.Setenv("VADUMPCAPS_OUTPUT", "env.json")
	t.Setenv("VADUMPCAPS_VERBOSE", "true")

	cfg, err := parseArgs(t, []string{snapshotFile})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Indent != 2 {
		t.Errorf("Indent = %d, want 2", cfg.Indent)
	}
	if cfg.Output != "env.json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "env.json")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestParseFlagsOverrideEnvironment(t *testing.T) {
	snapshotFile := writeSnapshotFile(t)

	t.Setenv("VADUMPCAPS_INDENT", "2")
	t.Setenv("VADUMPCAPS_OUTPUT", "env.json")

	cfg, err := parseArgs(t, []string{"--indent", "8", "--output", "flag.json", snapshotFile})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Indent != 8 {
		t.Errorf("Indent = %d, want 8", cfg.Indent)
	}
	if cfg.Output != "flag.json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "flag.json")
	}
}

func TestUsageListsSectionFlags(t *testing.T) {
	usage := Usage()

	for _, sf := range sectionFlags {
		if !strings.Contains(usage, "--"+sf.name) {
			t.Errorf("usage text missing --%s", sf.name)
		}
	}
}
