// Package config resolves the vadumpcaps command line into a validated Config.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jacoelho/vadumpcaps/internal/document"
	"github.com/jacoelho/vadumpcaps/internal/dump"
)

// EnvPrefix is the prefix of environment variables that provide flag
// defaults, such as VADUMPCAPS_INDENT.
const EnvPrefix = "VADUMPCAPS"

var (
	ErrNoSnapshot       = errors.New("no snapshot file specified")
	ErrTooManyArguments = errors.New("expected a single snapshot file")
)

// Config represents the complete configuration for the vadumpcaps tool.
type Config struct {
	// Snapshot input
	SnapshotPath string

	// Report rendering
	Indent int
	Ugly   bool

	// Section selection (zero selects every section)
	Sections dump.Section

	// Report destination (empty for stdout)
	Output string

	// Post-dump query
	Query     string
	QueryRate float64 // display queries per second (0 for unlimited)

	Verbose bool
}

// sectionFlags maps the section flags to the mask bit each one selects.
var sectionFlags = []struct {
	name    string
	short   string
	section dump.Section
	usage   string
}{
	{"profiles", "p", dump.SectionProfiles, "Dump supported profiles"},
	{"entrypoints", "e", dump.SectionEntrypoints, "Dump entrypoints for each profile"},
	{"attributes", "t", dump.SectionAttributes, "Dump config attributes for each entrypoint"},
	{"surface-formats", "s", dump.SectionSurfaceFormats, "Dump surface formats for each entrypoint"},
	{"filters", "f", dump.SectionFilters, "Dump video processing filters"},
	{"filter-caps", "c", dump.SectionFilterCaps, "Dump capabilities for each filter"},
	{"pipeline-caps", "l", dump.SectionPipelineCaps, "Dump pipeline capabilities for each filter"},
	{"image-formats", "m", dump.SectionImageFormats, "Dump image formats"},
	{"subpicture-formats", "b", dump.SectionSubpictureFormats, "Dump subpicture formats"},
}

// AddFlags registers the vadumpcaps flag surface on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.IntP("indent", "i", document.DefaultIndent, "Number of spaces per indent level")
	fs.BoolP("ugly", "u", false, "Compact output without whitespace")
	fs.StringP("output", "o", "", "Write the report to a file instead of stdout")
	fs.BoolP("all", "a", false, "Dump every section")

	for _, sf := range sectionFlags {
		fs.BoolP(sf.name, sf.short, false, sf.usage)
	}

	fs.String("query", "", "JSONPath expression evaluated against the report")
	fs.Float64("query-rate", 0, "Maximum display queries per second (0 for unlimited)")
	fs.BoolP("verbose", "v", false, "Enable debug diagnostics on stderr")
}

// Parse resolves a parsed flag set and the positional arguments into a
// validated Config. Environment variables provide defaults for indent,
// output and verbose; explicit flags win.
func Parse(fs *pflag.FlagSet, args []string) (*Config, error) {
	switch {
	case len(args) == 0:
		return nil, ErrNoSnapshot
	case len(args) > 1:
		return nil, errors.Wrapf(ErrTooManyArguments, "got %d arguments", len(args))
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("indent", document.DefaultIndent)
	v.SetDefault("output", "")
	v.SetDefault("verbose", false)

	for _, name := range []string{"indent", "output", "verbose"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return nil, errors.Wrapf(err, "bind flag %s", name)
		}
	}

	cfg := &Config{
		SnapshotPath: args[0],
		Indent:       v.GetInt("indent"),
		Output:       v.GetString("output"),
		Verbose:      v.GetBool("verbose"),
	}

	var err error
	if cfg.Ugly, err = fs.GetBool("ugly"); err != nil {
		return nil, err
	}
	if cfg.Query, err = fs.GetString("query"); err != nil {
		return nil, err
	}
	if cfg.QueryRate, err = fs.GetFloat64("query-rate"); err != nil {
		return nil, err
	}

	all, err := fs.GetBool("all")
	if err != nil {
		return nil, err
	}
	if all {
		cfg.Sections = dump.AllSections
	} else {
		for _, sf := range sectionFlags {
			selected, err := fs.GetBool(sf.name)
			if err != nil {
				return nil, err
			}
			if selected {
				cfg.Sections |= sf.section
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.SnapshotPath == "" {
		return ErrNoSnapshot
	}

	if _, err := os.Stat(c.SnapshotPath); err != nil {
		return errors.Wrapf(err, "snapshot file %s not found", c.SnapshotPath)
	}

	return nil
}

// Usage returns the help text for the CLI tool.
func Usage() string {
	return `vadumpcaps - report VA-API capabilities from a driver snapshot

Usage: vadumpcaps [options] <snapshot.yaml>

Options:
  -i, --indent N            Number of spaces per indent level (default: 4)
  -u, --ugly                Compact output without whitespace
  -o, --output FILE         Write the report to a file instead of stdout
  -a, --all                 Dump every section
  -p, --profiles            Dump supported profiles
  -e, --entrypoints         Dump entrypoints for each profile
  -t, --attributes          Dump config attributes for each entrypoint
  -s, --surface-formats     Dump surface formats for each entrypoint
  -f, --filters             Dump video processing filters
  -c, --filter-caps         Dump capabilities for each filter
  -l, --pipeline-caps       Dump pipeline capabilities for each filter
  -m, --image-formats       Dump image formats
  -b, --subpicture-formats  Dump subpicture formats
      --query EXPR          JSONPath expression evaluated against the report
      --query-rate N        Maximum display queries per second (0 for unlimited)
  -v, --verbose             Enable debug diagnostics on stderr
  -h, --help                Show this help message

Selecting no section dumps everything. Environment variables VADUMPCAPS_INDENT,
VADUMPCAPS_OUTPUT and VADUMPCAPS_VERBOSE provide defaults; flags win.

Examples:
  vadumpcaps snapshot.yaml                         # Full capability report
  vadumpcaps -u snapshot.yaml                      # Compact single-line report
  vadumpcaps -p -e snapshot.yaml                   # Profiles and entrypoints only
  vadumpcaps --query '$.profiles[*].name' snapshot.yaml`
}
