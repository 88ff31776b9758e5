package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jacoelho/vadumpcaps/internal/config"
	"github.com/jacoelho/vadumpcaps/internal/document"
	"github.com/jacoelho/vadumpcaps/internal/dump"
	"github.com/jacoelho/vadumpcaps/internal/exit"
	"github.com/jacoelho/vadumpcaps/internal/logging"
	"github.com/jacoelho/vadumpcaps/internal/query"
	"github.com/jacoelho/vadumpcaps/internal/ratelimit"
	"github.com/jacoelho/vadumpcaps/internal/va/snapshot"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCommand(stdout)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		result := exit.FromError(err)
		result.Print()
		return result.ExitCode
	}

	return 0
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vadumpcaps [options] <snapshot.yaml>",
		Short:         "Report VA-API capabilities recorded in a driver snapshot",
		Long:          config.Usage(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpCapabilities(cmd, args, stdout)
		},
	}
	cmd.SetOut(stdout)

	config.AddFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exit.Errorf("Error: %v\n\n%s\n", err, config.Usage())
	})

	return cmd
}

func dumpCapabilities(cmd *cobra.Command, args []string, stdout io.Writer) error {
	cfg, err := config.Parse(cmd.Flags(), args)
	if err != nil {
		return exit.Errorf("Error: %v\n\n%s\n", err, config.Usage())
	}

	logger := logging.New(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	var q *query.Query
	if cfg.Query != "" {
		if q, err = query.Parse(cfg.Query); err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
	}

	display, err := snapshot.Load(cfg.SnapshotPath)
	if err != nil {
		return exit.Errorf("Failed to open %s: %v\n", cfg.SnapshotPath, err)
	}

	paced := ratelimit.Wrap(cmd.Context(), display, cfg.QueryRate)
	logger.Debugw("snapshot opened",
		"path", cfg.SnapshotPath,
		"vendor", display.Vendor(),
		"query_rate", paced.Limit(),
	)

	sink := stdout
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return exit.Errorf("Failed to create %s: %v\n", cfg.Output, err)
		}
		defer file.Close()
		sink = file
	}

	// With a query the report is rendered off to the side and only the
	// selected values reach the sink.
	out := sink
	var report bytes.Buffer
	if q != nil {
		out = &report
	}

	writer := document.NewWriter(out, document.Options{
		Indent:  cfg.Indent,
		Compact: cfg.Ugly,
	})

	dumper := dump.New(paced, writer, cfg.Sections)
	dumper.SetLogger(logger)

	if err := dumper.Run(); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	if leaked := display.Leaked(); leaked != 0 {
		logger.Warnw("live handles left after dump", "count", leaked)
	}

	if q == nil {
		return nil
	}

	matches, err := q.Select(report.Bytes())
	if err != nil {
		if errors.Is(err, query.ErrNoMatch) {
			return exit.Errorf("Error: no match for query %s\n", cfg.Query)
		}
		return exit.Errorf("Error: %v\n", err)
	}

	for _, match := range matches {
		fmt.Fprintln(sink, match)
	}

	return nil
}
