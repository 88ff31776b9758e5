// Package logging builds the console logger for the vadumpcaps CLI.
//
// Diagnostics go to stderr so the rendered report on stdout stays parseable.
// The quiet default only surfaces query failures; verbose mode lowers the
// level to debug and tags every entry with a run id and host facts so logs
// from different machines can be told apart.
package logging

import (
	"os"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing human-readable console output to stderr.
func New(verbose bool) *zap.SugaredLogger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)).Sugar()

	if verbose {
		logger = logger.With(runFields()...)
	}

	return logger
}

// runFields identifies a verbose run. Probe failures drop the field rather
// than failing logger construction.
func runFields() []any {
	fields := []any{"run_id", uuid.NewString()}

	if cores, err := cpu.Counts(true); err == nil {
		fields = append(fields, "cpu_cores", cores)
	}
	if vmem, err := mem.VirtualMemory(); err == nil {
		fields = append(fields, "memory_total", vmem.Total)
	}

	return fields
}
