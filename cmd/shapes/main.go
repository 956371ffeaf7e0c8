// Package main is the entry point for the shapes CLI.
//
// The report goes to stdout; log entries go to stderr.
//
// Usage:
//
//	go run ./cmd/shapes                      # demo
//	go run ./cmd/shapes convert 2.5 m cm
//	go run ./cmd/shapes describe circle 4 --unit m
//	go run ./cmd/shapes compare rectangle:10,5 circle:4
//	go run ./cmd/shapes -o yaml describe sphere 1.5
//
// Environment Variables:
//
//	GEO_LOG_LEVEL       - Minimum log level (debug, info, warn, error)
//	GEO_LOG_FORMAT      - Log encoding (console, json)
//	GEO_DISPLAY_COMPACT - Render large metrics with K/M suffixes
//	GEO_DEMO_UNIT       - Target unit of the demo conversion round trip
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hapkiduki/geoshapes/internal/application/dto"
	"github.com/hapkiduki/geoshapes/internal/application/port"
	"github.com/hapkiduki/geoshapes/internal/infrastructure/config"
	"github.com/hapkiduki/geoshapes/internal/interfaces/cli"
	"github.com/hapkiduki/geoshapes/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	a := &app{}
	defer a.sync()

	if err := a.rootCommand(os.Stdout).ExecuteContext(context.Background()); err != nil {
		a.fail(err)
		a.sync()
		os.Exit(1)
	}
}

// app owns the process-wide logger so it can be flushed on every exit path.
type app struct {
	log *logger.Logger
	env *cli.Env
}

// fail reports err on stderr and, for JSON or YAML output, as an error
// report on the report stream.
func (a *app) fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if a.env == nil || !a.env.Structured() {
		return
	}
	if a.env.Log != nil {
		a.env.Log.Error("Command failed", "code", dto.ErrorCode(err), "error", err)
	}
	_ = a.env.WriteReport(dto.NewErrorReport(err))
}

func (a *app) sync() {
	if a.log != nil {
		// stderr may not support fsync
		_ = a.log.Sync()
	}
}

// rootCommand builds the command tree. Subcommands share env, which is
// populated in PersistentPreRunE once flags are parsed.
func (a *app) rootCommand(out io.Writer) *cobra.Command {
	var (
		configPath string
		output     string
		verbose    bool
	)
	env := &cli.Env{Out: out}
	a.env = env

	root := &cobra.Command{
		Use:   "shapes",
		Short: "Compute and compare areas, perimeters and volumes of basic shapes",
		Long: `shapes works with rectangles, circles, cubes and spheres.

Without a subcommand it runs the demo: a sample set is built, tabulated,
compared pairwise, converted to another unit and back, and described.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseFormat(output)
			if err != nil {
				return err
			}
			env.Format = format

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logCfg := logger.Config{
				Level:       cfg.Log.Level,
				Format:      cfg.Log.Format,
				Development: cfg.App.Environment == "development",
			}
			if verbose {
				logCfg.Level = "debug"
			}
			log, err := logger.New(logCfg)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			a.log = log

			ctx := context.WithValue(cmd.Context(), logger.RunIDKey, uuid.NewString())
			ctx = context.WithValue(ctx, logger.CommandKey, cmd.Name())
			cmd.SetContext(ctx)

			env.Config = cfg
			env.Log = (&loggerAdapter{log.Named(cfg.App.Name)}).WithContext(ctx)
			env.Log.Debug("Configuration loaded",
				"version", version,
				"environment", cfg.App.Environment,
				"config_file", configPath,
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunDemo(env)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: config.yaml in ., ./configs or /etc/geoshapes)")
	root.PersistentFlags().StringVarP(&output, "output", "o", cli.FormatText, "report format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		cli.NewDemoCommand(env),
		cli.NewConvertCommand(env),
		cli.NewDescribeCommand(env),
		cli.NewCompareCommand(env),
		cli.NewScaleCommand(env),
		cli.NewUnitsCommand(env),
	)
	return root
}

// ============================================================================
// Adapters to implement port interfaces
// ============================================================================

// loggerAdapter adapts the logger.Logger to the port.Logger interface.
type loggerAdapter struct {
	*logger.Logger
}

// Debug implements port.Logger.
func (l *loggerAdapter) Debug(msg string, keysAndValues ...any) {
	l.Logger.Debug(msg, keysAndValues...)
}

// Info implements port.Logger.
func (l *loggerAdapter) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, keysAndValues...)
}

// Warn implements port.Logger.
func (l *loggerAdapter) Warn(msg string, keysAndValues ...any) {
	l.Logger.Warn(msg, keysAndValues...)
}

// Error implements port.Logger.
func (l *loggerAdapter) Error(msg string, keysAndValues ...any) {
	l.Logger.Error(msg, keysAndValues...)
}

// With implements port.Logger.
func (l *loggerAdapter) With(keysAndValues ...any) port.Logger {
	return &loggerAdapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (l *loggerAdapter) WithContext(ctx context.Context) port.Logger {
	return &loggerAdapter{l.Logger.WithContext(ctx)}
}
