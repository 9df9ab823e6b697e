// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Root command, viper configuration, logger and tracer setup.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/vcgpath/internal/telemetry"
)

// version is overridden at link time.
var version = "dev"

// app carries state shared by every subcommand for one invocation.
type app struct {
	v        *viper.Viper
	logger   *zap.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "vcgpath",
		Short:        "VCG payments for cheapest-path procurement",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("trace", telemetry.ExporterNone, "trace exporter: none or stdout (spans go to stderr)")

	root.AddCommand(newPayCmd(a), newPathCmd(a), newGenerateCmd(a), newServeCmd(a))

	return root
}

// setup binds flags, reads the config file and builds logger and tracer.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("VCGPATH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	logger, err := newLogger(a.v.GetString("log-level"), a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	a.logger = logger

	a.shutdown, err = telemetry.Init(cmd.Context(), telemetry.Config{
		ServiceName:    "vcgpath",
		ServiceVersion: version,
		Exporter:       a.v.GetString("trace"),
		Writer:         cmd.ErrOrStderr(),
	})

	return err
}

func (a *app) teardown(ctx context.Context) error {
	_ = a.logger.Sync()
	if a.shutdown == nil {
		return nil
	}

	return a.shutdown(context.WithoutCancel(ctx))
}

// newLogger builds a zap logger writing to stderr.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("log format %q: want console or json", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// addOutputFlag registers the shared --format flag.
func addOutputFlag(fs *pflag.FlagSet) {
	fs.String("format", "text", "output format: text, json or yaml")
}
