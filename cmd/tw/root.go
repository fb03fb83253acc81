package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/config"
	"github.com/conn-castle/template-wizard/internal/logging"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/metrics"
	"github.com/conn-castle/template-wizard/internal/selection"
	"github.com/conn-castle/template-wizard/internal/tracing"
	"github.com/conn-castle/template-wizard/internal/wizard"
)

var lookupEnv = os.LookupEnv
var defaultPaths = config.DefaultPaths

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	catalogPath string
	format      string
	logLevel    string
	metrics     bool
	trace       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", messages.RootFlagConfig)
	flags.StringVar(&opts.catalogPath, "catalog", "", messages.RootFlagCatalog)
	flags.StringVar(&opts.format, "format", "", messages.RootFlagFormat)
	flags.StringVar(&opts.logLevel, "log-level", "", messages.RootFlagLogLevel)
	flags.BoolVar(&opts.metrics, "metrics", false, messages.RootFlagMetrics)
	flags.BoolVar(&opts.trace, "trace", false, messages.RootFlagTrace)

	cmd.AddCommand(newNewCmd(opts), newComposeCmd(opts), newCatalogCmd(opts))
	return cmd
}

// session is the wiring one command invocation runs with.
type session struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	format   selection.Format
	logger   *logging.ZerologAdapter
	recorder *metrics.Recorder
	tracer   *tracing.Provider
}

// open resolves configuration, applies flag overrides, and loads the catalog.
// Flags win over the environment, which wins over the config file.
func (o *rootOptions) open(cmd *cobra.Command) (*session, error) {
	paths, err := o.paths()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(paths, lookupEnv)
	if err != nil {
		return nil, err
	}
	if o.catalogPath != "" {
		expanded, err := config.ExpandPath(o.catalogPath)
		if err != nil {
			return nil, err
		}
		cfg.Catalog.Path = expanded
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := selection.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), messages.RootUse, level).
		With(logging.String("command", cmd.Name()))

	var cat *catalog.Catalog
	if cfg.Catalog.Path == "" {
		cat, err = catalog.LoadDefault()
	} else {
		cat, err = catalog.Load(cfg.Catalog.Path)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration resolved",
		logging.String("config", paths.ConfigPath),
		logging.String("catalog", cat.Source()),
		logging.String("format", string(format)),
	)

	s := &session{cfg: cfg, catalog: cat, format: format, logger: logger}
	if o.metrics {
		s.recorder = metrics.NewRecorder()
	}
	if o.trace {
		s.tracer, err = tracing.NewWriterProvider(cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (o *rootOptions) paths() (config.Paths, error) {
	if o.configPath == "" {
		return defaultPaths()
	}
	expanded, err := config.ExpandPath(o.configPath)
	if err != nil {
		return config.Paths{}, err
	}
	return config.PathsFor(expanded), nil
}

// newController builds a wizard over the session catalog.
func (s *session) newController() (*wizard.Controller, error) {
	var observers []wizard.Observer
	if s.recorder != nil {
		observers = append(observers, s.recorder)
	}
	opts := wizard.Options{
		Host:      &cliHost{logger: s.logger},
		Composer:  catalog.NewComposer(s.catalog),
		Setup:     s.catalog,
		Observers: observers,
		Logger:    s.logger,
	}
	if s.tracer != nil {
		opts.Tracer = s.tracer.Tracer(wizard.TracerName)
	}
	return wizard.New(opts)
}

// finish flushes traces and dumps metrics when they were requested.
func (s *session) finish(w io.Writer) error {
	if s.tracer != nil {
		if err := s.tracer.Shutdown(context.Background()); err != nil {
			return err
		}
	}
	if s.recorder == nil {
		return nil
	}
	return s.recorder.WriteText(w)
}
