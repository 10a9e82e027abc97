package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-typegen/internal/config"
	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/logger"
	"schema-typegen/internal/plan"
	"schema-typegen/internal/registry"
	"schema-typegen/internal/resolve"
)

// globalOptions holds the persistent flags and what PersistentPreRunE derives from them.
type globalOptions struct {
	configPath   string
	registryURL  string
	registryFile string
	logLevel     string

	cfg *config.Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "schema-typegen",
		Short:        "Resolve JSON schemas into type descriptors and Go code",
		Example:      "schema-typegen resolve ./schema/accessor.schema.json",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&opts.registryURL, "registry-url", "", "URL of the symbol registry XML document")
	flags.StringVar(&opts.registryFile, "registry-file", "", "local symbol registry XML document (wins over --registry-url)")
	flags.StringVar(&opts.logLevel, "log-level", "", "logging level (\"debug\", \"info\", \"warn\", \"error\"); defaults to $LOG_LEVEL")

	root.AddCommand(
		newResolveCommand(opts),
		newGenCommand(opts),
		newSymbolsCommand(opts),
	)

	return root
}

// init loads the configuration, applies flag overrides and builds the logger.
func (o *globalOptions) init() error {
	cfg := config.Default()

	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if o.registryURL != "" {
		cfg.Registry.URL = o.registryURL
		cfg.Registry.File = ""
	}

	if o.registryFile != "" {
		cfg.Registry.File = o.registryFile
	}

	level := o.logLevel
	if level == "" && o.configPath != "" {
		level = cfg.Log.Level
	}

	log, err := logger.New(level)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.log = log

	return nil
}

// registry builds the lazily fetched symbol registry described by the configuration.
func (o *globalOptions) registry() *registry.Lazy {
	rc := o.cfg.Registry

	var fetcher registry.Fetcher

	if rc.File != "" {
		fetcher = registry.FileFetcher{Path: rc.File}
	} else {
		fetcher = registry.NewRetryFetcher(
			registry.NewHTTPFetcher(rc.URL, registry.WithTimeout(rc.Timeout)),
			uint64(rc.RetryCount()),
			registry.WithRetryLogger(o.log),
		)
	}

	return registry.NewLazy(fetcher,
		registry.WithPrefix(rc.Prefix),
		registry.WithLogger(o.log.Named("registry")),
	)
}

// buildPlan resolves the root schemas named by paths.
func (o *globalOptions) buildPlan(paths []string, strict bool) (*plan.Plan, error) {
	resolver := resolve.NewResolver(o.registry(), resolve.WithLogger(o.log.Named("resolve")))

	builder := plan.NewBuilder(resolver, plan.Config{StrictMode: strict}, o.log.Named("plan"))

	p, err := builder.Build(paths)
	if err != nil && p == nil {
		return nil, err
	}

	return p, err
}

// reportDiagnostics logs every diagnostic and returns an error when any of them is an error.
func (o *globalOptions) reportDiagnostics(p *plan.Plan) error {
	for _, d := range p.Diagnostics.All() {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("schema", d.Schema),
			zap.String("property", d.Property),
		}

		if len(d.Suggestions) > 0 {
			fields = append(fields, zap.Strings("suggestions", d.Suggestions))
		}

		switch d.Severity {
		case diagnostic.SeverityError:
			o.log.Error(d.Message, fields...)
		case diagnostic.SeverityWarning:
			o.log.Warn(d.Message, fields...)
		default:
			o.log.Debug(d.Message, fields...)
		}
	}

	if n := len(p.Diagnostics.Errors); n > 0 {
		return fmt.Errorf("%d properties failed to resolve", n)
	}

	return nil
}
