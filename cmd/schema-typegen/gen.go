package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-typegen/internal/gen"
)

type genOptions struct {
	outputDir   string
	packageName string
	noComments  bool
	noStubs     bool
}

func newGenCommand(global *globalOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen <schema.json>...",
		Short: "Generate Go types for the given schemas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := global.buildPlan(args, false)
			if err != nil {
				return err
			}

			config := gen.DefaultGeneratorConfig()
			config.OutputDir = firstNonEmpty(opts.outputDir, global.cfg.Output.Dir)
			config.PackageName = firstNonEmpty(opts.packageName, global.cfg.Output.Package)
			config.GenerateComments = !opts.noComments
			config.StubMissingTypes = !opts.noStubs

			files, err := gen.NewGenerator(config).Generate(p.TypeSpecs())
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files, config.OutputDir); err != nil {
				return err
			}

			global.log.Info("generated",
				zap.Int("files", len(files)),
				zap.String("dir", config.OutputDir))

			return global.reportDiagnostics(p)
		},
	}

	cmd.Flags().StringVar(&opts.outputDir, "out", "", "output directory (overrides output.dir)")
	cmd.Flags().StringVar(&opts.packageName, "package", "", "generated package name (overrides output.package)")
	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "do not copy schema descriptions into comments")
	cmd.Flags().BoolVar(&opts.noStubs, "no-stubs", false, "do not emit stubs for referenced but ungenerated types")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
