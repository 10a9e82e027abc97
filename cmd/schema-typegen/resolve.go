package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"schema-typegen/internal/plan"
)

type resolveOptions struct {
	dump   bool
	format string
	strict bool
}

func newResolveCommand(global *globalOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <schema.json>...",
		Short: "Print the resolved type descriptor of every property",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := global.buildPlan(args, opts.strict)
			if p == nil {
				return err
			}

			if printErr := printPlan(cmd.OutOrStdout(), p, opts); printErr != nil {
				return printErr
			}

			return errors.Join(err, global.reportDiagnostics(p))
		},
	}

	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print full descriptor dumps")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format (\"text\", \"yaml\")")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "report a strict-mode failure when any property fails")

	return cmd
}

func printPlan(w io.Writer, p *plan.Plan, opts *resolveOptions) error {
	switch opts.format {
	case "yaml":
		data, err := plan.ExportReportYAML(p)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}

		_, err = w.Write(data)

		return err
	case "text":
	default:
		return fmt.Errorf("unsupported value %q for --format", opts.format)
	}

	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

	for _, t := range p.Types {
		for _, prop := range t.Properties {
			if _, err := fmt.Fprintf(w, "%s: %s\n", prop.Name, prop.Descriptor); err != nil {
				return err
			}

			if opts.dump {
				dumper.Fdump(w, prop.Descriptor)
			}
		}
	}

	return nil
}
