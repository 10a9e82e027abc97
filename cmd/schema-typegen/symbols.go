package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"schema-typegen/internal/registry"
)

func newSymbolsCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols [value]...",
		Short: "Look up numeric constants in the symbol registry",
		Long: "Values are decimal or 0x-prefixed hexadecimal, as in the registry document.\n" +
			"Without arguments every registered constant is listed in ascending order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := global.registry().Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(args) == 0 {
				return listSymbols(out, reg)
			}

			missing := 0

			for _, arg := range args {
				value, err := registry.ParseValue(arg)
				if err != nil {
					return err
				}

				name, ok := reg.Lookup(value)
				if !ok {
					missing++
					name = "?"
				}

				if _, err := fmt.Fprintf(out, "%d\t%s\n", value, name); err != nil {
					return err
				}
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d values are not in the registry", missing, len(args))
			}

			return nil
		},
	}
}

func listSymbols(out io.Writer, reg *registry.Registry) error {
	for _, value := range reg.Values() {
		name, _ := reg.Lookup(value)

		if _, err := fmt.Fprintf(out, "%d\t%s\n", value, name); err != nil {
			return err
		}
	}

	return nil
}
