package main

import (
	"fmt"

	"github.com/limaJavier/npnclass/pkg/npn"
	"github.com/limaJavier/npnclass/pkg/truthtable"
	"github.com/spf13/cobra"
)

func newCanonizeCmd() *cobra.Command {
	var (
		numVars int
		pOnly   bool
	)
	cmd := &cobra.Command{
		Use:   "canonize <hex | 0b-binary>...",
		Short: "Print the class representative of each function and the transform reaching it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonize := npn.ExactNPN
			if pOnly {
				canonize = npn.ExactP
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				table, err := parseTable(arg, numVars)
				if err != nil {
					return err
				}
				result, err := canonize(table)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%v -> %v (%v)\n", truthtable.Hex(table), truthtable.Hex(result.Representative), result.Transform)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&numVars, "vars", "n", -1, "number of variables, inferred from the input when omitted")
	cmd.Flags().BoolVar(&pOnly, "p-only", false, "canonicalize under permutations only")
	return cmd
}
