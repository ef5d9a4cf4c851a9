package main

import (
	"fmt"
	"os"

	"github.com/limaJavier/npnclass/pkg/sat"
	"github.com/limaJavier/npnclass/pkg/selfdual"
	"github.com/limaJavier/npnclass/pkg/truthtable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSelfDualCmd() *cobra.Command {
	var (
		numVars int
		certify bool
	)
	cmd := &cobra.Command{
		Use:   "selfdual <hex | 0b-binary>",
		Short: "Print the dual of a function, whether it is self-dual and its self-dual lift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := parseTable(args[0], numVars)
			if err != nil {
				return err
			}
			lifted, err := selfdual.Lift(table)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dual: %v\n", truthtable.Hex(selfdual.Dual(table)))
			fmt.Fprintf(out, "self-dual: %v\n", selfdual.IsSelfDual(table))
			fmt.Fprintf(out, "lift: %v\n", truthtable.Hex(lifted))

			if certify {
				certificate, err := selfdual.Certify(table, sat.NewGiniSolver())
				if err != nil {
					return err
				}
				if certificate.SelfDual {
					fmt.Fprintln(out, "certificate: unsatisfiable, self-dual")
				} else {
					fmt.Fprintf(out, "certificate: f(%0*b) == f(%0*b)\n",
						table.NumVars(), certificate.Witness,
						table.NumVars(), certificate.Witness^(table.NumBits()-1),
					)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&numVars, "vars", "n", -1, "number of variables, inferred from the input when omitted")
	cmd.Flags().BoolVar(&certify, "certify", false, "confirm the answer with the SAT solver and print a witness")
	return cmd
}

func newDimacsCmd() *cobra.Command {
	var (
		numVars int
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "dimacs <hex | 0b-binary>",
		Short: "Write the CNF that is satisfiable iff the function is not self-dual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := parseTable(args[0], numVars)
			if err != nil {
				return err
			}
			instance, err := selfdual.Encode(table)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"variables": instance.Variables, "clauses": len(instance.Clauses)}).Debug("encoded self-duality instance")

			if outFile == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), instance.ToDIMACS())
				return err
			}
			if err := os.WriteFile(outFile, []byte(instance.ToDIMACS()), 0666); err != nil {
				return fmt.Errorf("an error occurred while writing to the output file: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&numVars, "vars", "n", -1, "number of variables, inferred from the input when omitted")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "file to write the formula to; standard output when empty")
	return cmd
}
