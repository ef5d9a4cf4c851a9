package main

import (
	"fmt"

	"github.com/limaJavier/npnclass/internal/config"
	"github.com/limaJavier/npnclass/pkg/enumerate"
	"github.com/limaJavier/npnclass/pkg/truthtable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEnumerateCmd() *cobra.Command {
	var (
		configFile string
		flags      = config.Default()
	)
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Count the equivalence classes of every function of n variables",
		Long: `Walk all 2^(2^n) truth tables of n variables and collect one canonical representative
per class. Modes:
  npn            input negation, permutation and output negation
  p              permutation only
  selfdual       self-dual functions keep their NPN class of n variables, every other
                 function is lifted to a self-dual function of n+1 variables
  selfdual-fast  lift only the NPN representatives of n variables, self-dual ones included

Values from --config are overridden by flags given explicitly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Default()
			if configFile != "" {
				loaded, err := config.FromJson(configFile)
				if err != nil {
					return err
				}
				settings = loaded
			}
			overrideFromFlags(cmd, &settings, flags)
			if err := settings.Validate(); err != nil {
				return err
			}
			mode, err := settings.EnumerationMode()
			if err != nil {
				return err
			}

			enumerator, err := enumerate.New(settings.NumVars, mode,
				enumerate.WithLogger(log.StandardLogger()),
				enumerate.WithProgressEvery(settings.ProgressEvery),
			)
			if err != nil {
				return err
			}

			var classes *enumerate.ClassSet
			if settings.Workers == 1 {
				classes, err = enumerator.Run(cmd.Context())
			} else {
				classes, err = enumerator.RunParallel(cmd.Context(), settings.Workers)
			}
			if err != nil {
				if classes != nil {
					log.WithField("classes", classes.Len()).Warn("enumeration stopped early")
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "classes: %d\n", classes.Len())
			if settings.Print {
				for _, representative := range classes.Representatives() {
					fmt.Fprintln(out, truthtable.Hex(representative))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "JSON file with vars, mode, workers, progressEvery and print")
	cmd.Flags().IntVarP(&flags.NumVars, "vars", "n", flags.NumVars, "number of variables")
	cmd.Flags().StringVarP(&flags.Mode, "mode", "m", flags.Mode, "npn, p, selfdual or selfdual-fast")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "parallel workers, 1 runs sequentially and 0 uses every CPU")
	cmd.Flags().Uint64Var(&flags.ProgressEvery, "progress-every", flags.ProgressEvery, "log progress at debug level every that many functions")
	cmd.Flags().BoolVar(&flags.Print, "print", flags.Print, "print the representatives in ascending order")
	return cmd
}

func overrideFromFlags(cmd *cobra.Command, settings *config.Enumeration, flags config.Enumeration) {
	changed := cmd.Flags().Changed
	if changed("vars") {
		settings.NumVars = flags.NumVars
	}
	if changed("mode") {
		settings.Mode = flags.Mode
	}
	if changed("workers") {
		settings.Workers = flags.Workers
	}
	if changed("progress-every") {
		settings.ProgressEvery = flags.ProgressEvery
	}
	if changed("print") {
		settings.Print = flags.Print
	}
}
