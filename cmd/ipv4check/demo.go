package main

import (
	"github.com/spf13/cobra"

	"github.com/tasneemo-o/ipv4-checker/pkg/logger"
	"github.com/tasneemo-o/ipv4-checker/pkg/report"
	"github.com/tasneemo-o/ipv4-checker/pkg/validator"
)

func newDemoCmd(a *app) *cobra.Command {
	var casesPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the example cases and print pass/fail for each",
		Long: `Run the built-in example cases, or the cases from a YAML file,
through the validator and print a pass/fail line for each one.
Exits with status 1 if any case fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.CasesPath
			if cmd.Flags().Changed("cases") {
				path = casesPath
			}

			cases := report.DefaultCases()
			if path != "" {
				loaded, err := report.LoadCases(path)
				if err != nil {
					a.log.ErrorContext(cmd.Context(), "failed to load cases", logger.Error(err))
					return err
				}
				cases = loaded
			}

			results := report.Run(cases, validator.IsIPv4)
			a.log.InfoContext(cmd.Context(), "demo finished", "total", len(results))

			var opts []report.PrinterOption
			if a.noColor {
				opts = append(opts, report.WithoutColor())
			}
			if err := report.NewPrinter(cmd.OutOrStdout(), opts...).Print(results); err != nil {
				return err
			}

			if _, failed := report.Summary(results); failed > 0 {
				a.log.WarnContext(cmd.Context(), "demo cases failed", "failed", failed, "total", len(results))
				return errCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&casesPath, "cases", "", "YAML file with cases (default: built-in examples)")

	return cmd
}
