package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/portico/hexatest"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a conformance scenario against the demo container",
		Long: `Run a YAML scenario: each step invokes a use case by name and
optionally checks the outcome. The command exits non-zero if any
expectation fails.

Example:
  portico run ./scenarios/basic.yaml
  portico run ./scenarios/basic.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd)
		},
	}
}

func runScenario(opts *RootOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(cmd, opts.Verbose)

	scenario, err := hexatest.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}
	logger.Info("scenario loaded", "name", scenario.Name, "steps", len(scenario.Steps))

	c, err := newDemoContainer(logger)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build demo container", err)
	}

	report := hexatest.RunScenario(c, scenario)
	logger.Info("scenario finished", "name", report.Scenario, "run_token", report.RunToken, "pass", report.Pass)

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		if err := f.Success(report); err != nil {
			return err
		}
	} else {
		printReport(f, report)
	}

	if !report.Pass {
		return NewExitError(ExitFailure, fmt.Sprintf("scenario %s failed", report.Scenario))
	}
	return nil
}

func printReport(f *OutputFormatter, report *hexatest.Report) {
	fmt.Fprintf(f.Writer, "scenario: %s (run %s)\n", report.Scenario, report.RunToken)
	for _, ev := range report.Trace {
		fmt.Fprintf(f.Writer, "  step %d  %-12s %-8s %s\n", ev.Seq, ev.UseCase, ev.Outcome, ev.Detail)
	}
	for _, msg := range report.Errors {
		fmt.Fprintf(f.Writer, "  FAIL: %s\n", msg)
	}
	if report.Pass {
		fmt.Fprintln(f.Writer, "PASS")
	} else {
		fmt.Fprintln(f.Writer, "FAIL")
	}
}
