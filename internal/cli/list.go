package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered use cases, ports, and adapters",
		Long: `List the registries of the built-in demo container.

Example:
  portico list
  portico list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRegistries(rootOpts, cmd)
		},
	}
}

func listRegistries(opts *RootOptions, cmd *cobra.Command) error {
	c, err := newDemoContainer(newLogger(cmd, opts.Verbose))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build demo container", err)
	}

	ports := make([]string, 0)
	for _, t := range c.PortTypes() {
		ports = append(ports, t.String())
	}

	if opts.Format == "json" {
		f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
		return f.Success(map[string]any{
			"use_cases": c.UseCaseNames(),
			"ports":     ports,
			"adapters":  c.AdapterNames(),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Use cases:")
	for _, name := range c.UseCaseNames() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out, "Ports:")
	for _, p := range ports {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprintln(out, "Adapters:")
	for _, name := range c.AdapterNames() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
