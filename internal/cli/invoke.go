package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/portico/hexa"
)

// InvokeOptions holds flags for the invoke command.
type InvokeOptions struct {
	*RootOptions
	Input string
}

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvokeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invoke <use-case>",
		Short: "Invoke a use case on the demo container",
		Long: `Invoke a use case by name. The input is parsed as YAML, so scalars,
sequences, and mappings all work.

Example:
  portico invoke double --input 5
  portico invoke divide --input '[10, 2]'
  portico invoke greet --input World`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return invokeUseCase(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Input, "input", "null", "use case input as YAML")

	return cmd
}

func invokeUseCase(opts *InvokeOptions, name string, cmd *cobra.Command) error {
	var input any
	if err := yaml.Unmarshal([]byte(opts.Input), &input); err != nil {
		return WrapExitError(ExitCommandError, "invalid --input YAML", err)
	}

	c, err := newDemoContainer(newLogger(cmd, opts.Verbose))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build demo container", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	f.VerboseLog("invoking %s on %s", name, c)

	out, err := c.InvokeNamed(name, input)
	if err != nil {
		_ = f.Error("E_DISPATCH", err.Error())
		if hexa.IsUnregistered(err) || hexa.IsTypeMismatch(err) {
			return NewExitError(ExitCommandError, err.Error())
		}
		return NewExitError(ExitFailure, err.Error())
	}

	if err := f.Success(fmt.Sprintf("%v", out)); err != nil {
		return err
	}
	if r, ok := out.(interface{ IsFailure() bool }); ok && r.IsFailure() {
		return NewExitError(ExitFailure, "use case reported a failure")
	}
	return nil
}
