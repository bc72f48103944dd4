package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/hello/internal/responder"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hello CLI.
//
// Run without a subcommand, hello answers every line of stdin with
// "Hello World!" on stdout until end-of-stream.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hello",
		Short: "hello - answer every input line",
		Long: `Read lines from standard input and write "Hello World!" for each one.

The response does not depend on line content. hello exits once standard
input is exhausted.

Example:
  printf 'foo\nbar\n' | hello
  hello -v < input.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResponder(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "report format (json|text)")

	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

func runResponder(opts *RootOptions, cmd *cobra.Command) error {
	logger := newLogger(opts, cmd.ErrOrStderr())

	r := responder.New(cmd.InOrStdin(), cmd.OutOrStdout(), responder.WithLogger(logger))
	logger.Debug("responder started")

	if err := r.Run(); err != nil {
		logger.Error("responder failed", "lines", r.Lines(), "error", err)
		return WrapExitError(ExitFailure, "responder failed", err)
	}

	logger.Debug("end of input", "summary", formatCount(r.Lines(), "line"))
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
