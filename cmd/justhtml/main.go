// Command justhtml is a Cobra-based CLI for parsing HTML documents and
// surfacing structured parse diagnostics. Where cmd/justgohtml favors a
// flat flag.FlagSet for quick selector/format queries, justhtml exposes
// a subcommand style suited to the diagnostics workflow: "parse" renders
// a document, "lint" reports parse errors as structured log events.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	JustGoHTML "github.com/go-webdom/webdom"
	"github.com/go-webdom/webdom/serialize"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "justhtml",
		Short:         "Parse HTML documents and report structured diagnostics",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newParseCmd())
	root.AddCommand(newLintCmd())
	return root
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func newParseCmd() *cobra.Command {
	var pretty bool
	var indent int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an HTML document and print it back out as HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSource(args)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			doc, err := JustGoHTML.ParseBytes(input)
			if err != nil {
				return fmt.Errorf("parsing HTML: %w", err)
			}

			out := serialize.ToHTML(doc, serialize.Options{Pretty: pretty, IndentSize: indent})
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", true, "pretty-print the HTML output")
	cmd.Flags().IntVar(&indent, "indent", 2, "indentation width used when --pretty is set")
	return cmd
}

func newLintCmd() *cobra.Command {
	var strict bool
	var jsonLog bool

	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Parse an HTML document and report parse errors as structured events",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSource(args)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			logger := newLintLogger(cmd.ErrOrStderr(), jsonLog)

			opts := []JustGoHTML.Option{
				JustGoHTML.WithCollectErrors(),
				JustGoHTML.WithLogger(logger),
			}
			if strict {
				opts = append(opts, JustGoHTML.WithStrictMode())
			}

			_, err = JustGoHTML.ParseBytes(input, opts...)
			if err != nil && !strict {
				// WithCollectErrors wraps diagnostics in a ParseErrors error
				// even though parsing itself succeeded; it was already
				// logged event-by-event above, so don't also fail the run.
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first parse error instead of only logging it")
	cmd.Flags().BoolVar(&jsonLog, "json", false, "emit diagnostics as JSON lines instead of console-formatted text")
	return cmd
}

// newLintLogger builds a zerolog.Logger writing to w, either as
// console-formatted text (the default, for a human at a terminal) or
// as JSON lines (for feeding a log pipeline).
func newLintLogger(w io.Writer, jsonLog bool) zerolog.Logger {
	if jsonLog {
		return zerolog.New(w)
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return zerolog.New(console)
}
