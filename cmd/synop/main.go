package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/synop/ast"
	"github.com/npillmayer/synop/expand"
	"github.com/npillmayer/synop/parser"
	"github.com/npillmayer/synop/scanner"
	"github.com/spf13/cobra"
)

// options are set from command line flags.
type options struct {
	trace  string // trace level
	dfa    bool   // use lexmachine tokenizer
	unroll int    // unrolling of repetitions
	unique bool   // de-duplicate expansions
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{unroll: expand.DefaultUnroll}
	root := &cobra.Command{
		Use:           "synop",
		Short:         "Format, check and expand usage synopses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configure(cmd.Flags())
			if cmd.Flags().Changed("trace") {
				setupTracing(opts.trace)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	root.PersistentFlags().BoolVar(&opts.dfa, "dfa", false, "Use the DFA tokenizer")
	root.PersistentFlags().Bool(scanner.ConfigPanicOnMalformedDots, false, "Abort on dots not forming '...'")
	//
	root.AddCommand(&cobra.Command{
		Use:   "fmt",
		Short: "Print the normalized form of a synopsis read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "opt",
		Short: "Print the pretty form of every input line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpt(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	})
	expandCmd := &cobra.Command{
		Use:   "expand",
		Short: "Print every command line a synopsis read from stdin denotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	expandCmd.Flags().IntVar(&opts.unroll, "unroll", expand.DefaultUnroll, "Number of copies for repetitions")
	expandCmd.Flags().BoolVar(&opts.unique, "unique", false, "Suppress duplicate command lines")
	root.AddCommand(expandCmd)
	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Check parse/format round trips for every input line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "repl [synopsis]",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(strings.Join(args, " "), opts)
		},
	})
	return root
}

// setupTracing routes all tracers to the Go standard logger.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	gtrace.SyntaxTracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Infof("Trace level is %s", level)
}

func (opts *options) read(r io.Reader) (ast.Expr, error) {
	return parser.Read(r, parser.WithDFA(opts.dfa))
}

// runFmt reads all of the input as a single synopsis and prints its
// normalized form. A synopsis denoting the empty command line prints as an
// empty line.
func runFmt(in io.Reader, out io.Writer, opts *options) error {
	expr, err := opts.read(in)
	if err != nil {
		return err
	}
	n := ast.Normalize(expr)
	if n == nil {
		_, err = fmt.Fprintln(out)
		return err
	}
	_, err = fmt.Fprintln(out, n.Pretty())
	return err
}

// runOpt parses every input line and prints it as parsed.
func runOpt(in io.Reader, out io.Writer, opts *options) error {
	return eachLine(in, func(lineno int, line string) error {
		expr, err := opts.read(strings.NewReader(line))
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		_, err = fmt.Fprintln(out, expr.Pretty())
		return err
	})
}

// runExpand reads all of the input as a single synopsis and prints one line
// per command line it denotes.
func runExpand(in io.Reader, out io.Writer, opts *options) error {
	expr, err := opts.read(in)
	if err != nil {
		return err
	}
	seqs := expand.New(expand.Unroll(opts.unroll)).Expand(ast.Normalize(expr))
	if opts.unique {
		seqs = expand.Unique(seqs)
	}
	w := bufio.NewWriter(out)
	for _, seq := range seqs {
		fmt.Fprintln(w, expand.Render(seq))
	}
	return w.Flush()
}

// runCheck verifies for every input line that the pretty form of the parsed
// synopsis parses to the same tree, and that normalization is idempotent.
func runCheck(in io.Reader, out io.Writer, opts *options) error {
	failed, total := 0, 0
	err := eachLine(in, func(lineno int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		total++
		if diff, err := check(line, opts); err != nil || diff != "" {
			failed++
			if err != nil {
				diff = err.Error()
			}
			fmt.Fprintf(out, "FAIL %d: %s\n%s\n", lineno, line, diff)
			return nil
		}
		fmt.Fprintf(out, "ok   %d: %s\n", lineno, line)
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d synopses failed", failed, total)
	}
	return nil
}

func check(line string, opts *options) (string, error) {
	expr, err := opts.read(strings.NewReader(line))
	if err != nil {
		return "", err
	}
	reparsed, err := opts.read(strings.NewReader(expr.Pretty()))
	if err != nil {
		return "", fmt.Errorf("pretty form %q: %w", expr.Pretty(), err)
	}
	if d := ast.Diff(expr, reparsed); d != "" {
		return "round trip: " + d, nil
	}
	n := ast.Normalize(expr)
	if d := ast.Diff(n, ast.Normalize(n)); d != "" {
		return "normalize: " + d, nil
	}
	return "", nil
}

// eachLine calls f for every input line.
func eachLine(in io.Reader, f func(int, string) error) error {
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := f(lineno, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
