package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rubyfront/parser-go/pkg/ast"
	"rubyfront/parser-go/pkg/diag"
	"rubyfront/parser-go/pkg/lexer"
	"rubyfront/parser-go/pkg/parser"
	"rubyfront/parser-go/pkg/source"
)

var parseAsExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse Ruby files and print their trees as S-expressions",
	RunE: func(cmd *cobra.Command, args []string) error {
		buffers, err := readInputs(args)
		if err != nil {
			return err
		}
		for _, buf := range buffers {
			collector := &diag.Collector{}
			p := parser.New(collector)
			var root ast.Node
			if parseAsExpression {
				root, err = p.ParseExpression(buf)
			} else {
				root, err = p.ParseProgram(buf)
			}
			printDiagnostics(cmd.ErrOrStderr(), collector)
			if err != nil {
				return err
			}
			if len(buffers) > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", buf.Name())
			}
			fmt.Fprintln(cmd.OutOrStdout(), ast.Sexp(root))
		}
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream for a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buffers, err := readInputs(args)
		if err != nil {
			return err
		}
		buf := buffers[0]
		lx := lexer.New(buf, &stderrReporter{w: cmd.ErrOrStderr()})
		for {
			tok, err := lx.Next()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", buf.Describe(tok.Pos.Offset), tok)
			if tok.IsEOF() {
				return nil
			}
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Parse files and report diagnostics without printing trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		buffers, err := readInputs(args)
		if err != nil {
			return err
		}
		failed := 0
		for _, buf := range buffers {
			collector := &diag.Collector{}
			p := parser.New(collector)
			_, err := p.ParseProgram(buf)
			printDiagnostics(cmd.ErrOrStderr(), collector)
			if err != nil {
				failed++
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", buf.Name())
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to parse", failed, len(buffers))
		}
		return nil
	},
}

// readInputs loads the named files, or stdin when no names are given.
func readInputs(names []string) ([]*source.Buffer, error) {
	if len(names) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []*source.Buffer{source.New("<stdin>", data)}, nil
	}
	buffers := make([]*source.Buffer, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, source.New(name, data))
	}
	return buffers, nil
}

func printDiagnostics(w io.Writer, c *diag.Collector) {
	for _, d := range c.Diagnostics {
		if d.Severity == diag.SeverityError {
			// Errors surface through the returned error value.
			continue
		}
		fmt.Fprintln(w, d)
	}
}

type stderrReporter struct{ w io.Writer }

func (r *stderrReporter) Report(d diag.Diagnostic) { fmt.Fprintln(r.w, d) }

func init() {
	parseCmd.Flags().BoolVarP(&parseAsExpression, "expr", "e", false, "parse input as a single expression")
}
