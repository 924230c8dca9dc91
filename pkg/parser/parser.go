// Package parser turns Ruby source text into the closed AST defined in
// pkg/ast. The grammar is declared in this package and compiled once
// per process into a shared SLR(1) table; each parse then runs the
// generic machine in pkg/grammar with this package's reduction actions
// and finishes with the standard rewrite pipeline. Parsing is a pure
// function of the input bytes: no state is shared between parses
// except the immutable table.
package parser

import (
	"errors"
	"fmt"
	"sync"

	"rubyfront/parser-go/pkg/ast"
	"rubyfront/parser-go/pkg/diag"
	"rubyfront/parser-go/pkg/grammar"
	"rubyfront/parser-go/pkg/lexer"
	"rubyfront/parser-go/pkg/rewrite"
	"rubyfront/parser-go/pkg/source"
	"rubyfront/parser-go/pkg/token"
)

// tableSet lazily builds one parse table per start symbol. The build
// is deterministic, so every process constructs byte-identical tables.
type tableSet struct {
	start string
	once  sync.Once
	table *grammar.Table
	acts  []action
	err   error
}

var (
	programTables    = &tableSet{start: "program"}
	expressionTables = &tableSet{start: "expr_entry"}
)

func (ts *tableSet) get() (*grammar.Table, []action, error) {
	ts.once.Do(func() {
		g, acts := buildGrammar(ts.start)
		ts.acts = acts
		ts.table, ts.err = grammar.Build(g)
		if ts.err != nil {
			ts.err = fmt.Errorf("parser: building %s table: %w", ts.start, ts.err)
		}
	})
	return ts.table, ts.acts, ts.err
}

// ProgramTable exposes the shared whole-program table, mainly so tools
// can snapshot or inspect it.
func ProgramTable() (*grammar.Table, error) {
	t, _, err := programTables.get()
	return t, err
}

// ExpressionTable exposes the single-expression table.
func ExpressionTable() (*grammar.Table, error) {
	t, _, err := expressionTables.get()
	return t, err
}

// Parser is a front-end instance. The zero value is not usable; call
// New. A Parser is safe for concurrent use as long as its Reporter is.
type Parser struct {
	reporter diag.Reporter
	pipeline rewrite.Pipeline
}

// New returns a Parser that sends non-fatal diagnostics to reporter.
// A nil reporter discards them.
func New(reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.Discard{}
	}
	return &Parser{reporter: reporter, pipeline: rewrite.Standard()}
}

// ParseProgram parses a whole program. An empty or comment-only input
// yields an empty ListNode; a single top-level statement comes back as
// that statement's node, a sequence as a ListNode.
func (p *Parser) ParseProgram(buf *source.Buffer) (ast.Node, error) {
	root, err := p.run(programTables, buf)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = ast.NewListNode(nil)
	}
	return p.pipeline.Run(root)
}

// ParseExpression parses input that must consist of exactly one
// expression, optionally surrounded by terminators.
func (p *Parser) ParseExpression(buf *source.Buffer) (ast.Node, error) {
	root, err := p.run(expressionTables, buf)
	if err != nil {
		return nil, err
	}
	return p.pipeline.Run(root)
}

func (p *Parser) run(ts *tableSet, buf *source.Buffer) (ast.Node, error) {
	table, acts, err := ts.get()
	if err != nil {
		return nil, err
	}

	lx := lexer.New(buf, p.reporter)
	next := func() (grammar.Lexeme, error) {
		tok, err := lx.Next()
		if err != nil {
			return grammar.Lexeme{}, err
		}
		return grammar.Lexeme{
			Terminal: string(tok.Kind),
			Value:    tok,
			Start:    tok.Pos.Offset,
			End:      tok.Pos.End(),
		}, nil
	}
	reduce := func(r grammar.Reduction) (any, error) {
		idx := r.Production.ID - 1
		if idx < 0 || idx >= len(acts) || acts[idx] == nil {
			return nil, fmt.Errorf("parser: no action for production %s", r.Production)
		}
		return acts[idx](r)
	}

	result, err := table.Parse(next, reduce)
	if err != nil {
		return nil, p.wrapError(buf, err)
	}
	return nd(result), nil
}

// wrapError converts the machine's token-level error into a ParseError
// carrying line/column information. Lexer errors pass through intact.
func (p *Parser) wrapError(buf *source.Buffer, err error) error {
	var unexpected *grammar.UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		return err
	}
	line, column := buf.LineColumn(unexpected.Start)
	perr := &ParseError{
		Message: unexpectedMessage(unexpected.Terminal, unexpected.Expected),
		File:    buf.Name(),
		Pos: token.Position{
			Offset: unexpected.Start,
			Length: unexpected.End - unexpected.Start,
			Line:   line,
			Column: column,
		},
		Found:    unexpected.Terminal,
		Expected: unexpected.Expected,
	}
	p.reporter.Report(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParseUnexpectedToken,
		Message:  perr.Message,
		File:     buf.Name(),
		Span: diag.Span{
			Start:  unexpected.Start,
			End:    unexpected.End,
			Line:   line,
			Column: column,
		},
	})
	return perr
}
