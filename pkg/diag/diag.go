package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer   Stage = "lexer"
	StageParser  Stage = "parser"
	StageRewrite Stage = "rewrite"
)

// Severity captures how impactful the diagnostic is. Errors surface as
// returned error values; warnings and notes only flow through a Reporter.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	CodeLexUnterminatedString  Code = "LEX_UNTERMINATED_STRING"
	CodeLexUnterminatedHeredoc Code = "LEX_UNTERMINATED_HEREDOC"
	CodeLexInvalidEscape       Code = "LEX_INVALID_ESCAPE"
	CodeLexBadEncoding         Code = "LEX_BAD_ENCODING"
	CodeLexIllegalCharacter    Code = "LEX_ILLEGAL_CHARACTER"
	CodeLexAmbiguousIndex      Code = "LEX_AMBIGUOUS_INDEX"
	CodeLexLateMagicComment    Code = "LEX_LATE_MAGIC_COMMENT"
	CodeParseUnexpectedToken   Code = "PARSE_UNEXPECTED_TOKEN"
	CodeRewriteMixedCaseBody   Code = "REWRITE_MIXED_CASE_BODY"
	CodeRewriteEmptyCaseBody   Code = "REWRITE_EMPTY_CASE_BODY"
)

// Span is the byte range the diagnostic points at, with derived 1-based
// line/column for rendering.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// Diagnostic is the structured unit handed to reporters. The front end
// performs no user-facing formatting; String is a convenience for CLIs.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	File     string
	Span     Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Span.Line, d.Span.Column, d.Severity, d.Message)
}

// Reporter receives non-fatal diagnostics (deprecations, ambiguities)
// during a parse. Implementations must not retain the ability to mutate
// parser state; a reporter is an output-only collaborator.
type Reporter interface {
	Report(Diagnostic)
}

// Collector is a Reporter that accumulates diagnostics in order.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Discard is a Reporter that drops everything.
type Discard struct{}

func (Discard) Report(Diagnostic) {}
