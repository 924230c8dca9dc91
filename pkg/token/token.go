package token

import (
	"fmt"
	"math/big"
)

// Kind identifies a terminal symbol. Operator and keyword kinds spell
// their lexeme so grammar productions read like the surface syntax.
type Kind string

const (
	EOF     Kind = "EOF"
	Newline Kind = "NEWLINE"

	Ident  Kind = "IDENT"
	Const  Kind = "CONST"
	IVar   Kind = "IVAR"
	GVar   Kind = "GVAR"
	Int    Kind = "INT"
	Float  Kind = "FLOAT"
	String Kind = "STRING"
	Symbol Kind = "SYMBOL"
	Label  Kind = "LABEL"

	// Compound assignment (+=, ||=, <<=, ...). The operator half is
	// carried in the token's Str value.
	OpAssign Kind = "OPASGN"

	// An opening bracket that indexes the preceding value, as opposed
	// to one that starts an array literal.
	LBracketIdx Kind = "LBRACKET_IDX"

	Plus     Kind = "+"
	Minus    Kind = "-"
	Star     Kind = "*"
	Pow      Kind = "**"
	Slash    Kind = "/"
	Percent  Kind = "%"
	Eq       Kind = "=="
	NotEq    Kind = "!="
	Lt       Kind = "<"
	Gt       Kind = ">"
	LtEq     Kind = "<="
	GtEq     Kind = ">="
	Cmp      Kind = "<=>"
	AndOp    Kind = "&&"
	OrOp     Kind = "||"
	Bang     Kind = "!"
	Tilde    Kind = "~"
	Amp      Kind = "&"
	Pipe     Kind = "|"
	Caret    Kind = "^"
	LShift   Kind = "<<"
	RShift   Kind = ">>"
	Assign   Kind = "="
	Arrow    Kind = "=>"
	DotDot   Kind = ".."
	DotDot3  Kind = "..."
	Dot      Kind = "."
	Scope    Kind = "::"
	Comma    Kind = ","
	Semi     Kind = ";"
	LParen   Kind = "("
	RParen   Kind = ")"
	LBracket Kind = "["
	RBracket Kind = "]"
	LBrace   Kind = "{"
	RBrace   Kind = "}"

	KwIf     Kind = "if"
	KwElsif  Kind = "elsif"
	KwElse   Kind = "else"
	KwEnd    Kind = "end"
	KwUnless Kind = "unless"
	KwWhile  Kind = "while"
	KwUntil  Kind = "until"
	KwCase   Kind = "case"
	KwWhen   Kind = "when"
	KwIn     Kind = "in"
	KwThen   Kind = "then"
	KwDo     Kind = "do"
	KwDef    Kind = "def"
	KwClass  Kind = "class"
	KwModule Kind = "module"
	KwBegin  Kind = "begin"
	KwRescue Kind = "rescue"
	KwEnsure Kind = "ensure"
	KwReturn Kind = "return"
	KwBreak  Kind = "break"
	KwNext   Kind = "next"
	KwNil    Kind = "nil"
	KwTrue   Kind = "true"
	KwFalse  Kind = "false"
	KwSelf   Kind = "self"
	KwAnd    Kind = "and"
	KwOr     Kind = "or"
	KwNot    Kind = "not"
)

// Keywords maps reserved words to their kinds.
var Keywords = map[string]Kind{
	"if": KwIf, "elsif": KwElsif, "else": KwElse, "end": KwEnd,
	"unless": KwUnless, "while": KwWhile, "until": KwUntil,
	"case": KwCase, "when": KwWhen, "in": KwIn, "then": KwThen, "do": KwDo,
	"def": KwDef, "class": KwClass, "module": KwModule,
	"begin": KwBegin, "rescue": KwRescue, "ensure": KwEnsure,
	"return": KwReturn, "break": KwBreak, "next": KwNext,
	"nil": KwNil, "true": KwTrue, "false": KwFalse, "self": KwSelf,
	"and": KwAnd, "or": KwOr, "not": KwNot,
}

// Position locates a lexeme in its source buffer. Offset/Length is a
// half-open byte range; Line and Column are 1-based and derived from
// the same buffer the offsets index into.
type Position struct {
	Offset int
	Length int
	Line   int
	Column int
}

// End returns the exclusive end offset.
func (p Position) End() int { return p.Offset + p.Length }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexeme. Tokens are immutable once produced by the lexer.
// Literal payloads are carried in the typed value fields: Num for
// integers, Real for floats, Str for decoded strings, symbol names and
// operator-assignment operators.
type Token struct {
	Kind Kind
	Text string
	Pos  Position

	Num  *big.Int
	Real float64
	Str  string
}

// IsEOF reports whether the token marks end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }

func (t Token) String() string {
	if t.Text == "" {
		return string(t.Kind)
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}
