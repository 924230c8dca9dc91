package parser

import (
	"fmt"
	"strings"

	"rubyfront/parser-go/pkg/token"
)

// ParseError reports a syntax error with the offending token, its
// position and the terminals that would have been acceptable there.
type ParseError struct {
	Message  string
	File     string
	Pos      token.Position
	Found    string
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Message)
}

func describeTerminal(term string) string {
	switch term {
	case "EOF":
		return "end of input"
	case "NEWLINE":
		return "newline"
	case "IDENT":
		return "identifier"
	case "CONST":
		return "constant"
	case "IVAR":
		return "instance variable"
	case "GVAR":
		return "global variable"
	case "INT", "FLOAT":
		return "number"
	case "STRING":
		return "string"
	case "SYMBOL":
		return "symbol"
	case "LABEL":
		return "label"
	case "OPASGN":
		return "operator assignment"
	case "LBRACKET_IDX":
		return "'['"
	default:
		return "'" + term + "'"
	}
}

func unexpectedMessage(found string, expected []string) string {
	if len(expected) == 0 {
		return fmt.Sprintf("unexpected %s", describeTerminal(found))
	}
	shown := expected
	const limit = 6
	suffix := ""
	if len(shown) > limit {
		shown = shown[:limit]
		suffix = ", ..."
	}
	parts := make([]string, len(shown))
	for i, term := range shown {
		parts[i] = describeTerminal(term)
	}
	return fmt.Sprintf("unexpected %s, expecting %s%s",
		describeTerminal(found), strings.Join(parts, ", "), suffix)
}
