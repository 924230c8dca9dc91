package lexer

import (
	"strings"

	"rubyfront/parser-go/pkg/diag"
	"rubyfront/parser-go/pkg/token"
)

// tryHeredoc recognizes <<~ID, <<-ID, <<"ID", <<'ID' and, at expression
// start, bare <<ID with an uppercase delimiter. The body is consumed
// ahead of the cursor and the covered region is skipped later, so the
// string token is produced at the marker with its value already filled.
func (l *Lexer) tryHeredoc(start int) (token.Token, bool, error) {
	if l.byteAt(start+1) != '<' {
		return token.Token{}, false, nil
	}
	at := start + 2
	mode := byte(0)
	if c := l.byteAt(at); c == '~' || c == '-' {
		mode = c
		at++
	}

	var delim string
	quote := byte(0)
	switch c := l.byteAt(at); {
	case c == '"' || c == '\'':
		quote = c
		at++
		idStart := at
		for l.byteAt(at) != quote {
			if at >= l.buf.Len() || l.byteAt(at) == '\n' {
				return token.Token{}, true, l.errAt(start, at-start, diag.CodeLexUnterminatedHeredoc,
					"unterminated heredoc delimiter")
			}
			at++
		}
		delim = l.text(idStart, at)
		at++
	case isIdentStart(c):
		// A bare delimiter after a value would be a left shift.
		if mode == 0 && (operandEnd(l.last) || !isUpper(c)) {
			return token.Token{}, false, nil
		}
		idStart := at
		for isIdentPart(l.byteAt(at)) {
			at++
		}
		delim = l.text(idStart, at)
	default:
		return token.Token{}, false, nil
	}
	if delim == "" {
		return token.Token{}, true, l.errAt(start, at-start, diag.CodeLexUnterminatedHeredoc,
			"empty heredoc delimiter")
	}

	bodyStart := l.heredocFrom
	if nl := l.findNewline(at); nl >= 0 && nl+1 > bodyStart {
		bodyStart = nl + 1
	} else if nl < 0 {
		return token.Token{}, true, l.errAt(start, at-start, diag.CodeLexUnterminatedHeredoc,
			"can't find string \""+delim+"\" anywhere before EOF")
	}

	var lines []string
	pos := bodyStart
	terminated := false
	bodyEnd := bodyStart
	for pos < l.buf.Len() {
		lineEnd := l.findNewline(pos)
		if lineEnd < 0 {
			lineEnd = l.buf.Len()
		}
		lineText := l.text(pos, lineEnd)
		next := lineEnd + 1
		if next > l.buf.Len() {
			next = l.buf.Len()
		}
		if l.isTerminatorLine(lineText, delim, mode) {
			terminated = true
			bodyEnd = next
			break
		}
		lines = append(lines, lineText)
		pos = next
		bodyEnd = next
		if lineEnd == l.buf.Len() {
			break
		}
	}
	if !terminated {
		return token.Token{}, true, l.errAt(start, at-start, diag.CodeLexUnterminatedHeredoc,
			"can't find string \""+delim+"\" anywhere before EOF")
	}

	l.skips = append(l.skips, span{start: bodyStart, end: bodyEnd})
	l.heredocFrom = bodyEnd

	body := joinHeredocLines(lines, mode)
	l.pos = at
	tok := l.emit(token.String, start, at)
	tok.Str = body
	return tok, true, nil
}

func (l *Lexer) findNewline(from int) int {
	for i := from; i < l.buf.Len(); i++ {
		if l.byteAt(i) == '\n' {
			return i
		}
	}
	return -1
}

func (l *Lexer) isTerminatorLine(lineText, delim string, mode byte) bool {
	trimmed := strings.TrimRight(lineText, "\r")
	if mode == '~' || mode == '-' {
		trimmed = strings.TrimLeft(trimmed, " \t")
	}
	return trimmed == delim
}

func joinHeredocLines(lines []string, mode byte) string {
	if mode == '~' {
		indent := -1
		for _, lineText := range lines {
			if strings.TrimSpace(lineText) == "" {
				continue
			}
			n := 0
			for n < len(lineText) && (lineText[n] == ' ' || lineText[n] == '\t') {
				n++
			}
			if indent < 0 || n < indent {
				indent = n
			}
		}
		if indent > 0 {
			for i, lineText := range lines {
				if len(lineText) >= indent {
					lines[i] = lineText[indent:]
				} else {
					lines[i] = strings.TrimLeft(lineText, " \t")
				}
			}
		}
	}
	var sb strings.Builder
	for _, lineText := range lines {
		sb.WriteString(lineText)
		sb.WriteByte('\n')
	}
	return sb.String()
}
