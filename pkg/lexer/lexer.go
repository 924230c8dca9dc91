package lexer

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"rubyfront/parser-go/pkg/diag"
	"rubyfront/parser-go/pkg/source"
	"rubyfront/parser-go/pkg/token"
)

// LexError reports a malformed token, a bad escape, an unterminated
// literal or an encoding violation. It is always terminal for the parse.
type LexError struct {
	Code    diag.Code
	Message string
	Pos     token.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer: %s at %s", e.Message, e.Pos)
}

type span struct {
	start, end int
}

// Lexer turns a source buffer into a token stream. It is single-use and
// single-threaded; concurrent parses each build their own lexer over
// their own buffer.
type Lexer struct {
	buf      *source.Buffer
	reporter diag.Reporter

	pos       int
	depth     int // open (, [, { nesting; newlines inside are insignificant
	last      token.Kind
	hadSpace  bool
	sawCode   bool
	invalidAt int // first offset violating the declared encoding, -1 if none

	havePeek bool
	peeked   token.Token
	peekErr  error

	// Heredoc bodies are consumed ahead of the cursor; the covered
	// regions are skipped when the cursor reaches them.
	skips       []span
	heredocFrom int
}

// New builds a lexer over buf. Non-fatal findings (ambiguous syntax,
// misplaced magic comments) go to reporter; pass diag.Discard{} to
// ignore them.
func New(buf *source.Buffer, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.Discard{}
	}
	return &Lexer{
		buf:       buf,
		reporter:  reporter,
		invalidAt: firstEncodingViolation(buf),
	}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (token.Token, error) {
	if !l.havePeek {
		l.peeked, l.peekErr = l.scan()
		l.havePeek = true
	}
	return l.peeked, l.peekErr
}

// Next returns the next token and advances the cursor.
func (l *Lexer) Next() (token.Token, error) {
	if l.havePeek {
		l.havePeek = false
		return l.peeked, l.peekErr
	}
	return l.scan()
}

func (l *Lexer) scan() (token.Token, error) {
	tok, err := l.scanToken()
	if err != nil {
		return token.Token{}, err
	}
	if l.invalidAt >= 0 && l.invalidAt < tok.Pos.End() {
		return token.Token{}, l.errAt(l.invalidAt, 1, diag.CodeLexBadEncoding,
			fmt.Sprintf("invalid byte sequence in %s", l.buf.Encoding()))
	}
	l.last = tok.Kind
	if tok.Kind != token.Newline && tok.Kind != token.EOF {
		l.sawCode = true
	}
	return tok, nil
}

func (l *Lexer) scanToken() (token.Token, error) {
	l.hadSpace = false
	if err := l.skipInsignificant(); err != nil {
		return token.Token{}, err
	}
	l.applySkips()

	start := l.pos
	c := l.byteAt(l.pos)

	switch {
	case l.pos >= l.buf.Len():
		return l.emit(token.EOF, start, start), nil
	case c == '\n':
		return l.scanNewline(start)
	case c == ';':
		l.pos++
		return l.emit(token.Semi, start, l.pos), nil
	case isDigit(c):
		return l.scanNumber(start)
	case c == '"' || c == '\'':
		return l.scanString(start, c)
	case c == ':':
		return l.scanColon(start)
	case c == '@':
		return l.scanIVar(start)
	case c == '$':
		return l.scanGVar(start)
	case isIdentStart(c) || c >= utf8.RuneSelf:
		return l.scanIdent(start)
	default:
		return l.scanOperator(start)
	}
}

// skipInsignificant consumes whitespace, comments, =begin blocks,
// backslash continuations and suppressed newlines.
func (l *Lexer) skipInsignificant() error {
	for l.pos < l.buf.Len() {
		l.applySkips()
		c := l.byteAt(l.pos)
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.hadSpace = true
			l.pos++
		case c == '\\' && l.byteAt(l.pos+1) == '\n':
			l.hadSpace = true
			l.pos += 2
		case c == '#':
			l.checkLateMagicComment(l.pos)
			for l.pos < l.buf.Len() && l.byteAt(l.pos) != '\n' {
				l.pos++
			}
		case c == '=' && l.atLineStart() && l.hasPrefix("=begin"):
			if err := l.skipEmbeddedDoc(); err != nil {
				return err
			}
		case c == '\n' && l.newlineSuppressed():
			l.pos++
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) scanNewline(start int) (token.Token, error) {
	// Collapse a run of blank lines and comment-only lines into a
	// single terminator token.
	for l.pos < l.buf.Len() {
		l.applySkips()
		c := l.byteAt(l.pos)
		if c == '\n' || c == ' ' || c == '\t' || c == '\r' {
			l.pos++
			continue
		}
		if c == '#' {
			l.checkLateMagicComment(l.pos)
			for l.pos < l.buf.Len() && l.byteAt(l.pos) != '\n' {
				l.pos++
			}
			continue
		}
		if c == '=' && l.atLineStart() && l.hasPrefix("=begin") {
			if err := l.skipEmbeddedDoc(); err != nil {
				return token.Token{}, err
			}
			continue
		}
		break
	}
	return l.emit(token.Newline, start, start+1), nil
}

func (l *Lexer) scanNumber(start int) (token.Token, error) {
	if l.byteAt(l.pos) == '0' {
		switch lower(l.byteAt(l.pos + 1)) {
		case 'x':
			return l.scanRadix(start, 2, 16, isHexDigit)
		case 'b':
			return l.scanRadix(start, 2, 2, func(c byte) bool { return c == '0' || c == '1' })
		case 'o':
			return l.scanRadix(start, 2, 8, isOctalDigit)
		default:
			if isDigit(l.byteAt(l.pos + 1)) {
				return l.scanRadix(start, 1, 8, isOctalDigit)
			}
		}
	}
	l.pos++
	for isDigit(l.byteAt(l.pos)) || l.byteAt(l.pos) == '_' {
		l.pos++
	}
	isFloat := false
	if l.byteAt(l.pos) == '.' && isDigit(l.byteAt(l.pos+1)) {
		isFloat = true
		l.pos += 2
		for isDigit(l.byteAt(l.pos)) || l.byteAt(l.pos) == '_' {
			l.pos++
		}
	}
	if lower(l.byteAt(l.pos)) == 'e' {
		mark := l.pos
		l.pos++
		if l.byteAt(l.pos) == '+' || l.byteAt(l.pos) == '-' {
			l.pos++
		}
		if isDigit(l.byteAt(l.pos)) {
			isFloat = true
			for isDigit(l.byteAt(l.pos)) {
				l.pos++
			}
		} else {
			l.pos = mark
		}
	}
	text := l.text(start, l.pos)
	digits := strings.ReplaceAll(text, "_", "")
	if isFloat {
		var f float64
		if _, err := fmt.Sscanf(digits, "%g", &f); err != nil {
			return token.Token{}, l.errAt(start, l.pos-start, diag.CodeLexIllegalCharacter,
				fmt.Sprintf("malformed float literal %q", text))
		}
		tok := l.emit(token.Float, start, l.pos)
		tok.Real = f
		return tok, nil
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return token.Token{}, l.errAt(start, l.pos-start, diag.CodeLexIllegalCharacter,
			fmt.Sprintf("malformed integer literal %q", text))
	}
	tok := l.emit(token.Int, start, l.pos)
	tok.Num = num
	return tok, nil
}

func (l *Lexer) scanRadix(start, skip, base int, valid func(byte) bool) (token.Token, error) {
	l.pos += skip
	digitStart := l.pos
	for valid(l.byteAt(l.pos)) || l.byteAt(l.pos) == '_' {
		l.pos++
	}
	digits := strings.ReplaceAll(l.text(digitStart, l.pos), "_", "")
	if digits == "" || isDigit(l.byteAt(l.pos)) {
		end := l.pos
		if isDigit(l.byteAt(l.pos)) {
			end++
		}
		return token.Token{}, l.errAt(start, end-start, diag.CodeLexIllegalCharacter,
			fmt.Sprintf("malformed integer literal %q", l.text(start, end)))
	}
	num, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return token.Token{}, l.errAt(start, l.pos-start, diag.CodeLexIllegalCharacter,
			fmt.Sprintf("malformed integer literal %q", l.text(start, l.pos)))
	}
	tok := l.emit(token.Int, start, l.pos)
	tok.Num = num
	return tok, nil
}

func (l *Lexer) scanString(start int, quote byte) (token.Token, error) {
	l.pos++
	var sb strings.Builder
	for {
		if l.pos >= l.buf.Len() || l.byteAt(l.pos) == '\n' {
			return token.Token{}, l.errAt(start, 1, diag.CodeLexUnterminatedString,
				"unterminated string literal")
		}
		c := l.byteAt(l.pos)
		if c == quote {
			l.pos++
			break
		}
		if c == '\\' {
			if quote == '\'' {
				// Single-quoted strings only recognize \' and \\.
				next := l.byteAt(l.pos + 1)
				if next == '\'' || next == '\\' {
					sb.WriteByte(next)
					l.pos += 2
					continue
				}
				sb.WriteByte(c)
				l.pos++
				continue
			}
			decoded, width, err := l.decodeEscape(l.pos)
			if err != nil {
				return token.Token{}, err
			}
			sb.WriteString(decoded)
			l.pos += width
			continue
		}
		sb.WriteByte(c)
		l.pos++
	}
	tok := l.emit(token.String, start, l.pos)
	tok.Str = sb.String()
	return tok, nil
}

// decodeEscape decodes a double-quoted string escape starting at the
// backslash, returning the decoded text and the consumed width.
// Unrecognized single-character escapes denote the character itself;
// malformed \x and \u sequences are errors.
func (l *Lexer) decodeEscape(at int) (string, int, error) {
	c := l.byteAt(at + 1)
	switch c {
	case 'n':
		return "\n", 2, nil
	case 't':
		return "\t", 2, nil
	case 'r':
		return "\r", 2, nil
	case 's':
		return " ", 2, nil
	case '0':
		return "\x00", 2, nil
	case 'a':
		return "\a", 2, nil
	case 'b':
		return "\b", 2, nil
	case 'e':
		return "\x1b", 2, nil
	case 'f':
		return "\f", 2, nil
	case 'v':
		return "\v", 2, nil
	case 'x':
		hi, lo := l.byteAt(at+2), l.byteAt(at+3)
		if !isHexDigit(hi) {
			return "", 0, l.errAt(at, 2, diag.CodeLexInvalidEscape, "invalid hex escape")
		}
		width := 3
		value := hexValue(hi)
		if isHexDigit(lo) {
			value = value*16 + hexValue(lo)
			width = 4
		}
		return string([]byte{byte(value)}), width, nil
	case 'u':
		value := 0
		for i := 0; i < 4; i++ {
			d := l.byteAt(at + 2 + i)
			if !isHexDigit(d) {
				return "", 0, l.errAt(at, 2+i, diag.CodeLexInvalidEscape, "invalid unicode escape")
			}
			value = value*16 + hexValue(d)
		}
		return string(rune(value)), 6, nil
	case 0:
		return "", 0, l.errAt(at, 1, diag.CodeLexInvalidEscape, "trailing backslash")
	default:
		return string(c), 2, nil
	}
}

func (l *Lexer) scanColon(start int) (token.Token, error) {
	if l.byteAt(l.pos+1) == ':' {
		l.pos += 2
		return l.emit(token.Scope, start, l.pos), nil
	}
	next := l.byteAt(l.pos + 1)
	if isIdentStart(next) || next == '@' || next == '$' {
		l.pos++
		nameStart := l.pos
		if l.byteAt(l.pos) == '@' || l.byteAt(l.pos) == '$' {
			l.pos++
		}
		for isIdentPart(l.byteAt(l.pos)) {
			l.pos++
		}
		if c := l.byteAt(l.pos); (c == '?' || c == '!') && l.byteAt(l.pos+1) != '=' {
			l.pos++
		}
		tok := l.emit(token.Symbol, start, l.pos)
		tok.Str = l.text(nameStart, l.pos)
		return tok, nil
	}
	if op, width := symbolOperator(l.buf, l.pos+1); width > 0 {
		l.pos += 1 + width
		tok := l.emit(token.Symbol, start, l.pos)
		tok.Str = op
		return tok, nil
	}
	return token.Token{}, l.errAt(start, 1, diag.CodeLexIllegalCharacter, "unexpected ':'")
}

func (l *Lexer) scanIVar(start int) (token.Token, error) {
	l.pos++
	if !isIdentStart(l.byteAt(l.pos)) {
		return token.Token{}, l.errAt(start, 1, diag.CodeLexIllegalCharacter,
			"'@' without identifier is not allowed as an instance variable name")
	}
	for isIdentPart(l.byteAt(l.pos)) {
		l.pos++
	}
	return l.emit(token.IVar, start, l.pos), nil
}

func (l *Lexer) scanGVar(start int) (token.Token, error) {
	l.pos++
	if !isIdentStart(l.byteAt(l.pos)) {
		return token.Token{}, l.errAt(start, 1, diag.CodeLexIllegalCharacter,
			"'$' without identifier is not allowed as a global variable name")
	}
	for isIdentPart(l.byteAt(l.pos)) {
		l.pos++
	}
	return l.emit(token.GVar, start, l.pos), nil
}

func (l *Lexer) scanIdent(start int) (token.Token, error) {
	for {
		c := l.byteAt(l.pos)
		if isIdentPart(c) {
			l.pos++
			continue
		}
		if c >= utf8.RuneSelf {
			r, width := utf8.DecodeRune(l.buf.Slice(l.pos, 4))
			if r == utf8.RuneError {
				return token.Token{}, l.errAt(l.pos, 1, diag.CodeLexBadEncoding,
					fmt.Sprintf("invalid byte sequence in %s", l.buf.Encoding()))
			}
			l.pos += width
			continue
		}
		break
	}
	if c := l.byteAt(l.pos); (c == '?' || c == '!') && l.byteAt(l.pos+1) != '=' {
		l.pos++
	}
	text := l.text(start, l.pos)
	if kw, ok := token.Keywords[text]; ok {
		return l.emit(kw, start, l.pos), nil
	}
	kind := token.Ident
	if isUpper(text[0]) {
		kind = token.Const
	}
	if l.byteAt(l.pos) == ':' && l.byteAt(l.pos+1) != ':' {
		l.pos++
		tok := l.emit(token.Label, start, l.pos)
		tok.Str = text
		return tok, nil
	}
	return l.emit(kind, start, l.pos), nil
}

func (l *Lexer) scanOperator(start int) (token.Token, error) {
	emitOp := func(kind token.Kind, width int) (token.Token, error) {
		l.pos += width
		return l.emit(kind, start, l.pos), nil
	}
	emitOpAssign := func(op string, width int) (token.Token, error) {
		l.pos += width
		tok := l.emit(token.OpAssign, start, l.pos)
		tok.Str = op
		return tok, nil
	}

	c := l.byteAt(l.pos)
	c1 := l.byteAt(l.pos + 1)
	c2 := l.byteAt(l.pos + 2)
	switch c {
	case '+':
		if c1 == '=' {
			return emitOpAssign("+", 2)
		}
		return emitOp(token.Plus, 1)
	case '-':
		if c1 == '=' {
			return emitOpAssign("-", 2)
		}
		return emitOp(token.Minus, 1)
	case '*':
		if c1 == '*' {
			if c2 == '=' {
				return emitOpAssign("**", 3)
			}
			return emitOp(token.Pow, 2)
		}
		if c1 == '=' {
			return emitOpAssign("*", 2)
		}
		return emitOp(token.Star, 1)
	case '/':
		if c1 == '=' {
			return emitOpAssign("/", 2)
		}
		return emitOp(token.Slash, 1)
	case '%':
		if c1 == '=' {
			return emitOpAssign("%", 2)
		}
		return emitOp(token.Percent, 1)
	case '=':
		if c1 == '=' {
			return emitOp(token.Eq, 2)
		}
		if c1 == '>' {
			return emitOp(token.Arrow, 2)
		}
		return emitOp(token.Assign, 1)
	case '!':
		if c1 == '=' {
			return emitOp(token.NotEq, 2)
		}
		return emitOp(token.Bang, 1)
	case '<':
		if heredoc, ok, err := l.tryHeredoc(start); ok || err != nil {
			return heredoc, err
		}
		if c1 == '=' {
			if c2 == '>' {
				return emitOp(token.Cmp, 3)
			}
			return emitOp(token.LtEq, 2)
		}
		if c1 == '<' {
			if c2 == '=' {
				return emitOpAssign("<<", 3)
			}
			return emitOp(token.LShift, 2)
		}
		return emitOp(token.Lt, 1)
	case '>':
		if c1 == '=' {
			return emitOp(token.GtEq, 2)
		}
		if c1 == '>' {
			if c2 == '=' {
				return emitOpAssign(">>", 3)
			}
			return emitOp(token.RShift, 2)
		}
		return emitOp(token.Gt, 1)
	case '&':
		if c1 == '&' {
			if c2 == '=' {
				return emitOpAssign("&&", 3)
			}
			return emitOp(token.AndOp, 2)
		}
		if c1 == '=' {
			return emitOpAssign("&", 2)
		}
		return emitOp(token.Amp, 1)
	case '|':
		if c1 == '|' {
			if c2 == '=' {
				return emitOpAssign("||", 3)
			}
			return emitOp(token.OrOp, 2)
		}
		if c1 == '=' {
			return emitOpAssign("|", 2)
		}
		return emitOp(token.Pipe, 1)
	case '^':
		if c1 == '=' {
			return emitOpAssign("^", 2)
		}
		return emitOp(token.Caret, 1)
	case '~':
		return emitOp(token.Tilde, 1)
	case '.':
		if c1 == '.' {
			if c2 == '.' {
				return emitOp(token.DotDot3, 3)
			}
			return emitOp(token.DotDot, 2)
		}
		return emitOp(token.Dot, 1)
	case ',':
		return emitOp(token.Comma, 1)
	case '(':
		l.depth++
		return emitOp(token.LParen, 1)
	case ')':
		l.depth--
		return emitOp(token.RParen, 1)
	case '[':
		l.depth++
		if operandEnd(l.last) {
			if l.hadSpace {
				l.warnAt(start, 1, diag.CodeLexAmbiguousIndex,
					"'[' after a value is treated as indexing; use an explicit receiverless array")
			}
			return emitOp(token.LBracketIdx, 1)
		}
		return emitOp(token.LBracket, 1)
	case ']':
		l.depth--
		return emitOp(token.RBracket, 1)
	case '{':
		l.depth++
		return emitOp(token.LBrace, 1)
	case '}':
		l.depth--
		return emitOp(token.RBrace, 1)
	default:
		return token.Token{}, l.errAt(start, 1, diag.CodeLexIllegalCharacter,
			fmt.Sprintf("unexpected character %q", string(rune(c))))
	}
}

func (l *Lexer) emit(kind token.Kind, start, end int) token.Token {
	line, column := l.buf.LineColumn(start)
	return token.Token{
		Kind: kind,
		Text: l.text(start, end),
		Pos: token.Position{
			Offset: start,
			Length: end - start,
			Line:   line,
			Column: column,
		},
	}
}

func (l *Lexer) errAt(offset, length int, code diag.Code, msg string) error {
	if length < 1 {
		length = 1
	}
	line, column := l.buf.LineColumn(offset)
	return &LexError{
		Code:    code,
		Message: msg,
		Pos:     token.Position{Offset: offset, Length: length, Line: line, Column: column},
	}
}

func (l *Lexer) warnAt(offset, length int, code diag.Code, msg string) {
	line, column := l.buf.LineColumn(offset)
	l.reporter.Report(diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityWarning,
		Code:     code,
		Message:  msg,
		File:     l.buf.Name(),
		Span:     diag.Span{Start: offset, End: offset + length, Line: line, Column: column},
	})
}

func (l *Lexer) checkLateMagicComment(at int) {
	if !l.sawCode {
		return
	}
	rest := string(l.buf.Slice(at, 80))
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	lowered := strings.ToLower(rest)
	if strings.Contains(lowered, "frozen_string_literal:") ||
		strings.Contains(lowered, "coding:") {
		l.warnAt(at, len(rest), diag.CodeLexLateMagicComment,
			"magic comment after the first statement is ignored")
	}
}

func (l *Lexer) skipEmbeddedDoc() error {
	start := l.pos
	for l.pos < l.buf.Len() {
		if l.atLineStart() && l.hasPrefix("=end") {
			for l.pos < l.buf.Len() && l.byteAt(l.pos) != '\n' {
				l.pos++
			}
			return nil
		}
		l.pos++
	}
	return l.errAt(start, 6, diag.CodeLexUnterminatedString,
		"embedded document meets end of file")
}

func (l *Lexer) newlineSuppressed() bool {
	if l.depth > 0 {
		return true
	}
	switch l.last {
	case token.Plus, token.Minus, token.Star, token.Pow, token.Slash, token.Percent,
		token.Eq, token.NotEq, token.Lt, token.Gt, token.LtEq, token.GtEq, token.Cmp,
		token.AndOp, token.OrOp, token.Amp, token.Pipe, token.Caret,
		token.LShift, token.RShift, token.Assign, token.OpAssign, token.Arrow,
		token.DotDot, token.DotDot3, token.Dot, token.Scope, token.Comma,
		token.KwAnd, token.KwOr, token.KwNot:
		return true
	}
	return false
}

func (l *Lexer) applySkips() {
	for len(l.skips) > 0 && l.pos >= l.skips[0].start {
		if l.skips[0].end > l.pos {
			l.pos = l.skips[0].end
		}
		l.skips = l.skips[1:]
	}
}

func (l *Lexer) atLineStart() bool {
	return l.pos == 0 || l.byteAt(l.pos-1) == '\n'
}

func (l *Lexer) hasPrefix(s string) bool {
	return string(l.buf.Slice(l.pos, len(s))) == s
}

func (l *Lexer) byteAt(at int) byte { return l.buf.Byte(at) }

func (l *Lexer) text(start, end int) string {
	return string(l.buf.Slice(start, end-start))
}

// operandEnd reports whether kind can terminate an operand, which makes
// a following '[' an index operator rather than an array literal.
func operandEnd(kind token.Kind) bool {
	switch kind {
	case token.Ident, token.Const, token.IVar, token.GVar,
		token.Int, token.Float, token.String, token.Symbol,
		token.RParen, token.RBracket, token.RBrace,
		token.KwEnd, token.KwSelf, token.KwNil, token.KwTrue, token.KwFalse:
		return true
	}
	return false
}

func symbolOperator(buf *source.Buffer, at int) (string, int) {
	for _, op := range []string{"<=>", "==", "<<", ">>", "[]", "+", "-", "*", "/", "%", "<", ">", "!", "~", "&", "|", "^"} {
		if string(buf.Slice(at, len(op))) == op {
			return op, len(op)
		}
	}
	return "", 0
}

func firstEncodingViolation(buf *source.Buffer) int {
	data := buf.Data()
	switch buf.Encoding() {
	case "utf-8", "utf8":
		for i := 0; i < len(data); {
			if data[i] < utf8.RuneSelf {
				i++
				continue
			}
			r, width := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && width == 1 {
				return i
			}
			i += width
		}
	case "us-ascii", "ascii":
		for i := 0; i < len(data); i++ {
			if data[i] >= 0x80 {
				return i
			}
		}
	}
	return -1
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }
func isHexDigit(c byte) bool {
	return isDigit(c) || (lower(c) >= 'a' && lower(c) <= 'f')
}
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
func isUpper(c byte) bool     { return c >= 'A' && c <= 'Z' }
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	default:
		return int(lower(c)-'a') + 10
	}
}
