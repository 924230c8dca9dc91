package lexer

import (
	"errors"
	"math/big"
	"testing"

	"rubyfront/parser-go/pkg/diag"
	"rubyfront/parser-go/pkg/source"
	"rubyfront/parser-go/pkg/token"
)

func lexAll(t testing.TB, src string) []token.Token {
	t.Helper()
	lx := New(source.New("test.rb", []byte(src)), nil)
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}
		toks = append(toks, tok)
		if tok.IsEOF() {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func checkKinds(t testing.TB, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks := lexAll(t, src)
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("lexing %q: got %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lexing %q: token %d is %v, want %v", src, i, got, want)
		}
	}
	return toks
}

func lexError(t testing.TB, src string) *LexError {
	t.Helper()
	lx := New(source.New("test.rb", []byte(src)), nil)
	for {
		tok, err := lx.Next()
		if err != nil {
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("lexing %q: error %v is not a LexError", src, err)
			}
			return lexErr
		}
		if tok.IsEOF() {
			t.Fatalf("lexing %q: expected an error, got clean EOF", src)
		}
	}
}

func TestBasicTokens(t *testing.T) {
	checkKinds(t, "x = 1",
		token.Ident, token.Assign, token.Int, token.EOF)
	checkKinds(t, "Foo::Bar",
		token.Const, token.Scope, token.Const, token.EOF)
	checkKinds(t, "@a $b",
		token.IVar, token.GVar, token.EOF)
	checkKinds(t, "a.b(1, 2)",
		token.Ident, token.Dot, token.Ident, token.LParen,
		token.Int, token.Comma, token.Int, token.RParen, token.EOF)
	checkKinds(t, "if x then y end",
		token.KwIf, token.Ident, token.KwThen, token.Ident, token.KwEnd, token.EOF)
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"1_000_000", "1000000"},
		{"0xff", "255"},
		{"0b1010", "10"},
		{"0o17", "15"},
		{"017", "15"},
		{"99999999999999999999999999", "99999999999999999999999999"},
	}
	for _, tc := range cases {
		toks := checkKinds(t, tc.src, token.Int, token.EOF)
		if toks[0].Num.Cmp(mustBig(tc.want)) != 0 {
			t.Fatalf("lexing %q: value %v, want %s", tc.src, toks[0].Num, tc.want)
		}
	}

	toks := checkKinds(t, "3.25", token.Float, token.EOF)
	if toks[0].Real != 3.25 {
		t.Fatalf("float value %v, want 3.25", toks[0].Real)
	}
	toks = checkKinds(t, "1.5e3", token.Float, token.EOF)
	if toks[0].Real != 1500 {
		t.Fatalf("float value %v, want 1500", toks[0].Real)
	}

	// A trailing dot is a method call, not a float.
	checkKinds(t, "1.abs", token.Int, token.Dot, token.Ident, token.EOF)
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return n
}

func TestStringLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"\x41\x4a"`, "AJ"},
		{`"é"`, "é"},
		{`"\q"`, "q"},
		{`'a\nb'`, `a\nb`},
		{`'don\'t'`, "don't"},
	}
	for _, tc := range cases {
		toks := checkKinds(t, tc.src, token.String, token.EOF)
		if toks[0].Str != tc.want {
			t.Fatalf("lexing %s: value %q, want %q", tc.src, toks[0].Str, tc.want)
		}
	}
}

func TestStringErrors(t *testing.T) {
	err := lexError(t, `x = "abc`)
	if err.Code != diag.CodeLexUnterminatedString {
		t.Fatalf("code = %s, want %s", err.Code, diag.CodeLexUnterminatedString)
	}
	// The error points at the opening quote.
	if err.Pos.Offset != 4 || err.Pos.Line != 1 || err.Pos.Column != 5 {
		t.Fatalf("error position = %+v, want offset 4 at 1:5", err.Pos)
	}

	if err := lexError(t, `"\xzz"`); err.Code != diag.CodeLexInvalidEscape {
		t.Fatalf("code = %s, want %s", err.Code, diag.CodeLexInvalidEscape)
	}
	if err := lexError(t, `"\u12g4"`); err.Code != diag.CodeLexInvalidEscape {
		t.Fatalf("code = %s, want %s", err.Code, diag.CodeLexInvalidEscape)
	}
}

func TestSymbolsAndLabels(t *testing.T) {
	toks := checkKinds(t, ":foo", token.Symbol, token.EOF)
	if toks[0].Str != "foo" {
		t.Fatalf("symbol value %q, want foo", toks[0].Str)
	}
	toks = checkKinds(t, ":<=>", token.Symbol, token.EOF)
	if toks[0].Str != "<=>" {
		t.Fatalf("symbol value %q, want <=>", toks[0].Str)
	}
	toks = checkKinds(t, ":empty?", token.Symbol, token.EOF)
	if toks[0].Str != "empty?" {
		t.Fatalf("symbol value %q, want empty?", toks[0].Str)
	}

	toks = checkKinds(t, "f(a: 1)",
		token.Ident, token.LParen, token.Label, token.Int, token.RParen, token.EOF)
	if toks[2].Str != "a" {
		t.Fatalf("label value %q, want a", toks[2].Str)
	}
	// A scope operator is not a label.
	checkKinds(t, "A::B", token.Const, token.Scope, token.Const, token.EOF)
}

func TestOperatorAssignment(t *testing.T) {
	cases := []struct {
		src string
		op  string
	}{
		{"a += 1", "+"},
		{"a -= 1", "-"},
		{"a *= 1", "*"},
		{"a **= 1", "**"},
		{"a ||= 1", "||"},
		{"a &&= 1", "&&"},
		{"a <<= 1", "<<"},
	}
	for _, tc := range cases {
		toks := checkKinds(t, tc.src, token.Ident, token.OpAssign, token.Int, token.EOF)
		if toks[1].Str != tc.op {
			t.Fatalf("lexing %q: operator %q, want %q", tc.src, toks[1].Str, tc.op)
		}
	}
}

func TestMethodSuffixes(t *testing.T) {
	checkKinds(t, "x.empty?", token.Ident, token.Dot, token.Ident, token.EOF)
	toks := lexAll(t, "save!")
	if toks[0].Text != "save!" {
		t.Fatalf("token text %q, want save!", toks[0].Text)
	}
	// `a != b` keeps the != operator.
	checkKinds(t, "a != b", token.Ident, token.NotEq, token.Ident, token.EOF)
}

func TestBracketDisambiguation(t *testing.T) {
	checkKinds(t, "a[0]",
		token.Ident, token.LBracketIdx, token.Int, token.RBracket, token.EOF)
	checkKinds(t, "x = [1]",
		token.Ident, token.Assign, token.LBracket, token.Int, token.RBracket, token.EOF)
	checkKinds(t, "f([1])",
		token.Ident, token.LParen, token.LBracket, token.Int, token.RBracket,
		token.RParen, token.EOF)

	// Spaced indexing still indexes, but warns.
	collector := &diag.Collector{}
	lx := New(source.New("test.rb", []byte("a [0]")), collector)
	var got []token.Kind
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, tok.Kind)
		if tok.IsEOF() {
			break
		}
	}
	if got[1] != token.LBracketIdx {
		t.Fatalf("spaced bracket lexed as %v, want LBRACKET_IDX", got[1])
	}
	if len(collector.Diagnostics) != 1 || collector.Diagnostics[0].Code != diag.CodeLexAmbiguousIndex {
		t.Fatalf("diagnostics = %+v, want one %s warning", collector.Diagnostics, diag.CodeLexAmbiguousIndex)
	}
}

func TestNewlineHandling(t *testing.T) {
	// A newline run collapses into one terminator.
	checkKinds(t, "a\n\n\nb",
		token.Ident, token.Newline, token.Ident, token.EOF)
	// Newlines inside parens are insignificant.
	checkKinds(t, "f(1,\n2)",
		token.Ident, token.LParen, token.Int, token.Comma, token.Int,
		token.RParen, token.EOF)
	// A newline after a binary operator continues the expression.
	checkKinds(t, "a +\nb",
		token.Ident, token.Plus, token.Ident, token.EOF)
	// Backslash continuation.
	checkKinds(t, "a \\\n+ b",
		token.Ident, token.Plus, token.Ident, token.EOF)
	// Comment-only lines fold into the terminator.
	checkKinds(t, "a\n# comment\nb",
		token.Ident, token.Newline, token.Ident, token.EOF)
}

func TestEmbeddedDoc(t *testing.T) {
	checkKinds(t, "a\n=begin\nanything\n=end\nb",
		token.Ident, token.Newline, token.Ident, token.EOF)
	if err := lexError(t, "=begin\nnever closed"); err.Code != diag.CodeLexUnterminatedString {
		t.Fatalf("code = %s", err.Code)
	}
}

func TestHeredocs(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "plain",
			src:  "x = <<EOS\nline one\nline two\nEOS\n",
			want: "line one\nline two\n",
		},
		{
			name: "dash allows indented terminator",
			src:  "x = <<-EOS\n  body\n  EOS\n",
			want: "  body\n",
		},
		{
			name: "squiggly dedents",
			src:  "x = <<~EOS\n    a\n      b\n    EOS\n",
			want: "a\n  b\n",
		},
		{
			name: "quoted delimiter",
			src:  "x = <<'raw'\nkeep \\n as is\nraw\n",
			want: "keep \\n as is\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks := checkKinds(t, tc.src,
				token.Ident, token.Assign, token.String, token.Newline, token.EOF)
			if toks[2].Str != tc.want {
				t.Fatalf("heredoc value %q, want %q", toks[2].Str, tc.want)
			}
		})
	}
}

func TestHeredocAfterMarkerOnSameLine(t *testing.T) {
	// The rest of the marker line lexes before the body is skipped.
	toks := checkKinds(t, "f(<<EOS, 1)\nbody\nEOS\n",
		token.Ident, token.LParen, token.String, token.Comma, token.Int,
		token.RParen, token.Newline, token.EOF)
	if toks[2].Str != "body\n" {
		t.Fatalf("heredoc value %q, want %q", toks[2].Str, "body\n")
	}
}

func TestHeredocVersusShift(t *testing.T) {
	// After a value, << is a left shift even before an uppercase name.
	checkKinds(t, "a <<B\nx\nB",
		token.Ident, token.LShift, token.Const, token.Newline,
		token.Ident, token.Newline, token.Const, token.EOF)
}

func TestUnterminatedHeredoc(t *testing.T) {
	err := lexError(t, "x = <<EOS\nno end")
	if err.Code != diag.CodeLexUnterminatedHeredoc {
		t.Fatalf("code = %s, want %s", err.Code, diag.CodeLexUnterminatedHeredoc)
	}
}

func TestEncodingValidation(t *testing.T) {
	err := lexError(t, "# encoding: us-ascii\nx = \"caf\xc3\xa9\"\n")
	if err.Code != diag.CodeLexBadEncoding {
		t.Fatalf("code = %s, want %s", err.Code, diag.CodeLexBadEncoding)
	}

	// The same bytes are fine under the UTF-8 default.
	checkKinds(t, "x = \"caf\xc3\xa9\"\n",
		token.Ident, token.Assign, token.String, token.Newline, token.EOF)

	// Truncated UTF-8 is rejected.
	if err := lexError(t, "x = \"a\xc3\""); err.Code != diag.CodeLexBadEncoding {
		t.Fatalf("code = %s, want %s", err.Code, diag.CodeLexBadEncoding)
	}
}

func TestLateMagicCommentWarning(t *testing.T) {
	collector := &diag.Collector{}
	lx := New(source.New("test.rb", []byte("x = 1\n# frozen_string_literal: true\ny = 2\n")), collector)
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.IsEOF() {
			break
		}
	}
	if len(collector.Diagnostics) != 1 || collector.Diagnostics[0].Code != diag.CodeLexLateMagicComment {
		t.Fatalf("diagnostics = %+v, want one %s warning", collector.Diagnostics, diag.CodeLexLateMagicComment)
	}
}

func TestTokenPositions(t *testing.T) {
	toks := lexAll(t, "ab = 12\n cd")
	want := []struct {
		kind   token.Kind
		offset int
		length int
		line   int
		column int
	}{
		{token.Ident, 0, 2, 1, 1},
		{token.Assign, 3, 1, 1, 4},
		{token.Int, 5, 2, 1, 6},
		{token.Newline, 7, 1, 1, 8},
		{token.Ident, 9, 2, 2, 2},
		{token.EOF, 11, 0, 2, 4},
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Kind != w.kind || tok.Pos.Offset != w.offset || tok.Pos.Length != w.length ||
			tok.Pos.Line != w.line || tok.Pos.Column != w.column {
			t.Fatalf("token %d = %v at %+v, want %v offset=%d len=%d %d:%d",
				i, tok.Kind, tok.Pos, w.kind, w.offset, w.length, w.line, w.column)
		}
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	lx := New(source.New("test.rb", []byte("a b")), nil)
	peeked, err := lx.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	next, err := lx.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if peeked != next {
		t.Fatalf("Peek %v != Next %v", peeked, next)
	}
	second, err := lx.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if second.Text != "b" {
		t.Fatalf("second token %v, want b", second)
	}
}

func TestIllegalCharacter(t *testing.T) {
	if err := lexError(t, "a ` b"); err.Code != diag.CodeLexIllegalCharacter {
		t.Fatalf("code = %s, want %s", err.Code, diag.CodeLexIllegalCharacter)
	}
}
