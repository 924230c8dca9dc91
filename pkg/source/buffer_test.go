package source

import "testing"

func TestLineColumn(t *testing.T) {
	buf := New("test.rb", []byte("abc\ndef\n\nghi"))

	cases := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4}, // the newline belongs to its line
		{4, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
		{9, 4, 1},
		{11, 4, 3},
		{12, 4, 4}, // end of buffer maps onto the final line
		{99, 4, 4},
	}
	for _, tc := range cases {
		line, column := buf.LineColumn(tc.offset)
		if line != tc.line || column != tc.column {
			t.Fatalf("LineColumn(%d) = (%d,%d), want (%d,%d)",
				tc.offset, line, column, tc.line, tc.column)
		}
	}
}

func TestLineText(t *testing.T) {
	buf := New("test.rb", []byte("first\r\nsecond\nthird"))
	if got := buf.LineText(1); got != "first" {
		t.Fatalf("LineText(1) = %q, want %q", got, "first")
	}
	if got := buf.LineText(2); got != "second" {
		t.Fatalf("LineText(2) = %q, want %q", got, "second")
	}
	if got := buf.LineText(3); got != "third" {
		t.Fatalf("LineText(3) = %q, want %q", got, "third")
	}
	if got := buf.LineText(4); got != "" {
		t.Fatalf("LineText(4) = %q, want empty", got)
	}
}

func TestDeclaredEncoding(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"default", "x = 1\n", "utf-8"},
		{"encoding comment", "# encoding: us-ascii\nx = 1\n", "us-ascii"},
		{"emacs style", "# -*- coding: iso-8859-1 -*-\nx = 1\n", "iso-8859-1"},
		{"after shebang", "#!/usr/bin/env ruby\n# encoding: us-ascii\nx = 1\n", "us-ascii"},
		{"too late", "x = 1\n# encoding: us-ascii\n", "utf-8"},
		{"case insensitive", "# Encoding: US-ASCII\n", "us-ascii"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := New("test.rb", []byte(tc.source))
			if got := buf.Encoding(); got != tc.want {
				t.Fatalf("Encoding() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSliceClamped(t *testing.T) {
	buf := New("test.rb", []byte("abc"))
	if got := string(buf.Slice(1, 10)); got != "bc" {
		t.Fatalf("Slice(1,10) = %q, want %q", got, "bc")
	}
	if got := string(buf.Slice(-2, 2)); got != "ab" {
		t.Fatalf("Slice(-2,2) = %q, want %q", got, "ab")
	}
	if got := buf.Byte(3); got != 0 {
		t.Fatalf("Byte(3) = %d, want 0", got)
	}
}
