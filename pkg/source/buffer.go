package source

import (
	"fmt"
	"sort"
	"strings"
)

// Buffer is a read-only view of one source unit. It owns the raw bytes,
// a precomputed line index, and the encoding declared by a magic comment
// (or the UTF-8 default). Buffers are immutable after construction and
// safe to share across concurrent parses.
type Buffer struct {
	name        string
	data        []byte
	lineOffsets []int
	encoding    string
}

// DefaultEncoding is assumed when no magic comment declares one.
const DefaultEncoding = "utf-8"

// New builds a buffer over data. The name is only used for diagnostics
// and gives the buffer a stable identity.
func New(name string, data []byte) *Buffer {
	b := &Buffer{
		name:     name,
		data:     data,
		encoding: DefaultEncoding,
	}
	b.lineOffsets = append(b.lineOffsets, 0)
	for i, c := range data {
		if c == '\n' && i+1 < len(data) {
			b.lineOffsets = append(b.lineOffsets, i+1)
		}
	}
	if enc, ok := declaredEncoding(data); ok {
		b.encoding = enc
	}
	return b
}

// Name reports the identity given at construction.
func (b *Buffer) Name() string { return b.name }

// Data returns the underlying bytes. Callers must not mutate them.
func (b *Buffer) Data() []byte { return b.data }

// Len reports the byte length of the source.
func (b *Buffer) Len() int { return len(b.data) }

// Encoding reports the declared source encoding, lower-cased.
func (b *Buffer) Encoding() string { return b.encoding }

// Byte returns the byte at offset, or 0 past the end.
func (b *Buffer) Byte(offset int) byte {
	if offset < 0 || offset >= len(b.data) {
		return 0
	}
	return b.data[offset]
}

// Slice returns the bytes in the half-open range [start, start+length),
// clamped to the buffer bounds.
func (b *Buffer) Slice(start, length int) []byte {
	if start < 0 {
		start = 0
	}
	if start > len(b.data) {
		start = len(b.data)
	}
	end := start + length
	if end > len(b.data) {
		end = len(b.data)
	}
	return b.data[start:end]
}

// LineColumn translates a byte offset into 1-based line and column numbers.
// Offsets at or past the end of the buffer map onto the final line.
func (b *Buffer) LineColumn(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.data) {
		offset = len(b.data)
	}
	idx := sort.Search(len(b.lineOffsets), func(i int) bool {
		return b.lineOffsets[i] > offset
	}) - 1
	return idx + 1, offset - b.lineOffsets[idx] + 1
}

// LineText returns the text of the 1-based line without its terminator.
func (b *Buffer) LineText(line int) string {
	if line < 1 || line > len(b.lineOffsets) {
		return ""
	}
	start := b.lineOffsets[line-1]
	end := len(b.data)
	if line < len(b.lineOffsets) {
		end = b.lineOffsets[line]
	}
	return strings.TrimRight(string(b.data[start:end]), "\r\n")
}

// Describe formats an offset as name:line:column for diagnostics.
func (b *Buffer) Describe(offset int) string {
	line, column := b.LineColumn(offset)
	return fmt.Sprintf("%s:%d:%d", b.name, line, column)
}

// declaredEncoding scans the first two lines for a Ruby-style magic
// comment of the form "# encoding: x" or "# -*- coding: x -*-". The
// second line is only consulted when the first is a shebang.
func declaredEncoding(data []byte) (string, bool) {
	lines := strings.SplitN(string(data), "\n", 3)
	for i, lineText := range lines {
		if i > 1 {
			break
		}
		trimmed := strings.TrimSpace(lineText)
		if i == 0 && strings.HasPrefix(trimmed, "#!") {
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			break
		}
		if enc, ok := parseEncodingComment(trimmed); ok {
			return enc, true
		}
		break
	}
	return "", false
}

func parseEncodingComment(comment string) (string, bool) {
	lower := strings.ToLower(comment)
	for _, key := range []string{"coding:", "encoding:"} {
		idx := strings.Index(lower, key)
		if idx < 0 {
			continue
		}
		rest := lower[idx+len(key):]
		rest = strings.TrimSpace(rest)
		end := 0
		for end < len(rest) {
			c := rest[end]
			if c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
				end++
				continue
			}
			break
		}
		if end == 0 {
			continue
		}
		return rest[:end], true
	}
	return "", false
}
