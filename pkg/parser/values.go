package parser

import (
	"rubyfront/parser-go/pkg/ast"
	"rubyfront/parser-go/pkg/grammar"
	"rubyfront/parser-go/pkg/token"
)

// Semantic value accessors. Reduction values are any-typed; these keep
// the actions readable and make a nil slot come back as a typed zero.

func tk(v any) token.Token {
	t, _ := v.(token.Token)
	return t
}

func nd(v any) ast.Node {
	if v == nil {
		return nil
	}
	n, _ := v.(ast.Node)
	return n
}

func ns(v any) []ast.Node {
	if v == nil {
		return nil
	}
	n, _ := v.([]ast.Node)
	return n
}

func reductionSpan(r grammar.Reduction) ast.Span {
	return ast.Span{Start: r.Start, Length: r.End - r.Start}
}

func tokenSpan(t token.Token) ast.Span {
	return ast.Span{Start: t.Pos.Offset, Length: t.Pos.Length}
}

// finish stamps the node with the reduction's extent and returns it as
// a semantic value. Every node-producing action ends here, which is
// what makes the span-containment property hold by construction.
func finish(n ast.Node, r grammar.Reduction) (any, error) {
	ast.SetSpan(n, reductionSpan(r))
	return n, nil
}

func spanUnion(nodes []ast.Node) ast.Span {
	var span ast.Span
	for _, n := range nodes {
		if n != nil {
			span = span.Union(n.Span())
		}
	}
	return span
}

// listOrSingle collapses a statement sequence: nil for empty, the node
// itself for a singleton, a ListNode spanning the statements otherwise.
func listOrSingle(stmts []ast.Node) ast.Node {
	switch len(stmts) {
	case 0:
		return nil
	case 1:
		return stmts[0]
	}
	list := ast.NewListNode(stmts)
	ast.SetSpan(list, spanUnion(stmts))
	return list
}

// trailingHash wraps bare key/value arguments at the end of a call
// argument list into an implicit hash literal, as `f(a, k: 1)` does.
func trailingHash(entries []ast.Node) ast.Node {
	hash := ast.NewHashLiteral(entries)
	ast.SetSpan(hash, spanUnion(entries))
	return hash
}
