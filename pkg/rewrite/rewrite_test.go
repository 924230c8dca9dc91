package rewrite

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"rubyfront/parser-go/pkg/ast"
	"rubyfront/parser-go/pkg/diag"
)

func intLit(v int64, span ast.Span) *ast.IntegerLiteral {
	n := ast.NewIntegerLiteral(big.NewInt(v))
	ast.SetSpan(n, span)
	return n
}

func ident(name string, span ast.Span) *ast.Identifier {
	n := ast.NewIdentifier(name)
	ast.SetSpan(n, span)
	return n
}

func apply(t testing.TB, p Pass, root ast.Node) ast.Node {
	t.Helper()
	out, err := p.Apply(root)
	if err != nil {
		t.Fatalf("%s: %v", p.Name(), err)
	}
	return out
}

func TestNumericLiteralFold(t *testing.T) {
	// -5 with the minus at offset 4
	unary := ast.NewUnaryExpression("-", intLit(5, ast.Span{Start: 5, Length: 1}))
	ast.SetSpan(unary, ast.Span{Start: 4, Length: 2})

	out := apply(t, NumericLiteralFold(), unary)
	folded, ok := out.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.IntegerLiteral", out)
	}
	if folded.Value.Int64() != -5 {
		t.Fatalf("value %s, want -5", folded.Value)
	}
	if folded.Span() != (ast.Span{Start: 4, Length: 2}) {
		t.Fatalf("span %+v, want the unary expression's", folded.Span())
	}
}

func TestNumericLiteralFoldFloat(t *testing.T) {
	operand := ast.NewFloatLiteral(1.5)
	ast.SetSpan(operand, ast.Span{Start: 1, Length: 3})
	unary := ast.NewUnaryExpression("-", operand)
	ast.SetSpan(unary, ast.Span{Start: 0, Length: 4})

	out := apply(t, NumericLiteralFold(), unary)
	folded, ok := out.(*ast.FloatLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.FloatLiteral", out)
	}
	if folded.Value != -1.5 {
		t.Fatalf("value %g, want -1.5", folded.Value)
	}
}

func TestNumericLiteralFoldLeavesNonLiterals(t *testing.T) {
	// -(x) and !5 must come back untouched, as the same node.
	negated := ast.NewUnaryExpression("-", ident("x", ast.Span{Start: 1, Length: 1}))
	if out := apply(t, NumericLiteralFold(), negated); out != ast.Node(negated) {
		t.Fatalf("unary over a name was rewritten to %T", out)
	}
	logical := ast.NewUnaryExpression("!", intLit(5, ast.Span{Start: 1, Length: 1}))
	if out := apply(t, NumericLiteralFold(), logical); out != ast.Node(logical) {
		t.Fatalf("logical not was rewritten to %T", out)
	}
}

func TestNumericLiteralFoldSharesSiblings(t *testing.T) {
	left := ident("a", ast.Span{Start: 0, Length: 1})
	right := ast.NewUnaryExpression("-", intLit(2, ast.Span{Start: 5, Length: 1}))
	ast.SetSpan(right, ast.Span{Start: 4, Length: 2})
	root := ast.NewBinaryExpression("+", left, right)
	ast.SetSpan(root, ast.Span{Start: 0, Length: 6})

	out := apply(t, NumericLiteralFold(), root)
	rebuilt, ok := out.(*ast.BinaryExpression)
	if !ok || out == ast.Node(root) {
		t.Fatalf("got %T (same=%v), want a rebuilt binary expression", out, out == ast.Node(root))
	}
	if rebuilt.Left != ast.Node(left) {
		t.Fatal("unchanged left operand was not shared")
	}
	if _, ok := rebuilt.Right.(*ast.IntegerLiteral); !ok {
		t.Fatalf("right operand is %T, want a folded literal", rebuilt.Right)
	}
	// The rebuilt parent keeps its original span.
	if rebuilt.Span() != (ast.Span{Start: 0, Length: 6}) {
		t.Fatalf("span %+v changed during rebuild", rebuilt.Span())
	}
	// The input tree is untouched.
	if _, ok := root.Right.(*ast.UnaryExpression); !ok {
		t.Fatal("input tree was mutated")
	}
}

func TestNumericLiteralFoldIdempotent(t *testing.T) {
	unary := ast.NewUnaryExpression("-", intLit(5, ast.Span{Start: 1, Length: 1}))
	ast.SetSpan(unary, ast.Span{Start: 0, Length: 2})
	once := apply(t, NumericLiteralFold(), unary)
	twice := apply(t, NumericLiteralFold(), once)
	if twice != once {
		t.Fatal("second application rewrote an already folded tree")
	}
}

func TestOpAssignDesugar(t *testing.T) {
	target := ident("x", ast.Span{Start: 0, Length: 1})
	value := intLit(1, ast.Span{Start: 7, Length: 1})
	opAsgn := ast.NewOperatorAssignment(target, "+", value)
	ast.SetSpan(opAsgn, ast.Span{Start: 0, Length: 8})

	out := apply(t, OpAssignDesugar(), opAsgn)
	asgn, ok := out.(*ast.Assignment)
	if !ok {
		t.Fatalf("got %T, want *ast.Assignment", out)
	}
	if asgn.Target != ast.Node(target) {
		t.Fatal("target was not carried over")
	}
	if asgn.Span() != (ast.Span{Start: 0, Length: 8}) {
		t.Fatalf("assignment span %+v, want the op-assign's", asgn.Span())
	}

	op, ok := asgn.Value.(*ast.BinaryExpression)
	if !ok || op.Operator != "+" {
		t.Fatalf("value is %T, want x + 1", asgn.Value)
	}
	read, ok := op.Left.(*ast.Identifier)
	if !ok || read.Name != "x" {
		t.Fatalf("read is %v, want a clone of x", op.Left)
	}
	if read == target {
		t.Fatal("read shares the target node; it must be a clone")
	}
	if read.Span() != target.Span() {
		t.Fatalf("read span %+v, want the target's %+v", read.Span(), target.Span())
	}
	if op.Right != ast.Node(value) {
		t.Fatal("value operand was not carried over")
	}
	if op.Span() != (ast.Span{Start: 0, Length: 8}) {
		t.Fatalf("operation span %+v, want target through value", op.Span())
	}
}

func TestOpAssignDesugarNameKinds(t *testing.T) {
	targets := []ast.Node{
		ast.NewInstanceVariable("@a"),
		ast.NewGlobalVariable("$a"),
		ast.NewConstant("A"),
	}
	for _, target := range targets {
		ast.SetSpan(target, ast.Span{Start: 0, Length: 2})
		opAsgn := ast.NewOperatorAssignment(target, "||", intLit(1, ast.Span{Start: 6, Length: 1}))
		ast.SetSpan(opAsgn, ast.Span{Start: 0, Length: 7})
		out := apply(t, OpAssignDesugar(), opAsgn)
		if _, ok := out.(*ast.Assignment); !ok {
			t.Fatalf("%T target: got %T, want *ast.Assignment", target, out)
		}
	}
}

func TestOpAssignIndexTargetKept(t *testing.T) {
	// a[0] += 1 stays an OperatorAssignment: desugaring would evaluate
	// the receiver twice.
	target := ast.NewIndexExpression(
		ident("a", ast.Span{Start: 0, Length: 1}),
		[]ast.Node{intLit(0, ast.Span{Start: 2, Length: 1})},
	)
	ast.SetSpan(target, ast.Span{Start: 0, Length: 4})
	opAsgn := ast.NewOperatorAssignment(target, "+", intLit(1, ast.Span{Start: 8, Length: 1}))
	ast.SetSpan(opAsgn, ast.Span{Start: 0, Length: 9})

	if out := apply(t, OpAssignDesugar(), opAsgn); out != ast.Node(opAsgn) {
		t.Fatalf("index target was rewritten to %T", out)
	}

	attr := ast.NewOperatorAssignment(
		ast.NewMethodCall(ident("a", ast.Span{Start: 0, Length: 1}), "b", nil),
		"+", intLit(1, ast.Span{Start: 9, Length: 1}))
	if out := apply(t, OpAssignDesugar(), attr); out != ast.Node(attr) {
		t.Fatalf("attribute target was rewritten to %T", out)
	}
}

func TestOpAssignDesugarIdempotent(t *testing.T) {
	opAsgn := ast.NewOperatorAssignment(
		ident("x", ast.Span{Start: 0, Length: 1}), "+",
		intLit(1, ast.Span{Start: 7, Length: 1}))
	ast.SetSpan(opAsgn, ast.Span{Start: 0, Length: 8})
	once := apply(t, OpAssignDesugar(), opAsgn)
	twice := apply(t, OpAssignDesugar(), once)
	if twice != once {
		t.Fatal("second application rewrote an already desugared tree")
	}
}

func validCase() *ast.CaseExpression {
	clause := ast.NewWhenClause(
		[]ast.Node{intLit(1, ast.Span{Start: 12, Length: 1})},
		intLit(2, ast.Span{Start: 19, Length: 1}))
	ast.SetSpan(clause, ast.Span{Start: 7, Length: 13})
	clauses := ast.NewListNode([]ast.Node{clause})
	ast.SetSpan(clauses, clause.Span())
	node := ast.NewCaseExpression(ident("x", ast.Span{Start: 5, Length: 1}), clauses)
	ast.SetSpan(node, ast.Span{Start: 0, Length: 24})
	return node
}

func TestCaseConsistencyAcceptsValidTree(t *testing.T) {
	node := validCase()
	if out := apply(t, CaseConsistency(), node); out != ast.Node(node) {
		t.Fatal("validation pass replaced the tree")
	}
}

func TestCaseConsistencyEmptyBody(t *testing.T) {
	node := ast.NewCaseExpression(nil, ast.NewListNode(nil))
	ast.SetSpan(node, ast.Span{Start: 0, Length: 8})

	_, err := CaseConsistency().Apply(node)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Code != diag.CodeRewriteEmptyCaseBody {
		t.Fatalf("code %v, want %v", verr.Code, diag.CodeRewriteEmptyCaseBody)
	}
	if verr.Span != node.Span() {
		t.Fatalf("span %+v, want the case expression's", verr.Span)
	}
}

func TestCaseConsistencyMixedClauses(t *testing.T) {
	when := ast.NewWhenClause([]ast.Node{intLit(1, ast.Span{})}, nil)
	in := ast.NewInClause(intLit(2, ast.Span{}), nil)
	node := ast.NewCaseExpression(nil, ast.NewListNode([]ast.Node{when, in}))

	_, err := CaseConsistency().Apply(node)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Code != diag.CodeRewriteMixedCaseBody {
		t.Fatalf("code %v, want %v", verr.Code, diag.CodeRewriteMixedCaseBody)
	}
}

func TestCaseConsistencyForeignClause(t *testing.T) {
	node := ast.NewCaseExpression(nil,
		ast.NewListNode([]ast.Node{intLit(1, ast.Span{Start: 5, Length: 1})}))

	_, err := CaseConsistency().Apply(node)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Code != diag.CodeRewriteMixedCaseBody {
		t.Fatalf("code %v, want %v", verr.Code, diag.CodeRewriteMixedCaseBody)
	}
}

func TestPipelineWrapsPassErrors(t *testing.T) {
	node := ast.NewCaseExpression(nil, ast.NewListNode(nil))
	_, err := Standard().Run(node)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "rewrite: case-consistency:") {
		t.Fatalf("error %q does not name the failing pass", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("wrapped error %v does not unwrap to *ValidationError", err)
	}
}

func TestTransformReachesNestedNodes(t *testing.T) {
	// Rename every identifier inside a method body; everything else in
	// the definition must survive the rebuild.
	body := ast.NewBinaryExpression("+",
		ident("a", ast.Span{Start: 10, Length: 1}),
		ident("b", ast.Span{Start: 14, Length: 1}))
	ast.SetSpan(body, ast.Span{Start: 10, Length: 5})
	def := ast.NewMethodDefinition("add",
		[]ast.Node{ast.NewParameter("a", nil, false), ast.NewParameter("b", nil, false)},
		body)
	ast.SetSpan(def, ast.Span{Start: 0, Length: 20})

	out, err := Transform(def, func(n ast.Node) (ast.Node, error) {
		id, ok := n.(*ast.Identifier)
		if !ok {
			return n, nil
		}
		renamed := ast.NewIdentifier("_" + id.Name)
		ast.SetSpan(renamed, id.Span())
		return renamed, nil
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	rebuilt, ok := out.(*ast.MethodDefinition)
	if !ok || rebuilt == def {
		t.Fatalf("got %T (same=%v), want a rebuilt definition", out, out == ast.Node(def))
	}
	sum := rebuilt.Body.(*ast.BinaryExpression)
	if sum.Left.(*ast.Identifier).Name != "_a" || sum.Right.(*ast.Identifier).Name != "_b" {
		t.Fatalf("body %v, want renamed operands", ast.Sexp(rebuilt.Body))
	}
	if rebuilt.Name != "add" || len(rebuilt.Params) != 2 {
		t.Fatal("definition shell was not preserved")
	}
	if rebuilt.Span() != def.Span() {
		t.Fatalf("span %+v changed during rebuild", rebuilt.Span())
	}
}

func TestTransformCoversCaseElseBody(t *testing.T) {
	// The else branch is not a visitor child, but rewrites still reach it.
	node := validCase()
	node.SetElseBody(ast.NewUnaryExpression("-", intLit(3, ast.Span{Start: 22, Length: 1})))

	out := apply(t, NumericLiteralFold(), node)
	rebuilt, ok := out.(*ast.CaseExpression)
	if !ok || rebuilt == node {
		t.Fatalf("got %T (same=%v), want a rebuilt case", out, out == ast.Node(node))
	}
	folded, ok := rebuilt.ElseBody.(*ast.IntegerLiteral)
	if !ok || folded.Value.Int64() != -3 {
		t.Fatalf("else body is %v, want a folded -3", ast.Sexp(rebuilt.ElseBody))
	}
	if rebuilt.Clauses != node.Clauses {
		t.Fatal("unchanged clause list was not shared")
	}
}
