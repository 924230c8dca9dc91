package rewrite

import (
	"fmt"
	"math/big"

	"rubyfront/parser-go/pkg/ast"
	"rubyfront/parser-go/pkg/diag"
)

// NumericLiteralFold collapses unary minus over a numeric literal into
// a negated literal carrying the span of the whole unary expression,
// so `-1` is an IntegerLiteral rather than a UnaryExpression.
func NumericLiteralFold() Pass { return numericLiteralFold{} }

type numericLiteralFold struct{}

func (numericLiteralFold) Name() string { return "numeric-literal-fold" }

func (numericLiteralFold) Apply(root ast.Node) (ast.Node, error) {
	return Transform(root, func(n ast.Node) (ast.Node, error) {
		unary, ok := n.(*ast.UnaryExpression)
		if !ok || unary.Operator != "-" {
			return n, nil
		}
		switch lit := unary.Operand.(type) {
		case *ast.IntegerLiteral:
			folded := ast.NewIntegerLiteral(new(big.Int).Neg(lit.Value))
			ast.SetSpan(folded, unary.Span())
			return folded, nil
		case *ast.FloatLiteral:
			folded := ast.NewFloatLiteral(-lit.Value)
			ast.SetSpan(folded, unary.Span())
			return folded, nil
		}
		return n, nil
	})
}

// OpAssignDesugar rewrites `name op= value` into an assignment of the
// corresponding binary expression, `name = name op value`. Only plain
// name targets desugar; index and attribute targets keep their
// OperatorAssignment form because their receiver expression must not
// be evaluated twice.
func OpAssignDesugar() Pass { return opAssignDesugar{} }

type opAssignDesugar struct{}

func (opAssignDesugar) Name() string { return "op-assign-desugar" }

func (opAssignDesugar) Apply(root ast.Node) (ast.Node, error) {
	return Transform(root, func(n ast.Node) (ast.Node, error) {
		opAsgn, ok := n.(*ast.OperatorAssignment)
		if !ok {
			return n, nil
		}
		read := cloneNameRead(opAsgn.Target)
		if read == nil {
			return n, nil
		}
		operation := ast.NewBinaryExpression(opAsgn.Operator, read, opAsgn.Value)
		ast.SetSpan(operation, read.Span().Union(valueSpan(opAsgn.Value)))
		assignment := ast.NewAssignment(opAsgn.Target, operation)
		ast.SetSpan(assignment, opAsgn.Span())
		return assignment, nil
	})
}

func valueSpan(n ast.Node) ast.Span {
	if n == nil {
		return ast.Span{}
	}
	return n.Span()
}

// cloneNameRead builds a fresh read of a name target, keeping the
// target's span. Non-name targets return nil. A clone is required
// because one node may not appear twice in a tree.
func cloneNameRead(target ast.Node) ast.Node {
	var read ast.Node
	switch t := target.(type) {
	case *ast.Identifier:
		read = ast.NewIdentifier(t.Name)
	case *ast.InstanceVariable:
		read = ast.NewInstanceVariable(t.Name)
	case *ast.GlobalVariable:
		read = ast.NewGlobalVariable(t.Name)
	case *ast.Constant:
		read = ast.NewConstant(t.Name)
	default:
		return nil
	}
	ast.SetSpan(read, target.Span())
	return read
}

// CaseConsistency validates that every case expression has at least one
// clause and does not mix when and in clauses. It never modifies the
// tree.
func CaseConsistency() Pass { return caseConsistency{} }

type caseConsistency struct{}

func (caseConsistency) Name() string { return "case-consistency" }

func (caseConsistency) Apply(root ast.Node) (ast.Node, error) {
	var failure error
	ast.Walk(root, func(n ast.Node) bool {
		caseNode, ok := n.(*ast.CaseExpression)
		if !ok {
			return true
		}
		if err := checkCase(caseNode); err != nil {
			failure = err
			return false
		}
		return true
	})
	if failure != nil {
		return nil, failure
	}
	return root, nil
}

func checkCase(n *ast.CaseExpression) error {
	var clauses []ast.Node
	if n.Clauses != nil {
		clauses = n.Clauses.Elements
	}
	if len(clauses) == 0 {
		return &ValidationError{
			Code:    diag.CodeRewriteEmptyCaseBody,
			Message: "case expression has no when or in clauses",
			Span:    n.Span(),
		}
	}
	first := clauses[0].NodeType()
	for _, clause := range clauses {
		kind := clause.NodeType()
		if kind != ast.NodeWhenClause && kind != ast.NodeInClause {
			return &ValidationError{
				Code:    diag.CodeRewriteMixedCaseBody,
				Message: fmt.Sprintf("case clause list contains %s node", kind),
				Span:    clause.Span(),
			}
		}
		if kind != first {
			return &ValidationError{
				Code:    diag.CodeRewriteMixedCaseBody,
				Message: "case expression mixes when and in clauses",
				Span:    clause.Span(),
			}
		}
	}
	return nil
}
