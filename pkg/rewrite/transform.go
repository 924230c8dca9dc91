package rewrite

import (
	"fmt"

	"rubyfront/parser-go/pkg/ast"
)

// Transform rebuilds a tree bottom-up, calling post on each node after
// its children have been transformed. When no child changed, the
// original node is returned as-is, so untouched subtrees are shared
// between input and output. Replacement nodes keep the span of the node
// they replace unless post sets one itself.
func Transform(node ast.Node, post func(ast.Node) (ast.Node, error)) (ast.Node, error) {
	if isNil(node) {
		return nil, nil
	}
	rebuilt, err := rebuildChildren(node, post)
	if err != nil {
		return nil, err
	}
	return post(rebuilt)
}

// isNil also catches typed nil pointers hiding in interface values.
func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *ast.ListNode:
		return v == nil
	}
	return false
}

func transformSlice(nodes []ast.Node, post func(ast.Node) (ast.Node, error)) ([]ast.Node, bool, error) {
	var out []ast.Node
	changed := false
	for i, n := range nodes {
		next, err := Transform(n, post)
		if err != nil {
			return nil, false, err
		}
		if next != n {
			if out == nil {
				out = make([]ast.Node, len(nodes))
				copy(out, nodes)
			}
			out[i] = next
			changed = true
		}
	}
	if !changed {
		return nodes, false, nil
	}
	return out, true, nil
}

// rebuildChildren returns node with transformed children, or node
// itself when nothing underneath changed.
func rebuildChildren(node ast.Node, post func(ast.Node) (ast.Node, error)) (ast.Node, error) {
	t := func(child ast.Node) (ast.Node, error) { return Transform(child, post) }

	keepSpan := func(fresh ast.Node) ast.Node {
		ast.SetSpan(fresh, node.Span())
		return fresh
	}

	switch n := node.(type) {
	case *ast.ListNode:
		elements, changed, err := transformSlice(n.Elements, post)
		if err != nil {
			return nil, err
		}
		if !changed {
			return n, nil
		}
		return keepSpan(ast.NewListNode(elements)), nil

	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral,
		*ast.SymbolLiteral, *ast.NilLiteral, *ast.BooleanLiteral,
		*ast.SelfExpression, *ast.Identifier, *ast.Constant,
		*ast.InstanceVariable, *ast.GlobalVariable:
		return node, nil

	case *ast.ArrayLiteral:
		elements, changed, err := transformSlice(n.Elements, post)
		if err != nil {
			return nil, err
		}
		if !changed {
			return n, nil
		}
		return keepSpan(ast.NewArrayLiteral(elements)), nil

	case *ast.HashLiteral:
		entries, changed, err := transformSlice(n.Entries, post)
		if err != nil {
			return nil, err
		}
		if !changed {
			return n, nil
		}
		return keepSpan(ast.NewHashLiteral(entries)), nil

	case *ast.HashEntry:
		key, err := t(n.Key)
		if err != nil {
			return nil, err
		}
		value, err := t(n.Value)
		if err != nil {
			return nil, err
		}
		if key == n.Key && value == n.Value {
			return n, nil
		}
		return keepSpan(ast.NewHashEntry(key, value)), nil

	case *ast.ConstantPath:
		scope, err := t(n.Scope)
		if err != nil {
			return nil, err
		}
		if scope == n.Scope {
			return n, nil
		}
		return keepSpan(ast.NewConstantPath(scope, n.Name)), nil

	case *ast.Assignment:
		target, err := t(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := t(n.Value)
		if err != nil {
			return nil, err
		}
		if target == n.Target && value == n.Value {
			return n, nil
		}
		return keepSpan(ast.NewAssignment(target, value)), nil

	case *ast.OperatorAssignment:
		target, err := t(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := t(n.Value)
		if err != nil {
			return nil, err
		}
		if target == n.Target && value == n.Value {
			return n, nil
		}
		return keepSpan(ast.NewOperatorAssignment(target, n.Operator, value)), nil

	case *ast.BinaryExpression:
		left, err := t(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := t(n.Right)
		if err != nil {
			return nil, err
		}
		if left == n.Left && right == n.Right {
			return n, nil
		}
		return keepSpan(ast.NewBinaryExpression(n.Operator, left, right)), nil

	case *ast.UnaryExpression:
		operand, err := t(n.Operand)
		if err != nil {
			return nil, err
		}
		if operand == n.Operand {
			return n, nil
		}
		return keepSpan(ast.NewUnaryExpression(n.Operator, operand)), nil

	case *ast.RangeExpression:
		begin, err := t(n.Begin)
		if err != nil {
			return nil, err
		}
		end, err := t(n.End)
		if err != nil {
			return nil, err
		}
		if begin == n.Begin && end == n.End {
			return n, nil
		}
		return keepSpan(ast.NewRangeExpression(begin, end, n.Exclusive)), nil

	case *ast.MethodCall:
		receiver, err := t(n.Receiver)
		if err != nil {
			return nil, err
		}
		args, changed, err := transformSlice(n.Args, post)
		if err != nil {
			return nil, err
		}
		if receiver == n.Receiver && !changed {
			return n, nil
		}
		return keepSpan(ast.NewMethodCall(receiver, n.Name, args)), nil

	case *ast.IndexExpression:
		receiver, err := t(n.Receiver)
		if err != nil {
			return nil, err
		}
		args, changed, err := transformSlice(n.Args, post)
		if err != nil {
			return nil, err
		}
		if receiver == n.Receiver && !changed {
			return n, nil
		}
		return keepSpan(ast.NewIndexExpression(receiver, args)), nil

	case *ast.IfExpression:
		condition, err := t(n.Condition)
		if err != nil {
			return nil, err
		}
		thenBody, err := t(n.Then)
		if err != nil {
			return nil, err
		}
		elseBody, err := t(n.Else)
		if err != nil {
			return nil, err
		}
		if condition == n.Condition && thenBody == n.Then && elseBody == n.Else {
			return n, nil
		}
		return keepSpan(ast.NewIfExpression(condition, thenBody, elseBody)), nil

	case *ast.WhileLoop:
		condition, err := t(n.Condition)
		if err != nil {
			return nil, err
		}
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		if condition == n.Condition && body == n.Body {
			return n, nil
		}
		return keepSpan(ast.NewWhileLoop(condition, body, n.Until)), nil

	case *ast.CaseExpression:
		subject, err := t(n.Subject)
		if err != nil {
			return nil, err
		}
		clauses, err := t(n.Clauses)
		if err != nil {
			return nil, err
		}
		elseBody, err := t(n.ElseBody)
		if err != nil {
			return nil, err
		}
		if subject == n.Subject && clauses == ast.Node(n.Clauses) && elseBody == n.ElseBody {
			return n, nil
		}
		clauseList, ok := clauses.(*ast.ListNode)
		if !ok {
			return nil, fmt.Errorf("case clause list rewritten to %T", clauses)
		}
		fresh := ast.NewCaseExpression(subject, clauseList)
		fresh.SetElseBody(elseBody)
		return keepSpan(fresh), nil

	case *ast.WhenClause:
		values, changed, err := transformSlice(n.Values, post)
		if err != nil {
			return nil, err
		}
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		if !changed && body == n.Body {
			return n, nil
		}
		return keepSpan(ast.NewWhenClause(values, body)), nil

	case *ast.InClause:
		pattern, err := t(n.Pattern)
		if err != nil {
			return nil, err
		}
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		if pattern == n.Pattern && body == n.Body {
			return n, nil
		}
		return keepSpan(ast.NewInClause(pattern, body)), nil

	case *ast.BeginExpression:
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		rescues, changed, err := transformSlice(n.Rescues, post)
		if err != nil {
			return nil, err
		}
		elseBody, err := t(n.ElseBody)
		if err != nil {
			return nil, err
		}
		ensureBody, err := t(n.EnsureBody)
		if err != nil {
			return nil, err
		}
		if body == n.Body && !changed && elseBody == n.ElseBody && ensureBody == n.EnsureBody {
			return n, nil
		}
		return keepSpan(ast.NewBeginExpression(body, rescues, elseBody, ensureBody)), nil

	case *ast.RescueClause:
		classes, changed, err := transformSlice(n.Classes, post)
		if err != nil {
			return nil, err
		}
		target, err := t(n.Target)
		if err != nil {
			return nil, err
		}
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		if !changed && target == n.Target && body == n.Body {
			return n, nil
		}
		return keepSpan(ast.NewRescueClause(classes, target, body)), nil

	case *ast.MethodDefinition:
		params, changed, err := transformSlice(n.Params, post)
		if err != nil {
			return nil, err
		}
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		if !changed && body == n.Body {
			return n, nil
		}
		return keepSpan(ast.NewMethodDefinition(n.Name, params, body)), nil

	case *ast.Parameter:
		def, err := t(n.Default)
		if err != nil {
			return nil, err
		}
		if def == n.Default {
			return n, nil
		}
		return keepSpan(ast.NewParameter(n.Name, def, n.Rest)), nil

	case *ast.ClassDefinition:
		name, err := t(n.Name)
		if err != nil {
			return nil, err
		}
		superclass, err := t(n.Superclass)
		if err != nil {
			return nil, err
		}
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		if name == n.Name && superclass == n.Superclass && body == n.Body {
			return n, nil
		}
		return keepSpan(ast.NewClassDefinition(name, superclass, body)), nil

	case *ast.ModuleDefinition:
		name, err := t(n.Name)
		if err != nil {
			return nil, err
		}
		body, err := t(n.Body)
		if err != nil {
			return nil, err
		}
		if name == n.Name && body == n.Body {
			return n, nil
		}
		return keepSpan(ast.NewModuleDefinition(name, body)), nil

	case *ast.ReturnStatement:
		value, err := t(n.Value)
		if err != nil {
			return nil, err
		}
		if value == n.Value {
			return n, nil
		}
		return keepSpan(ast.NewReturnStatement(value)), nil

	case *ast.BreakStatement:
		value, err := t(n.Value)
		if err != nil {
			return nil, err
		}
		if value == n.Value {
			return n, nil
		}
		return keepSpan(ast.NewBreakStatement(value)), nil

	case *ast.NextStatement:
		value, err := t(n.Value)
		if err != nil {
			return nil, err
		}
		if value == n.Value {
			return n, nil
		}
		return keepSpan(ast.NewNextStatement(value)), nil
	}

	return nil, fmt.Errorf("unhandled node type %s", node.NodeType())
}
