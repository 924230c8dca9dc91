package ast

import (
	"fmt"
	"strings"
)

// SexpPrinter renders a tree as S-expressions, mainly for CLI output
// and golden assertions. It is a Visitor, so it doubles as the
// exhaustiveness check for the dispatch surface.
type SexpPrinter struct{}

// Sexp renders node; nil renders as "nil".
func Sexp(node Node) string {
	if node == nil {
		return "nil"
	}
	return node.Accept(SexpPrinter{}).(string)
}

func sexpList(head string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + head + ")"
	}
	return "(" + head + " " + strings.Join(parts, " ") + ")"
}

func sexpNodes(nodes []Node) []string {
	rendered := make([]string, len(nodes))
	for i, n := range nodes {
		rendered[i] = Sexp(n)
	}
	return rendered
}

func (p SexpPrinter) VisitListNode(n *ListNode) any {
	return sexpList("list", sexpNodes(n.Elements)...)
}

func (p SexpPrinter) VisitIntegerLiteral(n *IntegerLiteral) any {
	return sexpList("int", n.Value.String())
}

func (p SexpPrinter) VisitFloatLiteral(n *FloatLiteral) any {
	return sexpList("float", fmt.Sprintf("%g", n.Value))
}

func (p SexpPrinter) VisitStringLiteral(n *StringLiteral) any {
	return sexpList("str", fmt.Sprintf("%q", n.Value))
}

func (p SexpPrinter) VisitSymbolLiteral(n *SymbolLiteral) any {
	return sexpList("sym", n.Name)
}

func (p SexpPrinter) VisitNilLiteral(*NilLiteral) any { return "(nil)" }

func (p SexpPrinter) VisitBooleanLiteral(n *BooleanLiteral) any {
	return sexpList("bool", fmt.Sprintf("%t", n.Value))
}

func (p SexpPrinter) VisitSelfExpression(*SelfExpression) any { return "(self)" }

func (p SexpPrinter) VisitArrayLiteral(n *ArrayLiteral) any {
	return sexpList("array", sexpNodes(n.Elements)...)
}

func (p SexpPrinter) VisitHashLiteral(n *HashLiteral) any {
	return sexpList("hash", sexpNodes(n.Entries)...)
}

func (p SexpPrinter) VisitHashEntry(n *HashEntry) any {
	return sexpList("pair", Sexp(n.Key), Sexp(n.Value))
}

func (p SexpPrinter) VisitIdentifier(n *Identifier) any { return sexpList("lvar", n.Name) }
func (p SexpPrinter) VisitConstant(n *Constant) any     { return sexpList("const", n.Name) }

func (p SexpPrinter) VisitConstantPath(n *ConstantPath) any {
	return sexpList("cpath", Sexp(n.Scope), n.Name)
}

func (p SexpPrinter) VisitInstanceVariable(n *InstanceVariable) any {
	return sexpList("ivar", n.Name)
}

func (p SexpPrinter) VisitGlobalVariable(n *GlobalVariable) any {
	return sexpList("gvar", n.Name)
}

func (p SexpPrinter) VisitAssignment(n *Assignment) any {
	return sexpList("asgn", Sexp(n.Target), Sexp(n.Value))
}

func (p SexpPrinter) VisitOperatorAssignment(n *OperatorAssignment) any {
	return sexpList("op-asgn", Sexp(n.Target), n.Operator, Sexp(n.Value))
}

func (p SexpPrinter) VisitBinaryExpression(n *BinaryExpression) any {
	return sexpList(n.Operator, Sexp(n.Left), Sexp(n.Right))
}

func (p SexpPrinter) VisitUnaryExpression(n *UnaryExpression) any {
	return sexpList(n.Operator+"@", Sexp(n.Operand))
}

func (p SexpPrinter) VisitRangeExpression(n *RangeExpression) any {
	head := "irange"
	if n.Exclusive {
		head = "erange"
	}
	return sexpList(head, Sexp(n.Begin), Sexp(n.End))
}

func (p SexpPrinter) VisitMethodCall(n *MethodCall) any {
	parts := []string{Sexp(n.Receiver), n.Name}
	parts = append(parts, sexpNodes(n.Args)...)
	return sexpList("send", parts...)
}

func (p SexpPrinter) VisitIndexExpression(n *IndexExpression) any {
	parts := []string{Sexp(n.Receiver)}
	parts = append(parts, sexpNodes(n.Args)...)
	return sexpList("index", parts...)
}

func (p SexpPrinter) VisitIfExpression(n *IfExpression) any {
	return sexpList("if", Sexp(n.Condition), Sexp(n.Then), Sexp(n.Else))
}

func (p SexpPrinter) VisitWhileLoop(n *WhileLoop) any {
	head := "while"
	if n.Until {
		head = "until"
	}
	return sexpList(head, Sexp(n.Condition), Sexp(n.Body))
}

func (p SexpPrinter) VisitCaseExpression(n *CaseExpression) any {
	return sexpList("case", Sexp(n.Subject), Sexp(n.Clauses), Sexp(n.ElseBody))
}

func (p SexpPrinter) VisitWhenClause(n *WhenClause) any {
	parts := sexpNodes(n.Values)
	parts = append(parts, Sexp(n.Body))
	return sexpList("when", parts...)
}

func (p SexpPrinter) VisitInClause(n *InClause) any {
	return sexpList("in", Sexp(n.Pattern), Sexp(n.Body))
}

func (p SexpPrinter) VisitBeginExpression(n *BeginExpression) any {
	parts := []string{Sexp(n.Body)}
	parts = append(parts, sexpNodes(n.Rescues)...)
	parts = append(parts, Sexp(n.ElseBody), Sexp(n.EnsureBody))
	return sexpList("begin", parts...)
}

func (p SexpPrinter) VisitRescueClause(n *RescueClause) any {
	parts := sexpNodes(n.Classes)
	parts = append(parts, Sexp(n.Target), Sexp(n.Body))
	return sexpList("rescue", parts...)
}

func (p SexpPrinter) VisitMethodDefinition(n *MethodDefinition) any {
	parts := []string{n.Name}
	parts = append(parts, sexpNodes(n.Params)...)
	parts = append(parts, Sexp(n.Body))
	return sexpList("def", parts...)
}

func (p SexpPrinter) VisitParameter(n *Parameter) any {
	head := "arg"
	if n.Rest {
		head = "restarg"
	}
	if n.Default != nil {
		return sexpList("optarg", n.Name, Sexp(n.Default))
	}
	return sexpList(head, n.Name)
}

func (p SexpPrinter) VisitClassDefinition(n *ClassDefinition) any {
	return sexpList("class", Sexp(n.Name), Sexp(n.Superclass), Sexp(n.Body))
}

func (p SexpPrinter) VisitModuleDefinition(n *ModuleDefinition) any {
	return sexpList("module", Sexp(n.Name), Sexp(n.Body))
}

func (p SexpPrinter) VisitReturnStatement(n *ReturnStatement) any {
	return sexpList("return", Sexp(n.Value))
}

func (p SexpPrinter) VisitBreakStatement(n *BreakStatement) any {
	return sexpList("break", Sexp(n.Value))
}

func (p SexpPrinter) VisitNextStatement(n *NextStatement) any {
	return sexpList("next", Sexp(n.Value))
}
