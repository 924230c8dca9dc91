package ast

// Visitor is the double-dispatch interface with one method per node
// variant. Adding a variant means extending every visitor; the closed
// set trades extensibility for compile-time completeness of walkers.
type Visitor interface {
	VisitListNode(*ListNode) any
	VisitIntegerLiteral(*IntegerLiteral) any
	VisitFloatLiteral(*FloatLiteral) any
	VisitStringLiteral(*StringLiteral) any
	VisitSymbolLiteral(*SymbolLiteral) any
	VisitNilLiteral(*NilLiteral) any
	VisitBooleanLiteral(*BooleanLiteral) any
	VisitSelfExpression(*SelfExpression) any
	VisitArrayLiteral(*ArrayLiteral) any
	VisitHashLiteral(*HashLiteral) any
	VisitHashEntry(*HashEntry) any
	VisitIdentifier(*Identifier) any
	VisitConstant(*Constant) any
	VisitConstantPath(*ConstantPath) any
	VisitInstanceVariable(*InstanceVariable) any
	VisitGlobalVariable(*GlobalVariable) any
	VisitAssignment(*Assignment) any
	VisitOperatorAssignment(*OperatorAssignment) any
	VisitBinaryExpression(*BinaryExpression) any
	VisitUnaryExpression(*UnaryExpression) any
	VisitRangeExpression(*RangeExpression) any
	VisitMethodCall(*MethodCall) any
	VisitIndexExpression(*IndexExpression) any
	VisitIfExpression(*IfExpression) any
	VisitWhileLoop(*WhileLoop) any
	VisitCaseExpression(*CaseExpression) any
	VisitWhenClause(*WhenClause) any
	VisitInClause(*InClause) any
	VisitBeginExpression(*BeginExpression) any
	VisitRescueClause(*RescueClause) any
	VisitMethodDefinition(*MethodDefinition) any
	VisitParameter(*Parameter) any
	VisitClassDefinition(*ClassDefinition) any
	VisitModuleDefinition(*ModuleDefinition) any
	VisitReturnStatement(*ReturnStatement) any
	VisitBreakStatement(*BreakStatement) any
	VisitNextStatement(*NextStatement) any
}

// DefaultVisitor routes every variant through Default, for visitors
// that only care about a handful of node types.
type DefaultVisitor struct {
	Default func(Node) any
}

func (d DefaultVisitor) visit(n Node) any {
	if d.Default == nil {
		return nil
	}
	return d.Default(n)
}

func (d DefaultVisitor) VisitListNode(n *ListNode) any                     { return d.visit(n) }
func (d DefaultVisitor) VisitIntegerLiteral(n *IntegerLiteral) any         { return d.visit(n) }
func (d DefaultVisitor) VisitFloatLiteral(n *FloatLiteral) any             { return d.visit(n) }
func (d DefaultVisitor) VisitStringLiteral(n *StringLiteral) any           { return d.visit(n) }
func (d DefaultVisitor) VisitSymbolLiteral(n *SymbolLiteral) any           { return d.visit(n) }
func (d DefaultVisitor) VisitNilLiteral(n *NilLiteral) any                 { return d.visit(n) }
func (d DefaultVisitor) VisitBooleanLiteral(n *BooleanLiteral) any         { return d.visit(n) }
func (d DefaultVisitor) VisitSelfExpression(n *SelfExpression) any         { return d.visit(n) }
func (d DefaultVisitor) VisitArrayLiteral(n *ArrayLiteral) any             { return d.visit(n) }
func (d DefaultVisitor) VisitHashLiteral(n *HashLiteral) any               { return d.visit(n) }
func (d DefaultVisitor) VisitHashEntry(n *HashEntry) any                   { return d.visit(n) }
func (d DefaultVisitor) VisitIdentifier(n *Identifier) any                 { return d.visit(n) }
func (d DefaultVisitor) VisitConstant(n *Constant) any                     { return d.visit(n) }
func (d DefaultVisitor) VisitConstantPath(n *ConstantPath) any             { return d.visit(n) }
func (d DefaultVisitor) VisitInstanceVariable(n *InstanceVariable) any     { return d.visit(n) }
func (d DefaultVisitor) VisitGlobalVariable(n *GlobalVariable) any         { return d.visit(n) }
func (d DefaultVisitor) VisitAssignment(n *Assignment) any                 { return d.visit(n) }
func (d DefaultVisitor) VisitOperatorAssignment(n *OperatorAssignment) any { return d.visit(n) }
func (d DefaultVisitor) VisitBinaryExpression(n *BinaryExpression) any     { return d.visit(n) }
func (d DefaultVisitor) VisitUnaryExpression(n *UnaryExpression) any       { return d.visit(n) }
func (d DefaultVisitor) VisitRangeExpression(n *RangeExpression) any       { return d.visit(n) }
func (d DefaultVisitor) VisitMethodCall(n *MethodCall) any                 { return d.visit(n) }
func (d DefaultVisitor) VisitIndexExpression(n *IndexExpression) any       { return d.visit(n) }
func (d DefaultVisitor) VisitIfExpression(n *IfExpression) any             { return d.visit(n) }
func (d DefaultVisitor) VisitWhileLoop(n *WhileLoop) any                   { return d.visit(n) }
func (d DefaultVisitor) VisitCaseExpression(n *CaseExpression) any         { return d.visit(n) }
func (d DefaultVisitor) VisitWhenClause(n *WhenClause) any                 { return d.visit(n) }
func (d DefaultVisitor) VisitInClause(n *InClause) any                     { return d.visit(n) }
func (d DefaultVisitor) VisitBeginExpression(n *BeginExpression) any       { return d.visit(n) }
func (d DefaultVisitor) VisitRescueClause(n *RescueClause) any             { return d.visit(n) }
func (d DefaultVisitor) VisitMethodDefinition(n *MethodDefinition) any     { return d.visit(n) }
func (d DefaultVisitor) VisitParameter(n *Parameter) any                   { return d.visit(n) }
func (d DefaultVisitor) VisitClassDefinition(n *ClassDefinition) any       { return d.visit(n) }
func (d DefaultVisitor) VisitModuleDefinition(n *ModuleDefinition) any     { return d.visit(n) }
func (d DefaultVisitor) VisitReturnStatement(n *ReturnStatement) any       { return d.visit(n) }
func (d DefaultVisitor) VisitBreakStatement(n *BreakStatement) any         { return d.visit(n) }
func (d DefaultVisitor) VisitNextStatement(n *NextStatement) any           { return d.visit(n) }

// Walk traverses the tree rooted at node depth first in source order,
// calling fn for every non-nil node. fn returning false prunes the
// subtree. Nil gaps reported by ChildNodes are skipped, not visited.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || isNilNode(node) {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.ChildNodes() {
		Walk(child, fn)
	}
}

// isNilNode guards against typed-nil interface values produced by
// optional child slots.
func isNilNode(node Node) bool {
	switch n := node.(type) {
	case *ListNode:
		return n == nil
	default:
		return false
	}
}
