package ast

// NodeType tags every node variant so consumers can dispatch without
// structural type tests.
type NodeType string

const (
	NodeList               NodeType = "List"
	NodeIntegerLiteral     NodeType = "IntegerLiteral"
	NodeFloatLiteral       NodeType = "FloatLiteral"
	NodeStringLiteral      NodeType = "StringLiteral"
	NodeSymbolLiteral      NodeType = "SymbolLiteral"
	NodeNilLiteral         NodeType = "NilLiteral"
	NodeBooleanLiteral     NodeType = "BooleanLiteral"
	NodeSelfExpression     NodeType = "SelfExpression"
	NodeArrayLiteral       NodeType = "ArrayLiteral"
	NodeHashLiteral        NodeType = "HashLiteral"
	NodeHashEntry          NodeType = "HashEntry"
	NodeIdentifier         NodeType = "Identifier"
	NodeConstant           NodeType = "Constant"
	NodeConstantPath       NodeType = "ConstantPath"
	NodeInstanceVariable   NodeType = "InstanceVariable"
	NodeGlobalVariable     NodeType = "GlobalVariable"
	NodeAssignment         NodeType = "Assignment"
	NodeOperatorAssignment NodeType = "OperatorAssignment"
	NodeBinaryExpression   NodeType = "BinaryExpression"
	NodeUnaryExpression    NodeType = "UnaryExpression"
	NodeRangeExpression    NodeType = "RangeExpression"
	NodeMethodCall         NodeType = "MethodCall"
	NodeIndexExpression    NodeType = "IndexExpression"
	NodeIfExpression       NodeType = "IfExpression"
	NodeWhileLoop          NodeType = "WhileLoop"
	NodeCaseExpression     NodeType = "CaseExpression"
	NodeWhenClause         NodeType = "WhenClause"
	NodeInClause           NodeType = "InClause"
	NodeBeginExpression    NodeType = "BeginExpression"
	NodeRescueClause       NodeType = "RescueClause"
	NodeMethodDefinition   NodeType = "MethodDefinition"
	NodeParameter          NodeType = "Parameter"
	NodeClassDefinition    NodeType = "ClassDefinition"
	NodeModuleDefinition   NodeType = "ModuleDefinition"
	NodeReturnStatement    NodeType = "ReturnStatement"
	NodeBreakStatement     NodeType = "BreakStatement"
	NodeNextStatement      NodeType = "NextStatement"
)

// Span is a half-open byte range over the source buffer the node was
// parsed from. A node's span always contains the union of its
// children's spans.
type Span struct {
	Start  int
	Length int
}

// End returns the exclusive end offset.
func (s Span) End() int { return s.Start + s.Length }

// IsZero reports whether the span carries no position.
func (s Span) IsZero() bool { return s == Span{} }

// Union returns the smallest span containing both s and other. A zero
// span is the identity.
func (s Span) Union(other Span) Span {
	if s.IsZero() {
		return other
	}
	if other.IsZero() {
		return s
	}
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Span{Start: start, Length: end - start}
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End() <= s.End()
}

// Node is the interface every AST variant satisfies. The tree is
// strictly owned: children are set at construction (plus the documented
// one-time attachments) and never re-parented. Once a tree escapes the
// parser it must be treated as immutable.
type Node interface {
	NodeType() NodeType
	Span() Span
	// Accept dispatches to the visitor method for this variant and
	// returns that method's result.
	Accept(v Visitor) any
	// ChildNodes returns the direct children in source order. Optional
	// children that are absent appear as explicit nil slots so generic
	// walkers see a uniform shape.
	ChildNodes() []Node
	isNode()
}

type nodeImpl struct {
	kind NodeType
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl { return nodeImpl{kind: kind} }

func (n nodeImpl) NodeType() NodeType { return n.kind }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(s Span)    { n.span = s }

// SetSpan annotates node with span. It is intended for the parser and
// rewrite passes; spans of nodes already handed to consumers must not
// be changed.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}
