package ast

import "math/big"

// ListNode is an ordered sequence of nodes: statement bodies, case
// clause lists, parameter lists. An empty list is a valid node.
type ListNode struct {
	nodeImpl
	Elements []Node
}

func NewListNode(elements []Node) *ListNode {
	return &ListNode{nodeImpl: newNodeImpl(NodeList), Elements: elements}
}

// Append adds an element during construction.
func (n *ListNode) Append(element Node) { n.Elements = append(n.Elements, element) }

func (n *ListNode) Accept(v Visitor) any { return v.VisitListNode(n) }
func (n *ListNode) ChildNodes() []Node   { return n.Elements }

// IntegerLiteral carries an arbitrary-precision value; Ruby integers
// overflow into bignums transparently.
type IntegerLiteral struct {
	nodeImpl
	Value *big.Int
}

func NewIntegerLiteral(value *big.Int) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

func (n *IntegerLiteral) Accept(v Visitor) any { return v.VisitIntegerLiteral(n) }
func (n *IntegerLiteral) ChildNodes() []Node   { return nil }

type FloatLiteral struct {
	nodeImpl
	Value float64
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

func (n *FloatLiteral) Accept(v Visitor) any { return v.VisitFloatLiteral(n) }
func (n *FloatLiteral) ChildNodes() []Node   { return nil }

type StringLiteral struct {
	nodeImpl
	Value string
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

func (n *StringLiteral) Accept(v Visitor) any { return v.VisitStringLiteral(n) }
func (n *StringLiteral) ChildNodes() []Node   { return nil }

type SymbolLiteral struct {
	nodeImpl
	Name string
}

func NewSymbolLiteral(name string) *SymbolLiteral {
	return &SymbolLiteral{nodeImpl: newNodeImpl(NodeSymbolLiteral), Name: name}
}

func (n *SymbolLiteral) Accept(v Visitor) any { return v.VisitSymbolLiteral(n) }
func (n *SymbolLiteral) ChildNodes() []Node   { return nil }

type NilLiteral struct {
	nodeImpl
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

func (n *NilLiteral) Accept(v Visitor) any { return v.VisitNilLiteral(n) }
func (n *NilLiteral) ChildNodes() []Node   { return nil }

type BooleanLiteral struct {
	nodeImpl
	Value bool
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

func (n *BooleanLiteral) Accept(v Visitor) any { return v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) ChildNodes() []Node   { return nil }

type SelfExpression struct {
	nodeImpl
}

func NewSelfExpression() *SelfExpression {
	return &SelfExpression{nodeImpl: newNodeImpl(NodeSelfExpression)}
}

func (n *SelfExpression) Accept(v Visitor) any { return v.VisitSelfExpression(n) }
func (n *SelfExpression) ChildNodes() []Node   { return nil }

type ArrayLiteral struct {
	nodeImpl
	Elements []Node
}

func NewArrayLiteral(elements []Node) *ArrayLiteral {
	return &ArrayLiteral{nodeImpl: newNodeImpl(NodeArrayLiteral), Elements: elements}
}

func (n *ArrayLiteral) Accept(v Visitor) any { return v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) ChildNodes() []Node   { return n.Elements }

// HashEntry is one key/value pair. Label keys (`a: 1`) are represented
// as symbol-literal keys, matching their runtime meaning.
type HashEntry struct {
	nodeImpl
	Key   Node
	Value Node
}

func NewHashEntry(key, value Node) *HashEntry {
	return &HashEntry{nodeImpl: newNodeImpl(NodeHashEntry), Key: key, Value: value}
}

func (n *HashEntry) Accept(v Visitor) any { return v.VisitHashEntry(n) }
func (n *HashEntry) ChildNodes() []Node   { return []Node{n.Key, n.Value} }

type HashLiteral struct {
	nodeImpl
	Entries []Node
}

func NewHashLiteral(entries []Node) *HashLiteral {
	return &HashLiteral{nodeImpl: newNodeImpl(NodeHashLiteral), Entries: entries}
}

func (n *HashLiteral) Accept(v Visitor) any { return v.VisitHashLiteral(n) }
func (n *HashLiteral) ChildNodes() []Node   { return n.Entries }

type Identifier struct {
	nodeImpl
	Name string
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

func (n *Identifier) Accept(v Visitor) any { return v.VisitIdentifier(n) }
func (n *Identifier) ChildNodes() []Node   { return nil }

type Constant struct {
	nodeImpl
	Name string
}

func NewConstant(name string) *Constant {
	return &Constant{nodeImpl: newNodeImpl(NodeConstant), Name: name}
}

func (n *Constant) Accept(v Visitor) any { return v.VisitConstant(n) }
func (n *Constant) ChildNodes() []Node   { return nil }

// ConstantPath is a scoped constant reference, `Scope::Name`.
type ConstantPath struct {
	nodeImpl
	Scope Node
	Name  string
}

func NewConstantPath(scope Node, name string) *ConstantPath {
	return &ConstantPath{nodeImpl: newNodeImpl(NodeConstantPath), Scope: scope, Name: name}
}

func (n *ConstantPath) Accept(v Visitor) any { return v.VisitConstantPath(n) }
func (n *ConstantPath) ChildNodes() []Node   { return []Node{n.Scope} }

type InstanceVariable struct {
	nodeImpl
	Name string
}

func NewInstanceVariable(name string) *InstanceVariable {
	return &InstanceVariable{nodeImpl: newNodeImpl(NodeInstanceVariable), Name: name}
}

func (n *InstanceVariable) Accept(v Visitor) any { return v.VisitInstanceVariable(n) }
func (n *InstanceVariable) ChildNodes() []Node   { return nil }

type GlobalVariable struct {
	nodeImpl
	Name string
}

func NewGlobalVariable(name string) *GlobalVariable {
	return &GlobalVariable{nodeImpl: newNodeImpl(NodeGlobalVariable), Name: name}
}

func (n *GlobalVariable) Accept(v Visitor) any { return v.VisitGlobalVariable(n) }
func (n *GlobalVariable) ChildNodes() []Node   { return nil }

// Assignment writes Value into Target. Targets are names, index
// expressions or attribute calls.
type Assignment struct {
	nodeImpl
	Target Node
	Value  Node
}

func NewAssignment(target, value Node) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Target: target, Value: value}
}

func (n *Assignment) Accept(v Visitor) any { return v.VisitAssignment(n) }
func (n *Assignment) ChildNodes() []Node   { return []Node{n.Target, n.Value} }

// OperatorAssignment is the surface form `target op= value`. The
// desugaring rewrite replaces it before trees reach consumers, so
// downstream passes normally never see this variant.
type OperatorAssignment struct {
	nodeImpl
	Target   Node
	Operator string
	Value    Node
}

func NewOperatorAssignment(target Node, operator string, value Node) *OperatorAssignment {
	return &OperatorAssignment{
		nodeImpl: newNodeImpl(NodeOperatorAssignment),
		Target:   target,
		Operator: operator,
		Value:    value,
	}
}

func (n *OperatorAssignment) Accept(v Visitor) any { return v.VisitOperatorAssignment(n) }
func (n *OperatorAssignment) ChildNodes() []Node   { return []Node{n.Target, n.Value} }

type BinaryExpression struct {
	nodeImpl
	Operator string
	Left     Node
	Right    Node
}

func NewBinaryExpression(operator string, left, right Node) *BinaryExpression {
	return &BinaryExpression{
		nodeImpl: newNodeImpl(NodeBinaryExpression),
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

func (n *BinaryExpression) Accept(v Visitor) any { return v.VisitBinaryExpression(n) }
func (n *BinaryExpression) ChildNodes() []Node   { return []Node{n.Left, n.Right} }

type UnaryExpression struct {
	nodeImpl
	Operator string
	Operand  Node
}

func NewUnaryExpression(operator string, operand Node) *UnaryExpression {
	return &UnaryExpression{
		nodeImpl: newNodeImpl(NodeUnaryExpression),
		Operator: operator,
		Operand:  operand,
	}
}

func (n *UnaryExpression) Accept(v Visitor) any { return v.VisitUnaryExpression(n) }
func (n *UnaryExpression) ChildNodes() []Node   { return []Node{n.Operand} }

type RangeExpression struct {
	nodeImpl
	Begin     Node
	End       Node
	Exclusive bool
}

func NewRangeExpression(begin, end Node, exclusive bool) *RangeExpression {
	return &RangeExpression{
		nodeImpl:  newNodeImpl(NodeRangeExpression),
		Begin:     begin,
		End:       end,
		Exclusive: exclusive,
	}
}

func (n *RangeExpression) Accept(v Visitor) any { return v.VisitRangeExpression(n) }
func (n *RangeExpression) ChildNodes() []Node   { return []Node{n.Begin, n.End} }

// MethodCall covers receiverless calls (`f(x)`) and dotted calls
// (`a.b`, `a.b(x)`). A nil Receiver means self.
type MethodCall struct {
	nodeImpl
	Receiver Node
	Name     string
	Args     []Node
}

func NewMethodCall(receiver Node, name string, args []Node) *MethodCall {
	return &MethodCall{
		nodeImpl: newNodeImpl(NodeMethodCall),
		Receiver: receiver,
		Name:     name,
		Args:     args,
	}
}

func (n *MethodCall) Accept(v Visitor) any { return v.VisitMethodCall(n) }
func (n *MethodCall) ChildNodes() []Node {
	children := make([]Node, 0, len(n.Args)+1)
	children = append(children, n.Receiver)
	children = append(children, n.Args...)
	return children
}

type IndexExpression struct {
	nodeImpl
	Receiver Node
	Args     []Node
}

func NewIndexExpression(receiver Node, args []Node) *IndexExpression {
	return &IndexExpression{
		nodeImpl: newNodeImpl(NodeIndexExpression),
		Receiver: receiver,
		Args:     args,
	}
}

func (n *IndexExpression) Accept(v Visitor) any { return v.VisitIndexExpression(n) }
func (n *IndexExpression) ChildNodes() []Node {
	children := make([]Node, 0, len(n.Args)+1)
	children = append(children, n.Receiver)
	children = append(children, n.Args...)
	return children
}

// IfExpression covers if/elsif/else chains, unless (with swapped
// branches) and the modifier forms. Else is nil when absent; an elsif
// chain hangs another IfExpression off Else.
type IfExpression struct {
	nodeImpl
	Condition Node
	Then      Node
	Else      Node
}

func NewIfExpression(condition, thenBody, elseBody Node) *IfExpression {
	return &IfExpression{
		nodeImpl:  newNodeImpl(NodeIfExpression),
		Condition: condition,
		Then:      thenBody,
		Else:      elseBody,
	}
}

func (n *IfExpression) Accept(v Visitor) any { return v.VisitIfExpression(n) }
func (n *IfExpression) ChildNodes() []Node   { return []Node{n.Condition, n.Then, n.Else} }

type WhileLoop struct {
	nodeImpl
	Condition Node
	Body      Node
	Until     bool
}

func NewWhileLoop(condition, body Node, until bool) *WhileLoop {
	return &WhileLoop{
		nodeImpl:  newNodeImpl(NodeWhileLoop),
		Condition: condition,
		Body:      body,
		Until:     until,
	}
}

func (n *WhileLoop) Accept(v Visitor) any { return v.VisitWhileLoop(n) }
func (n *WhileLoop) ChildNodes() []Node   { return []Node{n.Condition, n.Body} }

// CaseExpression is the shape exemplar for the hierarchy. Subject is
// nil for a bodyless `case` head, which is intentional and not an
// error. Clauses is never nil at parse time; the grammar guarantees at
// least one when/in clause. The else branch is attached after
// construction by the single owning reduction via SetElseBody.
type CaseExpression struct {
	nodeImpl
	Subject  Node
	Clauses  *ListNode
	ElseBody Node
}

func NewCaseExpression(subject Node, clauses *ListNode) *CaseExpression {
	return &CaseExpression{
		nodeImpl: newNodeImpl(NodeCaseExpression),
		Subject:  subject,
		Clauses:  clauses,
	}
}

// SetElseBody attaches the else branch. It is only valid before the
// node is handed to any consumer; the parser is the sole caller and
// calls it at most once. This is caller discipline, not a runtime
// checked invariant.
func (n *CaseExpression) SetElseBody(elseBody Node) { n.ElseBody = elseBody }

func (n *CaseExpression) Accept(v Visitor) any { return v.VisitCaseExpression(n) }

// ChildNodes preserves the subject slot even when nil so walkers can
// rely on a fixed shape: [subject, clauses].
func (n *CaseExpression) ChildNodes() []Node { return []Node{n.Subject, n.Clauses} }

type WhenClause struct {
	nodeImpl
	Values []Node
	Body   Node
}

func NewWhenClause(values []Node, body Node) *WhenClause {
	return &WhenClause{nodeImpl: newNodeImpl(NodeWhenClause), Values: values, Body: body}
}

func (n *WhenClause) Accept(v Visitor) any { return v.VisitWhenClause(n) }
func (n *WhenClause) ChildNodes() []Node {
	children := make([]Node, 0, len(n.Values)+1)
	children = append(children, n.Values...)
	children = append(children, n.Body)
	return children
}

type InClause struct {
	nodeImpl
	Pattern Node
	Body    Node
}

func NewInClause(pattern, body Node) *InClause {
	return &InClause{nodeImpl: newNodeImpl(NodeInClause), Pattern: pattern, Body: body}
}

func (n *InClause) Accept(v Visitor) any { return v.VisitInClause(n) }
func (n *InClause) ChildNodes() []Node   { return []Node{n.Pattern, n.Body} }

// BeginExpression is a begin/rescue/else/ensure unit. Rescues may be
// empty; ElseBody and EnsureBody are nil when absent.
type BeginExpression struct {
	nodeImpl
	Body       Node
	Rescues    []Node
	ElseBody   Node
	EnsureBody Node
}

func NewBeginExpression(body Node, rescues []Node, elseBody, ensureBody Node) *BeginExpression {
	return &BeginExpression{
		nodeImpl:   newNodeImpl(NodeBeginExpression),
		Body:       body,
		Rescues:    rescues,
		ElseBody:   elseBody,
		EnsureBody: ensureBody,
	}
}

func (n *BeginExpression) Accept(v Visitor) any { return v.VisitBeginExpression(n) }
func (n *BeginExpression) ChildNodes() []Node {
	children := make([]Node, 0, len(n.Rescues)+3)
	children = append(children, n.Body)
	children = append(children, n.Rescues...)
	children = append(children, n.ElseBody, n.EnsureBody)
	return children
}

type RescueClause struct {
	nodeImpl
	Classes []Node
	Target  Node
	Body    Node
}

func NewRescueClause(classes []Node, target, body Node) *RescueClause {
	return &RescueClause{
		nodeImpl: newNodeImpl(NodeRescueClause),
		Classes:  classes,
		Target:   target,
		Body:     body,
	}
}

func (n *RescueClause) Accept(v Visitor) any { return v.VisitRescueClause(n) }
func (n *RescueClause) ChildNodes() []Node {
	children := make([]Node, 0, len(n.Classes)+2)
	children = append(children, n.Classes...)
	children = append(children, n.Target, n.Body)
	return children
}

type MethodDefinition struct {
	nodeImpl
	Name   string
	Params []Node
	Body   Node
}

func NewMethodDefinition(name string, params []Node, body Node) *MethodDefinition {
	return &MethodDefinition{
		nodeImpl: newNodeImpl(NodeMethodDefinition),
		Name:     name,
		Params:   params,
		Body:     body,
	}
}

func (n *MethodDefinition) Accept(v Visitor) any { return v.VisitMethodDefinition(n) }
func (n *MethodDefinition) ChildNodes() []Node {
	children := make([]Node, 0, len(n.Params)+1)
	children = append(children, n.Params...)
	children = append(children, n.Body)
	return children
}

// Parameter is one formal parameter: required, optional (with a
// default) or a rest parameter.
type Parameter struct {
	nodeImpl
	Name    string
	Default Node
	Rest    bool
}

func NewParameter(name string, defaultValue Node, rest bool) *Parameter {
	return &Parameter{
		nodeImpl: newNodeImpl(NodeParameter),
		Name:     name,
		Default:  defaultValue,
		Rest:     rest,
	}
}

func (n *Parameter) Accept(v Visitor) any { return v.VisitParameter(n) }
func (n *Parameter) ChildNodes() []Node   { return []Node{n.Default} }

type ClassDefinition struct {
	nodeImpl
	Name       Node
	Superclass Node
	Body       Node
}

func NewClassDefinition(name, superclass, body Node) *ClassDefinition {
	return &ClassDefinition{
		nodeImpl:   newNodeImpl(NodeClassDefinition),
		Name:       name,
		Superclass: superclass,
		Body:       body,
	}
}

func (n *ClassDefinition) Accept(v Visitor) any { return v.VisitClassDefinition(n) }
func (n *ClassDefinition) ChildNodes() []Node {
	return []Node{n.Name, n.Superclass, n.Body}
}

type ModuleDefinition struct {
	nodeImpl
	Name Node
	Body Node
}

func NewModuleDefinition(name, body Node) *ModuleDefinition {
	return &ModuleDefinition{
		nodeImpl: newNodeImpl(NodeModuleDefinition),
		Name:     name,
		Body:     body,
	}
}

func (n *ModuleDefinition) Accept(v Visitor) any { return v.VisitModuleDefinition(n) }
func (n *ModuleDefinition) ChildNodes() []Node   { return []Node{n.Name, n.Body} }

type ReturnStatement struct {
	nodeImpl
	Value Node
}

func NewReturnStatement(value Node) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

func (n *ReturnStatement) Accept(v Visitor) any { return v.VisitReturnStatement(n) }
func (n *ReturnStatement) ChildNodes() []Node   { return []Node{n.Value} }

type BreakStatement struct {
	nodeImpl
	Value Node
}

func NewBreakStatement(value Node) *BreakStatement {
	return &BreakStatement{nodeImpl: newNodeImpl(NodeBreakStatement), Value: value}
}

func (n *BreakStatement) Accept(v Visitor) any { return v.VisitBreakStatement(n) }
func (n *BreakStatement) ChildNodes() []Node   { return []Node{n.Value} }

type NextStatement struct {
	nodeImpl
	Value Node
}

func NewNextStatement(value Node) *NextStatement {
	return &NextStatement{nodeImpl: newNodeImpl(NodeNextStatement), Value: value}
}

func (n *NextStatement) Accept(v Visitor) any { return v.VisitNextStatement(n) }
func (n *NextStatement) ChildNodes() []Node   { return []Node{n.Value} }
