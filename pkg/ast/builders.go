package ast

import "math/big"

// Shorthand constructors used by tests and by fixture code. They build
// nodes without spans; SetSpan annotates when positions matter.

func Int(value int64) *IntegerLiteral       { return NewIntegerLiteral(big.NewInt(value)) }
func Flo(value float64) *FloatLiteral       { return NewFloatLiteral(value) }
func Str(value string) *StringLiteral       { return NewStringLiteral(value) }
func Sym(name string) *SymbolLiteral        { return NewSymbolLiteral(name) }
func ID(name string) *Identifier            { return NewIdentifier(name) }
func Con(name string) *Constant             { return NewConstant(name) }
func IVarRef(name string) *InstanceVariable { return NewInstanceVariable(name) }
func Nil() *NilLiteral                      { return NewNilLiteral() }
func Bool(value bool) *BooleanLiteral       { return NewBooleanLiteral(value) }

func List(elements ...Node) *ListNode { return NewListNode(elements) }

func Bin(operator string, left, right Node) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Call(receiver Node, name string, args ...Node) *MethodCall {
	return NewMethodCall(receiver, name, args)
}

func Asgn(target, value Node) *Assignment { return NewAssignment(target, value) }
