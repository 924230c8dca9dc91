package parser

import (
	"fmt"

	"rubyfront/parser-go/pkg/ast"
	"rubyfront/parser-go/pkg/grammar"
	"rubyfront/parser-go/pkg/token"
)

// The grammar below is the declarative source the table is generated
// from. Expression operators are folded into a single arg rule set and
// disambiguated entirely by the precedence declarations, which keeps
// the production count small and pushes Ruby's classic ambiguities
// (dangling else, optional do, modifier keywords) into table-time
// conflict resolution instead of hand-written lookahead.

// uminusMarker is a pseudo-terminal used only as a %prec override for
// the unary minus/plus productions.
const uminusMarker = "UMINUS"

type action func(grammar.Reduction) (any, error)

type rule struct {
	lhs  string
	rhs  []string
	prec string
	act  action
}

// precLevels lists precedence tiers lowest-first, mirroring Ruby's
// operator table for the surface we accept.
func precLevels() []grammar.PrecLevel {
	return []grammar.PrecLevel{
		{Assoc: grammar.AssocLeft, Terminals: []string{"if", "unless", "while", "until"}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"or", "and"}},
		{Assoc: grammar.AssocRight, Terminals: []string{"not"}},
		{Assoc: grammar.AssocRight, Terminals: []string{"=", "OPASGN"}},
		{Assoc: grammar.AssocNonAssoc, Terminals: []string{"..", "..."}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"||"}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"&&"}},
		{Assoc: grammar.AssocNonAssoc, Terminals: []string{"==", "!=", "<=>"}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"<", "<=", ">", ">="}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"|", "^"}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"&"}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"<<", ">>"}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"+", "-"}},
		{Assoc: grammar.AssocLeft, Terminals: []string{"*", "/", "%"}},
		{Assoc: grammar.AssocRight, Terminals: []string{uminusMarker}},
		{Assoc: grammar.AssocRight, Terminals: []string{"**"}},
		{Assoc: grammar.AssocRight, Terminals: []string{"!", "~"}},
	}
}

// caseBody carries a case statement's clause list and else branch
// between reductions.
type caseBody struct {
	clauses  []ast.Node
	elseBody ast.Node
}

// bodyParts carries a begin/def body's pieces between reductions.
type bodyParts struct {
	rescues    []ast.Node
	elseBody   ast.Node
	ensureBody ast.Node
}

func rules() []rule {
	binary := func(r grammar.Reduction) (any, error) {
		op := tk(r.Values[1])
		return finish(ast.NewBinaryExpression(string(op.Kind), nd(r.Values[0]), nd(r.Values[2])), r)
	}
	unary := func(r grammar.Reduction) (any, error) {
		op := tk(r.Values[0])
		return finish(ast.NewUnaryExpression(string(op.Kind), nd(r.Values[1])), r)
	}
	forward := func(i int) action {
		return func(r grammar.Reduction) (any, error) { return r.Values[i], nil }
	}
	nilAction := func(grammar.Reduction) (any, error) { return nil, nil }
	tokenName := func(r grammar.Reduction) (any, error) {
		t := tk(r.Values[0])
		switch t.Kind {
		case token.Ident:
			return finish(ast.NewIdentifier(t.Text), r)
		case token.Const:
			return finish(ast.NewConstant(t.Text), r)
		case token.IVar:
			return finish(ast.NewInstanceVariable(t.Text), r)
		case token.GVar:
			return finish(ast.NewGlobalVariable(t.Text), r)
		}
		return nil, fmt.Errorf("parser: unexpected name token %s", t)
	}
	rangeRule := func(exclusive bool) action {
		return func(r grammar.Reduction) (any, error) {
			return finish(ast.NewRangeExpression(nd(r.Values[0]), nd(r.Values[2]), exclusive), r)
		}
	}
	modifierIf := func(invert bool) action {
		return func(r grammar.Reduction) (any, error) {
			body, cond := nd(r.Values[0]), nd(r.Values[2])
			if invert {
				return finish(ast.NewIfExpression(cond, nil, body), r)
			}
			return finish(ast.NewIfExpression(cond, body, nil), r)
		}
	}
	modifierLoop := func(until bool) action {
		return func(r grammar.Reduction) (any, error) {
			return finish(ast.NewWhileLoop(nd(r.Values[2]), nd(r.Values[0]), until), r)
		}
	}
	jump := func(build func(ast.Node) ast.Node) action {
		return func(r grammar.Reduction) (any, error) {
			var value ast.Node
			if len(r.Values) > 1 {
				value = nd(r.Values[1])
			}
			return finish(build(value), r)
		}
	}

	return []rule{
		// Entry points. The program start symbol and the expression
		// start symbol share the whole rule base.
		{lhs: "program", rhs: []string{"comp"}, act: forward(0)},
		{lhs: "expr_entry", rhs: []string{"opt_terms", "expr", "opt_terms"}, act: forward(1)},

		// Statement sequencing. comp produces nil for an empty body,
		// the lone statement for a singleton, and a ListNode otherwise.
		{lhs: "comp", rhs: []string{"opt_terms"}, act: nilAction},
		{lhs: "comp", rhs: []string{"opt_terms", "stmts", "opt_terms"},
			act: func(r grammar.Reduction) (any, error) { return listOrSingle(ns(r.Values[1])), nil }},
		{lhs: "stmts", rhs: []string{"stmt"},
			act: func(r grammar.Reduction) (any, error) { return []ast.Node{nd(r.Values[0])}, nil }},
		{lhs: "stmts", rhs: []string{"stmts", "terms", "stmt"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), nd(r.Values[2])), nil
			}},
		{lhs: "term", rhs: []string{"NEWLINE"}, act: nilAction},
		{lhs: "term", rhs: []string{";"}, act: nilAction},
		{lhs: "terms", rhs: []string{"term"}, act: nilAction},
		{lhs: "terms", rhs: []string{"terms", "term"}, act: nilAction},
		{lhs: "opt_terms", rhs: nil, act: nilAction},
		{lhs: "opt_terms", rhs: []string{"terms"}, act: nilAction},

		// Modifier forms hang off stmt so they bind loosest.
		{lhs: "stmt", rhs: []string{"expr"}, act: forward(0)},
		{lhs: "stmt", rhs: []string{"stmt", "if", "expr"}, act: modifierIf(false)},
		{lhs: "stmt", rhs: []string{"stmt", "unless", "expr"}, act: modifierIf(true)},
		{lhs: "stmt", rhs: []string{"stmt", "while", "expr"}, act: modifierLoop(false)},
		{lhs: "stmt", rhs: []string{"stmt", "until", "expr"}, act: modifierLoop(true)},

		{lhs: "expr", rhs: []string{"arg"}, act: forward(0)},
		{lhs: "expr", rhs: []string{"not", "expr"}, act: unary},
		{lhs: "expr", rhs: []string{"expr", "and", "expr"}, act: binary},
		{lhs: "expr", rhs: []string{"expr", "or", "expr"}, act: binary},
		{lhs: "expr", rhs: []string{"return"}, act: jump(func(v ast.Node) ast.Node { return ast.NewReturnStatement(v) })},
		{lhs: "expr", rhs: []string{"return", "arg"}, act: jump(func(v ast.Node) ast.Node { return ast.NewReturnStatement(v) })},
		{lhs: "expr", rhs: []string{"break"}, act: jump(func(v ast.Node) ast.Node { return ast.NewBreakStatement(v) })},
		{lhs: "expr", rhs: []string{"break", "arg"}, act: jump(func(v ast.Node) ast.Node { return ast.NewBreakStatement(v) })},
		{lhs: "expr", rhs: []string{"next"}, act: jump(func(v ast.Node) ast.Node { return ast.NewNextStatement(v) })},
		{lhs: "expr", rhs: []string{"next", "arg"}, act: jump(func(v ast.Node) ast.Node { return ast.NewNextStatement(v) })},

		// The operator ladder. One rule per operator; precedence
		// declarations do all disambiguation.
		{lhs: "arg", rhs: []string{"arg", "+", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "-", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "*", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "/", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "%", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "**", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "==", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "!=", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "<", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "<=", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", ">", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", ">=", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "<=>", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "&&", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "||", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "&", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "|", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "^", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "<<", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", ">>", "arg"}, act: binary},
		{lhs: "arg", rhs: []string{"arg", "..", "arg"}, act: rangeRule(false)},
		{lhs: "arg", rhs: []string{"arg", "...", "arg"}, act: rangeRule(true)},
		{lhs: "arg", rhs: []string{"-", "arg"}, prec: uminusMarker, act: unary},
		{lhs: "arg", rhs: []string{"+", "arg"}, prec: uminusMarker, act: unary},
		{lhs: "arg", rhs: []string{"!", "arg"}, act: unary},
		{lhs: "arg", rhs: []string{"~", "arg"}, act: unary},
		{lhs: "arg", rhs: []string{"lhs", "=", "arg"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewAssignment(nd(r.Values[0]), nd(r.Values[2])), r)
			}},
		{lhs: "arg", rhs: []string{"lhs", "OPASGN", "arg"},
			act: func(r grammar.Reduction) (any, error) {
				op := tk(r.Values[1])
				return finish(ast.NewOperatorAssignment(nd(r.Values[0]), op.Str, nd(r.Values[2])), r)
			}},
		{lhs: "arg", rhs: []string{"primary"}, act: forward(0)},

		// Assignment targets. Names reduce here only when the next
		// token is = or an op-assign; the FOLLOW sets keep this apart
		// from plain value reads.
		{lhs: "lhs", rhs: []string{"IDENT"}, act: tokenName},
		{lhs: "lhs", rhs: []string{"CONST"}, act: tokenName},
		{lhs: "lhs", rhs: []string{"IVAR"}, act: tokenName},
		{lhs: "lhs", rhs: []string{"GVAR"}, act: tokenName},
		{lhs: "lhs", rhs: []string{"primary", ".", "IDENT"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewMethodCall(nd(r.Values[0]), tk(r.Values[2]).Text, nil), r)
			}},
		{lhs: "lhs", rhs: []string{"primary", "LBRACKET_IDX", "opt_args", "]"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewIndexExpression(nd(r.Values[0]), ns(r.Values[2])), r)
			}},

		// Primary expressions.
		{lhs: "primary", rhs: []string{"literal"}, act: forward(0)},
		{lhs: "primary", rhs: []string{"IDENT"}, act: tokenName},
		{lhs: "primary", rhs: []string{"CONST"}, act: tokenName},
		{lhs: "primary", rhs: []string{"IVAR"}, act: tokenName},
		{lhs: "primary", rhs: []string{"GVAR"}, act: tokenName},
		{lhs: "primary", rhs: []string{"self"},
			act: func(r grammar.Reduction) (any, error) { return finish(ast.NewSelfExpression(), r) }},
		{lhs: "primary", rhs: []string{"primary", "::", "CONST"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewConstantPath(nd(r.Values[0]), tk(r.Values[2]).Text), r)
			}},
		{lhs: "primary", rhs: []string{"(", "expr", ")"}, act: forward(1)},
		{lhs: "primary", rhs: []string{"[", "opt_args", "]"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewArrayLiteral(ns(r.Values[1])), r)
			}},
		{lhs: "primary", rhs: []string{"{", "opt_assocs", "}"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewHashLiteral(ns(r.Values[1])), r)
			}},
		{lhs: "primary", rhs: []string{"IDENT", "(", "opt_call_args", ")"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewMethodCall(nil, tk(r.Values[0]).Text, ns(r.Values[2])), r)
			}},
		{lhs: "primary", rhs: []string{"primary", ".", "IDENT", "(", "opt_call_args", ")"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewMethodCall(nd(r.Values[0]), tk(r.Values[2]).Text, ns(r.Values[4])), r)
			}},
		{lhs: "primary", rhs: []string{"primary", ".", "IDENT"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewMethodCall(nd(r.Values[0]), tk(r.Values[2]).Text, nil), r)
			}},
		{lhs: "primary", rhs: []string{"primary", "LBRACKET_IDX", "opt_args", "]"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewIndexExpression(nd(r.Values[0]), ns(r.Values[2])), r)
			}},

		// Control structures.
		{lhs: "primary", rhs: []string{"if", "expr", "then_sep", "comp", "if_tail", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewIfExpression(nd(r.Values[1]), nd(r.Values[3]), nd(r.Values[4])), r)
			}},
		{lhs: "primary", rhs: []string{"unless", "expr", "then_sep", "comp", "opt_else", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewIfExpression(nd(r.Values[1]), nd(r.Values[4]), nd(r.Values[3])), r)
			}},
		{lhs: "primary", rhs: []string{"while", "expr", "do_sep", "comp", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewWhileLoop(nd(r.Values[1]), nd(r.Values[3]), false), r)
			}},
		{lhs: "primary", rhs: []string{"until", "expr", "do_sep", "comp", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewWhileLoop(nd(r.Values[1]), nd(r.Values[3]), true), r)
			}},
		{lhs: "if_tail", rhs: []string{"opt_else"}, act: forward(0)},
		{lhs: "if_tail", rhs: []string{"elsif", "expr", "then_sep", "comp", "if_tail"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewIfExpression(nd(r.Values[1]), nd(r.Values[3]), nd(r.Values[4])), r)
			}},
		{lhs: "opt_else", rhs: nil, act: nilAction},
		{lhs: "opt_else", rhs: []string{"else", "comp"}, act: forward(1)},
		{lhs: "then_sep", rhs: []string{"then"}, act: nilAction},
		{lhs: "then_sep", rhs: []string{"term"}, act: nilAction},
		{lhs: "then_sep", rhs: []string{"term", "then"}, act: nilAction},
		{lhs: "do_sep", rhs: []string{"do"}, act: nilAction},
		{lhs: "do_sep", rhs: []string{"term"}, act: nilAction},
		{lhs: "do_sep", rhs: []string{"term", "do"}, act: nilAction},

		// case with and without a subject. The clause list is built
		// first; the else branch is attached afterwards through the
		// node's one-time setter.
		{lhs: "primary", rhs: []string{"case", "expr", "opt_terms", "case_body", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finishCase(nd(r.Values[1]), r.Values[3], r)
			}},
		{lhs: "primary", rhs: []string{"case", "opt_terms", "case_body", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finishCase(nil, r.Values[2], r)
			}},
		{lhs: "case_body", rhs: []string{"when_clauses", "opt_else"},
			act: func(r grammar.Reduction) (any, error) {
				return caseBody{clauses: ns(r.Values[0]), elseBody: nd(r.Values[1])}, nil
			}},
		{lhs: "case_body", rhs: []string{"in_clauses", "opt_else"},
			act: func(r grammar.Reduction) (any, error) {
				return caseBody{clauses: ns(r.Values[0]), elseBody: nd(r.Values[1])}, nil
			}},
		{lhs: "when_clauses", rhs: []string{"when_clause"},
			act: func(r grammar.Reduction) (any, error) { return []ast.Node{nd(r.Values[0])}, nil }},
		{lhs: "when_clauses", rhs: []string{"when_clauses", "when_clause"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), nd(r.Values[1])), nil
			}},
		{lhs: "when_clause", rhs: []string{"when", "args", "then_sep", "comp"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewWhenClause(ns(r.Values[1]), nd(r.Values[3])), r)
			}},
		{lhs: "in_clauses", rhs: []string{"in_clause"},
			act: func(r grammar.Reduction) (any, error) { return []ast.Node{nd(r.Values[0])}, nil }},
		{lhs: "in_clauses", rhs: []string{"in_clauses", "in_clause"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), nd(r.Values[1])), nil
			}},
		{lhs: "in_clause", rhs: []string{"in", "arg", "then_sep", "comp"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewInClause(nd(r.Values[1]), nd(r.Values[3])), r)
			}},

		// begin/rescue/else/ensure, shared with method bodies.
		{lhs: "primary", rhs: []string{"begin", "bodystmt", "end"},
			act: forward(1)},
		{lhs: "bodystmt", rhs: []string{"comp", "opt_rescues", "opt_else", "opt_ensure"},
			act: func(r grammar.Reduction) (any, error) {
				body := nd(r.Values[0])
				parts := bodyParts{
					rescues:    ns(r.Values[1]),
					elseBody:   nd(r.Values[2]),
					ensureBody: nd(r.Values[3]),
				}
				if parts.rescues == nil && parts.elseBody == nil && parts.ensureBody == nil {
					// A bare begin/end adds nothing; hand back the body.
					return body, nil
				}
				return finish(ast.NewBeginExpression(body, parts.rescues, parts.elseBody, parts.ensureBody), r)
			}},
		{lhs: "opt_rescues", rhs: nil, act: nilAction},
		{lhs: "opt_rescues", rhs: []string{"rescue_clauses"}, act: forward(0)},
		{lhs: "rescue_clauses", rhs: []string{"rescue_clause"},
			act: func(r grammar.Reduction) (any, error) { return []ast.Node{nd(r.Values[0])}, nil }},
		{lhs: "rescue_clauses", rhs: []string{"rescue_clauses", "rescue_clause"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), nd(r.Values[1])), nil
			}},
		{lhs: "rescue_clause", rhs: []string{"rescue", "opt_exc_list", "opt_exc_var", "then_sep", "comp"},
			act: func(r grammar.Reduction) (any, error) {
				var target ast.Node
				if v := tk(r.Values[2]); v.Kind == token.Ident {
					target = ast.NewIdentifier(v.Text)
					ast.SetSpan(target, tokenSpan(v))
				}
				return finish(ast.NewRescueClause(ns(r.Values[1]), target, nd(r.Values[4])), r)
			}},
		{lhs: "opt_exc_list", rhs: nil, act: nilAction},
		{lhs: "opt_exc_list", rhs: []string{"args"}, act: forward(0)},
		{lhs: "opt_exc_var", rhs: nil, act: nilAction},
		{lhs: "opt_exc_var", rhs: []string{"=>", "IDENT"}, act: forward(1)},
		{lhs: "opt_ensure", rhs: nil, act: nilAction},
		{lhs: "opt_ensure", rhs: []string{"ensure", "comp"}, act: forward(1)},

		// Definitions.
		{lhs: "primary", rhs: []string{"def", "IDENT", "f_arglist", "bodystmt", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewMethodDefinition(tk(r.Values[1]).Text, ns(r.Values[2]), nd(r.Values[3])), r)
			}},
		{lhs: "f_arglist", rhs: nil, act: nilAction},
		{lhs: "f_arglist", rhs: []string{"(", "opt_params", ")"}, act: forward(1)},
		{lhs: "opt_params", rhs: nil, act: nilAction},
		{lhs: "opt_params", rhs: []string{"params"}, act: forward(0)},
		{lhs: "params", rhs: []string{"param"},
			act: func(r grammar.Reduction) (any, error) { return []ast.Node{nd(r.Values[0])}, nil }},
		{lhs: "params", rhs: []string{"params", ",", "param"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), nd(r.Values[2])), nil
			}},
		{lhs: "param", rhs: []string{"IDENT"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewParameter(tk(r.Values[0]).Text, nil, false), r)
			}},
		{lhs: "param", rhs: []string{"IDENT", "=", "arg"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewParameter(tk(r.Values[0]).Text, nd(r.Values[2]), false), r)
			}},
		{lhs: "param", rhs: []string{"*", "IDENT"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewParameter(tk(r.Values[1]).Text, nil, true), r)
			}},
		{lhs: "primary", rhs: []string{"class", "cname", "superclass", "comp", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewClassDefinition(nd(r.Values[1]), nd(r.Values[2]), nd(r.Values[3])), r)
			}},
		{lhs: "primary", rhs: []string{"module", "cname", "comp", "end"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewModuleDefinition(nd(r.Values[1]), nd(r.Values[2])), r)
			}},
		{lhs: "cname", rhs: []string{"CONST"}, act: tokenName},
		{lhs: "cname", rhs: []string{"cname", "::", "CONST"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewConstantPath(nd(r.Values[0]), tk(r.Values[2]).Text), r)
			}},
		{lhs: "superclass", rhs: nil, act: nilAction},
		{lhs: "superclass", rhs: []string{"<", "arg"}, act: forward(1)},

		// Literals.
		{lhs: "literal", rhs: []string{"INT"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewIntegerLiteral(tk(r.Values[0]).Num), r)
			}},
		{lhs: "literal", rhs: []string{"FLOAT"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewFloatLiteral(tk(r.Values[0]).Real), r)
			}},
		{lhs: "literal", rhs: []string{"STRING"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewStringLiteral(tk(r.Values[0]).Str), r)
			}},
		{lhs: "literal", rhs: []string{"SYMBOL"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewSymbolLiteral(tk(r.Values[0]).Str), r)
			}},
		{lhs: "literal", rhs: []string{"nil"},
			act: func(r grammar.Reduction) (any, error) { return finish(ast.NewNilLiteral(), r) }},
		{lhs: "literal", rhs: []string{"true"},
			act: func(r grammar.Reduction) (any, error) { return finish(ast.NewBooleanLiteral(true), r) }},
		{lhs: "literal", rhs: []string{"false"},
			act: func(r grammar.Reduction) (any, error) { return finish(ast.NewBooleanLiteral(false), r) }},

		// Argument and hash-entry lists.
		{lhs: "args", rhs: []string{"arg"},
			act: func(r grammar.Reduction) (any, error) { return []ast.Node{nd(r.Values[0])}, nil }},
		{lhs: "args", rhs: []string{"args", ",", "arg"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), nd(r.Values[2])), nil
			}},
		{lhs: "opt_args", rhs: nil, act: nilAction},
		{lhs: "opt_args", rhs: []string{"args"}, act: forward(0)},
		{lhs: "opt_call_args", rhs: nil, act: nilAction},
		{lhs: "opt_call_args", rhs: []string{"args"}, act: forward(0)},
		{lhs: "opt_call_args", rhs: []string{"assocs"},
			act: func(r grammar.Reduction) (any, error) {
				return []ast.Node{trailingHash(ns(r.Values[0]))}, nil
			}},
		{lhs: "opt_call_args", rhs: []string{"args", ",", "assocs"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), trailingHash(ns(r.Values[2]))), nil
			}},
		{lhs: "opt_assocs", rhs: nil, act: nilAction},
		{lhs: "opt_assocs", rhs: []string{"assocs"}, act: forward(0)},
		{lhs: "assocs", rhs: []string{"assoc"},
			act: func(r grammar.Reduction) (any, error) { return []ast.Node{nd(r.Values[0])}, nil }},
		{lhs: "assocs", rhs: []string{"assocs", ",", "assoc"},
			act: func(r grammar.Reduction) (any, error) {
				return append(ns(r.Values[0]), nd(r.Values[2])), nil
			}},
		{lhs: "assoc", rhs: []string{"arg", "=>", "arg"},
			act: func(r grammar.Reduction) (any, error) {
				return finish(ast.NewHashEntry(nd(r.Values[0]), nd(r.Values[2])), r)
			}},
		{lhs: "assoc", rhs: []string{"LABEL", "arg"},
			act: func(r grammar.Reduction) (any, error) {
				label := tk(r.Values[0])
				key := ast.NewSymbolLiteral(label.Str)
				ast.SetSpan(key, tokenSpan(label))
				return finish(ast.NewHashEntry(key, nd(r.Values[1])), r)
			}},
	}
}

// buildGrammar assembles the shared grammar with the requested start
// symbol.
func buildGrammar(start string) (*grammar.Grammar, []action) {
	specs := rules()
	prods := make([]grammar.Production, len(specs))
	acts := make([]action, len(specs))
	for i, spec := range specs {
		prods[i] = grammar.Production{LHS: spec.lhs, RHS: spec.rhs, PrecTerm: spec.prec}
		acts[i] = spec.act
	}
	return &grammar.Grammar{Start: start, Productions: prods, Levels: precLevels()}, acts
}

func finishCase(subject ast.Node, bodyVal any, r grammar.Reduction) (any, error) {
	body, ok := bodyVal.(caseBody)
	if !ok {
		return nil, fmt.Errorf("parser: malformed case body")
	}
	clauses := ast.NewListNode(body.clauses)
	ast.SetSpan(clauses, spanUnion(body.clauses))
	node := ast.NewCaseExpression(subject, clauses)
	node.SetElseBody(body.elseBody)
	return finish(node, r)
}
