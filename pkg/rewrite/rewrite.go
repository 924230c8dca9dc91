// Package rewrite holds the post-parse passes that normalize and
// validate freshly built trees. Every pass is a pure function from
// tree to tree: shared input nodes are never mutated, unchanged
// subtrees are reused, and applying a pass to its own output is a
// no-op. The parser runs the standard pipeline on every parse.
package rewrite

import (
	"fmt"

	"rubyfront/parser-go/pkg/ast"
	"rubyfront/parser-go/pkg/diag"
)

// Pass is one rewrite or validation step.
type Pass interface {
	Name() string
	Apply(root ast.Node) (ast.Node, error)
}

// ValidationError reports a structurally well-formed tree that violates
// a semantic rule checked after parsing.
type ValidationError struct {
	Code    diag.Code
	Message string
	Span    ast.Span
}

func (e *ValidationError) Error() string { return e.Message }

// Pipeline applies passes in a fixed order.
type Pipeline struct {
	passes []Pass
}

func NewPipeline(passes ...Pass) Pipeline {
	return Pipeline{passes: passes}
}

// Standard is the pipeline the parser runs: literal folding first so
// the desugared trees see folded operands, then desugaring, then
// validation over the final shape.
func Standard() Pipeline {
	return NewPipeline(NumericLiteralFold(), OpAssignDesugar(), CaseConsistency())
}

// Run feeds root through each pass in order.
func (p Pipeline) Run(root ast.Node) (ast.Node, error) {
	var err error
	for _, pass := range p.passes {
		root, err = pass.Apply(root)
		if err != nil {
			return nil, fmt.Errorf("rewrite: %s: %w", pass.Name(), err)
		}
	}
	return root, nil
}
