// Package grammar provides generic shift-reduce parsing machinery: a
// declarative grammar with precedence declarations, an SLR(1) table
// constructor that resolves conflicts the way yacc does, a small
// table-driven machine, and YAML snapshot serialization for the built
// table. The package knows nothing about any particular language; the
// parser package supplies productions and reduction actions.
package grammar

import (
	"fmt"
	"sort"
)

// EOFSymbol is the terminal the machine synthesizes at end of input.
const EOFSymbol = "EOF"

// acceptSymbol is the left-hand side of the augmented start production.
const acceptSymbol = "$accept"

// Assoc resolves shift/reduce conflicts between equal precedence
// levels.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
	AssocNonAssoc
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "nonassoc"
	}
}

// PrecLevel declares one precedence tier. Levels are listed from lowest
// to highest binding. A terminal may appear in at most one level.
// Pseudo-terminals that never occur in input (e.g. a UMINUS marker)
// may be declared purely to give productions an override precedence.
type PrecLevel struct {
	Assoc     Assoc
	Terminals []string
}

// Production is one grammar rule. Any RHS symbol that never appears as
// a LHS is a terminal. PrecTerm, when set, overrides the production's
// precedence (yacc's %prec); otherwise the rightmost terminal decides.
type Production struct {
	ID       int      `yaml:"id"`
	LHS      string   `yaml:"lhs"`
	RHS      []string `yaml:"rhs"`
	PrecTerm string   `yaml:"prec,omitempty"`
}

func (p Production) String() string {
	rhs := ""
	for i, sym := range p.RHS {
		if i > 0 {
			rhs += " "
		}
		rhs += sym
	}
	if rhs == "" {
		rhs = "<empty>"
	}
	return fmt.Sprintf("%s -> %s", p.LHS, rhs)
}

// Grammar is the declarative input to Build.
type Grammar struct {
	Start       string
	Productions []Production
	Levels      []PrecLevel
}

type precedence struct {
	level int
	assoc Assoc
}

// precTable maps terminals to their declared precedence; level numbers
// start at 1 so the zero value means "undeclared".
func (g *Grammar) precTable() (map[string]precedence, error) {
	precs := make(map[string]precedence)
	for i, level := range g.Levels {
		for _, term := range level.Terminals {
			if _, dup := precs[term]; dup {
				return nil, fmt.Errorf("grammar: terminal %q declared in two precedence levels", term)
			}
			precs[term] = precedence{level: i + 1, assoc: level.Assoc}
		}
	}
	return precs, nil
}

// symbols partitions the grammar's vocabulary. Terminals come back
// sorted so table construction is deterministic.
func (g *Grammar) symbols() (nonterminals map[string]bool, terminals []string) {
	nonterminals = make(map[string]bool)
	for _, p := range g.Productions {
		nonterminals[p.LHS] = true
	}
	termSet := map[string]bool{EOFSymbol: true}
	for _, p := range g.Productions {
		for _, sym := range p.RHS {
			if !nonterminals[sym] {
				termSet[sym] = true
			}
		}
	}
	terminals = make([]string, 0, len(termSet))
	for t := range termSet {
		terminals = append(terminals, t)
	}
	sort.Strings(terminals)
	return nonterminals, terminals
}

// prodPrecedence returns the effective precedence of a production:
// the %prec override if present, otherwise the rightmost terminal.
func prodPrecedence(p Production, nonterminals map[string]bool, precs map[string]precedence) (precedence, bool) {
	if p.PrecTerm != "" {
		prec, ok := precs[p.PrecTerm]
		return prec, ok
	}
	for i := len(p.RHS) - 1; i >= 0; i-- {
		if !nonterminals[p.RHS[i]] {
			prec, ok := precs[p.RHS[i]]
			return prec, ok
		}
	}
	return precedence{}, false
}

// first/follow computation, shared by the table builder.

type symbolSets struct {
	nullable map[string]bool
	first    map[string]map[string]bool
	follow   map[string]map[string]bool
}

func computeSets(g *Grammar, nonterminals map[string]bool) *symbolSets {
	s := &symbolSets{
		nullable: make(map[string]bool),
		first:    make(map[string]map[string]bool),
		follow:   make(map[string]map[string]bool),
	}
	for nt := range nonterminals {
		s.first[nt] = make(map[string]bool)
		s.follow[nt] = make(map[string]bool)
	}

	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			allNullable := true
			for _, sym := range p.RHS {
				if !s.nullable[sym] {
					allNullable = false
					break
				}
			}
			if allNullable && !s.nullable[p.LHS] {
				s.nullable[p.LHS] = true
				changed = true
			}
		}
	}

	addAll := func(dst map[string]bool, src map[string]bool) bool {
		grew := false
		for sym := range src {
			if !dst[sym] {
				dst[sym] = true
				grew = true
			}
		}
		return grew
	}

	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			for _, sym := range p.RHS {
				if !nonterminals[sym] {
					if !s.first[p.LHS][sym] {
						s.first[p.LHS][sym] = true
						changed = true
					}
					break
				}
				if addAll(s.first[p.LHS], s.first[sym]) {
					changed = true
				}
				if !s.nullable[sym] {
					break
				}
			}
		}
	}

	s.follow[g.Start][EOFSymbol] = true
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			for i, sym := range p.RHS {
				if !nonterminals[sym] {
					continue
				}
				restNullable := true
				for _, after := range p.RHS[i+1:] {
					if nonterminals[after] {
						if addAll(s.follow[sym], s.first[after]) {
							changed = true
						}
						if !s.nullable[after] {
							restNullable = false
							break
						}
						continue
					}
					if !s.follow[sym][after] {
						s.follow[sym][after] = true
						changed = true
					}
					restNullable = false
					break
				}
				if restNullable {
					if addAll(s.follow[sym], s.follow[p.LHS]) {
						changed = true
					}
				}
			}
		}
	}
	return s
}
