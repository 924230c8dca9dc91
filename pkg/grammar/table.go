package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// ActionKind discriminates table entries. A missing entry means the
// token is a syntax error in that state.
type ActionKind int

const (
	ActionShift ActionKind = iota
	ActionReduce
	ActionAccept
)

// Action is one table entry: the state to shift to, or the production
// to reduce by. Accept carries no operand.
type Action struct {
	Kind   ActionKind `yaml:"kind"`
	Target int        `yaml:"target"`
}

// Row holds the action and goto entries for one automaton state.
type Row struct {
	Actions map[string]Action `yaml:"actions"`
	Gotos   map[string]int    `yaml:"gotos"`
}

// Table is the finished parse table. It is immutable after Build and
// safe to share across any number of concurrent parses.
type Table struct {
	Start       string       `yaml:"start"`
	Productions []Production `yaml:"productions"`
	Rows        []Row        `yaml:"rows"`

	// ResolvedConflicts counts shift/reduce conflicts settled by
	// precedence or by the default-shift rule during construction.
	ResolvedConflicts int `yaml:"resolved_conflicts"`
}

// Expected lists the terminals acceptable in the given state, sorted.
func (t *Table) Expected(state int) []string {
	if state < 0 || state >= len(t.Rows) {
		return nil
	}
	expected := make([]string, 0, len(t.Rows[state].Actions))
	for term := range t.Rows[state].Actions {
		expected = append(expected, term)
	}
	sort.Strings(expected)
	return expected
}

type item struct {
	prod int
	dot  int
}

type itemSet []item

func (s itemSet) key() string {
	var sb strings.Builder
	for _, it := range s {
		fmt.Fprintf(&sb, "%d.%d;", it.prod, it.dot)
	}
	return sb.String()
}

func sortItems(s itemSet) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].prod != s[j].prod {
			return s[i].prod < s[j].prod
		}
		return s[i].dot < s[j].dot
	})
}

// Build constructs the SLR(1) table. Shift/reduce conflicts resolve by
// the declared precedence; without declarations the builder shifts, as
// yacc does, which is exactly the resolution Ruby's grammar relies on
// for its dangling constructs. Reduce/reduce conflicts are an error.
func Build(g *Grammar) (*Table, error) {
	if g.Start == "" {
		return nil, fmt.Errorf("grammar: no start symbol")
	}
	precs, err := g.precTable()
	if err != nil {
		return nil, err
	}

	// Augment with $accept -> Start, which becomes production 0.
	prods := make([]Production, 0, len(g.Productions)+1)
	prods = append(prods, Production{LHS: acceptSymbol, RHS: []string{g.Start}})
	prods = append(prods, g.Productions...)
	for i := range prods {
		prods[i].ID = i
	}
	aug := &Grammar{Start: acceptSymbol, Productions: prods, Levels: g.Levels}

	nonterminals, _ := aug.symbols()
	if !nonterminals[g.Start] {
		return nil, fmt.Errorf("grammar: start symbol %q has no productions", g.Start)
	}
	sets := computeSets(aug, nonterminals)

	prodsByLHS := make(map[string][]int)
	for i, p := range prods {
		prodsByLHS[p.LHS] = append(prodsByLHS[p.LHS], i)
	}

	closure := func(seed itemSet) itemSet {
		seen := make(map[item]bool, len(seed))
		out := make(itemSet, 0, len(seed))
		var work []item
		for _, it := range seed {
			if !seen[it] {
				seen[it] = true
				out = append(out, it)
				work = append(work, it)
			}
		}
		for len(work) > 0 {
			it := work[0]
			work = work[1:]
			p := prods[it.prod]
			if it.dot >= len(p.RHS) {
				continue
			}
			sym := p.RHS[it.dot]
			if !nonterminals[sym] {
				continue
			}
			for _, pi := range prodsByLHS[sym] {
				next := item{prod: pi, dot: 0}
				if !seen[next] {
					seen[next] = true
					out = append(out, next)
					work = append(work, next)
				}
			}
		}
		sortItems(out)
		return out
	}

	start := closure(itemSet{{prod: 0, dot: 0}})
	states := []itemSet{start}
	stateIndex := map[string]int{start.key(): 0}
	transitions := []map[string]int{}

	for si := 0; si < len(states); si++ {
		state := states[si]
		// Group items by the symbol after the dot, in deterministic
		// symbol order.
		bySym := make(map[string]itemSet)
		var symOrder []string
		for _, it := range state {
			p := prods[it.prod]
			if it.dot >= len(p.RHS) {
				continue
			}
			sym := p.RHS[it.dot]
			if _, ok := bySym[sym]; !ok {
				symOrder = append(symOrder, sym)
			}
			bySym[sym] = append(bySym[sym], item{prod: it.prod, dot: it.dot + 1})
		}
		sort.Strings(symOrder)

		trans := make(map[string]int, len(symOrder))
		for _, sym := range symOrder {
			next := closure(bySym[sym])
			key := next.key()
			target, ok := stateIndex[key]
			if !ok {
				target = len(states)
				stateIndex[key] = target
				states = append(states, next)
			}
			trans[sym] = target
		}
		transitions = append(transitions, trans)
	}

	table := &Table{Start: g.Start, Productions: prods, Rows: make([]Row, len(states))}
	for si, state := range states {
		row := Row{Actions: make(map[string]Action), Gotos: make(map[string]int)}
		for sym, target := range transitions[si] {
			if nonterminals[sym] {
				row.Gotos[sym] = target
			} else {
				row.Actions[sym] = Action{Kind: ActionShift, Target: target}
			}
		}
		for _, it := range state {
			p := prods[it.prod]
			if it.dot < len(p.RHS) {
				continue
			}
			if it.prod == 0 {
				row.Actions[EOFSymbol] = Action{Kind: ActionAccept}
				continue
			}
			follow := make([]string, 0, len(sets.follow[p.LHS]))
			for term := range sets.follow[p.LHS] {
				follow = append(follow, term)
			}
			sort.Strings(follow)
			for _, term := range follow {
				if err := placeReduce(table, &row, si, term, it.prod, prods, nonterminals, precs); err != nil {
					return nil, err
				}
			}
		}
		table.Rows[si] = row
	}
	return table, nil
}

// placeReduce installs a reduce action, arbitrating against any entry
// already present.
func placeReduce(table *Table, row *Row, state int, term string, prodIdx int,
	prods []Production, nonterminals map[string]bool, precs map[string]precedence) error {

	existing, occupied := row.Actions[term]
	if !occupied {
		row.Actions[term] = Action{Kind: ActionReduce, Target: prodIdx}
		return nil
	}
	switch existing.Kind {
	case ActionReduce:
		return fmt.Errorf("grammar: reduce/reduce conflict in state %d on %q between %q and %q",
			state, term, prods[existing.Target], prods[prodIdx])
	case ActionAccept:
		return fmt.Errorf("grammar: conflict with accept in state %d on %q", state, term)
	}

	rulePrec, ruleOK := prodPrecedence(prods[prodIdx], nonterminals, precs)
	termPrec, termOK := precs[term]
	if !ruleOK || !termOK {
		// Default resolution: keep the shift.
		table.ResolvedConflicts++
		return nil
	}
	table.ResolvedConflicts++
	switch {
	case rulePrec.level > termPrec.level:
		row.Actions[term] = Action{Kind: ActionReduce, Target: prodIdx}
	case rulePrec.level < termPrec.level:
		// keep shift
	default:
		switch termPrec.assoc {
		case AssocLeft:
			row.Actions[term] = Action{Kind: ActionReduce, Target: prodIdx}
		case AssocRight:
			// keep shift
		case AssocNonAssoc:
			delete(row.Actions, term)
		}
	}
	return nil
}
