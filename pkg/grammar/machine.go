package grammar

import (
	"fmt"
	"strings"
)

// Lexeme is one terminal delivered to the machine, with its semantic
// value and the half-open byte range it covers.
type Lexeme struct {
	Terminal string
	Value    any
	Start    int
	End      int
}

// Reduction is handed to the reducer each time a production fires.
// Values holds the semantic values of the right-hand side in order;
// Start/End is the byte range the whole handle covers (degenerate for
// empty productions).
type Reduction struct {
	Production Production
	Values     []any
	Start      int
	End        int
}

// Reducer builds the semantic value for a reduction. This is the single
// point where parse results are created, which is what guarantees the
// output is a strict tree: a reducer receives each child value exactly
// once and must not retain values across calls.
type Reducer func(Reduction) (any, error)

// UnexpectedTokenError reports a terminal the automaton cannot act on.
// Expected lists the terminals that would have been acceptable.
type UnexpectedTokenError struct {
	Terminal string
	State    int
	Start    int
	End      int
	Expected []string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s, expecting %s", e.Terminal, strings.Join(e.Expected, " or "))
}

type stackEntry struct {
	value      any
	start, end int
}

// Parse runs the deterministic shift-reduce loop over the table. next
// supplies lexemes, ending with EOFSymbol; reduce builds semantic
// values. The table is only read, so one table serves concurrent
// parses, each with its own stacks.
func (t *Table) Parse(next func() (Lexeme, error), reduce Reducer) (any, error) {
	stateStack := []int{0}
	valueStack := []stackEntry{}

	la, err := next()
	if err != nil {
		return nil, err
	}

	for {
		state := stateStack[len(stateStack)-1]
		action, ok := t.Rows[state].Actions[la.Terminal]
		if !ok {
			return nil, &UnexpectedTokenError{
				Terminal: la.Terminal,
				State:    state,
				Start:    la.Start,
				End:      la.End,
				Expected: t.Expected(state),
			}
		}

		switch action.Kind {
		case ActionShift:
			stateStack = append(stateStack, action.Target)
			valueStack = append(valueStack, stackEntry{value: la.Value, start: la.Start, end: la.End})
			la, err = next()
			if err != nil {
				return nil, err
			}

		case ActionReduce:
			prod := t.Productions[action.Target]
			n := len(prod.RHS)
			base := len(valueStack) - n
			red := Reduction{Production: prod, Start: la.Start, End: la.Start}
			if n > 0 {
				red.Values = make([]any, n)
				for i, entry := range valueStack[base:] {
					red.Values[i] = entry.value
				}
				red.Start = valueStack[base].start
				red.End = valueStack[len(valueStack)-1].end
			}
			value, err := reduce(red)
			if err != nil {
				return nil, err
			}
			stateStack = stateStack[:len(stateStack)-n]
			valueStack = valueStack[:base]

			top := stateStack[len(stateStack)-1]
			target, ok := t.Rows[top].Gotos[prod.LHS]
			if !ok {
				return nil, fmt.Errorf("grammar: missing goto for %q in state %d", prod.LHS, top)
			}
			stateStack = append(stateStack, target)
			valueStack = append(valueStack, stackEntry{value: value, start: red.Start, end: red.End})

		case ActionAccept:
			if len(valueStack) == 0 {
				return nil, nil
			}
			return valueStack[len(valueStack)-1].value, nil
		}
	}
}
