package grammar

import "testing"

func TestReductionExtents(t *testing.T) {
	g := &Grammar{
		Start: "S",
		Productions: []Production{
			{LHS: "S", RHS: []string{"A", "x"}},
			{LHS: "A", RHS: nil},
			{LHS: "A", RHS: []string{"a"}},
		},
	}
	table, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	type extent struct {
		lhs        string
		start, end int
	}
	run := func(toks []Lexeme) []extent {
		t.Helper()
		i := 0
		next := func() (Lexeme, error) {
			if i >= len(toks) {
				last := 0
				if len(toks) > 0 {
					last = toks[len(toks)-1].End
				}
				return Lexeme{Terminal: EOFSymbol, Start: last, End: last}, nil
			}
			lex := toks[i]
			i++
			return lex, nil
		}
		var got []extent
		reduce := func(r Reduction) (any, error) {
			got = append(got, extent{lhs: r.Production.LHS, start: r.Start, end: r.End})
			return nil, nil
		}
		if _, err := table.Parse(next, reduce); err != nil {
			t.Fatalf("Parse: %v", err)
		}
		return got
	}

	// An empty production reduces with a degenerate extent at the
	// lookahead; the parent's extent covers only real input.
	got := run([]Lexeme{{Terminal: "x", Start: 3, End: 4}})
	want := []extent{{"A", 3, 3}, {"S", 3, 4}}
	if len(got) != len(want) {
		t.Fatalf("reductions %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reduction %d = %v, want %v", i, got[i], want[i])
		}
	}

	got = run([]Lexeme{{Terminal: "a", Start: 0, End: 1}, {Terminal: "x", Start: 2, End: 3}})
	want = []extent{{"A", 0, 1}, {"S", 0, 3}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reduction %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	g := &Grammar{
		Start: "S",
		Productions: []Production{
			{LHS: "S", RHS: nil},
			{LHS: "S", RHS: []string{"s"}},
		},
	}
	table, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	next := func() (Lexeme, error) { return Lexeme{Terminal: EOFSymbol}, nil }
	result, err := table.Parse(next, func(r Reduction) (any, error) { return "empty", nil })
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result != "empty" {
		t.Fatalf("result %v, want empty", result)
	}
}
