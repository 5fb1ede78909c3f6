package gameforms_test

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/gameforms"
	"github.com/timpalpant/gameforms/internal/fixtures"
)

func labels(strategies []*gameforms.Strategy) []string {
	result := make([]string, len(strategies))
	for i, s := range strategies {
		result[i] = s.Label()
	}
	return result
}

func TestReducedStrategies(t *testing.T) {
	testCases := []struct {
		name     string
		game     func() *gameforms.Game
		expected [][]string
	}{
		{"two_player", fixtures.TwoPlayerImperfect, [][]string{{"1", "2"}, {"1", "2"}}},
		{"centipede", fixtures.Centipede, [][]string{{"1*", "21", "22"}, {"1", "2"}}},
		{"chance", fixtures.ChanceTree, [][]string{{"11", "12", "21", "22"}, {"1"}}},
		{"basic_extensive", fixtures.BasicExtensive, [][]string{{"1", "2"}, {"1", "2"}, {"1", "2"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.game()
			for i, p := range g.Players() {
				got := labels(p.Strategies())
				if !reflect.DeepEqual(got, tc.expected[i]) {
					t.Errorf("%v has strategies %v, expected %v", p, got, tc.expected[i])
				}
				for j, s := range p.Strategies() {
					if s.Number() != j || s.Player() != p {
						t.Errorf("%v has number %d, expected %d", s, s.Number(), j)
					}
				}
			}
		})
	}
}

func TestReducedStrategies_Actions(t *testing.T) {
	g := fixtures.Centipede()
	p1 := g.Player(0)
	first, last := p1.InfoSet(0), p1.InfoSet(1)

	take := p1.Strategy(0)
	if take.Action(first) != first.Action(0) {
		t.Errorf("%v plays %v at %v", take, take.Action(first), first)
	}
	if take.Action(last) != nil {
		t.Errorf("%v should not prescribe an action at unreachable %v", take, last)
	}

	passTake := p1.Strategy(1)
	if passTake.Action(first) != first.Action(1) || passTake.Action(last) != last.Action(0) {
		t.Errorf("unexpected actions of %v", passTake)
	}
}

func TestStrategiesFollowEdits(t *testing.T) {
	g := fixtures.TwoPlayerImperfect()
	stale := g.Player(1).Strategy(0)
	is := g.Player(1).InfoSet(0)
	if _, err := g.AddAction(is, nil); err != nil {
		t.Fatal(err)
	}

	if n := g.Player(1).NumStrategies(); n != 3 {
		t.Errorf("player has %d strategies after AddAction, expected %d", n, 3)
	}
	if n := len(g.Strategies()); n != 5 {
		t.Errorf("game has %d strategies, expected %d", n, 5)
	}

	c := gameforms.Contingency{g.Player(0).Strategy(0), stale}
	_, err := g.Payoff(c, g.Player(0))
	if errors.Cause(err) != gameforms.ErrMismatch {
		t.Errorf("payoff with a stale strategy returned %v, expected mismatch", err)
	}
}

func TestTreePayoffs(t *testing.T) {
	g := fixtures.TwoPlayerImperfect()
	row, col := g.Player(0), g.Player(1)
	expected := map[[2]int][2]float64{
		{0, 0}: {3, 1},
		{0, 1}: {0, 0},
		{1, 0}: {1, 0},
		{1, 1}: {2, 3},
	}

	for idx, want := range expected {
		c := gameforms.Contingency{row.Strategy(idx[0]), col.Strategy(idx[1])}
		for i, p := range g.Players() {
			got, err := g.Payoff(c, p)
			if err != nil {
				t.Fatal(err)
			}
			if got != want[i] {
				t.Errorf("payoff to %v at %v = %v, expected %v", p, idx, got, want[i])
			}
		}
	}
}

func TestChancePayoffs(t *testing.T) {
	g := fixtures.ChanceTree()
	p1, p2 := g.Player(0), g.Player(1)
	expected := map[string][2]float64{
		"11": {1, 0},
		"12": {3.25, -1.5},
		"21": {-0.25, 0.5},
		"22": {2, -1},
	}

	for _, s := range p1.Strategies() {
		c := gameforms.Contingency{s, p2.Strategy(0)}
		for i, p := range []*gameforms.Player{p1, p2} {
			got, err := g.Payoff(c, p)
			if err != nil {
				t.Fatal(err)
			}
			if want := expected[s.Label()][i]; got != want {
				t.Errorf("payoff to %v of %v = %v, expected %v", p, s, got, want)
			}
		}
	}
}

func TestTablePayoffs(t *testing.T) {
	g := fixtures.PrisonersDilemma()
	alice, bob := g.Player(0), g.Player(1)
	c := gameforms.Contingency{alice.Strategy(1), bob.Strategy(0)}

	for p, want := range map[*gameforms.Player]float64{alice: 5, bob: 0} {
		got, err := g.Payoff(c, p)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("payoff to %v = %v, expected %v", p, got, want)
		}
	}

	o, err := g.TableOutcome(c)
	if err != nil {
		t.Fatal(err)
	}
	if o.Payoff(alice) != 5 {
		t.Errorf("table outcome %v", o)
	}
}

func TestPayoff_Invalid(t *testing.T) {
	g := fixtures.PrisonersDilemma()
	other := fixtures.PrisonersDilemma()
	alice := g.Player(0)

	testCases := []struct {
		name   string
		c      gameforms.Contingency
		player *gameforms.Player
		kind   error
	}{
		{"short", gameforms.Contingency{alice.Strategy(0)}, alice, gameforms.ErrInvalidValue},
		{"other_game", gameforms.Contingency{alice.Strategy(0), other.Player(1).Strategy(0)}, alice, gameforms.ErrMismatch},
		{"swapped", gameforms.Contingency{g.Player(1).Strategy(0), alice.Strategy(0)}, alice, gameforms.ErrMismatch},
		{"other_player", gameforms.Contingency{alice.Strategy(0), g.Player(1).Strategy(0)}, other.Player(0), gameforms.ErrMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Payoff(tc.c, tc.player)
			if errors.Cause(err) != tc.kind {
				t.Errorf("Payoff returned %v, expected %v", err, tc.kind)
			}
		})
	}
}

func BenchmarkReducedStrategies(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := fixtures.BasicExtensive()
		_ = g.Strategies()
	}
}
