package cfrtree

import (
	"math/rand"
	"testing"

	"github.com/timpalpant/go-cfr"

	"github.com/timpalpant/gameforms"
	"github.com/timpalpant/gameforms/internal/fixtures"
)

func mustNew(t *testing.T, g *gameforms.Game) *Node {
	t.Helper()
	root, err := New(g, rand.New(rand.NewSource(123)))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestCount(t *testing.T) {
	testCases := []struct {
		name     string
		game     func() *gameforms.Game
		expected Counts
	}{
		{"basic_extensive", fixtures.BasicExtensive, Counts{Terminal: 8, Player: 7, InfoSets: 3}},
		{"two_player", fixtures.TwoPlayerImperfect, Counts{Terminal: 4, Player: 3, InfoSets: 2}},
		{"centipede", fixtures.Centipede, Counts{Terminal: 4, Player: 3, InfoSets: 3}},
		{"chance", fixtures.ChanceTree, Counts{Terminal: 4, Player: 2, Chance: 1, InfoSets: 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Count(mustNew(t, tc.game()))
			if got != tc.expected {
				t.Errorf("counted %+v, expected %+v", got, tc.expected)
			}
			if got.Total() != len(tc.game().Nodes()) {
				t.Errorf("counted %d nodes, game has %d", got.Total(), len(tc.game().Nodes()))
			}
		})
	}
}

func TestNew_Table(t *testing.T) {
	if _, err := New(fixtures.PrisonersDilemma(), nil); err == nil {
		t.Error("expected an error for a table game")
	}
}

func TestExpectedUtilityMatchesPayoff(t *testing.T) {
	g := fixtures.ChanceTree()
	p1, p2 := g.Player(0), g.Player(1)
	for _, s := range p1.Strategies() {
		c := gameforms.Contingency{s, p2.Strategy(0)}
		choose := func(node cfr.GameTreeNode) int {
			is := node.(*Node).GameNode().InfoSet()
			return c[is.Player().Index()].Action(is).Number()
		}

		for i, p := range g.Players() {
			expected, err := g.Payoff(c, p)
			if err != nil {
				t.Fatal(err)
			}
			got := ExpectedUtility(mustNew(t, g), i, choose)
			if got != expected {
				t.Errorf("utility of %v to %v = %v, expected %v", s, p, got, expected)
			}
		}
	}
}

func TestNodeAccessors(t *testing.T) {
	g := fixtures.ChanceTree()
	root := mustNew(t, g)
	if root.Type() != cfr.ChanceNodeType || root.Player() != gameforms.ChanceIndex {
		t.Errorf("root is %v node of player %d", root.Type(), root.Player())
	}
	if root.GetChildProbability(0) != 0.25 || root.GetChildProbability(1) != 0.75 {
		t.Errorf("unexpected chance probabilities")
	}

	child := root.GetChild(1)
	if child.Parent() != root || child.Type() != cfr.PlayerNodeType || child.Player() != 0 {
		t.Errorf("unexpected child %v", child)
	}

	is := child.InfoSet(0)
	buf, err := is.(*InfoSet).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var reloaded InfoSet
	if err := reloaded.UnmarshalBinary(buf); err != nil {
		t.Fatal(err)
	}
	if reloaded.Key() != is.Key() || reloaded.NumActions != 2 {
		t.Errorf("reloaded infoset %+v, expected key %s", reloaded, is.Key())
	}

	leaf := child.GetChild(1)
	if leaf.Type() != cfr.TerminalNodeType || leaf.Utility(0) != 4 || leaf.Utility(1) != -2 {
		t.Errorf("unexpected leaf utilities %v, %v", leaf.Utility(0), leaf.Utility(1))
	}

	sampled, p := root.SampleChild()
	if sampled.Parent() != root || (p != 0.25 && p != 0.75) {
		t.Errorf("sampled %v with probability %v", sampled, p)
	}
}
