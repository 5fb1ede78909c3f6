// Package fixtures builds small reference games used by tests and commands.
package fixtures

import (
	"fmt"
	"sort"

	"github.com/timpalpant/gameforms"
)

// Loaders maps the name of every reference game to a Loader for it.
var Loaders = map[string]gameforms.Loader{
	"basic_extensive":   gameforms.LoaderFunc(wrap(BasicExtensive)),
	"two_player":        gameforms.LoaderFunc(wrap(TwoPlayerImperfect)),
	"centipede":         gameforms.LoaderFunc(wrap(Centipede)),
	"chance":            gameforms.LoaderFunc(wrap(ChanceTree)),
	"mixed_strategy":    gameforms.LoaderFunc(wrap(MixedStrategy)),
	"prisoners_dilemma": gameforms.LoaderFunc(wrap(PrisonersDilemma)),
}

// Names returns the names of all reference games, sorted.
func Names() []string {
	names := make([]string, 0, len(Loaders))
	for name := range Loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func wrap(build func() *gameforms.Game) func() (*gameforms.Game, error) {
	return func() (*gameforms.Game, error) {
		return build(), nil
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustMove(g *gameforms.Game, node *gameforms.Node, player *gameforms.Player, labels ...string) *gameforms.InfoSet {
	is, err := g.AppendMove(node, player, len(labels))
	must(err)
	for i, label := range labels {
		is.Action(i).SetLabel(label)
	}
	return is
}

func mustOutcomes(g *gameforms.Game, nodes []*gameforms.Node, payoffs [][]float64) {
	if len(nodes) != len(payoffs) {
		panic(fmt.Errorf("%d nodes for %d payoff vectors", len(nodes), len(payoffs)))
	}

	for i, node := range nodes {
		o := g.NewOutcome(fmt.Sprintf("Outcome %d", i+1), payoffs[i]...)
		must(g.SetOutcome(node, o))
	}
}

func terminals(g *gameforms.Game) []*gameforms.Node {
	var result []*gameforms.Node
	for _, node := range g.Nodes() {
		if node.IsTerminal() {
			result = append(result, node)
		}
	}
	return result
}

// BasicExtensive is a three-player game in which each player moves once,
// in turn, without observing the earlier moves: player 1 at the root,
// player 2 in one information set spanning both of the root's children,
// and player 3 in one information set spanning all four grandchildren.
func BasicExtensive() *gameforms.Game {
	g := gameforms.NewTree([]string{"Player 1", "Player 2", "Player 3"})
	g.SetTitle("Basic extensive game")
	root := g.Root()
	mustMove(g, root, g.Player(0), "U1", "D1")
	is2 := mustMove(g, root.Child(0), g.Player(1), "U2", "D2")
	must(g.AppendMoveAt(root.Child(1), is2))
	is3 := mustMove(g, root.Child(0).Child(0), g.Player(2), "U3", "D3")
	for _, node := range []*gameforms.Node{root.Child(0).Child(1), root.Child(1).Child(0), root.Child(1).Child(1)} {
		must(g.AppendMoveAt(node, is3))
	}

	mustOutcomes(g, terminals(g), [][]float64{
		{9, 8, 2}, {0, 0, 0}, {0, 0, 0}, {3, 4, 6},
		{0, 0, 0}, {4, 3, 2}, {3, 4, 3}, {0, 0, 0},
	})
	return g
}

// TwoPlayerImperfect is a two-player game where player 1 moves at the root
// and player 2 moves without observing player 1's choice.
func TwoPlayerImperfect() *gameforms.Game {
	g := gameforms.NewTree([]string{"Row", "Column"})
	g.SetTitle("Two player imperfect information game")
	root := g.Root()
	mustMove(g, root, g.Player(0), "Up", "Down")
	is := mustMove(g, root.Child(0), g.Player(1), "Left", "Right")
	must(g.AppendMoveAt(root.Child(1), is))
	mustOutcomes(g, terminals(g), [][]float64{
		{3, 1}, {0, 0},
		{1, 0}, {2, 3},
	})
	return g
}

// Centipede is a three-stage centipede game: players alternate between
// taking (ending the game) and passing, player 1 moving twice.
func Centipede() *gameforms.Game {
	g := gameforms.NewTree([]string{"Player 1", "Player 2"})
	g.SetTitle("Centipede")
	node := g.Root()
	players := []*gameforms.Player{g.Player(0), g.Player(1), g.Player(0)}
	takes := [][]float64{{1, 0}, {0, 2}, {3, 1}}
	for i, p := range players {
		mustMove(g, node, p, "Take", "Pass")
		o := g.NewOutcome(fmt.Sprintf("Take %d", i+1), takes[i]...)
		must(g.SetOutcome(node.Child(0), o))
		node = node.Child(1)
	}

	must(g.SetOutcome(node, g.NewOutcome("Pass", 2, 4)))
	return g
}

// ChanceTree starts with a chance move (Low with probability 1/4, High
// with 3/4) observed by player 1, who then chooses Safe or Risky.
func ChanceTree() *gameforms.Game {
	g := gameforms.NewTree([]string{"Player 1", "Player 2"})
	g.SetTitle("Chance tree")
	root := g.Root()
	chance := mustMove(g, root, g.Chance(), "Low", "High")
	must(g.SetChanceProbs(chance, []float64{0.25, 0.75}))
	mustMove(g, root.Child(0), g.Player(0), "Safe", "Risky")
	mustMove(g, root.Child(1), g.Player(0), "Safe", "Risky")
	mustOutcomes(g, terminals(g), [][]float64{
		{1, 0}, {-4, 2},
		{1, 0}, {4, -2},
	})
	return g
}

// MixedStrategy is a 3x2 table game in which iterated elimination of
// dominated strategies leaves only the first strategy of each player:
// row 3 is dominated by row 2, then column 2 by column 1, then row 2 by
// row 1.
func MixedStrategy() *gameforms.Game {
	return mustTable("Three by two game", []string{"Row", "Column"}, []int{3, 2}, [][]float64{
		// Rows vary fastest: (r1,c1), (r2,c1), (r3,c1), (r1,c2), ...
		{4, 2}, {3, 1}, {1, 0},
		{0, 1}, {2, 0}, {1, 3},
	})
}

// PrisonersDilemma is the two-player prisoner's dilemma; strategy 1 is
// Cooperate and strategy 2 is Defect.
func PrisonersDilemma() *gameforms.Game {
	g := mustTable("Prisoner's dilemma", []string{"Alice", "Bob"}, []int{2, 2}, [][]float64{
		{3, 3}, {5, 0},
		{0, 5}, {1, 1},
	})
	return g
}

// mustTable builds a table game whose payoffs are listed in table order,
// the first player's strategy varying fastest.
func mustTable(title string, players []string, dims []int, payoffs [][]float64) *gameforms.Game {
	g, err := gameforms.NewTable(dims)
	must(err)
	g.SetTitle(title)
	for i, label := range players {
		g.Player(i).SetLabel(label)
	}

	i := 0
	forEachContingency(g, func(c gameforms.Contingency) {
		o := g.NewOutcome(fmt.Sprintf("Outcome %d", i+1), payoffs[i]...)
		must(g.SetTableOutcome(c, o))
		i++
	})
	return g
}

func forEachContingency(g *gameforms.Game, cb func(c gameforms.Contingency)) {
	players := g.Players()
	idx := make([]int, len(players))
	for {
		c := make(gameforms.Contingency, len(players))
		for i, p := range players {
			c[i] = p.Strategy(idx[i])
		}
		cb(c)

		i := 0
		for ; i < len(players); i++ {
			idx[i]++
			if idx[i] < players[i].NumStrategies() {
				break
			}
			idx[i] = 0
		}
		if i == len(players) {
			return
		}
	}
}
