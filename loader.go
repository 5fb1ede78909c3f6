package gameforms

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Loader produces a fully formed game, for example by parsing a file.
type Loader interface {
	LoadGame() (*Game, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func() (*Game, error)

// LoadGame implements Loader.
func (f LoaderFunc) LoadGame() (*Game, error) {
	return f()
}

// ReadGame loads a game and checks that it satisfies every structural
// invariant before handing it out.
func ReadGame(l Loader) (*Game, error) {
	g, err := l.LoadGame()
	if err != nil {
		return nil, errors.Wrap(err, "loading game")
	}
	if g == nil {
		return nil, invalidf("loader returned no game")
	}

	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "loaded game is invalid")
	}

	glog.V(1).Infof("Loaded %v", g)
	return g, nil
}

// Validate checks the structural invariants of the game: every reachable
// entity belongs to this game, every information set has at least one
// action, members have one child per action, parent links and depths are
// consistent, and chance probabilities sum to one.
func (g *Game) Validate() error {
	for _, o := range g.outcomes {
		if o.game != g {
			return mismatchf("outcome %v belongs to another game", o)
		}
	}

	if !g.IsTree() {
		for i, o := range g.table {
			if o != nil && !g.ownsOutcome(o) {
				return mismatchf("table entry %d holds outcome %v of another game", i, o)
			}
		}
		return nil
	}

	for _, p := range append(g.Players(), g.chance) {
		if p.game != g {
			return mismatchf("player %v belongs to another game", p)
		}

		for _, is := range p.infosets {
			if err := g.validateInfoSet(p, is); err != nil {
				return err
			}
		}
	}

	if g.root.parent != nil || g.root.depth != 0 {
		return invalidf("root node has a parent")
	}
	return g.validateNode(g.root)
}

func (g *Game) validateInfoSet(p *Player, is *InfoSet) error {
	if !g.ownsInfoSet(is) || is.player != p {
		return mismatchf("%v is not owned by %v", is, p)
	}
	if len(is.actions) == 0 {
		return invalidf("%v has no actions", is)
	}

	for _, a := range is.actions {
		if a.infoset != is {
			return mismatchf("%v belongs to another information set", a)
		}
	}

	for _, m := range is.members {
		if !g.ownsNode(m) || m.infoset != is {
			return mismatchf("member %v of %v is not in the tree", m, is)
		}
	}

	if p.IsChance() {
		total := 0.0
		for _, a := range is.actions {
			if a.prob < 0 {
				return invalidf("%v has negative probability", a)
			}
			total += a.prob
		}
		if math.Abs(total-1) > probTolerance {
			return invalidf("probabilities of %v sum to %v", is, total)
		}
	}

	return nil
}

func (g *Game) validateNode(n *Node) error {
	if !g.ownsNode(n) {
		return mismatchf("%v is not part of %v", n, g)
	}
	if n.outcome != nil && !g.ownsOutcome(n.outcome) {
		return mismatchf("%v has outcome %v of another game", n, n.outcome)
	}

	if n.infoset == nil {
		if len(n.children) != 0 {
			return invalidf("%v has children but no information set", n)
		}
		return nil
	}

	if !g.ownsInfoSet(n.infoset) {
		return mismatchf("%v has information set %v of another game", n, n.infoset)
	}
	isMember := false
	for _, m := range n.infoset.members {
		isMember = isMember || m == n
	}
	if !isMember {
		return invalidf("%v is missing from the members of %v", n, n.infoset)
	}
	if len(n.children) != len(n.infoset.actions) {
		return invalidf("%v has %d children for %d actions",
			n, len(n.children), len(n.infoset.actions))
	}

	for _, child := range n.children {
		if child.parent != n || child.depth != n.depth+1 {
			return invalidf("%v has an inconsistent parent link", child)
		}
		if err := g.validateNode(child); err != nil {
			return err
		}
	}

	return nil
}
