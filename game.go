// Package gameforms represents finite games in extensive form (game trees
// with information sets) and in normal form (payoff tables), together with
// the pure strategies each player has in them.
//
// A Game is the sole mutator of its structure: nodes, information sets,
// actions and strategies are only created or destroyed as side effects of
// Game methods, which validate their arguments fully before changing
// anything. Games are not safe for concurrent mutation; any number of
// goroutines may read a Game (and evaluate payoffs) while no goroutine
// mutates it.
package gameforms

import (
	"expvar"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
)

var (
	gamesCreated    = expvar.NewInt("games_created")
	structuralEdits = expvar.NewInt("structural_edits")
	strategiesBuilt = expvar.NewInt("strategies_built")
)

// ChanceIndex is the index reported by the chance player of a tree game.
const ChanceIndex = -1

var lastGameID uint64

// Game is a finite game in either extensive form (a tree) or normal form
// (a table of outcomes indexed by pure strategy contingencies).
type Game struct {
	id       uint64
	title    string
	revision int64

	players  []*Player
	outcomes []*Outcome

	// Tree games only.
	chance *Player
	root   *Node
	// Strategies of tree games are derived lazily from the tree, at most
	// once per revision.
	mu                 sync.Mutex
	strategiesRevision int64

	// Table games only. table is indexed in mixed radix by strategy
	// numbers, with the first player varying fastest.
	dims  []int
	table []*Outcome
}

func newGame() *Game {
	gamesCreated.Add(1)
	return &Game{
		id: atomic.AddUint64(&lastGameID, 1),
	}
}

// NewTree creates an extensive-form game with the given players whose tree
// consists of a single terminal root node.
func NewTree(playerLabels []string) *Game {
	g := newGame()
	g.chance = &Player{game: g, index: ChanceIndex, label: "Chance"}
	for _, label := range playerLabels {
		g.addPlayer(label)
	}

	g.root = &Node{game: g}
	g.strategiesRevision = -1
	return g
}

// NewTable creates a normal-form game with one player per entry of dims,
// where player i has dims[i] strategies. All contingencies start without
// an outcome (every payoff is zero).
func NewTable(dims []int) (*Game, error) {
	if len(dims) == 0 {
		return nil, invalidf("table game must have at least one player")
	}

	size := 1
	for i, n := range dims {
		if n < 1 {
			return nil, invalidf("player %d must have at least one strategy, got %d", i, n)
		}
		size *= n
	}

	g := newGame()
	g.dims = append([]int(nil), dims...)
	g.table = make([]*Outcome, size)
	for _, n := range dims {
		p := g.addPlayer("")
		p.strategies = make([]*Strategy, n)
		for j := range p.strategies {
			p.strategies[j] = &Strategy{
				player: p,
				number: j,
				label:  strconv.Itoa(j + 1),
			}
		}
	}

	return g, nil
}

func (g *Game) addPlayer(label string) *Player {
	p := &Player{game: g, index: len(g.players), label: label}
	g.players = append(g.players, p)
	return p
}

// ID returns the identity of this Game, unique within the process.
func (g *Game) ID() uint64 {
	return g.id
}

// Title returns the game's title.
func (g *Game) Title() string {
	return g.title
}

// SetTitle sets the game's title.
func (g *Game) SetTitle(title string) {
	g.title = title
}

// IsTree returns whether this is an extensive-form game.
func (g *Game) IsTree() bool {
	return g.root != nil
}

// Revision is incremented by every structural change to the game.
// Strategies derived at an older revision can no longer be evaluated.
func (g *Game) Revision() int64 {
	return g.revision
}

func (g *Game) touch() {
	g.revision++
	structuralEdits.Add(1)
}

// NumPlayers returns the number of (non-chance) players.
func (g *Game) NumPlayers() int {
	return len(g.players)
}

// Players returns the (non-chance) players in index order.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// Player returns the player with the given index.
func (g *Game) Player(i int) *Player {
	return g.players[i]
}

// PlayerByLabel returns the first player with the given label.
func (g *Game) PlayerByLabel(label string) (*Player, bool) {
	for _, p := range g.players {
		if p.label == label {
			return p, true
		}
	}

	return nil, false
}

// Chance returns the chance player of a tree game, or nil for table games.
func (g *Game) Chance() *Player {
	return g.chance
}

// NewPlayer appends a new player to a tree game. Existing player indices
// are unchanged.
func (g *Game) NewPlayer(label string) (*Player, error) {
	if !g.IsTree() {
		return nil, undefinedf("cannot add a player to a table game")
	}

	p := g.addPlayer(label)
	g.touch()
	return p, nil
}

// Root returns the root node of a tree game, or nil for table games.
func (g *Game) Root() *Node {
	return g.root
}

// Nodes returns all nodes of the tree in pre-order.
func (g *Game) Nodes() []*Node {
	if g.root == nil {
		return nil
	}

	var result []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		result = append(result, n)
		for _, child := range n.children {
			visit(child)
		}
	}
	visit(g.root)
	return result
}

// InfoSets returns the information sets of all players (chance last),
// player-major, in each player's order.
func (g *Game) InfoSets() []*InfoSet {
	var result []*InfoSet
	for _, p := range g.players {
		result = append(result, p.infosets...)
	}
	if g.chance != nil {
		result = append(result, g.chance.infosets...)
	}
	return result
}

// NewOutcome creates an outcome with the given payoffs, indexed by player.
func (g *Game) NewOutcome(label string, payoffs ...float64) *Outcome {
	o := &Outcome{game: g, label: label}
	o.payoffs = append(o.payoffs, payoffs...)
	g.outcomes = append(g.outcomes, o)
	return o
}

// Outcomes returns the outcomes of the game in creation order.
func (g *Game) Outcomes() []*Outcome {
	return append([]*Outcome(nil), g.outcomes...)
}

// Strategies returns the pure strategies of all players, player-major.
func (g *Game) Strategies() []*Strategy {
	g.ensureStrategies()
	var result []*Strategy
	for _, p := range g.players {
		result = append(result, p.strategies...)
	}
	return result
}

// ensureStrategies derives the reduced pure strategies of every player if
// the tree changed since they were last derived.
func (g *Game) ensureStrategies() {
	if !g.IsTree() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.strategiesRevision == g.revision {
		return
	}

	for _, p := range g.players {
		p.strategies = reducedStrategies(p, g.revision)
		strategiesBuilt.Add(int64(len(p.strategies)))
	}
	g.strategiesRevision = g.revision
}

func (g *Game) ownsPlayer(p *Player) bool {
	return p != nil && p.game == g
}

func (g *Game) ownsNode(n *Node) bool {
	return n != nil && n.game == g && !n.deleted
}

func (g *Game) ownsInfoSet(is *InfoSet) bool {
	return is != nil && is.game == g && !is.deleted
}

func (g *Game) ownsOutcome(o *Outcome) bool {
	return o != nil && o.game == g
}

// String implements fmt.Stringer.
func (g *Game) String() string {
	kind := "tree"
	if !g.IsTree() {
		kind = fmt.Sprintf("table %v", g.dims)
	}
	return fmt.Sprintf("Game(%d, %q, %s, %d players)", g.id, g.title, kind, len(g.players))
}
