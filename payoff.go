package gameforms

// Contingency is a pure strategy profile: one strategy per player, in
// player order.
type Contingency []*Strategy

func (g *Game) checkContingency(c Contingency) error {
	if len(c) != len(g.players) {
		return invalidf("contingency has %d strategies for %d players", len(c), len(g.players))
	}

	for i, s := range c {
		if s == nil || s.player != g.players[i] {
			return mismatchf("strategy %v is not a strategy of %v", s, g.players[i])
		}
		if !s.isCurrent() {
			return mismatchf("strategy %v was derived from revision %d, game is at %d",
				s, s.revision, g.revision)
		}
	}

	return nil
}

// Payoff returns the payoff to the player when every player follows its
// strategy in the contingency. In tree games chance moves are averaged
// according to their probabilities and outcomes at every node along the
// path of play are summed.
func (g *Game) Payoff(c Contingency, player *Player) (float64, error) {
	if !g.ownsPlayer(player) || player.IsChance() {
		return 0, mismatchf("player %v is not a player of %v", player, g)
	}

	if err := g.checkContingency(c); err != nil {
		return 0, err
	}

	if !g.IsTree() {
		return g.table[g.tableIndex(c)].Payoff(player), nil
	}

	return g.treePayoff(g.root, c, player)
}

func (g *Game) treePayoff(node *Node, c Contingency, player *Player) (float64, error) {
	value := node.outcome.Payoff(player)
	if node.IsTerminal() {
		return value, nil
	}

	is := node.infoset
	if is.IsChance() {
		for i, a := range is.actions {
			if a.prob == 0 {
				continue
			}

			v, err := g.treePayoff(node.children[i], c, player)
			if err != nil {
				return 0, err
			}
			value += a.prob * v
		}
		return value, nil
	}

	a := c[is.player.index].actions[is]
	if a == nil {
		return 0, invalidf("strategy %v prescribes no action at reached %v",
			c[is.player.index], is)
	}

	v, err := g.treePayoff(node.children[is.actionIndex(a)], c, player)
	if err != nil {
		return 0, err
	}
	return value + v, nil
}

func (g *Game) tableIndex(c Contingency) int {
	index := 0
	stride := 1
	for i, s := range c {
		index += s.number * stride
		stride *= g.dims[i]
	}
	return index
}

// TableOutcome returns the outcome of the contingency in a table game.
func (g *Game) TableOutcome(c Contingency) (*Outcome, error) {
	if g.IsTree() {
		return nil, undefinedf("operation requires a table game")
	}
	if err := g.checkContingency(c); err != nil {
		return nil, err
	}

	return g.table[g.tableIndex(c)], nil
}

// SetTableOutcome sets the outcome (or none, if nil) of the contingency in
// a table game.
func (g *Game) SetTableOutcome(c Contingency, o *Outcome) error {
	if g.IsTree() {
		return undefinedf("operation requires a table game")
	}
	if err := g.checkContingency(c); err != nil {
		return err
	}
	if o != nil && !g.ownsOutcome(o) {
		return mismatchf("outcome %v does not belong to %v", o, g)
	}

	g.table[g.tableIndex(c)] = o
	return nil
}
