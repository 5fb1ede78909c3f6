package gameforms

import (
	"fmt"
)

// Player is a participant in a Game. Its index in the game's player
// sequence is its identity; the label is mutable metadata.
type Player struct {
	game  *Game
	index int
	label string

	infosets   []*InfoSet
	strategies []*Strategy
}

// Game returns the game this player belongs to.
func (p *Player) Game() *Game {
	return p.game
}

// Index returns the position of the player in the game, or ChanceIndex
// for the chance player.
func (p *Player) Index() int {
	return p.index
}

// IsChance returns whether this is the chance player of a tree game.
func (p *Player) IsChance() bool {
	return p.index == ChanceIndex
}

func (p *Player) Label() string {
	return p.label
}

func (p *Player) SetLabel(label string) {
	p.label = label
}

// InfoSets returns the information sets at which this player moves.
func (p *Player) InfoSets() []*InfoSet {
	return append([]*InfoSet(nil), p.infosets...)
}

// InfoSet returns the player's i'th information set.
func (p *Player) InfoSet(i int) *InfoSet {
	return p.infosets[i]
}

func (p *Player) NumInfoSets() int {
	return len(p.infosets)
}

// Strategies returns the player's pure strategies. For tree games these are
// the reduced pure strategies of the current tree.
func (p *Player) Strategies() []*Strategy {
	p.game.ensureStrategies()
	return append([]*Strategy(nil), p.strategies...)
}

// Strategy returns the player's i'th pure strategy.
func (p *Player) Strategy(i int) *Strategy {
	p.game.ensureStrategies()
	return p.strategies[i]
}

func (p *Player) NumStrategies() int {
	p.game.ensureStrategies()
	return len(p.strategies)
}

func (p *Player) removeInfoSet(is *InfoSet) {
	for i, other := range p.infosets {
		if other == is {
			p.infosets = append(p.infosets[:i], p.infosets[i+1:]...)
			return
		}
	}
}

// String implements fmt.Stringer.
func (p *Player) String() string {
	if p.IsChance() {
		return "Player(chance)"
	}
	return fmt.Sprintf("Player(%d, %q)", p.index, p.label)
}
