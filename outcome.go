package gameforms

import (
	"fmt"
)

// Outcome is a vector of payoffs, one per player. Outcomes may be attached
// to any node of a tree game (payoffs accumulate along the path of play)
// or to contingencies of a table game.
type Outcome struct {
	game    *Game
	label   string
	payoffs []float64
}

func (o *Outcome) Game() *Game {
	return o.game
}

func (o *Outcome) Label() string {
	return o.label
}

func (o *Outcome) SetLabel(label string) {
	o.label = label
}

// Payoff returns the payoff to the given player. Players without an
// explicit payoff, and players of other games, receive zero.
func (o *Outcome) Payoff(p *Player) float64 {
	if o == nil || p == nil || p.game != o.game || p.index < 0 || p.index >= len(o.payoffs) {
		return 0
	}
	return o.payoffs[p.index]
}

// SetPayoff sets the payoff to the given player.
func (o *Outcome) SetPayoff(p *Player, value float64) error {
	if p == nil || p.game != o.game {
		return mismatchf("player %v is not a player of the outcome's game", p)
	}
	if p.IsChance() {
		return invalidf("chance player has no payoffs")
	}

	for len(o.payoffs) <= p.index {
		o.payoffs = append(o.payoffs, 0)
	}
	o.payoffs[p.index] = value
	return nil
}

// String implements fmt.Stringer.
func (o *Outcome) String() string {
	return fmt.Sprintf("Outcome(%q, %v)", o.label, o.payoffs)
}
