package support

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/gameforms"
)

// Restriction is a view of a game in which each player's strategy space is
// the set of strategies retained in a Profile.
type Restriction struct {
	profile *Profile
}

// Restrict returns the restriction of the profile's game to the profile.
func (p *Profile) Restrict() *Restriction {
	return &Restriction{profile: p}
}

func (r *Restriction) Game() *gameforms.Game {
	return r.profile.game
}

// Profile returns the profile this restriction was built from.
func (r *Restriction) Profile() *Profile {
	return r.profile
}

func (r *Restriction) Players() []*gameforms.Player {
	return r.profile.game.Players()
}

// Strategies returns the strategies of every player in the restriction.
func (r *Restriction) Strategies() []*gameforms.Strategy {
	return r.profile.Strategies()
}

// PlayerStrategies returns the strategies of the player in the restriction.
func (r *Restriction) PlayerStrategies(p *gameforms.Player) []*gameforms.Strategy {
	return r.profile.PlayerStrategies(p)
}

// NumContingencies returns the number of pure strategy profiles of the
// restriction.
func (r *Restriction) NumContingencies() int {
	n := 1
	for _, set := range r.profile.strategies {
		n *= len(set)
	}
	return n
}

// Contingencies calls cb with every pure strategy profile of the
// restriction, the first player varying fastest, until cb returns false.
// The contingency passed to cb is reused between calls.
func (r *Restriction) Contingencies(cb func(c gameforms.Contingency) bool) {
	c := allocContingency(len(r.profile.strategies))
	defer freeContingency(c)
	iterate(r.profile.strategies, c, -1, cb)
}

// Payoff returns the payoff to the player of a contingency of the restriction.
func (r *Restriction) Payoff(c gameforms.Contingency, p *gameforms.Player) (float64, error) {
	for _, s := range c {
		if !r.profile.Contains(s) {
			return 0, errors.Wrapf(gameforms.ErrInvalidValue, "strategy %v is not in the restriction", s)
		}
	}

	return r.profile.game.Payoff(c, p)
}

// iterate enumerates the contingencies over sets in place in c, leaving
// c[skip] untouched (skip < 0 enumerates every player). It returns false
// if cb stopped the enumeration.
func iterate(sets [][]*gameforms.Strategy, c gameforms.Contingency, skip int, cb func(c gameforms.Contingency) bool) bool {
	idx := make([]int, len(sets))
	for i, set := range sets {
		if i != skip {
			c[i] = set[0]
		}
	}

	for {
		if !cb(c) {
			return false
		}

		i := 0
		for ; i < len(sets); i++ {
			if i == skip {
				continue
			}

			idx[i]++
			if idx[i] < len(sets[i]) {
				c[i] = sets[i][idx[i]]
				break
			}
			idx[i] = 0
			c[i] = sets[i][0]
		}

		if i == len(sets) {
			return true
		}
	}
}
