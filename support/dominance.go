package support

import (
	"expvar"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/gameforms"
)

var (
	roundsRun            = expvar.NewInt("dominance/rounds")
	strategiesEliminated = expvar.NewInt("dominance/eliminated")
)

// Dominates returns whether strategy s dominates strategy t of the same
// player in the profile: s does at least as well as t against every
// combination of the opponents' retained strategies, and strictly better
// against at least one. If strict is set s must do strictly better against
// every combination.
func Dominates(p *Profile, s, t *gameforms.Strategy, strict bool) (bool, error) {
	if err := checkCurrent(p); err != nil {
		return false, err
	}
	for _, x := range []*gameforms.Strategy{s, t} {
		if !belongsTo(p.game, x) {
			return false, errors.Wrapf(gameforms.ErrMismatch, "strategy %v is not a strategy of %v", x, p.game)
		}
		if !p.Contains(x) {
			return false, errors.Wrapf(gameforms.ErrInvalidValue, "strategy %v is not in the profile", x)
		}
	}
	if s.Player() != t.Player() {
		return false, errors.Wrapf(gameforms.ErrMismatch, "strategies %v and %v belong to different players", s, t)
	}
	if s == t {
		return false, nil
	}

	u, nOpp, err := payoffMatrix(p, s.Player(), []*gameforms.Strategy{s, t})
	if err != nil {
		return false, err
	}
	defer freeFloatSlice(u)

	return dominates(u[:nOpp], u[nOpp:], strict), nil
}

// IsDominated returns whether some other retained strategy of the same
// player dominates t in the profile.
func IsDominated(p *Profile, t *gameforms.Strategy, strict bool) (bool, error) {
	if err := checkCurrent(p); err != nil {
		return false, err
	}
	if !belongsTo(p.game, t) {
		return false, errors.Wrapf(gameforms.ErrMismatch, "strategy %v is not a strategy of %v", t, p.game)
	}
	if !p.Contains(t) {
		return false, errors.Wrapf(gameforms.ErrInvalidValue, "strategy %v is not in the profile", t)
	}

	dominated, err := dominatedStrategies(p, t.Player(), strict)
	if err != nil {
		return false, err
	}
	return dominated[t], nil
}

// UndominatedStrategiesSolve performs one round of elimination of
// dominated strategies: every strategy dominated in p (weakly, or strictly
// if strict is set) is removed, for all players simultaneously.
//
// A round that removes nothing returns a profile Equal to p. To reach the
// fixed point, call it again on its result until that happens.
func UndominatedStrategiesSolve(p *Profile, strict bool) (*Profile, error) {
	return UndominatedStrategiesSolvePlayers(p, strict, p.game.Players())
}

// UndominatedStrategiesSolvePlayers is like UndominatedStrategiesSolve, but
// only eliminates strategies of the given players.
func UndominatedStrategiesSolvePlayers(p *Profile, strict bool, players []*gameforms.Player) (*Profile, error) {
	if err := checkCurrent(p); err != nil {
		return nil, err
	}

	marked := make(map[*gameforms.Strategy]bool)
	for _, player := range players {
		if _, ok := p.playerSet(player); !ok {
			return nil, errors.Wrapf(gameforms.ErrMismatch, "player %v has no strategies in %v", player, p)
		}

		dominated, err := dominatedStrategies(p, player, strict)
		if err != nil {
			return nil, err
		}
		for s := range dominated {
			marked[s] = true
		}
	}

	roundsRun.Add(1)
	if len(marked) == 0 {
		glog.V(1).Infof("No dominated strategies in %v", p)
		return p, nil
	}

	sets := make([][]*gameforms.Strategy, len(p.strategies))
	for i, set := range p.strategies {
		sets[i] = filter(set, func(s *gameforms.Strategy) bool {
			if marked[s] {
				glog.V(2).Infof("Eliminating dominated strategy %v", s)
				return false
			}
			return true
		})
	}

	result, err := build(p.game, p.revision, sets)
	if err != nil {
		// Dominance is acyclic, so some strategy of every player survives.
		return nil, errors.Wrap(err, "elimination removed every strategy of a player")
	}

	strategiesEliminated.Add(int64(len(marked)))
	glog.V(1).Infof("Eliminated %d dominated strategies: %v -> %v", len(marked), p, result)
	return result, nil
}

// checkCurrent rejects profiles built before the last structural change
// to their game, whose strategies can no longer be evaluated.
func checkCurrent(p *Profile) error {
	if p.revision != p.game.Revision() {
		return errors.Wrapf(gameforms.ErrMismatch, "profile %v was built at revision %d, %v is at %d",
			p, p.revision, p.game, p.game.Revision())
	}
	return nil
}

// dominatedStrategies returns the retained strategies of the player that
// are dominated by another retained strategy of the player in p.
func dominatedStrategies(p *Profile, player *gameforms.Player, strict bool) (map[*gameforms.Strategy]bool, error) {
	set := p.mustPlayerSet(player)
	result := make(map[*gameforms.Strategy]bool)
	if len(set) < 2 {
		return result, nil
	}

	u, nOpp, err := payoffMatrix(p, player, set)
	if err != nil {
		return nil, err
	}
	defer freeFloatSlice(u)

	for k, t := range set {
		ut := u[k*nOpp : (k+1)*nOpp]
		for j := range set {
			if j != k && dominates(u[j*nOpp:(j+1)*nOpp], ut, strict) {
				result[t] = true
				break
			}
		}
	}

	return result, nil
}

// payoffMatrix evaluates the payoff to player of each of the given
// strategies against every combination of opponents' strategies in p.
// Row k of the result (length nOpp) holds the payoffs of strategies[k].
// The caller must free the returned slice.
func payoffMatrix(p *Profile, player *gameforms.Player, strategies []*gameforms.Strategy) ([]float64, int, error) {
	pi := player.Index()
	nOpp := 1
	for i, set := range p.strategies {
		if i != pi {
			nOpp *= len(set)
		}
	}

	u := allocFloatSlice(len(strategies) * nOpp)
	c := allocContingency(len(p.strategies))
	defer freeContingency(c)

	var err error
	col := 0
	iterate(p.strategies, c, pi, func(c gameforms.Contingency) bool {
		for k, s := range strategies {
			c[pi] = s
			var v float64
			if v, err = p.game.Payoff(c, player); err != nil {
				return false
			}
			u[k*nOpp+col] = v
		}
		col++
		return true
	})

	if err != nil {
		freeFloatSlice(u)
		return nil, 0, errors.Wrap(err, "evaluating payoffs")
	}
	return u, nOpp, nil
}

// dominates compares two payoff rows against the same opponent contingencies.
func dominates(us, ut []float64, strict bool) bool {
	better := false
	for i := range us {
		switch {
		case us[i] < ut[i]:
			return false
		case us[i] == ut[i]:
			if strict {
				return false
			}
		default:
			better = true
		}
	}
	return better
}
