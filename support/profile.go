// Package support implements strategy support profiles (the strategies of
// each player still in play) and the elimination of dominated strategies.
//
// A Profile is immutable: every operation returns a new Profile. Every
// Profile keeps at least one strategy for every player of its game, and
// operations that would violate this fail instead of returning a value.
package support

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/gameforms"
)

// Profile is a strategy support profile: for each player of a game, a
// non-empty, duplicate-free subset of the player's strategies, kept in the
// player's strategy order.
type Profile struct {
	game *gameforms.Game
	// revision of the game when the profile was built. Profiles of
	// different revisions cannot be combined.
	revision int64
	// strategies[i] holds the retained strategies of player i.
	strategies [][]*gameforms.Strategy
}

// Full returns the profile in which every player retains all strategies.
func Full(g *gameforms.Game) *Profile {
	players := g.Players()
	strategies := make([][]*gameforms.Strategy, len(players))
	for i, p := range players {
		strategies[i] = p.Strategies()
	}

	return &Profile{game: g, revision: g.Revision(), strategies: strategies}
}

// New returns the profile retaining exactly the given strategies. Every
// player of g must be represented; duplicates are ignored.
func New(g *gameforms.Game, strategies []*gameforms.Strategy) (*Profile, error) {
	sets := make([][]*gameforms.Strategy, g.NumPlayers())
	for _, s := range strategies {
		if !belongsTo(g, s) {
			return nil, errors.Wrapf(gameforms.ErrMismatch, "strategy %v is not a strategy of %v", s, g)
		}

		i := s.Player().Index()
		if !containsStrategy(sets[i], s) {
			sets[i] = append(sets[i], s)
		}
	}

	for _, set := range sets {
		sortByNumber(set)
	}
	return build(g, g.Revision(), sets)
}

// build checks that every player retains at least one strategy.
func build(g *gameforms.Game, revision int64, sets [][]*gameforms.Strategy) (*Profile, error) {
	for i, set := range sets {
		if len(set) == 0 {
			return nil, errors.Wrapf(gameforms.ErrInvalidValue,
				"profile must have at least one strategy for each player, %v has none", g.Player(i))
		}
	}

	return &Profile{game: g, revision: revision, strategies: sets}, nil
}

func belongsTo(g *gameforms.Game, s *gameforms.Strategy) bool {
	return s != nil && s.Player().Game() == g
}

func containsStrategy(set []*gameforms.Strategy, s *gameforms.Strategy) bool {
	for _, other := range set {
		if other == s {
			return true
		}
	}
	return false
}

func sortByNumber(set []*gameforms.Strategy) {
	sort.Slice(set, func(i, j int) bool {
		return set[i].Number() < set[j].Number()
	})
}

// Game returns the game this profile belongs to.
func (p *Profile) Game() *gameforms.Game {
	return p.game
}

// Len returns the total number of retained strategies.
func (p *Profile) Len() int {
	n := 0
	for _, set := range p.strategies {
		n += len(set)
	}
	return n
}

// At returns the i'th retained strategy, counting player by player.
func (p *Profile) At(i int) *gameforms.Strategy {
	if i >= 0 {
		for _, set := range p.strategies {
			if i < len(set) {
				return set[i]
			}
			i -= len(set)
		}
	}

	panic(fmt.Errorf("index %d out of range for profile with %d strategies", i, p.Len()))
}

// Strategies returns all retained strategies, player by player.
func (p *Profile) Strategies() []*gameforms.Strategy {
	result := make([]*gameforms.Strategy, 0, p.Len())
	for _, set := range p.strategies {
		result = append(result, set...)
	}
	return result
}

// playerSet returns the strategies retained for the player, or false if
// the player has no strategies in this profile.
func (p *Profile) playerSet(player *gameforms.Player) ([]*gameforms.Strategy, bool) {
	if player == nil || player.Game() != p.game {
		return nil, false
	}
	i := player.Index()
	if i < 0 || i >= len(p.strategies) {
		return nil, false
	}
	return p.strategies[i], true
}

func (p *Profile) mustPlayerSet(player *gameforms.Player) []*gameforms.Strategy {
	set, ok := p.playerSet(player)
	if !ok {
		panic(fmt.Errorf("%v has no strategies in profile %v", player, p))
	}
	return set
}

// PlayerStrategies returns the strategies retained for the player.
// It panics if the player has no strategies in this profile.
func (p *Profile) PlayerStrategies(player *gameforms.Player) []*gameforms.Strategy {
	return append([]*gameforms.Strategy(nil), p.mustPlayerSet(player)...)
}

// NumStrategies returns the number of strategies retained for the player.
// It panics if the player has no strategies in this profile.
func (p *Profile) NumStrategies(player *gameforms.Player) int {
	return len(p.mustPlayerSet(player))
}

// Contains returns whether the strategy is retained in this profile.
func (p *Profile) Contains(s *gameforms.Strategy) bool {
	if s == nil {
		return false
	}
	set, ok := p.playerSet(s.Player())
	return ok && containsStrategy(set, s)
}

// Remove returns a copy of this profile without the given strategy.
// Removing the last retained strategy of a player is undefined.
func (p *Profile) Remove(s *gameforms.Strategy) (*Profile, error) {
	if !belongsTo(p.game, s) {
		return nil, errors.Wrapf(gameforms.ErrMismatch, "strategy %v is not a strategy of %v", s, p.game)
	}
	if !p.Contains(s) {
		return nil, errors.Wrapf(gameforms.ErrInvalidValue, "strategy %v is not in the profile", s)
	}

	i := s.Player().Index()
	if len(p.strategies[i]) == 1 {
		return nil, errors.Wrapf(gameforms.ErrUndefinedOperation,
			"cannot remove %v, the last strategy of %v", s, s.Player())
	}

	sets := p.copySets()
	sets[i] = filter(p.strategies[i], func(other *gameforms.Strategy) bool {
		return other != s
	})
	return &Profile{game: p.game, revision: p.revision, strategies: sets}, nil
}

func (p *Profile) copySets() [][]*gameforms.Strategy {
	sets := make([][]*gameforms.Strategy, len(p.strategies))
	for i, set := range p.strategies {
		sets[i] = append([]*gameforms.Strategy(nil), set...)
	}
	return sets
}

func filter(set []*gameforms.Strategy, keep func(*gameforms.Strategy) bool) []*gameforms.Strategy {
	var result []*gameforms.Strategy
	for _, s := range set {
		if keep(s) {
			result = append(result, s)
		}
	}
	return result
}

func (p *Profile) checkSameGame(q *Profile) error {
	if q == nil || q.game != p.game {
		return errors.Wrap(gameforms.ErrMismatch, "profiles belong to different games")
	}
	if q.revision != p.revision || len(q.strategies) != len(p.strategies) {
		return errors.Wrapf(gameforms.ErrMismatch,
			"profiles were built at revisions %d and %d of %v", p.revision, q.revision, p.game)
	}
	return nil
}

// Difference returns, for each player, the strategies of p not retained in
// q. It fails if any player would be left without strategies.
func (p *Profile) Difference(q *Profile) (*Profile, error) {
	if err := p.checkSameGame(q); err != nil {
		return nil, err
	}

	sets := make([][]*gameforms.Strategy, len(p.strategies))
	for i, set := range p.strategies {
		sets[i] = filter(set, func(s *gameforms.Strategy) bool {
			return !containsStrategy(q.strategies[i], s)
		})
	}
	return build(p.game, p.revision, sets)
}

// Intersect returns, for each player, the strategies retained in both
// profiles. It fails if any player would be left without strategies.
func (p *Profile) Intersect(q *Profile) (*Profile, error) {
	if err := p.checkSameGame(q); err != nil {
		return nil, err
	}

	sets := make([][]*gameforms.Strategy, len(p.strategies))
	for i, set := range p.strategies {
		sets[i] = filter(set, func(s *gameforms.Strategy) bool {
			return containsStrategy(q.strategies[i], s)
		})
	}
	return build(p.game, p.revision, sets)
}

// Union returns, for each player, the strategies retained in either profile.
func (p *Profile) Union(q *Profile) (*Profile, error) {
	if err := p.checkSameGame(q); err != nil {
		return nil, err
	}

	sets := p.copySets()
	for i, set := range q.strategies {
		for _, s := range set {
			if !containsStrategy(sets[i], s) {
				sets[i] = append(sets[i], s)
			}
		}
		sortByNumber(sets[i])
	}
	return &Profile{game: p.game, revision: p.revision, strategies: sets}, nil
}

// Equal returns whether both profiles retain the same strategies for every
// player.
func (p *Profile) Equal(q *Profile) bool {
	if p.checkSameGame(q) != nil {
		return false
	}

	for i, set := range p.strategies {
		if len(set) != len(q.strategies[i]) {
			return false
		}
	}
	return p.IsSubsetOf(q)
}

// IsSubsetOf returns whether every strategy retained in p is retained in q.
func (p *Profile) IsSubsetOf(q *Profile) bool {
	if p.checkSameGame(q) != nil {
		return false
	}

	for i, set := range p.strategies {
		for _, s := range set {
			if !containsStrategy(q.strategies[i], s) {
				return false
			}
		}
	}
	return true
}

// String implements fmt.Stringer.
func (p *Profile) String() string {
	parts := make([]string, len(p.strategies))
	for i, set := range p.strategies {
		labels := make([]string, len(set))
		for j, s := range set {
			labels[j] = s.Label()
		}
		parts[i] = "{" + strings.Join(labels, ", ") + "}"
	}
	return "Profile" + strings.Join(parts, "")
}
