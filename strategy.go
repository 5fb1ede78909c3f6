package gameforms

import (
	"fmt"
	"strconv"
	"strings"
)

// Strategy is a pure strategy of one player. In a tree game it prescribes
// an action at every information set of the player that it does not itself
// make unreachable (a reduced pure strategy).
type Strategy struct {
	player *Player
	number int
	label  string
	// revision of the game this strategy was derived from.
	revision int64
	// actions is nil for strategies of table games.
	actions map[*InfoSet]*Action
}

func (s *Strategy) Player() *Player {
	return s.player
}

// Number returns the position of the strategy in its player's sequence.
func (s *Strategy) Number() int {
	return s.number
}

// Label returns the strategy label. For tree games it lists the 1-based
// action number chosen at each of the player's information sets, with "*"
// for information sets the strategy never reaches.
func (s *Strategy) Label() string {
	return s.label
}

// Action returns the action this strategy prescribes at the given
// information set, or nil if the strategy never reaches it.
func (s *Strategy) Action(is *InfoSet) *Action {
	return s.actions[is]
}

func (s *Strategy) isCurrent() bool {
	return s.revision == s.player.game.revision
}

// String implements fmt.Stringer.
func (s *Strategy) String() string {
	return fmt.Sprintf("Strategy(%d, %d, %q)", s.player.index, s.number, s.label)
}

// reducedStrategies enumerates the reduced pure strategies of p.
//
// Information sets are assigned in the player's order, always choosing the
// first unassigned information set that is still reachable given the
// actions assigned so far, and branching over its actions. Information sets
// that never become reachable stay unassigned. A player without any
// information set has exactly one (empty) strategy.
func reducedStrategies(p *Player, revision int64) []*Strategy {
	var result []*Strategy
	assigned := make(map[*InfoSet]*Action, len(p.infosets))
	var recurse func()
	recurse = func() {
		next := nextReachable(p, assigned)
		if next == nil {
			actions := make(map[*InfoSet]*Action, len(assigned))
			for is, a := range assigned {
				actions[is] = a
			}

			result = append(result, &Strategy{
				player:   p,
				number:   len(result),
				label:    strategyLabel(p, actions),
				revision: revision,
				actions:  actions,
			})
			return
		}

		for _, a := range next.actions {
			assigned[next] = a
			recurse()
		}
		delete(assigned, next)
	}

	recurse()
	return result
}

func nextReachable(p *Player, assigned map[*InfoSet]*Action) *InfoSet {
	for _, is := range p.infosets {
		if _, ok := assigned[is]; ok {
			continue
		}

		for _, member := range is.members {
			if reachableUnder(p, member, assigned) {
				return is
			}
		}
	}

	return nil
}

// reachableUnder returns whether node can be reached when p plays the
// partially assigned strategy. Moves of other players and chance never
// prevent reaching a node.
func reachableUnder(p *Player, node *Node, assigned map[*InfoSet]*Action) bool {
	for n := node; n.parent != nil; n = n.parent {
		parent := n.parent
		if parent.infoset.player != p {
			continue
		}

		a, ok := assigned[parent.infoset]
		if !ok || a != n.PriorAction() {
			return false
		}
	}

	return true
}

func strategyLabel(p *Player, actions map[*InfoSet]*Action) string {
	if len(p.infosets) == 0 {
		return "1"
	}

	parts := make([]string, len(p.infosets))
	for i, is := range p.infosets {
		if a, ok := actions[is]; ok {
			parts[i] = strconv.Itoa(a.Number() + 1)
		} else {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, "")
}
