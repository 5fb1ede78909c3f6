package gameforms

import (
	"math"

	"github.com/golang/glog"
)

// Tolerance used when checking that chance probabilities sum to one.
const probTolerance = 1e-9

func (g *Game) checkTree() error {
	if !g.IsTree() {
		return undefinedf("operation requires a tree game")
	}
	return nil
}

func (g *Game) checkTerminal(node *Node) error {
	if !g.ownsNode(node) {
		return mismatchf("node %v does not belong to %v", node, g)
	}
	if !node.IsTerminal() {
		return undefinedf("node %v already has a move", node)
	}
	return nil
}

// AppendMove turns the terminal node into a decision node of the player,
// in a new information set with nActions actions. The node gains one
// terminal child per action. Information sets of the chance player start
// with uniform probabilities.
func (g *Game) AppendMove(node *Node, player *Player, nActions int) (*InfoSet, error) {
	if err := g.checkTree(); err != nil {
		return nil, err
	}
	if err := g.checkTerminal(node); err != nil {
		return nil, err
	}
	if !g.ownsPlayer(player) {
		return nil, mismatchf("player %v does not belong to %v", player, g)
	}
	if nActions < 1 {
		return nil, invalidf("a move needs at least one action, got %d", nActions)
	}

	is := &InfoSet{game: g, player: player}
	for i := 0; i < nActions; i++ {
		a := &Action{infoset: is}
		if player.IsChance() {
			a.prob = 1.0 / float64(nActions)
		}
		is.actions = append(is.actions, a)
	}
	player.infosets = append(player.infosets, is)
	g.join(node, is)
	g.touch()
	glog.V(2).Infof("Appended move of %v with %d actions at %v", player, nActions, node)
	return is, nil
}

// AppendMoveAt makes the terminal node a member of an existing information
// set. The node gains one terminal child per action of the set.
func (g *Game) AppendMoveAt(node *Node, is *InfoSet) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if err := g.checkTerminal(node); err != nil {
		return err
	}
	if !g.ownsInfoSet(is) {
		return mismatchf("information set %v does not belong to %v", is, g)
	}

	g.join(node, is)
	g.touch()
	return nil
}

func (g *Game) checkDecision(node *Node) error {
	if !g.ownsNode(node) {
		return mismatchf("node %v does not belong to %v", node, g)
	}
	if node.IsTerminal() {
		return undefinedf("node %v has no move", node)
	}
	return nil
}

// JoinInfoset moves the decision node into the information set. The node
// keeps its children, which correspond positionally to the actions of is,
// so both must have the same number of actions. The node's previous
// information set is kept even if left without members.
func (g *Game) JoinInfoset(is *InfoSet, node *Node) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if !g.ownsInfoSet(is) {
		return mismatchf("information set %v does not belong to %v", is, g)
	}
	if err := g.checkDecision(node); err != nil {
		return err
	}
	if node.infoset == is {
		return nil
	}
	if len(is.actions) != len(node.infoset.actions) {
		return invalidf("cannot join %v with %d actions to %v with %d actions",
			node, len(node.infoset.actions), is, len(is.actions))
	}

	node.infoset.removeMember(node)
	node.infoset = is
	is.members = append(is.members, node)
	g.touch()
	glog.V(2).Infof("Node %v joined %v", node, is)
	return nil
}

// LeaveInfoset moves the decision node into a new information set of the
// same player, with a copy of the actions of its current one, and returns
// the new information set. A node that is already the only member of its
// information set stays where it is.
func (g *Game) LeaveInfoset(node *Node) (*InfoSet, error) {
	if err := g.checkTree(); err != nil {
		return nil, err
	}
	if err := g.checkDecision(node); err != nil {
		return nil, err
	}

	old := node.infoset
	if len(old.members) == 1 {
		return old, nil
	}

	is := &InfoSet{game: g, player: old.player, label: old.label}
	for _, a := range old.actions {
		is.actions = append(is.actions, &Action{infoset: is, label: a.label, prob: a.prob})
	}
	old.player.infosets = append(old.player.infosets, is)

	old.removeMember(node)
	node.infoset = is
	is.members = append(is.members, node)
	g.touch()
	return is, nil
}

// MergeInfoset moves every member of from into to and removes from from
// its player. Both must have the same number of actions; merging an
// information set with itself does nothing.
func (g *Game) MergeInfoset(to, from *InfoSet) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if !g.ownsInfoSet(to) {
		return mismatchf("information set %v does not belong to %v", to, g)
	}
	if !g.ownsInfoSet(from) {
		return mismatchf("information set %v does not belong to %v", from, g)
	}
	if to == from {
		return nil
	}
	if len(to.actions) != len(from.actions) {
		return invalidf("cannot merge %v with %d actions into %v with %d actions",
			from, len(from.actions), to, len(to.actions))
	}

	for _, m := range from.members {
		m.infoset = to
		to.members = append(to.members, m)
	}
	from.members = nil

	from.player.removeInfoSet(from)
	from.deleted = true
	g.touch()
	glog.V(2).Infof("Merged %v into %v", from, to)
	return nil
}

func (g *Game) join(node *Node, is *InfoSet) {
	node.infoset = is
	node.children = make([]*Node, len(is.actions))
	for i := range node.children {
		node.children[i] = node.newChild()
	}
	is.members = append(is.members, node)
}

// AddAction inserts a new action into the information set, immediately
// before the given action, or at the end if before is nil. Every member of
// the information set gains a new terminal child without an outcome at the
// same position. A new chance action has probability zero.
func (g *Game) AddAction(is *InfoSet, before *Action) (*Action, error) {
	if err := g.checkTree(); err != nil {
		return nil, err
	}
	if !g.ownsInfoSet(is) {
		return nil, mismatchf("information set %v does not belong to %v", is, g)
	}

	pos := len(is.actions)
	if before != nil {
		if before.infoset != is {
			return nil, mismatchf("action %v does not belong to information set %v", before, is)
		}
		if pos = is.actionIndex(before); pos < 0 {
			return nil, mismatchf("action %v was deleted", before)
		}
	}

	a := &Action{infoset: is}
	is.actions = insertAction(is.actions, pos, a)
	for _, member := range is.members {
		member.children = insertNode(member.children, pos, member.newChild())
	}
	g.touch()
	return a, nil
}

// DeleteAction removes the action from its information set, together with
// the corresponding subtree below every member. Remaining chance
// probabilities are rescaled to sum to one. The last action of an
// information set cannot be deleted.
func (g *Game) DeleteAction(is *InfoSet, a *Action) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if !g.ownsInfoSet(is) {
		return mismatchf("information set %v does not belong to %v", is, g)
	}
	if a == nil || a.infoset != is {
		return mismatchf("action %v does not belong to information set %v", a, is)
	}

	pos := is.actionIndex(a)
	if pos < 0 {
		return mismatchf("action %v was already deleted", a)
	}
	if len(is.actions) == 1 {
		return undefinedf("cannot delete the only action of %v", is)
	}

	is.actions = append(is.actions[:pos], is.actions[pos+1:]...)
	for _, member := range is.members {
		member.children[pos].detach()
		member.children = append(member.children[:pos], member.children[pos+1:]...)
	}

	if is.IsChance() {
		normalizeProbs(is.actions)
	}
	g.touch()
	return nil
}

func normalizeProbs(actions []*Action) {
	total := 0.0
	for _, a := range actions {
		total += a.prob
	}

	for _, a := range actions {
		if total > 0 {
			a.prob /= total
		} else {
			a.prob = 1.0 / float64(len(actions))
		}
	}
}

// SetPlayer transfers the information set to the given player of the same
// game. The information set is appended to the new owner's sequence.
// Information sets cannot be moved between chance and personal players.
func (g *Game) SetPlayer(is *InfoSet, player *Player) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if !g.ownsInfoSet(is) {
		return mismatchf("information set %v does not belong to %v", is, g)
	}
	if !g.ownsPlayer(player) {
		return mismatchf("player %v does not belong to %v", player, g)
	}
	if is.player == player {
		return nil
	}
	if is.IsChance() != player.IsChance() {
		return undefinedf("cannot move %v between chance and personal players", is)
	}

	old := is.player
	old.removeInfoSet(is)
	player.infosets = append(player.infosets, is)
	is.player = player
	g.touch()
	glog.V(2).Infof("Moved %v from %v to %v", is, old, player)
	return nil
}

// SetOutcome attaches the outcome (or none, if nil) to the node.
func (g *Game) SetOutcome(node *Node, o *Outcome) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if !g.ownsNode(node) {
		return mismatchf("node %v does not belong to %v", node, g)
	}
	if o != nil && !g.ownsOutcome(o) {
		return mismatchf("outcome %v does not belong to %v", o, g)
	}

	node.outcome = o
	return nil
}

// SetChanceProbs sets the probabilities of the actions of a chance
// information set. They must be non-negative and sum to one.
func (g *Game) SetChanceProbs(is *InfoSet, probs []float64) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if !g.ownsInfoSet(is) {
		return mismatchf("information set %v does not belong to %v", is, g)
	}
	if !is.IsChance() {
		return undefinedf("%v is not a chance information set", is)
	}
	if len(probs) != len(is.actions) {
		return invalidf("got %d probabilities for %d actions", len(probs), len(is.actions))
	}

	total := 0.0
	for _, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return invalidf("invalid probability %v", p)
		}
		total += p
	}
	if math.Abs(total-1) > probTolerance {
		return invalidf("probabilities sum to %v, not 1", total)
	}

	for i, a := range is.actions {
		a.prob = probs[i]
	}
	return nil
}

// DeleteTree removes everything below the node, making it terminal. The
// node leaves its information set; information sets left without members
// remain until DeleteEmptyInfoSets is called.
func (g *Game) DeleteTree(node *Node) error {
	if err := g.checkTree(); err != nil {
		return err
	}
	if !g.ownsNode(node) {
		return mismatchf("node %v does not belong to %v", node, g)
	}
	if node.IsTerminal() {
		return nil
	}

	for _, child := range node.children {
		child.detach()
	}
	node.children = nil
	node.infoset.removeMember(node)
	node.infoset = nil
	g.touch()
	return nil
}

// DeleteEmptyInfoSets removes every information set without members from
// its player and returns how many were removed.
func (g *Game) DeleteEmptyInfoSets() int {
	if !g.IsTree() {
		return 0
	}

	n := 0
	players := append(g.Players(), g.chance)
	for _, p := range players {
		kept := p.infosets[:0]
		for _, is := range p.infosets {
			if len(is.members) == 0 {
				is.deleted = true
				n++
				continue
			}
			kept = append(kept, is)
		}
		p.infosets = kept
	}

	if n > 0 {
		g.touch()
	}
	return n
}

func insertAction(s []*Action, i int, a *Action) []*Action {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = a
	return s
}

func insertNode(s []*Node, i int, n *Node) []*Node {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = n
	return s
}
