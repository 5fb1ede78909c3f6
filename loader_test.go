package gameforms

import (
	"testing"

	"github.com/pkg/errors"
)

func TestReadGame(t *testing.T) {
	g, err := ReadGame(LoaderFunc(func() (*Game, error) {
		return newTwoByTwo(t), nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if g.NumPlayers() != 2 {
		t.Errorf("loaded game has %d players", g.NumPlayers())
	}
}

func TestReadGame_LoadError(t *testing.T) {
	cause := errors.New("file not found")
	_, err := ReadGame(LoaderFunc(func() (*Game, error) {
		return nil, cause
	}))
	if errors.Cause(err) != cause {
		t.Errorf("ReadGame returned %v, expected %v", err, cause)
	}

	_, err = ReadGame(LoaderFunc(func() (*Game, error) {
		return nil, nil
	}))
	assertKind(t, err, ErrInvalidValue)
}

func TestReadGame_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		corrupt func(g *Game)
		kind    error
	}{
		{"missing_child", func(g *Game) {
			n := g.Root().Child(0)
			n.children = n.children[:1]
		}, ErrInvalidValue},
		{"bad_probabilities", func(g *Game) {
			is := &InfoSet{game: g, player: g.chance}
			is.actions = []*Action{{infoset: is, prob: 0.7}, {infoset: is, prob: 0.7}}
			g.chance.infosets = append(g.chance.infosets, is)
		}, ErrInvalidValue},
		{"foreign_outcome", func(g *Game) {
			other := newTwoByTwo(t)
			g.Root().Child(1).Child(0).outcome = other.NewOutcome("foreign")
		}, ErrMismatch},
		{"empty_infoset_actions", func(g *Game) {
			g.Player(0).infosets[0].actions = nil
		}, ErrInvalidValue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadGame(LoaderFunc(func() (*Game, error) {
				g := newTwoByTwo(t)
				tc.corrupt(g)
				return g, nil
			}))
			assertKind(t, err, tc.kind)
		})
	}
}

func TestValidate_Table(t *testing.T) {
	g, err := NewTable([]int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("new table game is invalid: %v", err)
	}

	other := newTwoByTwo(t)
	g.table[0] = other.NewOutcome("foreign")
	assertKind(t, g.Validate(), ErrMismatch)
}
