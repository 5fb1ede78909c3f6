package gameforms

import (
	"github.com/pkg/errors"
)

// Error kinds returned by structural operations and profile algebra.
// Returned errors wrap one of these; use errors.Cause (or errors.Is)
// to branch on the kind.
var (
	// ErrMismatch is returned when an operation combines entities that
	// belong to different games or owners, for example setting the player
	// of an information set to a player of another game.
	ErrMismatch = errors.New("mismatched game or owner")

	// ErrUndefinedOperation is returned when an operation would break a
	// structural invariant: removing the last action of an information set,
	// removing the last strategy of a player from a support profile, or
	// applying a tree operation to a table game.
	ErrUndefinedOperation = errors.New("undefined operation")

	// ErrInvalidValue is returned for arguments or results that are not valid,
	// for example a profile difference that leaves some player with no strategies.
	ErrInvalidValue = errors.New("invalid value")
)

func mismatchf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMismatch, format, args...)
}

func undefinedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUndefinedOperation, format, args...)
}

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidValue, format, args...)
}
