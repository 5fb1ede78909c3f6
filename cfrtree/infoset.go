package cfrtree

import (
	"encoding/binary"
	"encoding/gob"
	"fmt"

	"github.com/pkg/errors"
)

// InfoSet implements cfr.InfoSet for an information set of a tree game.
// It is identified by its player and its position in the player's
// sequence of information sets.
type InfoSet struct {
	Player     int
	Number     int
	NumActions int
}

// Key implements cfr.InfoSet.
func (is *InfoSet) Key() string {
	return fmt.Sprintf("%d/%d", is.Player, is.Number)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *InfoSet) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3*binary.MaxVarintLen64)
	n := binary.PutVarint(buf, int64(is.Player))
	n += binary.PutVarint(buf[n:], int64(is.Number))
	n += binary.PutVarint(buf[n:], int64(is.NumActions))
	return buf[:n], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *InfoSet) UnmarshalBinary(buf []byte) error {
	var fields [3]int64
	for i := range fields {
		v, n := binary.Varint(buf)
		if n <= 0 {
			return errors.Errorf("truncated infoset: field %d of %d", i+1, len(fields))
		}
		fields[i] = v
		buf = buf[n:]
	}

	is.Player = int(fields[0])
	is.Number = int(fields[1])
	is.NumActions = int(fields[2])
	return nil
}

func init() {
	gob.Register(&InfoSet{})
}
