package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a digest of where every card sits. Two states with the
// same layout hash the same regardless of scoreboard or UI flags, which
// makes it handy for correlating log lines for one position.
func Fingerprint(cards []Card) uint64 {
	d := xxhash.New()
	var buf [9]byte
	for _, c := range cards {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(c.CardNumber))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(c.RowNumber))
		buf[8] = 0
		if c.IsInBullHeadStack {
			buf[8] = 1
		}
		d.Write(buf[:])
	}
	return d.Sum64()
}
