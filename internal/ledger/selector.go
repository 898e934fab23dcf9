package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/PranjalBasak/446-Project-1/internal/entropy"
)

// Selector picks the admin credited with a booking fee. The draw hashes
// {current time, an environment entropy value, the requesting participant's
// id} and reduces the digest modulo the admin count. The scheme is
// deterministic given its inputs but unpredictable to a caller who cannot
// control the entropy source; it is not cryptographically secure and makes
// no fairness promise beyond the modulo reduction.
type Selector struct {
	entropy entropy.Source
	clock   func() time.Time
}

// NewSelector creates a Selector drawing from src and the wall clock.
//
// Precondition: src must be non-nil.
func NewSelector(src entropy.Source) *Selector {
	return &Selector{entropy: src, clock: time.Now}
}

// NewSelectorWithClock creates a Selector with an injected clock. Tests use
// this to pin the time component of the seed.
func NewSelectorWithClock(src entropy.Source, clock func() time.Time) *Selector {
	return &Selector{entropy: src, clock: clock}
}

// Pick returns the id of the admin credited for a booking by participantID.
//
// Precondition: adminIDs is the registration-ordered admin index list.
// Postcondition: Returns an element of adminIDs, or ErrNoAdminsAvailable if
// the list is empty. The empty check happens before any seed computation.
func (s *Selector) Pick(adminIDs []uint64, participantID uint64) (uint64, error) {
	if len(adminIDs) == 0 {
		return 0, ErrNoAdminsAvailable
	}

	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(s.clock().UnixNano()))
	h.Write(buf[:])

	h.Write(s.entropy.Draw())

	binary.BigEndian.PutUint64(buf[:], participantID)
	h.Write(buf[:])

	digest := h.Sum(nil)
	index := binary.BigEndian.Uint64(digest[:8]) % uint64(len(adminIDs))
	return adminIDs[index], nil
}
