// Package entropy provides the unpredictability input consumed by the
// admin selector. The production source reads from crypto/rand; tests
// inject fixed bytes to make selection deterministic.
package entropy

import "crypto/rand"

// Source supplies an opaque draw of environment entropy. The consumer
// treats the bytes as hash input only; no distribution guarantees are
// assumed beyond "not controllable by the caller".
type Source interface {
	// Draw returns a fresh entropy value. Implementations must not block.
	Draw() []byte
}

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every Draw returns 32 freshly generated bytes.
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Draw returns 32 bytes from crypto/rand.
//
// Panics with "entropy: crypto/rand failure: <err>" if the system source
// fails; that is a platform fault, not a request error.
func (c *cryptoSource) Draw() []byte {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("entropy: crypto/rand failure: " + err.Error())
	}
	return buf
}

// Fixed returns a Source that yields the same bytes on every Draw.
// Intended for tests that need a deterministic selection seed.
func Fixed(b []byte) Source {
	return fixedSource(append([]byte(nil), b...))
}

type fixedSource []byte

func (f fixedSource) Draw() []byte {
	return append([]byte(nil), f...)
}
