package core

import (
	"crypto/rand"
	"math/big"

	"github.com/oklog/ulid/v2"
)

const (
	sessionIDPrefix = "SESS_"
	sessionIDLen    = 9
	base36Upper     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewID returns a collision-tolerant record id: a monotonic time-based
// prefix with a random suffix (ULID).
func NewID() string {
	return ulid.Make().String()
}

// NewSessionID returns an attendance session id of the form
// SESS_<9 random base36 chars, uppercased>. Purely random; collisions
// are accepted rather than corrected.
func NewSessionID() string {
	buf := make([]byte, sessionIDLen)
	max := big.NewInt(int64(len(base36Upper)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken
			panic(err)
		}
		buf[i] = base36Upper[n.Int64()]
	}
	return sessionIDPrefix + string(buf)
}
