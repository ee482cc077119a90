package invitation

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Clock supplies the current time so expiry is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// TokenGenerator mints opaque single-use invitation tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// RandomTokenGenerator produces 32 bytes of crypto/rand entropy, hex encoded.
type RandomTokenGenerator struct{}

func (RandomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
