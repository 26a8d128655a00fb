package mktemp

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
	"os"
	"sync"
	"time"
)

// Candidate names draw from 62 alphanumeric characters. At the default
// length of 6 an attacker must occupy on the order of 62^6 (~5.7e10) names
// before collisions become likely.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

//nolint:gochecknoglobals
var (
	rngMutex sync.Mutex
	rng      = mathrand.New(mathrand.NewChaCha8(newSeed()))
)

// newSeed obtains a generator seed from OS entropy, falling back to a weaker
// time-and-pid seed when the entropy source is unavailable.
func newSeed() [32]byte {
	var s [32]byte

	if _, err := cryptorand.Read(s[:]); err != nil {
		log.Warnf("OS entropy source unavailable, falling back to weak generator seed: %v", err)

		binary.LittleEndian.PutUint64(s[0:8], uint64(time.Now().UnixNano()))
		binary.LittleEndian.PutUint64(s[8:16], uint64(os.Getpid()))
	}

	return s
}

// Reseed discards the current generator state and reseeds from OS entropy.
// This defends against a degraded generator cycling through a small set of
// names that an attacker has occupied.
func Reseed() {
	rngMutex.Lock()
	defer rngMutex.Unlock()

	rng = mathrand.New(mathrand.NewChaCha8(newSeed()))
}

// NextName produces a candidate name of the form prefix + randomLen random
// alphanumeric characters + suffix.
func NextName(prefix, suffix string, randomLen int) string {
	b := make([]byte, 0, len(prefix)+randomLen+len(suffix))
	b = append(b, prefix...)

	rngMutex.Lock()
	for i := 0; i < randomLen; i++ {
		b = append(b, alphabet[rng.IntN(len(alphabet))])
	}
	rngMutex.Unlock()

	b = append(b, suffix...)

	return string(b)
}
