// Package entropy provides seedable randomness for the simulation.
// Drive initialization takes an injected generator, so a run is fully
// reproducible from its seed.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// Seeded returns a generator for a fixed seed.
func Seeded(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// TimeSeeded returns a generator seeded from the wall clock.
func TimeSeeded() *mrand.Rand {
	return Seeded(time.Now().UnixNano())
}

// CryptoSeed draws a seed from crypto/rand, falling back to the wall
// clock if the system source fails.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	// Shift keeps the seed positive so it reads cleanly in logs.
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}
