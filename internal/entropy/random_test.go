package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeeded_Deterministic(t *testing.T) {
	a := Seeded(42)
	b := Seeded(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestCryptoSeed_NonNegative(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, CryptoSeed(), int64(0))
	}
}
