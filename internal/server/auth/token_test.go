package auth

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenGenerator_Generate(t *testing.T) {
	g := NewRandomTokenGenerator(0)

	v, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, v, DefaultTokenBytes*2)
	_, err = hex.DecodeString(v)
	require.NoError(t, err)

	seen := map[string]struct{}{v: {}}
	for i := 0; i < 100; i++ {
		next, err := g.Generate()
		require.NoError(t, err)
		_, dup := seen[next]
		require.False(t, dup, "duplicate token %q", next)
		seen[next] = struct{}{}
	}
}

func TestRandomTokenGenerator_CustomSize(t *testing.T) {
	v, err := NewRandomTokenGenerator(32).Generate()
	require.NoError(t, err)
	assert.Len(t, v, 64)
}

func TestRandomTokenGenerator_EntropyFailure(t *testing.T) {
	orig := readRandom
	readRandom = func([]byte) (int, error) { return 0, errors.New("no entropy") }
	t.Cleanup(func() { readRandom = orig })

	_, err := NewRandomTokenGenerator(8).Generate()
	require.ErrorContains(t, err, "no entropy")
}

func TestHashToken(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
