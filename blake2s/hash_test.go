package blake2s

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xblake2s "golang.org/x/crypto/blake2s"
)

func TestHash(t *testing.T) {
	in := []byte("The quick brown fox jumps over the lazy dog")

	out := make([]byte, Size)
	require.NoError(t, Hash(out, in, nil))
	ref := xblake2s.Sum256(in)
	assert.Equal(t, ref[:], out)

	// An empty, non-nil key is the same as no key.
	again := make([]byte, Size)
	require.NoError(t, Hash(again, in, []byte{}))
	assert.Equal(t, out, again)

	keyed := make([]byte, 16)
	require.NoError(t, Hash(keyed, in, sequence(KeySize)))
	assert.Equal(t, stateSum(t, 16, sequence(KeySize), in), keyed)
}

func TestHashDeterministic(t *testing.T) {
	in := sequence(300)
	a := make([]byte, 28)
	b := make([]byte, 28)
	require.NoError(t, Hash(a, in, []byte("k")))
	require.NoError(t, Hash(b, in, []byte("k")))
	assert.Equal(t, a, b)
}

func TestHashErrors(t *testing.T) {
	in := []byte("x")

	assert.ErrorIs(t, Hash(nil, in, nil), ErrInvalidArgument)
	assert.ErrorIs(t, Hash(make([]byte, Size), nil, nil), ErrInvalidArgument)
	assert.ErrorIs(t, Hash([]byte{}, in, nil), ErrInvalidDigestLength)
	assert.ErrorIs(t, Hash(make([]byte, Size+1), in, nil), ErrInvalidDigestLength)
	assert.ErrorIs(t, Hash(make([]byte, Size), in, make([]byte, KeySize+1)), ErrInvalidKey)

	// Empty input is fine as long as it is not nil.
	assert.NoError(t, Hash(make([]byte, Size), []byte{}, nil))
}

func TestSum256(t *testing.T) {
	for _, n := range []int{0, 1, 64, 65, 200} {
		in := sequence(n)
		assert.Equal(t, xblake2s.Sum256(in), Sum256(in), "length %d", n)
	}
}
