package qualifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_EmptyPayload(t *testing.T) {
	// Known keccak of the empty byte string.
	digest, err := Hash("0x")
	require.NoError(t, err)
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", digest)
}

func TestHash_NoPrefix(t *testing.T) {
	withPrefix, err := Hash("0xdeadbeef")
	require.NoError(t, err)
	withoutPrefix, err := Hash("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, withPrefix, withoutPrefix)
}

func TestHash_KnownVector(t *testing.T) {
	digest, err := Hash("0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, "0xd4fd4e189132273036449fc9e11198c739161b4c0116a9a2dccdfa1c492006f1", digest)
}

func TestHash_OddLength(t *testing.T) {
	_, err := Hash("0xabc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid qualifier hex")
}

func TestHash_NonHex(t *testing.T) {
	_, err := Hash("0xzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid qualifier hex")
}

func TestHash_Deterministic(t *testing.T) {
	first, err := Hash("0x0102030405")
	require.NoError(t, err)
	second, err := Hash("0x0102030405")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
