package transport

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	k := make([]byte, 32)
	_, err := rand.Read(k)
	require.NoError(t, err)
	return k
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	keyAB := randomKey(t)
	keyBA := randomKey(t)

	var wireAtoB bytes.Buffer
	a, err := NewConn(&wireAtoB, keyBA, keyAB)
	require.NoError(t, err)
	b, err := NewConn(&wireAtoB, keyAB, keyBA)
	require.NoError(t, err)

	require.NoError(t, a.WriteFrame([]byte("hello controller")))
	got, err := b.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, "hello controller", string(got))
}

func TestWriteFrameSplitsLargePayloads(t *testing.T) {
	keyAB := randomKey(t)
	keyBA := randomKey(t)
	var wire bytes.Buffer
	a, err := NewConn(&wire, keyBA, keyAB)
	require.NoError(t, err)
	b, err := NewConn(&wire, keyAB, keyBA)
	require.NoError(t, err)

	payload := bytes.Repeat([]byte{0x7a}, 2500)
	require.NoError(t, a.WriteFrame(payload))

	var got []byte
	for len(got) < len(payload) {
		chunk, err := b.ReadFrame()
		require.NoError(t, err)
		got = append(got, chunk...)
	}
	assert.Equal(t, payload, got)
}

func TestNonceCounterIsMonotonic(t *testing.T) {
	keyAB := randomKey(t)
	keyBA := randomKey(t)
	var wire bytes.Buffer
	a, err := NewConn(&wire, keyBA, keyAB)
	require.NoError(t, err)

	require.NoError(t, a.WriteFrame([]byte("one")))
	assert.EqualValues(t, 1, a.writeNonce)
	require.NoError(t, a.WriteFrame([]byte("two")))
	assert.EqualValues(t, 2, a.writeNonce)
}

func TestReadFrameRejectsTamperedCiphertext(t *testing.T) {
	keyAB := randomKey(t)
	keyBA := randomKey(t)
	var wire bytes.Buffer
	a, err := NewConn(&wire, keyBA, keyAB)
	require.NoError(t, err)
	b, err := NewConn(&wire, keyAB, keyBA)
	require.NoError(t, err)

	require.NoError(t, a.WriteFrame([]byte("untouched")))
	tampered := wire.Bytes()
	tampered[len(tampered)-1] ^= 0xff

	_, err = b.ReadFrame()
	assert.Error(t, err)
}
