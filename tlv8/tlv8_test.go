package tlv8

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := Values{
		TagState:     {6},
		TagPublicKey: []byte("a-public-key"),
	}
	order := []Tag{TagState, TagPublicKey}

	wire := Encode(order, values)
	decoded, err := Decode(wire)
	require.NoError(t, err)

	assert.Equal(t, values[TagState], decoded[TagState])
	assert.Equal(t, values[TagPublicKey], decoded[TagPublicKey])
}

func TestEncodeSplitsLongValues(t *testing.T) {
	long := bytes.Repeat([]byte{0x42}, 300)
	wire := Encode([]Tag{TagEncryptedData}, Values{TagEncryptedData: long})

	// Expect two chunks: 255 bytes then 45 bytes, each with its own 2-byte header.
	assert.Equal(t, byte(TagEncryptedData), wire[0])
	assert.Equal(t, byte(255), wire[1])
	assert.Equal(t, byte(TagEncryptedData), wire[2+255])
	assert.Equal(t, byte(45), wire[2+255+1])

	decoded, err := Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, long, decoded[TagEncryptedData])
}

func TestDecodeTruncatedEntry(t *testing.T) {
	_, err := Decode([]byte{0x06})
	assert.Error(t, err)
}

func TestByteHelper(t *testing.T) {
	v := Values{TagState: {4}}
	assert.Equal(t, byte(4), v.Byte(TagState))
	assert.Equal(t, byte(0), v.Byte(TagError))
}
