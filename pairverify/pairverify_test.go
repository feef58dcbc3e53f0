package pairverify

import (
	"crypto/ed25519"
	"crypto/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	"github.com/wrenhouse/hap/crypto/aeadutil"
	"github.com/wrenhouse/hap/crypto/hkdfutil"
	"github.com/wrenhouse/hap/identity"
	"github.com/wrenhouse/hap/pairing"
	"github.com/wrenhouse/hap/tlv8"
)

func TestFullHandshakeDerivesMatchingDirectionalKeys(t *testing.T) {
	idStore, err := identity.Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)
	pairStore, err := pairing.Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)

	controllerID := "controller-under-test"
	controllerPub, controllerPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	require.NoError(t, pairStore.Add(controllerID, controllerPub, true))

	// Controller side of the ECDH handshake, run independently of the Machine
	// under test so the test is a genuine two-party exchange.
	controllerEphPriv := make([]byte, 32)
	_, err = rand.Read(controllerEphPriv)
	require.NoError(t, err)
	controllerEphPub, err := curve25519.X25519(controllerEphPriv, curve25519.Basepoint)
	require.NoError(t, err)

	m := New(idStore, pairStore)
	m2, err := m.HandleMessage(tlv8.Values{
		tlv8.TagState:     {1},
		tlv8.TagPublicKey: controllerEphPub,
	})
	require.NoError(t, err)
	assert.Equal(t, byte(2), m2.Byte(tlv8.TagState))

	accessoryEphPub := m2[tlv8.TagPublicKey]
	controllerShared, err := curve25519.X25519(controllerEphPriv, accessoryEphPub)
	require.NoError(t, err)

	sub := tlv8.Encode(
		[]tlv8.Tag{tlv8.TagIdentifier, tlv8.TagSignature},
		tlv8.Values{
			tlv8.TagIdentifier: []byte(controllerID),
			tlv8.TagSignature: ed25519.Sign(controllerPriv, append(
				append([]byte{}, controllerEphPub...),
				append([]byte(controllerID), accessoryEphPub...)...,
			)),
		},
	)
	sessionKey := hkdfutil.Derive32("Pair-Verify-Encrypt-Salt", "Pair-Verify-Encrypt-Info", controllerShared)
	encrypted, err := aeadutil.Seal(sessionKey, "PV-Msg03", sub)
	require.NoError(t, err)

	m4, err := m.HandleMessage(tlv8.Values{
		tlv8.TagState:         {3},
		tlv8.TagEncryptedData: encrypted,
	})
	require.NoError(t, err)
	assert.Equal(t, byte(4), m4.Byte(tlv8.TagState))

	keys := m.Keys()
	require.NotNil(t, keys)
	assert.Equal(t, controllerID, keys.ControllerID)
	assert.Len(t, keys.ControllerToAccessory, 32)
	assert.Len(t, keys.AccessoryToController, 32)
	assert.NotEqual(t, keys.ControllerToAccessory, keys.AccessoryToController)
}

func TestM3RejectsUnknownController(t *testing.T) {
	idStore, err := identity.Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)
	pairStore, err := pairing.Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)

	controllerEphPriv := make([]byte, 32)
	_, err = rand.Read(controllerEphPriv)
	require.NoError(t, err)
	controllerEphPub, err := curve25519.X25519(controllerEphPriv, curve25519.Basepoint)
	require.NoError(t, err)

	m := New(idStore, pairStore)
	_, err = m.HandleMessage(tlv8.Values{tlv8.TagState: {1}, tlv8.TagPublicKey: controllerEphPub})
	require.NoError(t, err)

	sub := tlv8.Encode([]tlv8.Tag{tlv8.TagIdentifier, tlv8.TagSignature}, tlv8.Values{
		tlv8.TagIdentifier: []byte("never-paired"),
		tlv8.TagSignature:  make([]byte, ed25519.SignatureSize),
	})
	sessionKey := hkdfutil.Derive32("Pair-Verify-Encrypt-Salt", "Pair-Verify-Encrypt-Info", m.sharedSecret)
	encrypted, err := aeadutil.Seal(sessionKey, "PV-Msg03", sub)
	require.NoError(t, err)

	_, err = m.HandleMessage(tlv8.Values{tlv8.TagState: {3}, tlv8.TagEncryptedData: encrypted})
	assert.Error(t, err)
}
