// Package pairverify implements the Pair-Verify state machine of spec.md §4.E: the
// Curve25519 ECDH handshake a previously-paired controller runs on every new
// connection to derive that connection's encrypted session keys.
//
// Grounded on the same corpus this module's pair-setup draws from; Curve25519 comes
// from golang.org/x/crypto/curve25519, the only ECDH primitive named anywhere in
// SPEC_FULL.md's domain stack.
package pairverify

import (
	"crypto/ed25519"
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"github.com/wrenhouse/hap/crypto/aeadutil"
	"github.com/wrenhouse/hap/crypto/hkdfutil"
	"github.com/wrenhouse/hap/haperr"
	"github.com/wrenhouse/hap/identity"
	"github.com/wrenhouse/hap/pairing"
	"github.com/wrenhouse/hap/tlv8"
)

// Pairing TLV error codes (spec.md §4.E reuses §4.D's code space).
const (
	ErrorUnknown        = 0x01
	ErrorAuthentication = 0x02
)

// SessionKeys is the pair of directional keys installed on a connection's session
// once pair-verify M4 completes (spec.md §4.E M4).
type SessionKeys struct {
	ControllerID string
	// ControllerToAccessory ("c2a") decrypts frames the controller sends.
	ControllerToAccessory []byte
	// AccessoryToController ("a2c") encrypts frames sent to the controller.
	AccessoryToController []byte
}

type step int

const (
	stepExpectM1 step = iota
	stepExpectM3
	stepDone
)

// Machine drives one connection's pair-verify handshake. Not safe for concurrent
// use; a session owns exactly one Machine per connection.
type Machine struct {
	identity *identity.Store
	pairings *pairing.Store

	step step

	accessoryEphPub  []byte
	controllerEphPub []byte
	sharedSecret     []byte

	pendingKeys *SessionKeys
}

// New creates a pair-verify machine bound to the accessory's persisted identity and
// pairing store.
func New(id *identity.Store, pairings *pairing.Store) *Machine {
	return &Machine{identity: id, pairings: pairings}
}

// HandleMessage advances the handshake by one TLV8 message.
func (m *Machine) HandleMessage(in tlv8.Values) (tlv8.Values, error) {
	switch in.Byte(tlv8.TagState) {
	case 1:
		return m.handleM1(in)
	case 3:
		return m.handleM3(in)
	default:
		return nil, haperr.PairingStatus(ErrorUnknown, "unexpected pair-verify state")
	}
}

func (m *Machine) handleM1(in tlv8.Values) (tlv8.Values, error) {
	controllerPub := in[tlv8.TagPublicKey]
	if len(controllerPub) != 32 {
		return nil, haperr.PairingStatus(ErrorUnknown, "malformed pair-verify M1 public key")
	}

	accessoryEphPriv := make([]byte, 32)
	if _, err := rand.Read(accessoryEphPriv); err != nil {
		return nil, haperr.Crypto("generating ephemeral Curve25519 key", err)
	}
	accessoryEphPub, err := curve25519.X25519(accessoryEphPriv, curve25519.Basepoint)
	if err != nil {
		return nil, haperr.Crypto("deriving ephemeral Curve25519 public key", err)
	}
	shared, err := curve25519.X25519(accessoryEphPriv, controllerPub)
	if err != nil {
		return nil, haperr.Crypto("computing Curve25519 shared secret", err)
	}

	m.accessoryEphPub = accessoryEphPub
	m.controllerEphPub = append([]byte{}, controllerPub...)
	m.sharedSecret = shared
	m.step = stepExpectM3

	id := m.identity.Identity()
	signedInfo := append(append([]byte{}, m.accessoryEphPub...), []byte(id.PairingID)...)
	signedInfo = append(signedInfo, m.controllerEphPub...)
	signature := ed25519.Sign(id.PrivateKey(), signedInfo)

	sub := tlv8.Encode(
		[]tlv8.Tag{tlv8.TagIdentifier, tlv8.TagSignature},
		tlv8.Values{
			tlv8.TagIdentifier: []byte(id.PairingID),
			tlv8.TagSignature:  signature,
		},
	)

	sessionKey := hkdfutil.Derive32("Pair-Verify-Encrypt-Salt", "Pair-Verify-Encrypt-Info", m.sharedSecret)
	encrypted, err := aeadutil.Seal(sessionKey, "PV-Msg02", sub)
	if err != nil {
		return nil, err
	}

	return tlv8.Values{
		tlv8.TagState:         {2},
		tlv8.TagPublicKey:     m.accessoryEphPub,
		tlv8.TagEncryptedData: encrypted,
	}, nil
}

func (m *Machine) handleM3(in tlv8.Values) (tlv8.Values, error) {
	if m.step != stepExpectM3 {
		return nil, haperr.PairingStatus(ErrorUnknown, "unexpected pair-verify M3")
	}

	sessionKey := hkdfutil.Derive32("Pair-Verify-Encrypt-Salt", "Pair-Verify-Encrypt-Info", m.sharedSecret)
	plaintext, err := aeadutil.Open(sessionKey, "PV-Msg03", in[tlv8.TagEncryptedData])
	if err != nil {
		return nil, err
	}

	sub, err := tlv8.Decode(plaintext)
	if err != nil {
		return nil, err
	}

	controllerID := string(sub[tlv8.TagIdentifier])
	controllerSig := sub[tlv8.TagSignature]

	p := m.pairings.Get(controllerID)
	if p == nil {
		return nil, haperr.PairingStatus(ErrorAuthentication, "unknown controller pairing")
	}

	signedInfo := append(append([]byte{}, m.controllerEphPub...), []byte(controllerID)...)
	signedInfo = append(signedInfo, m.accessoryEphPub...)
	if !ed25519.Verify(ed25519.PublicKey(p.LTPK), signedInfo, controllerSig) {
		return nil, haperr.PairingStatus(ErrorAuthentication, "controller signature verification failed")
	}

	keys := SessionKeys{
		ControllerID:           controllerID,
		ControllerToAccessory:  hkdfutil.Derive32("Control-Salt", "Control-Read-Encryption-Key", m.sharedSecret),
		AccessoryToController:  hkdfutil.Derive32("Control-Salt", "Control-Write-Encryption-Key", m.sharedSecret),
	}
	m.step = stepDone

	resp := tlv8.Values{tlv8.TagState: {4}}
	m.pendingKeys = &keys
	return resp, nil
}

// Keys returns the directional session keys derived at M4, or nil if the handshake
// has not completed successfully yet. The caller (package session) installs these
// on the connection and switches it into the Encrypted state.
func (m *Machine) Keys() *SessionKeys {
	return m.pendingKeys
}
