// Package pairsetup implements the Pair-Setup state machine of spec.md §4.D: the
// unauthenticated SRP-6a + Ed25519 exchange a controller runs exactly once, at
// /pair-setup, to become the accessory's first (admin) pairing.
//
// Grounded on original_source/src/main.rs's PIN literal and the M1-M6 message
// sequence it names; the SRP math itself lives in package crypto/srp (no library
// for it exists anywhere in the corpus, see DESIGN.md), with HKDF derivations via
// crypto/hkdfutil and message encryption via crypto/aeadutil.
package pairsetup

import (
	"crypto/ed25519"
	"crypto/rand"
	"math/big"
	"sync/atomic"

	"github.com/wrenhouse/hap/crypto/aeadutil"
	"github.com/wrenhouse/hap/crypto/hkdfutil"
	"github.com/wrenhouse/hap/crypto/srp"
	"github.com/wrenhouse/hap/haperr"
	"github.com/wrenhouse/hap/identity"
	"github.com/wrenhouse/hap/pairing"
	"github.com/wrenhouse/hap/tlv8"
)

// srpUsername is the literal SRP identity HAP's pair-setup always uses; unlike
// ordinary SRP there is no per-user identity, every pairing attempt authenticates
// against the same username (spec.md §4.D M2).
const srpUsername = "Pair-Setup"

// Pairing TLV error codes (spec.md §4.D).
const (
	ErrorUnknown        = 0x01
	ErrorAuthentication = 0x02
	ErrorUnavailable    = 0x02
	ErrorMaxTries       = 0x03
	ErrorBusy           = 0x04
)

// step tracks which message this session is expecting next.
type step int

const (
	stepExpectM1 step = iota
	stepExpectM3
	stepExpectM5
	stepDone
)

// AttemptCounter tracks failed pair-setup attempts since boot. spec.md §4.D's
// "over 100 failed pair-setup attempts since boot" limit is a process-lifetime
// count, not a per-attempt one, so it must outlive any single Machine: a Server
// holds one AttemptCounter and hands the same pointer to every Machine it creates,
// across every session's setup attempts.
type AttemptCounter struct {
	n int32
}

func (c *AttemptCounter) increment() { atomic.AddInt32(&c.n, 1) }
func (c *AttemptCounter) exceeded() bool { return atomic.LoadInt32(&c.n) > 100 }

// Machine drives one controller's pair-setup attempt. It is not safe for
// concurrent use; a session owns exactly one Machine for the lifetime of its
// setup attempt (spec.md §4.D "if another setup is in progress, fail 0x04 Busy").
type Machine struct {
	identity *identity.Store
	pairings *pairing.Store
	pin      string
	attempts *AttemptCounter

	step       step
	srpSession *srp.ServerSession
	salt       []byte
	sharedSSK  []byte // SRP shared secret from M3, used to derive the M5/M6 keys; not cleared afterwards
}

// New creates a pair-setup machine for one attempt. pin is the accessory's 8-digit
// setup code formatted "NNN-NN-NNN". attempts is the boot-global failed-attempt
// counter shared across every Machine the caller creates.
func New(id *identity.Store, pairings *pairing.Store, pin string, attempts *AttemptCounter) *Machine {
	return &Machine{identity: id, pairings: pairings, pin: pin, attempts: attempts}
}

// HandleMessage advances the state machine by one TLV8 message and returns the TLV8
// response to send back. Any returned error is also the message that should be
// mapped to a State=even/Error TLV response and the setup context destroyed
// (spec.md §4.D "All failures return State=even, Error=code and destroy the setup
// context").
func (m *Machine) HandleMessage(in tlv8.Values) (tlv8.Values, error) {
	state := in.Byte(tlv8.TagState)
	switch state {
	case 1:
		return m.handleM1(in)
	case 3:
		return m.handleM3(in)
	case 5:
		return m.handleM5(in)
	default:
		return nil, haperr.PairingStatus(ErrorUnknown, "unexpected pair-setup state")
	}
}

func (m *Machine) handleM1(in tlv8.Values) (tlv8.Values, error) {
	if m.step != stepExpectM1 {
		return nil, haperr.PairingStatus(ErrorBusy, "pair-setup already in progress")
	}
	if m.pairings.HasAdmin() {
		return nil, haperr.PairingStatus(ErrorUnavailable, "accessory is already paired")
	}
	if m.attempts.exceeded() {
		return nil, haperr.PairingStatus(ErrorMaxTries, "too many failed pair-setup attempts")
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, haperr.Crypto("generating SRP salt", err)
	}

	verifier := srp.Verifier(srp.Group3072, salt, srpUsername, m.pin)
	session, err := srp.NewServerSession(srp.Group3072, salt, srpUsername, verifier)
	if err != nil {
		return nil, haperr.Crypto("starting SRP session", err)
	}

	m.srpSession = session
	m.salt = salt
	m.step = stepExpectM3

	return tlv8.Values{
		tlv8.TagState:     {2},
		tlv8.TagPublicKey: session.PubB.Bytes(),
		tlv8.TagSalt:      salt,
	}, nil
}

func (m *Machine) handleM3(in tlv8.Values) (tlv8.Values, error) {
	if m.step != stepExpectM3 {
		return nil, haperr.PairingStatus(ErrorUnknown, "unexpected pair-setup M3")
	}

	pubABytes := in[tlv8.TagPublicKey]
	m1 := in[tlv8.TagProof]
	pubA := bytesToBigInt(pubABytes)

	if err := m.srpSession.ComputeSharedSecret(pubA); err != nil {
		m.attempts.increment()
		m.step = stepExpectM1
		return nil, haperr.PairingStatus(ErrorAuthentication, "invalid SRP public key")
	}
	if !m.srpSession.VerifyClientProof(m1) {
		m.attempts.increment()
		m.step = stepExpectM1
		return nil, haperr.PairingStatus(ErrorAuthentication, "SRP proof verification failed")
	}

	m.sharedSSK = m.srpSession.SharedSecret()
	m2 := m.srpSession.ServerProof(m1)
	m.step = stepExpectM5

	return tlv8.Values{
		tlv8.TagState: {4},
		tlv8.TagProof: m2,
	}, nil
}

func (m *Machine) handleM5(in tlv8.Values) (tlv8.Values, error) {
	if m.step != stepExpectM5 {
		return nil, haperr.PairingStatus(ErrorUnknown, "unexpected pair-setup M5")
	}

	sessionKey := hkdfutil.Derive32("Pair-Setup-Encrypt-Salt", "Pair-Setup-Encrypt-Info", m.sharedSSK)
	plaintext, err := aeadutil.Open(sessionKey, "PS-Msg05", in[tlv8.TagEncryptedData])
	if err != nil {
		m.step = stepExpectM1
		return nil, err
	}

	sub, err := tlv8.Decode(plaintext)
	if err != nil {
		m.step = stepExpectM1
		return nil, err
	}

	controllerID := string(sub[tlv8.TagIdentifier])
	controllerLTPK := sub[tlv8.TagPublicKey]
	controllerSig := sub[tlv8.TagSignature]
	if len(controllerLTPK) != ed25519.PublicKeySize || len(controllerID) == 0 {
		m.step = stepExpectM1
		return nil, haperr.PairingStatus(ErrorAuthentication, "malformed controller identity in M5")
	}

	signSalt := hkdfutil.Derive32("Pair-Setup-Controller-Sign-Salt", "Pair-Setup-Controller-Sign-Info", m.sharedSSK)
	signedData := append(append([]byte{}, signSalt...), []byte(controllerID)...)
	signedData = append(signedData, controllerLTPK...)

	if !ed25519.Verify(ed25519.PublicKey(controllerLTPK), signedData, controllerSig) {
		m.step = stepExpectM1
		return nil, haperr.PairingStatus(ErrorAuthentication, "controller signature verification failed")
	}

	if err := m.pairings.Add(controllerID, controllerLTPK, true); err != nil {
		return nil, err
	}

	resp, err := m.buildM6(controllerID)
	if err != nil {
		return nil, err
	}
	m.step = stepDone
	return resp, nil
}

func (m *Machine) buildM6(controllerID string) (tlv8.Values, error) {
	id := m.identity.Identity()

	accessoryX := hkdfutil.Derive32("Pair-Setup-Accessory-Sign-Salt", "Pair-Setup-Accessory-Sign-Info", m.sharedSSK)
	signedInfo := append(append([]byte{}, accessoryX...), []byte(id.PairingID)...)
	signedInfo = append(signedInfo, id.LTPK...)
	signature := ed25519.Sign(id.PrivateKey(), signedInfo)

	sub := tlv8.Encode(
		[]tlv8.Tag{tlv8.TagIdentifier, tlv8.TagPublicKey, tlv8.TagSignature},
		tlv8.Values{
			tlv8.TagIdentifier: []byte(id.PairingID),
			tlv8.TagPublicKey:  id.LTPK,
			tlv8.TagSignature:  signature,
		},
	)

	sessionKey := hkdfutil.Derive32("Pair-Setup-Encrypt-Salt", "Pair-Setup-Encrypt-Info", m.sharedSSK)
	encrypted, err := aeadutil.Seal(sessionKey, "PS-Msg06", sub)
	if err != nil {
		return nil, err
	}

	return tlv8.Values{
		tlv8.TagState:         {6},
		tlv8.TagEncryptedData: encrypted,
	}, nil
}

func bytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// EncodeError builds the TLV8 response for a failed pair-setup message: the even
// state following whichever message failed, plus the TLV Error tag.
func EncodeError(state byte, code int) []byte {
	return tlv8.Encode(
		[]tlv8.Tag{tlv8.TagState, tlv8.TagError},
		tlv8.Values{
			tlv8.TagState: {state},
			tlv8.TagError: {byte(code)},
		},
	)
}
