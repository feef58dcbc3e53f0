// Package srp implements the SRP-6a Secure Remote Password exchange HAP's
// pair-setup uses: the 3072-bit group of RFC 5054 and SHA-512 as the hash
// function. No third-party SRP implementation exists anywhere in the example
// corpus this module draws from, so this is built directly on math/big — see
// DESIGN.md for why that fallback was unavoidable here.
package srp

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"math/big"
)

// Group is the SRP prime/generator pair. Group3072 is the only one this package
// exposes, matching spec.md §4.D's "SRP group is 3072-bit (RFC 5054)".
type Group struct {
	N *big.Int
	G *big.Int
}

// Group3072 is the RFC 5054 3072-bit group.
var Group3072 = Group{
	N: mustHex(rfc5054N3072Hex),
	G: big.NewInt(5),
}

func mustHex(hexDigits string) *big.Int {
	n := new(big.Int)
	n.SetString(hexDigits, 16)
	return n
}

func hashN(data ...[]byte) *big.Int {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}

func pad(n *big.Int, size int) []byte {
	b := n.Bytes()
	if len(b) >= size {
		return b
	}
	out := make([]byte, size-len(b))
	return append(out, b...)
}

// k = H(N | PAD(g)), the SRP-6a multiplier, computed against Group3072's byte width.
func (g Group) multiplier() *big.Int {
	size := len(g.N.Bytes())
	return new(big.Int).Mod(hashN(pad(g.N, size), pad(g.G, size)), g.N)
}

// Verifier derives the password verifier v = g^x mod N, x = H(s | H(I | ":" | P)),
// from the SRP username I, password P and salt s. Package pairsetup derives v from
// the setup code at every M1; neither v nor the PIN is written to the pairing store.
func Verifier(group Group, salt []byte, username, password string) *big.Int {
	x := privateKey(salt, username, password)
	return new(big.Int).Exp(group.G, x, group.N)
}

func privateKey(salt []byte, username, password string) *big.Int {
	inner := sha512.Sum512([]byte(username + ":" + password))
	return hashN(salt, inner[:])
}

// ServerSession holds the accessory side's state across M1 (server public key,
// salt) through M3 (shared secret and proof).
type ServerSession struct {
	group    Group
	salt     []byte
	username string
	verifier *big.Int

	privB *big.Int
	PubB  *big.Int
	pubA  *big.Int

	sharedSecret *big.Int
}

// NewServerSession starts an SRP exchange: generates the accessory's ephemeral
// key pair b/B = k*v + g^b mod N, per spec.md §4.D M2.
func NewServerSession(group Group, salt []byte, username string, verifier *big.Int) (*ServerSession, error) {
	b, err := randomExponent(group.N)
	if err != nil {
		return nil, err
	}
	k := group.multiplier()
	gb := new(big.Int).Exp(group.G, b, group.N)
	kv := new(big.Int).Mul(k, verifier)
	B := new(big.Int).Mod(new(big.Int).Add(kv, gb), group.N)

	return &ServerSession{
		group:    group,
		salt:     salt,
		username: username,
		verifier: verifier,
		privB:    b,
		PubB:     B,
	}, nil
}

func randomExponent(n *big.Int) (*big.Int, error) {
	// 32 bytes of entropy, matching the RFC 5054 examples' private-key size; well
	// under N's bit length for every group this package supports.
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}

// ComputeSharedSecret validates the controller's public key A and derives the
// shared secret S = (A * v^u)^b mod N, u = H(PAD(A) | PAD(B)). A's validity
// (A mod N != 0) is checked per the SRP-6a spec to reject a trivial-DH attack.
func (s *ServerSession) ComputeSharedSecret(pubA *big.Int) error {
	if new(big.Int).Mod(pubA, s.group.N).Sign() == 0 {
		return errInvalidPublicKey
	}
	size := len(s.group.N.Bytes())
	u := hashN(pad(pubA, size), pad(s.PubB, size))

	vu := new(big.Int).Exp(s.verifier, u, s.group.N)
	base := new(big.Int).Mod(new(big.Int).Mul(pubA, vu), s.group.N)
	s.sharedSecret = new(big.Int).Exp(base, s.privB, s.group.N)
	s.pubA = pubA
	return nil
}

var errInvalidPublicKey = errInvalid("invalid SRP public key")

type errInvalid string

func (e errInvalid) Error() string { return string(e) }

// SharedSecret returns S as raw big-endian bytes, padded to the group's byte
// width, the value HKDF derives pair-setup's session key from.
func (s *ServerSession) SharedSecret() []byte {
	return pad(s.sharedSecret, len(s.group.N.Bytes()))
}

// ClientProof computes M1, the value the controller must send at M3 and which
// this session must verify: M1 = H(H(N) xor H(g) | H(I) | s | A | B | K),
// K = H(S).
func (s *ServerSession) ClientProof() []byte {
	return clientProof(s.group, s.username, s.salt, s.pubA, s.PubB, s.SharedSecret())
}

// VerifyClientProof reports whether the controller-supplied proof m1 matches
// the session's own computation of M1.
func (s *ServerSession) VerifyClientProof(m1 []byte) bool {
	return subtle.ConstantTimeCompare(s.ClientProof(), m1) == 1
}

// ServerProof computes M2 = H(A | M1 | K), the value sent back at M4.
func (s *ServerSession) ServerProof(m1 []byte) []byte {
	h := sha512.New()
	h.Write(pad(s.pubA, len(s.group.N.Bytes())))
	h.Write(m1)
	k := sha512.Sum512(s.SharedSecret())
	h.Write(k[:])
	return h.Sum(nil)
}

func clientProof(group Group, username string, salt []byte, pubA, pubB *big.Int, sharedSecret []byte) []byte {
	size := len(group.N.Bytes())
	hn := sha512.Sum512(pad(group.N, size))
	hg := sha512.Sum512(pad(group.G, size))
	xored := make([]byte, len(hn))
	for i := range xored {
		xored[i] = hn[i] ^ hg[i]
	}
	hi := sha512.Sum512([]byte(username))
	k := sha512.Sum512(sharedSecret)

	h := sha512.New()
	h.Write(xored)
	h.Write(hi[:])
	h.Write(salt)
	h.Write(pad(pubA, size))
	h.Write(pad(pubB, size))
	h.Write(k[:])
	return h.Sum(nil)
}
