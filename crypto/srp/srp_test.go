package srp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerComputesSameSecretAsControllerWouldDerive(t *testing.T) {
	group := Group3072
	salt := []byte("some-salt-bytes")
	username := "Pair-Setup"
	password := "031-45-154"

	verifier := Verifier(group, salt, username, password)
	server, err := NewServerSession(group, salt, username, verifier)
	require.NoError(t, err)
	require.NotNil(t, server.PubB)

	// A real controller derives its ephemeral a/A the same way this package's
	// server side does; emulate that here with the package's own helper.
	a, err := randomExponent(group.N)
	require.NoError(t, err)
	pubA := new(big.Int).Exp(group.G, a, group.N)

	require.NoError(t, server.ComputeSharedSecret(pubA))
	assert.Len(t, server.SharedSecret(), len(group.N.Bytes()))

	// The controller's side of the exchange: S = (B - k*g^x)^(a + u*x) mod N.
	size := len(group.N.Bytes())
	x := privateKey(salt, username, password)
	u := hashN(pad(pubA, size), pad(server.PubB, size))
	gx := new(big.Int).Exp(group.G, x, group.N)
	base := new(big.Int).Sub(server.PubB, new(big.Int).Mul(group.multiplier(), gx))
	base.Mod(base, group.N)
	exp := new(big.Int).Add(a, new(big.Int).Mul(u, x))
	clientS := new(big.Int).Exp(base, exp, group.N)
	assert.Equal(t, pad(clientS, size), server.SharedSecret())

	// M1/M2 proofs are deterministic given the session's inputs.
	m1 := server.ClientProof()
	assert.True(t, server.VerifyClientProof(m1))
	assert.NotEmpty(t, server.ServerProof(m1))
}

func TestComputeSharedSecretRejectsZeroPublicKey(t *testing.T) {
	group := Group3072
	verifier := Verifier(group, []byte("salt"), "Pair-Setup", "031-45-154")
	server, err := NewServerSession(group, []byte("salt"), "Pair-Setup", verifier)
	require.NoError(t, err)

	err = server.ComputeSharedSecret(new(big.Int).Set(group.N))
	assert.Error(t, err)
}
