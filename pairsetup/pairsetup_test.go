package pairsetup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhouse/hap/identity"
	"github.com/wrenhouse/hap/pairing"
	"github.com/wrenhouse/hap/tlv8"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	idStore, err := identity.Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)
	pairStore, err := pairing.Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)
	return New(idStore, pairStore, "031-45-154", &AttemptCounter{})
}

func TestM1ReturnsSaltAndServerPublicKey(t *testing.T) {
	m := newTestMachine(t)

	out, err := m.HandleMessage(tlv8.Values{tlv8.TagState: {1}, tlv8.TagMethod: {0}})
	require.NoError(t, err)

	assert.Equal(t, byte(2), out.Byte(tlv8.TagState))
	assert.NotEmpty(t, out[tlv8.TagPublicKey])
	assert.Len(t, out[tlv8.TagSalt], 16)
}

func TestM1RejectsWhenAlreadyPaired(t *testing.T) {
	idStore, err := identity.Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)
	pairStore, err := pairing.Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)
	require.NoError(t, pairStore.Add("existing-admin", []byte("ltpk"), true))

	m := New(idStore, pairStore, "031-45-154", &AttemptCounter{})
	_, err = m.HandleMessage(tlv8.Values{tlv8.TagState: {1}})
	require.Error(t, err)
	he, ok := err.(interface{ Error() string })
	assert.True(t, ok)
	assert.Contains(t, he.Error(), "already paired")
}

func TestM3RejectsBeforeM1(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.HandleMessage(tlv8.Values{tlv8.TagState: {3}, tlv8.TagPublicKey: {1, 2, 3}, tlv8.TagProof: {4, 5, 6}})
	assert.Error(t, err)
}

func TestM3RejectsWrongProof(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.HandleMessage(tlv8.Values{tlv8.TagState: {1}})
	require.NoError(t, err)

	_, err = m.HandleMessage(tlv8.Values{
		tlv8.TagState:     {3},
		tlv8.TagPublicKey: {1, 2, 3, 4, 5},
		tlv8.TagProof:     {9, 9, 9},
	})
	require.Error(t, err)
	assert.Equal(t, int32(1), m.attempts.n)
	assert.Equal(t, stepExpectM1, m.step)
}

func TestM5RejectsBeforeM3(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.HandleMessage(tlv8.Values{tlv8.TagState: {5}, tlv8.TagEncryptedData: {1, 2, 3}})
	assert.Error(t, err)
}

func TestHandleMessageRejectsUnknownState(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.HandleMessage(tlv8.Values{tlv8.TagState: {42}})
	assert.Error(t, err)
}

// A fresh Machine must still see failures recorded by a previous attempt: the
// M1 MaxTries guard counts failures since boot, not failures on this Machine.
func TestM1RejectsAfterMaxTriesAcrossMachines(t *testing.T) {
	idStore, err := identity.Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)
	pairStore, err := pairing.Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)
	attempts := &AttemptCounter{n: 101}

	m := New(idStore, pairStore, "031-45-154", attempts)
	_, err = m.HandleMessage(tlv8.Values{tlv8.TagState: {1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many failed pair-setup attempts")
}
