package identity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenGeneratesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")

	s, err := Open(path)
	require.NoError(t, err)
	id := s.Identity()
	assert.NotEmpty(t, id.PairingID)
	assert.Len(t, id.LTSKSeed, 32)
	assert.Len(t, id.LTPK, 32)
	assert.EqualValues(t, 1, id.ConfigNum)

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, id.PairingID, reloaded.Identity().PairingID)
	assert.Equal(t, id.LTSKSeed, reloaded.Identity().LTSKSeed)
}

func TestBumpConfigNumIncrementsAndWraps(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)

	n, err := s.BumpConfigNum()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	s.mu.Lock()
	s.id.ConfigNum = 65535
	s.mu.Unlock()

	n, err = s.BumpConfigNum()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPrivateKeyMatchesPublicKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)
	id := s.Identity()
	assert.Equal(t, id.PublicKey(), id.PrivateKey().Public())
}
