package pairing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPersistsAndOpenReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairings.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Add("controller-1", []byte("ltpk-bytes"), true))

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Count())
	assert.True(t, reloaded.HasAdmin())
	assert.Equal(t, "controller-1", reloaded.Get("controller-1").ControllerID)
}

func TestRemoveLastAdminIsForbidden(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)
	require.NoError(t, s.Add("only-admin", []byte("k"), true))

	err = s.Remove("only-admin")
	assert.Error(t, err)
	assert.Equal(t, 1, s.Count())
}

func TestRemoveNotifiesListeners(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)
	require.NoError(t, s.Add("admin", []byte("k1"), true))
	require.NoError(t, s.Add("guest", []byte("k2"), false))

	var removed string
	s.OnRemove(func(id string) { removed = id })

	require.NoError(t, s.Remove("guest"))
	assert.Equal(t, "guest", removed)
	assert.Nil(t, s.Get("guest"))
}
