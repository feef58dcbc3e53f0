package hap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhouse/hap/accessory"
	"github.com/wrenhouse/hap/category"
	"github.com/wrenhouse/hap/config"
	"github.com/wrenhouse/hap/mdns"
)

func newTestConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Name:        "Test Outlet",
		Category:    category.Outlets,
		StoragePath: t.TempDir(),
		Pin:         "031-45-154",
	}
}

func TestNewTransportAssignsBridgeAIDOne(t *testing.T) {
	bridge := accessory.NewSwitch(accessory.Information{Name: "Test Outlet"})
	tr, err := NewTransport(newTestConfig(t), bridge)
	require.NoError(t, err)

	impl := tr.(*transport)
	assert.Equal(t, uint64(1), bridge.AID)
	assert.Equal(t, uint64(2), impl.nextAID)
}

func TestAddAccessoryAssignsSequentialAIDs(t *testing.T) {
	bridge := accessory.NewSwitch(accessory.Information{Name: "Bridge"})
	tr, err := NewTransport(newTestConfig(t), bridge)
	require.NoError(t, err)

	second := accessory.NewSwitch(accessory.Information{Name: "Second"})
	third := accessory.NewSwitch(accessory.Information{Name: "Third"})
	require.NoError(t, tr.AddAccessory(second))
	require.NoError(t, tr.AddAccessory(third))

	assert.Equal(t, uint64(2), second.AID)
	assert.Equal(t, uint64(3), third.AID)
}

func TestAddAccessoryRespectsExplicitAID(t *testing.T) {
	bridge := accessory.NewSwitch(accessory.Information{Name: "Bridge"})
	tr, err := NewTransport(newTestConfig(t), bridge)
	require.NoError(t, err)

	pinned := accessory.NewSwitch(accessory.Information{Name: "Pinned"})
	pinned.AID = 42
	require.NoError(t, tr.AddAccessory(pinned))

	next := accessory.NewSwitch(accessory.Information{Name: "Next"})
	require.NoError(t, tr.AddAccessory(next))
	assert.Equal(t, uint64(43), next.AID)
}

func TestNewTransportPersistsStoreFilesUnderStoragePath(t *testing.T) {
	cfg := newTestConfig(t)
	bridge := accessory.NewSwitch(accessory.Information{Name: "Test Outlet"})
	_, err := NewTransport(cfg, bridge)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(cfg.StoragePath, "device.json"))
}

func TestStatusFlagsReflectAdminPairingPresence(t *testing.T) {
	bridge := accessory.NewSwitch(accessory.Information{Name: "Bridge"})
	tr, err := NewTransport(newTestConfig(t), bridge)
	require.NoError(t, err)
	impl := tr.(*transport)

	assert.Equal(t, mdns.StatusUnpaired, impl.statusFlags())

	require.NoError(t, impl.pairings.Add("controller-1", []byte("ltpk"), true))
	assert.Equal(t, mdns.StatusPaired, impl.statusFlags())
}

func TestStartBindsAListenerAndStopReleasesIt(t *testing.T) {
	bridge := accessory.NewSwitch(accessory.Information{Name: "Bridge"})
	tr, err := NewTransport(newTestConfig(t), bridge)
	require.NoError(t, err)

	require.NoError(t, tr.Start())
	tr.Stop()
}
