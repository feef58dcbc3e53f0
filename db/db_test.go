package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhouse/hap/accessory"
	"github.com/wrenhouse/hap/event"
)

type fakeSubs struct {
	subscribed   []key
	unsubscribed []key
}

func (f *fakeSubs) Subscribe(aid, iid uint64)   { f.subscribed = append(f.subscribed, key{aid, iid}) }
func (f *fakeSubs) Unsubscribe(aid, iid uint64) { f.unsubscribed = append(f.unsubscribed, key{aid, iid}) }

func newTestDatabase(t *testing.T) (*Database, *accessory.Accessory) {
	t.Helper()
	bus := event.NewBus()
	d := New(bus)
	acc := accessory.NewSwitch(accessory.Information{Name: "Outlet 1"})
	acc.AID = 1
	d.Add(acc)
	return d, acc
}

func TestReadCharacteristicUnknownIsNotFound(t *testing.T) {
	d, _ := newTestDatabase(t)
	_, err := d.ReadCharacteristic(1, 999, ReadFlags{})
	require.Error(t, err)
}

func TestReadCharacteristicReturnsCurrentValue(t *testing.T) {
	d, acc := newTestDatabase(t)
	on := acc.PrimaryService().CharacteristicByType(acc.PrimaryService().Required[0].Type)
	require.NotNil(t, on)

	res, err := d.ReadCharacteristic(1, on.IID, ReadFlags{})
	require.NoError(t, err)
	assert.Equal(t, false, res.Value)
}

func TestWriteCharacteristicRejectsReadOnly(t *testing.T) {
	d, acc := newTestDatabase(t)
	name := acc.Services[0].Required[3] // Name characteristic, PairedRead only

	err := d.WriteCharacteristic(WriteRequest{AID: 1, IID: name.IID, Value: "nope"}, nil)
	require.Error(t, err)
	assert.Equal(t, "Outlet 1", name.Value())
}

func TestSnapshotIncludesEveryCharacteristicWithMetadata(t *testing.T) {
	d, acc := newTestDatabase(t)

	snap := d.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, acc.AID, snap[0].AID)

	var found bool
	for _, s := range snap[0].Services {
		for _, c := range s.Characteristics {
			found = true
			assert.NotEmpty(t, c.Type)
			assert.NotEmpty(t, c.Perms)
		}
	}
	assert.True(t, found)
}

func TestWriteCharacteristicCommitsValueAndSubscription(t *testing.T) {
	d, acc := newTestDatabase(t)
	on := acc.PrimaryService().Required[0]

	subs := &fakeSubs{}
	ev := true
	err := d.WriteCharacteristic(WriteRequest{AID: 1, IID: on.IID, Value: true, Ev: &ev}, subs)
	require.NoError(t, err)
	assert.Equal(t, true, on.Value())
	assert.Equal(t, []key{{1, on.IID}}, subs.subscribed)
}
