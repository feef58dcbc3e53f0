package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhouse/hap/event"
)

func TestNewSessionStartsUnpaired(t *testing.T) {
	s := New(1)
	assert.Equal(t, StateUnpaired, s.State())
}

func TestBeginPairSetupRefusesWhenAlreadyInProgress(t *testing.T) {
	s := New(1)
	require.True(t, s.BeginPairSetup(nil))
	assert.Equal(t, StateInPairSetup, s.State())
	assert.False(t, s.BeginPairSetup(nil))
}

func TestEndPairSetupReturnsToUnpaired(t *testing.T) {
	s := New(1)
	s.BeginPairSetup(nil)
	s.EndPairSetup()
	assert.Equal(t, StateUnpaired, s.State())
	assert.Nil(t, s.PairSetupMachine())
}

func TestSubscriptionBookkeeping(t *testing.T) {
	s := New(1)
	assert.False(t, s.IsSubscribed(1, 10))
	s.Subscribe(1, 10)
	assert.True(t, s.IsSubscribed(1, 10))
	s.Unsubscribe(1, 10)
	assert.False(t, s.IsSubscribed(1, 10))
}

func TestHandleChangePostsToDispatch(t *testing.T) {
	s := New(1)
	var received event.Change
	s.EventEmitter = func(c event.Change) { received = c }

	s.HandleChange(event.Change{AID: 1, IID: 10, Value: true})
	fn := <-s.Dispatch
	fn(s)

	assert.Equal(t, uint64(1), received.AID)
	assert.Equal(t, uint64(10), received.IID)
}

func TestCloseUnsubscribesFromBus(t *testing.T) {
	bus := event.NewBus()
	s := New(1)
	bus.Subscribe(1, 10, s)

	s.Close(bus)
	bus.Publish(event.Change{AID: 1, IID: 10, Value: true})

	select {
	case <-s.Dispatch:
		t.Fatal("expected no dispatch after session close")
	default:
	}
	assert.True(t, s.Closed())
}
