// Package event implements the characteristic change-event bus: the fan-out of
// characteristic value changes to whichever sessions have subscribed to them.
//
// A Characteristic never holds a pointer back into a Bus; it holds a Publisher
// handle wired in at startup (see SPEC_FULL.md §9's note on avoiding the source's
// reference-counted cycle), which keeps the data model's structure acyclic.
package event

import "sync"

// Change describes a single characteristic value change. AID is filled in by the
// accessory database, since a bare Characteristic only knows its own IID.
type Change struct {
	AID   uint64
	IID   uint64
	Value interface{}
}

// Publisher is the narrow interface a Characteristic uses to announce a change.
type Publisher interface {
	Publish(Change)
}

// Subscriber receives changes for characteristics it has subscribed to. Sessions
// implement this to receive push notifications (see SPEC_FULL.md §4.C "Event push").
type Subscriber interface {
	// HandleChange is called once per change for every (AID,IID) the subscriber
	// has registered interest in via Bus.Subscribe. It must not block for long —
	// the bus calls it synchronously from the publishing goroutine.
	HandleChange(Change)
}

// Bus fans changes published against one (AID,IID) out to every subscriber
// registered for that pair. It is the single process-wide event bus described in
// SPEC_FULL.md §5.
type Bus struct {
	mu   sync.RWMutex
	subs map[key]map[Subscriber]bool
}

type key struct {
	aid uint64
	iid uint64
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[key]map[Subscriber]bool)}
}

// Subscribe registers sub to receive future changes for (aid,iid).
func (b *Bus) Subscribe(aid, iid uint64, sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := key{aid, iid}
	if b.subs[k] == nil {
		b.subs[k] = make(map[Subscriber]bool)
	}
	b.subs[k][sub] = true
}

// Unsubscribe removes sub's interest in (aid,iid).
func (b *Bus) Unsubscribe(aid, iid uint64, sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := key{aid, iid}
	if m, ok := b.subs[k]; ok {
		delete(m, sub)
		if len(m) == 0 {
			delete(b.subs, k)
		}
	}
}

// UnsubscribeAll removes every subscription sub holds, across every (aid,iid). Used
// when a session closes or a pairing is removed (SPEC_FULL.md §8's removal
// invariant: "the event bus no longer has subscriptions for that session").
func (b *Bus) UnsubscribeAll(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, m := range b.subs {
		delete(m, sub)
		if len(m) == 0 {
			delete(b.subs, k)
		}
	}
}

// Publish fans a change out to every subscriber currently registered for
// (change.AID, change.IID). The relative order across different subscribers is
// unspecified, matching spec.md §5's ordering note.
func (b *Bus) Publish(change Change) {
	b.mu.RLock()
	subs := b.subs[key{change.AID, change.IID}]
	targets := make([]Subscriber, 0, len(subs))
	for s := range subs {
		targets = append(targets, s)
	}
	b.mu.RUnlock()

	for _, s := range targets {
		s.HandleChange(change)
	}
}

// forAccessory binds a Bus to a fixed AID, giving characteristics (which only know
// their own IID) a Publisher that fills in AID automatically.
type forAccessory struct {
	bus *Bus
	aid uint64
}

// PublisherFor returns a Publisher that publishes changes against bus, tagging every
// change with aid. Used when wiring a freshly-built accessory's characteristics.
func PublisherFor(bus *Bus, aid uint64) Publisher {
	return forAccessory{bus: bus, aid: aid}
}

func (f forAccessory) Publish(c Change) {
	c.AID = f.aid
	f.bus.Publish(c)
}
