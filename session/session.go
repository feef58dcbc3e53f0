// Package session implements the per-connection Session state machine of
// spec.md §3/§5: Unpaired through InPairSetup/InPairVerify to Encrypted, owning its
// subscription set and (once Encrypted) the transport.Conn wrapping its socket.
//
// A Session's subscription set and pairing-machine state are mutated only from the
// goroutine that owns the connection; other goroutines interact with it only
// through Dispatch's channel, the Go analogue of spec.md §5's "single-producer
// message channel" a session drains.
package session

import (
	"github.com/wrenhouse/hap/event"
	"github.com/wrenhouse/hap/pairsetup"
	"github.com/wrenhouse/hap/pairverify"
	"github.com/wrenhouse/hap/transport"
)

// State is where a Session sits in the pairing lifecycle.
type State int

const (
	StateUnpaired State = iota
	StateInPairSetup
	StateInPairVerify
	StateEncrypted
)

type subKey struct {
	aid uint64
	iid uint64
}

// Session is one accepted connection's state. It implements event.Subscriber so the
// event bus can push characteristic changes directly to whichever sessions
// subscribed to them.
type Session struct {
	ID    uint64
	state State

	setupMachine  *pairsetup.Machine
	verifyMachine *pairverify.Machine

	// ControllerID is set once pair-verify completes; empty until then.
	ControllerID string
	conn         *transport.Conn

	subs map[subKey]bool

	// Dispatch is the buffered channel other goroutines (the pairing store's
	// remove notification, the event bus) use to run a function against this
	// session's own state without a lock, per spec.md §5.
	Dispatch chan func(*Session)

	// closed is set by Close and reported by Closed; it is not consulted when
	// Dispatch entries run.
	closed bool

	// EventEmitter formats and writes an EVENT frame for a change onto Conn().
	// Package session has no knowledge of the EVENT/1.0 wire format (that lives
	// in package hapserver); left nil, events are silently dropped, which tests
	// exercising only the subscription bookkeeping rely on.
	EventEmitter func(event.Change)
}

// New creates a fresh Unpaired session.
func New(id uint64) *Session {
	return &Session{
		ID:       id,
		state:    StateUnpaired,
		subs:     make(map[subKey]bool),
		Dispatch: make(chan func(*Session), 16),
	}
}

// State returns the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// BeginPairSetup installs m as this session's pair-setup machine and transitions to
// InPairSetup. Returns false if a setup or verify is already in progress (spec.md
// §4.D "if another setup is in progress, fail 0x04 Busy").
func (s *Session) BeginPairSetup(m *pairsetup.Machine) bool {
	if s.state == StateInPairSetup || s.state == StateInPairVerify {
		return false
	}
	s.setupMachine = m
	s.state = StateInPairSetup
	return true
}

// PairSetupMachine returns the in-progress pair-setup machine, or nil.
func (s *Session) PairSetupMachine() *pairsetup.Machine { return s.setupMachine }

// EndPairSetup returns the session to Unpaired, successful or not (spec.md §4.D
// "All failures ... destroy the setup context").
func (s *Session) EndPairSetup() {
	s.setupMachine = nil
	if s.state == StateInPairSetup {
		s.state = StateUnpaired
	}
}

// BeginPairVerify installs m as this session's pair-verify machine. Pair-verify is
// always allowed (spec.md §4.I), including on an already-Encrypted session
// reconnecting under a fresh TCP connection, so this never refuses.
func (s *Session) BeginPairVerify(m *pairverify.Machine) {
	s.verifyMachine = m
	if s.state == StateUnpaired {
		s.state = StateInPairVerify
	}
}

// PairVerifyMachine returns the in-progress pair-verify machine, or nil.
func (s *Session) PairVerifyMachine() *pairverify.Machine { return s.verifyMachine }

// CompleteEncryption installs conn as the session's encrypted transport and
// transitions to Encrypted (spec.md §4.E M4).
func (s *Session) CompleteEncryption(controllerID string, conn *transport.Conn) {
	s.ControllerID = controllerID
	s.conn = conn
	s.verifyMachine = nil
	s.state = StateEncrypted
}

// Conn returns the session's encrypted transport, or nil before pair-verify
// completes.
func (s *Session) Conn() *transport.Conn { return s.conn }

// Subscribe adds (aid,iid) to this session's subscription set.
func (s *Session) Subscribe(aid, iid uint64) { s.subs[subKey{aid, iid}] = true }

// Unsubscribe removes (aid,iid) from this session's subscription set.
func (s *Session) Unsubscribe(aid, iid uint64) { delete(s.subs, subKey{aid, iid}) }

// IsSubscribed reports whether this session is subscribed to (aid,iid).
func (s *Session) IsSubscribed(aid, iid uint64) bool { return s.subs[subKey{aid, iid}] }

// HandleChange implements event.Subscriber by posting a function to Dispatch; the
// goroutine owning this session drains it and writes the EVENT frame, since only
// that goroutine may write to conn (spec.md §5: "no task holds a lock across a
// suspension point"). This blocks the publishing goroutine if the session's
// Dispatch channel is full, which is acceptable here since Bus.Publish already
// fans out synchronously and a backed-up session should not silently drop events.
func (s *Session) HandleChange(change event.Change) {
	s.Dispatch <- func(sess *Session) { sess.emitEvent(change) }
}

func (s *Session) emitEvent(change event.Change) {
	if s.EventEmitter != nil {
		s.EventEmitter(change)
	}
}

// Close tears the session down: it unsubscribes from bus (spec.md §8's removal
// invariant: "the event bus no longer has subscriptions for that session") and
// marks the session closed (see Closed). Entries already posted to Dispatch are
// neither discarded nor disabled by Close. The caller is still responsible for
// closing the underlying socket.
func (s *Session) Close(bus *event.Bus) {
	bus.UnsubscribeAll(s)
	s.closed = true
}

// Closed reports whether Close has been called on this session.
func (s *Session) Closed() bool { return s.closed }
