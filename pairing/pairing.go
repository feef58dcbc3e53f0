// Package pairing implements the persistent pairing store: the map of controller
// pairing id to long-term Ed25519 public key and admin flag that survives restart.
//
// Grounded on kryptco-kr/src/common/persistance/pairing_persistence.go's
// persisted-struct/to-from conversion pattern and kryptco-kr/file_persister.go's
// read/write-whole-file persistence, generalized to atomic write-temp-then-rename
// so a crash mid-write never corrupts the file (spec.md §4.K).
package pairing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/wrenhouse/hap/haperr"
)

// Pairing is one paired controller's record, per spec.md §3. LTPK is written to
// pairings.json as base64 (encoding/json's encoding of []byte) under the key
// ltpk_hex; it is not hex-encoded.
type Pairing struct {
	ControllerID string `json:"id"`
	LTPK         []byte `json:"ltpk_hex"`
	Admin        bool   `json:"admin"`
}

// RemoveListener is notified when a pairing is removed, so the session registry can
// close any session bound to that controller id (spec.md §8's removal invariant).
type RemoveListener func(controllerID string)

// Store is the pairing store: an in-memory map backed by an atomically-written
// file, guarded by a single sync.RWMutex. Add and Remove hold it exclusively;
// List, Get, HasAdmin and Count take it shared, so reads do not exclude each other.
type Store struct {
	mu   sync.RWMutex
	path string

	byID map[string]*Pairing

	listenersMu sync.Mutex
	listeners   []RemoveListener
}

// Open loads the pairing store from path, creating an empty store if the file does
// not yet exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path, byID: make(map[string]*Pairing)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, haperr.PersistenceIO("reading pairing store", err)
	}

	var records []*Pairing
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, haperr.PersistenceIO("decoding pairing store", err)
	}
	for _, r := range records {
		s.byID[r.ControllerID] = r
	}
	return s, nil
}

// OnRemove registers fn to be called, outside the store's lock, whenever a pairing
// is removed.
func (s *Store) OnRemove(fn RemoveListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Add inserts or replaces the pairing for id and persists the store.
func (s *Store) Add(id string, ltpk []byte, admin bool) error {
	s.mu.Lock()
	s.byID[id] = &Pairing{ControllerID: id, LTPK: ltpk, Admin: admin}
	err := s.persistLocked()
	s.mu.Unlock()
	return err
}

// Remove deletes the pairing for id. Removing the last admin pairing is forbidden
// (spec.md §4.K), returning a PairingStatus(0x02) error and leaving the store
// unchanged. On success, every registered RemoveListener is notified.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	p, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return haperr.PairingStatus(tlvErrorUnknown, "no such pairing")
	}
	if p.Admin && s.countAdminsLocked() == 1 {
		s.mu.Unlock()
		return haperr.PairingStatus(tlvErrorUnknown, "cannot remove the last admin pairing")
	}

	delete(s.byID, id)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.listenersMu.Lock()
	listeners := append([]RemoveListener(nil), s.listeners...)
	s.listenersMu.Unlock()
	for _, fn := range listeners {
		fn(id)
	}
	return nil
}

// List returns every pairing currently stored, in unspecified order.
func (s *Store) List() []*Pairing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Pairing, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	return out
}

// Get returns the pairing for id, or nil if there is none.
func (s *Store) Get(id string) *Pairing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// HasAdmin reports whether any pairing in the store is an admin, the condition
// pair-setup's "already paired" check (spec.md §4.D M1) ultimately relies on.
func (s *Store) HasAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countAdminsLocked() > 0
}

// Count returns the number of pairings currently stored.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *Store) countAdminsLocked() int {
	n := 0
	for _, p := range s.byID {
		if p.Admin {
			n++
		}
	}
	return n
}

// persistLocked writes the store to disk atomically: a temp file in the same
// directory, fsynced, then renamed over the target path, so a crash mid-write
// never leaves a truncated pairings.json (spec.md §4.K).
func (s *Store) persistLocked() error {
	records := make([]*Pairing, 0, len(s.byID))
	for _, p := range s.byID {
		records = append(records, p)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return haperr.PersistenceIO("encoding pairing store", err)
	}
	return atomicWrite(s.path, data)
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pairing-*.tmp")
	if err != nil {
		return haperr.PersistenceIO("creating temp pairing file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return haperr.PersistenceIO("writing temp pairing file", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return haperr.PersistenceIO("syncing temp pairing file", err)
	}
	if err := tmp.Close(); err != nil {
		return haperr.PersistenceIO("closing temp pairing file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return haperr.PersistenceIO("renaming pairing file into place", err)
	}
	return nil
}

// tlvErrorUnknown is the TLV error code 0x02 spec.md §4.K/§4.D reuse for both
// "authentication failed" and "this operation cannot be performed" cases.
const tlvErrorUnknown = 0x02
