// Package identity persists the accessory's own long-term identity: the
// DevicePairingId/DeviceLTSK/DeviceLTPK triple used as the server's identity in
// pair-setup and pair-verify, plus the monotonic mDNS configuration number `c#`.
//
// Uses the same atomic write-temp-then-rename persistence as package pairing
// (grounded on the same kryptco-kr file-persister pattern), generated once on
// first start and stable thereafter (spec.md §3 "Device identity").
package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/wrenhouse/hap/haperr"
)

// Identity is the accessory's persisted long-term identity.
type Identity struct {
	PairingID string `json:"pairing_id"`
	LTSKSeed  []byte `json:"ltsk_seed"`
	LTPK      []byte `json:"ltpk"`
	// ConfigNum is mDNS's `c#`, bumped on every successful pair-setup and
	// /pairings add/remove and persisted so it stays monotonic across restarts
	// (spec.md §4.J). Changes to the accessory database do not bump it.
	ConfigNum uint32 `json:"c_num"`
}

// PrivateKey reconstructs the accessory's Ed25519 private key from its persisted
// seed, for signing pair-setup M6 and pair-verify M2.
func (id *Identity) PrivateKey() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(id.LTSKSeed)
}

// PublicKey returns the accessory's Ed25519 long-term public key.
func (id *Identity) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(id.LTPK)
}

// Store owns the single persisted Identity, guarded by a lock since ConfigNum
// changes at runtime (on every successful pair-setup and /pairings add/remove,
// spec.md §8).
type Store struct {
	mu   sync.Mutex
	path string
	id   *Identity
}

// Open loads the identity from path, generating and persisting a fresh one (a new
// random UUID pairing id and Ed25519 key pair, ConfigNum starting at 1) if the file
// does not yet exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		id, genErr := generate()
		if genErr != nil {
			return nil, genErr
		}
		s.id = id
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, haperr.PersistenceIO("reading device identity", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, haperr.PersistenceIO("decoding device identity", err)
	}
	s.id = &id
	return s, nil
}

func generate() (*Identity, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, haperr.Crypto("generating accessory long-term key pair", err)
	}
	return &Identity{
		PairingID: uuid.NewString(),
		LTSKSeed:  priv.Seed(),
		LTPK:      pub,
		ConfigNum: 1,
	}, nil
}

// Identity returns a copy of the currently persisted identity.
func (s *Store) Identity() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.id
}

// BumpConfigNum increments and persists `c#`, wrapping from 65535 back to 1 per the
// HAP mDNS TXT field's 16-bit range, and returns the new value.
func (s *Store) BumpConfigNum() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id.ConfigNum >= 65535 {
		s.id.ConfigNum = 1
	} else {
		s.id.ConfigNum++
	}
	if err := s.persistLocked(); err != nil {
		return 0, err
	}
	return s.id.ConfigNum, nil
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.id, "", "  ")
	if err != nil {
		return haperr.PersistenceIO("encoding device identity", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".device-*.tmp")
	if err != nil {
		return haperr.PersistenceIO("creating temp device identity file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return haperr.PersistenceIO("writing temp device identity file", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return haperr.PersistenceIO("syncing temp device identity file", err)
	}
	if err := tmp.Close(); err != nil {
		return haperr.PersistenceIO("closing temp device identity file", err)
	}
	return os.Rename(tmpName, s.path)
}
