// Package hkdfutil wraps golang.org/x/crypto/hkdf with the single call shape
// pair-setup and pair-verify both need: derive a fixed-length key from an input
// secret with a literal salt/info string pair (spec.md §4.D/§4.E name a new
// salt/info pair for every derivation step).
package hkdfutil

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Derive32 runs HKDF-SHA512 over ikm with the given salt/info strings and returns
// 32 bytes, the length every derivation in this module needs (session keys and
// signing material alike).
func Derive32(salt, info string, ikm []byte) []byte {
	return Derive(salt, info, ikm, 32)
}

// Derive runs HKDF-SHA512 over ikm with the given salt/info strings and returns n
// bytes.
func Derive(salt, info string, ikm []byte, n int) []byte {
	r := hkdf.New(sha512.New, ikm, []byte(salt), []byte(info))
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		// HKDF-SHA512 can only fail this way if n exceeds 255*64 bytes, which
		// none of this module's fixed 32-byte derivations ever do.
		panic(err)
	}
	return out
}
