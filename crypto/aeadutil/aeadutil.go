// Package aeadutil wraps golang.org/x/crypto/chacha20poly1305 with the nonce
// convention HAP's pairing messages use: an 8-byte ASCII literal like "PS-Msg05"
// left-padded with four zero bytes to fill the cipher's 12-byte nonce (spec.md
// §4.D/§4.E), distinct from the session layer's little-endian counter nonces in
// package transport.
package aeadutil

import (
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/wrenhouse/hap/haperr"
)

// LiteralNonce left-pads an 8-byte ASCII nonce literal (e.g. "PS-Msg05") to the
// AEAD's 12-byte nonce size.
func LiteralNonce(literal string) []byte {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	copy(nonce[4:], literal)
	return nonce
}

// Seal encrypts plaintext with key under the given nonce literal and no
// additional data, appending the 16-byte Poly1305 tag.
func Seal(key []byte, nonceLiteral string, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, haperr.Crypto("constructing ChaCha20-Poly1305 cipher", err)
	}
	return aead.Seal(nil, LiteralNonce(nonceLiteral), plaintext, nil), nil
}

// Open decrypts and authenticates ciphertext with key under the given nonce
// literal and no additional data.
func Open(key []byte, nonceLiteral string, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, haperr.Crypto("constructing ChaCha20-Poly1305 cipher", err)
	}
	plaintext, err := aead.Open(nil, LiteralNonce(nonceLiteral), ciphertext, nil)
	if err != nil {
		return nil, haperr.Crypto("decrypting pairing message", err)
	}
	return plaintext, nil
}
