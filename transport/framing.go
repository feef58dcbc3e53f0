// Package transport implements the encrypted session layer of spec.md §4.H: the
// per-connection frame codec installed once pair-verify completes. Named to mirror
// ivucica-hc/hap/ip_transport.go's transport-owns-the-wire convention, but scoped
// here to only the framing concern — connection lifecycle and the HAP-HTTP router
// that rides on top of it live in package hapserver.
package transport

import (
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/wrenhouse/hap/haperr"
)

// maxFrame is the largest plaintext payload a single frame may carry (spec.md
// §4.H: "1 ≤ L ≤ 1024").
const maxFrame = 1024

// Conn wraps a net.Conn-shaped duplex stream with the encrypted framing HAP uses
// after pair-verify: each direction has its own key and its own monotonically
// increasing 64-bit nonce counter, never reused and never rewound (spec.md §8's
// nonce monotonicity invariant).
type Conn struct {
	rw io.ReadWriter

	readAEAD  cipherAEAD
	writeAEAD cipherAEAD

	readNonce  uint64
	writeNonce uint64

	// writeMu serializes writes so an unsolicited EVENT frame never interleaves
	// with response bytes mid-frame (spec.md §4.H).
	writeMu sync.Mutex

	readBuf []byte
}

type cipherAEAD interface {
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
}

// NewConn wraps rw with the given directional keys, each 32 bytes, counters
// starting at 0 as spec.md §4.E M4 requires.
func NewConn(rw io.ReadWriter, readKey, writeKey []byte) (*Conn, error) {
	readAEAD, err := chacha20poly1305.New(readKey)
	if err != nil {
		return nil, haperr.Crypto("constructing read-direction cipher", err)
	}
	writeAEAD, err := chacha20poly1305.New(writeKey)
	if err != nil {
		return nil, haperr.Crypto("constructing write-direction cipher", err)
	}
	return &Conn{rw: rw, readAEAD: readAEAD, writeAEAD: writeAEAD}, nil
}

// ReadFrame reads and decrypts the next frame, returning its plaintext. A failed
// decryption is unrecoverable per spec.md §7: the channel keys are presumed lost or
// an attack is in progress, so the caller must close the underlying connection.
func (c *Conn) ReadFrame() ([]byte, error) {
	var header [2]byte
	if _, err := io.ReadFull(c.rw, header[:]); err != nil {
		return nil, err
	}
	length := int(binary.LittleEndian.Uint16(header[:]))
	if length == 0 || length > maxFrame {
		return nil, haperr.Protocol("invalid encrypted frame length", nil)
	}

	sealed := make([]byte, length+chacha20poly1305.Overhead)
	if _, err := io.ReadFull(c.rw, sealed); err != nil {
		return nil, err
	}

	nonce := nonceFor(c.readNonce)
	plaintext, err := c.readAEAD.Open(nil, nonce, sealed, header[:])
	if err != nil {
		return nil, haperr.Crypto("decrypting frame", err)
	}
	c.readNonce++
	return plaintext, nil
}

// WriteFrame encrypts and writes plaintext as one or more frames, splitting it into
// maxFrame-byte chunks if necessary. Safe for concurrent use: response writes and
// unsolicited event writes on the same Conn serialize against each other.
func (c *Conn) WriteFrame(plaintext []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	for len(plaintext) > 0 {
		n := len(plaintext)
		if n > maxFrame {
			n = maxFrame
		}
		chunk := plaintext[:n]
		plaintext = plaintext[n:]

		var header [2]byte
		binary.LittleEndian.PutUint16(header[:], uint16(n))

		nonce := nonceFor(c.writeNonce)
		sealed := c.writeAEAD.Seal(nil, nonce, chunk, header[:])
		c.writeNonce++

		if _, err := c.rw.Write(header[:]); err != nil {
			return err
		}
		if _, err := c.rw.Write(sealed); err != nil {
			return err
		}
	}
	return nil
}

// nonceFor builds the 12-byte nonce for frame counter n: an 8-byte little-endian
// counter in the low bytes, the high 4 bytes zero (spec.md §4.H).
func nonceFor(n uint64) []byte {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	binary.LittleEndian.PutUint64(nonce[:8], n)
	return nonce
}
