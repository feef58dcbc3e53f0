// Package haperr defines the error kinds used throughout the HAP server.
//
// The split mirrors the Error/ErrorKind pair used by the Rust implementation this
// library was modeled after: a Kind classifies how the error should surface (an HTTP
// status, a HAP status code embedded in a characteristic response, a pairing TLV
// error, or a fatal condition), and Error carries an optional wrapped cause.
package haperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how the caller must surface it.
type Kind int

const (
	// KindHTTPStatus surfaces the wrapped HTTP status code unchanged.
	KindHTTPStatus Kind = iota
	// KindHAPStatus embeds a negative HAP status code in a characteristic response.
	KindHAPStatus
	// KindPairingStatus embeds a TLV error code in a pair-setup/pair-verify response.
	KindPairingStatus
	// KindCrypto is fatal for the current session; the socket must be closed.
	KindCrypto
	// KindPersistenceIO is fatal for the process after the failure is logged.
	KindPersistenceIO
	// KindProtocol indicates malformed input on a session; the socket must be closed.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindHAPStatus:
		return "hap_status"
	case KindPairingStatus:
		return "pairing_status"
	case KindCrypto:
		return "crypto"
	case KindPersistenceIO:
		return "persistence_io"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every package in this module.
type Error struct {
	Kind Kind
	// Code carries the HTTP status, HAP status, or TLV error code associated
	// with Kind. Unused for KindCrypto/KindPersistenceIO/KindProtocol.
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus builds an error that must surface as the given HTTP status code.
func HTTPStatus(code int, msg string) *Error {
	return &Error{Kind: KindHTTPStatus, Code: code, Msg: msg}
}

// HAPStatus builds an error embedding a negative HAP status code.
func HAPStatus(code int, msg string) *Error {
	return &Error{Kind: KindHAPStatus, Code: code, Msg: msg}
}

// PairingStatus builds an error embedding a pairing TLV error code.
func PairingStatus(code int, msg string) *Error {
	return &Error{Kind: KindPairingStatus, Code: code, Msg: msg}
}

// Crypto wraps a fatal session-ending cryptographic failure.
func Crypto(msg string, err error) *Error {
	return &Error{Kind: KindCrypto, Msg: msg, Err: err}
}

// PersistenceIO wraps a fatal persistence failure.
func PersistenceIO(msg string, err error) *Error {
	return &Error{Kind: KindPersistenceIO, Msg: msg, Err: err}
}

// Protocol wraps a malformed-input failure that must close the session.
func Protocol(msg string, err error) *Error {
	return &Error{Kind: KindProtocol, Msg: msg, Err: err}
}

// As extracts an *Error from err, if any, the way errors.As would.
func As(err error) (*Error, bool) {
	var he *Error
	ok := errors.As(err, &he)
	return he, ok
}
