// Package config defines the Config struct and defaulting routine shared by every
// accessory server started with this module, generalized from
// ivucica-hc/hap/ip_transport.go's default_config merge logic (there scoped to the
// IP transport alone) to the full pin/category/storage/port shape of spec.md §3.
package config

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/wrenhouse/hap/category"
	"github.com/wrenhouse/hap/haperr"
)

// Config controls one accessory server instance.
type Config struct {
	// Name is the accessory's display name, also used as the default storage
	// directory (mirrors ip_transport.go's "storage ... named exactly like the
	// accessory").
	Name string

	// Category is the accessory's HAP category, advertised in mDNS's `ci` TXT
	// field.
	Category category.Category

	// StoragePath is where device.json and pairings.json live. Defaults to Name
	// if empty. The generator's metadata_hash is not kept here; it sits beside
	// internal/gen/metadata.json.
	StoragePath string

	// Port is the TCP port the HAP-HTTP server listens on. Empty means pick a
	// random free port, the way ip_transport.go's empty Port does.
	Port string

	// Pin is the 8-digit setup code, formatted "NNN-NN-NNN". Defaults to a
	// randomly generated code if empty, since a fixed literal default fails the
	// HAP spec's "not a trivially guessable code" guidance that
	// ivucica-hc's hardcoded 00102003 ignores.
	Pin string

	// SetupID is the 4-character alphanumeric setup id. Defaults to a random
	// 4-character code if empty. It is not part of the mDNS advertisement: the
	// TXT `id` field carries the accessory's pairing id.
	SetupID string
}

// WithDefaults returns a copy of c with empty StoragePath, Pin and SetupID filled
// in, the same merge-over-defaults shape as ip_transport.go's NewIPTransport local
// default_config, generalized to this module's full Config. Name is required;
// Category and Port are returned as given.
func (c Config) WithDefaults() (Config, error) {
	out := c

	if out.Name == "" {
		return Config{}, haperr.HTTPStatus(400, "config: Name is required")
	}
	if out.StoragePath == "" {
		out.StoragePath = out.Name
	}
	if out.Pin == "" {
		pin, err := randomPin()
		if err != nil {
			return Config{}, err
		}
		out.Pin = pin
	}
	if out.SetupID == "" {
		id, err := randomSetupID()
		if err != nil {
			return Config{}, err
		}
		out.SetupID = id
	}
	return out, nil
}

func randomPin() (string, error) {
	digits := make([]int, 8)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", haperr.Crypto("generating random pin", err)
		}
		digits[i] = int(n.Int64())
	}
	return fmt.Sprintf("%d%d%d-%d%d-%d%d%d",
		digits[0], digits[1], digits[2],
		digits[3], digits[4],
		digits[5], digits[6], digits[7]), nil
}

const setupIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomSetupID() (string, error) {
	out := make([]byte, 4)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(setupIDAlphabet))))
		if err != nil {
			return "", haperr.Crypto("generating random setup id", err)
		}
		out[i] = setupIDAlphabet[n.Int64()]
	}
	return string(out), nil
}
