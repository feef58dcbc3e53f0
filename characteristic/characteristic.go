// Package characteristic implements the typed leaf of the HAP data model: a single
// Characteristic struct parameterized by Format, Unit, Perms and Constraints rather
// than one generated Go type per characteristic (see SPEC_FULL.md §9 / design note
// on polymorphic leaves) — the generator in internal/gen populates instances of this
// one struct from the metadata document rather than emitting bespoke types.
package characteristic

import (
	"fmt"
	"sync"

	"github.com/wrenhouse/hap/event"
	"github.com/wrenhouse/hap/haperr"
	"github.com/wrenhouse/hap/haptype"
)

// Format is the wire/value format of a characteristic.
type Format int

const (
	FormatBool Format = iota
	FormatUInt8
	FormatUInt16
	FormatUInt32
	FormatUInt64
	FormatInt32
	FormatFloat
	FormatString
	FormatTlv8
	FormatData
)

// Unit is the optional physical unit a characteristic's value is expressed in.
type Unit int

const (
	UnitNone Unit = iota
	UnitPercentage
	UnitArcdegrees
	UnitCelsius
	UnitLux
	UnitSeconds
)

// Perm is one permission bit a characteristic may carry.
type Perm int

const (
	PermPairedRead Perm = iota
	PermPairedWrite
	PermEvents
	PermAdditionalAuthorization
	PermTimedWrite
	PermHidden
)

// Constraints bounds the values a characteristic may be written to.
type Constraints struct {
	MinValue    *float64
	MaxValue    *float64
	StepValue   *float64
	MaxLen      *int
	ValidValues []int
}

// Characteristic is a typed leaf of an accessory's service tree.
type Characteristic struct {
	// IID is this characteristic's instance id, unique within its accessory.
	// Zero until the owning accessory is published.
	IID uint64

	Type        haptype.HapType
	Format      Format
	Unit        Unit
	Perms       []Perm
	Constraints Constraints

	mu    sync.Mutex
	value interface{}

	publisher event.Publisher
}

// New creates a characteristic of the given type and format with its zero value.
func New(t haptype.HapType, format Format) *Characteristic {
	return &Characteristic{Type: t, Format: format, value: zeroValue(format)}
}

func zeroValue(f Format) interface{} {
	switch f {
	case FormatBool:
		return false
	case FormatString:
		return ""
	case FormatFloat:
		return float64(0)
	case FormatTlv8, FormatData:
		return []byte(nil)
	default:
		return uint64(0)
	}
}

// HasPerm reports whether the characteristic carries perm.
func (c *Characteristic) HasPerm(perm Perm) bool {
	for _, p := range c.Perms {
		if p == perm {
			return true
		}
	}
	return false
}

// SetPublisher installs the event publisher used to announce value changes. Passed
// by value at wiring time (see SPEC_FULL.md §9) rather than held as a back-reference,
// so the characteristic never needs a reference-counted pointer to its bus.
func (c *Characteristic) SetPublisher(p event.Publisher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publisher = p
}

// Value returns the current value under the per-characteristic lock.
func (c *Characteristic) Value() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// SetValue unconditionally installs value without permission checks or constraint
// enforcement (used at startup and by accessory-side behavior, not by the HAP
// write path — see package chario for the enforced path). It emits a change event
// iff value differs from the prior value.
func (c *Characteristic) SetValue(value interface{}) {
	c.mu.Lock()
	old := c.value
	c.value = value
	pub := c.publisher
	iid := c.IID
	c.mu.Unlock()

	if pub != nil && !valuesEqual(old, value) {
		pub.Publish(event.Change{IID: iid, Value: value})
	}
}

// Write validates value against format and constraints and, if it passes, commits it
// the same way SetValue does. It is the entry point used by the characteristic
// write engine (package chario) to enforce spec.md §3's "any committed value
// satisfies its constraints" invariant.
func (c *Characteristic) Write(value interface{}) error {
	coerced, err := coerce(c.Format, value)
	if err != nil {
		return haperr.HAPStatus(StatusInvalidValue, err.Error())
	}
	if err := checkConstraints(c.Format, coerced, c.Constraints); err != nil {
		return haperr.HAPStatus(StatusInvalidValue, err.Error())
	}
	c.SetValue(coerced)
	return nil
}

func valuesEqual(a, b interface{}) bool {
	ab, aIsBytes := a.([]byte)
	bb, bIsBytes := b.([]byte)
	if aIsBytes && bIsBytes {
		if len(ab) != len(bb) {
			return false
		}
		for i := range ab {
			if ab[i] != bb[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

func coerce(format Format, value interface{}) (interface{}, error) {
	switch format {
	case FormatBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case float64:
			return v != 0, nil
		}
	case FormatString:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case FormatFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
	case FormatTlv8, FormatData:
		if v, ok := value.([]byte); ok {
			return v, nil
		}
	default: // integer formats
		switch v := value.(type) {
		case float64:
			return uint64(v), nil
		case uint64:
			return v, nil
		case int:
			return uint64(v), nil
		}
	}
	return nil, fmt.Errorf("value %v does not match format", value)
}

func checkConstraints(format Format, value interface{}, c Constraints) error {
	if format == FormatString {
		if c.MaxLen != nil {
			if s, ok := value.(string); ok && len(s) > *c.MaxLen {
				return fmt.Errorf("value exceeds maximum length %d", *c.MaxLen)
			}
		}
		return nil
	}

	f, ok := asFloat(value)
	if !ok {
		return nil
	}
	if c.MinValue != nil && f < *c.MinValue {
		return fmt.Errorf("value %v below minimum %v", f, *c.MinValue)
	}
	if c.MaxValue != nil && f > *c.MaxValue {
		return fmt.Errorf("value %v above maximum %v", f, *c.MaxValue)
	}
	if len(c.ValidValues) > 0 {
		ok := false
		for _, v := range c.ValidValues {
			if int(f) == v {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("value %v not in valid set", f)
		}
	}
	return nil
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// HAP status codes used by this module; the full table lives with the HTTP layer,
// but constraint-violation writes need this one close to where they're raised.
const StatusInvalidValue = -70410
