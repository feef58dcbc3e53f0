// Package db implements the accessory list: the ordered collection of accessories
// addressed by (AID,IID), its JSON projection for GET /accessories, and the
// read/write entry points the characteristics handler in package chario drives.
//
// Grounded on original_source/src/transport/http/handler/characteristics.rs's
// AccessoryList.read_characteristic/write_characteristic split, kept here as plain
// Go methods rather than threaded through a JSON handler trait.
package db

import (
	"sync"

	"github.com/wrenhouse/hap/accessory"
	"github.com/wrenhouse/hap/characteristic"
	"github.com/wrenhouse/hap/event"
	"github.com/wrenhouse/hap/haperr"
)

// ReadFlags selects which optional fields a characteristic read includes, the four
// booleans of spec.md §4.B ("meta", "perms", "type", "ev").
type ReadFlags struct {
	Meta  bool
	Perms bool
	Type  bool
	Ev    bool
}

// ReadResult is one object in a GET /characteristics response body.
type ReadResult struct {
	AID   uint64      `json:"aid"`
	IID   uint64      `json:"iid"`
	Value interface{} `json:"value,omitempty"`
	// Status is nil on success when the request had no failing entries (the
	// handler strips it before responding 200); non-nil (0 or a negative HAP
	// status) whenever a 207 Multi-Status response is possible.
	Status *int `json:"status,omitempty"`

	Format      string   `json:"format,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	MinValue    *float64 `json:"minValue,omitempty"`
	MaxValue    *float64 `json:"maxValue,omitempty"`
	StepValue   *float64 `json:"minStep,omitempty"`
	Perms       []string `json:"perms,omitempty"`
	Type        string   `json:"type,omitempty"`
	Events      *bool    `json:"ev,omitempty"`
}

// WriteRequest is one object in a PUT /characteristics request body.
type WriteRequest struct {
	AID      uint64      `json:"aid"`
	IID      uint64      `json:"iid"`
	Value    interface{} `json:"value,omitempty"`
	Ev       *bool       `json:"ev,omitempty"`
	AuthData string      `json:"authData,omitempty"`
	Remote   bool        `json:"remote,omitempty"`
}

// WriteResult is one object in a PUT /characteristics response body.
type WriteResult struct {
	AID    uint64 `json:"aid"`
	IID    uint64 `json:"iid"`
	Status int    `json:"status"`
}

// Subscriptions is the narrow interface the database needs from a session's
// subscription set to honor a write's "ev" field, letting db stay independent of
// the session package.
type Subscriptions interface {
	Subscribe(aid, iid uint64)
	Unsubscribe(aid, iid uint64)
}

// Database is the ordered collection of accessories published by a Transport,
// addressed by (AID,IID) for O(1) lookup. Accessories are added once at startup;
// the list itself is read-mostly thereafter (spec.md §5), so lookups only need a
// read lock.
type Database struct {
	mu          sync.RWMutex
	accessories []*accessory.Accessory
	byIID       map[key]*characteristic.Characteristic
	bus         *event.Bus
}

type key struct {
	aid uint64
	iid uint64
}

// New creates an empty database publishing change events on bus.
func New(bus *event.Bus) *Database {
	return &Database{
		byIID: make(map[key]*characteristic.Characteristic),
		bus:   bus,
	}
}

// Add appends acc to the database, assigning its IIDs and wiring its
// characteristics to the shared event bus. acc.AID must already be set and unique.
func (d *Database) Add(acc *accessory.Accessory) {
	acc.AssignIIDs(event.PublisherFor(d.bus, acc.AID))

	d.mu.Lock()
	defer d.mu.Unlock()
	d.accessories = append(d.accessories, acc)
	for _, s := range acc.Services {
		for _, c := range s.Characteristics() {
			d.byIID[key{acc.AID, c.IID}] = c
		}
	}
}

// Accessories returns the accessories currently published, in add order.
func (d *Database) Accessories() []*accessory.Accessory {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*accessory.Accessory, len(d.accessories))
	copy(out, d.accessories)
	return out
}

// AccessorySnapshot is one accessory's projection in a GET /accessories response.
type AccessorySnapshot struct {
	AID      uint64            `json:"aid"`
	Services []ServiceSnapshot `json:"services"`
}

// ServiceSnapshot is one service's projection within an AccessorySnapshot.
type ServiceSnapshot struct {
	IID             uint64       `json:"iid"`
	Type            string       `json:"type"`
	Hidden          bool         `json:"hidden,omitempty"`
	Primary         bool         `json:"primary,omitempty"`
	Characteristics []ReadResult `json:"characteristics"`
}

// Snapshot projects every published accessory to the shape GET /accessories
// serializes (spec.md §4.B), with meta/perms/type always included the way
// real HAP controllers expect from the bulk accessory list.
func (d *Database) Snapshot() []AccessorySnapshot {
	flags := ReadFlags{Meta: true, Perms: true, Type: true}

	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]AccessorySnapshot, 0, len(d.accessories))
	for _, acc := range d.accessories {
		as := AccessorySnapshot{AID: acc.AID}
		for _, s := range acc.Services {
			ss := ServiceSnapshot{IID: s.IID, Type: s.Type.ShortUUID(), Hidden: s.Hidden, Primary: s.Primary}
			for _, c := range s.Characteristics() {
				ss.Characteristics = append(ss.Characteristics, projectCharacteristic(c, acc.AID, flags))
			}
			as.Services = append(as.Services, ss)
		}
		out = append(out, as)
	}
	return out
}

func (d *Database) find(aid, iid uint64) *characteristic.Characteristic {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byIID[key{aid, iid}]
}

// ReadCharacteristic implements spec.md §4.B's read_characteristic: looks up
// (aid,iid), enforces PairedRead, and projects the value plus whichever optional
// fields flags selects.
func (d *Database) ReadCharacteristic(aid, iid uint64, flags ReadFlags) (ReadResult, error) {
	c := d.find(aid, iid)
	if c == nil {
		return ReadResult{}, haperr.HTTPStatus(404, "unknown characteristic")
	}
	if !c.HasPerm(characteristic.PermPairedRead) {
		return ReadResult{}, haperr.HAPStatus(statusReadFromWriteOnly, "characteristic is write-only")
	}

	return projectCharacteristic(c, aid, flags), nil
}

// projectCharacteristic builds a ReadResult for c without taking any lock, so both
// ReadCharacteristic (which has already resolved its own read lock via find) and
// Snapshot (which holds the database's read lock across every accessory) can share
// it without risking the repeated-RLock deadlock a writer queued in between two
// nested RLock calls could cause.
func projectCharacteristic(c *characteristic.Characteristic, aid uint64, flags ReadFlags) ReadResult {
	res := ReadResult{AID: aid, IID: c.IID, Value: c.Value()}
	if flags.Meta {
		res.Format = formatName(c.Format)
		res.Unit = unitName(c.Unit)
		res.MinValue = c.Constraints.MinValue
		res.MaxValue = c.Constraints.MaxValue
		res.StepValue = c.Constraints.StepValue
	}
	if flags.Perms {
		res.Perms = permNames(c.Perms)
	}
	if flags.Type {
		res.Type = c.Type.ShortUUID()
	}
	if flags.Ev {
		ev := c.HasPerm(characteristic.PermEvents)
		res.Events = &ev
	}
	return res
}

// WriteCharacteristic implements spec.md §4.B/§4.C's write ordering: permission
// check, value write (constraints enforced by Characteristic.Write), then
// subscription change. subs may be nil if the request carries no ev field or the
// caller does not track subscriptions (e.g. unit tests).
func (d *Database) WriteCharacteristic(req WriteRequest, subs Subscriptions) error {
	c := d.find(req.AID, req.IID)
	if c == nil {
		return haperr.HTTPStatus(404, "unknown characteristic")
	}

	if req.Value != nil {
		if !c.HasPerm(characteristic.PermPairedWrite) {
			return haperr.HAPStatus(statusWriteToReadOnly, "characteristic is read-only")
		}
		if err := c.Write(req.Value); err != nil {
			return err
		}
	}

	if req.Ev != nil && subs != nil {
		if *req.Ev {
			subs.Subscribe(req.AID, req.IID)
		} else {
			subs.Unsubscribe(req.AID, req.IID)
		}
	}
	return nil
}

// statusReadFromWriteOnly/statusWriteToReadOnly are the HAP status codes spec.md
// §4.B names by description rather than number. -70404 is HAP's "cannot write to
// a read-only characteristic" code (spec.md §8 pins -70404 for the write case);
// this module returns the same code for a read of a write-only characteristic.
const (
	statusReadFromWriteOnly = -70404
	statusWriteToReadOnly   = -70404
)

func formatName(f characteristic.Format) string {
	switch f {
	case characteristic.FormatBool:
		return "bool"
	case characteristic.FormatUInt8:
		return "uint8"
	case characteristic.FormatUInt16:
		return "uint16"
	case characteristic.FormatUInt32:
		return "uint32"
	case characteristic.FormatUInt64:
		return "uint64"
	case characteristic.FormatInt32:
		return "int"
	case characteristic.FormatFloat:
		return "float"
	case characteristic.FormatString:
		return "string"
	case characteristic.FormatTlv8:
		return "tlv8"
	case characteristic.FormatData:
		return "data"
	default:
		return ""
	}
}

func unitName(u characteristic.Unit) string {
	switch u {
	case characteristic.UnitPercentage:
		return "percentage"
	case characteristic.UnitArcdegrees:
		return "arcdegrees"
	case characteristic.UnitCelsius:
		return "celsius"
	case characteristic.UnitLux:
		return "lux"
	case characteristic.UnitSeconds:
		return "seconds"
	default:
		return ""
	}
}

func permNames(perms []characteristic.Perm) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		switch p {
		case characteristic.PermPairedRead:
			out = append(out, "pr")
		case characteristic.PermPairedWrite:
			out = append(out, "pw")
		case characteristic.PermEvents:
			out = append(out, "ev")
		case characteristic.PermAdditionalAuthorization:
			out = append(out, "aa")
		case characteristic.PermTimedWrite:
			out = append(out, "tw")
		case characteristic.PermHidden:
			out = append(out, "hd")
		}
	}
	return out
}
