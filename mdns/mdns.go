// Package mdns publishes the accessory's `_hap._tcp.local.` advertisement, wrapping
// github.com/brutella/dnssd — the mDNS library pulled in transitively by
// kradalby-tasmota-homekit, a brutella/hap-based HomeKit bridge and the single
// closest sibling to this module anywhere in the corpus.
//
// github.com/grandcat/zeroconf (used by backkem-matter) is the documented fallback
// for this concern; see DESIGN.md for why brutella/dnssd was chosen over it.
package mdns

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/brutella/dnssd"

	"github.com/wrenhouse/hap/category"
	"github.com/wrenhouse/hap/haperr"
)

const serviceType = "_hap._tcp"

// StatusFlags mirrors the `sf` TXT field's bit meaning (spec.md §4.J): 1 means the
// accessory has no admin pairing yet.
type StatusFlags int

const (
	StatusPaired   StatusFlags = 0
	StatusUnpaired StatusFlags = 1
)

// Advertiser owns the published `_hap._tcp.local.` service record and updates its
// TXT fields whenever the pairing store or accessory database changes (spec.md
// §4.J).
type Advertiser struct {
	mu        sync.Mutex
	responder dnssd.Responder
	handle    dnssd.Service
	cancel    context.CancelFunc

	name      string
	model     string
	pairingID string
	port      int
	category  category.Category
}

// New creates an Advertiser for the given model/pairing-id/port/category. name is
// the mDNS instance name (typically the accessory's display name).
func New(name, model, pairingID string, port int, cat category.Category) (*Advertiser, error) {
	responder, err := dnssd.NewResponder()
	if err != nil {
		return nil, haperr.PersistenceIO("creating mDNS responder", err)
	}
	return &Advertiser{
		responder: responder,
		name:      name,
		model:     model,
		pairingID: pairingID,
		port:      port,
		category:  cat,
	}, nil
}

// Start publishes the service and runs the responder's event loop until ctx is
// canceled or Stop is called.
func (a *Advertiser) Start(ctx context.Context, configNum uint32, sf StatusFlags) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	svc, err := dnssd.NewService(dnssd.Config{
		Name: a.name,
		Type: serviceType,
		Port: a.port,
		Text: a.txt(configNum, sf),
	})
	if err != nil {
		return haperr.PersistenceIO("building mDNS service record", err)
	}

	handle, err := a.responder.Add(svc)
	if err != nil {
		return haperr.PersistenceIO("publishing mDNS service", err)
	}
	a.handle = handle

	respondCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	go a.responder.Respond(respondCtx)
	return nil
}

// Update republishes the service with a new `c#`/`sf`, the way spec.md §4.J
// requires whenever the accessory database or pairing store changes.
func (a *Advertiser) Update(configNum uint32, sf StatusFlags) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.responder.Remove(a.handle)
	svc, err := dnssd.NewService(dnssd.Config{
		Name: a.name,
		Type: serviceType,
		Port: a.port,
		Text: a.txt(configNum, sf),
	})
	if err != nil {
		return haperr.PersistenceIO("building mDNS service record", err)
	}
	handle, err := a.responder.Add(svc)
	if err != nil {
		return haperr.PersistenceIO("republishing mDNS service", err)
	}
	a.handle = handle
	return nil
}

// Stop cancels the responder's event loop, withdrawing the advertisement.
func (a *Advertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *Advertiser) txt(configNum uint32, sf StatusFlags) map[string]string {
	return map[string]string{
		"md": a.model,
		"pv": "1.0",
		"id": colonHex(a.pairingID),
		"c#": fmt.Sprintf("%d", configNum),
		"s#": "1",
		"sf": fmt.Sprintf("%d", sf),
		"ff": "0",
		"ci": fmt.Sprintf("%d", int(a.category)),
	}
}

// colonHex reformats a UUID-shaped pairing id ("xxxxxxxx-xxxx-...") into the
// colon-separated hex byte pairs HAP's mDNS `id` TXT field uses.
func colonHex(pairingID string) string {
	stripped := strings.ReplaceAll(pairingID, "-", "")
	var b strings.Builder
	for i := 0; i+2 <= len(stripped); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(stripped[i : i+2])
	}
	return b.String()
}
