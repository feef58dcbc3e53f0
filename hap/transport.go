// Package hap is this module's external surface: NewTransport assembles the
// pairing/identity stores, the accessory database, the HAP-HTTP router and the
// mDNS advertiser behind a single Transport a caller Starts and Stops.
//
// Adapted from ivucica-hc/hap/ip_transport.go's ipTransport/NewIPTransport: the
// same default-config-merge-then-wire-subsystems shape, generalized from one
// hardcoded IP transport to this module's config/db/pairing/identity/hapserver/mdns
// package split, and from bonjour-library reachability toggling to
// mdns.Advertiser.Update driven by hapserver's config-number notifier.
package hap

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wrenhouse/hap/accessory"
	"github.com/wrenhouse/hap/category"
	"github.com/wrenhouse/hap/config"
	"github.com/wrenhouse/hap/db"
	"github.com/wrenhouse/hap/event"
	"github.com/wrenhouse/hap/hapserver"
	"github.com/wrenhouse/hap/haperr"
	"github.com/wrenhouse/hap/hlog"
	"github.com/wrenhouse/hap/identity"
	"github.com/wrenhouse/hap/mdns"
	"github.com/wrenhouse/hap/pairing"
)

// Transport runs one accessory server: the encrypted HAP-HTTP endpoint plus its
// mDNS advertisement.
type Transport interface {
	// AddAccessory publishes acc, assigning it the next AID if it doesn't already
	// have one. Must be called before Start; the database is read-mostly once the
	// server is listening (spec.md §5).
	AddAccessory(acc *accessory.Accessory) error

	// Start opens the TCP listener, begins serving the HAP-HTTP endpoints and
	// publishes the mDNS advertisement. Returns once the listener is bound; the
	// HTTP server itself runs on its own goroutine.
	Start() error

	// Stop withdraws the mDNS advertisement and closes the listener, ending the
	// server's accept loop. Connections already accepted are not closed by Stop.
	Stop()
}

// NewTransport builds a Transport for bridge (the first, AID-1 accessory — the
// bridge if more than one accessory is published) plus any additional
// accessories, storing pairing and identity state under cfg.StoragePath.
func NewTransport(cfg config.Config, bridge *accessory.Accessory, extra ...*accessory.Accessory) (Transport, error) {
	cfg, err := cfg.WithDefaults()
	if err != nil {
		return nil, err
	}
	if cfg.Category == 0 {
		cfg.Category = category.Other
	}

	if err := os.MkdirAll(cfg.StoragePath, 0o700); err != nil {
		return nil, haperr.PersistenceIO("creating storage directory", err)
	}

	pairings, err := pairing.Open(filepath.Join(cfg.StoragePath, "pairings.json"))
	if err != nil {
		return nil, err
	}
	idStore, err := identity.Open(filepath.Join(cfg.StoragePath, "device.json"))
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	database := db.New(bus)

	t := &transport{
		cfg:      cfg,
		database: database,
		bus:      bus,
		pairings: pairings,
		idStore:  idStore,
		nextAID:  1,
		log:      hlog.Component("hap"),
	}

	bridge.AID = 1
	if err := t.AddAccessory(bridge); err != nil {
		return nil, err
	}
	for _, a := range extra {
		if err := t.AddAccessory(a); err != nil {
			return nil, err
		}
	}

	t.server = hapserver.New(database, pairings, idStore, bus, cfg.Pin, t.onConfigNumChanged)
	return t, nil
}

type transport struct {
	cfg      config.Config
	database *db.Database
	bus      *event.Bus
	pairings *pairing.Store
	idStore  *identity.Store
	log      *hlog.Logger

	server     *hapserver.Server
	advertiser *mdns.Advertiser
	cancel     context.CancelFunc

	nextAID uint64
}

// AddAccessory implements Transport. The bridge accessory (the first one added)
// always receives AID 1, per spec.md §3; every accessory after it gets the next
// unused id.
func (t *transport) AddAccessory(acc *accessory.Accessory) error {
	if acc.AID == 0 {
		acc.AID = t.nextAID
	}
	if acc.AID >= t.nextAID {
		t.nextAID = acc.AID + 1
	}
	t.database.Add(acc)
	return nil
}

// Start implements Transport.
func (t *transport) Start() error {
	addr := ":" + t.cfg.Port
	if t.cfg.Port == "" {
		addr = ":0"
	}
	port, err := t.server.Listen(addr)
	if err != nil {
		return haperr.PersistenceIO("binding HAP-HTTP listener", err)
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return haperr.Protocol("parsing bound port", err)
	}
	t.log.Infof("listening on port %d", portNum)

	id := t.idStore.Identity()
	advertiser, err := mdns.New(t.cfg.Name, t.cfg.Name, id.PairingID, portNum, t.cfg.Category)
	if err != nil {
		return err
	}
	t.advertiser = advertiser

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	if err := advertiser.Start(ctx, id.ConfigNum, t.statusFlags()); err != nil {
		cancel()
		return err
	}

	go func() {
		if err := t.server.Serve(); err != nil {
			t.log.Error("HAP-HTTP server exited", err)
		}
	}()
	return nil
}

// Stop implements Transport.
func (t *transport) Stop() {
	if t.advertiser != nil {
		t.advertiser.Stop()
	}
	if t.cancel != nil {
		t.cancel()
	}
	t.server.Stop()
}

// onConfigNumChanged is installed as the server's ConfigNumNotifier: every
// successful pair-setup and /pairings add/remove bumps `c#`, and the
// advertisement must republish with the new number plus whatever `sf` now
// applies (spec.md §4.J).
func (t *transport) onConfigNumChanged(configNum uint32) {
	if t.advertiser == nil {
		return
	}
	if err := t.advertiser.Update(configNum, t.statusFlags()); err != nil {
		t.log.Error("updating mDNS advertisement", err)
	}
}

func (t *transport) statusFlags() mdns.StatusFlags {
	if t.pairings.HasAdmin() {
		return mdns.StatusPaired
	}
	return mdns.StatusUnpaired
}
