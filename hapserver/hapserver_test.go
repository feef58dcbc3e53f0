package hapserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhouse/hap/accessory"
	"github.com/wrenhouse/hap/db"
	"github.com/wrenhouse/hap/event"
	"github.com/wrenhouse/hap/identity"
	"github.com/wrenhouse/hap/pairing"
	"github.com/wrenhouse/hap/session"
	"github.com/wrenhouse/hap/tlv8"
	"github.com/wrenhouse/hap/transport"
)

func itoa(v uint64) string { return strconv.FormatUint(v, 10) }

func readEncryptedFrame(t *testing.T, client net.Conn, key []byte) []byte {
	t.Helper()
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	clientConn, err := transport.NewConn(client, key, key)
	require.NoError(t, err)
	frame, err := clientConn.ReadFrame()
	require.NoError(t, err)
	return frame
}

// fixture bundles everything a handler test needs: a Server wired to a database
// with one switch accessory, and the pairing/identity stores backing it.
type fixture struct {
	server   *Server
	database *db.Database
	acc      *accessory.Accessory
	pairings *pairing.Store
	idStore  *identity.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := event.NewBus()
	database := db.New(bus)
	acc := accessory.NewSwitch(accessory.Information{Name: "Outlet 1"})
	acc.AID = 1
	database.Add(acc)

	pairings, err := pairing.Open(filepath.Join(t.TempDir(), "pairings.json"))
	require.NoError(t, err)
	idStore, err := identity.Open(filepath.Join(t.TempDir(), "device.json"))
	require.NoError(t, err)

	s := New(database, pairings, idStore, bus, "031-45-154", nil)
	return &fixture{server: s, database: database, acc: acc, pairings: pairings, idStore: idStore}
}

// unencryptedConn wires req's context to a freshly created Unpaired session over a
// net.Pipe, returning the client-side half for handlers that only need the
// lifecycle state (handleIdentify).
func unencryptedConn(t *testing.T) (*hapConn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() { client.Close() })
	hc := &hapConn{Conn: server, session: session.New(1), bus: event.NewBus(), done: make(chan struct{})}
	return hc, client
}

// encryptedConn wires req's context to a session that has already completed
// pair-verify with all-zero directional keys, mirroring what handlePairVerify
// installs once Keys() is non-nil.
func encryptedConn(t *testing.T, f *fixture, controllerID string) (*hapConn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() { client.Close() })

	sess := session.New(2)
	conn, err := transport.NewConn(server, make([]byte, 32), make([]byte, 32))
	require.NoError(t, err)
	sess.CompleteEncryption(controllerID, conn)

	hc := &hapConn{Conn: server, session: sess, bus: f.server.bus, done: make(chan struct{})}
	sess.EventEmitter = f.server.eventEmitterFor(sess)
	go hc.drainDispatch()
	t.Cleanup(func() { hc.Close() })
	return hc, client
}

func attachConn(reqCtx context.Context, hc *hapConn) context.Context {
	return context.WithValue(reqCtx, sessionCtxKey{}, hc)
}

func TestHandleAccessoriesRejectsUnencryptedSession(t *testing.T) {
	f := newFixture(t)
	hc, _ := unencryptedConn(t)

	req := httptest.NewRequest("GET", "/accessories", nil)
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handleAccessories(w, req)
	assert.Equal(t, 403, w.Code)
}

func TestHandleAccessoriesReturnsSnapshot(t *testing.T) {
	f := newFixture(t)
	hc, _ := encryptedConn(t, f, "controller-1")

	req := httptest.NewRequest("GET", "/accessories", nil)
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handleAccessories(w, req)
	require.Equal(t, 200, w.Code)

	var body struct {
		Accessories []db.AccessorySnapshot `json:"accessories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Accessories, 1)
	assert.Equal(t, f.acc.AID, body.Accessories[0].AID)
}

func TestHandleCharacteristicsGetReturnsCurrentValue(t *testing.T) {
	f := newFixture(t)
	hc, _ := encryptedConn(t, f, "controller-1")
	on := f.acc.PrimaryService().Required[0]

	req := httptest.NewRequest("GET", "/characteristics?id=1."+itoa(on.IID), nil)
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handleCharacteristics(w, req)
	require.Equal(t, 200, w.Code)

	var body struct {
		Characteristics []db.ReadResult `json:"characteristics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Characteristics, 1)
	assert.Equal(t, false, body.Characteristics[0].Value)
}

func TestHandleCharacteristicsPutWritesValueAndSubscribes(t *testing.T) {
	f := newFixture(t)
	hc, client := encryptedConn(t, f, "controller-1")
	on := f.acc.PrimaryService().Required[0]

	payload, err := json.Marshal(map[string]interface{}{
		"characteristics": []map[string]interface{}{
			{"aid": 1, "iid": on.IID, "value": true, "ev": true},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/characteristics", bytes.NewReader(payload))
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handleCharacteristics(w, req)
	require.Equal(t, 204, w.Code)
	assert.Equal(t, true, on.Value())
	assert.True(t, hc.session.IsSubscribed(1, on.IID))

	// A subsequent write publishes a change the subscribed session should push
	// out as an EVENT frame on its connection.
	require.NoError(t, f.database.WriteCharacteristic(db.WriteRequest{AID: 1, IID: on.IID, Value: false}, nil))

	frame := readEncryptedFrame(t, client, make([]byte, 32))
	assert.Contains(t, string(frame), "EVENT/1.0")
}

func TestHandleIdentifyWritesWhenUnpaired(t *testing.T) {
	f := newFixture(t)
	hc, _ := unencryptedConn(t)

	req := httptest.NewRequest("POST", "/identify", nil)
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handleIdentify(w, req)
	assert.Equal(t, 204, w.Code)

	identify := f.acc.Services[0].Required[0]
	assert.Equal(t, true, identify.Value())
}

func TestHandleIdentifyRejectsOncePaired(t *testing.T) {
	f := newFixture(t)
	hc, _ := encryptedConn(t, f, "controller-1")

	req := httptest.NewRequest("POST", "/identify", nil)
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handleIdentify(w, req)
	assert.Equal(t, 403, w.Code)
}

func TestHandlePairingsRejectsNonAdminController(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.pairings.Add("controller-1", []byte("ltpk"), false))
	hc, _ := encryptedConn(t, f, "controller-1")

	body := tlv8.Encode([]tlv8.Tag{tlv8.TagMethod}, tlv8.Values{tlv8.TagMethod: {pairingMethodList}})
	req := httptest.NewRequest("POST", "/pairings", bytes.NewReader(body))
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handlePairings(w, req)
	assert.Equal(t, 403, w.Code)
}

func TestHandlePairingsListReturnsTheCallingAdmin(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.pairings.Add("controller-1", []byte("ltpk"), true))
	hc, _ := encryptedConn(t, f, "controller-1")

	body := tlv8.Encode([]tlv8.Tag{tlv8.TagMethod}, tlv8.Values{tlv8.TagMethod: {pairingMethodList}})
	req := httptest.NewRequest("POST", "/pairings", bytes.NewReader(body))
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handlePairings(w, req)
	require.Equal(t, 200, w.Code)

	out, err := tlv8.Decode(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "controller-1", string(out[tlv8.TagIdentifier]))
	assert.Equal(t, byte(1), out.Byte(tlv8.TagPermissions))
}

func TestHandlePairingsAddBumpsConfigNum(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.pairings.Add("admin", []byte("ltpk"), true))
	hc, _ := encryptedConn(t, f, "admin")

	before := f.idStore.Identity().ConfigNum

	body := tlv8.Encode(
		[]tlv8.Tag{tlv8.TagMethod, tlv8.TagIdentifier, tlv8.TagPublicKey, tlv8.TagPermissions},
		tlv8.Values{
			tlv8.TagMethod:      {pairingMethodAdd},
			tlv8.TagIdentifier:  []byte("controller-2"),
			tlv8.TagPublicKey:   []byte("second-ltpk"),
			tlv8.TagPermissions: {0},
		},
	)
	req := httptest.NewRequest("POST", "/pairings", bytes.NewReader(body))
	req = req.WithContext(attachConn(req.Context(), hc))
	w := httptest.NewRecorder()

	f.server.handlePairings(w, req)
	require.Equal(t, 200, w.Code)

	p := f.pairings.Get("controller-2")
	require.NotNil(t, p)
	assert.False(t, p.Admin)
	assert.Greater(t, f.idStore.Identity().ConfigNum, before)
}

func TestHandlePairingRemovedClosesTheBoundConnection(t *testing.T) {
	f := newFixture(t)
	hc, client := encryptedConn(t, f, "controller-1")

	f.server.mu.Lock()
	f.server.sessions["controller-1"] = hc
	f.server.mu.Unlock()

	f.server.handlePairingRemoved("controller-1")

	f.server.mu.Lock()
	_, stillThere := f.server.sessions["controller-1"]
	f.server.mu.Unlock()
	assert.False(t, stillThere)

	buf := make([]byte, 1)
	client.SetReadDeadline(time.Now().Add(time.Second))
	_, err := client.Read(buf)
	assert.Error(t, err) // the pipe's other end was closed
}

func TestHapListenerAcceptWrapsEachConnectionInAFreshSession(t *testing.T) {
	f := newFixture(t)
	server, client := net.Pipe()
	defer client.Close()

	l := &hapListener{Listener: &singleConnListener{conn: server}, server: f.server}
	accepted, err := l.Accept()
	require.NoError(t, err)

	hc, ok := accepted.(*hapConn)
	require.True(t, ok)
	assert.Equal(t, session.StateUnpaired, hc.session.State())
	hc.Close()
}

// singleConnListener hands out exactly one pre-established net.Conn, then errors.
type singleConnListener struct {
	conn net.Conn
	used bool
}

func (l *singleConnListener) Accept() (net.Conn, error) {
	if l.used {
		<-make(chan struct{})
	}
	l.used = true
	return l.conn, nil
}
func (l *singleConnListener) Close() error   { return nil }
func (l *singleConnListener) Addr() net.Addr { return nil }
