// Package hapserver implements the HAP-HTTP router and connection lifecycle of
// spec.md §4.I: the listener that turns each accepted TCP connection into a
// Session, a plain net/http ServeMux dispatching the six HAP endpoints, and the
// transparent encrypt/decrypt wrapper that lets the stdlib HTTP server parse
// cleartext requests both before and after pair-verify completes.
//
// Grounded on ivucica-hc/server/server.go's hkServer: a custom net.Listener feeding
// a http.Server, with one controller-style handler registered per HAP endpoint.
// That package's netio.HAPContext/HAPTCPListener types are an external dependency
// never vendored into the corpus, so the per-connection session lookup here uses
// http.Server's ConnContext hook instead of a parallel context map — the same
// "associate state with the request" problem, solved with the stdlib hook the
// teacher's net/http-based design already leans on elsewhere.
package hapserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wrenhouse/hap/chario"
	"github.com/wrenhouse/hap/db"
	"github.com/wrenhouse/hap/event"
	"github.com/wrenhouse/hap/haperr"
	"github.com/wrenhouse/hap/hlog"
	"github.com/wrenhouse/hap/identity"
	"github.com/wrenhouse/hap/pairing"
	"github.com/wrenhouse/hap/pairsetup"
	"github.com/wrenhouse/hap/pairverify"
	"github.com/wrenhouse/hap/session"
	"github.com/wrenhouse/hap/tlv8"
	"github.com/wrenhouse/hap/transport"
)

// ConfigNumNotifier is called whenever the router bumps the configuration number,
// so the caller's mDNS advertiser (package mdns) can republish. Left nil in tests.
type ConfigNumNotifier func(configNum uint32)

// Server owns the accepted-connection listener and the HAP-HTTP router riding on
// top of it, mirroring ivucica-hc/server/server.go's Server interface.
type Server struct {
	database  *db.Database
	pairings  *pairing.Store
	idStore   *identity.Store
	bus       *event.Bus
	pin       string
	onConfigN ConfigNumNotifier

	log *hlog.Logger

	listener net.Listener
	http     *http.Server

	nextSessionID uint64

	mu       sync.Mutex
	sessions map[string]*hapConn // keyed by controller pairing id

	// setupAttempts is shared across every pairsetup.Machine this server creates,
	// so the §4.D "100 failed attempts since boot" limit counts process-lifetime
	// failures rather than resetting with each new attempt's Machine.
	setupAttempts *pairsetup.AttemptCounter
}

// New builds a Server bound to the given database and pairing/identity stores. pin
// is the accessory's 8-digit setup code used for every pair-setup attempt.
func New(database *db.Database, pairings *pairing.Store, idStore *identity.Store, bus *event.Bus, pin string, onConfigN ConfigNumNotifier) *Server {
	s := &Server{
		database:      database,
		pairings:      pairings,
		idStore:       idStore,
		bus:           bus,
		pin:           pin,
		onConfigN:     onConfigN,
		log:           hlog.Component("hapserver"),
		sessions:      make(map[string]*hapConn),
		setupAttempts: &pairsetup.AttemptCounter{},
	}
	pairings.OnRemove(s.handlePairingRemoved)

	mux := http.NewServeMux()
	mux.HandleFunc("/pair-setup", s.handlePairSetup)
	mux.HandleFunc("/pair-verify", s.handlePairVerify)
	mux.HandleFunc("/accessories", s.handleAccessories)
	mux.HandleFunc("/characteristics", s.handleCharacteristics)
	mux.HandleFunc("/pairings", s.handlePairings)
	mux.HandleFunc("/identify", s.handleIdentify)

	s.http = &http.Server{
		Handler:     mux,
		ConnContext: s.connContext,
	}
	return s
}

// Listen binds addr (":0" picks a free port) and returns the actual port chosen.
func (s *Server) Listen(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}
	s.listener = &hapListener{Listener: ln, server: s}
	_, port, err := net.SplitHostPort(ln.Addr().String())
	return port, err
}

// Serve runs the HTTP server over the listener until Stop closes it.
func (s *Server) Serve() error {
	err := s.http.Serve(s.listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop closes the listener, ending Serve.
func (s *Server) Stop() {
	if s.listener != nil {
		s.listener.Close()
	}
}

type sessionCtxKey struct{}

// connContext stashes the hapConn itself on the request context so every handler
// can retrieve its Session (and, for pair-verify, the raw connection underneath
// the framing layer) via sessionFromRequest/connFromRequest — the way the
// teacher's netio.HAPContext exposed per-connection crypto state to its endpoint
// handlers.
func (s *Server) connContext(ctx context.Context, c net.Conn) context.Context {
	if hc, ok := c.(*hapConn); ok {
		return context.WithValue(ctx, sessionCtxKey{}, hc)
	}
	return ctx
}

func connFromRequest(r *http.Request) *hapConn {
	hc, _ := r.Context().Value(sessionCtxKey{}).(*hapConn)
	return hc
}

func sessionFromRequest(r *http.Request) *session.Session {
	hc := connFromRequest(r)
	if hc == nil {
		return nil
	}
	return hc.session
}

// hapListener wraps every accepted connection in a fresh Session and a hapConn that
// transparently frames/encrypts once that session reaches Encrypted.
type hapListener struct {
	net.Listener
	server *Server
}

func (l *hapListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	id := atomic.AddUint64(&l.server.nextSessionID, 1)
	sess := session.New(id)
	return &hapConn{Conn: conn, session: sess, bus: l.server.bus, done: make(chan struct{})}, nil
}

// drainDispatch runs for the lifetime of the connection once pair-verify
// completes, draining sess.Dispatch the way spec.md §5 requires: closures that
// an event bus publish posts via HandleChange run here, and this is the
// goroutine that writes EVENT frames. sess's subscription set is not touched
// here; it is changed by the HTTP handler serving this connection's
// PUT /characteristics.
func (hc *hapConn) drainDispatch() {
	for {
		select {
		case fn := <-hc.session.Dispatch:
			fn(hc.session)
		case <-hc.done:
			return
		}
	}
}

// pairContextTimeout is spec.md §5's "pair-setup and pair-verify contexts expire
// after 10 s of inactivity": an Encrypted session has no idle timeout, but an
// unfinished handshake must not hold a connection open forever.
const pairContextTimeout = 10 * time.Second

// hapConn presents a plaintext net.Conn to net/http both before pair-verify and
// after, decrypting/encrypting transparently via transport.Conn once the session
// reaches StateEncrypted (spec.md §4.H: "the session layer presents a duplex byte
// stream to the HTTP router").
type hapConn struct {
	net.Conn
	session *session.Session
	bus     *event.Bus
	readBuf []byte

	// done is closed exactly once, by Close, to stop this connection's
	// dispatch-draining goroutine (see drainDispatch).
	done      chan struct{}
	closeOnce sync.Once

	timerMu   sync.Mutex
	pairTimer *time.Timer
}

// armPairTimeout (re)starts the pair-setup/pair-verify inactivity timer: if no
// further handshake message arrives within pairContextTimeout, the connection is
// closed, destroying whatever setup/verify context is in progress.
func (c *hapConn) armPairTimeout() {
	c.timerMu.Lock()
	defer c.timerMu.Unlock()
	if c.pairTimer != nil {
		c.pairTimer.Stop()
	}
	c.pairTimer = time.AfterFunc(pairContextTimeout, func() { c.Close() })
}

// disarmPairTimeout cancels the inactivity timer once a handshake finishes
// (successfully or not) or the session reaches Encrypted, which has no idle
// timeout of its own.
func (c *hapConn) disarmPairTimeout() {
	c.timerMu.Lock()
	defer c.timerMu.Unlock()
	if c.pairTimer != nil {
		c.pairTimer.Stop()
		c.pairTimer = nil
	}
}

func (c *hapConn) Read(p []byte) (int, error) {
	if c.session.State() != session.StateEncrypted {
		return c.Conn.Read(p)
	}
	for len(c.readBuf) == 0 {
		frame, err := c.session.Conn().ReadFrame()
		if err != nil {
			return 0, err
		}
		c.readBuf = frame
	}
	n := copy(p, c.readBuf)
	c.readBuf = c.readBuf[n:]
	return n, nil
}

func (c *hapConn) Write(p []byte) (int, error) {
	if c.session.State() != session.StateEncrypted {
		return c.Conn.Write(p)
	}
	if err := c.session.Conn().WriteFrame(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *hapConn) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	c.session.Close(c.bus)
	return c.Conn.Close()
}

// handlePairingRemoved closes every session bound to the removed controller id,
// per spec.md §4.K "removing a pairing immediately closes all sessions bound to
// that controller id".
func (s *Server) handlePairingRemoved(controllerID string) {
	s.mu.Lock()
	hc, ok := s.sessions[controllerID]
	if ok {
		delete(s.sessions, controllerID)
	}
	s.mu.Unlock()
	if ok {
		hc.Close()
	}
}

func (s *Server) bumpConfigNum() {
	n, err := s.idStore.BumpConfigNum()
	if err != nil {
		s.log.Error("bumping config number", err)
		return
	}
	if s.onConfigN != nil {
		s.onConfigN(n)
	}
}

func writeTLV8(w http.ResponseWriter, values tlv8.Values, order []tlv8.Tag) {
	w.Header().Set("Content-Type", "application/pairing+tlv8")
	body := tlv8.Encode(order, values)
	w.Write(body)
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/hap+json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

var tlvResponseOrder = []tlv8.Tag{
	tlv8.TagState, tlv8.TagError, tlv8.TagPublicKey, tlv8.TagSalt,
	tlv8.TagProof, tlv8.TagEncryptedData, tlv8.TagIdentifier, tlv8.TagPermissions,
}

func requestState(in tlv8.Values) byte { return in.Byte(tlv8.TagState) }

func (s *Server) handlePairSetup(w http.ResponseWriter, r *http.Request) {
	hc := connFromRequest(r)
	sess := sessionFromRequest(r)
	body, err := readBody(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	in, err := tlv8.Decode(body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if sess.PairSetupMachine() == nil {
		m := pairsetup.New(s.idStore, s.pairings, s.pin, s.setupAttempts)
		if !sess.BeginPairSetup(m) {
			writeTLV8(w, tlv8.Values{tlv8.TagState: {requestState(in) + 1}, tlv8.TagError: {pairsetup.ErrorBusy}}, tlvResponseOrder)
			return
		}
	}

	out, err := sess.PairSetupMachine().HandleMessage(in)
	if err != nil {
		code := byte(pairsetup.ErrorUnknown)
		if he, ok := errAsPairingStatus(err); ok {
			code = byte(he)
		}
		sess.EndPairSetup()
		hc.disarmPairTimeout()
		writeTLV8(w, tlv8.Values{tlv8.TagState: {requestState(in) + 1}, tlv8.TagError: {code}}, tlvResponseOrder)
		return
	}

	if out.Byte(tlv8.TagState) == 6 {
		sess.EndPairSetup()
		hc.disarmPairTimeout()
		s.bumpConfigNum()
	} else {
		hc.armPairTimeout()
	}
	writeTLV8(w, out, tlvResponseOrder)
}

func (s *Server) handlePairVerify(w http.ResponseWriter, r *http.Request) {
	hc := connFromRequest(r)
	sess := sessionFromRequest(r)
	body, err := readBody(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	in, err := tlv8.Decode(body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if sess.PairVerifyMachine() == nil {
		m := pairverify.New(s.idStore, s.pairings)
		sess.BeginPairVerify(m)
	}

	out, err := sess.PairVerifyMachine().HandleMessage(in)
	if err != nil {
		code := byte(pairverify.ErrorUnknown)
		if he, ok := errAsPairingStatus(err); ok {
			code = byte(he)
		}
		hc.disarmPairTimeout()
		writeTLV8(w, tlv8.Values{tlv8.TagState: {requestState(in) + 1}, tlv8.TagError: {code}}, tlvResponseOrder)
		return
	}

	if keys := sess.PairVerifyMachine().Keys(); keys != nil {
		hc.disarmPairTimeout()
		conn, err := transport.NewConn(hc.Conn, keys.ControllerToAccessory, keys.AccessoryToController)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// The M4 response itself must reach the controller in plaintext (spec.md
		// §6: "Before pair-verify completion, plain HTTP/1.1"). net/http only
		// flushes a handler's response after the handler returns, so flipping
		// sess to StateEncrypted before then would make hapConn.Write frame-encrypt
		// M4 along with everything else buffered since this call. Write and flush
		// it explicitly first, while the session is still unencrypted, and only
		// then arm the framed channel for the controller's next request.
		body := tlv8.Encode(tlvResponseOrder, out)
		w.Header().Set("Content-Type", "application/pairing+tlv8")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Write(body)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		sess.CompleteEncryption(keys.ControllerID, conn)
		sess.EventEmitter = s.eventEmitterFor(sess)
		go hc.drainDispatch()

		s.mu.Lock()
		s.sessions[keys.ControllerID] = hc
		s.mu.Unlock()
		return
	}
	hc.armPairTimeout()
	writeTLV8(w, out, tlvResponseOrder)
}

// eventEmitterFor builds the push-notification writer installed on sess once
// pair-verify completes: an unsolicited EVENT/1.0 frame in the same JSON shape as
// a characteristics read response (spec.md §4.C "Event push").
func (s *Server) eventEmitterFor(sess *session.Session) func(event.Change) {
	return func(change event.Change) {
		body, err := json.Marshal(map[string]interface{}{
			"characteristics": []map[string]interface{}{
				{"aid": change.AID, "iid": change.IID, "value": change.Value},
			},
		})
		if err != nil {
			return
		}
		frame := fmt.Sprintf("EVENT/1.0 200 OK\r\nContent-Type: application/hap+json\r\nContent-Length: %d\r\n\r\n%s", len(body), body)
		if err := sess.Conn().WriteFrame([]byte(frame)); err != nil {
			s.log.Error("writing event frame", err)
		}
	}
}

func (s *Server) requireEncrypted(w http.ResponseWriter, r *http.Request) *session.Session {
	sess := sessionFromRequest(r)
	if sess == nil || sess.State() != session.StateEncrypted {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil
	}
	return sess
}

func (s *Server) handleAccessories(w http.ResponseWriter, r *http.Request) {
	if s.requireEncrypted(w, r) == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"accessories": s.database.Snapshot()})
}

func (s *Server) handleCharacteristics(w http.ResponseWriter, r *http.Request) {
	sess := s.requireEncrypted(w, r)
	if sess == nil {
		return
	}

	switch r.Method {
	case http.MethodGet:
		ids, err := chario.ParseIDs(r.URL.Query().Get("id"))
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		flags := db.ReadFlags{
			Meta:  r.URL.Query().Get("meta") == "1",
			Perms: r.URL.Query().Get("perms") == "1",
			Type:  r.URL.Query().Get("type") == "1",
			Ev:    r.URL.Query().Get("ev") == "1",
		}
		res := chario.ReadAll(s.database, ids, flags)
		writeJSON(w, res.Code, map[string]interface{}{"characteristics": res.Objects})

	case http.MethodPut:
		body, err := readBody(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		var envelope struct {
			Characteristics []db.WriteRequest `json:"characteristics"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		res := chario.WriteAll(s.database, envelope.Characteristics, sessionSubs{session: sess, bus: s.bus})
		if res.Code == http.StatusNoContent {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, res.Code, map[string]interface{}{"characteristics": res.Objects})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// sessionSubs adapts a Session's own subscription bookkeeping plus the shared
// event bus into the single db.Subscriptions interface WriteCharacteristic drives,
// so a write's `ev` field both updates the session's local set and registers the
// session as an event.Subscriber for push notifications.
type sessionSubs struct {
	session *session.Session
	bus     *event.Bus
}

func (s sessionSubs) Subscribe(aid, iid uint64) {
	s.session.Subscribe(aid, iid)
	s.bus.Subscribe(aid, iid, s.session)
}

func (s sessionSubs) Unsubscribe(aid, iid uint64) {
	s.session.Unsubscribe(aid, iid)
	s.bus.Unsubscribe(aid, iid, s.session)
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil || sess.State() != session.StateUnpaired {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	identifyChar := s.database.Accessories()
	if len(identifyChar) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	acc := identifyChar[0]
	identify := acc.Services[0].Required[0] // Accessory Information's Identify characteristic
	if err := s.database.WriteCharacteristic(db.WriteRequest{AID: acc.AID, IID: identify.IID, Value: true}, nil); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePairings(w http.ResponseWriter, r *http.Request) {
	sess := s.requireEncrypted(w, r)
	if sess == nil {
		return
	}
	if p := s.pairings.Get(sess.ControllerID); p == nil || !p.Admin {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	body, err := readBody(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	in, err := tlv8.Decode(body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	switch in.Byte(tlv8.TagMethod) {
	case pairingMethodAdd:
		id := string(in[tlv8.TagIdentifier])
		ltpk := in[tlv8.TagPublicKey]
		admin := in.Byte(tlv8.TagPermissions) == 1
		if err := s.pairings.Add(id, ltpk, admin); err != nil {
			writePairingsError(w, err)
			return
		}
		s.bumpConfigNum()
		writeTLV8(w, tlv8.Values{tlv8.TagState: {2}}, tlvResponseOrder)

	case pairingMethodRemove:
		id := string(in[tlv8.TagIdentifier])
		if err := s.pairings.Remove(id); err != nil {
			writePairingsError(w, err)
			return
		}
		s.bumpConfigNum()
		writeTLV8(w, tlv8.Values{tlv8.TagState: {2}}, tlvResponseOrder)

	case pairingMethodList:
		// Values holds one slot per tag, so a multi-pairing listing can't be built
		// as a single Values map; each pairing is encoded as its own chunk and the
		// chunks are joined by a zero-length TagSeparator entry, the TLV8
		// convention for repeated item groups under the same tag space.
		w.Header().Set("Content-Type", "application/pairing+tlv8")
		body := tlv8.Encode([]tlv8.Tag{tlv8.TagState}, tlv8.Values{tlv8.TagState: {2}})
		for i, p := range s.pairings.List() {
			if i > 0 {
				body = append(body, byte(tlv8.TagSeparator), 0)
			}
			perm := byte(0)
			if p.Admin {
				perm = 1
			}
			body = append(body, tlv8.Encode(
				[]tlv8.Tag{tlv8.TagIdentifier, tlv8.TagPublicKey, tlv8.TagPermissions},
				tlv8.Values{
					tlv8.TagIdentifier:  []byte(p.ControllerID),
					tlv8.TagPublicKey:   p.LTPK,
					tlv8.TagPermissions: {perm},
				},
			)...)
		}
		w.Write(body)

	default:
		http.Error(w, "bad request", http.StatusBadRequest)
	}
}

// Pairing TLV Method values for the add/remove/list operations at /pairings; these
// sit alongside pair-setup's Method=0 (SRP) in the same tag but are never confused
// since /pairings is a distinct endpoint.
const (
	pairingMethodAdd    = 3
	pairingMethodRemove = 4
	pairingMethodList   = 5
)

func writePairingsError(w http.ResponseWriter, err error) {
	code := byte(1)
	if he, ok := errAsPairingStatus(err); ok {
		code = byte(he)
	}
	writeTLV8(w, tlv8.Values{tlv8.TagState: {2}, tlv8.TagError: {code}}, tlvResponseOrder)
}

func errAsPairingStatus(err error) (int, bool) {
	he, ok := haperr.As(err)
	if !ok || he.Kind != haperr.KindPairingStatus {
		return 0, false
	}
	return he.Code, true
}
