// Package inspect is the optional, off-by-default debug surface
// SPEC_FULL.md §4.6a/§6 adds on top of the hard core: a read-only
// websocket endpoint that serializes periodic snapshots of CPU and memory
// state for an external viewer.
//
// Grounded on the teacher's pkg/display/web/hub.go (a gorilla/websocket
// hub broadcasting frames to connected clients) and player.go (per-client
// send loop); this package drops frame buffering and input entirely —
// the inspector never writes back into the machine, matching spec.md §5's
// "the core is strictly single-threaded" constraint (viewers connect on the
// HTTP server's goroutines, and Publish, called from the tick loop's own
// goroutine, only ever sends a copied snapshot, never the live machine
// state).
package inspect

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"

	"github.com/torphedo-core/dmgcore/pkg/log"
)

// Snapshot is a point-in-time, value-copied view of machine state safe to
// serialize off the hot path.
type Snapshot struct {
	Clock uint64            `json:"clock"`
	PC    uint16            `json:"pc"`
	SP    uint16            `json:"sp"`
	AF    uint16            `json:"af"`
	BC    uint16            `json:"bc"`
	DE    uint16            `json:"de"`
	HL    uint16            `json:"hl"`
	IME   bool              `json:"ime"`
	Watch map[uint16]uint8  `json:"watch,omitempty"`
}

// ROMFingerprint hashes a ROM image with xxhash, the same way the
// teacher's pkg/display/web package fingerprints cartridges for its save
// state and client-sync bookkeeping. Exposed here purely as an
// identifying label; the CLI prints it in its inspector startup log line.
func ROMFingerprint(rom []byte) uint64 {
	return xxhash.Sum64(rom)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub broadcasts Snapshots to any number of connected viewers. It never
// holds a reference to the live Machine; callers push copies in via
// Publish.
type Hub struct {
	logger log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns an idle Hub. Nothing listens until Serve is mounted on an
// http.ServeMux and a client connects.
func NewHub(logger log.Logger) *Hub {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Hub{logger: logger, clients: map[*websocket.Conn]struct{}{}}
}

// Serve upgrades an HTTP request to a websocket connection and registers
// it as a viewer. It never blocks the caller's goroutine beyond the
// upgrade handshake; the connection is cleaned up from Publish if a write
// fails.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnf("inspector: upgrade failed: %v", err)
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

// Publish serializes snap and fans it out to every connected viewer,
// dropping any client whose connection has gone bad.
func (h *Hub) Publish(snap Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		h.logger.Warnf("inspector: marshal snapshot: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
	}
	h.clients = map[*websocket.Conn]struct{}{}
}
