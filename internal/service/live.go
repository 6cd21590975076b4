package service

import (
	"log"
	"sync"

	"anoa.com/ramadhanpitstop/internal/model"
	"github.com/gorilla/websocket"
)

// LiveEvent dikirim ke dashboard admin setiap ada perubahan kehadiran.
type LiveEvent struct {
	Type        string             `json:"type"` // "check_in" | "walk_in"
	Participant *model.Participant `json:"participant"`
}

// LiveHub menyiarkan event ke semua koneksi websocket dashboard yang aktif.
type LiveHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewLiveHub() *LiveHub {
	return &LiveHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *LiveHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

func (h *LiveHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	conn.Close()
}

// Broadcast menulis event ke semua koneksi. Koneksi yang gagal ditulis
// langsung dilepas.
func (h *LiveHub) Broadcast(event LiveEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("live feed write failed, dropping connection: %v", err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
