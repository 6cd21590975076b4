package handler

import (
	"log"
	"net/http"

	"anoa.com/ramadhanpitstop/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// LiveHandler menayangkan event check-in ke dashboard admin lewat websocket.
type LiveHandler struct {
	hub      *service.LiveHub
	upgrader websocket.Upgrader
}

func NewLiveHandler(hub *service.LiveHub) *LiveHandler {
	return &LiveHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // CORS sudah ditangani di router
			},
		},
	}
}

func (h *LiveHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	// Koneksi hanya dipakai satu arah (server ke klien); loop baca di sini
	// cuma untuk mendeteksi klien menutup koneksi.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
