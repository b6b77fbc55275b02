package push

import (
	"net/http"

	"github.com/gorilla/websocket"

	"frankies/internal/pkg/httpx"
	"frankies/internal/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and subscribes the connection to the
// notifications of the userId query parameter.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	recipient := r.URL.Query().Get("userId")
	if recipient == "" {
		httpx.Error(w, http.StatusBadRequest, "userId is required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.L().Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256), recipient: recipient}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}
