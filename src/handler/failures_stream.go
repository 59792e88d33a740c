package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	logger "github.com/sirupsen/logrus"

	"webscaffold/src/stream"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// StreamFailuresHandler upgrades to a websocket and tails failure records
// live. One JSON object per text message.
func StreamFailuresHandler(hub *stream.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Error("failure stream upgrade failed")
			return
		}
		defer conn.Close()

		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)

		// Reader detects client disconnect; unsubscribing closes ch and
		// ends the write loop below.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					hub.Unsubscribe(ch)
					return
				}
			}
		}()

		for payload := range ch {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.WithError(err).Debug("failure stream client write failed")
				return
			}
		}
	}
}
