package api

import (
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/events"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"
)

const (
	pingInterval = 10 * time.Second
	writeWait    = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// changesHandler отдаёт события изменений коллекции (или всех коллекций) по WebSocket.
func changesHandler(broker *events.Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Query().Get("collection")
		if collection != "" && !slices.Contains(schema.Names, collection) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "unknown collection", Field: "collection"})
			return
		}

		// Подписываемся до апгрейда, чтобы не потерять события сразу после рукопожатия
		changes, unsubscribe := broker.Subscribe(collection)
		defer unsubscribe()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade уже ответил клиенту
			log.Printf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		// Читаем входящие кадры только чтобы заметить закрытие соединения
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				return
			case c, ok := <-changes:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(c); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}
}
