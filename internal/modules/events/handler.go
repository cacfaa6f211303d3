package events

import (
	"io"
	"log"
	"net/http"

	"recordstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler streams catalog change events to clients, over SSE per operation
// and over a single websocket carrying all operations.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services/notification/ws", h.Websocket)
	rg.GET("/services/notification/:op", h.Stream)
}

// Stream holds the connection open and pushes each catalog event of the
// requested operation as an SSE message.
func (h *Handler) Stream(c *gin.Context) {
	op := Operation(c.Param("op"))
	if !ValidOperation(op) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown event operation")
		return
	}

	id, ch := h.hub.Subscribe(op)
	defer h.hub.Unsubscribe(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("message", gin.H{"name": ev.Name})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// Websocket pushes every catalog event as a JSON frame.
func (h *Handler) Websocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("events: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	id, ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
