package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/Schnee111/smart-city-monitoring-system/internal/broadcast"
	gws "github.com/gorilla/websocket"
)

const DefaultSendBuffer = 256

type message struct {
	topic   string
	payload []byte
}

// Hub tracks connected subscribers and routes each published payload to the
// clients subscribed to its topic. A client whose send buffer is full is
// dropped rather than allowed to stall the hub.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	sendBuffer  int
	messageType int
	connected   atomic.Int64
	upgrader    gws.Upgrader
}

// NewHub builds a hub. binary selects binary frames (protobuf codec) over text frames.
func NewHub(sendBuffer int, binary bool) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = DefaultSendBuffer
	}
	messageType := gws.TextMessage
	if binary {
		messageType = gws.BinaryMessage
	}
	return &Hub{
		clients:     make(map[*Client]struct{}),
		broadcast:   make(chan message),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		done:        make(chan struct{}),
		sendBuffer:  sendBuffer,
		messageType: messageType,
		upgrader: gws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checks are handled by the CORS layer in front of the router.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run owns the client set until ctx is cancelled, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			h.drop(client)
		}
		close(h.done)
		slog.Info("[WebSocket] Hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.connected.Add(1)
			slog.Debug("[WebSocket] Client registered", "remote", client.remote, "topics", client.topicList())

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				slog.Debug("[WebSocket] Client unregistered", "remote", client.remote)
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.subscribed(msg.topic) {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					slog.Warn("[WebSocket] Client send buffer full, dropping connection",
						"remote", client.remote,
						"topic", msg.topic)
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.connected.Add(-1)
}

// Publish implements broadcast.Publisher. It returns once the hub has queued
// the payload on every subscribed client, not when clients have received it.
func (h *Hub) Publish(ctx context.Context, topic string, payload []byte) error {
	select {
	case h.broadcast <- message{topic: topic, payload: payload}:
		return nil
	case <-h.done:
		return broadcast.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	return int(h.connected.Load())
}

// ServeWS upgrades the request and subscribes the connection to every
// "topic" query parameter ("sensor:<id>" or "all"). No topic means "all".
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	topics := r.URL.Query()["topic"]
	if len(topics) == 0 {
		topics = []string{broadcast.TopicAll}
	}
	for _, topic := range topics {
		if !broadcast.ValidTopic(topic) {
			http.Error(w, "invalid topic: "+topic, http.StatusBadRequest)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("[WebSocket] Upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	client := newClient(h, conn, topics)
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
