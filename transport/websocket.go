package transport

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Envelope frames every websocket message with its routing destination.
type Envelope struct {
	Destination string          `json:"destination"`
	Body        json.RawMessage `json:"body"`
}

// WebSocketTransport routes envelope-framed JSON messages over a single
// websocket connection.
type WebSocketTransport struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu       sync.Mutex
	handlers map[string]map[int]Handler
	nextID   int
}

// NewWebSocketTransport dials the given websocket URL and starts the read
// loop. Closing the returned transport closes the connection.
func NewWebSocketTransport(url string) (*WebSocketTransport, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return NewWebSocketTransportWithConn(conn), nil
}

// NewWebSocketTransportWithConn wraps an established connection and starts
// the read loop.
func NewWebSocketTransportWithConn(conn *websocket.Conn) *WebSocketTransport {
	t := &WebSocketTransport{
		conn:     conn,
		handlers: make(map[string]map[int]Handler),
	}
	go t.readLoop()
	return t
}

func (t *WebSocketTransport) Send(destination string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	env := Envelope{Destination: destination, Body: data}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.conn.WriteJSON(env)
}

func (t *WebSocketTransport) Subscribe(destination string, handler Handler) (func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.handlers[destination] == nil {
		t.handlers[destination] = make(map[int]Handler)
	}
	id := t.nextID
	t.nextID++
	t.handlers[destination][id] = handler

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.handlers[destination], id)
	}, nil
}

// Close shuts the underlying connection down, ending the read loop.
func (t *WebSocketTransport) Close() error {
	return t.conn.Close()
}

func (t *WebSocketTransport) readLoop() {
	for {
		_, data, err := t.conn.ReadMessage()
		if err != nil {
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			// Not envelope-framed; nothing to route it to.
			continue
		}

		t.mu.Lock()
		handlers := make([]Handler, 0, len(t.handlers[env.Destination]))
		for _, h := range t.handlers[env.Destination] {
			handlers = append(handlers, h)
		}
		t.mu.Unlock()

		for _, h := range handlers {
			h(env.Body)
		}
	}
}
