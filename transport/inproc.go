package transport

import (
	"encoding/json"
	"sync"
)

// Inproc is a loopback Transport. Messages sent to a destination are delivered
// synchronously to its local subscribers. Used by tests and local demos.
type Inproc struct {
	mu       sync.Mutex
	handlers map[string]map[int]Handler
	nextID   int

	sent []SentMessage
}

// SentMessage records one Send call for inspection.
type SentMessage struct {
	Destination string
	Data        []byte
}

func NewInproc() *Inproc {
	return &Inproc{
		handlers: make(map[string]map[int]Handler),
	}
}

func (t *Inproc) Send(destination string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.sent = append(t.sent, SentMessage{Destination: destination, Data: data})
	t.mu.Unlock()

	t.Publish(destination, data)
	return nil
}

func (t *Inproc) Subscribe(destination string, handler Handler) (func(), error) {
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

// Publish delivers a raw payload to the destination's subscribers, bypassing
// JSON marshalling. Lets tests play the server side.
func (t *Inproc) Publish(destination string, data []byte) {
	t.mu.Lock()
	handlers := make([]Handler, 0, len(t.handlers[destination]))
	for _, h := range t.handlers[destination] {
		handlers = append(handlers, h)
	}
	t.mu.Unlock()

	for _, h := range handlers {
		h(data)
	}
}

// Sent returns every message sent so far.
func (t *Inproc) Sent() []SentMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]SentMessage, len(t.sent))
	copy(out, t.sent)
	return out
}

// SentTo filters sent messages by destination.
func (t *Inproc) SentTo(destination string) []SentMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]SentMessage, 0)
	for _, m := range t.sent {
		if m.Destination == destination {
			out = append(out, m)
		}
	}
	return out
}
