// Package transport provides the pub/sub channel the table client talks over.
// Destinations are opaque routable strings; adapters decide how they map onto
// the underlying broker. Connection lifecycle stays with the caller.
package transport

// Handler receives the raw body of a message published to a subscribed
// destination.
type Handler func(data []byte)

// Transport is a minimal bidirectional messaging channel. Send marshals the
// body as JSON; Subscribe returns an unsubscribe function.
type Transport interface {
	Send(destination string, body interface{}) error
	Subscribe(destination string, handler Handler) (func(), error)
}
