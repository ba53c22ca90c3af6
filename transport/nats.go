package transport

import (
	"encoding/json"
	"strings"

	"github.com/nats-io/nats.go"
)

type natsTransport struct {
	nc *nats.Conn
}

// NewNATSTransport connects to a NATS server and wraps the connection.
func NewNATSTransport(url string, opts ...nats.Option) (Transport, error) {
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	return &natsTransport{nc: nc}, nil
}

// NewNATSTransportWithConn wraps an existing connection. The caller keeps
// ownership of the connection lifecycle.
func NewNATSTransportWithConn(nc *nats.Conn) Transport {
	return &natsTransport{nc: nc}
}

func (t *natsTransport) Send(destination string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return t.nc.Publish(subjectFor(destination), data)
}

func (t *natsTransport) Subscribe(destination string, handler Handler) (func(), error) {
	sub, err := t.nc.Subscribe(subjectFor(destination), func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return func() {
		_ = sub.Unsubscribe()
	}, nil
}

// subjectFor maps slash-delimited destinations onto NATS subjects,
// e.g. "/topic/table/42" -> "topic.table.42".
func subjectFor(destination string) string {
	return strings.ReplaceAll(strings.Trim(destination, "/"), "/", ".")
}
