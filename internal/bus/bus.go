// Package bus streams assistant events (messages, device state, SOS
// progress) to a websocket endpoint so companion UIs can mirror the
// conversation.
package bus

import (
	"context"
	"encoding/json"
	log "log/slog"
	"time"

	ws "github.com/gorilla/websocket"
)

type Event struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher owns one outbound websocket. Publish never blocks the caller;
// events queue in a bounded buffer and drop under backpressure.
type Publisher struct {
	url    string
	reconn time.Duration
	events chan []byte
}

func NewPublisher(wsURL string, reconn time.Duration) *Publisher {
	if reconn <= 0 {
		reconn = 5 * time.Second
	}
	return &Publisher{
		url:    wsURL,
		reconn: reconn,
		events: make(chan []byte, 64),
	}
}

// Publish queues one event. A nil publisher or full buffer drops it; the
// bus is a mirror, never a dependency of the conversation.
func (p *Publisher) Publish(kind string, payload any) {
	if p == nil || p.url == "" {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error("Failed to marshal bus payload", "kind", kind, "err", err)
		return
	}
	data, err := json.Marshal(Event{Kind: kind, Payload: raw})
	if err != nil {
		log.Error("Failed to marshal bus event", "kind", kind, "err", err)
		return
	}
	select {
	case p.events <- data:
	default:
		log.Warn("Bus buffer full, dropping event", "kind", kind)
	}
}

// Run pumps queued events to the endpoint, redialing until ctx ends.
func (p *Publisher) Run(ctx context.Context) {
	if p == nil || p.url == "" {
		return
	}
	for {
		conn := p.dial(ctx)
		if conn == nil {
			return
		}
		log.Info("Connected to event bus", "url", p.url)

		if err := p.pump(ctx, conn); err == nil {
			conn.Close()
			return
		}
		conn.Close()
		log.Warn("Event bus connection lost, redialing")
	}
}

func (p *Publisher) dial(ctx context.Context) *ws.Conn {
	for {
		conn, _, err := ws.DefaultDialer.DialContext(ctx, p.url, nil)
		if err == nil {
			return conn
		}
		log.Debug("Event bus dial failed", "err", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(p.reconn):
		}
	}
}

// pump returns nil on shutdown, an error when the connection broke.
func (p *Publisher) pump(ctx context.Context, conn *ws.Conn) error {
	for {
		select {
		case <-ctx.Done():
			conn.WriteMessage(ws.CloseMessage,
				ws.FormatCloseMessage(ws.CloseNormalClosure, ""))
			return nil
		case data := <-p.events:
			if err := conn.WriteMessage(ws.TextMessage, data); err != nil {
				return err
			}
		}
	}
}
