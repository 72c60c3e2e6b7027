package model

import (
	"encoding/json"
	"fmt"
)

// EventType represents the type of websocket event.
type EventType string

const (
	// EventEmit carries a dashboard -> host call.
	EventEmit EventType = "emit"
	// EventPush carries host -> dashboard state.
	EventPush EventType = "push"
	// EventAuth is the first frame a dashboard sends.
	EventAuth  EventType = "auth"
	EventError EventType = "error"
)

// Event is the wrapper for websocket messages.
type Event struct {
	Type    EventType         `json:"type"`
	Name    string            `json:"name,omitempty"`
	Args    []json.RawMessage `json:"args,omitempty"`
	Payload json.RawMessage   `json:"payload,omitempty"`
}

// AuthPayload is the payload for the auth handshake.
type AuthPayload struct {
	Operator string `json:"operator"`
	Password string `json:"password"`
}

// NewEmit builds an emit event, marshalling every argument on its own so the
// receiving side can decode them positionally.
func NewEmit(name string, args ...any) (Event, error) {
	raw := make([]json.RawMessage, 0, len(args))
	for i, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return Event{}, fmt.Errorf("marshal arg %d of %s: %w", i, name, err)
		}
		raw = append(raw, b)
	}
	return Event{Type: EventEmit, Name: name, Args: raw}, nil
}

// NewPush builds a push event with a JSON payload.
func NewPush(name string, payload any) (Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal payload of %s: %w", name, err)
	}
	return Event{Type: EventPush, Name: name, Payload: b}, nil
}

// Arg decodes the i-th argument of an emit event into v.
func (e Event) Arg(i int, v any) error {
	if i < 0 || i >= len(e.Args) {
		return fmt.Errorf("%s: missing argument %d", e.Name, i)
	}
	if err := json.Unmarshal(e.Args[i], v); err != nil {
		return fmt.Errorf("%s: argument %d: %w", e.Name, i, err)
	}
	return nil
}
