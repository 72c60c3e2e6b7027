package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/puyokura/nuiadmin/model"
)

const (
	DefaultPort = "8999"
	writeWait   = 10 * time.Second
	authWait    = 5 * time.Second
)

// ErrAuthRejected is returned when the host refuses the operator's
// credentials.
var ErrAuthRejected = errors.New("bridge: authentication rejected")

// WebsocketBridge is the live bridge to a host reachable over a websocket.
type WebsocketBridge struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	authed bool // host accepted the auth frame; emits wait for it
	dialer *websocket.Dialer
}

func NewWebsocketBridge() *WebsocketBridge {
	return &WebsocketBridge{dialer: websocket.DefaultDialer}
}

// HostURL turns "host[:port]" into the host's websocket URL. Full ws://
// or wss:// URLs are used as given.
func HostURL(host string) string {
	if strings.HasPrefix(host, "ws://") || strings.HasPrefix(host, "wss://") {
		return host
	}
	// Default port 8999 if not specified
	if !strings.Contains(host, ":") {
		host = host + ":" + DefaultPort
	}
	u := url.URL{Scheme: "ws", Host: host, Path: "/ws"}
	return u.String()
}

// Connect dials the host, replacing any existing connection.
func (b *WebsocketBridge) Connect(host string) error {
	b.Disconnect()

	target := HostURL(host)
	log.Printf("connecting to %s", target)

	c, _, err := b.dialer.Dial(target, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	b.mu.Lock()
	b.conn = c
	b.mu.Unlock()
	return nil
}

// Authenticate sends the auth frame and waits for the host's verdict. It
// must be called before the read loop starts.
func (b *WebsocketBridge) Authenticate(operator, password string) error {
	b.mu.Lock()
	conn := b.conn
	b.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	payload, err := json.Marshal(model.AuthPayload{Operator: operator, Password: password})
	if err != nil {
		return err
	}
	if err := b.write(model.Event{Type: model.EventAuth, Payload: payload}, false); err != nil {
		return err
	}

	conn.SetReadDeadline(time.Now().Add(authWait))
	defer conn.SetReadDeadline(time.Time{})

	var reply model.Event
	if err := conn.ReadJSON(&reply); err != nil {
		b.Disconnect()
		return fmt.Errorf("read auth reply: %w", err)
	}
	if reply.Type == model.EventError {
		b.Disconnect()
		return ErrAuthRejected
	}
	b.mu.Lock()
	b.authed = b.conn == conn
	b.mu.Unlock()
	return nil
}

func (b *WebsocketBridge) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	b.authed = false
}

// Available reports whether an authenticated connection is up.
func (b *WebsocketBridge) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn != nil && b.authed
}

// Send writes c as an emit event.
func (b *WebsocketBridge) Send(c Call) error {
	ev, err := model.NewEmit(c.Event, c.Args...)
	if err != nil {
		return err
	}
	return b.write(ev, true)
}

func (b *WebsocketBridge) write(ev model.Event, needAuth bool) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil || (needAuth && !b.authed) {
		return ErrNotConnected
	}
	b.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return b.conn.WriteMessage(websocket.TextMessage, data)
}

// Next blocks for the next event pushed by the host. A read error closes
// the connection.
func (b *WebsocketBridge) Next() (model.Event, error) {
	b.mu.Lock()
	conn := b.conn
	b.mu.Unlock()
	if conn == nil {
		return model.Event{}, ErrNotConnected
	}

	_, message, err := conn.ReadMessage()
	if err != nil {
		b.Disconnect()
		return model.Event{}, err
	}

	var event model.Event
	if err := json.Unmarshal(message, &event); err != nil {
		return model.Event{}, fmt.Errorf("decode host event: %w", err)
	}
	return event, nil
}
