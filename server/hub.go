package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/puyokura/nuiadmin/model"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	authWait   = 10 * time.Second
	// Mission drafts travel whole, so frames are larger than chat lines.
	maxMessageSize = 1 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local tool
	},
}

// Client is a middleman between a dashboard's websocket and the hub.
type Client struct {
	hub *Hub

	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte

	// Set once the auth frame is accepted.
	operator string
}

// Hub keeps the authenticated dashboards and fans pushes out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	store      *Store
	config     *Config
	mu         sync.Mutex
}

func NewHub(store *Store, config *Config) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		store:      store,
		config:     config,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("Dashboard connected: %s", client.operator)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Dashboard disconnected: %s", client.operator)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Count returns the number of connected dashboards.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// authenticate reads the first frame and checks it against the admin
// password. The verdict is written straight to the connection because the
// write pump is not running yet.
func (c *Client) authenticate() bool {
	c.conn.SetReadDeadline(time.Now().Add(authWait))
	var ev model.Event
	if err := c.conn.ReadJSON(&ev); err != nil {
		log.Printf("Auth read failed: %v", err)
		return false
	}

	var p model.AuthPayload
	ok := ev.Type == model.EventAuth && json.Unmarshal(ev.Payload, &p) == nil && c.hub.config.CheckPassword(p.Password)

	reply := model.Event{Type: model.EventAuth, Name: "ok"}
	if !ok {
		reply = model.Event{Type: model.EventError, Name: "auth"}
		log.Printf("Auth rejected for %q from %s", p.Operator, c.conn.RemoteAddr())
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(reply); err != nil {
		return false
	}
	if ok {
		c.operator = p.Operator
		if c.operator == "" {
			c.operator = "admin"
		}
	}
	return ok
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}

		var event model.Event
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("Invalid JSON: %v", err)
			continue
		}
		if event.Type != model.EventEmit {
			log.Printf("Ignoring %s frame from %s", event.Type, c.operator)
			continue
		}
		c.handleEvent(event)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// One event per frame; the dashboard decodes frames whole.
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// push queues ev for this dashboard only.
func (c *Client) push(ev model.Event) {
	bytes, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Failed to encode %s: %v", ev.Name, err)
		return
	}
	select {
	case c.send <- bytes:
	default:
		log.Printf("Dropped %s for %s (channel full)", ev.Name, c.operator)
	}
}

// Push sends ev to every connected dashboard.
func (h *Hub) Push(ev model.Event) {
	bytes, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Failed to encode %s: %v", ev.Name, err)
		return
	}
	h.broadcast <- bytes
}

// serveWs upgrades the request and admits the dashboard once it has
// authenticated.
func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	if !client.authenticate() {
		conn.Close()
		return
	}
	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()
}
