package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans ticket-lifecycle events out to every kitchen-display and
// waitstaff session subscribed to a restaurant's channel. It is a convenience
// channel, never the source of truth: state is always re-fetchable over REST,
// and consumers must dedupe order.created by order id.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan Envelope
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

// Subscription scopes one connection to one restaurant.
type Subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
	UserID       uint
}

// Envelope is the wire frame: {"event": ..., "data": ...}.
type Envelope struct {
	RestaurantID uint   `json:"-"`
	Event        string `json:"event"`
	Data         any    `json:"data"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients: make(map[uint]map[*websocket.Conn]bool),
		// buffered so Publish never blocks a committed mutation
		broadcast:  make(chan Envelope, 256),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// Publish implements services.EventPublisher. Fire-and-forget: if the hub is
// saturated the event is dropped — subscribers recover via a full read.
func (h *OrderHub) Publish(restaurantID uint, event string, payload any) {
	env := Envelope{RestaurantID: restaurantID, Event: event, Data: payload}
	select {
	case h.broadcast <- env:
	default:
		log.Printf("ws: broadcast buffer full, dropping %s for restaurant %d", event, restaurantID)
	}
}

// Run loops over register/unregister/broadcast. Start once, in a goroutine.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case env := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[env.RestaurantID] {
				if err := conn.WriteJSON(env); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[env.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders?restaurantId=
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	restID64, err := strconv.ParseUint(c.Query("restaurantId"), 10, 32)
	if err != nil || restID64 == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantId required"})
		return
	}
	restID := uint(restID64)

	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, RestaurantID: restID, UserID: userID}
	h.register <- sub

	go h.readLoop(sub)
}

// readLoop drains the connection (clients only listen on this channel) and
// unregisters on the first error.
func (h *OrderHub) readLoop(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
