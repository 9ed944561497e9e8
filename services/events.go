package services

// Event kinds published on a restaurant's realtime channel.
const (
	EventOrderCreated      = "order.created"
	EventLineStatusChanged = "line.status_changed"
)

// LineStatusChangedPayload goes out with EventLineStatusChanged.
type LineStatusChangedPayload struct {
	LineID  uint   `json:"lineId"`
	OrderID uint   `json:"orderId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// EventPublisher pushes lifecycle events to subscribed displays. Delivery is
// fire-and-forget: publication happens after the state change is committed
// and is never the source of truth — subscribers re-fetch over REST and must
// dedupe order.created by order id.
type EventPublisher interface {
	Publish(restaurantID uint, event string, payload any)
}

// NoopPublisher is used in tests and when no hub is wired.
type NoopPublisher struct{}

func (NoopPublisher) Publish(uint, string, any) {}
