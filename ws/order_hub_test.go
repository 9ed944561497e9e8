package ws

import (
	"encoding/json"
	"testing"
)

func TestPublishNeverBlocksWithoutSubscribers(t *testing.T) {
	hub := NewOrderHub()
	// no Run loop: filling the buffer past capacity must drop, not hang
	for i := 0; i < 1000; i++ {
		hub.Publish(1, "order.created", map[string]any{"id": i})
	}
}

func TestEnvelopeWireFormat(t *testing.T) {
	env := Envelope{RestaurantID: 7, Event: "line.status_changed", Data: map[string]any{"lineId": 3}}

	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["event"] != "line.status_changed" {
		t.Errorf("event = %v", out["event"])
	}
	if _, ok := out["restaurantID"]; ok {
		t.Error("restaurant id must not leak onto the wire; scoping is by channel")
	}
}
