// Package queue defines message payloads exchanged over the message
// broker, the publisher that emits them and the background consumer
// that records booking activity.
package queue

// Queue names. Both queues are declared durable on first use.
const (
	BookingCreatedQueue = "booking.created"
	PropertyListedQueue = "property.listed"
)

// BookingCreatedEvent is published when a booking request is stored.
// It carries enough information for downstream consumers to log or
// notify without querying the store.
type BookingCreatedEvent struct {
	BookingID       string `json:"booking_id"`
	PropertyID      string `json:"property_id"`
	PropertyName    string `json:"property_name"`
	UserID          string `json:"user_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalPriceCents int64  `json:"total_price_cents"`
	CreatedAt       string `json:"created_at"`
}

// PropertyListedEvent is published when a new listing is created.
type PropertyListedEvent struct {
	PropertyID   string `json:"property_id"`
	Title        string `json:"title"`
	City         string `json:"city"`
	Country      string `json:"country"`
	PropertyType string `json:"property_type"`
	PriceCents   int64  `json:"price_cents"`
	AgentName    string `json:"agent_name"`
	CreatedAt    string `json:"created_at"`
}
