package domain

import "time"

type BookingEventType string

const (
	BookingCreated   BookingEventType = "booking.created"
	BookingConfirmed BookingEventType = "booking.confirmed"
	BookingDeclined  BookingEventType = "booking.declined"
	BookingCancelled BookingEventType = "booking.cancelled"
	BookingCompleted BookingEventType = "booking.completed"
)

// BookingEvent is the integration message emitted after a booking changes state.
type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	ActorID    string           `json:"actor_id,omitempty"`
	Booking    Booking          `json:"booking"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, actorID string, b *Booking) BookingEvent {
	return BookingEvent{
		Type:       t,
		ActorID:    actorID,
		Booking:    *b,
		OccurredAt: time.Now().UTC(),
	}
}
