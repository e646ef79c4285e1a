package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses a customer may still cancel from.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
}

// CanTransition reports whether a booking may move from s to next.
// Completed and cancelled bookings are terminal.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ActorCanTransition narrows CanTransition to the moves each side of a booking
// is offered: performers answer pending requests, customers cancel anything
// still active. Completion is not reachable by either role.
func ActorCanTransition(role Role, from, to BookingStatus) bool {
	if !from.CanTransition(to) {
		return false
	}
	switch role {
	case RolePerformer:
		return from == BookingStatusPending
	case RoleCustomer:
		return to == BookingStatusCancelled
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID                  string        `json:"id"`
	CustomerID          string        `json:"customer_id"`
	PerformerID         string        `json:"performer_id"`
	EventDate           time.Time     `json:"event_date"`
	EventTime           string        `json:"event_time"`
	DurationHours       float64       `json:"event_duration_hours"`
	EventType           string        `json:"event_type"`
	EventLocation       string        `json:"event_location"`
	EventCity           string        `json:"event_city"`
	EventState          string        `json:"event_state"`
	TotalAmount         float64       `json:"total_amount"`
	Status              BookingStatus `json:"status"`
	SpecialRequirements *string       `json:"special_requirements"`
	CustomerNotes       *string       `json:"customer_notes"`
	PerformerNotes      *string       `json:"performer_notes"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// BookingWithPerformer is a customer-side booking row carrying the performer's stage name.
// PerformerName is empty when the performer profile no longer resolves.
type BookingWithPerformer struct {
	Booking
	PerformerName string `json:"performer_name"`
}

type CreateBookingInput struct {
	EventDate           time.Time `validate:"required"`
	EventTime           string    `validate:"required"`
	DurationHours       float64   `validate:"gte=1,lte=12,half_hour"`
	EventType           string    `validate:"required"`
	EventLocation       string    `validate:"required"`
	EventCity           string    `validate:"required"`
	EventState          string    `validate:"required"`
	SpecialRequirements *string
	CustomerNotes       *string
}

// BookingList is what a dashboard gets back: customers see performer names,
// performers see how many requests still wait for an answer.
type BookingList struct {
	Bookings     []*BookingWithPerformer `json:"bookings"`
	PendingCount int                     `json:"pending_count"`
}

// TotalAmount is the hourly base price times the requested duration.
// Prices carry cents and durations come in half hours, so the exact product
// never needs more than three decimals; snapping to them only removes float
// noise (333.33 * 2.5 is 833.3249999999999 in float64).
func TotalAmount(basePrice, durationHours float64) float64 {
	return math.Round(basePrice*durationHours*1000) / 1000
}
