package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},

		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestActorCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		from, to BookingStatus
		want     bool
	}{
		{"performer accepts", RolePerformer, BookingStatusPending, BookingStatusConfirmed, true},
		{"performer declines", RolePerformer, BookingStatusPending, BookingStatusCancelled, true},
		{"performer cannot cancel confirmed", RolePerformer, BookingStatusConfirmed, BookingStatusCancelled, false},
		{"performer cannot complete", RolePerformer, BookingStatusConfirmed, BookingStatusCompleted, false},
		{"customer cancels pending", RoleCustomer, BookingStatusPending, BookingStatusCancelled, true},
		{"customer cancels confirmed", RoleCustomer, BookingStatusConfirmed, BookingStatusCancelled, true},
		{"customer cannot confirm", RoleCustomer, BookingStatusPending, BookingStatusConfirmed, false},
		{"customer cannot complete", RoleCustomer, BookingStatusConfirmed, BookingStatusCompleted, false},
		{"cancelled stays cancelled", RoleCustomer, BookingStatusCancelled, BookingStatusCancelled, false},
		{"unknown role", Role("admin"), BookingStatusPending, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActorCanTransition(tt.role, tt.from, tt.to))
		})
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusPending.Valid())
	assert.False(t, BookingStatus("archived").Valid())
}

func TestTotalAmount(t *testing.T) {
	assert.Equal(t, 2500.0, TotalAmount(1000, 2.5))
	assert.Equal(t, 1000.0, TotalAmount(1000, 1))
	assert.Equal(t, 0.0, TotalAmount(0, 4))
}

func TestTotalAmount_CentsTimesHalfHour(t *testing.T) {
	assert.Equal(t, 833.325, TotalAmount(333.33, 2.5))
	assert.Equal(t, 1851.855, TotalAmount(1234.57, 1.5))
	assert.Equal(t, 0.5, TotalAmount(0.01, 50))
}
