package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stpnv0/StageBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingDeps struct {
	bookings   *mocks.MockBookingRepo
	performers *mocks.MockPerformerRepo
	publisher  *mocks.MockBookingPublisher
	svc        *BookingService
}

func newBookingDeps(t *testing.T) bookingDeps {
	t.Helper()
	d := bookingDeps{
		bookings:   mocks.NewMockBookingRepo(t),
		performers: mocks.NewMockPerformerRepo(t),
		publisher:  mocks.NewMockBookingPublisher(t),
	}
	d.svc = NewBookingService(d.bookings, d.performers, d.publisher, newTestLogger(t))
	return d
}

func validBookingInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		EventDate:     time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		EventTime:     "19:30",
		DurationHours: 2.5,
		EventType:     "Wedding",
		EventLocation: "12 MG Road",
		EventCity:     "Bangalore",
		EventState:    "Karnataka",
	}
}

func publishedType(t domain.BookingEventType) interface{} {
	return mock.MatchedBy(func(e domain.BookingEvent) bool { return e.Type == t })
}

var (
	performerActor = domain.Actor{UserID: "user-p1", Role: domain.RolePerformer}
	customerActor  = domain.Actor{UserID: "cust-1", Role: domain.RoleCustomer}
	performerP1    = &domain.PerformerProfile{ID: "p1", UserID: "user-p1", StageName: "DJ Nova", BasePrice: 1000, IsAvailable: true}
)

// --- Submit ---

func TestBookingService_Submit_ComputesTotalAndStartsPending(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByID(mock.Anything, "p1").Return(performerP1, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.TotalAmount == 2500 && b.Status == domain.BookingStatusPending
	})).Return(nil)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingCreated)).Return()

	booking, err := d.svc.Submit(context.Background(), "cust-1", "p1", validBookingInput())

	require.NoError(t, err)
	assert.Equal(t, 2500.0, booking.TotalAmount)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "cust-1", booking.CustomerID)
	assert.Equal(t, "p1", booking.PerformerID)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Submit_CentPriceHalfHourKeepsThreeDecimals(t *testing.T) {
	d := newBookingDeps(t)

	performer := &domain.PerformerProfile{ID: "p2", UserID: "user-p2", StageName: "Odd Cents", BasePrice: 333.33, IsAvailable: true}
	d.performers.EXPECT().GetByID(mock.Anything, "p2").Return(performer, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.TotalAmount == 833.325
	})).Return(nil)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingCreated)).Return()

	booking, err := d.svc.Submit(context.Background(), "cust-1", "p2", validBookingInput())

	require.NoError(t, err)
	assert.Equal(t, 833.325, booking.TotalAmount)
}

func TestBookingService_Submit_DoesNotDetectOverlaps(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByID(mock.Anything, "p1").Return(performerP1, nil).Times(2)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingCreated)).Return().Times(2)

	in := validBookingInput()
	first, err := d.svc.Submit(context.Background(), "cust-1", "p1", in)
	require.NoError(t, err)
	second, err := d.svc.Submit(context.Background(), "cust-2", "p1", in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestBookingService_Submit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.CreateBookingInput)
	}{
		{"duration below one hour", func(in *domain.CreateBookingInput) { in.DurationHours = 0.5 }},
		{"duration above twelve hours", func(in *domain.CreateBookingInput) { in.DurationHours = 12.5 }},
		{"duration off the half hour", func(in *domain.CreateBookingInput) { in.DurationHours = 2.25 }},
		{"missing event type", func(in *domain.CreateBookingInput) { in.EventType = "" }},
		{"missing venue", func(in *domain.CreateBookingInput) { in.EventLocation = "" }},
		{"missing city", func(in *domain.CreateBookingInput) { in.EventCity = "" }},
		{"missing time", func(in *domain.CreateBookingInput) { in.EventTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBookingDeps(t)
			in := validBookingInput()
			tt.mutate(&in)

			_, err := d.svc.Submit(context.Background(), "cust-1", "p1", in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Submit_PerformerNotFound(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPerformerNotFound)

	_, err := d.svc.Submit(context.Background(), "cust-1", "missing", validBookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPerformerNotFound)
}

func TestBookingService_Submit_PerformerUnavailable(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByID(mock.Anything, "p2").
		Return(&domain.PerformerProfile{ID: "p2", BasePrice: 500, IsAvailable: false}, nil)

	_, err := d.svc.Submit(context.Background(), "cust-1", "p2", validBookingInput())

	assert.ErrorIs(t, err, domain.ErrPerformerUnavailable)
}

func TestBookingService_Submit_CreateErrorSurfacesMessage(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByID(mock.Anything, "p1").Return(performerP1, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("insert booking: connection reset"))

	_, err := d.svc.Submit(context.Background(), "cust-1", "p1", validBookingInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

// --- Confirm / Decline ---

func TestBookingService_Confirm_IncrementsThroughRepo(t *testing.T) {
	d := newBookingDeps(t)

	pending := &domain.Booking{ID: "b1", PerformerID: "p1", CustomerID: "cust-1", Status: domain.BookingStatusPending}
	confirmed := *pending
	confirmed.Status = domain.BookingStatusConfirmed

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pending, nil)
	d.bookings.EXPECT().Confirm(mock.Anything, "b1", "p1").Return(&confirmed, nil)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingConfirmed)).Return()

	got, err := d.svc.Confirm(context.Background(), performerActor, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestBookingService_Confirm_RejectsOtherPerformersBooking(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
	d.bookings.EXPECT().GetByID(mock.Anything, "b9").
		Return(&domain.Booking{ID: "b9", PerformerID: "p9", Status: domain.BookingStatusPending}, nil)

	_, err := d.svc.Confirm(context.Background(), performerActor, "b9")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Confirm_RejectsCustomer(t *testing.T) {
	d := newBookingDeps(t)

	_, err := d.svc.Confirm(context.Background(), customerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Confirm_PerformerWithoutProfile(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(nil, nil)

	_, err := d.svc.Confirm(context.Background(), performerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Confirm_TerminalStatesRejected(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.BookingStatusConfirmed,
		domain.BookingStatusCancelled,
		domain.BookingStatusCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			d := newBookingDeps(t)

			d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
			d.bookings.EXPECT().GetByID(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", PerformerID: "p1", Status: status}, nil)

			_, err := d.svc.Confirm(context.Background(), performerActor, "b1")

			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestBookingService_Confirm_LostRace(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", PerformerID: "p1", Status: domain.BookingStatusPending}, nil)
	d.bookings.EXPECT().Confirm(mock.Anything, "b1", "p1").Return(nil, domain.ErrInvalidTransition)

	_, err := d.svc.Confirm(context.Background(), performerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Decline_StoresNotes(t *testing.T) {
	d := newBookingDeps(t)

	notes := "Already booked that weekend"
	pending := &domain.Booking{ID: "b1", PerformerID: "p1", Status: domain.BookingStatusPending}
	declined := *pending
	declined.Status = domain.BookingStatusCancelled
	declined.PerformerNotes = &notes

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pending, nil)
	d.bookings.EXPECT().Transition(
		mock.Anything, "b1",
		[]domain.BookingStatus{domain.BookingStatusPending},
		domain.BookingStatusCancelled,
		&notes,
	).Return(&declined, nil)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingDeclined)).Return()

	got, err := d.svc.Decline(context.Background(), performerActor, "b1", &notes)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Equal(t, notes, *got.PerformerNotes)
}

func TestBookingService_Decline_ConfirmedNotOffered(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", PerformerID: "p1", Status: domain.BookingStatusConfirmed}, nil)

	_, err := d.svc.Decline(context.Background(), performerActor, "b1", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// --- Cancel ---

func TestBookingService_Cancel_Confirmed(t *testing.T) {
	d := newBookingDeps(t)

	confirmed := &domain.Booking{ID: "b1", PerformerID: "p1", CustomerID: "cust-1", Status: domain.BookingStatusConfirmed}
	cancelled := *confirmed
	cancelled.Status = domain.BookingStatusCancelled

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil)
	d.bookings.EXPECT().Transition(mock.Anything, "b1", domain.ActiveStatuses, domain.BookingStatusCancelled, (*string)(nil)).
		Return(&cancelled, nil)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingCancelled)).Return()

	got, err := d.svc.Cancel(context.Background(), customerActor, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
}

func TestBookingService_Cancel_ThenConfirmRejected(t *testing.T) {
	d := newBookingDeps(t)

	confirmed := &domain.Booking{ID: "b1", PerformerID: "p1", CustomerID: "cust-1", Status: domain.BookingStatusConfirmed}
	cancelled := *confirmed
	cancelled.Status = domain.BookingStatusCancelled

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil).Once()
	d.bookings.EXPECT().Transition(mock.Anything, "b1", domain.ActiveStatuses, domain.BookingStatusCancelled, (*string)(nil)).
		Return(&cancelled, nil)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingCancelled)).Return()

	_, err := d.svc.Cancel(context.Background(), customerActor, "b1")
	require.NoError(t, err)

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&cancelled, nil).Once()

	_, err = d.svc.Confirm(context.Background(), performerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel_OtherCustomer(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "cust-2", Status: domain.BookingStatusPending}, nil)

	_, err := d.svc.Cancel(context.Background(), customerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_RejectsPerformer(t *testing.T) {
	d := newBookingDeps(t)

	_, err := d.svc.Cancel(context.Background(), performerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_Completed(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "cust-1", Status: domain.BookingStatusCompleted}, nil)

	_, err := d.svc.Cancel(context.Background(), customerActor, "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := d.svc.Cancel(context.Background(), customerActor, "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// --- CompleteFinished ---

func TestBookingService_CompleteFinished_PublishesEach(t *testing.T) {
	d := newBookingDeps(t)

	done := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusCompleted},
		{ID: "b2", Status: domain.BookingStatusCompleted},
	}
	d.bookings.EXPECT().CompleteFinished(mock.Anything, mock.AnythingOfType("time.Time")).Return(done, nil)
	d.publisher.EXPECT().Publish(mock.Anything, publishedType(domain.BookingCompleted)).Return().Times(2)

	got, err := d.svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingService_CompleteFinished_RepoError(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().CompleteFinished(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := d.svc.CompleteFinished(context.Background())

	require.Error(t, err)
}

// --- ListForActor ---

func TestBookingService_ListForActor_Customer(t *testing.T) {
	d := newBookingDeps(t)

	bookings := []*domain.Booking{
		{ID: "b1", PerformerID: "p1", Status: domain.BookingStatusPending},
		{ID: "b2", PerformerID: "p2", Status: domain.BookingStatusConfirmed},
		{ID: "b3", PerformerID: "p1", Status: domain.BookingStatusPending},
	}
	d.bookings.EXPECT().ListByCustomer(mock.Anything, "cust-1").Return(bookings, nil)
	d.performers.EXPECT().StageNames(mock.Anything, []string{"p1", "p2"}).
		Return(map[string]string{"p1": "DJ Nova"}, nil)

	list, err := d.svc.ListForActor(context.Background(), customerActor)

	require.NoError(t, err)
	require.Len(t, list.Bookings, 3)
	assert.Equal(t, "DJ Nova", list.Bookings[0].PerformerName)
	assert.Empty(t, list.Bookings[1].PerformerName)
	assert.Equal(t, 2, list.PendingCount)
}

func TestBookingService_ListForActor_CustomerNamesFailure(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().ListByCustomer(mock.Anything, "cust-1").
		Return([]*domain.Booking{{ID: "b1", PerformerID: "p1"}}, nil)
	d.performers.EXPECT().StageNames(mock.Anything, []string{"p1"}).Return(nil, errors.New("timeout"))

	list, err := d.svc.ListForActor(context.Background(), customerActor)

	require.NoError(t, err)
	assert.Len(t, list.Bookings, 1)
}

func TestBookingService_ListForActor_Performer(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(performerP1, nil)
	d.bookings.EXPECT().ListByPerformer(mock.Anything, "p1").Return([]*domain.Booking{
		{ID: "b1", PerformerID: "p1", Status: domain.BookingStatusPending},
		{ID: "b2", PerformerID: "p1", Status: domain.BookingStatusCancelled},
	}, nil)

	list, err := d.svc.ListForActor(context.Background(), performerActor)

	require.NoError(t, err)
	assert.Len(t, list.Bookings, 2)
	assert.Equal(t, 1, list.PendingCount)
}

func TestBookingService_ListForActor_PerformerWithoutProfile(t *testing.T) {
	d := newBookingDeps(t)

	d.performers.EXPECT().GetByUserID(mock.Anything, "user-p1").Return(nil, nil)

	list, err := d.svc.ListForActor(context.Background(), performerActor)

	require.NoError(t, err)
	assert.Empty(t, list.Bookings)
}
