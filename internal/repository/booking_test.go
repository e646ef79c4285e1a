package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	confirmSQL = regexp.QuoteMeta(`UPDATE bookings SET status = $3, updated_at = now() ` +
		`WHERE id = $1 AND performer_id = $2 AND status = $4 RETURNING`)
	bumpTotalBookingsSQL = regexp.QuoteMeta(`UPDATE performer_profiles ` +
		`SET total_bookings = total_bookings + 1, updated_at = now() WHERE id = $1`)
	transitionSQL = regexp.QuoteMeta(`UPDATE bookings SET status = $2, ` +
		`performer_notes = COALESCE($4::text, performer_notes), updated_at = now() ` +
		`WHERE id = $1 AND status = ANY($3) RETURNING`)
	completeFinishedSQL = regexp.QuoteMeta(`UPDATE bookings SET status = $2, updated_at = now() ` +
		`WHERE status = $1 AND event_date + event_time::time ` +
		`+ make_interval(secs => (event_duration_hours * 3600)::double precision) < $3::timestamp RETURNING`)
	bookingStatusSQL = regexp.QuoteMeta(`SELECT status FROM bookings WHERE id = $1`)
)

// --- Confirm ---

func TestBookingRepository_Confirm_UpdatesStatusAndCounterInOneTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectBegin()
	mock.ExpectQuery(confirmSQL).
		WithArgs("b1", "p1", domain.BookingStatusConfirmed, domain.BookingStatusPending).
		WillReturnRows(bookingRows(domain.BookingStatusConfirmed, nil))
	mock.ExpectExec(bumpTotalBookingsSQL).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b, err := repo.Confirm(context.Background(), "b1", "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, 833.325, b.TotalAmount)
	assert.Nil(t, b.PerformerNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Confirm_CounterFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectBegin()
	mock.ExpectQuery(confirmSQL).
		WithArgs("b1", "p1", domain.BookingStatusConfirmed, domain.BookingStatusPending).
		WillReturnRows(bookingRows(domain.BookingStatusConfirmed, nil))
	mock.ExpectExec(bumpTotalBookingsSQL).
		WithArgs("p1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.Confirm(context.Background(), "b1", "p1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "increment total bookings")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Confirm_MissingPerformerRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectBegin()
	mock.ExpectQuery(confirmSQL).
		WithArgs("b1", "p1", domain.BookingStatusConfirmed, domain.BookingStatusPending).
		WillReturnRows(bookingRows(domain.BookingStatusConfirmed, nil))
	mock.ExpectExec(bumpTotalBookingsSQL).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Confirm(context.Background(), "b1", "p1")

	assert.ErrorIs(t, err, domain.ErrPerformerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Confirm_AlreadyMovedIsInvalidTransition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectBegin()
	mock.ExpectQuery(confirmSQL).
		WithArgs("b1", "p1", domain.BookingStatusConfirmed, domain.BookingStatusPending).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames))
	mock.ExpectQuery(bookingStatusSQL).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))
	mock.ExpectRollback()

	_, err := repo.Confirm(context.Background(), "b1", "p1")

	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "cancelled")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Confirm_UnknownBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectBegin()
	mock.ExpectQuery(confirmSQL).
		WithArgs("nope", "p1", domain.BookingStatusConfirmed, domain.BookingStatusPending).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames))
	mock.ExpectQuery(bookingStatusSQL).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.Confirm(context.Background(), "nope", "p1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Transition ---

func TestBookingRepository_Transition_ConditionalOnExpectedStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectQuery(transitionSQL).
		WithArgs("b1", domain.BookingStatusCancelled, pq.Array(domain.ActiveStatuses), nil).
		WillReturnRows(bookingRows(domain.BookingStatusCancelled, nil))

	b, err := repo.Transition(context.Background(), "b1", domain.ActiveStatuses, domain.BookingStatusCancelled, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Transition_PassesPerformerNotes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	notes := "Double booked that night"
	from := []domain.BookingStatus{domain.BookingStatusPending}
	mock.ExpectQuery(transitionSQL).
		WithArgs("b1", domain.BookingStatusCancelled, pq.Array(from), notes).
		WillReturnRows(bookingRows(domain.BookingStatusCancelled, &notes))

	b, err := repo.Transition(context.Background(), "b1", from, domain.BookingStatusCancelled, &notes)

	require.NoError(t, err)
	require.NotNil(t, b.PerformerNotes)
	assert.Equal(t, notes, *b.PerformerNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Transition_StatusMovedIsInvalidTransition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectQuery(transitionSQL).
		WithArgs("b1", domain.BookingStatusCancelled, pq.Array(domain.ActiveStatuses), nil).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames))
	mock.ExpectQuery(bookingStatusSQL).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("completed"))

	_, err := repo.Transition(context.Background(), "b1", domain.ActiveStatuses, domain.BookingStatusCancelled, nil)

	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "completed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Transition_UnknownBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectQuery(transitionSQL).
		WithArgs("nope", domain.BookingStatusCancelled, pq.Array(domain.ActiveStatuses), nil).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames))
	mock.ExpectQuery(bookingStatusSQL).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	_, err := repo.Transition(context.Background(), "nope", domain.ActiveStatuses, domain.BookingStatusCancelled, nil)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Transition_StatusLookupFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	mock.ExpectQuery(transitionSQL).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames))
	mock.ExpectQuery(bookingStatusSQL).
		WithArgs("b1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Transition(context.Background(), "b1", domain.ActiveStatuses, domain.BookingStatusCancelled, nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NotErrorIs(t, err, domain.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- CompleteFinished ---

func TestBookingRepository_CompleteFinished_FiltersOnEventEnd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	now := time.Date(2026, 4, 18, 23, 0, 0, 0, time.UTC)
	mock.ExpectQuery(completeFinishedSQL).
		WithArgs(domain.BookingStatusConfirmed, domain.BookingStatusCompleted, now).
		WillReturnRows(bookingRows(domain.BookingStatusCompleted, nil))

	done, err := repo.CompleteFinished(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "b1", done[0].ID)
	assert.Equal(t, domain.BookingStatusCompleted, done[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CompleteFinished_ConvertsNowToUTC(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, testStrategy)

	kolkata := time.FixedZone("IST", 5*60*60+30*60)
	local := time.Date(2026, 4, 19, 4, 30, 0, 0, kolkata)
	mock.ExpectQuery(completeFinishedSQL).
		WithArgs(domain.BookingStatusConfirmed, domain.BookingStatusCompleted, local.UTC()).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames))

	done, err := repo.CompleteFinished(context.Background(), local)

	require.NoError(t, err)
	assert.Empty(t, done)
	assert.NoError(t, mock.ExpectationsWereMet())
}
