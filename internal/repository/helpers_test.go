package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// testStrategy runs each statement once with no sleep between attempts.
var testStrategy = retry.Strategy{Attempts: 1}

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &dbpg.DB{Master: db}, mock
}

var bookingColumnNames = []string{
	"id", "customer_id", "performer_id", "event_date", "event_time", "event_duration_hours",
	"event_type", "event_location", "event_city", "event_state", "total_amount", "status",
	"special_requirements", "customer_notes", "performer_notes", "created_at", "updated_at",
}

func bookingRows(status domain.BookingStatus, performerNotes *string) *sqlmock.Rows {
	var notes any
	if performerNotes != nil {
		notes = *performerNotes
	}
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumnNames).AddRow(
		"b1", "cust-1", "p1", time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC), "19:30", 2.5,
		"Wedding", "12 MG Road", "Bangalore", "Karnataka", 833.325, string(status),
		nil, nil, notes, ts, ts,
	)
}
