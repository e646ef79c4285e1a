package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NewStrategy builds the retry strategy shared by the repositories.
// One attempt means every failure goes straight back to the caller.
func NewStrategy(attempts int) retry.Strategy {
	if attempts < 1 {
		attempts = 1
	}
	return retry.Strategy{
		Attempts: attempts,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}
