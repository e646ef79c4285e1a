package ports

import (
	"context"

	"github.com/stpnv0/StageBooker/internal/domain"
)

type CategoryRepo interface {
	List(ctx context.Context) ([]*domain.Category, error)
	NamesByPerformers(ctx context.Context, performerIDs []string) (map[string][]string, error)
}
