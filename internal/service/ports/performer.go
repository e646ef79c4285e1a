package ports

import (
	"context"

	"github.com/stpnv0/StageBooker/internal/domain"
)

type PerformerRepo interface {
	ListAvailable(ctx context.Context) ([]*domain.PerformerProfile, error)
	GetByID(ctx context.Context, id string) (*domain.PerformerProfile, error)
	// GetByUserID returns nil, nil when the user has no performer profile yet.
	GetByUserID(ctx context.Context, userID string) (*domain.PerformerProfile, error)
	Create(ctx context.Context, p *domain.PerformerProfile, categoryIDs []string) error
	Update(ctx context.Context, p *domain.PerformerProfile, categoryIDs []string) error
	StageNames(ctx context.Context, ids []string) (map[string]string, error)
}
