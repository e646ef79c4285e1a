package ports

import (
	"context"

	"github.com/stpnv0/StageBooker/internal/domain"
)

type ProfileRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}
