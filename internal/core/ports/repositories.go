package ports

import (
	"context"

	"coin-launch-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// LaunchRecordRepository defines persistence operations for launch audit rows.
type LaunchRecordRepository interface {
	Create(ctx context.Context, record *domain.LaunchRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LaunchRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.LaunchRecord, error)
}
