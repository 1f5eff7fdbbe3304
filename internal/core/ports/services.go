package ports

import (
	"context"
	"time"

	"coin-launch-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// MetadataUploader publishes an image and a metadata document to a remote host.
type MetadataUploader interface {
	// UploadImage stores the logo and returns its remote URI.
	UploadImage(ctx context.Context, logo *domain.LogoImage, creator string) (string, error)
	// UploadJSON stores the metadata document and returns its remote URI.
	UploadJSON(ctx context.Context, document []byte, creator string) (string, error)
}

// MetadataBuilder assembles token metadata and picks its URI.
type MetadataBuilder interface {
	Build(ctx context.Context, name, symbol, description string, logo *domain.LogoImage, creator string) (*domain.MetadataRecord, error)
}

// CoinCreator deploys a coin through the factory contract.
type CoinCreator interface {
	CreateCoin(ctx context.Context, params domain.CoinParams, opts CreateCoinOptions) (*domain.LaunchResult, error)
}

// CreateCoinOptions tunes a single deployment.
type CreateCoinOptions struct {
	GasMultiplier int // percent applied to the gas estimate, e.g. 120
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// --- Service Ports (Business Logic) ---

// LaunchService runs the launch pipeline for one request.
type LaunchService interface {
	Launch(ctx context.Context, req domain.LaunchRequest) (*LaunchOutcome, error)
}

// LaunchOutcome is either a deployed coin or, in skip-chain mode, only the metadata URI.
type LaunchOutcome struct {
	Result      *domain.LaunchResult
	MetadataURI string
	Skipped     bool
}

// AuditService records launch outcomes (fire-and-forget).
type AuditService interface {
	Record(ctx context.Context, record *domain.LaunchRecord)
}

// ReportingService reads back persisted launch records.
type ReportingService interface {
	ListLaunches(ctx context.Context, limit int) ([]domain.LaunchRecord, error)
	GetLaunch(ctx context.Context, id uuid.UUID) (*domain.LaunchRecord, error)
}
