package service

import (
	"context"

	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/apperror"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// reportingService implements ports.ReportingService.
type reportingService struct {
	repo ports.LaunchRecordRepository
}

// NewReportingService creates a new reporting service.
// With a nil repo every read fails with REC_002.
func NewReportingService(repo ports.LaunchRecordRepository) ports.ReportingService {
	return &reportingService{repo: repo}
}

// ListLaunches returns the newest launch records first.
func (s *reportingService) ListLaunches(ctx context.Context, limit int) ([]domain.LaunchRecord, error) {
	if s.repo == nil {
		return nil, apperror.ErrRecordsUnavailable()
	}
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}

	recs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if recs == nil {
		recs = []domain.LaunchRecord{}
	}
	return recs, nil
}

// GetLaunch returns one launch record.
func (s *reportingService) GetLaunch(ctx context.Context, id uuid.UUID) (*domain.LaunchRecord, error) {
	if s.repo == nil {
		return nil, apperror.ErrRecordsUnavailable()
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if rec == nil {
		return nil, apperror.ErrNotFound("launch record")
	}
	return rec, nil
}
