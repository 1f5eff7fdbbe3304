package service

import (
	"context"
	"sync"
	"time"

	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

const auditPersistTimeout = 5 * time.Second

// AuditServiceImpl implements ports.AuditService.
type AuditServiceImpl struct {
	repo ports.LaunchRecordRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewAuditService creates a new audit service.
// If repo is nil, launch records are only written to the logger.
func NewAuditService(repo ports.LaunchRecordRepository, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo, log: log}
}

// Record writes a launch record asynchronously (fire-and-forget). The
// request context's values are kept but its cancellation is not.
func (s *AuditServiceImpl) Record(ctx context.Context, rec *domain.LaunchRecord) {
	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		event := s.log.Info().
			Str("record_id", rec.ID.String()).
			Str("outcome", string(rec.Outcome)).
			Str("symbol", rec.Symbol).
			Str("recipient", rec.Recipient).
			Bool("inline_metadata", rec.InlineMetadata).
			Str("ip", rec.ClientIP)
		if rec.CoinAddress != nil {
			event = event.Str("coin", *rec.CoinAddress)
		}
		if rec.Error != nil {
			event = event.Str("error", *rec.Error)
		}
		event.Msg("launch audit")

		if s.repo != nil {
			ctx, cancel := context.WithTimeout(ctx, auditPersistTimeout)
			defer cancel()
			if err := s.repo.Create(ctx, rec); err != nil {
				s.log.Warn().Err(err).Str("record_id", rec.ID.String()).Msg("failed to persist launch record")
			}
		}
	}()
}

// Wait blocks until every in-flight record has been written or ctx is done.
// Call it before closing the repository's connection pool.
func (s *AuditServiceImpl) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
