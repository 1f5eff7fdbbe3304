package service

import (
	"context"
	"time"

	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/apperror"
	"coin-launch-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

// LaunchOptions are the per-deployment settings shared by every launch.
type LaunchOptions struct {
	SkipChain     bool
	ChainID       int64
	Currency      domain.DeployCurrency
	GasMultiplier int
}

// LaunchServiceImpl runs the launch pipeline: validate, check the wallet,
// build metadata, then deploy the coin. Each step returns early on failure.
// Nothing is retried and nothing is deduplicated.
type LaunchServiceImpl struct {
	wallet   *domain.WalletIdentity
	metadata ports.MetadataBuilder
	coins    ports.CoinCreator
	audit    ports.AuditService
	metrics  *metrics.Metrics
	opts     LaunchOptions
	log      zerolog.Logger
}

// NewLaunchService creates the orchestrator. A nil wallet means the operator
// key is not configured; every launch then fails before any downstream call.
func NewLaunchService(
	wallet *domain.WalletIdentity,
	metadata ports.MetadataBuilder,
	coins ports.CoinCreator,
	audit ports.AuditService,
	m *metrics.Metrics,
	opts LaunchOptions,
	log zerolog.Logger,
) *LaunchServiceImpl {
	return &LaunchServiceImpl{
		wallet:   wallet,
		metadata: metadata,
		coins:    coins,
		audit:    audit,
		metrics:  m,
		opts:     opts,
		log:      log,
	}
}

// Launch implements ports.LaunchService.
func (s *LaunchServiceImpl) Launch(ctx context.Context, req domain.LaunchRequest) (*ports.LaunchOutcome, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		s.metrics.RecordLaunch(metrics.OutcomeRejected, 0)
		return nil, err
	}

	if s.wallet == nil || (!s.opts.SkipChain && s.coins == nil) {
		s.log.Error().Msg("launch rejected: operator wallet not configured")
		s.metrics.RecordLaunch(metrics.OutcomeRejected, 0)
		return nil, apperror.ErrWalletNotConfigured()
	}

	s.log.Info().
		Str("name", req.Name).
		Str("symbol", req.Symbol).
		Str("recipient", req.Recipient).
		Str("supply", req.Supply).
		Int("logo_bytes", len(req.Logo.Data)).
		Str("logo_type", req.Logo.ContentType).
		Msg("launch requested")

	creator := s.wallet.Address.Hex()
	meta, err := s.metadata.Build(ctx, req.Name, req.Symbol, req.Description, req.Logo, creator)
	if err != nil {
		s.metrics.RecordLaunch(metrics.OutcomeRejected, 0)
		return nil, err
	}

	if s.opts.SkipChain {
		s.log.Warn().
			Str("symbol", req.Symbol).
			Bool("inline_metadata", meta.IsInline()).
			Msg("chain interaction skipped")

		rec := s.newRecord(&req, domain.LaunchOutcomeSkipped, meta)
		s.record(ctx, rec)
		s.metrics.RecordLaunch(metrics.OutcomeSkipped, time.Since(start))
		return &ports.LaunchOutcome{MetadataURI: meta.URI, Skipped: true}, nil
	}

	params := domain.CoinParams{
		Name:             meta.Name,
		Symbol:           meta.Symbol,
		URI:              meta.URI,
		PayoutRecipient:  req.RecipientAddress(),
		PlatformReferrer: s.wallet.Address,
		ChainID:          s.opts.ChainID,
		Currency:         s.opts.Currency,
	}

	result, err := s.coins.CreateCoin(ctx, params, ports.CreateCoinOptions{GasMultiplier: s.opts.GasMultiplier})
	if err != nil {
		s.log.Error().
			Err(err).
			Str("symbol", req.Symbol).
			Str("recipient", req.Recipient).
			Msg("coin creation failed")

		rec := s.newRecord(&req, domain.LaunchOutcomeFailed, meta)
		msg := err.Error()
		rec.Error = &msg
		s.record(ctx, rec)
		s.metrics.RecordLaunch(metrics.OutcomeFailed, time.Since(start))
		return nil, apperror.ErrLaunchFailed(err)
	}

	s.log.Info().
		Str("coin", result.Address).
		Str("tx_hash", result.Hash).
		Str("symbol", req.Symbol).
		Dur("elapsed", time.Since(start)).
		Msg("coin launched")

	rec := s.newRecord(&req, domain.LaunchOutcomeLaunched, meta)
	rec.CoinAddress = &result.Address
	rec.TxHash = &result.Hash
	s.record(ctx, rec)
	s.metrics.RecordLaunch(metrics.OutcomeLaunched, time.Since(start))

	return &ports.LaunchOutcome{Result: result, MetadataURI: meta.URI}, nil
}

func (s *LaunchServiceImpl) newRecord(req *domain.LaunchRequest, outcome domain.LaunchOutcome, meta *domain.MetadataRecord) *domain.LaunchRecord {
	rec := domain.NewLaunchRecord(req, outcome)
	rec.MetadataURI = meta.URI
	rec.InlineMetadata = meta.IsInline()
	return rec
}

func (s *LaunchServiceImpl) record(ctx context.Context, rec *domain.LaunchRecord) {
	if s.audit != nil {
		s.audit.Record(ctx, rec)
	}
}
