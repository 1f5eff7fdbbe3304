package handler_test

import (
	"context"
	"math/big"
	"sort"
	"sync"
	"sync/atomic"

	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// --- In-memory CoinCreator ---

// inMemoryCoinFactory deploys nothing; each call yields a fresh address and
// hash, the way a real factory does with a fresh salt.
type inMemoryCoinFactory struct {
	calls  atomic.Int64
	mu     sync.Mutex
	params []domain.CoinParams
}

func newInMemoryCoinFactory() *inMemoryCoinFactory {
	return &inMemoryCoinFactory{}
}

func (f *inMemoryCoinFactory) CreateCoin(_ context.Context, params domain.CoinParams, _ ports.CreateCoinOptions) (*domain.LaunchResult, error) {
	n := f.calls.Add(1)

	f.mu.Lock()
	f.params = append(f.params, params)
	f.mu.Unlock()

	addr := common.BigToAddress(big.NewInt(0xC0000 + n)).Hex()
	return &domain.LaunchResult{
		Address: addr,
		Hash:    common.BigToHash(big.NewInt(n)).Hex(),
		Deployment: domain.Deployment{
			Coin:             addr,
			PayoutRecipient:  params.PayoutRecipient.Hex(),
			PlatformReferrer: params.PlatformReferrer.Hex(),
			Currency:         params.Currency,
			URI:              params.URI,
			Name:             params.Name,
			Symbol:           params.Symbol,
			BlockNumber:      uint64(1000 + n),
		},
	}, nil
}

func (f *inMemoryCoinFactory) Calls() int64 {
	return f.calls.Load()
}

// --- In-memory LaunchRecordRepository ---

type inMemoryLaunchRecordRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*domain.LaunchRecord
}

func newInMemoryLaunchRecordRepo() *inMemoryLaunchRecordRepo {
	return &inMemoryLaunchRecordRepo{records: make(map[uuid.UUID]*domain.LaunchRecord)}
}

func (r *inMemoryLaunchRecordRepo) Create(_ context.Context, rec *domain.LaunchRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *inMemoryLaunchRecordRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.LaunchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *inMemoryLaunchRecordRepo) ListRecent(_ context.Context, limit int) ([]domain.LaunchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LaunchRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryLaunchRecordRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
