package postgres

import (
	"context"
	"errors"
	"fmt"

	"coin-launch-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const launchRecordColumns = `id, name, symbol, recipient, outcome, metadata_uri, inline_metadata,
		coin_address, tx_hash, error, client_ip, created_at`

// LaunchRecordRepo implements ports.LaunchRecordRepository.
type LaunchRecordRepo struct {
	pool Pool
}

// NewLaunchRecordRepo creates a new LaunchRecordRepo.
func NewLaunchRecordRepo(pool Pool) *LaunchRecordRepo {
	return &LaunchRecordRepo{pool: pool}
}

// Create inserts a launch record. Rows are append-only; identical launches
// are stored as separate rows.
func (r *LaunchRecordRepo) Create(ctx context.Context, rec *domain.LaunchRecord) error {
	query := `INSERT INTO launch_records (` + launchRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Name, rec.Symbol, rec.Recipient, string(rec.Outcome),
		rec.MetadataURI, rec.InlineMetadata, rec.CoinAddress, rec.TxHash,
		rec.Error, rec.ClientIP, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert launch record: %w", err)
	}
	return nil
}

// GetByID fetches a launch record by UUID. Returns nil, nil when absent.
func (r *LaunchRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LaunchRecord, error) {
	query := `SELECT ` + launchRecordColumns + ` FROM launch_records WHERE id = $1`

	rec, err := scanLaunchRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan launch record: %w", err)
	}
	return rec, nil
}

// ListRecent returns the newest records first.
func (r *LaunchRecordRepo) ListRecent(ctx context.Context, limit int) ([]domain.LaunchRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := `SELECT ` + launchRecordColumns + ` FROM launch_records ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list launch records: %w", err)
	}
	defer rows.Close()

	var out []domain.LaunchRecord
	for rows.Next() {
		rec, err := scanLaunchRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan launch record: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate launch records: %w", err)
	}
	return out, nil
}

func scanLaunchRecord(row pgx.Row) (*domain.LaunchRecord, error) {
	var (
		rec     domain.LaunchRecord
		outcome string
	)
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Symbol, &rec.Recipient, &outcome,
		&rec.MetadataURI, &rec.InlineMetadata, &rec.CoinAddress, &rec.TxHash,
		&rec.Error, &rec.ClientIP, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Outcome = domain.LaunchOutcome(outcome)
	return &rec, nil
}
