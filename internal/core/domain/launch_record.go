package domain

import (
	"time"

	"github.com/google/uuid"
)

// LaunchOutcome classifies a finished launch attempt.
type LaunchOutcome string

const (
	LaunchOutcomeLaunched LaunchOutcome = "LAUNCHED"
	LaunchOutcomeSkipped  LaunchOutcome = "SKIPPED"
	LaunchOutcomeFailed   LaunchOutcome = "FAILED"
)

// LaunchRecord is the audit row written for every launch that passed validation.
// Identical requests produce separate rows; nothing is deduplicated.
type LaunchRecord struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Symbol         string        `json:"symbol"`
	Recipient      string        `json:"recipient"`
	Outcome        LaunchOutcome `json:"outcome"`
	MetadataURI    string        `json:"metadata_uri"`
	InlineMetadata bool          `json:"inline_metadata"`
	CoinAddress    *string       `json:"coin_address,omitempty"`
	TxHash         *string       `json:"tx_hash,omitempty"`
	Error          *string       `json:"error,omitempty"`
	ClientIP       string        `json:"client_ip"`
	CreatedAt      time.Time     `json:"created_at"`
}

// NewLaunchRecord starts a record for req with a fresh ID.
func NewLaunchRecord(req *LaunchRequest, outcome LaunchOutcome) *LaunchRecord {
	return &LaunchRecord{
		ID:        uuid.New(),
		Name:      req.Name,
		Symbol:    req.Symbol,
		Recipient: req.Recipient,
		Outcome:   outcome,
		ClientIP:  req.ClientIP,
		CreatedAt: time.Now().UTC(),
	}
}
