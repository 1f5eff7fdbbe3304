package dto

import (
	"mime/multipart"
	"time"

	"coin-launch-gateway/internal/core/domain"
)

// Response messages.
const (
	MsgLaunched     = "Token launched successfully on Zora!"
	MsgChainSkipped = "Metadata uploaded; chain interaction skipped due to SKIP_CHAIN=true"
	MsgRunning      = "Zora Launcher Backend is running"
)

// LaunchForm is the multipart body of POST /api/launch. Presence and format
// checks happen in domain.LaunchRequest.Validate so they run in a fixed order.
type LaunchForm struct {
	Name        string                `form:"name"`
	Symbol      string                `form:"symbol"`
	Description string                `form:"description"`
	Supply      string                `form:"supply"`
	Recipient   string                `form:"recipient"`
	Logo        *multipart.FileHeader `form:"logo"`
}

// LaunchResponse is the response body for a deployed coin.
type LaunchResponse struct {
	Address    string            `json:"address"`
	Hash       string            `json:"hash"`
	Deployment domain.Deployment `json:"deployment"`
	Message    string            `json:"message"`
}

// SkipChainResponse is returned when chain interaction is disabled.
type SkipChainResponse struct {
	MetadataURI string `json:"metadataUri"`
	Message     string `json:"message"`
}

// DependencyStatus reports one backing service.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /api/health. Status is always "ok";
// dependency trouble is only reported, never escalated.
type HealthResponse struct {
	Status           string                      `json:"status"`
	Message          string                      `json:"message"`
	WalletConfigured bool                        `json:"walletConfigured"`
	Address          string                      `json:"address,omitempty"`
	Dependencies     map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// NewLaunchResponse converts a launch result into the response body.
func NewLaunchResponse(r *domain.LaunchResult) LaunchResponse {
	return LaunchResponse{
		Address:    r.Address,
		Hash:       r.Hash,
		Deployment: r.Deployment,
		Message:    MsgLaunched,
	}
}

// LaunchRecordResponse is one audit row as returned by GET /api/launches.
type LaunchRecordResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	Recipient      string    `json:"recipient"`
	Outcome        string    `json:"outcome"`
	MetadataURI    string    `json:"metadataUri"`
	InlineMetadata bool      `json:"inlineMetadata"`
	CoinAddress    *string   `json:"coinAddress,omitempty"`
	TxHash         *string   `json:"txHash,omitempty"`
	Error          *string   `json:"error,omitempty"`
	ClientIP       string    `json:"clientIp"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LaunchRecordListResponse wraps the newest records, newest first.
type LaunchRecordListResponse struct {
	Items []LaunchRecordResponse `json:"items"`
	Count int                    `json:"count"`
	Limit int                    `json:"limit"`
}

// NewLaunchRecordResponse converts a stored record into its response body.
func NewLaunchRecordResponse(r *domain.LaunchRecord) LaunchRecordResponse {
	return LaunchRecordResponse{
		ID:             r.ID.String(),
		Name:           r.Name,
		Symbol:         r.Symbol,
		Recipient:      r.Recipient,
		Outcome:        string(r.Outcome),
		MetadataURI:    r.MetadataURI,
		InlineMetadata: r.InlineMetadata,
		CoinAddress:    r.CoinAddress,
		TxHash:         r.TxHash,
		Error:          r.Error,
		ClientIP:       r.ClientIP,
		CreatedAt:      r.CreatedAt,
	}
}
