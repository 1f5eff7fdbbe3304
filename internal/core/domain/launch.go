package domain

import (
	"strings"

	"coin-launch-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
)

// DeployCurrency is the pool currency a coin is paired with.
type DeployCurrency string

const (
	CurrencyZORA DeployCurrency = "ZORA"
	CurrencyETH  DeployCurrency = "ETH"
)

// LogoImage is the uploaded coin image.
type LogoImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IsImage reports whether the declared content type is an image/* type.
func (l *LogoImage) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(l.ContentType)), "image/")
}

// LaunchRequest is a validated-on-demand client request to launch a coin.
type LaunchRequest struct {
	Name        string
	Symbol      string
	Description string
	Supply      string // accepted and logged, never forwarded to the factory
	Recipient   string
	Logo        *LogoImage

	ClientIP string
}

// Validate checks required fields in a fixed order and returns the first violation.
func (r *LaunchRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Symbol) == "" ||
		strings.TrimSpace(r.Recipient) == "" {
		return apperror.ErrMissingFields()
	}
	if !IsRecipientAddress(r.Recipient) {
		return apperror.ErrInvalidRecipient()
	}
	if r.Logo == nil {
		return apperror.ErrMissingImage()
	}
	return nil
}

// RecipientAddress returns the parsed recipient. Call Validate first.
func (r *LaunchRequest) RecipientAddress() common.Address {
	return common.HexToAddress(strings.TrimSpace(r.Recipient))
}

// IsRecipientAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsRecipientAddress(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	return common.IsHexAddress(s)
}

// CoinParams is what the coin factory needs to deploy one coin.
type CoinParams struct {
	Name             string
	Symbol           string
	URI              string
	PayoutRecipient  common.Address
	PlatformReferrer common.Address
	ChainID          int64
	Currency         DeployCurrency
}

// Deployment describes a coin deployed by the factory.
type Deployment struct {
	Coin             string         `json:"coin"`
	Caller           string         `json:"caller"`
	PayoutRecipient  string         `json:"payoutRecipient"`
	PlatformReferrer string         `json:"platformReferrer"`
	Currency         DeployCurrency `json:"currency"`
	URI              string         `json:"uri"`
	Name             string         `json:"name"`
	Symbol           string         `json:"symbol"`
	BlockNumber      uint64         `json:"blockNumber"`
	GasUsed          uint64         `json:"gasUsed"`
	Salt             string         `json:"salt"`
}

// LaunchResult is the outcome of a successful coin deployment.
type LaunchResult struct {
	Address    string     `json:"address"`
	Hash       string     `json:"hash"`
	Deployment Deployment `json:"deployment"`
}
