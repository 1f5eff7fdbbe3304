package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"coin-launch-gateway/config"
	"coin-launch-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

var (
	// ErrWalletNotConfigured is returned when no private key is configured.
	ErrWalletNotConfigured = errors.New("wallet not configured")
	// ErrInvalidPrivateKey is returned for a key that is not 32 bytes of hex.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// Backend is the subset of the RPC client used to read chain state and submit
// transactions. *ethclient.Client satisfies it.
type Backend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Wallet is the operator wallet: identity, read client and transaction signer.
// It is built once at startup and never mutated.
type Wallet struct {
	identity domain.WalletIdentity
	key      *ecdsa.PrivateKey
	chainID  *big.Int
	signer   types.Signer
	backend  Backend
	closer   func()
}

// Provision builds the operator wallet from configuration and dials the RPC
// endpoint. It returns ErrWalletNotConfigured when no key is set.
func Provision(ctx context.Context, walletCfg config.WalletConfig, chainCfg config.ChainConfig, log zerolog.Logger) (*Wallet, error) {
	key, err := ParsePrivateKey(walletCfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, chainCfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing rpc: %w", err)
	}

	w := newWallet(key, chainCfg.ChainID, client)
	w.closer = client.Close

	log.Info().
		Str("address", w.identity.String()).
		Int64("chain_id", chainCfg.ChainID).
		Str("rpc_host", rpcHost(chainCfg.RPCURL)).
		Msg("Operator wallet provisioned")

	return w, nil
}

// NewWallet builds a wallet over an existing backend.
func NewWallet(privateKey string, chainID int64, backend Backend) (*Wallet, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return newWallet(key, chainID, backend), nil
}

func newWallet(key *ecdsa.PrivateKey, chainID int64, backend Backend) *Wallet {
	id := big.NewInt(chainID)
	return &Wallet{
		identity: domain.WalletIdentity{Address: crypto.PubkeyToAddress(key.PublicKey)},
		key:      key,
		chainID:  id,
		signer:   types.LatestSignerForChainID(id),
		backend:  backend,
	}
}

// ParsePrivateKey accepts a hex key with or without the 0x prefix.
// Errors never include key material.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrWalletNotConfigured
	}
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		raw = "0x" + raw
	}
	key, err := crypto.HexToECDSA(raw[2:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// Identity returns the public identity of the wallet.
func (w *Wallet) Identity() domain.WalletIdentity {
	return w.identity
}

// Address returns the wallet address.
func (w *Wallet) Address() common.Address {
	return w.identity.Address
}

// ChainID returns the chain the signer is bound to.
func (w *Wallet) ChainID() *big.Int {
	return new(big.Int).Set(w.chainID)
}

// Backend returns the read client.
func (w *Wallet) Backend() Backend {
	return w.backend
}

// SignTx signs tx for the configured chain.
func (w *Wallet) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(tx, w.signer, w.key)
}

// String returns the address only.
func (w *Wallet) String() string {
	return w.identity.String()
}

// Close releases the RPC connection, if the wallet owns one.
func (w *Wallet) Close() {
	if w.closer != nil {
		w.closer()
	}
}

func rpcHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
