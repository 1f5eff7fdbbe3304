package chain

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"coin-launch-gateway/config"
	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

const factoryABIJSON = `[{
	"type": "function",
	"name": "deploy",
	"stateMutability": "payable",
	"inputs": [
		{"name": "payoutRecipient", "type": "address"},
		{"name": "owners", "type": "address[]"},
		{"name": "uri", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "symbol", "type": "string"},
		{"name": "poolConfig", "type": "bytes"},
		{"name": "platformReferrer", "type": "address"},
		{"name": "postDeployHook", "type": "address"},
		{"name": "postDeployHookData", "type": "bytes"},
		{"name": "coinSalt", "type": "bytes32"}
	],
	"outputs": [
		{"name": "coin", "type": "address"},
		{"name": "postDeployHookDataOut", "type": "bytes"}
	]
}]`

var factoryABI = mustParseABI(factoryABIJSON)

// ErrTransactionReverted is returned when the deploy transaction is mined with a failed status.
var ErrTransactionReverted = errors.New("deploy transaction reverted")

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parsing factory abi: %v", err))
	}
	return parsed
}

const (
	defaultRPCTimeout     = 30 * time.Second
	defaultReceiptTimeout = 2 * time.Minute
)

// CoinFactory deploys coins through the factory contract using the operator wallet.
type CoinFactory struct {
	wallet         *Wallet
	factory        common.Address
	pools          map[domain.DeployCurrency][]byte
	rpcTimeout     time.Duration
	receiptTimeout time.Duration
	pollInterval   time.Duration
	log            zerolog.Logger
}

// NewCoinFactory creates the factory client. Pool configurations are encoded once.
func NewCoinFactory(wallet *Wallet, coinCfg config.CoinConfig, chainCfg config.ChainConfig, log zerolog.Logger) (*CoinFactory, error) {
	if wallet == nil {
		return nil, ErrWalletNotConfigured
	}
	if !common.IsHexAddress(coinCfg.FactoryAddress) {
		return nil, fmt.Errorf("invalid factory address %q", coinCfg.FactoryAddress)
	}

	pools := make(map[domain.DeployCurrency][]byte, 2)
	for _, cur := range []domain.DeployCurrency{domain.CurrencyZORA, domain.CurrencyETH} {
		pc, err := PoolConfigFromConfig(coinCfg, cur)
		if err != nil {
			return nil, err
		}
		encoded, err := pc.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding %s pool config: %w", cur, err)
		}
		pools[cur] = encoded
	}

	f := &CoinFactory{
		wallet:         wallet,
		factory:        common.HexToAddress(coinCfg.FactoryAddress),
		pools:          pools,
		rpcTimeout:     chainCfg.RPCTimeout,
		receiptTimeout: chainCfg.ReceiptTimeout,
		pollInterval:   chainCfg.PollInterval,
		log:            log,
	}
	if f.rpcTimeout <= 0 {
		f.rpcTimeout = defaultRPCTimeout
	}
	if f.receiptTimeout <= 0 {
		f.receiptTimeout = defaultReceiptTimeout
	}
	return f, nil
}

// CreateCoin simulates, signs, submits and waits for one deploy transaction.
// Every call uses a fresh salt, so identical params deploy distinct coins.
func (f *CoinFactory) CreateCoin(ctx context.Context, params domain.CoinParams, opts ports.CreateCoinOptions) (*domain.LaunchResult, error) {
	if params.ChainID != f.wallet.chainID.Int64() {
		return nil, fmt.Errorf("chain id %d does not match wallet chain %s", params.ChainID, f.wallet.chainID)
	}
	poolConfig, ok := f.pools[params.Currency]
	if !ok {
		return nil, fmt.Errorf("unsupported currency %q", params.Currency)
	}
	multiplier := opts.GasMultiplier
	if multiplier < 100 {
		multiplier = 100
	}

	var salt [32]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	data, err := factoryABI.Pack("deploy",
		params.PayoutRecipient,
		[]common.Address{params.PayoutRecipient},
		params.URI,
		params.Name,
		params.Symbol,
		poolConfig,
		params.PlatformReferrer,
		common.Address{},
		[]byte{},
		salt,
	)
	if err != nil {
		return nil, fmt.Errorf("packing deploy call: %w", err)
	}

	signed, coin, err := f.submit(ctx, data, multiplier)
	if err != nil {
		return nil, err
	}

	f.log.Info().
		Str("tx_hash", signed.Hash().Hex()).
		Str("coin", coin.Hex()).
		Uint64("gas_limit", signed.Gas()).
		Msg("Deploy transaction submitted")

	receiptCtx, cancel := context.WithTimeout(ctx, f.receiptTimeout)
	defer cancel()
	receipt, err := waitMined(receiptCtx, f.wallet.backend, signed.Hash(), f.pollInterval, f.log)
	if err != nil {
		return nil, fmt.Errorf("waiting for receipt of %s: %w", signed.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrTransactionReverted, signed.Hash().Hex())
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}

	return &domain.LaunchResult{
		Address: coin.Hex(),
		Hash:    signed.Hash().Hex(),
		Deployment: domain.Deployment{
			Coin:             coin.Hex(),
			Caller:           f.wallet.Address().Hex(),
			PayoutRecipient:  params.PayoutRecipient.Hex(),
			PlatformReferrer: params.PlatformReferrer.Hex(),
			Currency:         params.Currency,
			URI:              params.URI,
			Name:             params.Name,
			Symbol:           params.Symbol,
			BlockNumber:      block,
			GasUsed:          receipt.GasUsed,
			Salt:             hexutil.Encode(salt[:]),
		},
	}, nil
}

// submit runs the pre-flight RPC calls under the RPC timeout and sends the signed transaction.
func (f *CoinFactory) submit(ctx context.Context, data []byte, multiplier int) (*types.Transaction, common.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, f.rpcTimeout)
	defer cancel()

	backend := f.wallet.backend
	from := f.wallet.Address()
	msg := ethereum.CallMsg{From: from, To: &f.factory, Value: big.NewInt(0), Data: data}

	out, err := backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("simulating deploy: %w", err)
	}
	results, err := factoryABI.Unpack("deploy", out)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("decoding deploy simulation: %w", err)
	}
	if len(results) == 0 {
		return nil, common.Address{}, errors.New("decoding deploy simulation: no return values")
	}
	coin, ok := results[0].(common.Address)
	if !ok {
		return nil, common.Address{}, fmt.Errorf("decoding deploy simulation: unexpected %T", results[0])
	}

	gas, err := backend.EstimateGas(ctx, msg)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("estimating gas: %w", err)
	}
	gasLimit := gas * uint64(multiplier) / 100

	nonce, err := backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("fetching nonce: %w", err)
	}
	tip, err := backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("suggesting gas tip: %w", err)
	}
	head, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("fetching head: %w", err)
	}
	if head.BaseFee == nil {
		return nil, common.Address{}, errors.New("chain does not report a base fee")
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   f.wallet.ChainID(),
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &f.factory,
		Value:     big.NewInt(0),
		Data:      data,
	})
	signed, err := f.wallet.SignTx(tx)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("signing deploy transaction: %w", err)
	}

	f.log.Debug().
		Uint64("nonce", nonce).
		Uint64("gas_estimate", gas).
		Str("signature", logger.Preview(signatureHex(signed), 12)).
		Msg("Deploy transaction signed")

	if err := backend.SendTransaction(ctx, signed); err != nil {
		return nil, common.Address{}, fmt.Errorf("sending deploy transaction: %w", err)
	}
	return signed, coin, nil
}

// waitMined polls for the receipt until it is available or ctx is done.
// Lookup errors other than ethereum.NotFound are logged and retried.
func waitMined(ctx context.Context, b Backend, hash common.Hash, interval time.Duration, log zerolog.Logger) (*types.Receipt, error) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		receipt, err := b.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			log.Debug().Err(err).Str("tx_hash", hash.Hex()).Msg("receipt lookup failed, retrying")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func signatureHex(tx *types.Transaction) string {
	_, r, s := tx.RawSignatureValues()
	if r == nil || s == nil {
		return ""
	}
	return hexutil.EncodeBig(r) + hexutil.EncodeBig(s)[2:]
}
