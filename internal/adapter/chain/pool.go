package chain

import (
	"fmt"
	"math/big"

	"coin-launch-gateway/config"
	"coin-launch-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// WETH on Base; used as the pool currency for ETH-paired coins.
var wethAddress = common.HexToAddress("0x4200000000000000000000000000000000000006")

// PoolConfig is the liquidity configuration passed to the factory as bytes.
type PoolConfig struct {
	Version                 uint8
	Currency                common.Address
	TickLower               []int32
	TickUpper               []int32
	NumDiscoveryPositions   []uint16
	MaxDiscoverySupplyShare []*big.Int
}

var poolConfigArgs = abi.Arguments{
	{Name: "version", Type: mustType("uint8")},
	{Name: "currency", Type: mustType("address")},
	{Name: "tickLower", Type: mustType("int24[]")},
	{Name: "tickUpper", Type: mustType("int24[]")},
	{Name: "numDiscoveryPositions", Type: mustType("uint16[]")},
	{Name: "maxDiscoverySupplyShare", Type: mustType("uint256[]")},
}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("abi type %s: %v", t, err))
	}
	return typ
}

// Uniswap v4 ticks are int24.
const (
	minTick = -(1 << 23)
	maxTick = 1<<23 - 1
)

// PoolConfigFromConfig builds the pool configuration for the given currency.
func PoolConfigFromConfig(cfg config.CoinConfig, currency domain.DeployCurrency) (PoolConfig, error) {
	n := len(cfg.TickLower)
	if n == 0 || len(cfg.TickUpper) != n || len(cfg.NumDiscoveryPositions) != n || len(cfg.MaxDiscoverySupplyShare) != n {
		return PoolConfig{}, fmt.Errorf("pool config: tick_lower, tick_upper, num_discovery_positions and max_discovery_supply_share must have the same non-zero length")
	}

	pc := PoolConfig{
		Version:                 cfg.PoolVersion,
		TickLower:               make([]int32, n),
		TickUpper:               make([]int32, n),
		NumDiscoveryPositions:   make([]uint16, n),
		MaxDiscoverySupplyShare: make([]*big.Int, n),
	}

	switch currency {
	case domain.CurrencyZORA:
		if !common.IsHexAddress(cfg.CurrencyAddress) {
			return PoolConfig{}, fmt.Errorf("pool config: invalid currency_address %q", cfg.CurrencyAddress)
		}
		pc.Currency = common.HexToAddress(cfg.CurrencyAddress)
	case domain.CurrencyETH:
		pc.Currency = wethAddress
	default:
		return PoolConfig{}, fmt.Errorf("pool config: unsupported currency %q", currency)
	}

	for i := 0; i < n; i++ {
		if cfg.TickLower[i] < minTick || cfg.TickLower[i] > maxTick {
			return PoolConfig{}, fmt.Errorf("pool config: tick_lower[%d] = %d outside int24 range", i, cfg.TickLower[i])
		}
		if cfg.TickUpper[i] < minTick || cfg.TickUpper[i] > maxTick {
			return PoolConfig{}, fmt.Errorf("pool config: tick_upper[%d] = %d outside int24 range", i, cfg.TickUpper[i])
		}
		if cfg.TickLower[i] >= cfg.TickUpper[i] {
			return PoolConfig{}, fmt.Errorf("pool config: tick_lower[%d] must be below tick_upper[%d]", i, i)
		}
		if cfg.NumDiscoveryPositions[i] <= 0 || cfg.NumDiscoveryPositions[i] > 0xffff {
			return PoolConfig{}, fmt.Errorf("pool config: num_discovery_positions[%d] out of range", i)
		}
		share, ok := new(big.Int).SetString(cfg.MaxDiscoverySupplyShare[i], 10)
		if !ok || share.Sign() < 0 {
			return PoolConfig{}, fmt.Errorf("pool config: max_discovery_supply_share[%d] is not a non-negative integer", i)
		}
		pc.TickLower[i] = int32(cfg.TickLower[i])
		pc.TickUpper[i] = int32(cfg.TickUpper[i])
		pc.NumDiscoveryPositions[i] = uint16(cfg.NumDiscoveryPositions[i])
		pc.MaxDiscoverySupplyShare[i] = share
	}
	return pc, nil
}

// Encode ABI-encodes the pool configuration.
func (p PoolConfig) Encode() ([]byte, error) {
	lower := make([]*big.Int, len(p.TickLower))
	upper := make([]*big.Int, len(p.TickUpper))
	for i := range p.TickLower {
		lower[i] = big.NewInt(int64(p.TickLower[i]))
	}
	for i := range p.TickUpper {
		upper[i] = big.NewInt(int64(p.TickUpper[i]))
	}
	return poolConfigArgs.Pack(p.Version, p.Currency, lower, upper, p.NumDiscoveryPositions, p.MaxDiscoverySupplyShare)
}
