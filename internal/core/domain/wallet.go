package domain

import "github.com/ethereum/go-ethereum/common"

// WalletIdentity is the public side of the operator wallet.
type WalletIdentity struct {
	Address common.Address `json:"address"`
}

// String returns the checksummed address. Key material is never part of it.
func (w WalletIdentity) String() string {
	return w.Address.Hex()
}
