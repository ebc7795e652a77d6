package validator

import (
	"bytes"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// OwnableValidatorAddress is the default ownable validator contract.
const OwnableValidatorAddress = "0x000000000013fdb5234e4e3162a810f54d9f7e98"

// OwnableInput configures a threshold-of-owners validator.
type OwnableInput struct {
	Threshold uint64   `json:"threshold"`
	Owners    []string `json:"owners"`
	Address   string   `json:"address,omitempty"`
}

// EncodeOwnable builds the install payload for the ownable validator.
// Owners are sorted ascending by raw address bytes before encoding; the
// on-chain verifier assumes exactly this order. Duplicates are kept.
func EncodeOwnable(in OwnableInput) (Module, error) {
	owners := make([]common.Address, len(in.Owners))
	for i, o := range in.Owners {
		addr, err := parseAddress(o)
		if err != nil {
			return Module{}, fmt.Errorf("invalid owner address: %w", err)
		}
		owners[i] = addr
	}

	slices.SortStableFunc(owners, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})

	initData, err := ownableArgs.Pack(new(big.Int).SetUint64(in.Threshold), owners)
	if err != nil {
		return Module{}, fmt.Errorf("encoding ownable init data: %w", err)
	}

	address := in.Address
	if address == "" {
		address = OwnableValidatorAddress
	}
	return newValidatorModule(address, hexutil.Encode(initData)), nil
}
