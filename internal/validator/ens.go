package validator

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ENSValidatorAddress is the default expiring-owner validator contract.
const ENSValidatorAddress = "0xdc38f07b060374b6480c4bf06231e7d10955bca4"

// maxUint48 is the default expiration when none is supplied for an owner.
const maxUint48 = (uint64(1) << 48) - 1

// ENSInput configures a threshold-of-owners validator where each owner
// carries an expiration timestamp.
type ENSInput struct {
	Threshold        uint64   `json:"threshold"`
	Owners           []string `json:"owners"`
	OwnerExpirations []uint64 `json:"ownerExpirations"`
	Address          string   `json:"address,omitempty"`
}

type ensOwner struct {
	Addr       common.Address
	Expiration *big.Int
}

// EncodeENS builds the install payload for the expiring-owner validator.
// (owner, expiration) pairs are sorted by address bytes only; the
// expiration never participates in the ordering.
func EncodeENS(in ENSInput) (Module, error) {
	owners := make([]ensOwner, len(in.Owners))
	for i, o := range in.Owners {
		addr, err := parseAddress(o)
		if err != nil {
			return Module{}, fmt.Errorf("invalid owner address: %w", err)
		}
		expiration := maxUint48
		if i < len(in.OwnerExpirations) {
			expiration = in.OwnerExpirations[i]
		}
		if expiration > maxUint48 {
			// Out-of-range expirations clamp to the 32-bit max.
			expiration = math.MaxUint32
		}
		owners[i] = ensOwner{Addr: addr, Expiration: new(big.Int).SetUint64(expiration)}
	}

	slices.SortStableFunc(owners, func(a, b ensOwner) int {
		return bytes.Compare(a.Addr[:], b.Addr[:])
	})

	initData, err := ensArgs.Pack(new(big.Int).SetUint64(in.Threshold), owners)
	if err != nil {
		return Module{}, fmt.Errorf("encoding ens init data: %w", err)
	}

	address := in.Address
	if address == "" {
		address = ENSValidatorAddress
	}
	return newValidatorModule(address, hexutil.Encode(initData)), nil
}
