package validator

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// mustType builds an ABI type at init time. The definitions below are
// fixed, so a failure is a programming error.
func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(fmt.Sprintf("abi type %s: %v", t, err))
	}
	return typ
}

var (
	uint256Type      = mustType("uint256", nil)
	addressArrayType = mustType("address[]", nil)

	ownerTupleArrayType = mustType("tuple[]", []abi.ArgumentMarshaling{
		{Name: "addr", Type: "address"},
		{Name: "expiration", Type: "uint48"},
	})

	credentialTupleArrayType = mustType("tuple[]", []abi.ArgumentMarshaling{
		{Name: "pubKeyX", Type: "uint256"},
		{Name: "pubKeyY", Type: "uint256"},
		{Name: "requireUV", Type: "bool"},
	})

	validatorEntryArrayType = mustType("tuple[]", []abi.ArgumentMarshaling{
		{Name: "packedValidatorAndId", Type: "bytes32"},
		{Name: "data", Type: "bytes"},
	})
)

var (
	// (uint256 threshold, address[] owners)
	ownableArgs = abi.Arguments{{Type: uint256Type}, {Type: addressArrayType}}

	// (uint256 threshold, (address,uint48)[] owners)
	ensArgs = abi.Arguments{{Type: uint256Type}, {Type: ownerTupleArrayType}}

	// (uint256 threshold, (uint256,uint256,bool)[] credentials)
	webAuthnArgs = abi.Arguments{{Type: uint256Type}, {Type: credentialTupleArrayType}}

	// ((bytes32,bytes)[] entries) — threshold is prepended as a raw byte.
	multiFactorArgs = abi.Arguments{{Type: validatorEntryArrayType}}
)

// parseAddress parses a 20-byte hex address. Only syntax is checked; no
// checksum validation.
func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}
