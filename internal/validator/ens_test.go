package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeENS_SingleOwnerDefaultExpiration(t *testing.T) {
	module, err := EncodeENS(ENSInput{
		Threshold: 1,
		Owners:    []string{accountA},
	})
	require.NoError(t, err)

	assert.Equal(t, ENSValidatorAddress, module.Address)
	assert.Equal(t, "validator", module.Type)
	// (uint256 1, [(accountA, max-uint48)]) — static tuples inline.
	assert.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000040"+
			"0000000000000000000000000000000000000000000000000000000000000001"+
			"000000000000000000000000f6c02c78ded62973b43bfa523b247da099486936"+
			"0000000000000000000000000000000000000000000000000000ffffffffffff",
		module.InitData)
}

func TestEncodeENS_PairsSortedByAddressOnly(t *testing.T) {
	// accountA comes first in the input with the SMALLER expiration;
	// sorting must follow the address, dragging each expiration along.
	module, err := EncodeENS(ENSInput{
		Threshold:        1,
		Owners:           []string{accountA, accountB},
		OwnerExpirations: []uint64{100, 200},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000040"+
			"0000000000000000000000000000000000000000000000000000000000000002"+
			"0000000000000000000000006092086a3dc0020cd604a68fcf5d430007d51bb7"+
			"00000000000000000000000000000000000000000000000000000000000000c8"+
			"000000000000000000000000f6c02c78ded62973b43bfa523b247da099486936"+
			"0000000000000000000000000000000000000000000000000000000000000064",
		module.InitData)
}

func TestEncodeENS_MissingExpirationsDefault(t *testing.T) {
	module, err := EncodeENS(ENSInput{
		Threshold:        1,
		Owners:           []string{accountB, accountA},
		OwnerExpirations: []uint64{100},
	})
	require.NoError(t, err)
	// accountA (index 1) had no expiration: defaults to max uint48.
	assert.Contains(t, module.InitData,
		"000000000000000000000000f6c02c78ded62973b43bfa523b247da099486936"+
			"0000000000000000000000000000000000000000000000000000ffffffffffff")
}

func TestEncodeENS_OutOfRangeExpirationClamps(t *testing.T) {
	module, err := EncodeENS(ENSInput{
		Threshold:        1,
		Owners:           []string{accountA},
		OwnerExpirations: []uint64{1 << 50},
	})
	require.NoError(t, err)
	// Clamped to the 32-bit max, 0xffffffff.
	assert.Contains(t, module.InitData,
		"00000000000000000000000000000000000000000000000000000000ffffffff")
}

func TestEncodeENS_OrderInvariant(t *testing.T) {
	forward, err := EncodeENS(ENSInput{
		Threshold:        2,
		Owners:           []string{accountA, accountB},
		OwnerExpirations: []uint64{100, 200},
	})
	require.NoError(t, err)
	reversed, err := EncodeENS(ENSInput{
		Threshold:        2,
		Owners:           []string{accountB, accountA},
		OwnerExpirations: []uint64{200, 100},
	})
	require.NoError(t, err)
	assert.Equal(t, forward.InitData, reversed.InitData)
}

func TestEncodeENS_AddressOverride(t *testing.T) {
	module, err := EncodeENS(ENSInput{
		Threshold: 1,
		Owners:    []string{accountA},
		Address:   accountC,
	})
	require.NoError(t, err)
	assert.Equal(t, accountC, module.Address)
}

func TestEncodeENS_InvalidAddress(t *testing.T) {
	_, err := EncodeENS(ENSInput{Threshold: 1, Owners: []string{"nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid owner address")
}
