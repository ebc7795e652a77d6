package validator

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(data []byte, i int) []byte {
	return data[i*32 : (i+1)*32]
}

func TestEncodeMultiFactor_SingleEntryLayout(t *testing.T) {
	module, err := EncodeMultiFactor(MultiFactorInput{
		Threshold: 2,
		Validators: []*MultiFactorEntry{
			{Type: KindECDSA, Owners: []string{accountA}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, MultiFactorValidatorAddress, module.Address)

	raw, err := hexutil.Decode(module.InitData)
	require.NoError(t, err)

	// One raw threshold byte, not padded to a word.
	assert.Equal(t, byte(2), raw[0])
	encoded := raw[1:]
	require.Zero(t, len(encoded)%32)

	// Head: offset 0x20, array length 1, element offset 0x20.
	assert.Equal(t, byte(0x20), word(encoded, 0)[31])
	assert.Equal(t, byte(1), word(encoded, 1)[31])
	assert.Equal(t, byte(0x20), word(encoded, 2)[31])

	// Element key: 12-byte big-endian index 0, then the inner address.
	inner, err := EncodeOwnable(OwnableInput{Threshold: 1, Owners: []string{accountA}})
	require.NoError(t, err)
	expectedKey := "0x000000000000000000000000" + OwnableValidatorAddress[2:]
	assert.Equal(t, expectedKey, hexutil.Encode(word(encoded, 3)))

	// Element data: the raw bytes of the inner validator's init data.
	innerBytes, err := hexutil.Decode(inner.InitData)
	require.NoError(t, err)
	assert.Equal(t, int64(len(innerBytes)), int64(word(encoded, 5)[31]))
	assert.Equal(t, innerBytes, encoded[6*32:6*32+len(innerBytes)])
}

func TestEncodeMultiFactor_NilEntryKeepsIndex(t *testing.T) {
	module, err := EncodeMultiFactor(MultiFactorInput{
		Threshold: 1,
		Validators: []*MultiFactorEntry{
			nil,
			{Type: KindECDSA, Owners: []string{accountA}},
		},
	})
	require.NoError(t, err)

	raw, err := hexutil.Decode(module.InitData)
	require.NoError(t, err)
	encoded := raw[1:]

	// Exactly one entry survives...
	assert.Equal(t, byte(1), word(encoded, 1)[31])
	// ...but it keeps index 1 in its packed key.
	expectedKey := "0x000000000000000000000001" + OwnableValidatorAddress[2:]
	assert.Equal(t, expectedKey, hexutil.Encode(word(encoded, 3)))
}

func TestEncodeMultiFactor_NestedKinds(t *testing.T) {
	module, err := EncodeMultiFactor(MultiFactorInput{
		Threshold: 3,
		Validators: []*MultiFactorEntry{
			{Type: KindECDSA, Owners: []string{accountA}},
			{Type: KindENS, Owners: []string{accountB}, OwnerExpirations: []uint64{100}},
			{Type: KindPasskey, Credentials: []Credential{{PubKeyX: "0x1", PubKeyY: "0x2"}}},
		},
	})
	require.NoError(t, err)

	raw, err := hexutil.Decode(module.InitData)
	require.NoError(t, err)
	assert.Equal(t, byte(3), raw[0])
	assert.Equal(t, byte(3), word(raw[1:], 1)[31])
}

func TestEncodeMultiFactor_NestedThresholdDefaultsToOne(t *testing.T) {
	implicit, err := EncodeMultiFactor(MultiFactorInput{
		Threshold: 1,
		Validators: []*MultiFactorEntry{
			{Type: KindECDSA, Owners: []string{accountA}},
		},
	})
	require.NoError(t, err)

	one := uint64(1)
	explicit, err := EncodeMultiFactor(MultiFactorInput{
		Threshold: 1,
		Validators: []*MultiFactorEntry{
			{Type: KindECDSA, Threshold: &one, Owners: []string{accountA}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, explicit.InitData, implicit.InitData)
}

func TestEncodeMultiFactor_UnknownKind(t *testing.T) {
	_, err := EncodeMultiFactor(MultiFactorInput{
		Threshold: 1,
		Validators: []*MultiFactorEntry{
			{Type: "totp", Owners: []string{accountA}},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown validator type: totp")
}

func TestEncodeMultiFactor_MissingRequiredFields(t *testing.T) {
	_, err := EncodeMultiFactor(MultiFactorInput{
		Threshold:  1,
		Validators: []*MultiFactorEntry{{Type: KindECDSA}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ecdsa validator requires owners")

	_, err = EncodeMultiFactor(MultiFactorInput{
		Threshold:  1,
		Validators: []*MultiFactorEntry{{Type: KindENS, Owners: []string{accountA}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ens validator requires ownerExpirations")

	_, err = EncodeMultiFactor(MultiFactorInput{
		Threshold:  1,
		Validators: []*MultiFactorEntry{{Type: KindPasskey}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passkey validator requires credentials")
}

func TestEncodeMultiFactor_EmptyList(t *testing.T) {
	module, err := EncodeMultiFactor(MultiFactorInput{Threshold: 0})
	require.NoError(t, err)

	raw, err := hexutil.Decode(module.InitData)
	require.NoError(t, err)
	// Threshold byte + offset word + zero-length word.
	assert.Equal(t, 1+64, len(raw))
	assert.Equal(t, byte(0), raw[0])
}

func TestEncodeMultiFactor_Deterministic(t *testing.T) {
	in := MultiFactorInput{
		Threshold: 2,
		Validators: []*MultiFactorEntry{
			{Type: KindECDSA, Owners: []string{accountA, accountB}},
			nil,
			{Type: KindPasskey, Credentials: []Credential{{PubKeyX: pubKeyX, PubKeyY: pubKeyY}}},
		},
	}
	first, err := EncodeMultiFactor(in)
	require.NoError(t, err)
	second, err := EncodeMultiFactor(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
