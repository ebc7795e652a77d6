package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pubKeyX = "0x580a9af0569ad3905b26a703201b358aa0904236642ebe79b22a19d00d373763"
	pubKeyY = "0x7d46f725a5427ae45a9569259bf67e1e16b187d7b3ad1ed70138c4f0409677d1"
)

func TestEncodeWebAuthn_SinglePasskey(t *testing.T) {
	module, err := EncodeWebAuthn(WebAuthnInput{
		Threshold:   1,
		Credentials: []Credential{{PubKeyX: pubKeyX, PubKeyY: pubKeyY}},
	})
	require.NoError(t, err)

	assert.Equal(t, WebAuthnValidatorAddress, module.Address)
	assert.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000040"+
			"0000000000000000000000000000000000000000000000000000000000000001"+
			"580a9af0569ad3905b26a703201b358aa0904236642ebe79b22a19d00d373763"+
			"7d46f725a5427ae45a9569259bf67e1e16b187d7b3ad1ed70138c4f0409677d1"+
			"0000000000000000000000000000000000000000000000000000000000000000",
		module.InitData)
}

func TestEncodeWebAuthn_OrderPreserved(t *testing.T) {
	// Unlike the owner validators, credential order is caller-significant.
	forward, err := EncodeWebAuthn(WebAuthnInput{
		Threshold: 1,
		Credentials: []Credential{
			{PubKeyX: pubKeyX, PubKeyY: pubKeyY},
			{PubKeyX: "0x1", PubKeyY: "0x2"},
		},
	})
	require.NoError(t, err)
	reversed, err := EncodeWebAuthn(WebAuthnInput{
		Threshold: 1,
		Credentials: []Credential{
			{PubKeyX: "0x1", PubKeyY: "0x2"},
			{PubKeyX: pubKeyX, PubKeyY: pubKeyY},
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, forward.InitData, reversed.InitData)
}

func TestEncodeWebAuthn_RequireUVForcedZero(t *testing.T) {
	module, err := EncodeWebAuthn(WebAuthnInput{
		Threshold:   1,
		Credentials: []Credential{{PubKeyX: "0x1", PubKeyY: "0x2"}},
	})
	require.NoError(t, err)
	// The final word of the single credential tuple is the requireUV flag.
	assert.True(t, strings.HasSuffix(module.InitData,
		"0000000000000000000000000000000000000000000000000000000000000000"))
}

func TestEncodeWebAuthn_DecimalCoordinates(t *testing.T) {
	fromHex, err := EncodeWebAuthn(WebAuthnInput{
		Threshold:   1,
		Credentials: []Credential{{PubKeyX: "0xff", PubKeyY: "0x10"}},
	})
	require.NoError(t, err)
	fromDecimal, err := EncodeWebAuthn(WebAuthnInput{
		Threshold:   1,
		Credentials: []Credential{{PubKeyX: "255", PubKeyY: "16"}},
	})
	require.NoError(t, err)
	assert.Equal(t, fromHex.InitData, fromDecimal.InitData)
}

func TestEncodeWebAuthn_InvalidCoordinate(t *testing.T) {
	_, err := EncodeWebAuthn(WebAuthnInput{
		Threshold:   1,
		Credentials: []Credential{{PubKeyX: "zzz", PubKeyY: "0x1"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pubKeyX")

	_, err = EncodeWebAuthn(WebAuthnInput{
		Threshold:   1,
		Credentials: []Credential{{PubKeyX: "0x1", PubKeyY: "zzz"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pubKeyY")
}

func TestEncodeWebAuthn_AddressOverride(t *testing.T) {
	module, err := EncodeWebAuthn(WebAuthnInput{
		Threshold:   1,
		Credentials: []Credential{{PubKeyX: "0x1", PubKeyY: "0x2"}},
		Address:     accountC,
	})
	require.NoError(t, err)
	assert.Equal(t, accountC, module.Address)
}
