package validator

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/adenhall/modenc/internal/tokenid"
)

// WebAuthnValidatorAddress is the default credential validator contract.
const WebAuthnValidatorAddress = "0x0000000000578c4cb0e472a5462da43c495c3f33"

// Credential is one WebAuthn P-256 public key, given as a pair of
// 256-bit coordinates (decimal or 0x-hex strings).
type Credential struct {
	PubKeyX string `json:"pubKeyX"`
	PubKeyY string `json:"pubKeyY"`
}

// WebAuthnInput configures a threshold-of-credentials validator.
type WebAuthnInput struct {
	Threshold   uint64       `json:"threshold"`
	Credentials []Credential `json:"credentials"`
	Address     string       `json:"address,omitempty"`
}

type webAuthnCredential struct {
	PubKeyX   *big.Int
	PubKeyY   *big.Int
	RequireUV bool
}

// EncodeWebAuthn builds the install payload for the WebAuthn validator.
// Credential order is caller-significant and preserved; requireUV is
// always encoded as false.
func EncodeWebAuthn(in WebAuthnInput) (Module, error) {
	credentials := make([]webAuthnCredential, len(in.Credentials))
	for i, c := range in.Credentials {
		x, err := tokenid.Parse(c.PubKeyX)
		if err != nil {
			return Module{}, fmt.Errorf("invalid pubKeyX: %w", err)
		}
		y, err := tokenid.Parse(c.PubKeyY)
		if err != nil {
			return Module{}, fmt.Errorf("invalid pubKeyY: %w", err)
		}
		credentials[i] = webAuthnCredential{
			PubKeyX:   x.ToBig(),
			PubKeyY:   y.ToBig(),
			RequireUV: false,
		}
	}

	initData, err := webAuthnArgs.Pack(new(big.Int).SetUint64(in.Threshold), credentials)
	if err != nil {
		return Module{}, fmt.Errorf("encoding webauthn init data: %w", err)
	}

	address := in.Address
	if address == "" {
		address = WebAuthnValidatorAddress
	}
	return newValidatorModule(address, hexutil.Encode(initData)), nil
}
