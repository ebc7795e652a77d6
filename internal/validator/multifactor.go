package validator

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// MultiFactorValidatorAddress is the multi-factor validator contract.
// Unlike the single-factor kinds it is not caller-overridable.
const MultiFactorValidatorAddress = "0xf6bdf42c9be18ceca5c06c42a43daf7fbbe7896b"

// Kind names a nested validator variant inside a multi-factor config.
// The set is closed; anything else is rejected.
type Kind string

const (
	KindECDSA   Kind = "ecdsa"
	KindENS     Kind = "ens"
	KindPasskey Kind = "passkey"
)

// MultiFactorEntry is one nested validator config. Only the fields of
// the declared kind are consulted; a missing required field is an error.
type MultiFactorEntry struct {
	Type             Kind         `json:"type"`
	Threshold        *uint64      `json:"threshold,omitempty"`
	Owners           []string     `json:"owners,omitempty"`
	OwnerExpirations []uint64     `json:"ownerExpirations,omitempty"`
	Credentials      []Credential `json:"credentials,omitempty"`
	Address          string       `json:"address,omitempty"`
}

// MultiFactorInput configures the composite validator. Validators is a
// sparse list: nil entries are skipped, but the surviving entries keep
// their original index in the packed key.
type MultiFactorInput struct {
	Threshold  uint64              `json:"threshold"`
	Validators []*MultiFactorEntry `json:"validators"`
}

type validatorEntry struct {
	PackedValidatorAndId [32]byte
	Data                 []byte
}

// EncodeMultiFactor builds the install payload for the multi-factor
// validator: one raw threshold byte followed by the ABI encoding of the
// (bytes32 packedValidatorAndId, bytes data)[] entry list. Each entry's
// bytes32 key is the 12-byte big-endian entry index packed with the
// 20-byte inner validator address.
func EncodeMultiFactor(in MultiFactorInput) (Module, error) {
	var entries []validatorEntry

	for index, nested := range in.Validators {
		if nested == nil {
			continue
		}

		threshold := uint64(1)
		if nested.Threshold != nil {
			threshold = *nested.Threshold
		}

		var inner Module
		var err error
		switch nested.Type {
		case KindECDSA:
			if nested.Owners == nil {
				return Module{}, fmt.Errorf("ecdsa validator requires owners")
			}
			inner, err = EncodeOwnable(OwnableInput{
				Threshold: threshold,
				Owners:    nested.Owners,
				Address:   nested.Address,
			})
		case KindENS:
			if nested.Owners == nil {
				return Module{}, fmt.Errorf("ens validator requires owners")
			}
			if nested.OwnerExpirations == nil {
				return Module{}, fmt.Errorf("ens validator requires ownerExpirations")
			}
			inner, err = EncodeENS(ENSInput{
				Threshold:        threshold,
				Owners:           nested.Owners,
				OwnerExpirations: nested.OwnerExpirations,
				Address:          nested.Address,
			})
		case KindPasskey:
			if nested.Credentials == nil {
				return Module{}, fmt.Errorf("passkey validator requires credentials")
			}
			inner, err = EncodeWebAuthn(WebAuthnInput{
				Threshold:   threshold,
				Credentials: nested.Credentials,
				Address:     nested.Address,
			})
		default:
			return Module{}, fmt.Errorf("unknown validator type: %s", nested.Type)
		}
		if err != nil {
			return Module{}, err
		}

		innerAddr, err := parseAddress(inner.Address)
		if err != nil {
			return Module{}, fmt.Errorf("invalid validator address: %w", err)
		}

		var packed [32]byte
		binary.BigEndian.PutUint64(packed[4:12], uint64(index))
		copy(packed[12:], innerAddr[:])

		data, err := hexutil.Decode(inner.InitData)
		if err != nil {
			return Module{}, fmt.Errorf("decoding inner init data: %w", err)
		}

		entries = append(entries, validatorEntry{
			PackedValidatorAndId: packed,
			Data:                 data,
		})
	}

	encoded, err := multiFactorArgs.Pack(entries)
	if err != nil {
		return Module{}, fmt.Errorf("encoding multi-factor init data: %w", err)
	}

	// Packed layout: a single threshold byte ahead of the ABI blob, not
	// padded to a word.
	initData := make([]byte, 0, 1+len(encoded))
	initData = append(initData, byte(in.Threshold))
	initData = append(initData, encoded...)

	return newValidatorModule(MultiFactorValidatorAddress, hexutil.Encode(initData)), nil
}
