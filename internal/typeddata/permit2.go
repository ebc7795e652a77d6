package typeddata

import (
	"fmt"
	"strconv"

	"github.com/adenhall/modenc/internal/tokenid"
)

// Permit2Address is the canonical Permit2 deployment, carried verbatim
// (mixed case) into the domain.
const Permit2Address = "0x000000000022D473030F116dDEE9F6B43aC78BA3"

// Permit2Input describes a single-element, permit-style intent.
type Permit2Input struct {
	Element Element `json:"element"`
	Nonce   string  `json:"nonce"`
	Expires string  `json:"expires"`
}

func permit2Types() Types {
	return Types{
		"TokenPermissions": {
			{Name: "token", Type: "address"},
			{Name: "amount", Type: "uint256"},
		},
		"Token": {
			{Name: "token", Type: "address"},
			{Name: "amount", Type: "uint256"},
		},
		"Target": {
			{Name: "recipient", Type: "address"},
			{Name: "tokenOut", Type: "Token[]"},
			{Name: "targetChain", Type: "uint256"},
			{Name: "fillExpiry", Type: "uint256"},
		},
		"Ops": {
			{Name: "to", Type: "address"},
			{Name: "value", Type: "uint256"},
			{Name: "data", Type: "bytes"},
		},
		"Op": {
			{Name: "vt", Type: "bytes32"},
			{Name: "ops", Type: "Ops[]"},
		},
		"Mandate": {
			{Name: "target", Type: "Target"},
			{Name: "minGas", Type: "uint128"},
			{Name: "originOps", Type: "Op"},
			{Name: "destOps", Type: "Op"},
			{Name: "q", Type: "bytes32"},
		},
		"PermitBatchWitnessTransferFrom": {
			{Name: "permitted", Type: "TokenPermissions[]"},
			{Name: "spender", Type: "address"},
			{Name: "nonce", Type: "uint256"},
			{Name: "deadline", Type: "uint256"},
			{Name: "mandate", Type: "Mandate"},
		},
	}
}

// BuildPermit2 assembles the PermitBatchWitnessTransferFrom typed-data
// document. Token extraction uses the 160-bit mask path throughout; no
// lock tag appears anywhere in this document.
func BuildPermit2(in Permit2Input) (Document, error) {
	element := in.Element

	chainID, err := strconv.ParseUint(element.ChainID, 10, 64)
	if err != nil {
		return Document{}, fmt.Errorf("invalid chainId: %w", err)
	}

	permitted := make([]map[string]any, len(element.IDsAndAmounts))
	for i, pair := range element.IDsAndAmounts {
		token, err := tokenid.Mask(pair[0])
		if err != nil {
			return Document{}, err
		}
		permitted[i] = map[string]any{
			"token":  token,
			"amount": pair[1],
		}
	}

	mandate, err := buildMandate(element.Mandate, tokenid.Mask)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Domain: Domain{
			Name:              "Permit2",
			ChainID:           chainID,
			VerifyingContract: Permit2Address,
		},
		Types:       permit2Types(),
		PrimaryType: "PermitBatchWitnessTransferFrom",
		Message: map[string]any{
			"permitted": permitted,
			"spender":   element.Arbiter,
			"nonce":     in.Nonce,
			"deadline":  in.Expires,
			"mandate":   mandate,
		},
	}, nil
}
