package typeddata

import (
	"fmt"
	"strconv"

	"github.com/adenhall/modenc/internal/qualifier"
	"github.com/adenhall/modenc/internal/tokenid"
)

// CompactVerifyingContract is the fixed Compact domain contract.
const CompactVerifyingContract = "0x73d2dc0c21fca4ec1601895d50df7f5624f07d3f"

// CompactInput describes a multichain intent: one sponsor signing over
// an ordered list of per-chain elements.
type CompactInput struct {
	Sponsor  string    `json:"sponsor"`
	Nonce    string    `json:"nonce"`
	Expires  string    `json:"expires"`
	Elements []Element `json:"elements"`
}

func compactTypes() Types {
	return Types{
		"MultichainCompact": {
			{Name: "sponsor", Type: "address"},
			{Name: "nonce", Type: "uint256"},
			{Name: "expires", Type: "uint256"},
			{Name: "elements", Type: "Element[]"},
		},
		"Element": {
			{Name: "arbiter", Type: "address"},
			{Name: "chainId", Type: "uint256"},
			{Name: "commitments", Type: "Lock[]"},
			{Name: "mandate", Type: "Mandate"},
		},
		"Lock": {
			{Name: "lockTag", Type: "bytes12"},
			{Name: "token", Type: "address"},
			{Name: "amount", Type: "uint256"},
		},
		"Mandate": {
			{Name: "target", Type: "Target"},
			{Name: "minGas", Type: "uint128"},
			{Name: "originOps", Type: "Op"},
			{Name: "destOps", Type: "Op"},
			{Name: "q", Type: "bytes32"},
		},
		"Target": {
			{Name: "recipient", Type: "address"},
			{Name: "tokenOut", Type: "Token[]"},
			{Name: "targetChain", Type: "uint256"},
			{Name: "fillExpiry", Type: "uint256"},
		},
		"Token": {
			{Name: "token", Type: "address"},
			{Name: "amount", Type: "uint256"},
		},
		"Op": {
			{Name: "vt", Type: "bytes32"},
			{Name: "ops", Type: "Ops[]"},
		},
		"Ops": {
			{Name: "to", Type: "address"},
			{Name: "value", Type: "uint256"},
			{Name: "data", Type: "bytes"},
		},
	}
}

// buildMandate assembles the shared mandate message tree used by the
// Compact and Permit2 builders. extract maps a packed token ID to the
// token address string for the tokenOut list.
func buildMandate(m Mandate, extract func(string) (string, error)) (map[string]any, error) {
	tokenOut := make([]map[string]any, len(m.TokenOut))
	for i, pair := range m.TokenOut {
		token, err := extract(pair[0])
		if err != nil {
			return nil, err
		}
		tokenOut[i] = map[string]any{
			"token":  token,
			"amount": pair[1],
		}
	}

	q, err := qualifier.Hash(m.QualifierEncodedVal)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"target": map[string]any{
			"recipient":   m.Recipient,
			"tokenOut":    tokenOut,
			"targetChain": m.DestinationChainID,
			"fillExpiry":  m.FillDeadline,
		},
		"minGas":    m.MinGas,
		"originOps": m.PreClaimOps,
		"destOps":   m.DestinationOps,
		"q":         q,
	}, nil
}

// BuildCompact assembles the MultichainCompact typed-data document.
// The signing domain's chainId comes from the first element alone; each
// element's own chainId lives in the message body.
func BuildCompact(in CompactInput) (Document, error) {
	if len(in.Elements) == 0 {
		return Document{}, fmt.Errorf("elements must not be empty")
	}

	chainID, err := strconv.ParseUint(in.Elements[0].ChainID, 10, 64)
	if err != nil {
		return Document{}, fmt.Errorf("invalid chainId: %w", err)
	}

	elements := make([]map[string]any, len(in.Elements))
	for i, element := range in.Elements {
		commitments := make([]map[string]any, len(element.IDsAndAmounts))
		for j, pair := range element.IDsAndAmounts {
			lockTag, token, err := tokenid.Split(pair[0])
			if err != nil {
				return Document{}, err
			}
			commitments[j] = map[string]any{
				"lockTag": lockTag,
				"token":   token,
				"amount":  pair[1],
			}
		}

		mandate, err := buildMandate(element.Mandate, tokenid.ExtractAddress)
		if err != nil {
			return Document{}, err
		}

		elements[i] = map[string]any{
			"arbiter":     element.Arbiter,
			"chainId":     element.ChainID,
			"commitments": commitments,
			"mandate":     mandate,
		}
	}

	return Document{
		Domain: Domain{
			Name:              "The Compact",
			Version:           "1",
			ChainID:           chainID,
			VerifyingContract: CompactVerifyingContract,
		},
		Types:       compactTypes(),
		PrimaryType: "MultichainCompact",
		Message: map[string]any{
			"sponsor":  in.Sponsor,
			"nonce":    in.Nonce,
			"expires":  in.Expires,
			"elements": elements,
		},
	}, nil
}
