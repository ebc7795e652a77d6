package typeddata

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ZeroAddress fills the gas-refund token slot of the legacy variant.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// SingleChainInput describes a single-chain executor intent without a
// gas refund.
type SingleChainInput struct {
	Account               string          `json:"account"`
	IntentExecutorAddress string          `json:"intentExecutorAddress"`
	DestinationChainID    string          `json:"destinationChainId"`
	DestinationOps        json.RawMessage `json:"destinationOps"`
	Nonce                 string          `json:"nonce"`
}

// GasRefundInput describes how the executor is reimbursed for gas.
type GasRefundInput struct {
	Token        string `json:"token"`
	ExchangeRate string `json:"exchangeRate"`
	Overhead     string `json:"overhead"`
}

// SingleChainGasRefundInput is the refund-carrying variant.
type SingleChainGasRefundInput struct {
	Account               string          `json:"account"`
	IntentExecutorAddress string          `json:"intentExecutorAddress"`
	DestinationChainID    string          `json:"destinationChainId"`
	DestinationOps        json.RawMessage `json:"destinationOps"`
	Nonce                 string          `json:"nonce"`
	GasRefund             GasRefundInput  `json:"gasRefund"`
}

func singleChainBaseTypes() Types {
	return Types{
		"Op": {
			{Name: "vt", Type: "bytes32"},
			{Name: "ops", Type: "Ops[]"},
		},
		"Ops": {
			{Name: "to", Type: "address"},
			{Name: "value", Type: "uint256"},
			{Name: "data", Type: "bytes"},
		},
		"SingleChainOps": {
			{Name: "account", Type: "address"},
			{Name: "nonce", Type: "uint256"},
			{Name: "op", Type: "Op"},
			{Name: "gasRefund", Type: "GasRefund"},
		},
	}
}

func singleChainDomain(chainID uint64, verifyingContract string) Domain {
	return Domain{
		Name:              "IntentExecutor",
		Version:           "v0.0.1",
		ChainID:           chainID,
		VerifyingContract: verifyingContract,
	}
}

// BuildSingleChain assembles the legacy SingleChainOps document: its
// GasRefund type has exactly two fields and the message carries a fixed
// zero-address, zero-rate refund record.
func BuildSingleChain(in SingleChainInput) (Document, error) {
	chainID, err := strconv.ParseUint(in.DestinationChainID, 10, 64)
	if err != nil {
		return Document{}, fmt.Errorf("invalid chainId: %w", err)
	}

	types := singleChainBaseTypes()
	types["GasRefund"] = []Field{
		{Name: "token", Type: "address"},
		{Name: "exchangeRate", Type: "uint256"},
	}

	return Document{
		Domain:      singleChainDomain(chainID, in.IntentExecutorAddress),
		Types:       types,
		PrimaryType: "SingleChainOps",
		Message: map[string]any{
			"account": in.Account,
			"nonce":   in.Nonce,
			"op":      in.DestinationOps,
			"gasRefund": map[string]any{
				"token":        ZeroAddress,
				"exchangeRate": "0",
			},
		},
	}, nil
}

// BuildSingleChainGasRefund assembles the refund-carrying SingleChainOps
// document: its GasRefund type has exactly three fields and the message
// carries the caller's refund descriptor.
func BuildSingleChainGasRefund(in SingleChainGasRefundInput) (Document, error) {
	chainID, err := strconv.ParseUint(in.DestinationChainID, 10, 64)
	if err != nil {
		return Document{}, fmt.Errorf("invalid chainId: %w", err)
	}

	types := singleChainBaseTypes()
	types["GasRefund"] = []Field{
		{Name: "token", Type: "address"},
		{Name: "exchangeRate", Type: "uint256"},
		{Name: "overhead", Type: "uint256"},
	}

	return Document{
		Domain:      singleChainDomain(chainID, in.IntentExecutorAddress),
		Types:       types,
		PrimaryType: "SingleChainOps",
		Message: map[string]any{
			"account": in.Account,
			"nonce":   in.Nonce,
			"op":      in.DestinationOps,
			"gasRefund": map[string]any{
				"token":        in.GasRefund.Token,
				"exchangeRate": in.GasRefund.ExchangeRate,
				"overhead":     in.GasRefund.Overhead,
			},
		},
	}, nil
}
