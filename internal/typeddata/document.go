// Package typeddata assembles EIP-712 typed-data documents for intent
// signing. Each builder is a pure function from one structured input to
// a self-describing document: domain, struct-type schema graph, primary
// type, and message tree.
//
// Every big integer in a message body is carried as a decimal string so
// consumers with 53-bit numerics never lose precision; the outer
// domain chainId is the one plain-integer exception.
package typeddata

import "encoding/json"

// Field is one entry of a struct-type definition. EIP-712 hashing is
// order-sensitive, so field lists are emitted verbatim and never
// reordered.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Types maps struct-type names to their ordered field lists.
type Types map[string][]Field

// Domain is the EIP-712 signing domain.
type Domain struct {
	Name              string `json:"name"`
	Version           string `json:"version,omitempty"`
	ChainID           uint64 `json:"chainId"`
	VerifyingContract string `json:"verifyingContract"`
}

// Document is the result of every typed-data builder.
type Document struct {
	Domain      Domain         `json:"domain"`
	Types       Types          `json:"types"`
	PrimaryType string         `json:"primaryType"`
	Message     map[string]any `json:"message"`
}

// IDAmount pairs a packed token ID with an amount, both as strings.
// JSON shape is a two-element array.
type IDAmount [2]string

// Mandate is the payout/operation description embedded in an intent.
// The two ops trees are pre-built by the caller and pass through
// untouched; the qualifier is raw hex that gets keccak-hashed into the
// message's q field.
type Mandate struct {
	Recipient           string          `json:"recipient"`
	TokenOut            []IDAmount      `json:"tokenOut"`
	DestinationChainID  string          `json:"destinationChainId"`
	FillDeadline        string          `json:"fillDeadline"`
	MinGas              string          `json:"minGas"`
	PreClaimOps         json.RawMessage `json:"preClaimOps"`
	DestinationOps      json.RawMessage `json:"destinationOps"`
	QualifierEncodedVal string          `json:"qualifierEncodedVal"`
}

// Element is one per-chain leg of an intent.
type Element struct {
	Arbiter       string     `json:"arbiter"`
	ChainID       string     `json:"chainId"`
	IDsAndAmounts []IDAmount `json:"idsAndAmounts"`
	Mandate       Mandate    `json:"mandate"`
}
