// Package tokenid decomposes packed 256-bit token identifiers.
//
// A packed ID carries a 12-byte lock tag in its high bits and a 20-byte
// token address in its low bits. Both decomposition paths (byte truncation
// and 160-bit masking) are exposed as separate operations and must agree
// for every input.
package tokenid

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// addressMask is (1 << 160) - 1, the low 20 bytes of a word.
var addressMask = new(uint256.Int).SubUint64(
	new(uint256.Int).Lsh(uint256.NewInt(1), 160), 1)

// Parse reads a non-negative integer from a decimal or 0x-prefixed
// hexadecimal string. Values that need more than 256 bits are rejected.
func Parse(s string) (*uint256.Int, error) {
	body, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		body, base = s[2:], 16
	}
	n, ok := new(big.Int).SetString(body, base)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("malformed unsigned integer %q", s)
	}
	id, overflow := uint256.FromBig(n)
	if overflow {
		return nil, fmt.Errorf("value %q exceeds 256 bits", s)
	}
	return id, nil
}

// Split serializes the ID to 32 big-endian bytes and returns the first 12
// as the lock tag and the last 20 as the token address, both hex-encoded.
func Split(id string) (lockTag, token string, err error) {
	n, err := Parse(id)
	if err != nil {
		return "", "", fmt.Errorf("invalid token id: %w", err)
	}
	b := n.Bytes32()
	return hexutil.Encode(b[:12]), hexutil.Encode(b[12:]), nil
}

// ExtractAddress returns just the token address (last 20 bytes) of the ID.
func ExtractAddress(id string) (string, error) {
	n, err := Parse(id)
	if err != nil {
		return "", fmt.Errorf("invalid token id: %w", err)
	}
	b := n.Bytes32()
	return hexutil.Encode(b[12:]), nil
}

// Mask returns the token address via a 160-bit mask instead of truncation.
// Must agree with ExtractAddress for every valid input.
func Mask(id string) (string, error) {
	n, err := Parse(id)
	if err != nil {
		return "", fmt.Errorf("invalid token id: %w", err)
	}
	masked := new(uint256.Int).And(n, addressMask)
	b := masked.Bytes32()
	return hexutil.Encode(b[12:]), nil
}
