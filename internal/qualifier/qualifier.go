// Package qualifier binds an opaque qualifier payload to a signed intent
// by hashing it with Keccak-256.
package qualifier

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Hash decodes a hex payload (with or without 0x prefix) and returns the
// 0x-prefixed Keccak-256 digest of the raw bytes.
func Hash(rawHex string) (string, error) {
	stripped := strings.TrimPrefix(strings.TrimPrefix(rawHex, "0x"), "0X")
	data, err := hex.DecodeString(stripped)
	if err != nil {
		return "", fmt.Errorf("invalid qualifier hex: %w", err)
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return "0x" + hex.EncodeToString(h.Sum(nil)), nil
}
