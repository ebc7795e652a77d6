package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adenhall/modenc/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"threshold":1}`), 0o600))

	data, err := readInput([]string{path})
	require.NoError(t, err)
	assert.Equal(t, `{"threshold":1}`, string(data))
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := readInput([]string{filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input file")
}

func TestDecodeInput_ValidatorInput(t *testing.T) {
	var in validator.OwnableInput
	err := decodeInput([]byte(`{"threshold":2,"owners":["0xf6c02c78ded62973b43bfa523b247da099486936"]}`), &in)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), in.Threshold)
	assert.Len(t, in.Owners, 1)
}

func TestDecodeInput_Malformed(t *testing.T) {
	var in validator.OwnableInput
	err := decodeInput([]byte(`{"threshold":`), &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing input JSON")
}
