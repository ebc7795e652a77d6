package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// readInput returns the JSON input document for a command: the first
// positional argument is a file path, "-" or no argument means stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return data, nil
}

// decodeInput unmarshals a JSON input document into in.
func decodeInput(data []byte, in any) error {
	if err := json.Unmarshal(data, in); err != nil {
		return fmt.Errorf("parsing input JSON: %w", err)
	}
	return nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
