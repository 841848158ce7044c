// Package cli holds the input plumbing shared by the braid commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// ReadInput loads diagram-bearing text for a command. path is a file path
// or "-" for stdin. When jsonPath is non-empty the input is treated as a
// JSON payload (a model API response, typically) and the string at that
// path is returned instead, e.g. "choices.0.message.content".
func ReadInput(path, jsonPath string) (string, error) {
	var data []byte
	var err error

	if path == "-" || path == "" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	text := string(data)
	if jsonPath == "" {
		return text, nil
	}

	if !gjson.Valid(text) {
		return "", fmt.Errorf("--json-path given but input is not valid JSON")
	}
	result := gjson.Get(text, jsonPath)
	if !result.Exists() {
		return "", fmt.Errorf("json path %q not found in input", jsonPath)
	}
	return result.String(), nil
}
