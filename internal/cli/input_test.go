package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadInput_File(t *testing.T) {
	path := writeTemp(t, "flowchart TD\n  A --> B\n")

	got, err := ReadInput(path, "")
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if got != "flowchart TD\n  A --> B\n" {
		t.Errorf("ReadInput() = %q", got)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	if _, err := ReadInput(filepath.Join(t.TempDir(), "absent.txt"), ""); err == nil {
		t.Error("ReadInput() succeeded on a missing file")
	}
}

func TestReadInput_JSONPath(t *testing.T) {
	payload := `{"choices":[{"message":{"content":"flowchart TD\n  A --> B"}}]}`
	path := writeTemp(t, payload)

	got, err := ReadInput(path, "choices.0.message.content")
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if got != "flowchart TD\n  A --> B" {
		t.Errorf("ReadInput() = %q", got)
	}
}

func TestReadInput_JSONPathNotFound(t *testing.T) {
	path := writeTemp(t, `{"result": "ok"}`)

	if _, err := ReadInput(path, "choices.0.text"); err == nil {
		t.Error("ReadInput() succeeded on an absent json path")
	}
}

func TestReadInput_JSONPathInvalidJSON(t *testing.T) {
	path := writeTemp(t, "not json at all")

	if _, err := ReadInput(path, "a.b"); err == nil {
		t.Error("ReadInput() accepted malformed JSON")
	}
}
