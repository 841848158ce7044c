package extract

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Meta is the decoded frontmatter header of a GRD document.
// It uses "mapstructure" tags to match standard frontmatter keys.
type Meta struct {
	Title       string         `json:"title" mapstructure:"title"`
	Description string         `json:"description" mapstructure:"description"`
	Tags        []string       `json:"tags" mapstructure:"tags"`
	Extra       map[string]any `json:"extra" mapstructure:",remain"`
}

// Document is a markdown GRD document split into its parts: optional YAML
// frontmatter metadata, the diagram source, and the prose around it.
type Document struct {
	Meta   Meta
	Source string // the extracted diagram source
	Body   string // the document without its frontmatter block
}

// ParseDocument splits an optional `---` frontmatter block off the text,
// decodes it, and extracts the diagram from the remainder. Extraction
// failures propagate unchanged (grd.ErrNoDiagram when no diagram exists);
// malformed frontmatter is a hard error since silently ignoring it would
// drop author-supplied metadata.
func ParseDocument(text string) (*Document, error) {
	meta, body, err := splitFrontmatter(text)
	if err != nil {
		return nil, err
	}

	source, err := Block(body)
	if err != nil {
		return nil, err
	}

	return &Document{Meta: meta, Source: source, Body: body}, nil
}

func splitFrontmatter(text string) (Meta, string, error) {
	var meta Meta

	rest, found := strings.CutPrefix(text, "---\n")
	if !found {
		return meta, text, nil
	}
	header, body, found := strings.Cut(rest, "\n---")
	if !found {
		return meta, text, nil
	}
	// The closing delimiter must sit on its own line.
	if body != "" && !strings.HasPrefix(body, "\n") {
		return meta, text, nil
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal([]byte(header), &raw); err != nil {
		return meta, "", fmt.Errorf("malformed frontmatter: %w", err)
	}
	if err := mapstructure.WeakDecode(raw, &meta); err != nil {
		return meta, "", fmt.Errorf("malformed frontmatter: %w", err)
	}
	return meta, strings.TrimPrefix(body, "\n"), nil
}
