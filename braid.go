package braid

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/braid/internal/compiler"
	"github.com/aretw0/braid/internal/extract"
	"github.com/aretw0/braid/internal/logging"
	"github.com/aretw0/braid/internal/validator"
	"github.com/aretw0/braid/pkg/grd"
	"github.com/aretw0/braid/pkg/planner"
)

// Version is the library version, reported by the CLI and the MCP server.
var Version = "0.2.0"

// Parser is the high-level entry point for the Braid core. A Parser holds
// no state across calls: every method is a pure function of its input, so
// a single Parser may be shared between goroutines.
type Parser struct {
	logger   *slog.Logger
	maxInput int
}

// Option defines a functional option for configuring the Parser.
type Option func(*Parser)

// WithLogger attaches a logger for diagnostic events.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMaxInputSize caps accepted input length in bytes. Zero means no cap.
func WithMaxInputSize(n int) Option {
	return func(p *Parser) {
		p.maxInput = n
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract returns the diagram source embedded in text: the first fenced
// mermaid code block, or the text itself when it is already bare flowchart
// source. It returns grd.ErrNoDiagram when neither is present.
func (p *Parser) Extract(text string) (string, error) {
	if err := p.checkSize(text); err != nil {
		return "", err
	}
	return extract.Block(text)
}

// Parse extracts the diagram from text and parses it into a structure.
// It fails fast on the first structural error: extraction failure, a
// statement matching no grammar rule, or a dangling edge endpoint.
func (p *Parser) Parse(text string) (*grd.Structure, error) {
	source, err := p.Extract(text)
	if err != nil {
		return nil, err
	}
	return p.ParseSource(source)
}

// ParseSource parses bare flowchart source without running extraction.
// Use this when the caller already holds diagram text; unlike extraction
// it does not require a "flowchart"/"graph" keyword to be present.
func (p *Parser) ParseSource(source string) (*grd.Structure, error) {
	if err := p.checkSize(source); err != nil {
		return nil, err
	}
	s, err := compiler.Compile(source)
	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		return nil, err
	}
	p.logger.Debug("parsed diagram", "nodes", s.NodeCount(), "edges", s.EdgeCount())
	return s, nil
}

// Validate reports whether text contains a structurally valid GRD. The
// second return value carries the first problem found, empty when valid.
// This is the boolean surface for callers who only need a yes/no answer.
func (p *Parser) Validate(text string) (bool, string) {
	s, err := p.Parse(text)
	if err != nil {
		return false, err.Error()
	}
	if err := validator.Validate(s); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// Notes returns non-fatal observations about a structure, currently the
// nodes unreachable from any start node.
func (p *Parser) Notes(s *grd.Structure) []string {
	var notes []string
	for _, id := range validator.Unreachable(s) {
		notes = append(notes, fmt.Sprintf("node %q is unreachable from any start node", id))
	}
	return notes
}

// Plan parses text, validates the resulting structure, and derives the
// ordered execution steps.
func (p *Parser) Plan(text string) ([]grd.Step, error) {
	s, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(s); err != nil {
		return nil, err
	}
	return planner.Plan(s)
}

func (p *Parser) checkSize(text string) error {
	if p.maxInput > 0 && len(text) > p.maxInput {
		return fmt.Errorf("input of %d bytes exceeds limit of %d", len(text), p.maxInput)
	}
	return nil
}

// defaultParser backs the package-level convenience functions. It holds no
// state, so sharing it is safe.
var defaultParser = New()

// Extract calls Parser.Extract on a default Parser.
func Extract(text string) (string, error) { return defaultParser.Extract(text) }

// Parse calls Parser.Parse on a default Parser.
func Parse(text string) (*grd.Structure, error) { return defaultParser.Parse(text) }

// ParseSource calls Parser.ParseSource on a default Parser.
func ParseSource(source string) (*grd.Structure, error) { return defaultParser.ParseSource(source) }

// Validate calls Parser.Validate on a default Parser.
func Validate(text string) (bool, string) { return defaultParser.Validate(text) }

// Plan calls Parser.Plan on a default Parser.
func Plan(text string) ([]grd.Step, error) { return defaultParser.Plan(text) }
