package mermaid

import (
	"strings"

	"github.com/aretw0/braid/pkg/grd"
)

// NodeRef is a parsed reference to a node within a statement.
type NodeRef struct {
	ID    string
	Label string
	Shape grd.Shape
	// Explicit is true when the reference carried shape+label syntax and
	// therefore declares the node, not merely mentions it.
	Explicit bool
}

// Statement is the result of parsing one logical line: the node references
// it contains (left to right) and the edges it declares. A chained line
// like "A --> B --> C" yields three refs and two edges.
type Statement struct {
	Nodes []NodeRef
	Edges []grd.Edge
}

// shape maps an opening token to its closing token and the resulting shape.
// Longest openers come first so "[[" is not read as "[".
var shapes = []struct {
	open  string
	close string
	shape grd.Shape
}{
	{"((", "))", grd.ShapeCircle},
	{"[[", "]]", grd.ShapeSubroutine},
	{"[/", "/]", grd.ShapeParallelogram},
	{"[", "]", grd.ShapeRectangle},
	{"(", ")", grd.ShapeRounded},
	{"{", "}", grd.ShapeDecision},
}

// ParseStatement parses one statement line into node references and edges.
// A line matching no recognized form returns a *grd.SyntaxError carrying the
// 1-based line number; malformed lines are never silently skipped.
func ParseStatement(ln Line) (Statement, error) {
	sc := &scanner{line: ln}

	var stmt Statement
	first, err := sc.nodeRef()
	if err != nil {
		return Statement{}, err
	}
	stmt.Nodes = append(stmt.Nodes, first)

	prev := first
	for {
		sc.skipSpace()
		if sc.eof() {
			return stmt, nil
		}

		label, err := sc.arrow()
		if err != nil {
			return Statement{}, err
		}

		sc.skipSpace()
		next, err := sc.nodeRef()
		if err != nil {
			return Statement{}, err
		}
		stmt.Nodes = append(stmt.Nodes, next)
		stmt.Edges = append(stmt.Edges, grd.Edge{From: prev.ID, To: next.ID, Label: label})
		prev = next
	}
}

// scanner is a cursor over one statement line. Errors carry the exact
// expectation that failed.
type scanner struct {
	line Line
	pos  int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.line.Text) }

func (sc *scanner) rest() string { return sc.line.Text[sc.pos:] }

func (sc *scanner) skipSpace() {
	for !sc.eof() {
		c := sc.line.Text[sc.pos]
		if c != ' ' && c != '\t' {
			return
		}
		sc.pos++
	}
}

func (sc *scanner) errf(reason string) error {
	return &grd.SyntaxError{Line: sc.line.Number, Text: sc.line.Text, Reason: reason}
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ident consumes a node id token.
func (sc *scanner) ident() (string, error) {
	start := sc.pos
	for !sc.eof() && isIdentChar(sc.line.Text[sc.pos]) {
		sc.pos++
	}
	if sc.pos == start {
		return "", sc.errf("expected node identifier")
	}
	return sc.line.Text[start:sc.pos], nil
}

// nodeRef consumes an id with optional shape+label syntax.
func (sc *scanner) nodeRef() (NodeRef, error) {
	sc.skipSpace()
	id, err := sc.ident()
	if err != nil {
		return NodeRef{}, err
	}

	ref := NodeRef{ID: id, Shape: grd.ShapeRectangle}
	for _, sh := range shapes {
		if !strings.HasPrefix(sc.rest(), sh.open) {
			continue
		}
		sc.pos += len(sh.open)
		end := strings.Index(sc.rest(), sh.close)
		if end < 0 {
			return NodeRef{}, sc.errf("unterminated " + sh.open + " label, expected " + sh.close)
		}
		ref.Label = unquote(sc.rest()[:end])
		ref.Shape = sh.shape
		ref.Explicit = true
		sc.pos += end + len(sh.close)
		break
	}
	return ref, nil
}

// arrow consumes one arrow token and returns its optional label. All arrow
// styles (solid, dotted, thick) collapse to a plain directed edge.
func (sc *scanner) arrow() (string, error) {
	var label string

	switch rest := sc.rest(); {
	case strings.HasPrefix(rest, "-->"):
		sc.pos += len("-->")
	case strings.HasPrefix(rest, "-.->"):
		sc.pos += len("-.->")
	case strings.HasPrefix(rest, "==>"):
		sc.pos += len("==>")
	case strings.HasPrefix(rest, "-."):
		// "-. label .->"
		body := rest[len("-."):]
		end := strings.Index(body, ".->")
		if end < 0 {
			return "", sc.errf("unterminated -. arrow, expected .->")
		}
		label = unquote(strings.TrimSpace(body[:end]))
		sc.pos += len("-.") + end + len(".->")
	case strings.HasPrefix(rest, "--"):
		// "-- label -->"
		body := rest[len("--"):]
		end := strings.Index(body, "-->")
		if end < 0 {
			return "", sc.errf("unterminated -- arrow, expected -->")
		}
		label = unquote(strings.TrimSpace(body[:end]))
		sc.pos += len("--") + end + len("-->")
	case strings.HasPrefix(rest, "=="):
		// "== label ==>"
		body := rest[len("=="):]
		end := strings.Index(body, "==>")
		if end < 0 {
			return "", sc.errf("unterminated == arrow, expected ==>")
		}
		label = unquote(strings.TrimSpace(body[:end]))
		sc.pos += len("==") + end + len("==>")
	default:
		return "", sc.errf("expected arrow (-->, -.->, ==>)")
	}

	// Pipe-delimited label after the arrow head: A -->|yes| B
	sc.skipSpace()
	if !sc.eof() && sc.line.Text[sc.pos] == '|' {
		body := sc.rest()[1:]
		end := strings.Index(body, "|")
		if end < 0 {
			return "", sc.errf("unterminated |label| on edge")
		}
		label = unquote(strings.TrimSpace(body[:end]))
		sc.pos += 1 + end + 1
	}
	return label, nil
}

// unquote strips one pair of surrounding double quotes, the form Mermaid
// uses to protect labels containing special characters.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
