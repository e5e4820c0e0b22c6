package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avelyra/grafo/core"
)

// Sentinel errors wrapped by ParseError.
var (
	// ErrBadLine indicates a non-blank line without exactly three fields.
	ErrBadLine = errors.New("edgelist: line must be 'source target weight'")

	// ErrBadWeight indicates a weight field that does not parse as an integer.
	ErrBadWeight = errors.New("edgelist: weight is not an integer")
)

// ParseError reports the first malformed line of an import.
// It wraps ErrBadLine or ErrBadWeight for errors.Is checks.
type ParseError struct {
	// Line is the 1-based line number of the failure.
	Line int

	// Text is the offending line as read, without the newline.
	Text string

	// Err is the underlying sentinel (possibly with parse context).
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap exposes the wrapped sentinel to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads edge-list lines from r and applies each one to g via
// AddEdge. Blank lines are skipped. The first malformed line aborts
// with a *ParseError; edges applied before the failure stay in g.
// Complexity: O(lines)
func Parse(r io.Reader, g *core.Graph) error {
	scanner := bufio.NewScanner(r)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // blank line
		}
		if len(fields) != 3 {
			return &ParseError{Line: lineNo, Text: line, Err: ErrBadLine}
		}

		weight, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: %q", ErrBadWeight, fields[2])}
		}

		g.AddEdge(fields[0], fields[1], weight)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("edgelist: read failed: %w", err)
	}

	return nil
}

// Load opens the file at path and parses it into g.
// The file handle is closed before returning.
func Load(path string, g *core.Graph) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, g)
}
