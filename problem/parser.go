package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wayfind/core"
)

// section identifies which part of the file the scanner is inside.
type section int

const (
	sectionNone section = iota
	sectionNodes
	sectionEdges
	sectionOrigin
	sectionDestinations
)

// headers maps the literal section lines to their states.
var headers = map[string]section{
	"Nodes:":        sectionNodes,
	"Edges:":        sectionEdges,
	"Origin:":       sectionOrigin,
	"Destinations:": sectionDestinations,
}

// Load opens and parses the problem file at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse reads a four-section problem description from r.
//
// Steps:
//  1. Scan line by line, trimming whitespace and skipping blanks.
//  2. A line equal to a section header switches the current section.
//  3. Any other line is folded into the problem under that section.
//  4. Validate the assembled problem before returning it.
func Parse(r io.Reader) (*Problem, error) {
	p := &Problem{Graph: core.NewGraph()}
	sec := sectionNone
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if next, ok := headers[line]; ok {
			sec = next
			continue
		}
		if err := p.consume(sec, line, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("problem: read: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// consume folds one content line into the problem under the current
// section.
func (p *Problem) consume(sec section, line string, n int) error {
	switch sec {
	case sectionNodes:
		return p.parseNode(line, n)
	case sectionEdges:
		return p.parseEdge(line, n)
	case sectionOrigin:
		p.Origin = line
		return nil
	case sectionDestinations:
		p.Destinations = splitIDs(line)
		return nil
	default:
		return fmt.Errorf("line %d: %w: %q", n, ErrNoSection, line)
	}
}

// parseNode handles one "id: (x,y)" line.
func (p *Problem) parseNode(line string, n int) error {
	id, rest, ok := splitColon(line)
	if !ok || id == "" {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadNodeLine, line)
	}
	parts := strings.Split(strings.Trim(rest, "() \t"), ",")
	if len(parts) != 2 {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadNodeLine, line)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadCoordinate, parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadCoordinate, parts[1])
	}
	if err := p.Graph.AddNode(id, x, y); err != nil {
		if errors.Is(err, core.ErrBadCoordinate) {
			return fmt.Errorf("line %d: %w: %w", n, ErrBadCoordinate, err)
		}
		return fmt.Errorf("line %d: %w: %w", n, ErrBadNodeLine, err)
	}
	return nil
}

// parseEdge handles one "(from,to): cost" line.
func (p *Problem) parseEdge(line string, n int) error {
	pair, rest, ok := splitColon(line)
	if !ok {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadEdgeLine, line)
	}
	parts := strings.Split(strings.Trim(pair, "() \t"), ",")
	if len(parts) != 2 {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadEdgeLine, line)
	}
	from, to := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadEdgeLine, line)
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return fmt.Errorf("line %d: %w: %q", n, ErrBadCost, rest)
	}
	if err := p.Graph.AddEdge(from, to, cost); err != nil {
		if errors.Is(err, core.ErrNodeNotFound) {
			return fmt.Errorf("line %d: %w: %w", n, ErrUnknownNode, err)
		}
		return fmt.Errorf("line %d: %w: %w", n, ErrBadCost, err)
	}
	return nil
}

// splitColon splits a content line at its single colon. More than one
// colon makes the line ambiguous and is rejected.
func splitColon(line string) (left, right string, ok bool) {
	if strings.Count(line, ":") != 1 {
		return "", "", false
	}
	i := strings.IndexByte(line, ':')
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

// splitIDs splits a semicolon-separated ID list, dropping empties.
func splitIDs(line string) []string {
	parts := strings.Split(line, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}
