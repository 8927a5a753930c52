package caves

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/sonar/input"
)

const (
	Start = "start"
	End   = "end"
)

var (
	// ErrMissingCave indicates that start or end does not appear in any edge.
	ErrMissingCave = errors.New("caves: missing cave")

	// ErrBigCavesAdjacent indicates two connected big caves.
	ErrBigCavesAdjacent = errors.New("caves: big caves are adjacent")
)

// Edge is an undirected passage.
type Edge struct {
	From, To string
}

// ParseEdge reads "a-b".
func ParseEdge(s string) (Edge, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || from == "" || to == "" || strings.Contains(to, "-") {
		return Edge{}, input.Errorf(0, s, "want \"<cave>-<cave>\"")
	}
	return Edge{From: from, To: to}, nil
}

// ParseEdges reads one edge per line.
func ParseEdges(text string) ([]Edge, error) {
	var out []Edge
	for i, l := range input.Lines(text) {
		if l == "" {
			continue
		}
		e, err := ParseEdge(l)
		if err != nil {
			var pe *input.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// IsSmall reports whether a cave name denotes a small cave.
func IsSmall(name string) bool {
	for _, r := range name {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return name != ""
}

// Graph is the cave system with caves numbered in order of appearance.
type Graph struct {
	names      []string
	small      []bool
	neighbours [][]int
	start, end int
}

// NewGraph builds the cave system from edges.
func NewGraph(edges []Edge) (*Graph, error) {
	g := &Graph{}
	ids := make(map[string]int)
	id := func(name string) int {
		if v, ok := ids[name]; ok {
			return v
		}
		v := len(g.names)
		ids[name] = v
		g.names = append(g.names, name)
		g.small = append(g.small, IsSmall(name))
		g.neighbours = append(g.neighbours, nil)
		return v
	}
	for _, e := range edges {
		a, b := id(e.From), id(e.To)
		if !g.small[a] && !g.small[b] {
			return nil, fmt.Errorf("%w: %s-%s", ErrBigCavesAdjacent, e.From, e.To)
		}
		g.neighbours[a] = append(g.neighbours[a], b)
		g.neighbours[b] = append(g.neighbours[b], a)
	}

	var ok bool
	if g.start, ok = ids[Start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingCave, Start)
	}
	if g.end, ok = ids[End]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingCave, End)
	}
	return g, nil
}

// Parse reads edges and builds the graph.
func Parse(text string) (*Graph, error) {
	edges, err := ParseEdges(text)
	if err != nil {
		return nil, err
	}
	return NewGraph(edges)
}

// Caves returns the cave names in order of first appearance.
func (g *Graph) Caves() []string { return g.names }

// CountPaths counts distinct start-to-end paths.
func (g *Graph) CountPaths(revisit bool) int {
	n := 0
	g.Walk(revisit, func([]string) { n++ })
	return n
}

// Walk calls fn with every distinct start-to-end path. The slice passed to
// fn is reused between calls.
func (g *Graph) Walk(revisit bool, fn func(path []string)) {
	w := &caveWalker{
		graph:   g,
		visits:  make([]int, len(g.names)),
		revisit: revisit,
		emit:    fn,
	}
	w.visit(g.start)
}

// caveWalker holds the state of one depth-first enumeration.
type caveWalker struct {
	graph   *Graph
	visits  []int
	path    []string
	revisit bool // a second visit to a small cave is still available
	emit    func([]string)
}

func (w *caveWalker) visit(u int) {
	w.path = append(w.path, w.graph.names[u])
	defer func() { w.path = w.path[:len(w.path)-1] }()

	if u == w.graph.end {
		w.emit(w.path)
		return
	}

	w.visits[u]++
	defer func() { w.visits[u]-- }()

	for _, v := range w.graph.neighbours[u] {
		switch {
		case v == w.graph.start:
			continue
		case !w.graph.small[v] || w.visits[v] == 0:
			w.visit(v)
		case w.revisit && v != w.graph.end:
			w.revisit = false
			w.visit(v)
			w.revisit = true
		}
	}
}
