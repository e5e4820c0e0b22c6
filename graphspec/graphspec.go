package graphspec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avelyra/grafo/core"
)

// ErrBadSpec indicates a structurally invalid graph document.
var ErrBadSpec = errors.New("graphspec: invalid graph document")

// Spec is a graph document loaded from YAML or JSON.
type Spec struct {
	Name     string     `yaml:"name,omitempty" json:"name,omitempty"`
	Directed bool       `yaml:"directed,omitempty" json:"directed,omitempty"`
	Vertices []string   `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    []EdgeSpec `yaml:"edges" json:"edges"`
}

// EdgeSpec is one weighted edge in a graph document.
// A zero Weight means "unspecified" and imports at core.DefaultEdgeWeight.
type EdgeSpec struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// LoadSpec loads and validates a Spec from a YAML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphspec: read %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("graphspec: parse YAML: %w", err)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// Validate checks that every edge names both endpoints and no weight
// is negative.
func (s *Spec) Validate() error {
	for i, e := range s.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d is missing an endpoint", ErrBadSpec, i)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d has negative weight %d", ErrBadSpec, i, e.Weight)
		}
	}

	return nil
}

// Graph materializes the document as a core.Graph: declared vertices
// first (preserving document order), then edges in document order.
func (s *Spec) Graph() *core.Graph {
	g := core.NewGraph(core.WithDirected(s.Directed))
	for _, v := range s.Vertices {
		g.AddVertex(v)
	}
	for _, e := range s.Edges {
		w := e.Weight
		if w == 0 {
			w = core.DefaultEdgeWeight
		}
		g.AddEdge(e.From, e.To, w)
	}

	return g
}

// FromGraph captures g as a Spec under the given name. Isolated
// vertices land in Vertices; for undirected graphs each mirrored pair
// is emitted once, with self-loops halved to undo the double entry
// their insertion produces.
func FromGraph(g *core.Graph, name string) *Spec {
	s := &Spec{Name: name, Directed: g.Directed()}
	loops := make(map[string]int)
	for _, u := range g.Vertices() {
		nbrs := g.AdjacentVertices(u)
		if len(nbrs) == 0 {
			s.Vertices = append(s.Vertices, u)
			continue
		}
		for _, v := range nbrs {
			if !g.Directed() {
				if u > v {
					continue // mirror of an edge emitted from the other side
				}
				if u == v {
					loops[u]++
					if loops[u]%2 == 0 {
						continue
					}
				}
			}
			s.Edges = append(s.Edges, EdgeSpec{From: u, To: v, Weight: g.EdgeWeight(u, v)})
		}
	}

	return s
}

// ToMermaid renders the document as a Mermaid graph definition,
// one edge per line with the weight as the link label.
func (s *Spec) ToMermaid() string {
	arrow := "---"
	if s.Directed {
		arrow = "-->"
	}

	var b strings.Builder
	b.WriteString("graph LR\n")
	for _, v := range s.Vertices {
		fmt.Fprintf(&b, "    %s\n", v)
	}
	for _, e := range s.Edges {
		fmt.Fprintf(&b, "    %s %s|%d| %s\n", e.From, arrow, e.Weight, e.To)
	}

	return b.String()
}

// ToJSON renders the document as indented JSON.
func (s *Spec) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("graphspec: marshal JSON: %w", err)
	}

	return data, nil
}
