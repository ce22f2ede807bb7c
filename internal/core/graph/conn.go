package graph

import (
	"fmt"
	"sort"

	"github.com/agenthands/cocograph/internal/core/model"
)

type edgeKey struct {
	source, target string
}

// ConnGraph is one dataset's connectivity graph.
type ConnGraph struct {
	edges map[edgeKey]model.ConnEdge
	order []edgeKey
}

// NewConnGraph creates an empty connectivity graph.
func NewConnGraph() *ConnGraph {
	return &ConnGraph{edges: make(map[edgeKey]model.ConnEdge)}
}

// AddEdge records a connectivity edge, normalizing its extension codes.
// Adding the same pair twice overwrites the attributes in place.
func (g *ConnGraph) AddEdge(e model.ConnEdge) error {
	if e.Source == "" || e.Target == "" {
		return fmt.Errorf("%w: empty endpoint in edge %q->%q", model.ErrInvalidRegion, e.Source, e.Target)
	}
	e.ECSource = model.ParseEC(string(e.ECSource))
	e.ECTarget = model.ParseEC(string(e.ECTarget))
	k := edgeKey{e.Source, e.Target}
	if _, exists := g.edges[k]; !exists {
		g.order = append(g.order, k)
	}
	g.edges[k] = e
	return nil
}

// Edge returns the edge src→dst.
func (g *ConnGraph) Edge(src, dst string) (model.ConnEdge, bool) {
	e, ok := g.edges[edgeKey{src, dst}]
	return e, ok
}

// Edges returns all edges in insertion order.
func (g *ConnGraph) Edges() []model.ConnEdge {
	out := make([]model.ConnEdge, len(g.order))
	for i, k := range g.order {
		out[i] = g.edges[k]
	}
	return out
}

// Len returns the number of edges.
func (g *ConnGraph) Len() int {
	return len(g.order)
}

// Maps returns the sorted set of maps whose regions appear in the graph.
func (g *ConnGraph) Maps() []string {
	set := make(map[string]bool)
	for _, k := range g.order {
		set[model.MapOf(k.source)] = true
		set[model.MapOf(k.target)] = true
	}
	maps := make([]string, 0, len(set))
	for m := range set {
		maps = append(maps, m)
	}
	sort.Strings(maps)
	return maps
}
