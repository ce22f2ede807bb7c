// Package graph holds the two read-only inputs of a translation run: the
// coextension relation graph spanning every map, and one dataset's
// connectivity graph. Both are plain adjacency maps keyed by region
// identifier; successor order is the order edges were added.
package graph

import (
	"fmt"
	"sort"

	"github.com/agenthands/cocograph/internal/core/model"
)

// RelationGraph is a directed graph of coextension relations. An edge
// src→dst carries the RC describing src's extent relative to dst's.
type RelationGraph struct {
	rcs map[string]map[string]model.RC
	// successors keeps insertion order; multi-step composition is
	// order-sensitive so lookups must be reproducible.
	successors map[string][]string
	count      int
}

// NewRelationGraph creates an empty relation graph.
func NewRelationGraph() *RelationGraph {
	return &RelationGraph{
		rcs:        make(map[string]map[string]model.RC),
		successors: make(map[string][]string),
	}
}

// AddRelation records src→dst with the given code. Re-adding an existing
// pair replaces its code without changing successor order.
func (g *RelationGraph) AddRelation(src, dst string, rc model.RC) error {
	if src == "" || dst == "" {
		return fmt.Errorf("%w: empty endpoint in relation %q->%q", model.ErrInvalidRegion, src, dst)
	}
	if _, ok := g.rcs[src]; !ok {
		g.rcs[src] = make(map[string]model.RC)
	}
	if _, ok := g.rcs[dst]; !ok {
		g.rcs[dst] = make(map[string]model.RC)
	}
	if _, exists := g.rcs[src][dst]; !exists {
		g.successors[src] = append(g.successors[src], dst)
		g.count++
	}
	g.rcs[src][dst] = rc
	return nil
}

// AddSymmetric records src→dst and its converse dst→src.
func (g *RelationGraph) AddSymmetric(src, dst string, rc, converse model.RC) error {
	if err := g.AddRelation(src, dst, rc); err != nil {
		return err
	}
	return g.AddRelation(dst, src, converse)
}

// RC returns the relational code of src→dst.
func (g *RelationGraph) RC(src, dst string) (model.RC, bool) {
	rc, ok := g.rcs[src][dst]
	return rc, ok
}

// Successors returns the regions src has a relation into, in insertion order.
func (g *RelationGraph) Successors(src string) []string {
	return g.successors[src]
}

// Len returns the number of relation edges.
func (g *RelationGraph) Len() int {
	return g.count
}

// Relations returns every edge, grouped by source in the order sources
// were first seen.
func (g *RelationGraph) Relations() []model.RelationEdge {
	out := make([]model.RelationEdge, 0, g.count)
	for _, src := range g.order() {
		for _, dst := range g.successors[src] {
			out = append(out, model.RelationEdge{Source: src, Target: dst, RC: g.rcs[src][dst]})
		}
	}
	return out
}

// order lists sources deterministically. Map iteration is random, so the
// sources are sorted; successor lists keep their insertion order.
func (g *RelationGraph) order() []string {
	ids := make([]string, 0, len(g.successors))
	for id := range g.successors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TranslateNode returns the regions of targetMap that stand for region:
// the region itself when it already belongs to targetMap, otherwise its
// coextensive regions there.
func (g *RelationGraph) TranslateNode(region, targetMap string) []string {
	if model.InMap(region, targetMap) {
		return []string{region}
	}
	var out []string
	for _, succ := range g.successors[region] {
		if model.InMap(succ, targetMap) {
			out = append(out, succ)
		}
	}
	return out
}

// TranslateEdge re-expresses src→dst as every pair of translated endpoints,
// src translated into srcMap and dst into dstMap. Self-loops are dropped.
func (g *RelationGraph) TranslateEdge(src, dst, srcMap, dstMap string) [][2]string {
	var out [][2]string
	for _, s := range g.TranslateNode(src, srcMap) {
		for _, t := range g.TranslateNode(dst, dstMap) {
			if s == t {
				continue
			}
			out = append(out, [2]string{s, t})
		}
	}
	return out
}
