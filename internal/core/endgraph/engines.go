package endgraph

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/core/model"
	"github.com/agenthands/cocograph/internal/core/translate"
)

// AddTranslatedEdges translates a whole dataset into targetMap with the
// engine matching d and merges the result.
func (g *EndGraph) AddTranslatedEdges(ctx context.Context, conn *graph.ConnGraph, relations *graph.RelationGraph, targetMap string, d Discipline) error {
	updates, err := Updates(ctx, conn, relations, targetMap, d, g.Log)
	if err != nil {
		return err
	}
	return g.AddEdgesFrom(updates, d)
}

// Updates runs the engine for d without touching any EndGraph, so several
// datasets can be translated concurrently and merged afterwards.
func Updates(ctx context.Context, conn *graph.ConnGraph, relations *graph.RelationGraph, targetMap string, d Discipline, log zerolog.Logger) ([]Update, error) {
	switch d {
	case Dan:
		return DanUpdates(conn, relations, targetMap), nil
	case Ort:
		return OrtUpdates(ctx, conn, relations, targetMap, log)
	}
	return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedDiscipline, d)
}

// DanUpdates classifies every translated edge as supported, opposed or
// inconclusive. A translated edge is supported when any original edge it
// maps back onto reports a nonzero degree, opposed when all of them report
// degree 0, and inconclusive when some have no recorded degree. Original
// edges are consumed as they are matched so each one contributes at most
// once.
func DanUpdates(conn *graph.ConnGraph, relations *graph.RelationGraph, targetMap string) []Update {
	pending := make([][2]string, 0, conn.Len())
	for _, e := range conn.Edges() {
		pending = append(pending, [2]string{e.Source, e.Target})
	}

	var updates []Update
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		sMap, tMap := model.MapOf(cur[0]), model.MapOf(cur[1])
		tag := model.MapPair{Source: sMap, Target: tMap}
		for _, translated := range relations.TranslateEdge(cur[0], cur[1], targetMap, targetMap) {
			originals := relations.TranslateEdge(translated[0], translated[1], sMap, tMap)
			updates = append(updates, ForBundle(translated[0], translated[1], classify(conn, originals), tag))
			pending = consume(pending, originals)
		}
	}
	return updates
}

func classify(conn *graph.ConnGraph, originals [][2]string) string {
	incomplete := false
	for _, o := range originals {
		e, ok := conn.Edge(o[0], o[1])
		if !ok || e.Degree == "" {
			incomplete = true
			continue
		}
		if e.Degree != "0" {
			return model.BundlesFor
		}
	}
	if incomplete {
		return model.BundlesIncomplete
	}
	return model.BundlesAgainst
}

func consume(pending, processed [][2]string) [][2]string {
	if len(processed) == 0 {
		return pending
	}
	drop := make(map[[2]string]bool, len(processed))
	for _, p := range processed {
		drop[p] = true
	}
	kept := pending[:0]
	for _, p := range pending {
		if !drop[p] {
			kept = append(kept, p)
		}
	}
	return kept
}

// OrtUpdates runs the translator over the dataset and emits one update
// per observation of a translated edge, keyed by the maps that reported
// it. An invalid code from one map is then rejected on its own and does
// not take the other maps' observations of the same edge with it.
func OrtUpdates(ctx context.Context, conn *graph.ConnGraph, relations *graph.RelationGraph, targetMap string, log zerolog.Logger) ([]Update, error) {
	tr := translate.New(relations, conn, targetMap)
	tr.Log = log
	res, err := tr.IterateEdges(ctx)
	if err != nil {
		return nil, err
	}

	var updates []Update
	for _, e := range res.Edges() {
		for i, origin := range e.Origins {
			obs := &model.Observation{
				ECSource: map[string][]model.EC{origin.Source: {e.ECSource[i]}},
				ECTarget: map[string][]model.EC{origin.Target: {e.ECTarget[i]}},
			}
			updates = append(updates, Update{Source: e.Source, Target: e.Target, Attrs: Attrs{Observation: obs}})
		}
	}
	return updates, nil
}
