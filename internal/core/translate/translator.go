// Package translate converts a dataset's connectivity edges into edges
// between regions of a chosen target map, deriving each translated
// endpoint's extension code from the coextension relations that connect
// it to the original endpoint.
package translate

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/core/model"
)

// Direction says which end of a connectivity edge is being translated.
type Direction int

const (
	From Direction = iota
	To
)

func (d Direction) String() string {
	if d == From {
		return "from"
	}
	return "to"
}

// Anchor binds an EC lookup to the opposite, untranslated end of the
// connectivity edge.
type Anchor struct {
	Direction Direction
	Other     string
}

// Translator runs one dataset through the relation graph into TargetMap.
// It never mutates its inputs.
type Translator struct {
	Relations *graph.RelationGraph
	Conn      *graph.ConnGraph
	TargetMap string
	Log       zerolog.Logger
}

func New(relations *graph.RelationGraph, conn *graph.ConnGraph, targetMap string) *Translator {
	return &Translator{
		Relations: relations,
		Conn:      conn,
		TargetMap: targetMap,
		Log:       zerolog.Nop(),
	}
}

// FindAreas returns the regions of mapID directly coextensive with region.
func (t *Translator) FindAreas(region, mapID string) []string {
	var out []string
	for _, succ := range t.Relations.Successors(region) {
		if model.InMap(succ, mapID) {
			out = append(out, succ)
		}
	}
	return out
}

// ReverseFind maps each region to its coextensive regions in mapID. Used to
// find, for every target-map candidate, which source regions contribute.
func (t *Translator) ReverseFind(regions []string, mapID string) map[string][]string {
	out := make(map[string][]string, len(regions))
	for _, r := range regions {
		out[r] = t.FindAreas(r, mapID)
	}
	return out
}

// GetEC returns region's recorded connection status relative to the
// anchor's other region. With no recorded edge the connection is absent,
// except that a region compared with itself counts as complete.
func (t *Translator) GetEC(a Anchor, region string) model.EC {
	if a.Direction == From {
		if e, ok := t.Conn.Edge(region, a.Other); ok {
			return e.ECSource
		}
	}
	if e, ok := t.Conn.Edge(a.Other, region); ok {
		return e.ECTarget
	}
	if region == a.Other {
		return model.ECComplete
	}
	return model.ECAbsent
}

// SingleStep derives target's EC when source is its only contributor.
func (t *Translator) SingleStep(a Anchor, source, target string) (model.EC, error) {
	rc, ok := t.Relations.RC(source, target)
	if !ok {
		return "", fmt.Errorf("%w: %s->%s", model.ErrMissingRelation, source, target)
	}
	ec, err := SingleStepRule(rc, t.GetEC(a, source))
	if err != nil {
		return "", fmt.Errorf("%s->%s: %w", source, target, err)
	}
	return ec, nil
}

// MultiStep derives target's EC from several contributors, folding them in
// the order given. The fold is not commutative: a different order of the
// same contributors can end in P instead of X or vice versa, so sources
// must not be reordered.
func (t *Translator) MultiStep(a Anchor, sources []string, target string) (model.EC, error) {
	acc := model.ECBlank
	for _, source := range sources {
		rc, ok := t.Relations.RC(source, target)
		if !ok {
			return "", fmt.Errorf("%w: %s->%s", model.ErrMissingRelation, source, target)
		}
		next, err := MultiStepRule(acc, rc, t.GetEC(a, source))
		if err != nil {
			return "", fmt.Errorf("%s->%s: %w", source, target, err)
		}
		acc = next
	}
	return acc, nil
}

// IterateTransDict computes an EC for every target region from its
// contributors. A target region without contributors means the relation
// graph is inconsistent and aborts the run.
func (t *Translator) IterateTransDict(a Anchor, dict map[string][]string) (map[string]model.EC, error) {
	out := make(map[string]model.EC, len(dict))
	for _, target := range sortedKeys(dict) {
		sources := dict[target]
		var (
			ec  model.EC
			err error
		)
		switch len(sources) {
		case 0:
			return nil, fmt.Errorf("%w: target region %s", model.ErrEmptyContributorList, target)
		case 1:
			ec, err = t.SingleStep(a, sources[0], target)
		default:
			ec, err = t.MultiStep(a, sources, target)
		}
		if err != nil {
			return nil, err
		}
		out[target] = ec
	}
	return out, nil
}

// RunOneEnd translates one endpoint of a connectivity edge into a mapping
// from target-map region to EC.
func (t *Translator) RunOneEnd(a Anchor, endpoint string) (map[string]model.EC, error) {
	coextensive := t.FindAreas(endpoint, t.TargetMap)
	dict := t.ReverseFind(coextensive, model.MapOf(endpoint))
	return t.IterateTransDict(a, dict)
}

// IterateEdges translates every connectivity edge and collects the
// resulting target-map edges.
func (t *Translator) IterateEdges(ctx context.Context) (*Result, error) {
	res := NewResult()
	edges := t.Conn.Edges()
	for i, e := range edges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var fromECs, toECs map[string]model.EC
		var err error
		if model.InMap(e.Source, t.TargetMap) {
			fromECs = map[string]model.EC{e.Source: e.ECSource}
		} else if fromECs, err = t.RunOneEnd(Anchor{Direction: From, Other: e.Target}, e.Source); err != nil {
			return nil, fmt.Errorf("translate %s->%s: %w", e.Source, e.Target, err)
		}
		if model.InMap(e.Target, t.TargetMap) {
			toECs = map[string]model.EC{e.Target: e.ECTarget}
		} else if toECs, err = t.RunOneEnd(Anchor{Direction: To, Other: e.Source}, e.Target); err != nil {
			return nil, fmt.Errorf("translate %s->%s: %w", e.Source, e.Target, err)
		}

		origin := model.MapPair{Source: model.MapOf(e.Source), Target: model.MapOf(e.Target)}
		for _, from := range sortedKeys(fromECs) {
			for _, to := range sortedKeys(toECs) {
				res.AddEdge(from, fromECs[from], to, toECs[to], origin)
			}
		}

		t.Log.Debug().
			Str("target_map", t.TargetMap).
			Int("done", i+1).
			Int("total", len(edges)).
			Msg("translated edge")
	}
	return res, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
