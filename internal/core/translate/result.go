package translate

import "github.com/agenthands/cocograph/internal/core/model"

type pair struct {
	source, target string
}

// Result is the set of candidate target-map edges produced by one run.
type Result struct {
	edges map[pair]*model.TranslatedEdge
	order []pair
}

func NewResult() *Result {
	return &Result{edges: make(map[pair]*model.TranslatedEdge)}
}

// AddEdge records one observation of source→target. Self-loops and
// observations with an undetermined end are not asserted. Repeated pairs
// append to the edge's EC lists. It reports whether the observation was kept.
func (r *Result) AddEdge(source string, ecSource model.EC, target string, ecTarget model.EC, origin model.MapPair) bool {
	if source == target {
		return false
	}
	if ecSource == model.ECUndetermined || ecTarget == model.ECUndetermined {
		return false
	}
	k := pair{source, target}
	e, ok := r.edges[k]
	if !ok {
		e = &model.TranslatedEdge{Source: source, Target: target}
		r.edges[k] = e
		r.order = append(r.order, k)
	}
	e.ECSource = append(e.ECSource, ecSource)
	e.ECTarget = append(e.ECTarget, ecTarget)
	e.Origins = append(e.Origins, origin)
	return true
}

// Edge returns the accumulated observations of source→target.
func (r *Result) Edge(source, target string) (*model.TranslatedEdge, bool) {
	e, ok := r.edges[pair{source, target}]
	return e, ok
}

// Edges returns the translated edges in the order they were first seen.
func (r *Result) Edges() []*model.TranslatedEdge {
	out := make([]*model.TranslatedEdge, len(r.order))
	for i, k := range r.order {
		out[i] = r.edges[k]
	}
	return out
}

func (r *Result) Len() int {
	return len(r.order)
}
