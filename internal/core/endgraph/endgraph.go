// Package endgraph accumulates translated edges from many datasets into one
// result graph and scores how controversial each merged edge is.
package endgraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agenthands/cocograph/internal/core/model"
)

type key struct {
	source, target string
}

// EndGraph is the long-lived result of a translation campaign. Edges and
// their evidence are only ever appended to; scores are recomputed from the
// current contents. All methods are safe for concurrent use, merges are
// serialized.
type EndGraph struct {
	mu      sync.Mutex
	edges   map[key]*model.EndEdge
	regions map[string]bool

	Log zerolog.Logger
}

func New() *EndGraph {
	return &EndGraph{
		edges:   make(map[key]*model.EndEdge),
		regions: make(map[string]bool),
		Log:     zerolog.Nop(),
	}
}

// AddEdge merges one contribution for source→target under discipline d.
func (g *EndGraph) AddEdge(source, target string, attrs Attrs, d Discipline) error {
	switch d {
	case Dan:
		if attrs.Tally == nil {
			return fmt.Errorf("%w: dan update %s->%s has no tally", model.ErrInvalidAttribute, source, target)
		}
	case Ort:
		if err := validateObservation(source, target, attrs.Observation); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", model.ErrUnsupportedDiscipline, d)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	k := key{source, target}
	existing, ok := g.edges[k]
	if !ok {
		e := &model.EndEdge{Source: source, Target: target, Discipline: string(d)}
		if d == Dan {
			e.Tally = copyTally(attrs.Tally)
		} else {
			e.Observation = copyObservation(attrs.Observation)
		}
		g.edges[k] = e
		g.regions[source] = true
		g.regions[target] = true
		return nil
	}
	if existing.Discipline != string(d) {
		return fmt.Errorf("%w: %s->%s holds %s evidence, got %s", model.ErrDisciplineMismatch, source, target, existing.Discipline, d)
	}

	if d == Dan {
		mergeTally(existing.Tally, attrs.Tally)
	} else {
		mergeObservation(existing.Observation, attrs.Observation)
	}
	return nil
}

// AddEdgesFrom merges a batch of updates. An update that fails is skipped
// and reported in the returned error; the others still merge.
func (g *EndGraph) AddEdgesFrom(updates []Update, d Discipline) error {
	if d != Dan && d != Ort {
		return fmt.Errorf("%w: %q", model.ErrUnsupportedDiscipline, d)
	}
	var errs []error
	for _, u := range updates {
		if err := g.AddEdge(u.Source, u.Target, u.Attrs, d); err != nil {
			g.Log.Warn().Err(err).Str("source", u.Source).Str("target", u.Target).Msg("skipping edge contribution")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddControversyScores sets every edge's score to
// (for - against) / (for + against), or 0 without decisive evidence.
func (g *EndGraph) AddControversyScores() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		var pro, con int
		if e.Tally != nil {
			pro = len(e.Tally.Bundles[model.BundlesFor])
			con = len(e.Tally.Bundles[model.BundlesAgainst])
		}
		e.Score = ControversyScore(pro, con)
	}
}

// ControversyScore is the normalized agreement of supporting and opposing
// evidence, in [-1, 1].
func ControversyScore(pro, con int) float64 {
	if pro+con == 0 {
		return 0
	}
	return float64(pro-con) / float64(pro+con)
}

// Edge returns a copy of the merged edge source→target.
func (g *EndGraph) Edge(source, target string) (model.EndEdge, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[key{source, target}]
	if !ok {
		return model.EndEdge{}, false
	}
	return cloneEdge(e), true
}

// HasEdge reports whether source→target has been merged.
func (g *EndGraph) HasEdge(source, target string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.edges[key{source, target}]
	return ok
}

// Edges returns copies of all merged edges sorted by source, then target.
func (g *EndGraph) Edges() []model.EndEdge {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]model.EndEdge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, cloneEdge(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// Regions returns every region touched by a merged edge, sorted.
func (g *EndGraph) Regions() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, len(g.regions))
	for r := range g.regions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of merged edges.
func (g *EndGraph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.edges)
}

func validateObservation(source, target string, obs *model.Observation) error {
	if obs == nil || obs.ECSource == nil || obs.ECTarget == nil {
		return fmt.Errorf("%w: ort update %s->%s needs EC_Source and EC_Target", model.ErrInvalidAttribute, source, target)
	}
	for _, side := range []struct {
		name string
		ecs  map[string][]model.EC
	}{{"EC_Source", obs.ECSource}, {"EC_Target", obs.ECTarget}} {
		for m, values := range side.ecs {
			for _, v := range values {
				if !model.ValidObservation(v) {
					return &model.InvalidAttributeError{Source: source, Target: target, Key: side.name, Map: m, Value: v}
				}
			}
		}
	}
	return nil
}

func mergeTally(dst, src *model.Tally) {
	if len(src.Bundles) > 0 && dst.Bundles == nil {
		dst.Bundles = make(map[string][]model.MapPair, len(src.Bundles))
	}
	for k, v := range src.Bundles {
		dst.Bundles[k] = append(dst.Bundles[k], v...)
	}
	if len(src.Counts) > 0 && dst.Counts == nil {
		dst.Counts = make(map[string]float64, len(src.Counts))
	}
	for k, v := range src.Counts {
		dst.Counts[k] += v
	}
}

func mergeObservation(dst, src *model.Observation) {
	for m, v := range src.ECSource {
		dst.ECSource[m] = append(dst.ECSource[m], v...)
	}
	for m, v := range src.ECTarget {
		dst.ECTarget[m] = append(dst.ECTarget[m], v...)
	}
}

func copyTally(t *model.Tally) *model.Tally {
	out := &model.Tally{}
	mergeTally(out, t)
	return out
}

func copyObservation(o *model.Observation) *model.Observation {
	out := &model.Observation{
		ECSource: make(map[string][]model.EC, len(o.ECSource)),
		ECTarget: make(map[string][]model.EC, len(o.ECTarget)),
	}
	mergeObservation(out, o)
	return out
}

func cloneEdge(e *model.EndEdge) model.EndEdge {
	c := *e
	if e.Tally != nil {
		c.Tally = copyTally(e.Tally)
	}
	if e.Observation != nil {
		c.Observation = copyObservation(e.Observation)
	}
	return c
}
