package endgraph

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/core/model"
)

type rel struct {
	src, dst     string
	rc, converse model.RC
}

func relations(t *testing.T, rels ...rel) *graph.RelationGraph {
	t.Helper()
	g := graph.NewRelationGraph()
	for _, r := range rels {
		require.NoError(t, g.AddSymmetric(r.src, r.dst, r.rc, r.converse))
	}
	return g
}

func conn(t *testing.T, edges ...model.ConnEdge) *graph.ConnGraph {
	t.Helper()
	g := graph.NewConnGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

func identical(src, dst string) rel {
	return rel{src, dst, model.Identical, model.Identical}
}

// A-1 and A-2 both lie inside B-1; A-3 is B-2.
func nestedPair(t *testing.T) *graph.RelationGraph {
	return relations(t,
		rel{"A-1", "B-1", model.ContainedIn, model.Contains},
		rel{"A-2", "B-1", model.ContainedIn, model.Contains},
		identical("A-3", "B-2"),
	)
}

func bundleKeys(updates []Update) map[string]string {
	out := make(map[string]string)
	for _, u := range updates {
		for k := range u.Attrs.Tally.Bundles {
			out[u.Source+">"+u.Target] = k
		}
	}
	return out
}

func TestDanUpdates_Classification(t *testing.T) {
	rg := relations(t, identical("A-1", "B-1"), identical("A-2", "B-2"), identical("A-3", "B-3"))
	cg := conn(t,
		model.ConnEdge{Source: "A-1", Target: "A-2", Degree: "2"},
		model.ConnEdge{Source: "A-2", Target: "A-3", Degree: "0"},
		model.ConnEdge{Source: "A-3", Target: "A-1"},
	)

	updates := DanUpdates(cg, rg, "B")
	require.Len(t, updates, 3)
	assert.Equal(t, map[string]string{
		"B-1>B-2": model.BundlesFor,
		"B-2>B-3": model.BundlesAgainst,
		"B-3>B-1": model.BundlesIncomplete,
	}, bundleKeys(updates))

	for _, u := range updates {
		assert.Nil(t, u.Attrs.Observation)
		for _, tags := range u.Attrs.Tally.Bundles {
			assert.Equal(t, []model.MapPair{{Source: "A", Target: "A"}}, tags)
		}
	}
}

func TestDanUpdates_OriginalsContributeOnce(t *testing.T) {
	// Both A-edges translate to B-1 -> B-2; the second one popped is
	// consumed by the first translation.
	cg := conn(t,
		model.ConnEdge{Source: "A-1", Target: "A-3", Degree: "0"},
		model.ConnEdge{Source: "A-2", Target: "A-3", Degree: "1"},
	)

	updates := DanUpdates(cg, nestedPair(t), "B")
	require.Len(t, updates, 1)
	assert.Equal(t, "B-1", updates[0].Source)
	assert.Equal(t, "B-2", updates[0].Target)
	assert.Contains(t, updates[0].Attrs.Tally.Bundles, model.BundlesFor)
}

func TestDanUpdates_MissingOriginalIsIncomplete(t *testing.T) {
	cg := conn(t, model.ConnEdge{Source: "A-1", Target: "A-3", Degree: "0"})

	updates := DanUpdates(cg, nestedPair(t), "B")
	require.Len(t, updates, 1)
	assert.Equal(t, map[string]string{"B-1>B-2": model.BundlesIncomplete}, bundleKeys(updates))
}

func TestDanUpdates_UnrelatedRegionsYieldNothing(t *testing.T) {
	cg := conn(t, model.ConnEdge{Source: "A-7", Target: "A-8", Degree: "3"})
	assert.Empty(t, DanUpdates(cg, nestedPair(t), "B"))
}

func TestDanUpdates_SelfLoopDropped(t *testing.T) {
	// A-1 and A-2 both collapse onto B-1.
	cg := conn(t, model.ConnEdge{Source: "A-1", Target: "A-2", ECSource: "C", ECTarget: "C", Degree: "1"})

	assert.Empty(t, DanUpdates(cg, nestedPair(t), "B"))

	updates, err := OrtUpdates(context.Background(), cg, nestedPair(t), "B", zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestOrtUpdates(t *testing.T) {
	rg := relations(t, identical("A-1", "B-1"), identical("A-2", "B-2"))
	cg := conn(t, model.ConnEdge{Source: "A-1", Target: "A-2", ECSource: "C", ECTarget: "P"})

	updates, err := OrtUpdates(context.Background(), cg, rg, "B", zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, updates, 1)

	u := updates[0]
	assert.Equal(t, "B-1", u.Source)
	assert.Equal(t, "B-2", u.Target)
	assert.Nil(t, u.Attrs.Tally)
	assert.Equal(t, map[string][]model.EC{"A": {model.ECComplete}}, u.Attrs.Observation.ECSource)
	assert.Equal(t, map[string][]model.EC{"A": {model.ECPartial}}, u.Attrs.Observation.ECTarget)
}

func TestOrtUpdates_OneUpdatePerObservation(t *testing.T) {
	rg := relations(t, identical("A-1", "B-1"), identical("A-2", "B-2"))
	cg := conn(t,
		model.ConnEdge{Source: "A-1", Target: "A-2", ECSource: "C", ECTarget: "C"},
		model.ConnEdge{Source: "B-1", Target: "A-2", ECSource: "P", ECTarget: "C"},
	)

	updates, err := OrtUpdates(context.Background(), cg, rg, "B", zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, updates, 2)

	for _, u := range updates {
		assert.Equal(t, "B-1", u.Source)
		assert.Equal(t, "B-2", u.Target)
	}
	assert.Equal(t, map[string][]model.EC{"A": {"C"}}, updates[0].Attrs.Observation.ECSource)
	assert.Equal(t, map[string][]model.EC{"A": {"C"}}, updates[0].Attrs.Observation.ECTarget)
	assert.Equal(t, map[string][]model.EC{"B": {"P"}}, updates[1].Attrs.Observation.ECSource)
	assert.Equal(t, map[string][]model.EC{"A": {"C"}}, updates[1].Attrs.Observation.ECTarget)
}

func TestAddTranslatedEdges_InvalidObservationKeepsOtherMaps(t *testing.T) {
	// Both edges land on B-1 -> B-2. The one reported from map B carries
	// an unknown code and must not take map A's evidence with it.
	rg := relations(t, identical("A-1", "B-1"), identical("A-2", "B-2"))
	cg := conn(t,
		model.ConnEdge{Source: "A-1", Target: "A-2", ECSource: "C", ECTarget: "C"},
		model.ConnEdge{Source: "B-1", Target: "A-2", ECSource: "Q", ECTarget: "C"},
	)

	g := New()
	err := g.AddTranslatedEdges(context.Background(), cg, rg, "B", Ort)
	assert.ErrorIs(t, err, model.ErrInvalidAttribute)

	var attrErr *model.InvalidAttributeError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "B", attrErr.Map)
	assert.Equal(t, model.EC("Q"), attrErr.Value)

	e, ok := g.Edge("B-1", "B-2")
	require.True(t, ok)
	assert.Equal(t, map[string][]model.EC{"A": {"C"}}, e.Observation.ECSource)
	assert.Equal(t, map[string][]model.EC{"A": {"C"}}, e.Observation.ECTarget)
}

func TestAddTranslatedEdges_OrtAcrossDatasets(t *testing.T) {
	rg := relations(t,
		identical("A-1", "B-1"), identical("A-2", "B-2"),
		identical("D-1", "B-1"), identical("D-2", "B-2"),
	)
	g := New()
	ctx := context.Background()

	require.NoError(t, g.AddTranslatedEdges(ctx,
		conn(t, model.ConnEdge{Source: "A-1", Target: "A-2", ECSource: "C", ECTarget: "P"}), rg, "B", Ort))
	require.NoError(t, g.AddTranslatedEdges(ctx,
		conn(t, model.ConnEdge{Source: "D-1", Target: "D-2", ECSource: "N", ECTarget: "X"}), rg, "B", Ort))

	e, ok := g.Edge("B-1", "B-2")
	require.True(t, ok)
	assert.Equal(t, "ort", e.Discipline)
	assert.Equal(t, map[string][]model.EC{"A": {"C"}, "D": {"N"}}, e.Observation.ECSource)
	assert.Equal(t, map[string][]model.EC{"A": {"P"}, "D": {"X"}}, e.Observation.ECTarget)
}

func TestAddTranslatedEdges_DanScores(t *testing.T) {
	rg := relations(t,
		identical("A-1", "B-1"), identical("A-2", "B-2"),
		identical("D-1", "B-1"), identical("D-2", "B-2"),
		identical("E-1", "B-1"), identical("E-2", "B-2"),
	)
	g := New()
	ctx := context.Background()

	for _, e := range []model.ConnEdge{
		{Source: "A-1", Target: "A-2", Degree: "1"},
		{Source: "D-1", Target: "D-2", Degree: "0"},
		{Source: "E-1", Target: "E-2", Degree: "3"},
	} {
		require.NoError(t, g.AddTranslatedEdges(ctx, conn(t, e), rg, "B", Dan))
	}
	g.AddControversyScores()

	e, ok := g.Edge("B-1", "B-2")
	require.True(t, ok)
	assert.Len(t, e.Tally.Bundles[model.BundlesFor], 2)
	assert.Equal(t, []model.MapPair{{Source: "D", Target: "D"}}, e.Tally.Bundles[model.BundlesAgainst])
	assert.InDelta(t, 1.0/3.0, e.Score, 1e-9)
}

func TestAddTranslatedEdges_EmptyContributorLeavesGraphUntouched(t *testing.T) {
	// A-1 reaches B-1 but nothing in A maps back from B-1.
	rg := graph.NewRelationGraph()
	require.NoError(t, rg.AddRelation("A-1", "B-1", model.Identical))
	cg := conn(t, model.ConnEdge{Source: "A-1", Target: "B-2", ECSource: "C", ECTarget: "C"})

	g := New()
	err := g.AddTranslatedEdges(context.Background(), cg, rg, "B", Ort)
	assert.ErrorIs(t, err, model.ErrEmptyContributorList)
	assert.Equal(t, 0, g.Len())
}

func TestUpdates_UnsupportedDiscipline(t *testing.T) {
	_, err := Updates(context.Background(), graph.NewConnGraph(), graph.NewRelationGraph(), "B", Discipline("sum"), zerolog.Nop())
	assert.ErrorIs(t, err, model.ErrUnsupportedDiscipline)
}
