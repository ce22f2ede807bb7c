package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/cocograph/internal/core/model"
)

func TestResultAddEdge(t *testing.T) {
	r := NewResult()
	origin := model.MapPair{Source: "A", Target: "A"}

	assert.False(t, r.AddEdge("B-1", c, "B-1", c, origin), "self-loop")
	assert.False(t, r.AddEdge("B-1", u, "B-2", c, origin), "undetermined source")
	assert.False(t, r.AddEdge("B-1", c, "B-2", u, origin), "undetermined target")
	assert.True(t, r.AddEdge("B-1", n, "B-2", c, origin))
	assert.True(t, r.AddEdge("B-3", p, "B-4", x, origin))
	assert.True(t, r.AddEdge("B-1", x, "B-2", p, origin))

	assert.Equal(t, 2, r.Len())
	e, ok := r.Edge("B-1", "B-2")
	assert.True(t, ok)
	assert.Equal(t, []model.EC{n, x}, e.ECSource)
	assert.Equal(t, []model.EC{c, p}, e.ECTarget)
	assert.Len(t, e.Origins, 2)

	edges := r.Edges()
	assert.Equal(t, "B-1", edges[0].Source)
	assert.Equal(t, "B-3", edges[1].Source)
}
