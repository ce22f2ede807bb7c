package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/cocograph/internal/core/model"
	"github.com/agenthands/cocograph/internal/dataset"
	"github.com/agenthands/cocograph/internal/driver"
)

func TestLoadRelations(t *testing.T) {
	keys := []string{"source", "target", "rc"}
	mockDriver := &MockDriver{Results: map[string]neo4j.EagerResult{
		driver.GetRelationsQuery: {Records: []*neo4j.Record{
			record(keys, "A-1", "B-1", "S"),
			record(keys, "B-1", "A-1", "L"),
		}},
	}}
	c := newCampaign(t, mockDriver, "ort")

	require.NoError(t, c.LoadRelations(context.Background()))
	assert.Equal(t, 2, c.Relations.Len())
	rc, ok := c.Relations.RC("B-1", "A-1")
	require.True(t, ok)
	assert.Equal(t, model.Contains, rc)

	mockDriver.Results[driver.GetRelationsQuery] = neo4j.EagerResult{Records: []*neo4j.Record{
		record(keys, "A-1", "B-1", "?"),
	}}
	assert.ErrorIs(t, c.LoadRelations(context.Background()), model.ErrRuleNotFound)
}

func TestLoadDataset(t *testing.T) {
	keys := []string{"source", "target", "ec_source", "ec_target", "degree"}
	mockDriver := &MockDriver{Results: map[string]neo4j.EagerResult{
		driver.GetDatasetEdgesQuery: {Records: []*neo4j.Record{
			record(keys, "A-1", "A-2", "C", "p", "2"),
			record(keys, "A-2", "A-1", "N", "N", nil),
		}},
	}}
	c := newCampaign(t, mockDriver, "ort")

	ds, err := c.LoadDataset(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", ds.ID)
	assert.Equal(t, 2, ds.Graph.Len())

	e, ok := ds.Graph.Edge("A-1", "A-2")
	require.True(t, ok)
	assert.Equal(t, model.ECPartial, e.ECTarget)
	assert.Equal(t, "2", e.Degree)
	e, _ = ds.Graph.Edge("A-2", "A-1")
	assert.Empty(t, e.Degree)

	q, ok := mockDriver.find(driver.GetDatasetEdgesQuery)
	require.True(t, ok)
	assert.Equal(t, "a1", q.Params["dataset_id"])

	delete(mockDriver.Results, driver.GetDatasetEdgesQuery)
	_, err = c.LoadDataset(context.Background(), "missing")
	assert.ErrorIs(t, err, dataset.ErrNoEdges)
}

func TestDatasetIDs(t *testing.T) {
	keys := []string{"dataset_id"}
	mockDriver := &MockDriver{Results: map[string]neo4j.EagerResult{
		driver.GetDatasetIDsQuery: {Records: []*neo4j.Record{record(keys, "a1"), record(keys, "d1")}},
	}}
	c := newCampaign(t, mockDriver, "ort")

	ids, err := c.DatasetIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "d1"}, ids)
}

func TestImportDataset(t *testing.T) {
	mockDriver := &MockDriver{}

	ds := newDataset(t, "a1", model.ConnEdge{Source: "A-2", Target: "A-1", ECSource: "C", ECTarget: "P", Degree: "1"})
	require.NoError(t, ImportDataset(context.Background(), mockDriver, ds))

	q, ok := mockDriver.find(driver.SaveConnEdgesQuery)
	require.True(t, ok)
	assert.Equal(t, "a1", q.Params["dataset_id"])
	rows := q.Params["edges"].([]map[string]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "P", rows[0]["ec_target"])
	assert.Equal(t, "1", rows[0]["degree"])

	q, ok = mockDriver.find(driver.SaveRegionsQuery)
	require.True(t, ok)
	assert.Equal(t, []map[string]interface{}{
		{"name": "A-1", "map": "A"},
		{"name": "A-2", "map": "A"},
	}, q.Params["regions"])
}

func TestImportRelations(t *testing.T) {
	mockDriver := &MockDriver{}
	relations := testRelations(t)

	require.NoError(t, ImportRelations(context.Background(), mockDriver, relations))
	q, ok := mockDriver.find(driver.SaveRelationsQuery)
	require.True(t, ok)
	assert.Len(t, q.Params["relations"], relations.Len())
}

func TestSave(t *testing.T) {
	mockDriver := &MockDriver{Results: map[string]neo4j.EagerResult{
		driver.SaveEndEdgesQuery: {Records: []*neo4j.Record{record([]string{"saved"}, int64(1))}},
	}}
	c := newCampaign(t, mockDriver, "dan")
	ctx := context.Background()

	require.NoError(t, c.AddDataset(ctx, newDataset(t, "a1", model.ConnEdge{Source: "A-1", Target: "A-2", Degree: "3"})))
	c.Finalize()

	n, err := c.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	q, ok := mockDriver.find(driver.SaveEndEdgesQuery)
	require.True(t, ok)
	assert.Equal(t, c.ID, q.Params["campaign_id"])
	assert.Equal(t, "B", q.Params["target_map"])

	rows := q.Params["edges"].([]map[string]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "B-1", rows[0]["source"])
	assert.Equal(t, 1.0, rows[0]["score"])

	var ev evidence
	require.NoError(t, json.Unmarshal([]byte(rows[0]["evidence"].(string)), &ev))
	assert.Nil(t, ev.Observation)
	assert.Equal(t, []model.MapPair{{Source: "A", Target: "A"}}, ev.Tally.Bundles[model.BundlesFor])
}

func TestLoadSaved(t *testing.T) {
	keys := []string{"source", "target", "discipline", "score", "evidence"}
	mockDriver := &MockDriver{Results: map[string]neo4j.EagerResult{
		driver.GetEndEdgesQuery: {Records: []*neo4j.Record{
			record(keys, "B-1", "B-2", "ort", 0.0, `{"observation":{"ec_source":{"A":["C"]},"ec_target":{"A":["P"]}}}`),
		}},
	}}
	c := newCampaign(t, mockDriver, "ort")

	edges, err := c.LoadSaved(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "ort", edges[0].Discipline)
	assert.Nil(t, edges[0].Tally)
	assert.Equal(t, map[string][]model.EC{"A": {"P"}}, edges[0].Observation.ECTarget)

	q, _ := mockDriver.find(driver.GetEndEdgesQuery)
	assert.Equal(t, c.ID, q.Params["campaign_id"])
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()

	c := newCampaign(t, nil, "ort")
	assert.ErrorIs(t, c.LoadRelations(ctx), ErrNoDriver)
	_, err := c.Save(ctx)
	assert.ErrorIs(t, err, ErrNoDriver)
	assert.ErrorIs(t, c.Delete(ctx), ErrNoDriver)

	boom := errors.New("connection refused")
	c = newCampaign(t, &MockDriver{Err: boom}, "ort")
	assert.ErrorIs(t, c.LoadRelations(ctx), boom)
	_, err = c.LoadDataset(ctx, "a1")
	assert.ErrorIs(t, err, boom)
	_, err = c.Save(ctx)
	assert.ErrorIs(t, err, boom)
}
