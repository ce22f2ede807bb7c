package core

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/core/model"
	"github.com/agenthands/cocograph/internal/dataset"
	"github.com/agenthands/cocograph/internal/driver"
)

// evidence is the JSON stored on a TRANSLATED relationship.
type evidence struct {
	Tally       *model.Tally       `json:"tally,omitempty"`
	Observation *model.Observation `json:"observation,omitempty"`
}

func (c *Campaign) graphDriver() (driver.GraphDriver, error) {
	if c.Driver == nil {
		return nil, ErrNoDriver
	}
	return c.Driver, nil
}

// LoadRelations replaces the campaign's relation graph with the one
// stored in Memgraph.
func (c *Campaign) LoadRelations(ctx context.Context) error {
	d, err := c.graphDriver()
	if err != nil {
		return err
	}
	res, err := d.ExecuteQuery(ctx, driver.GetRelationsQuery, nil)
	if err != nil {
		return fmt.Errorf("loading relations: %w", err)
	}

	g := graph.NewRelationGraph()
	for _, rec := range res.Records {
		rc, err := model.ParseRC(stringValue(rec, "rc"))
		if err != nil {
			return fmt.Errorf("loading relations: %w", err)
		}
		if err := g.AddRelation(stringValue(rec, "source"), stringValue(rec, "target"), rc); err != nil {
			return fmt.Errorf("loading relations: %w", err)
		}
	}
	c.Relations = g
	c.Log.Info().Int("relations", g.Len()).Msg("loaded relation graph")
	return nil
}

// LoadDataset reads the connectivity edges stored under id.
func (c *Campaign) LoadDataset(ctx context.Context, id string) (*dataset.Dataset, error) {
	d, err := c.graphDriver()
	if err != nil {
		return nil, err
	}
	res, err := d.ExecuteQuery(ctx, driver.GetDatasetEdgesQuery, map[string]interface{}{"dataset_id": id})
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", id, err)
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("%w: %s", dataset.ErrNoEdges, id)
	}

	ds := &dataset.Dataset{ID: id, Graph: graph.NewConnGraph()}
	for _, rec := range res.Records {
		e := model.ConnEdge{
			Source:   stringValue(rec, "source"),
			Target:   stringValue(rec, "target"),
			ECSource: model.EC(stringValue(rec, "ec_source")),
			ECTarget: model.EC(stringValue(rec, "ec_target")),
			Degree:   stringValue(rec, "degree"),
		}
		if err := ds.Graph.AddEdge(e); err != nil {
			return nil, fmt.Errorf("loading dataset %s: %w", id, err)
		}
	}
	return ds, nil
}

// DatasetIDs lists every dataset stored in Memgraph.
func (c *Campaign) DatasetIDs(ctx context.Context) ([]string, error) {
	d, err := c.graphDriver()
	if err != nil {
		return nil, err
	}
	res, err := d.ExecuteQuery(ctx, driver.GetDatasetIDsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	ids := make([]string, 0, len(res.Records))
	for _, rec := range res.Records {
		ids = append(ids, stringValue(rec, "dataset_id"))
	}
	return ids, nil
}

// ImportRelations writes a relation graph to Memgraph.
func ImportRelations(ctx context.Context, d driver.GraphDriver, g *graph.RelationGraph) error {
	rels := g.Relations()
	rows := make([]map[string]interface{}, 0, len(rels))
	regions := make(map[string]bool)
	for _, r := range rels {
		rows = append(rows, map[string]interface{}{
			"source": r.Source,
			"target": r.Target,
			"rc":     string(r.RC),
		})
		regions[r.Source] = true
		regions[r.Target] = true
	}
	if _, err := d.ExecuteQuery(ctx, driver.SaveRelationsQuery, map[string]interface{}{"relations": rows}); err != nil {
		return fmt.Errorf("saving relations: %w", err)
	}
	return saveRegions(ctx, d, keys(regions))
}

// ImportDataset writes a dataset's connectivity edges to Memgraph.
func ImportDataset(ctx context.Context, d driver.GraphDriver, ds *dataset.Dataset) error {
	edges := ds.Graph.Edges()
	rows := make([]map[string]interface{}, 0, len(edges))
	regions := make(map[string]bool)
	for _, e := range edges {
		rows = append(rows, map[string]interface{}{
			"source":    e.Source,
			"target":    e.Target,
			"ec_source": string(e.ECSource),
			"ec_target": string(e.ECTarget),
			"degree":    e.Degree,
		})
		regions[e.Source] = true
		regions[e.Target] = true
	}
	params := map[string]interface{}{"dataset_id": ds.ID, "edges": rows}
	if _, err := d.ExecuteQuery(ctx, driver.SaveConnEdgesQuery, params); err != nil {
		return fmt.Errorf("saving dataset %s: %w", ds.ID, err)
	}
	return saveRegions(ctx, d, keys(regions))
}

// Save writes the result graph under the campaign ID and returns the
// number of edges written.
func (c *Campaign) Save(ctx context.Context) (int, error) {
	d, err := c.graphDriver()
	if err != nil {
		return 0, err
	}
	if err := saveRegions(ctx, d, c.Result.Regions()); err != nil {
		return 0, err
	}

	edges := c.Result.Edges()
	rows := make([]map[string]interface{}, 0, len(edges))
	for _, e := range edges {
		data, err := json.Marshal(evidence{Tally: e.Tally, Observation: e.Observation})
		if err != nil {
			return 0, fmt.Errorf("encoding evidence for %s->%s: %w", e.Source, e.Target, err)
		}
		rows = append(rows, map[string]interface{}{
			"source":     e.Source,
			"target":     e.Target,
			"discipline": e.Discipline,
			"score":      e.Score,
			"evidence":   string(data),
		})
	}

	params := map[string]interface{}{
		"campaign_id": c.ID,
		"target_map":  c.TargetMap,
		"edges":       rows,
	}
	res, err := d.ExecuteQuery(ctx, driver.SaveEndEdgesQuery, params)
	if err != nil {
		return 0, fmt.Errorf("saving result edges: %w", err)
	}

	saved := len(rows)
	if len(res.Records) > 0 {
		if v, ok := res.Records[0].Get("saved"); ok {
			if n, ok := v.(int64); ok {
				saved = int(n)
			}
		}
	}
	c.Log.Info().Int("edges", saved).Msg("saved result graph")
	return saved, nil
}

// LoadSaved reads back the result edges stored under the campaign ID.
func (c *Campaign) LoadSaved(ctx context.Context) ([]model.EndEdge, error) {
	d, err := c.graphDriver()
	if err != nil {
		return nil, err
	}
	res, err := d.ExecuteQuery(ctx, driver.GetEndEdgesQuery, map[string]interface{}{"campaign_id": c.ID})
	if err != nil {
		return nil, fmt.Errorf("loading result edges: %w", err)
	}

	out := make([]model.EndEdge, 0, len(res.Records))
	for _, rec := range res.Records {
		e := model.EndEdge{
			Source:     stringValue(rec, "source"),
			Target:     stringValue(rec, "target"),
			Discipline: stringValue(rec, "discipline"),
		}
		if v, ok := rec.Get("score"); ok {
			e.Score, _ = v.(float64)
		}
		var ev evidence
		if raw := stringValue(rec, "evidence"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &ev); err != nil {
				return nil, fmt.Errorf("decoding evidence for %s->%s: %w", e.Source, e.Target, err)
			}
		}
		e.Tally, e.Observation = ev.Tally, ev.Observation
		out = append(out, e)
	}
	return out, nil
}

// Delete removes the campaign's saved result edges.
func (c *Campaign) Delete(ctx context.Context) error {
	d, err := c.graphDriver()
	if err != nil {
		return err
	}
	_, err = d.ExecuteQuery(ctx, driver.DeleteCampaignQuery, map[string]interface{}{"campaign_id": c.ID})
	return err
}

func saveRegions(ctx context.Context, d driver.GraphDriver, names []string) error {
	rows := make([]map[string]interface{}, 0, len(names))
	for _, n := range names {
		rows = append(rows, map[string]interface{}{"name": n, "map": model.MapOf(n)})
	}
	if _, err := d.ExecuteQuery(ctx, driver.SaveRegionsQuery, map[string]interface{}{"regions": rows}); err != nil {
		return fmt.Errorf("saving regions: %w", err)
	}
	return nil
}

func stringValue(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func keys(set map[string]bool) []string {
	return slices.Sorted(maps.Keys(set))
}
