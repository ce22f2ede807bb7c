// Package core runs translation campaigns: many connectivity datasets
// translated into one target map and merged into a single result graph.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/cocograph/internal/catalog"
	"github.com/agenthands/cocograph/internal/config"
	"github.com/agenthands/cocograph/internal/core/endgraph"
	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/dataset"
	"github.com/agenthands/cocograph/internal/driver"
)

var (
	ErrNoDriver    = errors.New("campaign has no graph driver")
	ErrNoRelations = errors.New("campaign has no relation graph")
	ErrNoTargetMap = errors.New("campaign has no target map")
)

// Campaign owns one result graph. Datasets may be translated concurrently
// but are merged one at a time.
type Campaign struct {
	ID         string
	Driver     driver.GraphDriver
	Relations  *graph.RelationGraph
	Catalog    *catalog.Catalog
	TargetMap  string
	Discipline endgraph.Discipline
	Workers    int
	Result     *endgraph.EndGraph
	Log        zerolog.Logger

	UUIDGenerator func() string
}

// NewCampaign builds a campaign from cfg. drv and relations may be nil; a
// nil relation graph must be loaded with LoadRelations before translating.
func NewCampaign(drv driver.GraphDriver, relations *graph.RelationGraph, cfg *config.Config, log zerolog.Logger) (*Campaign, error) {
	d, err := endgraph.ParseDiscipline(cfg.Translation.Discipline)
	if err != nil {
		return nil, err
	}
	if cfg.Translation.TargetMap == "" {
		return nil, ErrNoTargetMap
	}

	c := &Campaign{
		Driver:    drv,
		Relations: relations,
		Catalog: catalog.New(
			cfg.Catalog.AllMaps,
			cfg.Catalog.MappingFailures,
			cfg.Catalog.ConnectivityFailures,
			cfg.Catalog.IntramapOverlaps,
		),
		TargetMap:     cfg.Translation.TargetMap,
		Discipline:    d,
		Workers:       max(cfg.Translation.Workers, 1),
		Result:        endgraph.New(),
		UUIDGenerator: func() string { return uuid.New().String() },
	}
	if err := c.Catalog.EligibleTarget(c.TargetMap); err != nil {
		return nil, err
	}
	c.ID = c.UUIDGenerator()
	c.Log = log.With().Str("campaign_id", c.ID).Str("target_map", c.TargetMap).Logger()
	c.Result.Log = c.Log
	return c, nil
}

// Check returns nil when every map ds reports in may be translated.
func (c *Campaign) Check(ds *dataset.Dataset) error {
	if c.Catalog == nil {
		return nil
	}
	for _, m := range ds.Maps() {
		if err := c.Catalog.Eligible(m); err != nil {
			return fmt.Errorf("dataset %s: %w", ds.ID, err)
		}
	}
	return nil
}

// AddDataset translates one dataset and merges it into the result.
func (c *Campaign) AddDataset(ctx context.Context, ds *dataset.Dataset) error {
	if err := c.Check(ds); err != nil {
		return err
	}
	updates, err := c.translate(ctx, ds)
	if err != nil {
		return err
	}
	return c.merge(ds, updates)
}

// AddDatasets translates datasets on up to Workers goroutines, then merges
// them in input order. Ineligible datasets are skipped. A translation
// failure cancels the batch before anything is merged; merge failures of
// single edges are collected and returned after every dataset is merged.
func (c *Campaign) AddDatasets(ctx context.Context, sets []*dataset.Dataset) error {
	updates := make([][]endgraph.Update, len(sets))
	skipped := make([]bool, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Workers, 1))
	for i, ds := range sets {
		if err := c.Check(ds); err != nil {
			c.Log.Warn().Err(err).Msg("skipping dataset")
			skipped[i] = true
			continue
		}
		g.Go(func() error {
			u, err := c.translate(gctx, ds)
			if err != nil {
				return err
			}
			updates[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error
	for i, ds := range sets {
		if skipped[i] {
			continue
		}
		if err := c.merge(ds, updates[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Campaign) translate(ctx context.Context, ds *dataset.Dataset) ([]endgraph.Update, error) {
	if c.Relations == nil {
		return nil, ErrNoRelations
	}
	log := c.Log.With().Str("dataset", ds.ID).Logger()
	updates, err := endgraph.Updates(ctx, ds.Graph, c.Relations, c.TargetMap, c.Discipline, log)
	if err != nil {
		return nil, fmt.Errorf("translating dataset %s: %w", ds.ID, err)
	}
	log.Debug().Int("edges", ds.Graph.Len()).Int("updates", len(updates)).Msg("translated dataset")
	return updates, nil
}

func (c *Campaign) merge(ds *dataset.Dataset, updates []endgraph.Update) error {
	if err := c.Result.AddEdgesFrom(updates, c.Discipline); err != nil {
		return fmt.Errorf("merging dataset %s: %w", ds.ID, err)
	}
	c.Log.Info().Str("dataset", ds.ID).Int("result_edges", c.Result.Len()).Msg("merged dataset")
	return nil
}

// Finalize scores every edge of the result.
func (c *Campaign) Finalize() {
	c.Result.AddControversyScores()
}
