// Package dataset reads relation graphs and connectivity datasets from
// YAML files.
//
// A relation file lists coextension relations:
//
//	relations:
//	  - source: PP94-46
//	    target: PHT00-46
//	    rc: I
//	    converse: I
//
// A dataset file lists one study's connectivity edges:
//
//	id: pp94-injections
//	edges:
//	  - source: PP94-46
//	    target: PP94-8A
//	    ec_source: C
//	    ec_target: P
//	    degree: 2
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/core/model"
)

var ErrNoEdges = errors.New("dataset has no edges")

// Dataset is one connectivity dataset ready for translation.
type Dataset struct {
	ID    string
	Graph *graph.ConnGraph
}

// Maps returns the maps the dataset's regions belong to.
func (d *Dataset) Maps() []string {
	return d.Graph.Maps()
}

type relationEntry struct {
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`
	RC       string `yaml:"rc"`
	Converse string `yaml:"converse,omitempty"`
}

type relationFile struct {
	Relations []relationEntry `yaml:"relations"`
}

type edgeEntry struct {
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`
	ECSource string `yaml:"ec_source"`
	ECTarget string `yaml:"ec_target"`
	// Degree is written as a number or a string in curated files.
	Degree any `yaml:"degree,omitempty"`
}

type datasetFile struct {
	ID    string      `yaml:"id"`
	Edges []edgeEntry `yaml:"edges"`
}

// ParseRelations decodes a relation file. path is only used in errors.
func ParseRelations(data []byte, path string) (*graph.RelationGraph, error) {
	var f relationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshaling relations from %s: %w", path, err)
	}

	g := graph.NewRelationGraph()
	for i, r := range f.Relations {
		rc, err := model.ParseRC(r.RC)
		if err != nil {
			return nil, fmt.Errorf("relation %d in %s: %w", i, path, err)
		}
		if err := checkRegions(r.Source, r.Target); err != nil {
			return nil, fmt.Errorf("relation %d in %s: %w", i, path, err)
		}
		if r.Converse == "" {
			err = g.AddRelation(r.Source, r.Target, rc)
		} else {
			err = addSymmetric(g, r, rc)
		}
		if err != nil {
			return nil, fmt.Errorf("relation %d in %s: %w", i, path, err)
		}
	}
	return g, nil
}

func addSymmetric(g *graph.RelationGraph, r relationEntry, rc model.RC) error {
	converse, err := model.ParseRC(r.Converse)
	if err != nil {
		return err
	}
	return g.AddSymmetric(r.Source, r.Target, rc, converse)
}

// LoadRelations reads and decodes a relation file.
func LoadRelations(path string) (*graph.RelationGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read relations file '%s': %w", path, err)
	}
	return ParseRelations(data, path)
}

// Parse decodes a dataset file. A missing id falls back to the file name.
func Parse(data []byte, path string) (*Dataset, error) {
	var f datasetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshaling dataset from %s: %w", path, err)
	}
	if len(f.Edges) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoEdges, path)
	}

	ds := &Dataset{ID: f.ID, Graph: graph.NewConnGraph()}
	if ds.ID == "" {
		ds.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	for i, e := range f.Edges {
		if err := checkRegions(e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("edge %d in %s: %w", i, path, err)
		}
		edge := model.ConnEdge{
			Source:   e.Source,
			Target:   e.Target,
			ECSource: model.EC(e.ECSource),
			ECTarget: model.EC(e.ECTarget),
			Degree:   degree(e.Degree),
		}
		if err := ds.Graph.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("edge %d in %s: %w", i, path, err)
		}
	}
	return ds, nil
}

// checkRegions rejects identifiers without a map prefix; the map is
// derived from the prefix everywhere downstream.
func checkRegions(names ...string) error {
	for _, n := range names {
		if _, err := model.ParseRegion(n); err != nil {
			return err
		}
	}
	return nil
}

func degree(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Load reads and decodes one dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file '%s': %w", path, err)
	}
	return Parse(data, path)
}

// LoadDir loads every .yaml or .yml file under dir, sorted by path.
func LoadDir(dir string) ([]*Dataset, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(paths)

	out := make([]*Dataset, 0, len(paths))
	for _, p := range paths {
		ds, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, nil
}
