package endgraph

import (
	"fmt"

	"github.com/agenthands/cocograph/internal/core/model"
)

// Discipline selects how an update is folded into an existing edge.
type Discipline string

const (
	// Dan tallies evidence bundles: lists concatenate, numbers add.
	Dan Discipline = "dan"
	// Ort composes extension codes per originating map.
	Ort Discipline = "ort"
)

// ParseDiscipline resolves a discipline name. Only the exact names "dan"
// and "ort" are accepted.
func ParseDiscipline(s string) (Discipline, error) {
	switch d := Discipline(s); d {
	case Dan, Ort:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", model.ErrUnsupportedDiscipline, s)
}

// Attrs is the payload of one update. Dan updates carry a Tally, Ort
// updates an Observation; the other field stays nil.
type Attrs struct {
	Tally       *model.Tally
	Observation *model.Observation
}

// Update is one edge contribution waiting to be merged.
type Update struct {
	Source string
	Target string
	Attrs  Attrs
}

// ForBundle builds a dan update crediting one bundle to key.
func ForBundle(source, target, key string, tag model.MapPair) Update {
	return Update{
		Source: source,
		Target: target,
		Attrs: Attrs{Tally: &model.Tally{
			Bundles: map[string][]model.MapPair{key: {tag}},
		}},
	}
}
