package model

// ConnEdge is one connectivity observation inside a dataset.
type ConnEdge struct {
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	ECSource EC     `json:"ec_source" yaml:"ec_source"`
	ECTarget EC     `json:"ec_target" yaml:"ec_target"`

	// Degree is the reported connection strength. "0" asserts absence; an
	// empty value means the dataset recorded no degree for this edge.
	Degree string `json:"degree,omitempty" yaml:"degree,omitempty"`
}

// RelationEdge is a coextension relation between regions of two maps.
type RelationEdge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	RC     RC     `json:"rc" yaml:"rc"`
}

// MapPair tags a piece of evidence with the maps of the original edge
// that produced it.
type MapPair struct {
	Source string `json:"source_map"`
	Target string `json:"target_map"`
}

// TranslatedEdge accumulates every observation of one target-map edge
// produced during a single translation run. The slices are parallel.
type TranslatedEdge struct {
	Source   string    `json:"source"`
	Target   string    `json:"target"`
	ECSource []EC      `json:"ec_source"`
	ECTarget []EC      `json:"ec_target"`
	Origins  []MapPair `json:"origins"`
}

// Bundle keys used by the additive merge.
const (
	BundlesFor        = "ebunches_for"
	BundlesAgainst    = "ebunches_against"
	BundlesIncomplete = "ebunches_incomplete"
)

// Tally holds additive evidence: lists of evidence bundles and numeric counters.
type Tally struct {
	Bundles map[string][]MapPair `json:"bundles,omitempty"`
	Counts  map[string]float64   `json:"counts,omitempty"`
}

// Observation holds evidence-composing attributes: extension codes per
// endpoint, keyed by the map that originally reported them.
type Observation struct {
	ECSource map[string][]EC `json:"ec_source"`
	ECTarget map[string][]EC `json:"ec_target"`
}

// EndEdge is an edge of the merged result graph. Exactly one of Tally and
// Observation is set, matching Discipline.
type EndEdge struct {
	Source      string       `json:"source"`
	Target      string       `json:"target"`
	Discipline  string       `json:"discipline"`
	Tally       *Tally       `json:"tally,omitempty"`
	Observation *Observation `json:"observation,omitempty"`
	Score       float64      `json:"score"`
}
