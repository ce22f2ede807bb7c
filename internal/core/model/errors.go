package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContributorList means a target-map region resolved from the
	// relation graph has no contributing source region.
	ErrEmptyContributorList = errors.New("empty contributor list")

	// ErrUnsupportedDiscipline is returned for an unknown merge discipline.
	ErrUnsupportedDiscipline = errors.New("unsupported merge discipline")

	// ErrInvalidAttribute is matched by every *InvalidAttributeError.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrDisciplineMismatch is returned when an edge created under one
	// discipline is updated under the other.
	ErrDisciplineMismatch = errors.New("discipline mismatch")

	ErrMissingRelation = errors.New("missing relation")
	ErrRuleNotFound    = errors.New("no composition rule")
	ErrInvalidRegion   = errors.New("invalid region identifier")
)

// InvalidAttributeError reports an extension code outside the observation
// domain on an evidence-composing update.
type InvalidAttributeError struct {
	Source string
	Target string
	Key    string // EC_Source or EC_Target
	Map    string
	Value  EC
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid attribute on %s->%s: %s[%s] contains %q", e.Source, e.Target, e.Key, e.Map, e.Value)
}

// Is implements errors.Is support
func (e *InvalidAttributeError) Is(target error) bool {
	return target == ErrInvalidAttribute
}
