package model

import (
	"fmt"
	"strings"
)

// RC is a Relational Code: how the extent of one region relates to the
// extent of a region in another map.
type RC string

const (
	Identical   RC = "I"
	Contains    RC = "L" // source is larger than or equal to the target
	ContainedIn RC = "S" // source is properly smaller than the target
	Overlaps    RC = "O"
)

var rcNames = map[string]RC{
	"i": Identical, "identical": Identical,
	"l": Contains, "contains": Contains,
	"s": ContainedIn, "containedin": ContainedIn, "contained_in": ContainedIn,
	"o": Overlaps, "overlaps": Overlaps,
}

// ParseRC accepts both the curated single-letter codes and the long names.
func ParseRC(s string) (RC, error) {
	rc, ok := rcNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: relational code %q", ErrRuleNotFound, s)
	}
	return rc, nil
}

func (rc RC) String() string {
	switch rc {
	case Identical:
		return "Identical"
	case Contains:
		return "Contains"
	case ContainedIn:
		return "ContainedIn"
	case Overlaps:
		return "Overlaps"
	}
	return string(rc)
}

// EC is an Extension Code describing a connection at one endpoint.
type EC string

const (
	ECAbsent       EC = "N"
	ECPartial      EC = "P"
	ECCrossed      EC = "X"
	ECComplete     EC = "C"
	ECUndetermined EC = "U" // only ever produced by composition
	ECBlank        EC = "B" // multi-step accumulator seed, never stored

	// Additional values accepted by the evidence-composing merge.
	ECUndeterminedPartial EC = "Up"
	ECUndeterminedCrossed EC = "Ux"
	ECAbsentComplete      EC = "Nc"
	ECAbsentPartial       EC = "Np"
	ECAbsentCrossed       EC = "Nx"
)

var observationDomain = map[EC]bool{
	ECUndeterminedPartial: true,
	ECUndeterminedCrossed: true,
	ECAbsent:              true,
	ECAbsentComplete:      true,
	ECAbsentPartial:       true,
	ECAbsentCrossed:       true,
	ECComplete:            true,
	ECPartial:             true,
	ECCrossed:             true,
}

// ParseEC normalizes an extension code. Curated connectivity data contains
// lower-case single letters ("p"), which are upper-cased; two-letter codes
// keep their mixed case.
func ParseEC(s string) EC {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return EC(strings.ToUpper(s))
	}
	return EC(s)
}

// ValidObservation reports whether ec may be stored on a merged edge.
func ValidObservation(ec EC) bool {
	return observationDomain[ec]
}
