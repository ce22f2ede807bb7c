package translate

import (
	"fmt"

	"github.com/agenthands/cocograph/internal/core/model"
)

const (
	n = model.ECAbsent
	p = model.ECPartial
	x = model.ECCrossed
	c = model.ECComplete
	u = model.ECUndetermined
	b = model.ECBlank
)

// Column order of every rule row: the contributor's own EC.
var ecColumns = [4]model.EC{n, p, x, c}

type singleKey struct {
	rc model.RC
	ec model.EC
}

type multiKey struct {
	acc model.EC
	rc  model.RC
	ec  model.EC
}

// Single-step rows: one source region accounts for the whole target region.
var singleStepRows = []struct {
	rc  model.RC
	out [4]model.EC
}{
	{model.Contains, [4]model.EC{n, u, u, c}},
	{model.Identical, [4]model.EC{n, p, x, c}},
}

// Multi-step rows: accumulator, contributor RC class, result per contributor EC.
var multiStepRows = []struct {
	acc model.EC
	rc  model.RC
	out [4]model.EC
}{
	{b, model.ContainedIn, [4]model.EC{n, p, x, c}},
	{b, model.Overlaps, [4]model.EC{n, u, u, c}},
	{n, model.ContainedIn, [4]model.EC{n, p, p, p}},
	{n, model.Overlaps, [4]model.EC{n, u, u, p}},
	{u, model.ContainedIn, [4]model.EC{u, p, x, x}},
	{u, model.Overlaps, [4]model.EC{u, u, u, x}},
	{p, model.ContainedIn, [4]model.EC{p, p, p, p}},
	{p, model.Overlaps, [4]model.EC{p, p, p, p}},
	{x, model.ContainedIn, [4]model.EC{p, p, x, x}},
	{x, model.Overlaps, [4]model.EC{p, x, x, x}},
	{c, model.ContainedIn, [4]model.EC{p, p, x, c}},
	{c, model.Overlaps, [4]model.EC{p, x, x, c}},
}

var (
	singleStepRules = make(map[singleKey]model.EC, len(singleStepRows)*len(ecColumns))
	multiStepRules  = make(map[multiKey]model.EC, len(multiStepRows)*len(ecColumns))
)

func init() {
	for _, row := range singleStepRows {
		for i, ec := range ecColumns {
			singleStepRules[singleKey{row.rc, ec}] = row.out[i]
		}
	}
	for _, row := range multiStepRows {
		for i, ec := range ecColumns {
			multiStepRules[multiKey{row.acc, row.rc, ec}] = row.out[i]
		}
	}
}

// SingleStepRule returns the target EC for a lone contributor with the given
// relation and EC.
func SingleStepRule(rc model.RC, ec model.EC) (model.EC, error) {
	out, ok := singleStepRules[singleKey{rc, ec}]
	if !ok {
		return "", fmt.Errorf("%w: single step for RC=%s EC=%q", model.ErrRuleNotFound, rc, ec)
	}
	return out, nil
}

// MultiStepRule advances the multi-step accumulator by one contributor.
func MultiStepRule(acc model.EC, rc model.RC, ec model.EC) (model.EC, error) {
	out, ok := multiStepRules[multiKey{acc, rc, ec}]
	if !ok {
		return "", fmt.Errorf("%w: multi step for accumulator=%s RC=%s EC=%q", model.ErrRuleNotFound, acc, rc, ec)
	}
	return out, nil
}
