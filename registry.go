package framestat

import (
	"github.com/framestat/framestat/check"
	"github.com/framestat/framestat/internal/scalar"
)

// The registry is two fixed dispatch tables, not a rule-type hierarchy.
// Forward entries build one rule from one statistic value; reverse entries
// pull the statistic value back out of a constructed rule. Entries are
// one-to-one in both directions.

type statisticToCheck struct {
	statistic string
	build     func(value any) *check.Check
}

// statisticsToChecks is the forward table. Its order fixes the order of
// constructed rules: min, then max, then levels.
var statisticsToChecks = []statisticToCheck{
	{StatMin, func(v any) *check.Check { return check.GreaterThanOrEqualTo(v) }},
	{StatMax, func(v any) *check.Check { return check.LessThanOrEqualTo(v) }},
	{StatLevels, func(v any) *check.Check {
		vs, _ := v.([]any)
		return check.IsIn(vs)
	}},
}

type checkToStatistic struct {
	statistic string
	extract   func(c *check.Check) (any, bool)
}

// checksToStatistics is the reverse table, keyed by rule kind.
var checksToStatistics = map[string]checkToStatistic{
	check.NameGreaterThanOrEqualTo: {StatMin, func(c *check.Check) (any, bool) {
		return c.Statistic(check.KeyMinValue)
	}},
	check.NameLessThanOrEqualTo: {StatMax, func(c *check.Check) (any, bool) {
		return c.Statistic(check.KeyMaxValue)
	}},
	check.NameIsIn: {StatLevels, func(c *check.Check) (any, bool) {
		return c.Statistic(check.KeyAllowedValues)
	}},
}

// ParseCheckStatistics converts a statistics map into validation rules. One
// rule is constructed per statistic present in both the forward table and the
// input, in forward-table order. nil input yields nil, and so does an input
// contributing no recognized statistic; an empty slice is never returned.
func ParseCheckStatistics(cs CheckStatistics) []*check.Check {
	if cs == nil {
		return nil
	}
	var checks []*check.Check
	for _, ent := range statisticsToChecks {
		v, ok := cs[ent.statistic]
		if !ok {
			continue
		}
		checks = append(checks, ent.build(v))
	}
	return checks
}

// ParseChecks decomposes rules back into a statistics map. Rules of unknown
// kinds are skipped; when two rules map to the same statistic the last one
// wins. After collection, a minimum ordering above a collected maximum is
// rejected with *IncompatibleConstraintsError naming both rules. nil is
// returned, never an empty map, when nothing was collected.
func ParseChecks(checks []*check.Check) (CheckStatistics, error) {
	var (
		cs         CheckStatistics
		minC, maxC *check.Check
	)
	for _, c := range checks {
		if c == nil {
			continue
		}
		ent, ok := checksToStatistics[c.Name()]
		if !ok {
			continue
		}
		v, ok := ent.extract(c)
		if !ok {
			continue
		}
		if cs == nil {
			cs = CheckStatistics{}
		}
		cs[ent.statistic] = v
		switch ent.statistic {
		case StatMin:
			minC = c
		case StatMax:
			maxC = c
		}
	}
	if cs == nil {
		return nil, nil
	}
	mn, hasMin := cs[StatMin]
	mx, hasMax := cs[StatMax]
	if hasMin && hasMax {
		if c, ok := scalar.Compare(mn, mx); ok && c > 0 {
			return nil, &IncompatibleConstraintsError{
				MinCheck: minC,
				MaxCheck: maxC,
				Min:      mn,
				Max:      mx,
			}
		}
	}
	return cs, nil
}
