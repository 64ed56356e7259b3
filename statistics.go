package framestat

import (
	"github.com/framestat/framestat/dtype"
	"github.com/framestat/framestat/frame"
)

// Statistic names recognized by the registry.
const (
	StatMin    = "min"
	StatMax    = "max"
	StatLevels = "levels"
)

// CheckStatistics maps statistic names to their values: "min" and "max" hold
// scalar bounds, "levels" holds an ordered []any of category values. nil
// signals that no statistic applies; no operation ever returns an empty map.
type CheckStatistics map[string]any

// StatisticsRecord summarizes one column or index level. Checks is nil when
// no statistic applies. Name is set for series and index records and nil for
// table-column records, which are keyed by column name at the parent level.
type StatisticsRecord struct {
	Type     dtype.Kind      `json:"type" yaml:"type"`
	Nullable bool            `json:"nullable" yaml:"nullable"`
	Checks   CheckStatistics `json:"checks,omitempty" yaml:"checks,omitempty"`
	Name     *string         `json:"name,omitempty" yaml:"name,omitempty"`
}

// TableStatistics summarizes a whole table. Columns is nil for a table with
// zero columns; Index is nil when the index is absent, empty or of an
// unrecognized type.
type TableStatistics struct {
	Columns map[string]StatisticsRecord `json:"columns,omitempty" yaml:"columns,omitempty"`
	Index   []StatisticsRecord          `json:"index,omitempty" yaml:"index,omitempty"`
}

// ResolveType determines the canonical semantic type of an array. The
// declared storage alias wins; when it resolves to the generic Object tag the
// actual element values are inspected (missing entries skipped) so that
// object-backed storage still gets the most granular type available. Unknown
// aliases and unrecognized content resolve to Object; there is no error path.
func ResolveType(arr frame.Array) dtype.Kind {
	if k := dtype.FromAlias(arr.DTypeAlias()); k != dtype.Object {
		return k
	}
	values := make([]any, arr.Len())
	for i := range values {
		values[i] = arr.Value(i)
	}
	return dtype.Infer(values)
}

// ChecksFor computes the statistics applying to an array of the given kind:
// a {"min","max"} range for numeric-like kinds, a {"levels"} set read from
// the declared categories for categoricals, nothing for anything else. The
// result is nil, never an empty map, when no statistic applies; a numeric
// column with no reducible values also yields nil.
func ChecksFor(arr frame.Array, kind dtype.Kind) CheckStatistics {
	switch {
	case kind.NumericLike():
		mn, okMin := arr.Min()
		mx, okMax := arr.Max()
		if !okMin || !okMax {
			return nil
		}
		return CheckStatistics{StatMin: mn, StatMax: mx}
	case kind == dtype.Category:
		levels, ok := arr.Categories()
		if !ok {
			return nil
		}
		return CheckStatistics{StatLevels: levels}
	}
	return nil
}

// arrayStatistics assembles the full record for one array: resolved type,
// nullability (any missing cell) and applicable statistics.
func arrayStatistics(arr frame.Array, name *string) StatisticsRecord {
	kind := ResolveType(arr)
	return StatisticsRecord{
		Type:     kind,
		Nullable: hasMissing(arr),
		Checks:   ChecksFor(arr, kind),
		Name:     name,
	}
}

func hasMissing(arr frame.Array) bool {
	for i := 0; i < arr.Len(); i++ {
		if arr.IsNA(i) {
			return true
		}
	}
	return false
}

func nameOf(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
