package frame

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/framestat/framestat/internal/scalar"
)

// memSeries is the in-memory Series implementation behind the typed
// constructors.
type memSeries struct {
	name   string
	alias  string
	values []any
	cats   []any
}

// FromValues builds a labeled array from raw cells. nil (and NaN float)
// entries are missing. The alias declares the storage type; use "object" for
// untyped content and let inference resolve it.
func FromValues(name, alias string, values []any) Series {
	vs := make([]any, len(values))
	copy(vs, values)
	return &memSeries{name: name, alias: alias, values: vs}
}

// Ints builds an int64 array with no missing cells.
func Ints(name string, vs ...int64) Series {
	return &memSeries{name: name, alias: "int64", values: box(vs)}
}

// Floats builds a float64 array; NaN entries are missing.
func Floats(name string, vs ...float64) Series {
	return &memSeries{name: name, alias: "float64", values: box(vs)}
}

// Strings builds a string array with no missing cells.
func Strings(name string, vs ...string) Series {
	return &memSeries{name: name, alias: "string", values: box(vs)}
}

// Bools builds a bool array with no missing cells.
func Bools(name string, vs ...bool) Series {
	return &memSeries{name: name, alias: "bool", values: box(vs)}
}

// Times builds a datetime array with no missing cells.
func Times(name string, vs ...time.Time) Series {
	return &memSeries{name: name, alias: "datetime", values: box(vs)}
}

// Durations builds a timedelta array with no missing cells.
func Durations(name string, vs ...time.Duration) Series {
	return &memSeries{name: name, alias: "timedelta", values: box(vs)}
}

// Decimals builds a decimal array with no missing cells.
func Decimals(name string, vs ...decimal.Decimal) Series {
	return &memSeries{name: name, alias: "decimal", values: box(vs)}
}

// Objects builds an object array from arbitrary cells; nil entries are
// missing.
func Objects(name string, vs ...any) Series {
	return FromValues(name, "object", vs)
}

// Categorical builds a categorical array with an explicitly declared level
// set. The declared levels, not the observed values, drive the levels
// statistic.
func Categorical(name string, categories []any, values ...any) Series {
	cs := make([]any, len(categories))
	copy(cs, categories)
	vs := make([]any, len(values))
	copy(vs, values)
	return &memSeries{name: name, alias: "category", values: vs, cats: cs}
}

func box[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func (s *memSeries) Name() string       { return s.name }
func (s *memSeries) Len() int           { return len(s.values) }
func (s *memSeries) DTypeAlias() string { return s.alias }

func (s *memSeries) Value(i int) any {
	v := s.values[i]
	if scalar.IsMissing(v) {
		return nil
	}
	return v
}

func (s *memSeries) IsNA(i int) bool { return scalar.IsMissing(s.values[i]) }

func (s *memSeries) Min() (any, bool) { return s.reduce(-1) }
func (s *memSeries) Max() (any, bool) { return s.reduce(1) }

// reduce scans for the extreme value in the given direction, skipping
// missing cells. It gives up when a pair of cells does not order.
func (s *memSeries) reduce(dir int) (any, bool) {
	var cur any
	found := false
	for _, v := range s.values {
		if scalar.IsMissing(v) {
			continue
		}
		if !found {
			cur, found = v, true
			continue
		}
		c, ok := scalar.Compare(v, cur)
		if !ok {
			return nil, false
		}
		if c == dir {
			cur = v
		}
	}
	return cur, found
}

func (s *memSeries) Categories() ([]any, bool) {
	if s.cats == nil {
		return nil, false
	}
	return s.cats, true
}
