// Package frame defines the tabular-data boundary the statistics engine
// consumes: labeled arrays, single- and multi-level indexes, and tables. It
// also ships plain in-memory implementations with typed constructors so
// statistics can be inferred without an external columnar backend; adapters
// for other backends live in subpackages.
//
// Missing cells are represented by untyped nil (and NaN for floats). Inputs
// are treated as read-only: callers must not mutate an array concurrently
// with extraction.
package frame

// Array is the minimal labeled-array surface statistics are computed from.
type Array interface {
	// Len returns the number of cells, including missing ones.
	Len() int
	// Value returns the cell at i, nil when the cell is missing.
	Value(i int) any
	// IsNA reports whether the cell at i is missing.
	IsNA(i int) bool
	// DTypeAlias returns the declared storage-type alias ("int64",
	// "category", "object", ...). Unknown aliases degrade to object.
	DTypeAlias() string
	// Min returns the smallest non-missing value; ok is false when the
	// array has no non-missing values or they do not order.
	Min() (v any, ok bool)
	// Max returns the largest non-missing value under the same rules.
	Max() (v any, ok bool)
	// Categories returns the declared category levels in declared order;
	// ok is false unless the array carries a categorical dimension.
	Categories() (levels []any, ok bool)
}

// Series is an Array with a label.
type Series interface {
	Array
	Name() string
}

// MultiIndex is a multi-level index. Levels iterate in declared order; each
// level is itself a labeled array.
type MultiIndex interface {
	NLevels() int
	Level(i int) Series
}

// Table is a column-ordered table with an optional index.
type Table interface {
	// Columns returns the column names in declared order.
	Columns() []string
	// Column returns the named column.
	Column(name string) (Series, bool)
	// Index returns the table's index: a Series, a MultiIndex, or nil.
	// Unrecognized index values degrade to a warning during inference.
	Index() any
}
