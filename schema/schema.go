// Package schema holds the validation-schema objects the decompose path
// walks: a table schema with named columns and an optional index component,
// a standalone series schema, and single- or multi-level index components.
// These are declaration carriers only; nothing here executes validation.
package schema

import (
	"github.com/framestat/framestat/check"
	"github.com/framestat/framestat/dtype"
)

// Column declares one table column: its semantic type, nullability and
// attached rules. Columns are keyed by name in the parent Table.
type Column struct {
	Type     dtype.Kind
	Nullable bool
	Checks   []*check.Check
}

// Table declares a whole table schema. Index is nil when the table declares
// no index component.
type Table struct {
	Columns map[string]*Column
	Index   IndexComponent
}

// Series declares a standalone labeled array. An empty Name means unnamed.
type Series struct {
	Name     string
	Type     dtype.Kind
	Nullable bool
	Checks   []*check.Check
}

// Index declares a single index level.
type Index struct {
	Name     string
	Type     dtype.Kind
	Nullable bool
	Checks   []*check.Check
}

// MultiIndex declares a multi-level index in level order.
type MultiIndex struct {
	Indexes []*Index
}

// IndexComponent is the common surface of Index and MultiIndex: the ordered
// sequence of single-level components to decompose.
type IndexComponent interface {
	Components() []*Index
}

// Components returns the index itself as a one-element sequence.
func (ix *Index) Components() []*Index {
	if ix == nil {
		return nil
	}
	return []*Index{ix}
}

// Components returns the declared levels in order.
func (m *MultiIndex) Components() []*Index {
	if m == nil {
		return nil
	}
	return m.Indexes
}
