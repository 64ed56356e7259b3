// Package arrowframe adapts Apache Arrow arrays and records to the frame
// interfaces so statistics can be inferred straight off columnar data.
package arrowframe

import (
	"fmt"
	"time"

	"github.com/apache/arrow/go/v8/arrow"
	"github.com/apache/arrow/go/v8/arrow/array"

	"github.com/framestat/framestat/frame"
	"github.com/framestat/framestat/internal/scalar"
)

// column adapts one Arrow array to frame.Series. The wrapped array must
// outlive the column; no retain/release management happens here.
type column struct {
	name  string
	arr   arrow.Array
	alias string
	get   func(i int) any
	cats  []any
}

// Wrap adapts an Arrow array into a labeled frame.Series. Supported arrays:
// booleans, the signed and unsigned integer families, float32/64, strings,
// timestamps, and dictionary-encoded arrays, which surface as categoricals
// whose declared levels are the dictionary values. Anything else is rejected.
func Wrap(name string, a arrow.Array) (frame.Series, error) {
	if d, ok := a.(*array.Dictionary); ok {
		return wrapDictionary(name, d)
	}
	alias, get, err := accessor(a)
	if err != nil {
		return nil, err
	}
	return &column{name: name, arr: a, alias: alias, get: get}, nil
}

// FromRecord wraps every column of an Arrow record into a table with no
// index.
func FromRecord(rec arrow.Record) (frame.Table, error) {
	cols := make([]frame.Series, 0, rec.NumCols())
	for i := 0; i < int(rec.NumCols()); i++ {
		s, err := Wrap(rec.ColumnName(i), rec.Column(i))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", rec.ColumnName(i), err)
		}
		cols = append(cols, s)
	}
	return frame.NewTable(nil, cols...), nil
}

// wrapDictionary surfaces a dictionary-encoded array as a categorical: the
// dictionary values become the declared levels and cells decode through the
// index array.
func wrapDictionary(name string, d *array.Dictionary) (frame.Series, error) {
	dict := d.Dictionary()
	_, get, err := accessor(dict)
	if err != nil {
		return nil, err
	}
	levels := make([]any, 0, dict.Len())
	for i := 0; i < dict.Len(); i++ {
		if dict.IsNull(i) {
			continue
		}
		levels = append(levels, get(i))
	}
	return &column{
		name:  name,
		arr:   d,
		alias: "category",
		get:   func(i int) any { return get(d.GetValueIndex(i)) },
		cats:  levels,
	}, nil
}

// accessor resolves the storage alias and a typed cell getter for the
// concrete array type.
func accessor(a arrow.Array) (string, func(i int) any, error) {
	switch arr := a.(type) {
	case *array.Boolean:
		return "bool", func(i int) any { return arr.Value(i) }, nil
	case *array.Int8:
		return "int8", func(i int) any { return arr.Value(i) }, nil
	case *array.Int16:
		return "int16", func(i int) any { return arr.Value(i) }, nil
	case *array.Int32:
		return "int32", func(i int) any { return arr.Value(i) }, nil
	case *array.Int64:
		return "int64", func(i int) any { return arr.Value(i) }, nil
	case *array.Uint8:
		return "uint8", func(i int) any { return arr.Value(i) }, nil
	case *array.Uint16:
		return "uint16", func(i int) any { return arr.Value(i) }, nil
	case *array.Uint32:
		return "uint32", func(i int) any { return arr.Value(i) }, nil
	case *array.Uint64:
		return "uint64", func(i int) any { return arr.Value(i) }, nil
	case *array.Float32:
		return "float32", func(i int) any { return arr.Value(i) }, nil
	case *array.Float64:
		return "float64", func(i int) any { return arr.Value(i) }, nil
	case *array.String:
		return "string", func(i int) any { return arr.Value(i) }, nil
	case *array.Timestamp:
		unit := arrow.Nanosecond
		if tt, ok := a.DataType().(*arrow.TimestampType); ok {
			unit = tt.Unit
		}
		return "datetime", func(i int) any {
			return timestampToTime(int64(arr.Value(i)), unit)
		}, nil
	}
	return "", nil, fmt.Errorf("arrowframe: unsupported arrow array type %s", a.DataType().Name())
}

func timestampToTime(v int64, unit arrow.TimeUnit) time.Time {
	switch unit {
	case arrow.Second:
		return time.Unix(v, 0).UTC()
	case arrow.Millisecond:
		return time.UnixMilli(v).UTC()
	case arrow.Microsecond:
		return time.UnixMicro(v).UTC()
	}
	return time.Unix(0, v).UTC()
}

func (c *column) Name() string       { return c.name }
func (c *column) Len() int           { return c.arr.Len() }
func (c *column) DTypeAlias() string { return c.alias }
func (c *column) IsNA(i int) bool    { return c.arr.IsNull(i) }

func (c *column) Value(i int) any {
	if c.arr.IsNull(i) {
		return nil
	}
	return c.get(i)
}

func (c *column) Min() (any, bool) { return c.reduce(-1) }
func (c *column) Max() (any, bool) { return c.reduce(1) }

func (c *column) reduce(dir int) (any, bool) {
	var cur any
	found := false
	for i := 0; i < c.arr.Len(); i++ {
		if c.arr.IsNull(i) {
			continue
		}
		v := c.get(i)
		if scalar.IsMissing(v) {
			continue
		}
		if !found {
			cur, found = v, true
			continue
		}
		cmp, ok := scalar.Compare(v, cur)
		if !ok {
			return nil, false
		}
		if cmp == dir {
			cur = v
		}
	}
	return cur, found
}

// Categories reports the declared levels of a dictionary-backed column and
// absence for every other array.
func (c *column) Categories() ([]any, bool) {
	if c.cats == nil {
		return nil, false
	}
	return c.cats, true
}
