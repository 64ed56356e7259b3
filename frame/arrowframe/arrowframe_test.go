package arrowframe_test

import (
	"testing"
	"time"

	"github.com/apache/arrow/go/v8/arrow"
	"github.com/apache/arrow/go/v8/arrow/array"
	"github.com/apache/arrow/go/v8/arrow/memory"

	"github.com/framestat/framestat/frame/arrowframe"
)

func buildInt64(t *testing.T, vals []int64, valid []bool) arrow.Array {
	t.Helper()
	b := array.NewInt64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, valid)
	return b.NewArray()
}

func TestWrapInt64WithNulls(t *testing.T) {
	a := buildInt64(t, []int64{3, 0, 1}, []bool{true, false, true})
	defer a.Release()

	s, err := arrowframe.Wrap("n", a)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if s.Name() != "n" || s.DTypeAlias() != "int64" || s.Len() != 3 {
		t.Fatalf("unexpected series: name=%q alias=%q len=%d", s.Name(), s.DTypeAlias(), s.Len())
	}
	if !s.IsNA(1) || s.IsNA(0) {
		t.Fatalf("null slot not reported as missing")
	}
	if v := s.Value(1); v != nil {
		t.Fatalf("null slot should read as nil, got %v", v)
	}
	mn, ok := s.Min()
	if !ok || mn != int64(1) {
		t.Fatalf("Min = %v ok=%v, want 1", mn, ok)
	}
	mx, ok := s.Max()
	if !ok || mx != int64(3) {
		t.Fatalf("Max = %v ok=%v, want 3", mx, ok)
	}
}

func TestWrapString(t *testing.T) {
	b := array.NewStringBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.Append("b")
	b.AppendNull()
	b.Append("a")
	a := b.NewArray()
	defer a.Release()

	s, err := arrowframe.Wrap("s", a)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if s.DTypeAlias() != "string" {
		t.Fatalf("alias = %q, want string", s.DTypeAlias())
	}
	mn, ok := s.Min()
	if !ok || mn != "a" {
		t.Fatalf("Min = %v ok=%v, want a", mn, ok)
	}
}

func TestWrapTimestamp(t *testing.T) {
	typ := &arrow.TimestampType{Unit: arrow.Second}
	b := array.NewTimestampBuilder(memory.NewGoAllocator(), typ)
	defer b.Release()
	b.Append(arrow.Timestamp(100))
	b.Append(arrow.Timestamp(50))
	a := b.NewArray()
	defer a.Release()

	s, err := arrowframe.Wrap("ts", a)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if s.DTypeAlias() != "datetime" {
		t.Fatalf("alias = %q, want datetime", s.DTypeAlias())
	}
	mn, ok := s.Min()
	if !ok {
		t.Fatalf("Min not ok")
	}
	if want := time.Unix(50, 0).UTC(); !mn.(time.Time).Equal(want) {
		t.Fatalf("Min = %v, want %v", mn, want)
	}
}

func TestFromRecord(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}, nil)

	ib := array.NewInt64Builder(mem)
	defer ib.Release()
	ib.AppendValues([]int64{1, 2}, nil)
	ids := ib.NewArray()
	defer ids.Release()

	fb := array.NewFloat64Builder(mem)
	defer fb.Release()
	fb.AppendValues([]float64{0.5, 0.9}, nil)
	scores := fb.NewArray()
	defer scores.Release()

	rec := array.NewRecord(schema, []arrow.Array{ids, scores}, 2)
	defer rec.Release()

	tbl, err := arrowframe.FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	names := tbl.Columns()
	if len(names) != 2 || names[0] != "id" || names[1] != "score" {
		t.Fatalf("Columns = %v", names)
	}
	col, ok := tbl.Column("score")
	if !ok {
		t.Fatalf("score column missing")
	}
	if mx, ok := col.Max(); !ok || mx != 0.9 {
		t.Fatalf("Max = %v ok=%v, want 0.9", mx, ok)
	}
	if tbl.Index() != nil {
		t.Fatalf("record tables carry no index")
	}
}

func TestWrapDictionaryAsCategorical(t *testing.T) {
	mem := memory.NewGoAllocator()

	db := array.NewStringBuilder(mem)
	defer db.Release()
	db.AppendValues([]string{"a", "b", "c"}, nil)
	dict := db.NewArray()
	defer dict.Release()

	ib := array.NewInt32Builder(mem)
	defer ib.Release()
	// only "a" and "b" observed; "c" stays a declared-but-unseen level
	ib.AppendValues([]int32{0, 1, 0}, []bool{true, true, false})
	indices := ib.NewArray()
	defer indices.Release()

	typ := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}
	d := array.NewDictionaryArray(typ, indices, dict)
	defer d.Release()

	s, err := arrowframe.Wrap("grade", d)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if s.DTypeAlias() != "category" {
		t.Fatalf("alias = %q, want category", s.DTypeAlias())
	}
	levels, ok := s.Categories()
	if !ok || len(levels) != 3 || levels[0] != "a" || levels[2] != "c" {
		t.Fatalf("Categories = %v ok=%v, want declared [a b c]", levels, ok)
	}
	if v := s.Value(1); v != "b" {
		t.Fatalf("Value(1) = %v, want b", v)
	}
	if !s.IsNA(2) {
		t.Fatalf("null index slot should be missing")
	}
}

func TestWrapUnsupported(t *testing.T) {
	b := array.NewFixedSizeListBuilder(memory.NewGoAllocator(), 2, arrow.PrimitiveTypes.Int64)
	defer b.Release()
	vb := b.ValueBuilder().(*array.Int64Builder)
	b.Append(true)
	vb.AppendValues([]int64{1, 2}, nil)
	a := b.NewArray()
	defer a.Release()

	if _, err := arrowframe.Wrap("x", a); err == nil {
		t.Fatalf("expected error for unsupported array type")
	}
}
