package framestat_test

import (
	"reflect"
	"testing"

	framestat "github.com/framestat/framestat"
	"github.com/framestat/framestat/check"
	"github.com/framestat/framestat/dtype"
	"github.com/framestat/framestat/frame"
	"github.com/framestat/framestat/schema"
)

func TestInferTableSchema_DecomposesToInferredStatistics(t *testing.T) {
	tbl := frame.NewTable(
		frame.NewMultiIndex(
			frame.Ints("id", 1, 2, 3),
			frame.Categorical("grade", []any{"x", "y"}, "x", "y", "x"),
		),
		frame.FromValues("price", "float64", []any{1.5, nil, 9.5}),
		frame.Strings("note", "a", "b", "c"),
	)

	draft, iss := framestat.InferTableSchema(tbl)
	if iss != nil {
		t.Fatalf("unexpected warnings: %v", iss)
	}

	got, err := framestat.TableSchemaStatistics(draft)
	if err != nil {
		t.Fatalf("TableSchemaStatistics: %v", err)
	}
	want, _ := framestat.InferTableStatistics(tbl)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decomposed draft diverged from inferred statistics:\n got %#v\nwant %#v", got, want)
	}
}

func TestInferTableSchema_Components(t *testing.T) {
	tbl := frame.NewTable(
		frame.Ints("id", 1, 2, 3),
		frame.FromValues("price", "float64", []any{1.5, nil, 9.5}),
	)
	draft, iss := framestat.InferTableSchema(tbl)
	if iss != nil {
		t.Fatalf("unexpected warnings: %v", iss)
	}

	price := draft.Columns["price"]
	if price == nil || price.Type != dtype.Float64 || !price.Nullable {
		t.Fatalf("price = %+v", price)
	}
	if len(price.Checks) != 2 {
		t.Fatalf("checks = %v", price.Checks)
	}
	if price.Checks[0].Name() != check.NameGreaterThanOrEqualTo ||
		price.Checks[1].Name() != check.NameLessThanOrEqualTo {
		t.Fatalf("check order = %v, %v", price.Checks[0], price.Checks[1])
	}
	if min, _ := price.Checks[0].Statistic(check.KeyMinValue); min != 1.5 {
		t.Fatalf("min parameter = %v", min)
	}

	ix, ok := draft.Index.(*schema.Index)
	if !ok {
		t.Fatalf("single-level index should synthesize *schema.Index, got %T", draft.Index)
	}
	if ix.Name != "id" || ix.Type != dtype.Int64 || ix.Nullable {
		t.Fatalf("index = %+v", ix)
	}
}

func TestInferTableSchema_MultiIndex(t *testing.T) {
	tbl := frame.NewTable(
		frame.NewMultiIndex(
			frame.Ints("id", 1, 2),
			frame.Strings("tag", "a", "b"),
		),
		frame.Ints("v", 1, 2),
	)
	draft, _ := framestat.InferTableSchema(tbl)
	mi, ok := draft.Index.(*schema.MultiIndex)
	if !ok {
		t.Fatalf("two levels should synthesize *schema.MultiIndex, got %T", draft.Index)
	}
	if len(mi.Indexes) != 2 || mi.Indexes[0].Name != "id" || mi.Indexes[1].Name != "tag" {
		t.Fatalf("levels = %+v", mi.Indexes)
	}
	if mi.Indexes[1].Type != dtype.String {
		t.Fatalf("level 1 type = %v", mi.Indexes[1].Type)
	}
}

func TestInferTableSchema_NoIndex(t *testing.T) {
	draft, _ := framestat.InferTableSchema(frame.NewTable(nil, frame.Ints("v", 1)))
	if draft.Index != nil {
		t.Fatalf("indexless table should synthesize nil Index, got %#v", draft.Index)
	}
}

func TestInferTableSchema_UnknownIndexWarns(t *testing.T) {
	draft, iss := framestat.InferTableSchema(frame.NewTable(42, frame.Ints("v", 1)))
	if len(iss) != 1 || iss[0].Code != framestat.CodeUnknownIndexType {
		t.Fatalf("warnings = %v", iss)
	}
	if draft.Index != nil {
		t.Fatalf("unknown index should degrade to nil, got %#v", draft.Index)
	}
	if draft.Columns["v"] == nil {
		t.Fatalf("column synthesis should survive an unknown index")
	}
}

func TestInferSeriesSchema(t *testing.T) {
	s := framestat.InferSeriesSchema(frame.Categorical("grade", []any{"a", "b"}, "a", nil))
	if s.Name != "grade" || s.Type != dtype.Category || !s.Nullable {
		t.Fatalf("series schema = %+v", s)
	}
	if len(s.Checks) != 1 || s.Checks[0].Name() != check.NameIsIn {
		t.Fatalf("checks = %v", s.Checks)
	}
	levels, _ := s.Checks[0].Statistic(check.KeyAllowedValues)
	if !reflect.DeepEqual(levels, []any{"a", "b"}) {
		t.Fatalf("levels = %#v", levels)
	}

	rec, err := framestat.SeriesSchemaStatistics(s)
	if err != nil {
		t.Fatalf("SeriesSchemaStatistics: %v", err)
	}
	want := framestat.InferSeriesStatistics(frame.Categorical("grade", []any{"a", "b"}, "a", nil))
	if !reflect.DeepEqual(rec, want) {
		t.Fatalf("decomposed draft diverged:\n got %+v\nwant %+v", rec, want)
	}
}
