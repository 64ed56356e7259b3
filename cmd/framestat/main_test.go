package main

import (
	"strings"
	"testing"
	"time"

	framestat "github.com/framestat/framestat"
	"github.com/framestat/framestat/dtype"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"", nil},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"2.5", 2.5},
		{"true", true},
		{"false", false},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"hello", "hello"},
		{"True", "True"},
	}
	for _, c := range cases {
		got := parseCell(c.in)
		if gt, ok := got.(time.Time); ok {
			if !gt.Equal(c.want.(time.Time)) {
				t.Fatalf("parseCell(%q) = %v, want %v", c.in, got, c.want)
			}
			continue
		}
		if got != c.want {
			t.Fatalf("parseCell(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestReadCSVTable(t *testing.T) {
	src := "id,price,note\n1,1.5,a\n2,,b\n3,9.5\n"
	tbl, err := readCSVTable(strings.NewReader(src))
	if err != nil {
		t.Fatalf("readCSVTable: %v", err)
	}
	if got := tbl.Columns(); len(got) != 3 || got[0] != "id" || got[1] != "price" || got[2] != "note" {
		t.Fatalf("columns = %v", got)
	}

	stats, iss := framestat.InferTableStatistics(tbl)
	if iss != nil {
		t.Fatalf("unexpected warnings: %v", iss)
	}
	if k := stats.Columns["id"].Type; k != dtype.Int64 {
		t.Fatalf("id inferred as %v", k)
	}
	price := stats.Columns["price"]
	if price.Type != dtype.Float64 || !price.Nullable {
		t.Fatalf("price = %+v", price)
	}
	note := stats.Columns["note"]
	if note.Type != dtype.String || !note.Nullable {
		t.Fatalf("short rows should pad with missing cells, got %+v", note)
	}
}

func TestReadCSVTable_Empty(t *testing.T) {
	tbl, err := readCSVTable(strings.NewReader(""))
	if err != nil {
		t.Fatalf("readCSVTable: %v", err)
	}
	if cols := tbl.Columns(); len(cols) != 0 {
		t.Fatalf("columns = %v", cols)
	}
}
