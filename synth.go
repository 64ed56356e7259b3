package framestat

import (
	"github.com/framestat/framestat/frame"
	"github.com/framestat/framestat/schema"
)

// InferTableSchema derives a draft validation schema from sample data: every
// inferred column and index record becomes a schema component whose checks
// come from the forward registry. The Issues carry the same warnings as
// InferTableStatistics. Decomposing the result reproduces the inferred
// statistics exactly.
func InferTableSchema(tbl frame.Table) (*schema.Table, Issues) {
	stats, iss := InferTableStatistics(tbl)
	var cols map[string]*schema.Column
	for name, rec := range stats.Columns {
		if cols == nil {
			cols = make(map[string]*schema.Column, len(stats.Columns))
		}
		cols[name] = &schema.Column{
			Type:     rec.Type,
			Nullable: rec.Nullable,
			Checks:   ParseCheckStatistics(rec.Checks),
		}
	}
	return &schema.Table{Columns: cols, Index: indexFromRecords(stats.Index)}, iss
}

// InferSeriesSchema derives a draft series schema from a single labeled
// array.
func InferSeriesSchema(s frame.Series) *schema.Series {
	rec := InferSeriesStatistics(s)
	return &schema.Series{
		Name:     stringOf(rec.Name),
		Type:     rec.Type,
		Nullable: rec.Nullable,
		Checks:   ParseCheckStatistics(rec.Checks),
	}
}

// indexFromRecords converts inferred index records into a schema component:
// nil for none, a single Index for one level, a MultiIndex otherwise.
func indexFromRecords(recs []StatisticsRecord) schema.IndexComponent {
	if len(recs) == 0 {
		return nil
	}
	comps := make([]*schema.Index, 0, len(recs))
	for _, rec := range recs {
		comps = append(comps, &schema.Index{
			Name:     stringOf(rec.Name),
			Type:     rec.Type,
			Nullable: rec.Nullable,
			Checks:   ParseCheckStatistics(rec.Checks),
		})
	}
	if len(comps) == 1 {
		return comps[0]
	}
	return &schema.MultiIndex{Indexes: comps}
}
