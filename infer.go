package framestat

import (
	"fmt"

	"github.com/framestat/framestat/frame"
	"github.com/framestat/framestat/i18n"
)

// InferTableStatistics infers per-column and index statistics from sample
// data. Columns is nil for a zero-column table. Non-fatal findings (an
// unrecognized index type) are reported on the returned Issues; the
// aggregation itself always completes.
func InferTableStatistics(tbl frame.Table) (TableStatistics, Issues) {
	var cols map[string]StatisticsRecord
	for _, name := range tbl.Columns() {
		col, ok := tbl.Column(name)
		if !ok {
			continue
		}
		if cols == nil {
			cols = make(map[string]StatisticsRecord)
		}
		cols[name] = arrayStatistics(col, nil)
	}
	index, iss := InferIndexStatistics(tbl.Index())
	return TableStatistics{Columns: cols, Index: index}, iss
}

// InferSeriesStatistics infers the statistics of a single labeled array. The
// record carries the array's label; an empty label reads as unnamed.
func InferSeriesStatistics(s frame.Series) StatisticsRecord {
	return arrayStatistics(s, nameOf(s.Name()))
}

// InferIndexStatistics infers one record per index level, in level order. A
// MultiIndex yields one record per level, a Series yields a one-element
// sequence and nil yields nil. Any other index value degrades to nil with a
// warning Issue (code unknown_index_type) at /index. The result is nil, never
// an empty slice, when there is nothing to report.
func InferIndexStatistics(index any) ([]StatisticsRecord, Issues) {
	switch ix := index.(type) {
	case nil:
		return nil, nil
	case frame.MultiIndex:
		var recs []StatisticsRecord
		for i := 0; i < ix.NLevels(); i++ {
			level := ix.Level(i)
			recs = append(recs, arrayStatistics(level, nameOf(level.Name())))
		}
		return recs, nil
	case frame.Series:
		return []StatisticsRecord{arrayStatistics(ix, nameOf(ix.Name()))}, nil
	}
	indexType := fmt.Sprintf("%T", index)
	return nil, AppendIssues(nil, IssueAt(
		"/index",
		CodeUnknownIndexType,
		i18n.T(CodeUnknownIndexType, map[string]string{"index_type": indexType}),
		map[string]any{"index_type": indexType},
	))
}
