package framestat

import (
	"github.com/framestat/framestat/schema"
)

// TableSchemaStatistics decomposes an already-constructed table schema into
// plain statistics. Declared types and nullability are read off the schema
// directly and declared rules pass through ParseChecks; raw data is never
// touched on this path. ParseChecks consistency errors propagate.
func TableSchemaStatistics(s *schema.Table) (TableStatistics, error) {
	var cols map[string]StatisticsRecord
	for name, col := range s.Columns {
		if col == nil {
			continue
		}
		cs, err := ParseChecks(col.Checks)
		if err != nil {
			return TableStatistics{}, err
		}
		if cols == nil {
			cols = make(map[string]StatisticsRecord, len(s.Columns))
		}
		cols[name] = StatisticsRecord{Type: col.Type, Nullable: col.Nullable, Checks: cs}
	}
	index, err := IndexSchemaStatistics(s.Index)
	if err != nil {
		return TableStatistics{}, err
	}
	return TableStatistics{Columns: cols, Index: index}, nil
}

// SeriesSchemaStatistics decomposes a standalone series schema into one
// record, carrying the declared name.
func SeriesSchemaStatistics(s *schema.Series) (StatisticsRecord, error) {
	cs, err := ParseChecks(s.Checks)
	if err != nil {
		return StatisticsRecord{}, err
	}
	return StatisticsRecord{
		Type:     s.Type,
		Nullable: s.Nullable,
		Checks:   cs,
		Name:     nameOf(s.Name),
	}, nil
}

// IndexSchemaStatistics decomposes an index component into one record per
// level in level order: a MultiIndex contributes every declared level, a
// single Index contributes itself. nil components and empty level sets yield
// nil, never an empty slice.
func IndexSchemaStatistics(ix schema.IndexComponent) ([]StatisticsRecord, error) {
	if ix == nil {
		return nil, nil
	}
	var recs []StatisticsRecord
	for _, c := range ix.Components() {
		if c == nil {
			continue
		}
		cs, err := ParseChecks(c.Checks)
		if err != nil {
			return nil, err
		}
		recs = append(recs, StatisticsRecord{
			Type:     c.Type,
			Nullable: c.Nullable,
			Checks:   cs,
			Name:     nameOf(c.Name),
		})
	}
	return recs, nil
}
