// Package codec serializes statistics documents for inspection, diffing and
// storage: JSON via goccy/go-json and YAML via gopkg.in/yaml.v3. Every
// Encode/Decode pair preserves the absence discipline of the records: nil
// checks, columns, index and name members are omitted on the wire and come
// back nil, never as empty containers.
package codec

import (
	framestat "github.com/framestat/framestat"
	"github.com/framestat/framestat/dtype"
	"github.com/framestat/framestat/i18n"
)

// Document is the set of statistics documents the codecs carry.
type Document interface {
	framestat.TableStatistics | framestat.StatisticsRecord
}

// tableDoc and recordDoc mirror the statistics types on the wire. Kinds
// travel as their canonical alias strings.
type tableDoc struct {
	Columns map[string]recordDoc `json:"columns,omitempty" yaml:"columns,omitempty"`
	Index   []recordDoc          `json:"index,omitempty" yaml:"index,omitempty"`
}

type recordDoc struct {
	Type     string         `json:"type" yaml:"type"`
	Nullable bool           `json:"nullable" yaml:"nullable"`
	Checks   map[string]any `json:"checks,omitempty" yaml:"checks,omitempty"`
	Name     *string        `json:"name,omitempty" yaml:"name,omitempty"`
}

func toWire[D Document](doc D) any {
	switch d := any(doc).(type) {
	case framestat.TableStatistics:
		return tableToWire(d)
	case framestat.StatisticsRecord:
		return recordToWire(d)
	}
	return nil // unreachable: Document admits no other type
}

func tableToWire(ts framestat.TableStatistics) tableDoc {
	var w tableDoc
	if ts.Columns != nil {
		w.Columns = make(map[string]recordDoc, len(ts.Columns))
		for name, rec := range ts.Columns {
			w.Columns[name] = recordToWire(rec)
		}
	}
	if ts.Index != nil {
		w.Index = make([]recordDoc, 0, len(ts.Index))
		for _, rec := range ts.Index {
			w.Index = append(w.Index, recordToWire(rec))
		}
	}
	return w
}

func recordToWire(rec framestat.StatisticsRecord) recordDoc {
	var name *string
	if rec.Name != nil {
		n := *rec.Name
		name = &n
	}
	return recordDoc{
		Type:     rec.Type.String(),
		Nullable: rec.Nullable,
		Checks:   rec.Checks,
		Name:     name,
	}
}

// tableFromWire normalizes empty wire containers back to nil so a decoded
// document obeys the same absence discipline as an inferred one.
func tableFromWire(w tableDoc) framestat.TableStatistics {
	var ts framestat.TableStatistics
	if len(w.Columns) > 0 {
		ts.Columns = make(map[string]framestat.StatisticsRecord, len(w.Columns))
		for name, rec := range w.Columns {
			ts.Columns[name] = recordFromWire(rec)
		}
	}
	if len(w.Index) > 0 {
		ts.Index = make([]framestat.StatisticsRecord, 0, len(w.Index))
		for _, rec := range w.Index {
			ts.Index = append(ts.Index, recordFromWire(rec))
		}
	}
	return ts
}

func recordFromWire(w recordDoc) framestat.StatisticsRecord {
	rec := framestat.StatisticsRecord{
		Type:     dtype.FromAlias(w.Type),
		Nullable: w.Nullable,
		Name:     w.Name,
	}
	if len(w.Checks) > 0 {
		rec.Checks = framestat.CheckStatistics(w.Checks)
	}
	return rec
}

func decodeIssues(format string, err error) error {
	return framestat.Issues{{
		Path:    "/",
		Code:    framestat.CodeDecodeError,
		Message: i18n.T(framestat.CodeDecodeError, map[string]string{"format": format}),
		Cause:   err,
		Params:  map[string]any{"format": format},
	}}
}
