package framestat

// Package framestat provides:
//
// - Statistical-constraint inference over labeled tabular data (tables, series, single- and multi-level indexes)
// - A fixed bidirectional registry between the statistics vocabulary {min, max, levels} and validation rules
// - Schema decomposition back to plain statistics, with a min>max consistency check
// - A stable diagnostics model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put cell-value mechanics under internal/.
// - Place collaborators under frame/, dtype/, check/ and schema/; codecs under codec/; the CLI under cmd/framestat.
// - Return absence as nil, never as an empty map or slice; warnings travel on an explicit Issues value, not a side channel.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  stats, warns := framestat.InferTableStatistics(tbl)
//  draft, warns := framestat.InferTableSchema(tbl)
//  stats2, err := framestat.TableSchemaStatistics(draft)
//
//  doc, err := codec.EncodeYAML(stats)
//
