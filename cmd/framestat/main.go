package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	framestat "github.com/framestat/framestat"
	"github.com/framestat/framestat/codec"
	"github.com/framestat/framestat/frame"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "infer":
		inferCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "framestat CLI\n\nUsage:\n  framestat infer [-f csv] [-format json|yaml] [-o out] [file]\n\nNotes:\n  - Reads a headered table from file (or stdin), infers per-column\n    statistics and renders them as a JSON or YAML document.\n  - Non-fatal findings are printed to stderr as warnings.")
}

func inferCmd(args []string) {
	fs := flag.NewFlagSet("infer", flag.ExitOnError)
	var inFormat string
	var outFormat string
	var out string
	fs.StringVar(&inFormat, "f", "csv", "input format (only csv)")
	fs.StringVar(&outFormat, "format", "yaml", "output format: json or yaml")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if inFormat != "csv" {
		fatalf("unsupported input format %q", inFormat)
	}

	in := io.Reader(os.Stdin)
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	tbl, err := readCSVTable(in)
	if err != nil {
		fatalf("read csv: %v", err)
	}

	stats, iss := framestat.InferTableStatistics(tbl)
	for _, it := range iss {
		fmt.Fprintf(os.Stderr, "warning: %s at %s: %s\n", it.Code, it.Path, it.Message)
	}

	var doc []byte
	switch outFormat {
	case "json":
		doc, err = codec.EncodeJSON(stats)
	case "yaml", "yml":
		doc, err = codec.EncodeYAML(stats)
	default:
		fatalf("unsupported output format %q", outFormat)
	}
	if err != nil {
		fatalf("encode %s: %v", outFormat, err)
	}
	if len(doc) == 0 || doc[len(doc)-1] != '\n' {
		doc = append(doc, '\n')
	}

	if out == "" {
		if _, err := os.Stdout.Write(doc); err != nil {
			fatalf("write output: %v", err)
		}
		return
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

// readCSVTable decodes a headered CSV stream into an in-memory table. The
// header row names the columns; cells parse into the narrowest scalar they
// read as, and content inference resolves each column's semantic type from
// there. Empty cells are missing. Rows shorter than the header pad with
// missing cells; extra cells are dropped.
func readCSVTable(r io.Reader) (frame.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return frame.NewTable(nil), nil
	}
	if err != nil {
		return nil, err
	}

	cells := make([][]any, len(header))
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range header {
			var v any
			if i < len(row) {
				v = parseCell(row[i])
			}
			cells[i] = append(cells[i], v)
		}
	}

	cols := make([]frame.Series, 0, len(header))
	for i, name := range header {
		cols = append(cols, frame.FromValues(name, "object", cells[i]))
	}
	return frame.NewTable(nil, cols...), nil
}

// parseCell reads one CSV cell into a typed scalar: empty is missing, then
// int64, float64, bool ("true"/"false" only), RFC 3339 or date-only
// datetimes, and finally the raw string.
func parseCell(s string) any {
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts
	}
	return s
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
