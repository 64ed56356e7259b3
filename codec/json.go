package codec

import (
	gojson "github.com/goccy/go-json"

	framestat "github.com/framestat/framestat"
)

// EncodeJSON renders a statistics document as JSON. Absent members are
// omitted, never emitted as empty containers.
func EncodeJSON[D Document](doc D) ([]byte, error) {
	return gojson.Marshal(toWire(doc))
}

// DecodeJSON parses a JSON statistics document. Malformed input is reported
// as Issues with code decode_error; empty wire containers decode to nil.
// Numbers decode per go-json defaults (float64).
func DecodeJSON[D Document](data []byte) (D, error) {
	var zero D
	switch any(zero).(type) {
	case framestat.TableStatistics:
		var w tableDoc
		if err := gojson.Unmarshal(data, &w); err != nil {
			return zero, decodeIssues("json", err)
		}
		return any(tableFromWire(w)).(D), nil
	default:
		var w recordDoc
		if err := gojson.Unmarshal(data, &w); err != nil {
			return zero, decodeIssues("json", err)
		}
		return any(recordFromWire(w)).(D), nil
	}
}
