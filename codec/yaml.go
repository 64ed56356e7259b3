package codec

import (
	"gopkg.in/yaml.v3"

	framestat "github.com/framestat/framestat"
)

// EncodeYAML renders a statistics document as YAML. Absent members are
// omitted, never emitted as empty containers.
func EncodeYAML[D Document](doc D) ([]byte, error) {
	return yaml.Marshal(toWire(doc))
}

// DecodeYAML parses a YAML statistics document. Malformed input is reported
// as Issues with code decode_error; empty wire containers decode to nil.
// Scalars decode per yaml.v3 defaults (integers come back as int).
func DecodeYAML[D Document](data []byte) (D, error) {
	var zero D
	switch any(zero).(type) {
	case framestat.TableStatistics:
		var w tableDoc
		if err := yaml.Unmarshal(data, &w); err != nil {
			return zero, decodeIssues("yaml", err)
		}
		return any(tableFromWire(w)).(D), nil
	default:
		var w recordDoc
		if err := yaml.Unmarshal(data, &w); err != nil {
			return zero, decodeIssues("yaml", err)
		}
		return any(recordFromWire(w)).(D), nil
	}
}
