package framestat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/framestat/framestat/check"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnknownIndexType   = "unknown_index_type"
	CodeIncompatibleChecks = "incompatible_checks"
	CodeDecodeError        = "decode_error"
)

// Issue represents a single diagnostic entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /index or /columns/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"index_type":"*pkg.T"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of diagnostics that implements error. Fatal paths
// return it as an error; the aggregators return it as a plain value to carry
// warn-and-continue findings.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_index_type at /index
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with provided code, message and
// params map.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}

// IncompatibleConstraintsError reports a decomposed rule set asserting an
// impossible range: a collected minimum above a collected maximum. It names
// both offending rules and both values.
type IncompatibleConstraintsError struct {
	MinCheck *check.Check
	MaxCheck *check.Check
	Min      any
	Max      any
}

// Code returns the stable diagnostic code for this error.
func (e *IncompatibleConstraintsError) Code() string { return CodeIncompatibleChecks }

func (e *IncompatibleConstraintsError) Error() string {
	return fmt.Sprintf("checks %s and %s are incompatible, reason: min value %v > max value %v",
		e.MinCheck, e.MaxCheck, e.Min, e.Max)
}
