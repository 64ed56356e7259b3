// Package dtype defines the semantic-type vocabulary columns are classified
// into: width-granular numeric families, bool, string, datetime, timedelta,
// decimal, category and the generic object fallback. It offers two parse
// operations (from a storage alias, from a content label) and the numeric-like
// grouping used for range statistics. Neither parse operation fails: anything
// unrecognized maps to Object.
package dtype

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/framestat/framestat/internal/scalar"
)

// Kind is the canonical semantic type of a column's values.
type Kind int

const (
	Object Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	Decimal
	String
	Datetime
	Timedelta
	Category
)

var kindNames = map[Kind]string{
	Object:    "object",
	Bool:      "bool",
	Int8:      "int8",
	Int16:     "int16",
	Int32:     "int32",
	Int64:     "int64",
	UInt8:     "uint8",
	UInt16:    "uint16",
	UInt32:    "uint32",
	UInt64:    "uint64",
	Float32:   "float32",
	Float64:   "float64",
	Decimal:   "decimal",
	String:    "string",
	Datetime:  "datetime",
	Timedelta: "timedelta",
	Category:  "category",
}

// String returns the canonical storage alias for the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "object"
}

// NumericLike reports whether range statistics (min/max) apply to the kind.
// Datetimes and decimals order like numbers and are included; bool, string
// and timedelta are not.
func (k Kind) NumericLike() bool {
	switch k {
	case Int8, Int16, Int32, Int64,
		UInt8, UInt16, UInt32, UInt64,
		Float32, Float64, Decimal, Datetime:
		return true
	}
	return false
}

// MarshalText renders the kind as its canonical alias.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses an alias, falling back to Object for unknown input.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = FromAlias(string(text))
	return nil
}

// aliases maps accepted storage-type spellings to kinds. Lookup is
// case-insensitive; canonical names are included alongside common synonyms.
var aliases = map[string]Kind{
	"object":         Object,
	"bool":           Bool,
	"boolean":        Bool,
	"int8":           Int8,
	"int16":          Int16,
	"int32":          Int32,
	"int64":          Int64,
	"int":            Int64,
	"uint8":          UInt8,
	"uint16":         UInt16,
	"uint32":         UInt32,
	"uint64":         UInt64,
	"uint":           UInt64,
	"float32":        Float32,
	"float64":        Float64,
	"float":          Float64,
	"double":         Float64,
	"decimal":        Decimal,
	"string":         String,
	"str":            String,
	"datetime":       Datetime,
	"datetime64":     Datetime,
	"datetime64[ns]": Datetime,
	"timestamp":      Datetime,
	"timedelta":       Timedelta,
	"timedelta64":     Timedelta,
	"timedelta64[ns]": Timedelta,
	"duration":        Timedelta,
	"category":        Category,
	"categorical":     Category,
}

// FromAlias resolves a declared storage-type alias to a Kind. Unknown or
// empty aliases resolve to Object; there is no error path.
func FromAlias(alias string) Kind {
	k, ok := aliases[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return Object
	}
	return k
}

// Content labels produced by ContentLabel and accepted by FromContentLabel.
const (
	labelInteger       = "integer"
	labelFloating      = "floating"
	labelMixedIntFloat = "mixed-integer-float"
	labelBoolean       = "boolean"
	labelString        = "string"
	labelDatetime      = "datetime"
	labelTimedelta     = "timedelta"
	labelDecimal       = "decimal"
	labelCategorical   = "categorical"
	labelEmpty         = "empty"
	labelMixed         = "mixed"
)

// FromContentLabel resolves a content-category label (the vocabulary
// ContentLabel emits) to a Kind. Integer content resolves to the widest
// integer kind, floating and int/float mixtures to Float64. Unknown labels,
// "empty" and "mixed" resolve to Object.
func FromContentLabel(label string) Kind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case labelInteger:
		return Int64
	case labelFloating, labelMixedIntFloat:
		return Float64
	case labelBoolean:
		return Bool
	case labelString:
		return String
	case labelDatetime:
		return Datetime
	case labelTimedelta:
		return Timedelta
	case labelDecimal:
		return Decimal
	case labelCategorical:
		return Category
	}
	return Object
}

// ContentLabel classifies the non-missing values of an object-backed array
// into a content-category label. Uniform content yields that content's label,
// an int/float mixture yields "mixed-integer-float", no values at all yields
// "empty" and every other combination yields "mixed".
func ContentLabel(values []any) string {
	const (
		sawInt = 1 << iota
		sawFloat
		sawBool
		sawString
		sawTime
		sawDuration
		sawDecimal
		sawOther
	)
	seen := 0
	for _, v := range values {
		if scalar.IsMissing(v) {
			continue
		}
		switch v.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
			seen |= sawInt
		case float32, float64:
			seen |= sawFloat
		case bool:
			seen |= sawBool
		case string:
			seen |= sawString
		case time.Time:
			seen |= sawTime
		case time.Duration:
			seen |= sawDuration
		case decimal.Decimal:
			seen |= sawDecimal
		default:
			seen |= sawOther
		}
	}
	switch seen {
	case 0:
		return labelEmpty
	case sawInt:
		return labelInteger
	case sawFloat:
		return labelFloating
	case sawInt | sawFloat:
		return labelMixedIntFloat
	case sawBool:
		return labelBoolean
	case sawString:
		return labelString
	case sawTime:
		return labelDatetime
	case sawDuration:
		return labelTimedelta
	case sawDecimal:
		return labelDecimal
	}
	return labelMixed
}

// Infer resolves a Kind from raw element values, skipping missing entries.
// It is the content-based fallback used when the declared storage type is
// Object.
func Infer(values []any) Kind {
	return FromContentLabel(ContentLabel(values))
}
