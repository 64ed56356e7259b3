// Package scalar holds the cell-value mechanics the public statistics API
// leans on: missing-value tests and cross-type ordering of the scalar kinds
// a column may carry (integers, unsigned integers, floats, decimals, times,
// durations, strings).
package scalar

import (
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// IsMissing reports whether v represents a missing cell. Untyped nil and NaN
// floats count as missing; everything else is a present value.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// Compare orders two cell values, returning -1, 0 or 1. ok is false when the
// pair has no defined ordering (booleans, mixed non-numeric kinds, values of
// unknown dynamic type). Numeric values order across widths and signedness;
// decimals order against any numeric value.
func Compare(a, b any) (c int, ok bool) {
	if da, isDec := a.(decimal.Decimal); isDec {
		db, ok := toDecimal(b)
		if !ok {
			return 0, false
		}
		return da.Cmp(db), true
	}
	if db, isDec := b.(decimal.Decimal); isDec {
		da, ok := toDecimal(a)
		if !ok {
			return 0, false
		}
		return da.Cmp(db), true
	}

	switch x := a.(type) {
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case x.Before(y):
			return -1, true
		case x.After(y):
			return 1, true
		}
		return 0, true
	case time.Duration:
		y, ok := b.(time.Duration)
		if !ok {
			return 0, false
		}
		return cmpOrdered(x, y), true
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return cmpOrdered(x, y), true
	}

	return compareNumeric(a, b)
}

// compareNumeric handles the int/uint/float lattice. Integer pairs compare
// exactly; as soon as a float is involved the comparison happens in float64.
func compareNumeric(a, b any) (int, bool) {
	ai, aIsInt := toInt64(a)
	bi, bIsInt := toInt64(b)
	if aIsInt && bIsInt {
		return cmpOrdered(ai, bi), true
	}

	au, aIsUint := toUint64(a)
	bu, bIsUint := toUint64(b)
	if aIsUint && bIsUint {
		return cmpOrdered(au, bu), true
	}
	if aIsInt && bIsUint {
		if ai < 0 {
			return -1, true
		}
		return cmpOrdered(uint64(ai), bu), true
	}
	if aIsUint && bIsInt {
		if bi < 0 {
			return 1, true
		}
		return cmpOrdered(au, uint64(bi)), true
	}

	af, aOK := toFloat64(a)
	bf, bOK := toFloat64(b)
	if !aOK || !bOK {
		return 0, false
	}
	return cmpOrdered(af, bf), true
}

func cmpOrdered[T interface {
	~int64 | ~uint64 | ~float64 | ~string
}](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	if u, ok := toUint64(v); ok {
		return float64(u), true
	}
	return 0, false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case float32:
		return decimal.NewFromFloat(float64(x)), true
	case float64:
		return decimal.NewFromFloat(x), true
	}
	if i, ok := toInt64(v); ok {
		return decimal.NewFromInt(i), true
	}
	if u, ok := toUint64(v); ok {
		return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0), true
	}
	return decimal.Decimal{}, false
}
