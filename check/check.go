// Package check defines the validation-rule objects the statistics engine
// constructs and decomposes. A Check is plain data: a stable name identifying
// its kind and a structured statistics view holding the parameters it was
// built from. Checks do not execute validation.
package check

import (
	"fmt"
	"sort"
	"strings"
)

// Check kind names.
const (
	NameEqualTo              = "equal_to"
	NameNotEqualTo           = "not_equal_to"
	NameGreaterThan          = "greater_than"
	NameGreaterThanOrEqualTo = "greater_than_or_equal_to"
	NameLessThan             = "less_than"
	NameLessThanOrEqualTo    = "less_than_or_equal_to"
	NameIsIn                 = "isin"
	NameNotIn                = "notin"
)

// Statistics view keys.
const (
	KeyValue           = "value"
	KeyMinValue        = "min_value"
	KeyMaxValue        = "max_value"
	KeyAllowedValues   = "allowed_values"
	KeyForbiddenValues = "forbidden_values"
)

// Check is one validation rule instance.
type Check struct {
	name       string
	statistics map[string]any
}

// New builds a rule of an arbitrary kind. The statistics map is copied.
func New(name string, statistics map[string]any) *Check {
	st := make(map[string]any, len(statistics))
	for k, v := range statistics {
		st[k] = v
	}
	return &Check{name: name, statistics: st}
}

// EqualTo requires every value to equal v.
func EqualTo(v any) *Check {
	return &Check{name: NameEqualTo, statistics: map[string]any{KeyValue: v}}
}

// NotEqualTo requires every value to differ from v.
func NotEqualTo(v any) *Check {
	return &Check{name: NameNotEqualTo, statistics: map[string]any{KeyValue: v}}
}

// GreaterThan requires values strictly above min.
func GreaterThan(min any) *Check {
	return &Check{name: NameGreaterThan, statistics: map[string]any{KeyMinValue: min}}
}

// GreaterThanOrEqualTo requires values of at least min.
func GreaterThanOrEqualTo(min any) *Check {
	return &Check{name: NameGreaterThanOrEqualTo, statistics: map[string]any{KeyMinValue: min}}
}

// LessThan requires values strictly below max.
func LessThan(max any) *Check {
	return &Check{name: NameLessThan, statistics: map[string]any{KeyMaxValue: max}}
}

// LessThanOrEqualTo requires values of at most max.
func LessThanOrEqualTo(max any) *Check {
	return &Check{name: NameLessThanOrEqualTo, statistics: map[string]any{KeyMaxValue: max}}
}

// IsIn requires every value to be a member of allowed.
func IsIn(allowed []any) *Check {
	vs := make([]any, len(allowed))
	copy(vs, allowed)
	return &Check{name: NameIsIn, statistics: map[string]any{KeyAllowedValues: vs}}
}

// NotIn forbids every member of forbidden.
func NotIn(forbidden []any) *Check {
	vs := make([]any, len(forbidden))
	copy(vs, forbidden)
	return &Check{name: NameNotIn, statistics: map[string]any{KeyForbiddenValues: vs}}
}

// Name returns the stable kind identity of the rule.
func (c *Check) Name() string { return c.name }

// Statistics returns the structured parameter view. Callers must treat the
// map as read-only.
func (c *Check) Statistics() map[string]any { return c.statistics }

// Statistic looks up one parameter by key.
func (c *Check) Statistic(key string) (any, bool) {
	v, ok := c.statistics[key]
	return v, ok
}

// String renders the rule as name(parameters) for diagnostics.
func (c *Check) String() string {
	if len(c.statistics) == 0 {
		return c.name + "()"
	}
	keys := make([]string, 0, len(c.statistics))
	for k := range c.statistics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v", c.statistics[k]))
	}
	return fmt.Sprintf("%s(%s)", c.name, strings.Join(parts, ", "))
}
