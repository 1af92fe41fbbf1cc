package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric field as the search API sends it: a JSON number, a
// numeric string, or null. Anything that does not parse as a finite decimal is
// treated as absent.
type Number struct {
	value decimal.Decimal
	valid bool
}

// NewNumber builds a present Number from an integer.
func NewNumber(v int) Number {
	return Number{value: decimal.NewFromInt(int64(v)), valid: true}
}

// NumberFromString parses s; it returns an absent Number when s is not numeric.
func NumberFromString(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}
	}
	return Number{value: d, valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberFromString(s)
		return nil
	}
	*n = NumberFromString(string(data))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

// Valid reports whether the field carried a usable number.
func (n Number) Valid() bool { return n.valid }

var (
	maxInt = decimal.NewFromInt(math.MaxInt)
	minInt = decimal.NewFromInt(math.MinInt)
)

// Int returns the value truncated toward zero, saturated to the int range.
func (n Number) Int() (int, bool) {
	if !n.valid {
		return 0, false
	}
	switch v := n.value.Truncate(0); {
	case v.GreaterThan(maxInt):
		return math.MaxInt, true
	case v.LessThan(minInt):
		return math.MinInt, true
	default:
		return int(v.IntPart()), true
	}
}

func (n Number) Decimal() (decimal.Decimal, bool) {
	return n.value, n.valid
}
