package aggregator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonNumeric indicates text mixed with numbers in a summed column or
// in the parts of a total.
var ErrNonNumeric = errors.New("non-numeric value")

// sumValues adds the non-empty values of a column. The sum stays int64
// while every value is an integer; a column with no values sums to 0.0.
// A column holding only text is joined in row order.
func sumValues(column string, values []interface{}) (interface{}, error) {
	var (
		isum    int64
		fsum    float64
		float   bool
		numeric bool
		text    strings.Builder
		texts   bool
	)
	for row, v := range values {
		switch n := v.(type) {
		case nil:
			continue
		case int64:
			isum += n
			numeric = true
		case float64:
			fsum += n
			float = true
			numeric = true
		case string:
			text.WriteString(n)
			texts = true
		default:
			return nil, fmt.Errorf("%w in column %q at row %d: %v", ErrNonNumeric, column, row+1, v)
		}
		if numeric && texts {
			return nil, fmt.Errorf("%w in column %q at row %d: %v", ErrNonNumeric, column, row+1, v)
		}
	}
	switch {
	case texts:
		return text.String(), nil
	case !numeric || float:
		return fsum + float64(isum), nil
	}
	return isum, nil
}

// addValues adds two values: int64 stays int64, any float gives float64
// and two strings are concatenated. Text with a number is an error.
func addValues(a, b interface{}) (interface{}, error) {
	as, aText := a.(string)
	bs, bText := b.(string)
	switch {
	case aText && bText:
		return as + bs, nil
	case aText || bText:
		return nil, fmt.Errorf("%w: cannot add %v and %v", ErrNonNumeric, a, b)
	}

	ai, aok := a.(int64)
	bi, bok := b.(int64)
	if aok && bok {
		return ai + bi, nil
	}
	af, _ := toFloat(a)
	bf, _ := toFloat(b)
	return af + bf, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
