package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Field names a categorical column used for grouping or colouring.
type Field string

const (
	FieldNone          Field = "none"
	FieldSegment       Field = "customer_segment"
	FieldPromo         Field = "promo_applied"
	FieldWeekday       Field = "weekday"
	FieldTrafficWindow Field = "traffic_window"
)

// GroupFields are the fields the distribution plot can be split by.
var GroupFields = []Field{FieldSegment, FieldPromo, FieldWeekday, FieldTrafficWindow}

// ColorFields are the scatter colour options; none disables colouring.
var ColorFields = append([]Field{FieldNone}, GroupFields...)

var weekdayOrder = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

func ParseField(s string) (Field, error) {
	f := Field(strings.TrimSpace(s))
	if slices.Contains(ColorFields, f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Label returns the Korean display label of the field.
func (f Field) Label() string {
	switch f {
	case FieldNone:
		return "없음"
	case FieldSegment:
		return "고객 세그먼트"
	case FieldPromo:
		return "프로모션 적용"
	case FieldWeekday:
		return "요일"
	case FieldTrafficWindow:
		return "트래픽 구간"
	default:
		return string(f)
	}
}

// Category returns the record's value for f. The second result is false
// when the value is missing or f is not a categorical field.
func (r Record) Category(f Field) (string, bool) {
	var v string
	switch f {
	case FieldSegment:
		v = r.Segment
	case FieldPromo:
		v = r.PromoApplied
	case FieldWeekday:
		v = r.Weekday
	case FieldTrafficWindow:
		v = string(r.TrafficWindow)
	default:
		return "", false
	}
	return v, v != ""
}

// SortCategories orders values of f: weekdays Monday first, traffic windows
// in display order, anything else lexically. Unknown values sort last.
func SortCategories(f Field, values []string) {
	var order []string
	switch f {
	case FieldWeekday:
		order = weekdayOrder
	case FieldTrafficWindow:
		for _, w := range TrafficWindows {
			order = append(order, string(w))
		}
	}
	rank := func(v string) int {
		if i := slices.Index(order, strings.ToUpper(v)); i >= 0 {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(values, func(a, b string) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
}
