// Package filter implements the case query language: conditions of the
// form `<field> eq '<value>'` joined by a literal " and " separator. The
// language has no OR, no grouping, and exactly one operator.
package filter

import (
	"regexp"
	"strings"
)

// Condition is a parsed filter segment: either an equality test or an
// Invalid segment that failed to parse.
type Condition interface {
	isCondition()
}

// Equals tests a field against a literal value.
type Equals struct {
	Field string
	Value string
}

func (Equals) isCondition() {}

// Invalid is a segment that did not match the condition grammar. Invalid
// conditions never match a record; they are not an error.
type Invalid struct {
	Raw string
}

func (Invalid) isCondition() {}

// conditionRe matches `<field> eq '<value>'`. The value group is greedy so
// embedded quotes survive; the field group is lazy so " eq " binds to the
// last occurrence outside the value.
var conditionRe = regexp.MustCompile(`^(.+?)\s+eq\s+'(.*)'$`)

const separator = " and "

// Parse splits a filter string into conditions. A blank filter yields no
// conditions, which matches every record.
func Parse(input string) []Condition {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	segments := splitOutsideQuotes(trimmed)
	conditions := make([]Condition, 0, len(segments))
	for _, segment := range segments {
		m := conditionRe.FindStringSubmatch(segment)
		if m == nil {
			conditions = append(conditions, Invalid{Raw: segment})
			continue
		}
		conditions = append(conditions, Equals{
			Field: strings.TrimSpace(m[1]),
			Value: m[2],
		})
	}
	return conditions
}

// CountInvalid returns the number of Invalid conditions.
func CountInvalid(conditions []Condition) int {
	n := 0
	for _, c := range conditions {
		if _, ok := c.(Invalid); ok {
			n++
		}
	}
	return n
}

// splitOutsideQuotes splits on the separator, case-insensitively, tracking
// quote state so that separator text inside a quoted value is preserved.
// Quote state toggles on every single quote; blank segments are dropped.
func splitOutsideQuotes(input string) []string {
	var segments []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(input); {
		ch := input[i]
		if ch == '\'' {
			inQuotes = !inQuotes
			current.WriteByte(ch)
			i++
			continue
		}

		if !inQuotes && i+len(separator) <= len(input) &&
			strings.EqualFold(input[i:i+len(separator)], separator) {
			segments = appendSegment(segments, current.String())
			current.Reset()
			i += len(separator)
			continue
		}

		current.WriteByte(ch)
		i++
	}

	return appendSegment(segments, current.String())
}

func appendSegment(segments []string, segment string) []string {
	trimmed := strings.TrimSpace(segment)
	if trimmed == "" {
		return segments
	}
	return append(segments, trimmed)
}
