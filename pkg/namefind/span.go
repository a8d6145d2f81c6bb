/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: span.go
Description: Token spans for name annotations. A span marks a half-open
token range with a name type; finders produce them and evaluators compare
them by value.
*/

package namefind

import (
	"fmt"
	"strings"
)

// DefaultType is the name type used when an annotation carries none.
const DefaultType = "default"

// Span is a half-open token range [Start, End) labeled with a name type.
// Spans compare by value, which is what evaluation counts on.
type Span struct {
	Start int
	End   int
	Type  string
}

// NewSpan creates a span over [start, end) with a type, defaulting the type
// when blank.
func NewSpan(start, end int, nameType string) Span {
	if nameType == "" {
		nameType = DefaultType
	}
	return Span{Start: start, End: end, Type: nameType}
}

// Length returns the number of tokens covered.
func (s Span) Length() int {
	return s.End - s.Start
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Intersects reports whether the two spans share at least one token.
func (s Span) Intersects(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// CoveredText joins the tokens the span covers.
func (s Span) CoveredText(tokens []string) string {
	if s.Start < 0 || s.End > len(tokens) || s.Start >= s.End {
		return ""
	}
	return strings.Join(tokens[s.Start:s.End], " ")
}

// String formats the span for logs and failure messages.
func (s Span) String() string {
	return fmt.Sprintf("[%d..%d) %s", s.Start, s.End, s.Type)
}
