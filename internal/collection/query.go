package collection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Query narrows a listed collection. Search matches any string field
// case-insensitively; Match requires declared fields to equal a value.
type Query struct {
	Search string
	Match  map[string]string
}

// IsZero reports whether the query filters nothing.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Search) == "" && len(q.Match) == 0
}

// Filter returns the records matching q, keeping their order.
func Filter(records []Record, q Query) []Record {
	if q.IsZero() {
		return records
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))

	return lo.Filter(records, func(rec Record, _ int) bool {
		for name, want := range q.Match {
			if !matches(rec[name], want) {
				return false
			}
		}

		if needle == "" {
			return true
		}

		for name, value := range rec {
			if isSystemField(name) {
				continue
			}
			if s, ok := value.(string); ok && strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
		return false
	})
}

// QueryFromParams builds a query from URL parameters. "q" is the search
// term; other parameters naming declared fields become exact matches.
func (s Schema) QueryFromParams(params map[string]string) Query {
	q := Query{
		Search: params["q"],
		Match:  map[string]string{},
	}

	for name, value := range params {
		if _, ok := s.Field(name); ok {
			q.Match[name] = value
		}
	}

	return q
}

func matches(value any, want string) bool {
	switch v := value.(type) {
	case string:
		return strings.EqualFold(v, want)
	case float64:
		f, err := strconv.ParseFloat(want, 64)
		return err == nil && f == v
	case bool:
		b, err := strconv.ParseBool(want)
		return err == nil && b == v
	case nil:
		return false
	}
	return fmt.Sprint(value) == want
}
