// Package search resolves raw query parameters into article filters with
// defined matching semantics. The same Query value drives both the SQL
// adapters and in-memory matching.
package search

import (
	"strings"
	"time"

	"knowbase/internal/domain/entity"
)

// DefaultSearchTimeout bounds filtered list queries so a slow scan cannot
// hold a request indefinitely.
const DefaultSearchTimeout = 10 * time.Second

// Query is a transient filter built per request from optional keyword and
// tag parameters. A zero Query means "no constraint beyond ownership".
type Query struct {
	// Keyword matches case-insensitively as a substring of title OR body.
	Keyword string

	// Tags must ALL be present on a matching article (subset test, AND
	// semantics). This is deliberate: a,b matches {a,b,c} but not {a}.
	Tags []string
}

// Parse builds a Query from the raw query parameters.
// The keyword is trimmed; tags are split on comma, trimmed, and empty
// entries discarded.
func Parse(keyword, tags string) Query {
	return Query{
		Keyword: strings.TrimSpace(keyword),
		Tags:    entity.SplitTags(tags),
	}
}

// IsZero reports whether the query applies no filtering at all.
func (q Query) IsZero() bool {
	return q.Keyword == "" && len(q.Tags) == 0
}

// Matches reports whether the article satisfies the query. The keyword
// clause and the tag clause are conjoined; disjunction exists only within
// the keyword's title/body alternative.
func (q Query) Matches(a *entity.Article) bool {
	if q.Keyword != "" {
		kw := strings.ToLower(q.Keyword)
		if !strings.Contains(strings.ToLower(a.Title), kw) &&
			!strings.Contains(strings.ToLower(a.Body), kw) {
			return false
		}
	}
	return a.HasAllTags(q.Tags)
}
