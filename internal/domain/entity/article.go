// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a knowledgebase article owned by a single user.
// ID, OwnerID and CreatedAt are assigned at creation time and are immutable.
type Article struct {
	ID        string
	OwnerID   string
	Title     string
	Body      string
	Tags      []string
	CreatedAt time.Time
}

// HasAllTags reports whether the article carries every tag in want.
// Tag matching is a subset test: an article tagged {a,b,c} matches {a,b},
// an article tagged {a} does not match {a,b}.
func (a *Article) HasAllTags(want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(a.Tags))
	for _, t := range a.Tags {
		set[t] = struct{}{}
	}
	for _, t := range want {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
