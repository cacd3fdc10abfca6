// Package article provides use cases for managing knowledgebase articles.
// It implements ownership-checked business logic for creating, deleting, and
// querying articles, delegating persistence to the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that no article is visible for the
	// requested id. On the read path this covers both a truly absent id
	// and an article owned by someone else; the two are deliberately
	// indistinguishable so that reads never reveal existence.
	ErrArticleNotFound = errors.New("article not found")

	// ErrNotOwner indicates that the article exists but belongs to a
	// different user. Only the delete path returns this: the caller
	// already named a specific id for mutation, so disclosing existence
	// is acceptable there.
	ErrNotOwner = errors.New("article not owned by caller")

	// ErrInvalidArticleID indicates that the provided article ID is empty
	// or malformed.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
