// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, creating, deleting, and summarizing articles.
package article

import (
	"encoding/json"
	"time"

	"knowbase/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		Tags:      tags,
		UserID:    a.OwnerID,
		CreatedAt: a.CreatedAt,
	}
}

// normalizeTags accepts the two tag shapes clients send (a JSON string
// array or a single comma-separated string) and normalizes anything else
// to empty rather than rejecting the request.
func normalizeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, t := range list {
			if t != "" {
				out = append(out, t)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return entity.SplitTags(s)
	}
	return nil
}
