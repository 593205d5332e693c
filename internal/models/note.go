// Package models defines the domain types for MindNotes.
package models

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Mood score bounds.
const (
	MoodMin = 1
	MoodMax = 5
)

// User-facing validation messages. The title/content wording is part of the
// external contract and must not change.
const (
	msgTitleEmpty   = "The title of the note can't be empty."
	msgContentEmpty = "The content of the note can't be empty."
	msgMoodRange    = "The mood must be between 1 and 5."
	msgBadCategory  = "The category is not a known category."
)

// Note is the single persisted journal-entry record.
// ID 0 means the note has not been persisted yet; the store assigns an id
// on first insert.
type Note struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Timestamp int64    `json:"timestamp"` // milliseconds since epoch, UTC
	Category  Category `json:"category"`
	Mood      int      `json:"mood"`
	Images    []string `json:"images"` // ordered image URIs, display order
}

// Validate checks the rules a note must satisfy before it may be saved:
// non-blank title and content, mood within [MoodMin, MoodMax], and a
// category drawn from the closed set.
func (n Note) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.By(notBlank(msgTitleEmpty))),
		validation.Field(&n.Content, validation.By(notBlank(msgContentEmpty))),
		validation.Field(&n.Mood,
			validation.Required.Error(msgMoodRange),
			validation.Min(MoodMin).Error(msgMoodRange),
			validation.Max(MoodMax).Error(msgMoodRange)),
		validation.Field(&n.Category, validation.By(knownCategory)),
	)
}

// notBlank fails when the value is empty or whitespace-only after trimming.
func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func knownCategory(value interface{}) error {
	c, _ := value.(Category)
	if !c.Valid() {
		return errors.New(msgBadCategory)
	}
	return nil
}
