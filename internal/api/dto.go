package api

import (
	"github.com/ross/mindnotes/internal/calendar"
	"github.com/ross/mindnotes/internal/models"
)

// SaveNoteRequest is the request body for saving a note. ID 0 creates a new
// note; a non-zero ID edits (or restores) the note with that id.
type SaveNoteRequest struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Timestamp int64    `json:"timestamp"`
	Category  string   `json:"category"`
	Mood      int      `json:"mood"`
	Images    []string `json:"images"`
}

func (r SaveNoteRequest) note() *models.Note {
	return &models.Note{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Timestamp: r.Timestamp,
		Category:  models.Category(r.Category),
		Mood:      r.Mood,
		Images:    r.Images,
	}
}

// NoteListResponse wraps the sorted note listing.
type NoteListResponse struct {
	Notes []models.Note `json:"notes"`
	Total int           `json:"total"`
}

// CategoryItem is one row of the category lookup table.
type CategoryItem struct {
	Name        models.Category `json:"name"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
}

// CategoriesResponse wraps the closed category set in display order.
type CategoriesResponse struct {
	Categories []CategoryItem `json:"categories"`
}

// CalendarResponse is one page of the calendar view.
type CalendarResponse struct {
	Month    calendar.Month     `json:"month"`
	Selected calendar.Day       `json:"selected"`
	Days     []calendar.DayCell `json:"days"`
}

// ImageUploadResponse is returned after a successful image upload. URL is
// the URI callers put into Note.Images.
type ImageUploadResponse struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}
