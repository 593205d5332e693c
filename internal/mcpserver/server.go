// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes journal tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ross/mindnotes/internal/apperr"
	"github.com/ross/mindnotes/internal/calendar"
	"github.com/ross/mindnotes/internal/models"
	"github.com/ross/mindnotes/internal/noteservice"
)

// Server wraps the MCP server with journal tools.
type Server struct {
	mcp      *server.MCPServer
	svc      *noteservice.Service
	imageDir string
	loc      *time.Location
}

// New creates a new MCP server with all journal tools registered.
// Uploaded images land in imageDir, the same directory the HTTP API serves.
func New(svc *noteservice.Service, imageDir string) *Server {
	s := &Server{svc: svc, imageDir: imageDir, loc: time.Local}

	s.mcp = server.NewMCPServer(
		"MindNotes",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List journal notes, newest first. Optionally filter by category."),
		mcp.WithString("category", mcp.Description("Optional category filter (STOICISM, DAILY_SUMMARY, THANKFULNESS, ANALYSIS, OTHER)")),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read a single journal note by its id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("add_note",
		mcp.WithDescription("Create a journal note, or update it when id is given. "+
			"Read the category guide first via the get_category_guide tool or the "+
			"mindnotes://categories resource."),
		mcp.WithNumber("id", mcp.Description("Note id to update; omit to create a new note")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note body text")),
		mcp.WithString("category", mcp.Description("Category symbolic name; defaults to OTHER")),
		mcp.WithNumber("mood", mcp.Required(), mcp.Description("Mood score from 1 (worst) to 5 (best)")),
	), s.addNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a journal note by its id. Deleting a missing note is a no-op."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id")),
	), s.deleteNote)

	s.mcp.AddTool(mcp.NewTool("calendar_month",
		mcp.WithDescription("Render one month of the mood calendar: per-day note counts and mood colors."),
		mcp.WithNumber("year", mcp.Description("Calendar year; defaults to the current year")),
		mcp.WithNumber("month", mcp.Description("Calendar month 1-12; defaults to the current month")),
	), s.calendarMonth)

	s.mcp.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the closed category set with display names, descriptions, and colors."),
	), s.listCategories)

	s.mcp.AddTool(mcp.NewTool("upload_image",
		mcp.WithDescription("Download an image from a URL or data URI and store it for use in notes. "+
			"Returns the stored filename to put in a note's images list."),
		mcp.WithString("url", mcp.Required(), mcp.Description("HTTP(S) URL or base64 data URI of the image")),
	), s.uploadImage)

	s.mcp.AddTool(mcp.NewTool("get_category_guide",
		mcp.WithDescription("Returns the journal category guide. "+
			"Call this before creating notes to pick the right category."),
	), s.getCategoryGuide)

	// Resource: category guide.
	s.mcp.AddResource(
		mcp.NewResource("mindnotes://categories", "Journal Category Guide",
			mcp.WithResourceDescription("The closed category set and the writing prompt behind each one."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readCategoryResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

type noteSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
	Category  string `json:"category"`
	Mood      int    `json:"mood"`
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.svc.Notes(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if raw := req.GetString("category", ""); raw != "" {
		cat, ok := models.ParseCategory(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", raw)), nil
		}
		filtered := notes[:0]
		for _, n := range notes {
			if n.Category == cat {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}

	summaries := make([]noteSummary, 0, len(notes))
	for _, n := range notes {
		summaries = append(summaries, noteSummary{
			ID:        n.ID,
			Title:     n.Title,
			Timestamp: n.Timestamp,
			Category:  string(n.Category),
			Mood:      n.Mood,
		})
	}
	out, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.svc.GetNote(ctx, int64(id))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if note == nil {
		return mcp.NewToolResultError(fmt.Sprintf("note not found: %d", id)), nil
	}
	out, _ := json.MarshalIndent(note, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mood, err := req.RequireInt("mood")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n := &models.Note{
		ID:        int64(req.GetInt("id", 0)),
		Title:     title,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
		Category:  models.Category(req.GetString("category", "")),
		Mood:      mood,
	}

	if err := s.svc.AddNote(ctx, n); err != nil {
		if verr, ok := apperr.IsValidation(err); ok {
			return mcp.NewToolResultError(verr.Message), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("saved note %d", n.ID)), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.DeleteNote(ctx, &models.Note{ID: int64(id)}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted note %d", id)), nil
}

type calendarDay struct {
	Date  string `json:"date"`
	Notes int    `json:"notes"`
	Color string `json:"color"`
}

func (s *Server) calendarMonth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now().In(s.loc)
	month := calendar.Month{
		Year:  req.GetInt("year", now.Year()),
		Month: time.Month(req.GetInt("month", int(now.Month()))),
	}
	if month.Month < time.January || month.Month > time.December {
		return mcp.NewToolResultError(fmt.Sprintf("invalid month: %d", int(month.Month))), nil
	}

	notes, err := s.svc.Notes(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cells := calendar.MonthView(calendar.GroupByDay(notes, s.loc), month, calendar.Day{})
	days := make([]calendarDay, 0, len(cells))
	for _, c := range cells {
		days = append(days, calendarDay{
			Date:  c.Day.String(),
			Notes: len(c.Notes),
			Color: string(c.Color),
		})
	}
	out, _ := json.MarshalIndent(days, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

type categoryItem struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (s *Server) listCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := models.Categories()
	items := make([]categoryItem, 0, len(all))
	for _, c := range all {
		info := c.Info()
		items = append(items, categoryItem{
			Name:        string(c),
			DisplayName: info.DisplayName,
			Description: info.Description,
			Color:       info.Color,
		})
	}
	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getCategoryGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(CategoryGuide), nil
}

func (s *Server) readCategoryResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "mindnotes://categories",
			MIMEType: "text/markdown",
			Text:     CategoryGuide,
		},
	}, nil
}
