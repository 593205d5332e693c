package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ross/mindnotes/internal/apperr"
	"github.com/ross/mindnotes/internal/calendar"
	"github.com/ross/mindnotes/internal/models"
	"github.com/ross/mindnotes/internal/noteservice"
)

// Handler holds API route handlers. It also owns the one-shot pending
// restore buffer, which is presentation state, not store state.
type Handler struct {
	svc     *noteservice.Service
	pending pendingRestore
	loc     *time.Location
}

// NewHandler creates a new Handler. loc is the zone used for calendar
// grouping; nil means the process-local zone.
func NewHandler(svc *noteservice.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{svc: svc, loc: loc}
}

func noteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// ListNotes handles GET /api/notes: the full collection in the canonical
// "Recent" order.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.Notes(r.Context())
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Notes: notes, Total: len(notes)})
}

// GetNote handles GET /api/notes/{id}.
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid note id"))
		return
	}
	note, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		slog.Error("get note failed", slog.Int64("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if note == nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// SaveNote handles POST /api/notes. The same endpoint serves create (id 0)
// and edit (id set); validation failures return the exact user-facing
// message and leave the store untouched.
func (h *Handler) SaveNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	note := req.note()
	created := note.ID == 0
	if note.Timestamp == 0 {
		note.Timestamp = time.Now().UnixMilli()
	}

	if err := h.svc.AddNote(r.Context(), note); err != nil {
		if verr, ok := apperr.IsValidation(err); ok {
			writeJSON(w, http.StatusBadRequest, validationBody(verr.Field, verr.Message))
			return
		}
		slog.Error("save note failed", slog.Int64("id", req.ID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, note)
}

// DeleteNote handles DELETE /api/notes/{id}. The deleted note value is kept
// in the single-slot restore buffer, overwriting any previous pending
// delete. Deleting a missing id is a no-op.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid note id"))
		return
	}

	note, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		slog.Error("delete lookup failed", slog.Int64("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	if err := h.svc.DeleteNote(r.Context(), &models.Note{ID: id}); err != nil {
		slog.Error("delete note failed", slog.Int64("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if note != nil {
		h.pending.set(note)
	}
	w.WriteHeader(http.StatusNoContent)
}

// RestoreNote handles POST /api/notes/restore: re-saves the last deleted
// note with its original id. The buffer holds at most one note and is
// emptied by a successful restore.
func (h *Handler) RestoreNote(w http.ResponseWriter, r *http.Request) {
	note := h.pending.take()
	if note == nil {
		writeJSON(w, http.StatusNotFound, errorBody("nothing to restore"))
		return
	}
	if err := h.svc.AddNote(r.Context(), note); err != nil {
		slog.Error("restore note failed", slog.Int64("id", note.ID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// Calendar handles GET /api/calendar?year=&month=&selected=. Missing cursor
// parameters default to the current month and today.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(h.loc)
	month := calendar.MonthOf(now)
	selected := calendar.DayOf(now.UnixMilli(), h.loc)

	q := r.URL.Query()
	// The month cursor is all-or-nothing: a partial or malformed year/month
	// pair is rejected rather than silently falling back to the current month.
	if q.Get("year") != "" || q.Get("month") != "" {
		y, yErr := strconv.Atoi(q.Get("year"))
		m, mErr := strconv.Atoi(q.Get("month"))
		if yErr != nil || mErr != nil || m < 1 || m > 12 {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid month cursor"))
			return
		}
		month = calendar.Month{Year: y, Month: time.Month(m)}
	}
	if sel := q.Get("selected"); sel != "" {
		d, err := calendar.ParseDay(sel)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid selected date"))
			return
		}
		selected = d
	}

	notes, err := h.svc.Notes(r.Context())
	if err != nil {
		slog.Error("calendar failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	byDay := calendar.GroupByDay(notes, h.loc)
	writeJSON(w, http.StatusOK, CalendarResponse{
		Month:    month,
		Selected: selected,
		Days:     calendar.MonthView(byDay, month, selected),
	})
}

// Categories handles GET /api/categories: the closed category set with its
// derived display data.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	all := models.Categories()
	items := make([]CategoryItem, len(all))
	for i, c := range all {
		info := c.Info()
		items[i] = CategoryItem{
			Name:        c,
			DisplayName: info.DisplayName,
			Description: info.Description,
			Color:       info.Color,
		}
	}
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: items})
}
