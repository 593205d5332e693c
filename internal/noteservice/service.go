// Package noteservice is the use-case layer: the only place business rules
// are enforced between callers and the note store.
package noteservice

import (
	"context"
	"errors"
	"sort"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ross/mindnotes/internal/apperr"
	"github.com/ross/mindnotes/internal/live"
	"github.com/ross/mindnotes/internal/models"
	"github.com/ross/mindnotes/internal/store"
)

// Service mediates between presentation and the store. It holds no note
// data of its own; every emission is transformed on the way through.
type Service struct {
	store store.Store
}

// NewService creates a new note service.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Notes returns a one-shot snapshot in the canonical "Recent" order:
// timestamp descending, stable for equal timestamps.
func (s *Service) Notes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	sortRecent(notes)
	return notes, nil
}

// ListNotes subscribes to the store's live feed and re-sorts every snapshot
// into the canonical order. The returned cancel func ends the subscription;
// the channel is closed afterwards. The subscription also ends when ctx is
// cancelled.
func (s *Service) ListNotes(ctx context.Context) (<-chan []models.Note, func()) {
	in := s.store.Observe()
	out := make(chan []models.Note, 1)

	var once sync.Once
	done := make(chan struct{})
	cancel := func() {
		once.Do(func() {
			s.store.Unobserve(in)
			close(done)
		})
	}

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case <-done:
				return
			case ev, ok := <-in:
				if !ok {
					return
				}
				if ev.Type != live.EventNotesSnapshot {
					continue
				}
				shared, ok := ev.Data.([]models.Note)
				if !ok {
					continue
				}
				// The feed hands every subscriber the same backing array;
				// sort a private copy so subscribers never see each other's
				// reordering mid-flight.
				notes := append([]models.Note(nil), shared...)
				sortRecent(notes)
				// Latest snapshot wins when the consumer lags.
				select {
				case out <- notes:
				default:
					select {
					case <-out:
					default:
					}
					out <- notes
				}
			}
		}
	}()

	return out, cancel
}

// GetNote returns the note with the given id, or nil when absent. Absence
// is not an error; callers treat it as "new note" / "nothing to show".
func (s *Service) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	return s.store.Get(ctx, id)
}

// AddNote validates n and upserts it. The same operation serves create
// (id 0) and edit (id set); on create the assigned id is written back into
// n. Validation failure returns a *apperr.ValidationError and leaves the
// store untouched.
func (s *Service) AddNote(ctx context.Context, n *models.Note) error {
	if n.Category == "" {
		n.Category = models.CategoryOther
	}
	if err := n.Validate(); err != nil {
		return firstFieldError(err)
	}
	return s.store.Upsert(ctx, n)
}

// DeleteNote removes n from the store. Deleting a note that does not exist
// is not an error.
func (s *Service) DeleteNote(ctx context.Context, n *models.Note) error {
	return s.store.Delete(ctx, n.ID)
}

func sortRecent(notes []models.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Timestamp > notes[j].Timestamp
	})
}

// fieldOrder fixes which violation is reported when several fields fail at
// once; the title message wins over the content message.
var fieldOrder = []string{"title", "content", "mood", "category"}

// firstFieldError converts ozzo's per-field error map into the single
// ValidationError the API contract expects.
func firstFieldError(err error) error {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, field := range fieldOrder {
		if ferr, ok := verrs[field]; ok {
			return &apperr.ValidationError{Field: field, Message: ferr.Error()}
		}
	}
	return err
}
