package noteservice_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ross/mindnotes/internal/apperr"
	"github.com/ross/mindnotes/internal/models"
	"github.com/ross/mindnotes/internal/noteservice"
	"github.com/ross/mindnotes/internal/testutil"
)

func testService(t *testing.T) *noteservice.Service {
	t.Helper()
	return noteservice.NewService(testutil.TestStore(t))
}

func validNote(title string, ts int64) *models.Note {
	return &models.Note{
		Title:     title,
		Content:   "content of " + title,
		Timestamp: ts,
		Category:  models.CategoryOther,
		Mood:      3,
	}
}

func TestAddNoteBlankTitle(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		n := validNote("x", 1)
		n.Title = title
		err := svc.AddNote(ctx, n)
		verr, ok := apperr.IsValidation(err)
		if !ok {
			t.Fatalf("title %q: err = %v, want ValidationError", title, err)
		}
		if verr.Field != "title" {
			t.Errorf("field = %q, want title", verr.Field)
		}
		if verr.Message != "The title of the note can't be empty." {
			t.Errorf("message = %q", verr.Message)
		}
	}

	// Store must be left unchanged.
	notes, err := svc.Notes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 0 {
		t.Errorf("store has %d notes after failed saves, want 0", len(notes))
	}
}

func TestAddNoteBlankContent(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n := validNote("has title", 1)
	n.Content = "  \n "
	err := svc.AddNote(ctx, n)
	verr, ok := apperr.IsValidation(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "content" {
		t.Errorf("field = %q, want content", verr.Field)
	}
	if verr.Message != "The content of the note can't be empty." {
		t.Errorf("message = %q", verr.Message)
	}
}

func TestAddNoteTitleErrorWinsOverContent(t *testing.T) {
	svc := testService(t)

	err := svc.AddNote(context.Background(), &models.Note{Mood: 3})
	verr, ok := apperr.IsValidation(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "title" {
		t.Errorf("field = %q, want title reported first", verr.Field)
	}
}

func TestAddNoteMoodRange(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	for _, mood := range []int{0, -1, 6, 42} {
		n := validNote("mood check", 1)
		n.Mood = mood
		err := svc.AddNote(ctx, n)
		verr, ok := apperr.IsValidation(err)
		if !ok {
			t.Fatalf("mood %d: err = %v, want ValidationError", mood, err)
		}
		if verr.Field != "mood" {
			t.Errorf("mood %d: field = %q, want mood", mood, verr.Field)
		}
	}

	for mood := models.MoodMin; mood <= models.MoodMax; mood++ {
		n := validNote("mood ok", int64(mood))
		n.Mood = mood
		if err := svc.AddNote(ctx, n); err != nil {
			t.Errorf("mood %d rejected: %v", mood, err)
		}
	}
}

func TestAddNoteDefaultsCategory(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n := validNote("uncategorized", 1)
	n.Category = ""
	if err := svc.AddNote(ctx, n); err != nil {
		t.Fatalf("AddNote: %v", err)
	}

	got, err := svc.GetNote(ctx, n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Category != models.CategoryOther {
		t.Errorf("category = %q, want OTHER", got.Category)
	}
}

func TestRoundTrip(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n := validNote("round trip", 1709280000000)
	n.Category = models.CategoryThankfulness
	n.Mood = 5
	n.Images = []string{"file:///1.png", "file:///2.png", "file:///3.png"}
	if err := svc.AddNote(ctx, n); err != nil {
		t.Fatalf("AddNote: %v", err)
	}

	got, err := svc.GetNote(ctx, n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("GetNote returned nil")
	}
	if got.Title != n.Title || got.Content != n.Content || got.Timestamp != n.Timestamp ||
		got.Category != n.Category || got.Mood != n.Mood {
		t.Errorf("round trip mismatch: %+v", got)
	}
	for i := range n.Images {
		if got.Images[i] != n.Images[i] {
			t.Errorf("image[%d] = %q, want %q", i, got.Images[i], n.Images[i])
		}
	}
}

func TestNotesRecentOrder(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	for _, ts := range []int64{100, 300, 200} {
		if err := svc.AddNote(ctx, validNote("n", ts)); err != nil {
			t.Fatal(err)
		}
	}

	notes, err := svc.Notes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{300, 200, 100}
	if len(notes) != len(want) {
		t.Fatalf("len = %d", len(notes))
	}
	for i, ts := range want {
		if notes[i].Timestamp != ts {
			t.Errorf("notes[%d].Timestamp = %d, want %d", i, notes[i].Timestamp, ts)
		}
	}
}

func TestUpsertAsEdit(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n := validNote("original", 10)
	if err := svc.AddNote(ctx, n); err != nil {
		t.Fatal(err)
	}

	edited := *n
	edited.Title = "changed"
	if err := svc.AddNote(ctx, &edited); err != nil {
		t.Fatal(err)
	}

	notes, err := svc.Notes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("count = %d, want 1", len(notes))
	}
	if notes[0].Title != "changed" {
		t.Errorf("title = %q", notes[0].Title)
	}
}

func TestRestoreAfterDelete(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n := validNote("keep me", 77)
	n.Images = []string{"file:///only.png"}
	if err := svc.AddNote(ctx, n); err != nil {
		t.Fatal(err)
	}
	before, _ := svc.Notes(ctx)

	// The caller keeps the deleted value and resubmits it to restore.
	deleted := *n
	if err := svc.DeleteNote(ctx, &deleted); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteNote(ctx, &deleted); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}

	if err := svc.AddNote(ctx, &deleted); err != nil {
		t.Fatalf("restore: %v", err)
	}

	after, err := svc.Notes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before) {
		t.Fatalf("count = %d, want %d", len(after), len(before))
	}
	if after[0].ID != n.ID || after[0].Title != n.Title || after[0].Images[0] != n.Images[0] {
		t.Errorf("restored note differs: %+v", after[0])
	}
}

func TestListNotesEmitsSortedSnapshots(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	ch, cancel := svc.ListNotes(ctx)
	defer cancel()

	for _, ts := range []int64{100, 300, 200} {
		if err := svc.AddNote(ctx, validNote("n", ts)); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case notes, ok := <-ch:
			if !ok {
				t.Fatal("channel closed before full snapshot")
			}
			if len(notes) < 3 {
				continue
			}
			if notes[0].Timestamp != 300 || notes[1].Timestamp != 200 || notes[2].Timestamp != 100 {
				t.Fatalf("snapshot order = %v", []int64{notes[0].Timestamp, notes[1].Timestamp, notes[2].Timestamp})
			}
			return
		case <-deadline:
			t.Fatal("timeout waiting for sorted snapshot")
		}
	}
}

func TestListNotesConcurrentSubscribersKeepOrder(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	// Both subscriptions receive snapshots backed by the same feed event;
	// each must sort its own copy, so neither can scramble the other's view.
	ch1, cancel1 := svc.ListNotes(ctx)
	defer cancel1()
	ch2, cancel2 := svc.ListNotes(ctx)
	defer cancel2()

	done := make(chan struct{})
	var wg sync.WaitGroup
	drain := func(ch <-chan []models.Note) {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case notes, ok := <-ch:
				if !ok {
					return
				}
				for i := 1; i < len(notes); i++ {
					if notes[i-1].Timestamp < notes[i].Timestamp {
						t.Errorf("snapshot out of order at %d: %d < %d",
							i, notes[i-1].Timestamp, notes[i].Timestamp)
						return
					}
				}
			}
		}
	}
	wg.Add(2)
	go drain(ch1)
	go drain(ch2)

	for ts := int64(1); ts <= 40; ts++ {
		if err := svc.AddNote(ctx, validNote("n", ts)); err != nil {
			t.Fatal(err)
		}
	}

	time.Sleep(100 * time.Millisecond)
	close(done)
	wg.Wait()
}

func TestListNotesCancelClosesChannel(t *testing.T) {
	svc := testService(t)

	ch, cancel := svc.ListNotes(context.Background())
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
