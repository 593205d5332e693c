package models

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func validNote() Note {
	return Note{
		Title:     "A day at the lake",
		Content:   "Calm water, no wind.",
		Timestamp: 1709280000000,
		Category:  CategoryOther,
		Mood:      4,
	}
}

func fieldError(t *testing.T, err error, field string) error {
	t.Helper()
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want validation.Errors", err)
	}
	ferr, ok := verrs[field]
	if !ok {
		t.Fatalf("no error for field %q in %v", field, verrs)
	}
	return ferr
}

func TestValidateOK(t *testing.T) {
	if err := validNote().Validate(); err != nil {
		t.Fatalf("valid note rejected: %v", err)
	}
}

func TestValidateBlankTitle(t *testing.T) {
	n := validNote()
	n.Title = " \t "
	err := fieldError(t, n.Validate(), "title")
	if err.Error() != "The title of the note can't be empty." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateBlankContent(t *testing.T) {
	n := validNote()
	n.Content = ""
	err := fieldError(t, n.Validate(), "content")
	if err.Error() != "The content of the note can't be empty." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateMoodRange(t *testing.T) {
	for _, mood := range []int{0, -3, 6} {
		n := validNote()
		n.Mood = mood
		fieldError(t, n.Validate(), "mood")
	}
}

func TestValidateUnknownCategory(t *testing.T) {
	n := validNote()
	n.Category = "DREAMS"
	fieldError(t, n.Validate(), "category")
}

func TestCategoryTableIsClosedSet(t *testing.T) {
	all := Categories()
	if len(all) != 5 {
		t.Fatalf("category set = %d entries, want 5", len(all))
	}
	for _, c := range all {
		if !c.Valid() {
			t.Errorf("%q not valid", c)
		}
		info := c.Info()
		if info.DisplayName == "" || info.Description == "" || info.Color == "" {
			t.Errorf("%q has incomplete info: %+v", c, info)
		}
	}
	if Category("JOURNALING").Valid() {
		t.Error("unknown name must not be representable")
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("DAILY_SUMMARY")
	if !ok || c != CategoryDailySummary {
		t.Errorf("ParseCategory = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("daily_summary"); ok {
		t.Error("stored names are case sensitive symbolic names")
	}
}

func TestUnknownCategoryInfoFallsBack(t *testing.T) {
	if got := Category("???").Info(); got != categoryTable[CategoryOther] {
		t.Errorf("fallback info = %+v", got)
	}
}

func TestMoodColorScale(t *testing.T) {
	want := map[int]MoodColor{
		1: MoodRed,
		2: MoodOrange,
		3: MoodYellow,
		4: MoodGreen,
		5: MoodTeal,
	}
	for mood, color := range want {
		if got := MoodColorFor(mood); got != color {
			t.Errorf("MoodColorFor(%d) = %q, want %q", mood, got, color)
		}
	}
	if got := MoodColorFor(0); got != MoodNeutral {
		t.Errorf("MoodColorFor(0) = %q, want neutral", got)
	}
	if got := MoodColorFor(6); got != MoodNeutral {
		t.Errorf("MoodColorFor(6) = %q, want neutral", got)
	}
	if MoodGreen.Hex() != "#388E3C" {
		t.Errorf("green hex = %q", MoodGreen.Hex())
	}
	if MoodColor("??").Hex() != MoodNeutral.Hex() {
		t.Error("unknown bucket should use the neutral hex")
	}
}
