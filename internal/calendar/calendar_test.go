package calendar

import (
	"testing"
	"time"

	"github.com/ross/mindnotes/internal/models"
)

// millis builds an epoch-ms timestamp for a local wall-clock time in loc.
func millis(loc *time.Location, year int, month time.Month, day, hour, min int) int64 {
	return time.Date(year, month, day, hour, min, 0, 0, loc).UnixMilli()
}

func TestGroupByDaySameLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	notes := []models.Note{
		{ID: 1, Timestamp: millis(loc, 2024, time.March, 1, 8, 0), Mood: 3},
		{ID: 2, Timestamp: millis(loc, 2024, time.March, 1, 23, 0), Mood: 4},
		{ID: 3, Timestamp: millis(loc, 2024, time.March, 2, 0, 1), Mood: 5},
	}

	byDay := GroupByDay(notes, loc)

	march1 := Day{Year: 2024, Month: time.March, Day: 1}
	march2 := Day{Year: 2024, Month: time.March, Day: 2}

	if len(byDay[march1]) != 2 {
		t.Errorf("march 1 bucket = %d notes, want 2", len(byDay[march1]))
	}
	if len(byDay[march2]) != 1 {
		t.Errorf("march 2 bucket = %d notes, want 1", len(byDay[march2]))
	}
	if byDay[march1][0].ID != 1 || byDay[march1][1].ID != 2 {
		t.Error("bucket must preserve input order")
	}
}

func TestGroupByDayUsesLocalZone(t *testing.T) {
	// 2024-03-01T23:30 UTC is already 2024-03-02 in UTC+2.
	ts := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC).UnixMilli()
	east := time.FixedZone("UTC+2", 2*60*60)

	byDay := GroupByDay([]models.Note{{ID: 1, Timestamp: ts}}, east)
	if _, ok := byDay[Day{Year: 2024, Month: time.March, Day: 2}]; !ok {
		t.Errorf("note bucketed as %v, want 2024-03-02", byDay)
	}
}

func TestMoodColorTruncatedAverage(t *testing.T) {
	bucket := []models.Note{{Mood: 4}, {Mood: 4}, {Mood: 5}}
	if got := MoodColor(bucket); got != models.MoodGreen {
		t.Errorf("moods [4 4 5] = %q, want green (average truncates to 4)", got)
	}

	if got := MoodColor(nil); got != models.MoodNeutral {
		t.Errorf("empty bucket = %q, want neutral", got)
	}

	if got := MoodColor([]models.Note{{Mood: 1}, {Mood: 2}}); got != models.MoodRed {
		t.Errorf("moods [1 2] = %q, want red (average truncates to 1)", got)
	}
}

func TestDayStringAndParse(t *testing.T) {
	d := Day{Year: 2024, Month: time.March, Day: 7}
	if d.String() != "2024-03-07" {
		t.Errorf("String = %q", d.String())
	}
	parsed, err := ParseDay("2024-03-07")
	if err != nil {
		t.Fatal(err)
	}
	if parsed != d {
		t.Errorf("ParseDay = %+v", parsed)
	}
	if _, err := ParseDay("07/03/2024"); err == nil {
		t.Error("expected parse error for non-ISO input")
	}
}

func TestMonthCursor(t *testing.T) {
	dec := Month{Year: 2023, Month: time.December}
	if next := dec.Next(); next != (Month{Year: 2024, Month: time.January}) {
		t.Errorf("Next(Dec 2023) = %+v", next)
	}
	jan := Month{Year: 2024, Month: time.January}
	if prev := jan.Previous(); prev != dec {
		t.Errorf("Previous(Jan 2024) = %+v", prev)
	}

	if days := (Month{Year: 2024, Month: time.February}).Days(); days != 29 {
		t.Errorf("Feb 2024 days = %d, want 29 (leap year)", days)
	}
	if days := (Month{Year: 2023, Month: time.February}).Days(); days != 28 {
		t.Errorf("Feb 2023 days = %d, want 28", days)
	}
}

func TestMonthView(t *testing.T) {
	loc := time.UTC
	m := Month{Year: 2024, Month: time.March}
	selected := m.AtDay(5)

	notes := []models.Note{
		{ID: 1, Timestamp: millis(loc, 2024, time.March, 5, 9, 0), Mood: 5},
		{ID: 2, Timestamp: millis(loc, 2024, time.March, 5, 21, 0), Mood: 5},
		{ID: 3, Timestamp: millis(loc, 2024, time.April, 1, 9, 0), Mood: 1},
	}
	cells := MonthView(GroupByDay(notes, loc), m, selected)

	if len(cells) != 31 {
		t.Fatalf("cells = %d, want 31", len(cells))
	}
	day5 := cells[4]
	if !day5.Selected {
		t.Error("day 5 should be selected")
	}
	if len(day5.Notes) != 2 || day5.Color != models.MoodTeal {
		t.Errorf("day 5 = %d notes, color %q", len(day5.Notes), day5.Color)
	}
	day6 := cells[5]
	if day6.Selected || len(day6.Notes) != 0 || day6.Color != models.MoodNeutral {
		t.Errorf("day 6 should be empty and neutral: %+v", day6)
	}
	// The April note must not leak into the March view.
	total := 0
	for _, c := range cells {
		total += len(c.Notes)
	}
	if total != 2 {
		t.Errorf("march view holds %d notes, want 2", total)
	}
}
