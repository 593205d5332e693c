// Package calendar derives the day-bucketed view of notes used by the
// calendar screen. It never mutates or duplicates the canonical store.
package calendar

import (
	"fmt"
	"time"

	"github.com/ross/mindnotes/internal/models"
)

// Day is a calendar date in some local time zone.
type Day struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DayOf converts an epoch-ms UTC timestamp to the calendar date it falls on
// in loc. A nil loc means the process-local zone.
func DayOf(timestampMillis int64, loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	t := time.UnixMilli(timestampMillis).In(loc)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String renders the date in ISO form (2006-01-02).
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDay parses the ISO form produced by String.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("calendar: parse day %q: %w", s, err)
	}
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// GroupByDay buckets notes by the local calendar date of their timestamp.
// Within a bucket, order follows the input order, so callers that pass the
// canonical "Recent" ordering keep it per day.
func GroupByDay(notes []models.Note, loc *time.Location) map[Day][]models.Note {
	out := make(map[Day][]models.Note)
	for _, n := range notes {
		d := DayOf(n.Timestamp, loc)
		out[d] = append(out[d], n)
	}
	return out
}

// MoodColor computes the bucket color for one day: the integer average of
// mood scores, truncated toward zero, mapped through the mood scale. An
// empty bucket maps to the neutral background bucket. Pure and
// deterministic.
func MoodColor(notes []models.Note) models.MoodColor {
	if len(notes) == 0 {
		return models.MoodNeutral
	}
	sum := 0
	for _, n := range notes {
		sum += n.Mood
	}
	return models.MoodColorFor(sum / len(notes))
}
