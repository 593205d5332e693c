package calendar

import (
	"time"

	"github.com/ross/mindnotes/internal/models"
)

// Month is the page cursor for the calendar screen. Navigation carries no
// validation and no persisted state.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next returns the following month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Previous returns the preceding month.
func (m Month) Previous() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	// Day zero of the next month is the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AtDay returns the Day for the given day-of-month.
func (m Month) AtDay(day int) Day {
	return Day{Year: m.Year, Month: m.Month, Day: day}
}

// Contains reports whether d falls inside m.
func (m Month) Contains(d Day) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// DayCell is one rendered day of the month view.
type DayCell struct {
	Day      Day              `json:"day"`
	Notes    []models.Note    `json:"notes"`
	Color    models.MoodColor `json:"color"`
	Selected bool             `json:"selected"`
}

// MonthView pages the day-bucketed projection into per-day cells for one
// month. Days without notes get the neutral color and an empty note list.
func MonthView(byDay map[Day][]models.Note, m Month, selected Day) []DayCell {
	cells := make([]DayCell, 0, m.Days())
	for day := 1; day <= m.Days(); day++ {
		d := m.AtDay(day)
		notes := byDay[d]
		cells = append(cells, DayCell{
			Day:      d,
			Notes:    notes,
			Color:    MoodColor(notes),
			Selected: d == selected,
		})
	}
	return cells
}
