package models

// MoodColor is a semantic color bucket derived from mood scores. The calendar
// paints each day with the bucket of its average mood.
type MoodColor string

// The five mood buckets plus the neutral background bucket.
const (
	MoodRed     MoodColor = "red"
	MoodOrange  MoodColor = "orange"
	MoodYellow  MoodColor = "yellow"
	MoodGreen   MoodColor = "green"
	MoodTeal    MoodColor = "teal"
	MoodNeutral MoodColor = "neutral"
)

var moodHex = map[MoodColor]string{
	MoodRed:     "#D32F2F",
	MoodOrange:  "#F57C00",
	MoodYellow:  "#FBC02D",
	MoodGreen:   "#388E3C",
	MoodTeal:    "#00796B",
	MoodNeutral: "#FFFFFF",
}

var moodScale = [...]MoodColor{MoodRed, MoodOrange, MoodYellow, MoodGreen, MoodTeal}

// MoodColorFor maps an integer mood score to its bucket. Scores outside
// [MoodMin, MoodMax] map to the neutral bucket.
func MoodColorFor(mood int) MoodColor {
	if mood < MoodMin || mood > MoodMax {
		return MoodNeutral
	}
	return moodScale[mood-MoodMin]
}

// Hex returns the display color for the bucket.
func (m MoodColor) Hex() string {
	if hex, ok := moodHex[m]; ok {
		return hex
	}
	return moodHex[MoodNeutral]
}
