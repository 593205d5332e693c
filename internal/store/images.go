package store

import (
	"encoding/json"
	"strings"
)

// legacyImageSep is the separator the first release used to join image URIs
// into a single text column. Rows written in that format must keep decoding.
const legacyImageSep = "|||"

// encodeImages serialises the ordered URI list as a JSON array. Marshalling
// a string slice cannot fail, and nil encodes as an empty list.
func encodeImages(images []string) string {
	if len(images) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(images)
	return string(data)
}

// decodeImages reads the JSON form written today and falls back to the
// historical separator-joined form for rows written by old releases.
// URIs never start with '[', so the prefix check is unambiguous.
func decodeImages(raw string) []string {
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
	return strings.Split(raw, legacyImageSep)
}
