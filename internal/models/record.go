package models

import (
	"fmt"
	"time"
)

// Record is one saved GPA calculation snapshot owned by a user. ID is
// assigned by the store on append; records are never updated in place.
type Record struct {
	ID            int64
	UserID        string
	SavedDate     string
	SemesterNum   int
	UnweightedGPA float64
	WeightedGPA   float64
	PDFLink       string
}

// savedDateLayouts are the accepted timestamp forms, most specific first.
var savedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSavedDate parses a stored saved-date string. Listing uses it to detect
// malformed rows, presentation uses it for sorting and display.
func ParseSavedDate(s string) (time.Time, error) {
	for _, layout := range savedDateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable saved date %q", s)
}

// SavedTime returns the parsed SavedDate.
func (r *Record) SavedTime() (time.Time, error) {
	return ParseSavedDate(r.SavedDate)
}
