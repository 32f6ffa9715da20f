package models

import "github.com/julianstephens/daybook/internal/dateutil"

// DayRecord aggregates one calendar day's plan, end-of-day note, self rating,
// and journaling streak snapshot. There is at most one record per day; it is
// created on the first plan or note save and updated in place afterwards.
type DayRecord struct {
	Date dateutil.Day `json:"date"`
	Plan string       `json:"plan"`
	Note string       `json:"note"`
	// Rate is the 1-10 self rating; nil until the day has been rated.
	Rate *int `json:"rate,omitempty"`
	// OnTime records whether the note was written on the day it describes.
	// It is computed once at write time, not recomputed later.
	OnTime bool `json:"on_time"`
	Streak int  `json:"streak"`
}
