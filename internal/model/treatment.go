package model

import (
	"encoding/json"
	"time"
)

// Treatment is one performed procedure. Immutable once created; it is
// appended to both the owning patient's history and the clinic-wide
// ledger in the same call. IDs are sequential across all patients.
type Treatment struct {
	ID           int64    `json:"id"`
	Patient      *Patient `json:"-"`
	PatientID    int64    `json:"patient_id"`
	Date         time.Time `json:"-"`
	Description  string   `json:"description"`
	Practitioner string   `json:"practitioner"`
}

// DateText renders the treatment date in the fixed YYYY-MM-DD layout.
func (t *Treatment) DateText() string {
	return t.Date.Format(DateLayout)
}

func (t *Treatment) MarshalJSON() ([]byte, error) {
	type alias Treatment
	return json.Marshal(struct {
		*alias
		Date string `json:"date"`
	}{(*alias)(t), t.DateText()})
}

type RecordTreatmentRequest struct {
	Date         string `json:"date" binding:"required,dateformat"`
	Description  string `json:"description" binding:"required,max=300"`
	Practitioner string `json:"practitioner" binding:"required,max=200"`
}

// TreatmentCount is one row of the frequency tally: a description
// normalized to trimmed lowercase and how many times it was recorded.
type TreatmentCount struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}
