package model

import (
	"encoding/json"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is one booked slot. The Patient reference is shared, not
// owned; appointments are never removed from the book, cancellation is
// a status flip. Cancelled is terminal.
type Appointment struct {
	ID          int64             `json:"id"`
	Patient     *Patient          `json:"-"`
	PatientID   int64             `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	DateTime    time.Time         `json:"-"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
}

// TimeText renders the slot in the fixed YYYY-MM-DD HH:MM layout.
func (a *Appointment) TimeText() string {
	return a.DateTime.Format(DateTimeLayout)
}

func (a *Appointment) MarshalJSON() ([]byte, error) {
	type alias Appointment
	return json.Marshal(struct {
		*alias
		DateTime string `json:"date_time"`
	}{(*alias)(a), a.TimeText()})
}

type ScheduleAppointmentRequest struct {
	PatientID int64  `json:"patient_id" binding:"required"`
	DateTime  string `json:"date_time" binding:"required,datetimeformat"`
	Reason    string `json:"reason" binding:"required,max=300"`
}

// Availability is the clinic's weekly open-slot table, keyed by
// weekday name. It is declared and exposed read-only but never
// consulted when scheduling; the book only guards against exact-slot
// double booking.
type Availability map[string][]string
