// Package command binds appointment mutations to their follow-up
// notifications. The book itself never announces state changes; these
// wrappers are the only callers of Notify, keeping the mutation and
// the side-effecting announcement separable.
package command

import (
	"fmt"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/appointment"
)

// Command is one invocable unit: all arguments are bound at
// construction, Execute takes none and reports success.
type Command interface {
	Execute() bool
}

// ScheduleAppointment schedules a bound slot and, on success,
// announces it to the book's subscribers.
type ScheduleAppointment struct {
	book         *appointment.Service
	patient      *model.Patient
	dateTimeText string
	reason       string

	// Appointment holds the created record after a successful Execute.
	Appointment *model.Appointment
	err         error
}

func NewScheduleAppointment(book *appointment.Service, patient *model.Patient, dateTimeText, reason string) *ScheduleAppointment {
	return &ScheduleAppointment{
		book:         book,
		patient:      patient,
		dateTimeText: dateTimeText,
		reason:       reason,
	}
}

func (c *ScheduleAppointment) Execute() bool {
	appt, err := c.book.Schedule(c.patient, c.dateTimeText, c.reason)
	if err != nil {
		c.err = err
		return false
	}
	c.Appointment = appt
	c.book.Notify(fmt.Sprintf("New appointment scheduled for %s on %s.", c.patient.Name, c.dateTimeText))
	return true
}

// Err returns the scheduling failure after an unsuccessful Execute.
func (c *ScheduleAppointment) Err() error { return c.err }

// CancelAppointment cancels a bound appointment and, on success,
// announces the cancellation.
type CancelAppointment struct {
	book        *appointment.Service
	appointment *model.Appointment
}

func NewCancelAppointment(book *appointment.Service, appt *model.Appointment) *CancelAppointment {
	return &CancelAppointment{book: book, appointment: appt}
}

func (c *CancelAppointment) Execute() bool {
	if !c.book.Cancel(c.appointment) {
		return false
	}
	c.book.Notify(fmt.Sprintf("Appointment cancelled for %s on %s.", c.appointment.PatientName, c.appointment.TimeText()))
	return true
}
