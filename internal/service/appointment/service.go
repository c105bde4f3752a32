// Package appointment implements the clinic's appointment book.
package appointment

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/notifier"
)

// Service owns the appointment collection, its id counter and the
// notification hook. Appointments are never removed; cancellation
// flips the status so the history stays complete. State mutations do
// not announce themselves: callers (the command wrappers) decide when
// to Notify.
type Service struct {
	*notifier.Notifier

	mu           sync.Mutex
	appointments []*model.Appointment
	nextID       int64
	availability model.Availability
}

func NewService(availability model.Availability) *Service {
	if availability == nil {
		availability = defaultAvailability()
	}
	return &Service{
		Notifier:     notifier.New(),
		nextID:       1,
		availability: availability,
	}
}

// The weekly open-slot table. Loaded from config, exposed read-only,
// and not consulted by Schedule; the only booking rule is the
// exact-slot conflict check.
func defaultAvailability() model.Availability {
	return model.Availability{
		"Monday":  {"09:00", "10:00", "11:00", "14:00", "15:00"},
		"Tuesday": {"09:00", "10:00", "14:00", "15:00", "16:00"},
	}
}

// Schedule books a slot for the patient. It fails when the date-time
// text does not parse, or when another Scheduled appointment holds the
// identical slot. A Cancelled occupant does not block the slot.
func (s *Service) Schedule(patient *model.Patient, dateTimeText, reason string) (*model.Appointment, error) {
	at, err := model.ParseDateTime(dateTimeText)
	if err != nil {
		return nil, fmt.Errorf("schedule appointment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.appointments {
		if a.Status == model.AppointmentStatusScheduled && a.DateTime.Equal(at) {
			return nil, fmt.Errorf("schedule appointment at %s: %w", dateTimeText, model.ErrSlotConflict)
		}
	}

	appt := &model.Appointment{
		ID:          s.nextID,
		Patient:     patient,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DateTime:    at,
		Reason:      reason,
		Status:      model.AppointmentStatusScheduled,
	}
	s.appointments = append(s.appointments, appt)
	s.nextID++

	log.Info().
		Int64("appointment_id", appt.ID).
		Int64("patient_id", patient.ID).
		Str("slot", appt.TimeText()).
		Msg("appointment scheduled")
	return appt, nil
}

// Cancel flips the appointment to Cancelled and reports whether the
// appointment belongs to this book. Cancelling an already-Cancelled
// appointment succeeds silently.
func (s *Service) Cancel(appt *model.Appointment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.appointments {
		if a == appt {
			a.Status = model.AppointmentStatusCancelled
			log.Info().Int64("appointment_id", a.ID).Msg("appointment cancelled")
			return true
		}
	}
	return false
}

// FindByID returns the appointment with the given id, or nil.
func (s *Service) FindByID(id int64) *model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AppointmentsForPatient returns the patient's Scheduled appointments
// in booking order.
func (s *Service) AppointmentsForPatient(patient *model.Patient) []*model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Appointment, 0)
	for _, a := range s.appointments {
		if a.Patient == patient && a.Status == model.AppointmentStatusScheduled {
			out = append(out, a)
		}
	}
	return out
}

// AllScheduled returns every Scheduled appointment in booking order.
// Sorting by date is left to the presentation layer.
func (s *Service) AllScheduled() []*model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Appointment, 0)
	for _, a := range s.appointments {
		if a.Status == model.AppointmentStatusScheduled {
			out = append(out, a)
		}
	}
	return out
}

// All returns the full history, every status, in booking order.
func (s *Service) All() []*model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Availability returns the weekly open-slot table.
func (s *Service) Availability() model.Availability {
	return s.availability
}
