package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/appointment"
)

func newPatient(id int64, name string) *model.Patient {
	return &model.Patient{ID: id, Name: name, Phone: "555-0000", BirthDate: "1990-01-01"}
}

func capture(book *appointment.Service) *[]string {
	var messages []string
	book.Subscribe("capture", func(msg string) {
		messages = append(messages, msg)
	})
	return &messages
}

func TestScheduleAppointmentNotifiesOnSuccess(t *testing.T) {
	book := appointment.NewService(nil)
	messages := capture(book)
	p := newPatient(1, "Juan Pérez")

	cmd := NewScheduleAppointment(book, p, "2024-06-01 10:00", "Checkup")

	require.True(t, cmd.Execute())
	require.NotNil(t, cmd.Appointment)
	assert.NoError(t, cmd.Err())
	assert.Equal(t, []string{"New appointment scheduled for Juan Pérez on 2024-06-01 10:00."}, *messages)
}

func TestScheduleAppointmentSuppressesNotifyOnConflict(t *testing.T) {
	book := appointment.NewService(nil)
	p := newPatient(1, "Juan Pérez")
	_, err := book.Schedule(p, "2024-06-01 10:00", "Checkup")
	require.NoError(t, err)

	messages := capture(book)
	cmd := NewScheduleAppointment(book, newPatient(2, "Ana López"), "2024-06-01 10:00", "Cleaning")

	assert.False(t, cmd.Execute())
	assert.Nil(t, cmd.Appointment)
	assert.ErrorIs(t, cmd.Err(), model.ErrSlotConflict)
	assert.Empty(t, *messages)
}

func TestScheduleAppointmentSuppressesNotifyOnBadFormat(t *testing.T) {
	book := appointment.NewService(nil)
	messages := capture(book)

	cmd := NewScheduleAppointment(book, newPatient(1, "Juan Pérez"), "tomorrow at ten", "Checkup")

	assert.False(t, cmd.Execute())
	assert.ErrorIs(t, cmd.Err(), model.ErrInvalidDateTimeFormat)
	assert.Empty(t, *messages)
}

func TestCancelAppointmentNotifiesOnSuccess(t *testing.T) {
	book := appointment.NewService(nil)
	p := newPatient(1, "Juan Pérez")
	appt, err := book.Schedule(p, "2024-06-01 10:00", "Checkup")
	require.NoError(t, err)

	messages := capture(book)
	cmd := NewCancelAppointment(book, appt)

	require.True(t, cmd.Execute())
	assert.Equal(t, model.AppointmentStatusCancelled, appt.Status)
	assert.Equal(t, []string{"Appointment cancelled for Juan Pérez on 2024-06-01 10:00."}, *messages)
}

func TestCancelAppointmentSuppressesNotifyForStrayAppointment(t *testing.T) {
	book := appointment.NewService(nil)
	messages := capture(book)
	stray := &model.Appointment{ID: 7, PatientName: "Juan Pérez", Status: model.AppointmentStatusScheduled}

	cmd := NewCancelAppointment(book, stray)

	assert.False(t, cmd.Execute())
	assert.Empty(t, *messages)
}
