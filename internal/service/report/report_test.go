package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
)

func TestPatientList(t *testing.T) {
	patients := []*model.Patient{
		{ID: 1, Name: "Juan Pérez", Phone: "555-1234"},
		{ID: 2, Name: "Ana López", Phone: "555-5678"},
	}

	got := PatientList(patients)

	want := "Registered Patients:\n" +
		"----------------------------------\n" +
		"1. Juan Pérez - Tel: 555-1234\n" +
		"2. Ana López - Tel: 555-5678\n"
	assert.Equal(t, want, got)
}

func TestPatientListEmpty(t *testing.T) {
	got := PatientList(nil)

	want := "Registered Patients:\n" +
		"----------------------------------\n" +
		"No patients registered.\n"
	assert.Equal(t, want, got)
}

func mustTime(t *testing.T, text string) time.Time {
	t.Helper()
	ts, err := model.ParseDateTime(text)
	require.NoError(t, err)
	return ts
}

func TestAppointmentsByDay(t *testing.T) {
	appointments := []*model.Appointment{
		{PatientName: "Juan Pérez", DateTime: mustTime(t, "2024-06-01 10:00"), Reason: "Checkup", Status: model.AppointmentStatusScheduled},
		{PatientName: "Ana López", DateTime: mustTime(t, "2024-06-02 11:00"), Reason: "Cleaning", Status: model.AppointmentStatusScheduled},
		{PatientName: "Ana López", DateTime: mustTime(t, "2024-06-01 14:30"), Reason: "Filling", Status: model.AppointmentStatusCancelled},
	}

	got := AppointmentsByDay(appointments, "2024-06-01")

	// cancelled appointments still show: the report is by day, not by status
	want := "Appointments for 2024-06-01:\n" +
		"--------------------------------------\n" +
		"- Juan Pérez at 10:00 (Checkup)\n" +
		"- Ana López at 14:30 (Filling)\n" +
		"\nTotal appointments: 2\n"
	assert.Equal(t, want, got)
}

func TestAppointmentsByDayNoMatches(t *testing.T) {
	appointments := []*model.Appointment{
		{PatientName: "Juan Pérez", DateTime: mustTime(t, "2024-06-01 10:00"), Reason: "Checkup", Status: model.AppointmentStatusScheduled},
	}

	got := AppointmentsByDay(appointments, "2024-07-15")

	want := "Appointments for 2024-07-15:\n" +
		"--------------------------------------\n" +
		"No appointments scheduled for this date.\n" +
		"\nTotal appointments: 0\n"
	assert.Equal(t, want, got)
}

func TestAppointmentsByDayMissingDate(t *testing.T) {
	assert.Equal(t, "Report generation cancelled.\n", AppointmentsByDay(nil, ""))
}

func TestAppointmentsByDayMalformedDate(t *testing.T) {
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.\n", AppointmentsByDay(nil, "01/06/2024"))
}

func TestCommonTreatments(t *testing.T) {
	counts := []model.TreatmentCount{
		{Description: "cleaning", Count: 3},
		{Description: "filling", Count: 1},
	}

	got := CommonTreatments(counts)

	want := "Most Common Treatments:\n" +
		"-------------------------------------\n" +
		"- Cleaning: 3 times\n" +
		"- Filling: 1 times\n"
	assert.Equal(t, want, got)
}

func TestCommonTreatmentsEmpty(t *testing.T) {
	got := CommonTreatments(nil)

	want := "Most Common Treatments:\n" +
		"-------------------------------------\n" +
		"No treatments recorded.\n"
	assert.Equal(t, want, got)
}
