// Package report builds plain-text reports from collection snapshots.
// Builders are pure functions; displaying the text is the presentation
// layer's concern.
package report

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// PatientList renders the registry as numbered "name - Tel: phone"
// lines.
func PatientList(patients []*model.Patient) string {
	var b strings.Builder
	b.WriteString("Registered Patients:\n")
	b.WriteString("----------------------------------\n")
	if len(patients) == 0 {
		b.WriteString("No patients registered.\n")
	}
	for i, p := range patients {
		fmt.Fprintf(&b, "%d. %s - Tel: %s\n", i+1, p.Name, p.Phone)
	}
	return b.String()
}

// AppointmentsByDay lists appointments of every status whose date
// component matches dateText. A missing or malformed date is reported
// as text, not as an error: the report itself carries the failure.
func AppointmentsByDay(appointments []*model.Appointment, dateText string) string {
	if dateText == "" {
		return "Report generation cancelled.\n"
	}
	target, err := model.ParseDate(dateText)
	if err != nil {
		return "Invalid date format. Use YYYY-MM-DD.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Appointments for %s:\n", dateText)
	b.WriteString("--------------------------------------\n")

	count := 0
	ty, tm, td := target.Date()
	for _, a := range appointments {
		y, m, d := a.DateTime.Date()
		if y == ty && m == tm && d == td {
			fmt.Fprintf(&b, "- %s at %s (%s)\n", a.PatientName, a.DateTime.Format("15:04"), a.Reason)
			count++
		}
	}
	if count == 0 {
		b.WriteString("No appointments scheduled for this date.\n")
	}
	fmt.Fprintf(&b, "\nTotal appointments: %d\n", count)
	return b.String()
}

// CommonTreatments renders the frequency tally, most frequent first.
func CommonTreatments(counts []model.TreatmentCount) string {
	var b strings.Builder
	b.WriteString("Most Common Treatments:\n")
	b.WriteString("-------------------------------------\n")
	if len(counts) == 0 {
		b.WriteString("No treatments recorded.\n")
		return b.String()
	}
	for _, c := range counts {
		fmt.Fprintf(&b, "- %s: %d times\n", capitalize(c.Description), c.Count)
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
