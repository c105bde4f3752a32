package main

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/model"
	appointmentService "github.com/clinicdesk/clinic-api/internal/service/appointment"
	patientService "github.com/clinicdesk/clinic-api/internal/service/patient"
	treatmentService "github.com/clinicdesk/clinic-api/internal/service/treatment"
)

// seedDemoData loads the sample records the desk application ships
// with. Demo content only; normal operation starts empty.
func seedDemoData(registry *patientService.Service, book *appointmentService.Service, ledger *treatmentService.Service) {
	now := time.Now()
	today := now.Format(model.DateLayout)
	monthDay := func(day int) string {
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location()).Format(model.DateLayout)
	}

	p1, err := registry.Register("Juan Pérez", "555-1234", "Calle Falsa 123", "1980-05-15", "Penicillin allergy")
	if err != nil {
		log.Warn().Err(err).Msg("failed to seed patient")
	} else {
		if _, err := book.Schedule(p1, today+" 10:00", "Dental Cleaning"); err != nil {
			log.Warn().Err(err).Msg("failed to seed appointment")
		}
		if _, err := ledger.Record(p1, monthDay(1), "Wisdom Tooth Extraction", "Dr. Sonrisas"); err != nil {
			log.Warn().Err(err).Msg("failed to seed treatment")
		}
		if _, err := ledger.Record(p1, monthDay(5), "Dental Cleaning", "Dra. Alegre"); err != nil {
			log.Warn().Err(err).Msg("failed to seed treatment")
		}
	}

	p2, err := registry.Register("Ana López", "555-5678", "Av. Siempreviva 742", "1992-11-20", "")
	if err != nil {
		log.Warn().Err(err).Msg("failed to seed patient")
	} else {
		if _, err := book.Schedule(p2, today+" 14:00", "General Checkup"); err != nil {
			log.Warn().Err(err).Msg("failed to seed appointment")
		}
		if _, err := ledger.Record(p2, monthDay(3), "Dental Cleaning", "Dra. Alegre"); err != nil {
			log.Warn().Err(err).Msg("failed to seed treatment")
		}
	}

	log.Info().Msg("demo data seeded")
}
