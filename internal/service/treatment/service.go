// Package treatment implements the clinic-wide treatment ledger.
package treatment

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// Service owns the global ledger and its id counter. Treatments are
// immutable once recorded and are appended to both the owning
// patient's history and the ledger in the same call. The mutex also
// guards patient history appends so both views stay consistent.
type Service struct {
	mu     sync.Mutex
	ledger []*model.Treatment
	nextID int64
}

func NewService() *Service {
	return &Service{nextID: 1}
}

// Record validates the date and appends a new treatment to the
// patient's history and the ledger.
func (s *Service) Record(patient *model.Patient, dateText, description, practitioner string) (*model.Treatment, error) {
	date, err := model.ParseDate(dateText)
	if err != nil {
		return nil, fmt.Errorf("record treatment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &model.Treatment{
		ID:           s.nextID,
		Patient:      patient,
		PatientID:    patient.ID,
		Date:         date,
		Description:  description,
		Practitioner: practitioner,
	}
	patient.Treatments = append(patient.Treatments, t)
	s.ledger = append(s.ledger, t)
	s.nextID++

	log.Info().
		Int64("treatment_id", t.ID).
		Int64("patient_id", patient.ID).
		Str("description", description).
		Msg("treatment recorded")
	return t, nil
}

// TreatmentsForPatient returns the patient's own history in recorded
// order.
func (s *Service) TreatmentsForPatient(patient *model.Patient) []*model.Treatment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return patient.Treatments
}

// MostCommon tallies the ledger by description normalized to trimmed
// lowercase and returns the topN groups, count descending. Ties keep
// the order groups were first encountered during the scan.
func (s *Service) MostCommon(topN int) []model.TreatmentCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range s.ledger {
		desc := strings.ToLower(strings.TrimSpace(t.Description))
		if _, seen := counts[desc]; !seen {
			order = append(order, desc)
		}
		counts[desc]++
	}

	out := make([]model.TreatmentCount, 0, len(order))
	for _, desc := range order {
		out = append(out, model.TreatmentCount{Description: desc, Count: counts[desc]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if topN >= 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
