// Package patient implements the clinic's patient registry.
package patient

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// Service owns the patient collection and the id counter. Lookups are
// linear scans; the registry is small enough that an index would buy
// nothing. The mutex serializes the counter and the collection
// together so ids stay unique under concurrent requests.
type Service struct {
	mu       sync.Mutex
	patients []*model.Patient
	nextID   int64
}

func NewService() *Service {
	return &Service{nextID: 1}
}

// Register validates the birth date, assigns the next sequential id
// and stores the patient. Ids start at 1 and are never reused.
func (s *Service) Register(name, phone, address, birthDate, medicalHistory string) (*model.Patient, error) {
	if _, err := model.ParseDate(birthDate); err != nil {
		return nil, fmt.Errorf("register patient: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &model.Patient{
		ID:             s.nextID,
		Name:           name,
		Phone:          phone,
		Address:        address,
		BirthDate:      birthDate,
		MedicalHistory: medicalHistory,
	}
	s.patients = append(s.patients, p)
	s.nextID++

	log.Info().Int64("patient_id", p.ID).Str("name", p.Name).Msg("patient registered")
	return p, nil
}

// FindByID returns the patient with the given id, or nil.
func (s *Service) FindByID(id int64) *model.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindByName returns patients whose name contains the query,
// case-insensitively, in registration order.
func (s *Service) FindByName(query string) []*model.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	found := make([]*model.Patient, 0)
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.Name), q) {
			found = append(found, p)
		}
	}
	return found
}

// Update overwrites only the fields whose supplied value is non-empty.
// A supplied birth date is re-validated before anything is applied, so
// a malformed date leaves the record untouched. Returns false when no
// patient has the given id.
func (s *Service) Update(id int64, req *model.UpdatePatientRequest) (bool, error) {
	if req.BirthDate != "" {
		if _, err := model.ParseDate(req.BirthDate); err != nil {
			return false, fmt.Errorf("update patient %d: %w", id, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var target *model.Patient
	for _, p := range s.patients {
		if p.ID == id {
			target = p
			break
		}
	}
	if target == nil {
		return false, nil
	}

	if req.Name != "" {
		target.Name = req.Name
	}
	if req.Phone != "" {
		target.Phone = req.Phone
	}
	if req.Address != "" {
		target.Address = req.Address
	}
	if req.BirthDate != "" {
		target.BirthDate = req.BirthDate
	}
	if req.MedicalHistory != "" {
		target.MedicalHistory = req.MedicalHistory
	}

	log.Info().Int64("patient_id", id).Msg("patient updated")
	return true, nil
}

// ListAll returns every patient in registration order.
func (s *Service) ListAll() []*model.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}
