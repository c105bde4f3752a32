package model

// Patient is a clinic patient record. IDs are assigned sequentially by
// the registry, never reused, and immutable after creation. BirthDate
// is kept as validated YYYY-MM-DD text. Treatments is the patient's own
// append-only history, owned exclusively by this record.
type Patient struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address,omitempty"`
	BirthDate      string       `json:"birth_date"`
	MedicalHistory string       `json:"medical_history,omitempty"`
	Treatments     []*Treatment `json:"-"`
}

type RegisterPatientRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Phone          string `json:"phone" binding:"required,max=40"`
	Address        string `json:"address" binding:"max=300"`
	BirthDate      string `json:"birth_date" binding:"required,dateformat"`
	MedicalHistory string `json:"medical_history"`
}

// UpdatePatientRequest replaces only the fields whose supplied value is
// non-empty; empty fields keep their current value.
type UpdatePatientRequest struct {
	Name           string `json:"name,omitempty" binding:"max=200"`
	Phone          string `json:"phone,omitempty" binding:"max=40"`
	Address        string `json:"address,omitempty" binding:"max=300"`
	BirthDate      string `json:"birth_date,omitempty" binding:"omitempty,dateformat"`
	MedicalHistory string `json:"medical_history,omitempty"`
}
