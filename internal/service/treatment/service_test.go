package treatment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
)

func newPatient(id int64, name string) *model.Patient {
	return &model.Patient{ID: id, Name: name, Phone: "555-0000", BirthDate: "1990-01-01"}
}

func TestRecordAppendsToPatientAndLedger(t *testing.T) {
	svc := NewService()
	p := newPatient(1, "Juan Pérez")

	rec, err := svc.Record(p, "2024-06-01", "Cleaning", "Dr. Sonrisas")
	require.NoError(t, err)

	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, "2024-06-01", rec.DateText())
	require.Len(t, p.Treatments, 1)
	assert.Same(t, rec, p.Treatments[0])

	history := svc.TreatmentsForPatient(p)
	require.Len(t, history, 1)
	assert.Same(t, rec, history[0])
}

func TestRecordRejectsMalformedDate(t *testing.T) {
	svc := NewService()
	p := newPatient(1, "Juan Pérez")

	rec, err := svc.Record(p, "01/06/2024", "Cleaning", "Dr. Sonrisas")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, model.ErrInvalidDateFormat)
	assert.Empty(t, p.Treatments)
	assert.Empty(t, svc.MostCommon(-1))
}

func TestRecordAssignsSequentialIDsAcrossPatients(t *testing.T) {
	svc := NewService()
	juan := newPatient(1, "Juan Pérez")
	ana := newPatient(2, "Ana López")

	first, err := svc.Record(juan, "2024-06-01", "Cleaning", "Dr. Sonrisas")
	require.NoError(t, err)
	second, err := svc.Record(ana, "2024-06-02", "Filling", "Dra. Alegre")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMostCommonNormalizesDescriptions(t *testing.T) {
	svc := NewService()
	p := newPatient(1, "Juan Pérez")

	_, err := svc.Record(p, "2024-06-01", "Cleaning", "Dr. Sonrisas")
	require.NoError(t, err)
	_, err = svc.Record(p, "2024-06-02", "  cleaning ", "Dra. Alegre")
	require.NoError(t, err)
	_, err = svc.Record(p, "2024-06-03", "Filling", "Dr. Sonrisas")
	require.NoError(t, err)

	got := svc.MostCommon(2)
	require.Len(t, got, 2)
	assert.Equal(t, model.TreatmentCount{Description: "cleaning", Count: 2}, got[0])
	assert.Equal(t, model.TreatmentCount{Description: "filling", Count: 1}, got[1])
}

func TestMostCommonTiesKeepFirstEncounterOrder(t *testing.T) {
	svc := NewService()
	p := newPatient(1, "Juan Pérez")

	_, err := svc.Record(p, "2024-06-01", "Filling", "Dr. Sonrisas")
	require.NoError(t, err)
	_, err = svc.Record(p, "2024-06-02", "Cleaning", "Dr. Sonrisas")
	require.NoError(t, err)

	got := svc.MostCommon(-1)
	require.Len(t, got, 2)
	assert.Equal(t, "filling", got[0].Description)
	assert.Equal(t, "cleaning", got[1].Description)
}

func TestMostCommonTruncatesToTopN(t *testing.T) {
	svc := NewService()
	p := newPatient(1, "Juan Pérez")

	for _, desc := range []string{"Cleaning", "Cleaning", "Cleaning", "Filling", "Filling", "Whitening"} {
		_, err := svc.Record(p, "2024-06-01", desc, "Dr. Sonrisas")
		require.NoError(t, err)
	}

	got := svc.MostCommon(1)
	require.Len(t, got, 1)
	assert.Equal(t, model.TreatmentCount{Description: "cleaning", Count: 3}, got[0])

	assert.Len(t, svc.MostCommon(-1), 3)
	assert.Empty(t, svc.MostCommon(0))
}

func TestMostCommonEmptyLedger(t *testing.T) {
	svc := NewService()

	assert.Empty(t, svc.MostCommon(5))
}
