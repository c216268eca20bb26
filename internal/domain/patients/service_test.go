package patients_test

import (
	"context"
	"strings"
	"testing"

	mem "health-records/internal/adapters/storage/memory"
	"health-records/internal/domain/patients"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *patients.Service {
	return patients.NewService(mem.NewStore().Patients())
}

func TestCreate_GeneratesOpaqueID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patients.CreateInput{
		Name:    "Jane Doe",
		DOB:     "1990-01-01",
		Contact: "555-0100",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.ID, "patient_"))
	assert.False(t, p.CreatedAt.IsZero())

	// create seguido de list: exactamente un registro con los campos enviados
	got, err := svc.List(ctx, patients.SortNewest)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p.ID, got[0].ID)
	assert.Equal(t, "Jane Doe", got[0].Name)
	assert.Equal(t, "1990-01-01", got[0].DOB)
	assert.Equal(t, "555-0100", got[0].Contact)
}

func TestCreate_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p, err := svc.Create(ctx, patients.CreateInput{
			Name:    "Jane Doe",
			DOB:     "1990-01-01",
			Contact: "555-0100",
		})
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "id repetido: %s", p.ID)
		seen[p.ID] = true
	}
}

func TestCreate_HonorsCallerSuppliedID(t *testing.T) {
	svc := newService()

	p, err := svc.Create(context.Background(), patients.CreateInput{
		ID:      "ext-42",
		Name:    "Jane Doe",
		DOB:     "1990-01-01",
		Contact: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-42", p.ID)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	cases := []patients.CreateInput{
		{Name: "", DOB: "1990-01-01", Contact: "555-0100"},         // sin nombre
		{Name: "A", DOB: "1990-01-01", Contact: "555-0100"},        // nombre corto
		{Name: "Jane Doe", DOB: "", Contact: "555-0100"},           // sin dob
		{Name: "Jane Doe", DOB: "3099-01-01", Contact: "555-0100"}, // dob futuro
		{Name: "Jane Doe", DOB: "1990-01-01", Contact: ""},         // sin contacto
		{Name: "Jane Doe", DOB: "1990-01-01", Contact: "abc"},      // contacto inválido
		{Name: "Jane Doe", DOB: "1990-01-01", Contact: "555-0100", BloodType: "Z+"},
	}

	for _, in := range cases {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, patients.ErrInvalidInput, "input %+v", in)
	}

	// nada quedó persistido
	got, err := svc.List(ctx, patients.SortNewest)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdate_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patients.CreateInput{
		Name:    "Jane Doe",
		DOB:     "1990-01-01",
		Contact: "555-0100",
	})
	require.NoError(t, err)

	in := patients.UpdateInput{
		Name:      "Jane Smith",
		DOB:       "1990-01-01",
		Contact:   "+1 (555) 123-4567",
		BloodType: "O-",
		Address:   "123 Main St",
	}

	// aplicar el mismo update dos veces deja el mismo registro
	require.NoError(t, svc.Update(ctx, p.ID, in))
	first, err := svc.List(ctx, patients.SortNewest)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, p.ID, in))
	second, err := svc.List(ctx, patients.SortNewest)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Equal(t, "Jane Smith", second[0].Name)
	assert.Equal(t, "O-", second[0].BloodType)
}

func TestUpdate_AbsentIDIsNoop(t *testing.T) {
	svc := newService()

	err := svc.Update(context.Background(), "ghost", patients.UpdateInput{
		Name:    "Jane Doe",
		DOB:     "1990-01-01",
		Contact: "555-0100",
	})
	assert.NoError(t, err)
}

func TestDelete_AbsentIDIsNoop(t *testing.T) {
	svc := newService()
	assert.NoError(t, svc.Delete(context.Background(), "ghost"))
}
