package professionals

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const professionalsFixture = `[
	{"id":1,"nome":"Dra. Helena Prado","email":"helena@clinica.com","numeroConselho":"12345","conselho":"CRM","especialidades":[{"id":4,"nome":"Cardiologia"}],"procedimentos":[{"id":8,"nome":"Consulta","valor":200,"duracao":30}]},
	{"Id":2,"Nome":"Dr. Paulo Reis","Ativo":false,"Especialidades":[{"Id":5,"Nome":"Dermatologia"}]},
	{"nome":"Sem id"}
]`

type fakeUpstream struct {
	reply  string
	err    error
	bodies []map[string]any
}

func (f *fakeUpstream) Call(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var decoded map[string]any
	encoded, _ := json.Marshal(body)
	_ = json.Unmarshal(encoded, &decoded)
	f.bodies = append(f.bodies, decoded)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.reply), nil
}

func TestProfessionalUsecase_FindAll(t *testing.T) {
	t.Run("maps nested specialties and services", func(t *testing.T) {
		upstream := &fakeUpstream{reply: professionalsFixture}
		uc := NewProfessionalUsecase(upstream, nil, 70, zap.NewNop())

		professionals, pagination, err := uc.FindAll(context.Background(), requests.ProfessionalFilter{})
		require.NoError(t, err)
		require.Len(t, professionals, 2)
		assert.Equal(t, 2, pagination.TotalRecords)

		first := professionals[0]
		assert.Equal(t, "CRM", first.RegistrationCouncil)
		assert.True(t, first.Active)
		require.Len(t, first.Specialties, 1)
		require.Len(t, first.Services, 1)
		assert.Equal(t, 30, *first.Services[0].Duration)
		assert.False(t, professionals[1].Active)

		assert.Equal(t, float64(70), upstream.bodies[0]["IdConvenio"])
	})

	t.Run("explicit health insurance overrides the default", func(t *testing.T) {
		upstream := &fakeUpstream{reply: "[]"}
		uc := NewProfessionalUsecase(upstream, nil, 70, zap.NewNop())

		_, _, err := uc.FindAll(context.Background(), requests.ProfessionalFilter{HealthInsuranceID: "12", SpecialtyID: "4"})
		require.NoError(t, err)
		assert.Equal(t, float64(12), upstream.bodies[0]["IdConvenio"])
		assert.Equal(t, float64(4), upstream.bodies[0]["IdEspecialidade"])
	})

	t.Run("no default configured", func(t *testing.T) {
		upstream := &fakeUpstream{reply: "[]"}
		uc := NewProfessionalUsecase(upstream, nil, 0, zap.NewNop())

		_, _, err := uc.FindAll(context.Background(), requests.ProfessionalFilter{})
		require.NoError(t, err)
		assert.NotContains(t, upstream.bodies[0], "IdConvenio")
	})

	t.Run("search matches specialty names", func(t *testing.T) {
		uc := NewProfessionalUsecase(&fakeUpstream{reply: professionalsFixture}, nil, 0, zap.NewNop())

		professionals, _, err := uc.FindAll(context.Background(), requests.ProfessionalFilter{Search: "dermato"})
		require.NoError(t, err)
		require.Len(t, professionals, 1)
		assert.Equal(t, "2", professionals[0].ID)
	})

	t.Run("enabled filter", func(t *testing.T) {
		enabled := true
		uc := NewProfessionalUsecase(&fakeUpstream{reply: professionalsFixture}, nil, 0, zap.NewNop())

		professionals, _, err := uc.FindAll(context.Background(), requests.ProfessionalFilter{Enabled: &enabled})
		require.NoError(t, err)
		require.Len(t, professionals, 1)
		assert.Equal(t, "1", professionals[0].ID)
	})

	t.Run("invalid specialty id", func(t *testing.T) {
		uc := NewProfessionalUsecase(&fakeUpstream{}, nil, 0, zap.NewNop())

		_, _, err := uc.FindAll(context.Background(), requests.ProfessionalFilter{SpecialtyID: "cardio"})
		assert.Equal(t, constvars.ErrCodeInvalidID, exceptions.CodeOf(err))
	})

	t.Run("upstream failure", func(t *testing.T) {
		upstream := &fakeUpstream{err: exceptions.ErrUpstreamUnavailable(errors.New("refused"))}
		uc := NewProfessionalUsecase(upstream, nil, 0, zap.NewNop())

		professionals, pagination, err := uc.FindAll(context.Background(), requests.ProfessionalFilter{})
		require.NoError(t, err)
		assert.Empty(t, professionals)
		assert.Equal(t, 0, pagination.TotalRecords)
	})
}

func TestProfessionalUsecase_FindByID(t *testing.T) {
	upstream := &fakeUpstream{reply: professionalsFixture}
	uc := NewProfessionalUsecase(upstream, nil, 70, zap.NewNop())

	professional, err := uc.FindByID(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, professional)
	assert.Equal(t, "Dra. Helena Prado", professional.Name)
	assert.Equal(t, map[string]any{"IdProfissional": float64(1)}, upstream.bodies[0])

	empty := NewProfessionalUsecase(&fakeUpstream{reply: "[]"}, nil, 0, zap.NewNop())
	professional, err = empty.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Nil(t, professional)
}
