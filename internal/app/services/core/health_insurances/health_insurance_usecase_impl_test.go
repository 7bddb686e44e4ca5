package healthInsurances

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUpstream struct {
	reply   string
	err     error
	paths   []string
	queries []url.Values
}

func (f *fakeUpstream) Call(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	f.paths = append(f.paths, path)
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.reply), nil
}

const healthInsurancesFixture = `[
	{"id":70,"nome":"Assinante Salute","cnpj":"12.345.678/0001-90","ativo":true,"planos":[{"id":1,"nome":"Básico","codigo":"B1","tipo":"AMBULATORIAL"},{"nome":"Sem id"}]},
	{"Id":71,"Nome":"Unimed","Ativo":false}
]`

func TestHealthInsuranceUsecase_FindAll(t *testing.T) {
	t.Run("maps plans and forwards query", func(t *testing.T) {
		upstream := &fakeUpstream{reply: healthInsurancesFixture}
		uc := NewHealthInsuranceUsecase(upstream, nil, zap.NewNop())

		healthInsurances, pagination, err := uc.FindAll(context.Background(), requests.HealthInsuranceFilter{Search: "salute"})
		require.NoError(t, err)
		require.Len(t, healthInsurances, 1)
		assert.Equal(t, 1, pagination.TotalRecords)

		salute := healthInsurances[0]
		assert.Equal(t, "12.345.678/0001-90", salute.RegistrationNumber)
		require.Len(t, salute.Plans, 1)
		assert.Equal(t, "70", salute.Plans[0].HealthInsuranceID)
		assert.Equal(t, "AMBULATORIAL", salute.Plans[0].Type)

		assert.Equal(t, constvars.UpstreamHealthInsuranceSearch, upstream.paths[0])
		assert.Equal(t, "salute", upstream.queries[0].Get("pesquisa"))
		assert.False(t, upstream.queries[0].Has("ativo"))
	})

	t.Run("active filter", func(t *testing.T) {
		active := false
		upstream := &fakeUpstream{reply: healthInsurancesFixture}
		uc := NewHealthInsuranceUsecase(upstream, nil, zap.NewNop())

		healthInsurances, _, err := uc.FindAll(context.Background(), requests.HealthInsuranceFilter{Active: &active})
		require.NoError(t, err)
		require.Len(t, healthInsurances, 1)
		assert.Equal(t, "71", healthInsurances[0].ID)
		assert.NotNil(t, healthInsurances[0].Plans)
		assert.Equal(t, "false", upstream.queries[0].Get("ativo"))
	})

	t.Run("upstream failure", func(t *testing.T) {
		upstream := &fakeUpstream{err: exceptions.ErrUpstreamUnavailable(errors.New("refused"))}
		uc := NewHealthInsuranceUsecase(upstream, nil, zap.NewNop())

		healthInsurances, pagination, err := uc.FindAll(context.Background(), requests.HealthInsuranceFilter{})
		require.NoError(t, err)
		assert.Empty(t, healthInsurances)
		assert.Equal(t, 0, pagination.TotalRecords)
	})
}

func TestHealthInsuranceUsecase_FindByID(t *testing.T) {
	upstream := &fakeUpstream{reply: `{"id":70,"nome":"Assinante Salute"}`}
	uc := NewHealthInsuranceUsecase(upstream, nil, zap.NewNop())

	healthInsurance, err := uc.FindByID(context.Background(), "70")
	require.NoError(t, err)
	require.NotNil(t, healthInsurance)
	assert.Equal(t, "Assinante Salute", healthInsurance.Name)
	assert.Equal(t, "/ConvenioIntegracao/Buscar/70", upstream.paths[0])

	missing := NewHealthInsuranceUsecase(&fakeUpstream{
		err: exceptions.ErrUpstreamAPI(constvars.MethodGet, "/ConvenioIntegracao/Buscar/1", 404, "", nil),
	}, nil, zap.NewNop())
	healthInsurance, err = missing.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Nil(t, healthInsurance)
}
