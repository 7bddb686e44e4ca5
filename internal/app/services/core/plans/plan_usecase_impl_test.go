package plans

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

func TestPlanUsecase_FindAll(t *testing.T) {
	upstream := &fakeUpstream{reply: `[{"id":1,"nome":"Básico"},{"id":2,"nome":"Premium","convenioId":71,"ativo":false}]`}
	uc := NewPlanUsecase(upstream, nil, zap.NewNop())

	plans, pagination, err := uc.FindAll(context.Background(), requests.PlanFilter{HealthInsuranceID: "70", LocationID: "3"})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 2, pagination.TotalRecords)
	assert.Equal(t, "70", plans[0].HealthInsuranceID)
	assert.Equal(t, "71", plans[1].HealthInsuranceID)
	assert.True(t, plans[0].Active)
	assert.False(t, plans[1].Active)
	assert.Equal(t, map[string]any{"IdConvenio": float64(70), "IdUnidade": float64(3)}, upstream.bodies[0])

	plans, _, err = uc.FindAll(context.Background(), requests.PlanFilter{Search: "prem"})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "2", plans[0].ID)
}

func TestPlanUsecase_FindAllFailures(t *testing.T) {
	uc := NewPlanUsecase(&fakeUpstream{}, nil, zap.NewNop())
	_, _, err := uc.FindAll(context.Background(), requests.PlanFilter{ProfessionalID: "x1"})
	assert.Equal(t, constvars.ErrCodeInvalidID, exceptions.CodeOf(err))

	failing := NewPlanUsecase(&fakeUpstream{err: exceptions.ErrUpstreamUnavailable(errors.New("refused"))}, nil, zap.NewNop())
	plans, pagination, err := failing.FindAll(context.Background(), requests.PlanFilter{})
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.Equal(t, 0, pagination.TotalRecords)
}

func TestPlanUsecase_FindByID(t *testing.T) {
	upstream := &fakeUpstream{reply: `[{"id":2,"nome":"Premium"}]`}
	uc := NewPlanUsecase(upstream, nil, zap.NewNop())

	plan, err := uc.FindByID(context.Background(), "2")
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "Premium", plan.Name)
	assert.Equal(t, map[string]any{"IdPlano": float64(2)}, upstream.bodies[0])

	empty := NewPlanUsecase(&fakeUpstream{reply: `[]`}, nil, zap.NewNop())
	plan, err = empty.FindByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Nil(t, plan)
}
