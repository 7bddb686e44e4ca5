package patients

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const patientsFixture = `[
	{"id":1,"nome":"João Silva Santos","email":"joao.silva@email.com","telefone":"(11) 99999-1234","cpf":"529.982.247-25","sexo":"MASCULINO","endereco":"Rua das Palmeiras","numero":"456","bairro":"Vila Mariana","cidade":"São Paulo","estado":"SP","cep":"04567-890","convenioId":1,"convenioNome":"Unimed","planoId":1,"planoNome":"Básico","numeroCarteirinha":"123","ativo":true},
	{"Id":2,"Nome":"Maria Oliveira Costa","Celular":"(11) 88888-5678","Cpf":"111.444.777-35","Sexo":"feminino","Ativo":false},
	{"id":3,"nome":"Carlos Roberto Lima","sexo":"X"},
	{"nome":"Sem Identificador"}
]`

type upstreamCall struct {
	Method string
	Path   string
	Body   map[string]any
}

type fakeUpstream struct {
	reply string
	err   error
	calls []upstreamCall
}

func (f *fakeUpstream) Call(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	call := upstreamCall{Method: method, Path: path}
	if body != nil {
		encoded, _ := json.Marshal(body)
		_ = json.Unmarshal(encoded, &call.Body)
	}
	f.calls = append(f.calls, call)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.reply), nil
}

func TestPatientUsecase_FindAll(t *testing.T) {
	inactive := false

	testCases := []struct {
		name    string
		filter  requests.PatientFilter
		wantIDs []string
	}{
		{name: "no filters", filter: requests.PatientFilter{}, wantIDs: []string{"1", "2", "3"}},
		{name: "search by name", filter: requests.PatientFilter{Search: "oliveira"}, wantIDs: []string{"2"}},
		{name: "search by email", filter: requests.PatientFilter{Search: "JOAO.SILVA"}, wantIDs: []string{"1"}},
		{name: "search by unformatted phone", filter: requests.PatientFilter{Search: "11888885678"}, wantIDs: []string{"2"}},
		{name: "partial cpf", filter: requests.PatientFilter{CPF: "529.982"}, wantIDs: []string{"1"}},
		{name: "cpf wins over search", filter: requests.PatientFilter{CPF: "11144477735", Search: "João"}, wantIDs: []string{"2"}},
		{name: "inactive only", filter: requests.PatientFilter{Active: &inactive}, wantIDs: []string{"2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPatientUsecase(&fakeUpstream{reply: patientsFixture}, nil, zap.NewNop())

			patients, pagination, err := uc.FindAll(context.Background(), tc.filter)
			require.NoError(t, err)

			var ids []string
			for _, patient := range patients {
				ids = append(ids, patient.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, len(tc.wantIDs), pagination.TotalRecords)
		})
	}
}

func TestPatientUsecase_FindAllUpstreamFailure(t *testing.T) {
	upstream := &fakeUpstream{err: exceptions.ErrUpstreamUnavailable(errors.New("connection reset"))}
	uc := NewPatientUsecase(upstream, nil, zap.NewNop())

	patients, pagination, err := uc.FindAll(context.Background(), requests.PatientFilter{})
	require.NoError(t, err)
	assert.Empty(t, patients)
	assert.Equal(t, 0, pagination.TotalRecords)
	assert.Equal(t, 0, pagination.TotalPages)
}

func TestMapPatient(t *testing.T) {
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(patientsFixture), &records))

	first, err := mapPatient(records[0])
	require.NoError(t, err)
	assert.Equal(t, "M", first.Gender)
	assert.Equal(t, "(11) 99999-1234", first.Phone)
	require.NotNil(t, first.Address)
	assert.Equal(t, "Rua das Palmeiras", first.Address.Street)
	require.NotNil(t, first.HealthInsurance)
	assert.Equal(t, "Unimed", first.HealthInsurance.Name)
	assert.Equal(t, "1", first.HealthInsurance.PlanID)

	second, err := mapPatient(records[1])
	require.NoError(t, err)
	assert.Equal(t, "F", second.Gender)
	assert.Equal(t, "(11) 88888-5678", second.Phone)
	assert.Empty(t, second.Email)
	assert.Nil(t, second.Address)
	assert.Nil(t, second.HealthInsurance)
	assert.False(t, second.Active)

	third, err := mapPatient(records[2])
	require.NoError(t, err)
	assert.Equal(t, "O", third.Gender)
	assert.True(t, third.Active)

	_, err = mapPatient(records[3])
	assert.Error(t, err)
}

func TestPatientUsecase_Search(t *testing.T) {
	t.Run("requires a criterion", func(t *testing.T) {
		upstream := &fakeUpstream{reply: patientsFixture}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		_, _, err := uc.Search(context.Background(), requests.ClientSearch{})
		assert.Equal(t, constvars.ErrCodeMissingParams, exceptions.CodeOf(err))
		assert.Empty(t, upstream.calls)
	})

	t.Run("rejects an invalid cpf", func(t *testing.T) {
		uc := NewPatientUsecase(&fakeUpstream{reply: patientsFixture}, nil, zap.NewNop())

		_, _, err := uc.Search(context.Background(), requests.ClientSearch{CPF: "123.456.789-00"})
		assert.Equal(t, constvars.ErrCodeValidation, exceptions.CodeOf(err))
	})

	t.Run("rejects a short phone", func(t *testing.T) {
		uc := NewPatientUsecase(&fakeUpstream{reply: patientsFixture}, nil, zap.NewNop())

		_, _, err := uc.Search(context.Background(), requests.ClientSearch{Phone: "12345"})
		assert.Equal(t, constvars.ErrCodeValidation, exceptions.CodeOf(err))
	})

	t.Run("searches by phone", func(t *testing.T) {
		uc := NewPatientUsecase(&fakeUpstream{reply: patientsFixture}, nil, zap.NewNop())

		patients, _, err := uc.Search(context.Background(), requests.ClientSearch{Phone: "11999991234"})
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "1", patients[0].ID)
	})

	t.Run("sends a complete cpf upstream", func(t *testing.T) {
		upstream := &fakeUpstream{reply: patientsFixture}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		patients, _, err := uc.Search(context.Background(), requests.ClientSearch{CPF: "529.982.247-25"})
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "52998224725", upstream.calls[0].Body["Cpf"])
	})

	t.Run("total counts matches beyond the cap", func(t *testing.T) {
		items := make([]string, 0, 60)
		for i := 1; i <= 60; i++ {
			items = append(items, fmt.Sprintf(`{"id":%d,"nome":"Paciente %d"}`, i, i))
		}
		uc := NewPatientUsecase(&fakeUpstream{reply: "[" + strings.Join(items, ",") + "]"}, nil, zap.NewNop())

		patients, pagination, err := uc.Search(context.Background(), requests.ClientSearch{Search: "paciente"})
		require.NoError(t, err)
		assert.Len(t, patients, constvars.ClientSearchMaxItems)
		require.NotNil(t, pagination)
		assert.Equal(t, 60, pagination.TotalRecords)
	})
}

func TestPatientUsecase_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		upstream := &fakeUpstream{reply: `{"id":1,"nome":"João"}`}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		patient, err := uc.FindByID(context.Background(), "1")
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "João", patient.Name)
		assert.Equal(t, "/PacienteIntegracao/Buscar/1", upstream.calls[0].Path)
	})

	t.Run("null body", func(t *testing.T) {
		uc := NewPatientUsecase(&fakeUpstream{reply: `null`}, nil, zap.NewNop())

		patient, err := uc.FindByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Nil(t, patient)
	})

	t.Run("upstream 404", func(t *testing.T) {
		upstream := &fakeUpstream{err: exceptions.ErrUpstreamAPI(constvars.MethodGet, "/PacienteIntegracao/Buscar/1", 404, "", nil)}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		patient, err := uc.FindByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Nil(t, patient)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		upstream := &fakeUpstream{err: exceptions.ErrUpstreamUnavailable(errors.New("timeout"))}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		_, err := uc.FindByID(context.Background(), "1")
		assert.Equal(t, constvars.ErrCodeServiceUnavailable, exceptions.CodeOf(err))
	})
}

func TestPatientUsecase_Write(t *testing.T) {
	request := &requests.PatientWrite{
		Name:   "Ana Souza",
		Phone:  "(11) 91234-5678",
		CPF:    "529.982.247-25",
		Gender: "F",
		Address: &requests.PatientAddress{
			Street: "Rua A",
			City:   "Campinas",
		},
		HealthInsurance: &requests.PatientEnrollment{ID: "4", PlanID: "9", CardNumber: "777"},
	}

	t.Run("create", func(t *testing.T) {
		upstream := &fakeUpstream{reply: `{"id":10,"nome":"Ana Souza","sexo":"F"}`}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		patient, err := uc.Create(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, "10", patient.ID)

		call := upstream.calls[0]
		assert.Equal(t, constvars.MethodPost, call.Method)
		assert.Equal(t, constvars.UpstreamPatientCreate, call.Path)
		assert.Equal(t, "52998224725", call.Body["cpf"])
		assert.Equal(t, "Rua A", call.Body["endereco"])
		assert.Equal(t, float64(4), call.Body["convenioId"])
		assert.Equal(t, float64(9), call.Body["planoId"])
		assert.NotContains(t, call.Body, "id")
	})

	t.Run("update", func(t *testing.T) {
		upstream := &fakeUpstream{reply: `{"id":10,"nome":"Ana Souza"}`}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		update := *request
		update.ID = "10"
		_, err := uc.Update(context.Background(), &update)
		require.NoError(t, err)

		call := upstream.calls[0]
		assert.Equal(t, constvars.MethodPut, call.Method)
		assert.Equal(t, constvars.UpstreamPatientUpdate, call.Path)
		assert.Equal(t, float64(10), call.Body["id"])
	})

	t.Run("update with invalid id", func(t *testing.T) {
		upstream := &fakeUpstream{}
		uc := NewPatientUsecase(upstream, nil, zap.NewNop())

		update := *request
		update.ID = "abc"
		_, err := uc.Update(context.Background(), &update)
		assert.Equal(t, constvars.ErrCodeInvalidID, exceptions.CodeOf(err))
		assert.Empty(t, upstream.calls)
	})
}
