package locations

import (
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"context"
	"net/url"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUpstream struct {
	reply  string
	bodies []map[string]any
}

func (f *fakeUpstream) Call(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var decoded map[string]any
	encoded, _ := json.Marshal(body)
	_ = json.Unmarshal(encoded, &decoded)
	f.bodies = append(f.bodies, decoded)
	return []byte(f.reply), nil
}

const locationsFixture = `[
	{"id":1,"nome":"Unidade Centro","endereco":"Av. Paulista","numero":"1000","complemento":"Sala 12","bairro":"Bela Vista","cidade":"São Paulo","estado":"SP","cep":"01310-100"},
	{"Id":2,"Nome":"Unidade Campinas","Endereco":"Rua Barão","Bairro":"Cambuí","Cidade":"Campinas","Ativo":false}
]`

func TestComposeAddress(t *testing.T) {
	testCases := []struct {
		name   string
		record fieldmap.Record
		want   string
	}{
		{name: "all parts", record: fieldmap.Record{"endereco": "Rua A", "numero": "10", "complemento": "Apto 1", "bairro": "Centro"}, want: "Rua A, 10, Apto 1, Centro"},
		{name: "missing number", record: fieldmap.Record{"endereco": "Rua A", "bairro": "Centro"}, want: "Rua A, Centro"},
		{name: "empty", record: fieldmap.Record{}, want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, composeAddress(tc.record))
		})
	}
}

func TestLocationUsecase_FindAll(t *testing.T) {
	upstream := &fakeUpstream{reply: locationsFixture}
	uc := NewLocationUsecase(upstream, nil, zap.NewNop())

	locations, pagination, err := uc.FindAll(context.Background(), requests.LocationFilter{SpecialtyID: "4"})
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Av. Paulista, 1000, Sala 12, Bela Vista", locations[0].Address)
	assert.Equal(t, "01310-100", locations[0].ZipCode)
	assert.True(t, locations[0].Active)
	assert.False(t, locations[1].Active)
	assert.Equal(t, 2, pagination.TotalRecords)
	assert.Equal(t, map[string]any{"IdEspecialidade": float64(4)}, upstream.bodies[0])

	locations, _, err = uc.FindAll(context.Background(), requests.LocationFilter{Search: "cambuí"})
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "2", locations[0].ID)

	locations, _, err = uc.FindAll(context.Background(), requests.LocationFilter{Search: "campinas"})
	require.NoError(t, err)
	require.Len(t, locations, 1)
}

func TestLocationUsecase_FindByID(t *testing.T) {
	upstream := &fakeUpstream{reply: locationsFixture}
	uc := NewLocationUsecase(upstream, nil, zap.NewNop())

	location, err := uc.FindByID(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "Unidade Centro", location.Name)
	assert.Equal(t, map[string]any{"IdUnidade": float64(1)}, upstream.bodies[0])
}
