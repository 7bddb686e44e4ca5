package fieldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLookup(t *testing.T) {
	record := Record{
		"Nome":     "Ana Souza",
		"cpf":      "123",
		"CPF":      "456",
		"email":    nil,
		"Id":       float64(17),
		"ativo":    "S",
		"endereco": map[string]any{"Cidade": "Recife"},
	}

	t.Run("exact key wins over case-insensitive match", func(t *testing.T) {
		assert.Equal(t, "123", record.String("cpf"))
		assert.Equal(t, "456", record.String("CPF"))
	})

	t.Run("capitalized key is found through lowercase name", func(t *testing.T) {
		assert.Equal(t, "Ana Souza", record.String("nome"))
	})

	t.Run("null and missing values are absent", func(t *testing.T) {
		assert.False(t, record.Has("email"))
		assert.Equal(t, "", record.String("telefone"))
		_, ok := record.Int("idade")
		assert.False(t, ok)
	})

	t.Run("numbers render without decimals", func(t *testing.T) {
		assert.Equal(t, "17", record.String("id"))
		id, ok := record.Int("id")
		assert.True(t, ok)
		assert.Equal(t, 17, id)
	})

	t.Run("string flags are read as booleans", func(t *testing.T) {
		assert.True(t, record.BoolOr(false, "ativo"))
		assert.True(t, record.BoolOr(true, "inexistente"))
	})

	t.Run("nested records", func(t *testing.T) {
		address, ok := record.Record("endereco")
		require.True(t, ok)
		assert.Equal(t, "Recife", address.String("cidade"))
	})

	t.Run("nil record never panics", func(t *testing.T) {
		var empty Record
		assert.Equal(t, "", empty.String("id"))
		assert.Nil(t, empty.Records("items"))
	})
}

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{name: "array", payload: `[{"id":1},{"id":2},3]`, want: 2},
		{name: "single object", payload: `{"id":1}`, want: 1},
		{name: "wrapped array", payload: `{"Data":[{"id":1},{"id":2}]}`, want: 2},
		{name: "null", payload: `null`, want: 0},
		{name: "empty body", payload: ``, want: 0},
		{name: "invalid json", payload: `{"id":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := DecodeRecords([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}
