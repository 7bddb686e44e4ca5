package scheduling

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	for _, code := range []string{UpstreamScheduled, UpstreamConfirmed, UpstreamCancelled, UpstreamCompleted, UpstreamNoShow} {
		t.Run(code, func(t *testing.T) {
			back, err := ToUpstreamState(string(ToCanonicalState(code)))
			require.NoError(t, err)
			assert.Equal(t, code, back)
		})
	}
}

func TestToCanonicalState(t *testing.T) {
	assert.Equal(t, StateWaiting, ToCanonicalState("unknown"))
	assert.Equal(t, StateWaiting, ToCanonicalState(""))
	assert.Equal(t, StateConfirmed, ToCanonicalState("confirmado"))
	assert.Equal(t, StateNoShow, ToCanonicalState(" FALTOU "))
}

func TestToUpstreamState(t *testing.T) {
	t.Run("case-insensitive canonical names", func(t *testing.T) {
		code, err := ToUpstreamState("no_show")
		require.NoError(t, err)
		assert.Equal(t, UpstreamNoShow, code)
	})

	t.Run("unknown state is a validation error", func(t *testing.T) {
		_, err := ToUpstreamState("bogus-state")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeInvalidStatus, exceptions.CodeOf(err))
	})
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
		wantErr bool
	}{
		{start: "09:00", minutes: 30, want: "09:30"},
		{start: "09:45", minutes: 30, want: "10:15"},
		{start: "23:50", minutes: 20, want: "24:10"},
		{start: "08:00:00", minutes: 60, want: "09:00"},
		{start: "7:05", minutes: 0, want: "07:05"},
		{start: "nine", minutes: 30, wantErr: true},
		{start: "09:75", minutes: 30, wantErr: true},
		{start: "", minutes: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := AddMinutes(tt.start, tt.minutes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDaySlots(t *testing.T) {
	t.Run("keeps available slots only", func(t *testing.T) {
		intervals := ComputeDaySlots([]Slot{
			{Time: "14:00", Available: true, Duration: 30},
			{Time: "15:00", Available: false, Duration: 30},
		})
		assert.Equal(t, []Interval{{Start: "14:00", End: "14:30"}}, intervals)
	})

	t.Run("defaults duration to thirty minutes", func(t *testing.T) {
		intervals := ComputeDaySlots([]Slot{{Time: "10:00:00", Available: true}})
		assert.Equal(t, []Interval{{Start: "10:00", End: "10:30"}}, intervals)
	})

	t.Run("drops unparseable times", func(t *testing.T) {
		intervals := ComputeDaySlots([]Slot{
			{Time: "later", Available: true},
			{Time: "16:00", Available: true, Duration: 45},
		})
		assert.Equal(t, []Interval{{Start: "16:00", End: "16:45"}}, intervals)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		assert.Empty(t, ComputeDaySlots(nil))
	})
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-05-10", NormalizeDate("2024-05-10T00:00:00"))
	assert.Equal(t, "2024-05-10", NormalizeDate("2024-05-10 08:30:00"))
	assert.Equal(t, "2024-05-10", NormalizeDate(" 2024-05-10 "))
	assert.Equal(t, "", NormalizeDate(""))
}
