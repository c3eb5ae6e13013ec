package visibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip(t *testing.T) {
	jan1_2022 := datePtr(2022, time.January, 1)
	jan1_2023 := datePtr(2023, time.January, 1)
	jun30_2023 := datePtr(2023, time.June, 30)
	dec31_2023 := datePtr(2023, time.December, 31)

	tests := []struct {
		name        string
		grant       Window
		constraints []Window
		wantFrom    *time.Time
		wantTo      *time.Time
	}{
		{
			name:  "no constraints keeps grant",
			grant: Window{From: jan1_2023, To: dec31_2023},
			wantFrom: jan1_2023, wantTo: dec31_2023,
		},
		{
			name:        "request earlier than grant is clamped to grant start",
			grant:       Window{From: jan1_2023, To: dec31_2023},
			constraints: []Window{{From: jan1_2022}},
			wantFrom:    jan1_2023, wantTo: dec31_2023,
		},
		{
			name:        "request inside grant narrows",
			grant:       Window{From: jan1_2023, To: dec31_2023},
			constraints: []Window{{From: jun30_2023}},
			wantFrom:    jun30_2023, wantTo: dec31_2023,
		},
		{
			name:        "constraint bounds an unbounded grant",
			grant:       Window{},
			constraints: []Window{{From: jan1_2023, To: jun30_2023}},
			wantFrom:    jan1_2023, wantTo: jun30_2023,
		},
		{
			name:  "multiple constraints intersect",
			grant: Window{From: jan1_2023, To: dec31_2023},
			constraints: []Window{
				{To: jun30_2023},
				{From: jan1_2022},
			},
			wantFrom: jan1_2023, wantTo: jun30_2023,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(tt.grant, tt.constraints...)
			if tt.wantFrom == nil {
				assert.Nil(t, got.From)
			} else {
				require.NotNil(t, got.From)
				assert.Equal(t, *tt.wantFrom, *got.From)
			}
			if tt.wantTo == nil {
				assert.Nil(t, got.To)
			} else {
				require.NotNil(t, got.To)
				assert.Equal(t, *tt.wantTo, *got.To)
			}
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{From: datePtr(2023, time.January, 1), To: datePtr(2023, time.December, 31)}

	assert.True(t, w.Contains(time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(*w.From))
	assert.False(t, w.Contains(time.Date(2022, time.December, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))

	assert.True(t, Window{}.IsUnbounded())
	assert.True(t, Window{}.Contains(time.Now()))
}
