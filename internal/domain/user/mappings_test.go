package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAliasMappingIsActiveAt(t *testing.T) {
	tests := []struct {
		name    string
		mapping AliasMapping
		at      time.Time
		want    bool
	}{
		{
			name:    "inside window",
			mapping: AliasMapping{AliasStartDate: date(2023, 1, 1), AliasEndDate: date(2023, 6, 1)},
			at:      time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "before window",
			mapping: AliasMapping{AliasStartDate: date(2023, 1, 1), AliasEndDate: date(2023, 6, 1)},
			at:      time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "after window even though row exists",
			mapping: AliasMapping{AliasStartDate: date(2023, 1, 1), AliasEndDate: date(2023, 6, 1)},
			at:      time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "open ended",
			mapping: AliasMapping{AliasStartDate: date(2023, 1, 1)},
			at:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "no bounds",
			mapping: AliasMapping{},
			at:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "soft deleted",
			mapping: AliasMapping{IsDeleted: true},
			at:      time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mapping.IsActiveAt(tt.at))
		})
	}
}

func TestAliasMappingAppendHistory(t *testing.T) {
	m := AliasMapping{}
	m.AppendHistory("created", 7)
	m.AppendHistory("updated", 9)

	assert.Len(t, m.MappingHistory, 2)
	assert.Equal(t, "created", m.MappingHistory[0].Action)
	assert.Equal(t, uint(7), m.MappingHistory[0].ActorID)
	assert.Equal(t, "updated", m.MappingHistory[1].Action)
	assert.False(t, m.MappingHistory[1].Timestamp.IsZero())
}

func TestCollaboratorMappingIsActiveAt(t *testing.T) {
	tests := []struct {
		name    string
		mapping CollaboratorMapping
		at      time.Time
		want    bool
	}{
		{
			name:    "active inside window",
			mapping: CollaboratorMapping{IsActive: true, StartDate: date(2023, 1, 1), EndDate: date(2023, 12, 31)},
			at:      time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "inactive flag wins",
			mapping: CollaboratorMapping{IsActive: false, StartDate: date(2023, 1, 1)},
			at:      time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "expired",
			mapping: CollaboratorMapping{IsActive: true, EndDate: date(2023, 6, 1)},
			at:      time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mapping.IsActiveAt(tt.at))
		})
	}
}
