package visibility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	apperrors "github.com/recovvo-inc/recovvo/internal/shared/errors"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestClassifyContactAccess_DomainMappingWinsOverAlias(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listUserIDsByDomainIDFunc: func(ctx context.Context, schema string, domainID uint) ([]uint, error) {
			return []uint{1, 7}, nil
		},
	}
	aliases := &mockAliasMappingRepo{
		listActiveForUserFunc: func(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
			t.Fatal("alias lookup should not run when a direct mapping exists")
			return nil, nil
		},
	}
	classifier := NewClassifier(&mockSupervisorMappingRepo{}, aliases, domainMappings, &mockLogger{})

	caller := Caller{ID: 1, Role: user.RoleMember}
	access, err := classifier.ClassifyContactAccess(context.Background(), testSchema, caller, 100, Window{}, Window{})

	require.NoError(t, err)
	assert.Equal(t, AccessDomainMapping, access.Type)
	assert.Equal(t, []uint{1}, access.ProviderUserIDs())
	assert.True(t, access.Scopes[0].Window.IsUnbounded())
}

func TestClassifyContactAccess_SupervisorSeesSubordinateMapping(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listUserIDsByDomainIDFunc: func(ctx context.Context, schema string, domainID uint) ([]uint, error) {
			return []uint{2, 5}, nil
		},
	}
	supervisors := &mockSupervisorMappingRepo{
		listSubordinateIDsFunc: func(ctx context.Context, schema string, supervisorID uint) ([]uint, error) {
			return []uint{2, 3}, nil
		},
	}
	classifier := NewClassifier(supervisors, &mockAliasMappingRepo{}, domainMappings, &mockLogger{})

	caller := Caller{ID: 1, Role: user.RoleSupervisor}
	access, err := classifier.ClassifyContactAccess(context.Background(), testSchema, caller, 100, Window{}, Window{})

	require.NoError(t, err)
	assert.Equal(t, AccessSupervisor, access.Type)
	// Only the subordinate mapped to the domain, not every mapped user.
	assert.Equal(t, []uint{2}, access.ProviderUserIDs())
}

func TestClassifyContactAccess_AliasClipsToHistoricalWindow(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listUserIDsByDomainIDFunc: func(ctx context.Context, schema string, domainID uint) ([]uint, error) {
			return []uint{7}, nil
		},
	}
	aliases := &mockAliasMappingRepo{
		listActiveForUserFunc: func(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
			return []*user.AliasMapping{{
				ID:                             10,
				UserID:                         userID,
				AliasUserID:                    7,
				HistoricalEmailAccessStartDate: datePtr(2023, time.January, 1),
				HistoricalEmailAccessEndDate:   datePtr(2023, time.December, 31),
			}}, nil
		},
	}
	classifier := NewClassifier(&mockSupervisorMappingRepo{}, aliases, domainMappings, &mockLogger{})

	caller := Caller{ID: 1, Role: user.RoleMember}
	// The request asks for a range starting before the grant allows; the
	// effective window must be clamped to the grant boundary.
	requestWindow := Window{From: datePtr(2022, time.January, 1), To: datePtr(2023, time.June, 30)}
	access, err := classifier.ClassifyContactAccess(context.Background(), testSchema, caller, 100, Window{}, requestWindow)

	require.NoError(t, err)
	assert.Equal(t, AccessAlias, access.Type)
	assert.Equal(t, []uint{7}, access.ProviderUserIDs())
	w := access.Scopes[0].Window
	require.NotNil(t, w.From)
	require.NotNil(t, w.To)
	assert.Equal(t, *datePtr(2023, time.January, 1), *w.From)
	assert.Equal(t, *datePtr(2023, time.June, 30), *w.To)
}

func TestClassifyContactAccess_EachAliasGrantKeepsOwnWindow(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listUserIDsByDomainIDFunc: func(ctx context.Context, schema string, domainID uint) ([]uint, error) {
			return []uint{10, 11}, nil
		},
	}
	aliases := &mockAliasMappingRepo{
		listActiveForUserFunc: func(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
			return []*user.AliasMapping{
				{
					ID:                             20,
					AliasUserID:                    10,
					HistoricalEmailAccessStartDate: datePtr(2023, time.January, 1),
					HistoricalEmailAccessEndDate:   datePtr(2023, time.February, 28),
				},
				{
					ID:                             21,
					AliasUserID:                    11,
					HistoricalEmailAccessStartDate: datePtr(2023, time.May, 1),
					HistoricalEmailAccessEndDate:   datePtr(2023, time.June, 30),
				},
			}, nil
		},
	}
	classifier := NewClassifier(&mockSupervisorMappingRepo{}, aliases, domainMappings, &mockLogger{})

	access, err := classifier.ClassifyContactAccess(context.Background(), testSchema, Caller{ID: 1, Role: user.RoleMember}, 100, Window{}, Window{})

	require.NoError(t, err)
	assert.Equal(t, AccessAlias, access.Type)
	require.Len(t, access.Scopes, 2)

	byUser := make(map[uint]Window, len(access.Scopes))
	for _, s := range access.Scopes {
		byUser[s.ProviderUserID] = s.Window
	}

	assert.Equal(t, *datePtr(2023, time.January, 1), *byUser[10].From)
	assert.Equal(t, *datePtr(2023, time.February, 28), *byUser[10].To)
	assert.Equal(t, *datePtr(2023, time.May, 1), *byUser[11].From)
	assert.Equal(t, *datePtr(2023, time.June, 30), *byUser[11].To)

	// A date inside the second grant must stay invisible through the first:
	// another grant to the same domain never widens a user's own window.
	assert.False(t, byUser[10].Contains(*datePtr(2023, time.June, 1)))
	assert.False(t, byUser[11].Contains(*datePtr(2023, time.January, 15)))
}

func TestClassifyContactAccess_NoGrantIsForbidden(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listUserIDsByDomainIDFunc: func(ctx context.Context, schema string, domainID uint) ([]uint, error) {
			return []uint{50}, nil
		},
	}
	aliases := &mockAliasMappingRepo{
		listActiveForUserFunc: func(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
			return nil, nil
		},
	}
	classifier := NewClassifier(&mockSupervisorMappingRepo{}, aliases, domainMappings, &mockLogger{})

	_, err := classifier.ClassifyContactAccess(context.Background(), testSchema, Caller{ID: 1, Role: user.RoleMember}, 100, Window{}, Window{})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestClassifyContactAccess_OrgWindowAppliesToDirectMapping(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listUserIDsByDomainIDFunc: func(ctx context.Context, schema string, domainID uint) ([]uint, error) {
			return []uint{1}, nil
		},
	}
	classifier := NewClassifier(&mockSupervisorMappingRepo{}, &mockAliasMappingRepo{}, domainMappings, &mockLogger{})

	orgWindow := Window{From: datePtr(2021, time.January, 1)}
	access, err := classifier.ClassifyContactAccess(context.Background(), testSchema, Caller{ID: 1, Role: user.RoleMember}, 100, orgWindow, Window{})

	require.NoError(t, err)
	require.Len(t, access.Scopes, 1)
	require.NotNil(t, access.Scopes[0].Window.From)
	assert.Equal(t, *datePtr(2021, time.January, 1), *access.Scopes[0].Window.From)
	assert.Nil(t, access.Scopes[0].Window.To)
}
