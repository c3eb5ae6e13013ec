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

const testSchema = "acme_corp_com"

func TestResolveProviderUserIDs_DefaultSetContainsCaller(t *testing.T) {
	resolver := NewResolver(
		&mockSupervisorMappingRepo{},
		&mockAliasMappingRepo{},
		&mockCollaboratorMappingRepo{},
		&mockDomainMappingRepo{},
		&mockLogger{},
	)

	caller := Caller{ID: 42, Role: user.RoleMember}
	ids, err := resolver.ResolveProviderUserIDs(context.Background(), testSchema, caller, SearchUserParams{})

	require.NoError(t, err)
	assert.True(t, ids.Has(42))
	assert.Equal(t, 1, ids.Len())
}

func TestResolveProviderUserIDs_SupervisorDefaultIncludesDirectReports(t *testing.T) {
	supervisors := &mockSupervisorMappingRepo{
		listSubordinateIDsFunc: func(ctx context.Context, schema string, supervisorID uint) ([]uint, error) {
			assert.Equal(t, testSchema, schema)
			assert.Equal(t, uint(1), supervisorID)
			return []uint{2, 3}, nil
		},
	}
	resolver := NewResolver(supervisors, &mockAliasMappingRepo{}, &mockCollaboratorMappingRepo{}, &mockDomainMappingRepo{}, &mockLogger{})

	caller := Caller{ID: 1, Role: user.RoleSupervisor}
	ids, err := resolver.ResolveProviderUserIDs(context.Background(), testSchema, caller, SearchUserParams{})

	require.NoError(t, err)
	assert.Equal(t, 3, ids.Len())
	assert.True(t, ids.Has(1))
	assert.True(t, ids.Has(2))
	assert.True(t, ids.Has(3))
}

func TestResolveProviderUserIDs_SelectorNarrowsSubordinates(t *testing.T) {
	supervisors := &mockSupervisorMappingRepo{
		listSubordinateIDsFunc: func(ctx context.Context, schema string, supervisorID uint) ([]uint, error) {
			return []uint{2, 3, 4}, nil
		},
	}
	resolver := NewResolver(supervisors, &mockAliasMappingRepo{}, &mockCollaboratorMappingRepo{}, &mockDomainMappingRepo{}, &mockLogger{})

	caller := Caller{ID: 1, Role: user.RoleSupervisor}
	params := SearchUserParams{Subordinates: SelectorIDs([]uint{3, 99})}
	ids, err := resolver.ResolveProviderUserIDs(context.Background(), testSchema, caller, params)

	require.NoError(t, err)
	// 99 is not a granted subordinate; selectors never widen the set.
	assert.Equal(t, 1, ids.Len())
	assert.True(t, ids.Has(3))
	assert.False(t, ids.Has(99))
	// An explicit selector suppresses the personal/default set.
	assert.False(t, ids.Has(1))
}

func TestResolveProviderUserIDs_AliasAllSentinel(t *testing.T) {
	aliases := &mockAliasMappingRepo{
		listActiveForUserFunc: func(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
			return []*user.AliasMapping{
				{ID: 10, UserID: userID, AliasUserID: 7},
				{ID: 11, UserID: userID, AliasUserID: 8},
			}, nil
		},
	}
	resolver := NewResolver(&mockSupervisorMappingRepo{}, aliases, &mockCollaboratorMappingRepo{}, &mockDomainMappingRepo{}, &mockLogger{})

	caller := Caller{ID: 5, Role: user.RoleMember}
	params := SearchUserParams{Me: SelectorAll(), Aliases: SelectorAll()}
	ids, err := resolver.ResolveProviderUserIDs(context.Background(), testSchema, caller, params)

	require.NoError(t, err)
	assert.Equal(t, 3, ids.Len())
	assert.True(t, ids.Has(5))
	assert.True(t, ids.Has(7))
	assert.True(t, ids.Has(8))
}

func TestResolveProviderUserIDs_CollaboratorsDeduplicated(t *testing.T) {
	supervisors := &mockSupervisorMappingRepo{
		listSubordinateIDsFunc: func(ctx context.Context, schema string, supervisorID uint) ([]uint, error) {
			return []uint{2}, nil
		},
	}
	collaborators := &mockCollaboratorMappingRepo{
		listActivePeerIDsFunc: func(ctx context.Context, schema string, userID uint, at time.Time) ([]uint, error) {
			return []uint{2, 6}, nil
		},
	}
	resolver := NewResolver(supervisors, &mockAliasMappingRepo{}, collaborators, &mockDomainMappingRepo{}, &mockLogger{})

	caller := Caller{ID: 1, Role: user.RoleSupervisor}
	params := SearchUserParams{Me: SelectorAll(), Subordinates: SelectorAll(), Collaborators: SelectorAll()}
	ids, err := resolver.ResolveProviderUserIDs(context.Background(), testSchema, caller, params)

	require.NoError(t, err)
	// User 2 is both a subordinate and a collaborator; the union holds it once.
	assert.Equal(t, 3, ids.Len())
	assert.ElementsMatch(t, []uint{1, 2, 6}, ids.ToSlice())
}

func TestResolve_MapsUsersToClientDomains(t *testing.T) {
	var queriedUserIDs []uint
	domainMappings := &mockDomainMappingRepo{
		listDomainIDsByUserIDsFunc: func(ctx context.Context, schema string, userIDs []uint) ([]uint, error) {
			queriedUserIDs = userIDs
			return []uint{100, 200}, nil
		},
	}
	resolver := NewResolver(&mockSupervisorMappingRepo{}, &mockAliasMappingRepo{}, &mockCollaboratorMappingRepo{}, domainMappings, &mockLogger{})

	caller := Caller{ID: 9, Role: user.RoleMember}
	result, err := resolver.Resolve(context.Background(), testSchema, caller, SearchUserParams{})

	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{9}, queriedUserIDs)
	assert.True(t, result.VisibleToUser(9))
	assert.True(t, result.VisibleDomain(100))
	assert.True(t, result.VisibleDomain(200))
	assert.False(t, result.VisibleDomain(300))
}

func TestAuthorizeDomain_OutsideSetIsForbidden(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listDomainIDsByUserIDsFunc: func(ctx context.Context, schema string, userIDs []uint) ([]uint, error) {
			return []uint{100}, nil
		},
	}
	resolver := NewResolver(&mockSupervisorMappingRepo{}, &mockAliasMappingRepo{}, &mockCollaboratorMappingRepo{}, domainMappings, &mockLogger{})

	result, err := resolver.Resolve(context.Background(), testSchema, Caller{ID: 9, Role: user.RoleMember}, SearchUserParams{})
	require.NoError(t, err)

	assert.NoError(t, resolver.AuthorizeDomain(result, 100))

	err = resolver.AuthorizeDomain(result, 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}
