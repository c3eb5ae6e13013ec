package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
)

const testSchema = "acme_corp_com"

func newTestResolver(domainMappings *mockDomainMappingRepo) *visibility.Resolver {
	return visibility.NewResolver(
		&mockSupervisorRepo{},
		&mockAliasRepo{},
		&mockCollabRepo{},
		domainMappings,
		&mockLogger{},
	)
}

func TestListContacts_RestrictedToVisibleDomains(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listDomainIDsByUserIDsFunc: func(ctx context.Context, schema string, userIDs []uint) ([]uint, error) {
			return []uint{100, 200}, nil
		},
	}
	var gotFilter contact.Filter
	contactRepo := &mockContactRepo{
		listFunc: func(ctx context.Context, schema string, filter contact.Filter) ([]*contact.Contact, int64, error) {
			gotFilter = filter
			return []*contact.Contact{{ID: 1, ClientDomainID: 100, Email: "bob@client.com"}}, 1, nil
		},
	}

	uc := NewListContactsUseCase(newTestResolver(domainMappings), contactRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListContactsQuery{
		Schema: testSchema,
		Caller: visibility.Caller{ID: 1, Role: user.RoleMember},
		Search: "bob",
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{100, 200}, gotFilter.ClientDomainIDs)
	assert.Equal(t, "bob", gotFilter.Search)
	assert.Len(t, result.Contacts, 1)
	assert.Equal(t, int64(1), result.Total)
}

func TestListContacts_SelectorOutsideVisibilityYieldsEmptyPage(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listDomainIDsByUserIDsFunc: func(ctx context.Context, schema string, userIDs []uint) ([]uint, error) {
			return []uint{100}, nil
		},
	}
	contactRepo := &mockContactRepo{
		listFunc: func(ctx context.Context, schema string, filter contact.Filter) ([]*contact.Contact, int64, error) {
			t.Fatal("repository must not be queried with an empty domain set")
			return nil, 0, nil
		},
	}

	uc := NewListContactsUseCase(newTestResolver(domainMappings), contactRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListContactsQuery{
		Schema:          testSchema,
		Caller:          visibility.Caller{ID: 1, Role: user.RoleMember},
		ClientDomainIDs: visibility.SelectorIDs([]uint{999}),
	})

	require.NoError(t, err)
	assert.Empty(t, result.Contacts)
	assert.Equal(t, int64(0), result.Total)
}

func TestExportContacts_HeaderAndVisibilityApplied(t *testing.T) {
	domainMappings := &mockDomainMappingRepo{
		listDomainIDsByUserIDsFunc: func(ctx context.Context, schema string, userIDs []uint) ([]uint, error) {
			return []uint{100}, nil
		},
	}
	contactRepo := &mockContactRepo{
		listFunc: func(ctx context.Context, schema string, filter contact.Filter) ([]*contact.Contact, int64, error) {
			if filter.Offset > 0 {
				return nil, 2, nil
			}
			return []*contact.Contact{
				{ID: 1, ClientDomainID: 100, Email: "bob@client.com", FirstName: "Bob"},
				{ID: 2, ClientDomainID: 100, Email: "eve@client.com", FirstName: "Eve"},
			}, 2, nil
		},
	}

	uc := NewExportContactsUseCase(newTestResolver(domainMappings), contactRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ExportContactsQuery{
		Schema: testSchema,
		Caller: visibility.Caller{ID: 1, Role: user.RoleMember},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)
	csv := string(result.CSV)
	assert.Contains(t, csv, "email,first_name,last_name,title,phone,client_domain_id,created_at")
	assert.Contains(t, csv, "bob@client.com")
	assert.Contains(t, csv, "eve@client.com")
}
