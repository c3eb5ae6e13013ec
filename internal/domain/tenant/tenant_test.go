package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	tn, err := NewTenant("Acme Corp", "admin@acme-corp.com")

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", tn.Name)
	assert.Equal(t, "acme-corp.com", tn.Slug)
	assert.Equal(t, "acme_corp_com", tn.SchemaName)
	assert.Equal(t, "admin@acme-corp.com", tn.OrganizationAdminEmail)
	assert.True(t, tn.IsActive)
	assert.NotZero(t, tn.CreatedAt)
}

func TestNewTenantValidation(t *testing.T) {
	tests := []struct {
		name       string
		tenantName string
		adminEmail string
		wantErr    error
	}{
		{
			name:       "missing name",
			tenantName: "  ",
			adminEmail: "admin@acme.com",
			wantErr:    ErrNameRequired,
		},
		{
			name:       "malformed email",
			tenantName: "Acme",
			adminEmail: "not-an-email",
			wantErr:    ErrInvalidAdminEmail,
		},
		{
			name:       "empty email",
			tenantName: "Acme",
			adminEmail: "",
			wantErr:    ErrInvalidAdminEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTenant(tt.tenantName, tt.adminEmail)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSlugFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane@example.com", "example.com"},
		{"Jane.Doe@Sub.Example.ORG", "sub.example.org"},
	}

	for _, tt := range tests {
		got, err := SlugFromEmail(tt.email)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestEncodedSchemaRoundTrip(t *testing.T) {
	tn, err := NewTenant("Acme", "ops@acme.io")
	require.NoError(t, err)

	decoded, err := DecodeSchema(tn.EncodedSchema())
	require.NoError(t, err)
	assert.Equal(t, tn.SchemaName, decoded)
}

func TestDecodeSchemaRejectsGarbage(t *testing.T) {
	_, err := DecodeSchema("!!!not-base64!!!")
	assert.ErrorIs(t, err, ErrInvalidSchemaID)

	// Valid base64 but decodes to a non-identifier.
	_, err = DecodeSchema("JyBEUk9QIFRBQkxFIHRlbmFudHM7")
	assert.ErrorIs(t, err, ErrInvalidSchemaID)
}
