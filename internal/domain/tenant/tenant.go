package tenant

import (
	"encoding/base64"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
)

// Tenant is an isolated customer organization. Each tenant owns a dedicated
// PostgreSQL schema; metadata lives in the common schema.
type Tenant struct {
	ID                     uint
	Name                   string
	SchemaName             string
	Slug                   string
	OrganizationAdminEmail string
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

var schemaSanitizer = regexp.MustCompile(`[^a-z0-9_]+`)

// NewTenant creates a tenant from an organization name and admin email.
// The slug is the domain portion of the admin email; the schema name is the
// slug with non-identifier characters folded to underscores.
func NewTenant(name, adminEmail string) (*Tenant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	slug, err := SlugFromEmail(adminEmail)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Tenant{
		Name:                   name,
		SchemaName:             SchemaNameFromSlug(slug),
		Slug:                   slug,
		OrganizationAdminEmail: strings.ToLower(adminEmail),
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

// SlugFromEmail derives the tenant slug from the domain portion of an email.
func SlugFromEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAdminEmail, email)
	}
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return "", fmt.Errorf("%w: %s", ErrInvalidAdminEmail, email)
	}
	return strings.ToLower(addr.Address[at+1:]), nil
}

// SchemaNameFromSlug folds a slug into a valid PostgreSQL schema identifier.
func SchemaNameFromSlug(slug string) string {
	return schemaSanitizer.ReplaceAllString(strings.ToLower(slug), "_")
}

// EncodedSchema returns the URL-safe base64 schema identifier used in
// tenant-scoped API paths.
func (t *Tenant) EncodedSchema() string {
	return base64.URLEncoding.EncodeToString([]byte(t.SchemaName))
}

// DecodeSchema decodes a base64 schema identifier from a URL path segment.
func DecodeSchema(encoded string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		// Older clients send standard-alphabet encoding.
		raw, err = base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return "", ErrInvalidSchemaID
		}
	}
	schema := string(raw)
	if schema == "" || schemaSanitizer.MatchString(schema) {
		return "", ErrInvalidSchemaID
	}
	return schema, nil
}

// Deactivate marks the tenant inactive. Tenant-scoped requests are rejected
// while inactive.
func (t *Tenant) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = biztime.NowUTC()
}

// Rename updates the display name.
func (t *Tenant) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	t.Name = name
	t.UpdatedAt = biztime.NowUTC()
	return nil
}
