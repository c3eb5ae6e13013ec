package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
)

// Role is the role a provider user holds inside a tenant.
type Role string

const (
	RoleMember     Role = "member"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleSupervisor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// AuthProvider identifies how the user authenticates.
type AuthProvider string

const (
	ProviderLocal   AuthProvider = "local"
	ProviderGoogle  AuthProvider = "google"
	ProviderOutlook AuthProvider = "outlook"
)

// User is a provider user: a tenant staff member whose mailbox and contacts
// are ingested from Gmail or Outlook.
type User struct {
	ID           uint
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	Provider     AuthProvider
	PasswordHash string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a provider user with the given role.
func NewUser(email, firstName, lastName string, role Role, provider AuthProvider) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	now := biztime.NowUTC()
	return &User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		Provider:  provider,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsSupervisor reports whether the user holds the supervisor role.
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor
}

// RecordLogin stamps the last login time.
func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// FullName returns the display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
