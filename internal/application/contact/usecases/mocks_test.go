package usecases

import (
	"context"
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type mockContactRepo struct {
	getByIDFunc    func(ctx context.Context, schema string, id uint) (*contact.Contact, error)
	listFunc       func(ctx context.Context, schema string, filter contact.Filter) ([]*contact.Contact, int64, error)
	updateFunc     func(ctx context.Context, schema string, c *contact.Contact) error
	softDeleteFunc func(ctx context.Context, schema string, id uint) error
}

func (m *mockContactRepo) GetByID(ctx context.Context, schema string, id uint) (*contact.Contact, error) {
	return m.getByIDFunc(ctx, schema, id)
}

func (m *mockContactRepo) List(ctx context.Context, schema string, filter contact.Filter) ([]*contact.Contact, int64, error) {
	return m.listFunc(ctx, schema, filter)
}

func (m *mockContactRepo) Update(ctx context.Context, schema string, c *contact.Contact) error {
	return m.updateFunc(ctx, schema, c)
}

func (m *mockContactRepo) SoftDelete(ctx context.Context, schema string, id uint) error {
	return m.softDeleteFunc(ctx, schema, id)
}

type mockClientDomainRepo struct {
	getByIDFunc       func(ctx context.Context, schema string, id uint) (*contact.ClientDomain, error)
	listFunc          func(ctx context.Context, schema string, offset, limit int) ([]*contact.ClientDomain, int64, error)
	setSuppressedFunc func(ctx context.Context, schema string, id uint, suppressed bool) error
}

func (m *mockClientDomainRepo) GetByID(ctx context.Context, schema string, id uint) (*contact.ClientDomain, error) {
	return m.getByIDFunc(ctx, schema, id)
}

func (m *mockClientDomainRepo) List(ctx context.Context, schema string, offset, limit int) ([]*contact.ClientDomain, int64, error) {
	return m.listFunc(ctx, schema, offset, limit)
}

func (m *mockClientDomainRepo) SetSuppressed(ctx context.Context, schema string, id uint, suppressed bool) error {
	return m.setSuppressedFunc(ctx, schema, id, suppressed)
}

type mockDomainMappingRepo struct {
	createFunc                 func(ctx context.Context, schema string, m *contact.DomainMapping) error
	listDomainIDsByUserIDsFunc func(ctx context.Context, schema string, userIDs []uint) ([]uint, error)
	listUserIDsByDomainIDFunc  func(ctx context.Context, schema string, domainID uint) ([]uint, error)
	softDeleteFunc             func(ctx context.Context, schema string, id uint) error
}

func (m *mockDomainMappingRepo) Create(ctx context.Context, schema string, dm *contact.DomainMapping) error {
	return m.createFunc(ctx, schema, dm)
}

func (m *mockDomainMappingRepo) ListDomainIDsByUserIDs(ctx context.Context, schema string, userIDs []uint) ([]uint, error) {
	return m.listDomainIDsByUserIDsFunc(ctx, schema, userIDs)
}

func (m *mockDomainMappingRepo) ListUserIDsByDomainID(ctx context.Context, schema string, domainID uint) ([]uint, error) {
	return m.listUserIDsByDomainIDFunc(ctx, schema, domainID)
}

func (m *mockDomainMappingRepo) SoftDelete(ctx context.Context, schema string, id uint) error {
	return m.softDeleteFunc(ctx, schema, id)
}

type mockEmailMessageRepo struct {
	listByContactFunc func(ctx context.Context, schema string, contactID uint, scopes []contact.MessageScope, offset, limit int) ([]*contact.EmailMessage, int64, error)
}

func (m *mockEmailMessageRepo) ListByContact(ctx context.Context, schema string, contactID uint, scopes []contact.MessageScope, offset, limit int) ([]*contact.EmailMessage, int64, error) {
	return m.listByContactFunc(ctx, schema, contactID, scopes, offset, limit)
}

type mockOrgSettingRepo struct {
	getFunc    func(ctx context.Context, schema string) (*tenant.OrgSetting, error)
	updateFunc func(ctx context.Context, schema string, setting *tenant.OrgSetting) error
}

func (m *mockOrgSettingRepo) Get(ctx context.Context, schema string) (*tenant.OrgSetting, error) {
	return m.getFunc(ctx, schema)
}

func (m *mockOrgSettingRepo) Update(ctx context.Context, schema string, setting *tenant.OrgSetting) error {
	return m.updateFunc(ctx, schema, setting)
}

type mockSupervisorRepo struct {
	createFunc             func(ctx context.Context, schema string, m *user.SupervisorMapping) error
	listSubordinateIDsFunc func(ctx context.Context, schema string, supervisorID uint) ([]uint, error)
	listSupervisorIDsFunc  func(ctx context.Context, schema string, userID uint) ([]uint, error)
	softDeleteFunc         func(ctx context.Context, schema string, id uint) error
}

func (m *mockSupervisorRepo) Create(ctx context.Context, schema string, sm *user.SupervisorMapping) error {
	return m.createFunc(ctx, schema, sm)
}

func (m *mockSupervisorRepo) ListSubordinateIDs(ctx context.Context, schema string, supervisorID uint) ([]uint, error) {
	if m.listSubordinateIDsFunc == nil {
		return nil, nil
	}
	return m.listSubordinateIDsFunc(ctx, schema, supervisorID)
}

func (m *mockSupervisorRepo) ListSupervisorIDs(ctx context.Context, schema string, userID uint) ([]uint, error) {
	return m.listSupervisorIDsFunc(ctx, schema, userID)
}

func (m *mockSupervisorRepo) SoftDelete(ctx context.Context, schema string, id uint) error {
	return m.softDeleteFunc(ctx, schema, id)
}

type mockAliasRepo struct {
	createFunc            func(ctx context.Context, schema string, m *user.AliasMapping) error
	getByIDFunc           func(ctx context.Context, schema string, id uint) (*user.AliasMapping, error)
	listActiveForUserFunc func(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error)
	updateFunc            func(ctx context.Context, schema string, m *user.AliasMapping) error
}

func (m *mockAliasRepo) Create(ctx context.Context, schema string, am *user.AliasMapping) error {
	return m.createFunc(ctx, schema, am)
}

func (m *mockAliasRepo) GetByID(ctx context.Context, schema string, id uint) (*user.AliasMapping, error) {
	return m.getByIDFunc(ctx, schema, id)
}

func (m *mockAliasRepo) ListActiveForUser(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
	if m.listActiveForUserFunc == nil {
		return nil, nil
	}
	return m.listActiveForUserFunc(ctx, schema, userID, at)
}

func (m *mockAliasRepo) Update(ctx context.Context, schema string, am *user.AliasMapping) error {
	return m.updateFunc(ctx, schema, am)
}

type mockCollabRepo struct {
	createFunc            func(ctx context.Context, schema string, m *user.CollaboratorMapping) error
	listActivePeerIDsFunc func(ctx context.Context, schema string, userID uint, at time.Time) ([]uint, error)
	updateFunc            func(ctx context.Context, schema string, m *user.CollaboratorMapping) error
}

func (m *mockCollabRepo) Create(ctx context.Context, schema string, cm *user.CollaboratorMapping) error {
	return m.createFunc(ctx, schema, cm)
}

func (m *mockCollabRepo) ListActivePeerIDs(ctx context.Context, schema string, userID uint, at time.Time) ([]uint, error) {
	if m.listActivePeerIDsFunc == nil {
		return nil, nil
	}
	return m.listActivePeerIDsFunc(ctx, schema, userID, at)
}

func (m *mockCollabRepo) Update(ctx context.Context, schema string, cm *user.CollaboratorMapping) error {
	return m.updateFunc(ctx, schema, cm)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
