package visibility

import (
	"context"
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type mockSupervisorMappingRepo struct {
	createFunc             func(ctx context.Context, schema string, m *user.SupervisorMapping) error
	listSubordinateIDsFunc func(ctx context.Context, schema string, supervisorID uint) ([]uint, error)
	listSupervisorIDsFunc  func(ctx context.Context, schema string, userID uint) ([]uint, error)
	softDeleteFunc         func(ctx context.Context, schema string, id uint) error
}

func (m *mockSupervisorMappingRepo) Create(ctx context.Context, schema string, sm *user.SupervisorMapping) error {
	return m.createFunc(ctx, schema, sm)
}

func (m *mockSupervisorMappingRepo) ListSubordinateIDs(ctx context.Context, schema string, supervisorID uint) ([]uint, error) {
	return m.listSubordinateIDsFunc(ctx, schema, supervisorID)
}

func (m *mockSupervisorMappingRepo) ListSupervisorIDs(ctx context.Context, schema string, userID uint) ([]uint, error) {
	return m.listSupervisorIDsFunc(ctx, schema, userID)
}

func (m *mockSupervisorMappingRepo) SoftDelete(ctx context.Context, schema string, id uint) error {
	return m.softDeleteFunc(ctx, schema, id)
}

type mockAliasMappingRepo struct {
	createFunc            func(ctx context.Context, schema string, m *user.AliasMapping) error
	getByIDFunc           func(ctx context.Context, schema string, id uint) (*user.AliasMapping, error)
	listActiveForUserFunc func(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error)
	updateFunc            func(ctx context.Context, schema string, m *user.AliasMapping) error
}

func (m *mockAliasMappingRepo) Create(ctx context.Context, schema string, am *user.AliasMapping) error {
	return m.createFunc(ctx, schema, am)
}

func (m *mockAliasMappingRepo) GetByID(ctx context.Context, schema string, id uint) (*user.AliasMapping, error) {
	return m.getByIDFunc(ctx, schema, id)
}

func (m *mockAliasMappingRepo) ListActiveForUser(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
	return m.listActiveForUserFunc(ctx, schema, userID, at)
}

func (m *mockAliasMappingRepo) Update(ctx context.Context, schema string, am *user.AliasMapping) error {
	return m.updateFunc(ctx, schema, am)
}

type mockCollaboratorMappingRepo struct {
	createFunc            func(ctx context.Context, schema string, m *user.CollaboratorMapping) error
	listActivePeerIDsFunc func(ctx context.Context, schema string, userID uint, at time.Time) ([]uint, error)
	updateFunc            func(ctx context.Context, schema string, m *user.CollaboratorMapping) error
}

func (m *mockCollaboratorMappingRepo) Create(ctx context.Context, schema string, cm *user.CollaboratorMapping) error {
	return m.createFunc(ctx, schema, cm)
}

func (m *mockCollaboratorMappingRepo) ListActivePeerIDs(ctx context.Context, schema string, userID uint, at time.Time) ([]uint, error) {
	return m.listActivePeerIDsFunc(ctx, schema, userID, at)
}

func (m *mockCollaboratorMappingRepo) Update(ctx context.Context, schema string, cm *user.CollaboratorMapping) error {
	return m.updateFunc(ctx, schema, cm)
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
