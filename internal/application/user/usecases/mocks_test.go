package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type mockUserRepo struct {
	createFunc     func(ctx context.Context, schema string, u *user.User) error
	getByIDFunc    func(ctx context.Context, schema string, id uint) (*user.User, error)
	getByEmailFunc func(ctx context.Context, schema string, email string) (*user.User, error)
	listFunc       func(ctx context.Context, schema string, offset, limit int) ([]*user.User, int64, error)
	updateFunc     func(ctx context.Context, schema string, u *user.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, schema string, u *user.User) error {
	return m.createFunc(ctx, schema, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, schema string, id uint) (*user.User, error) {
	return m.getByIDFunc(ctx, schema, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, schema string, email string) (*user.User, error) {
	return m.getByEmailFunc(ctx, schema, email)
}

func (m *mockUserRepo) List(ctx context.Context, schema string, offset, limit int) ([]*user.User, int64, error) {
	return m.listFunc(ctx, schema, offset, limit)
}

func (m *mockUserRepo) Update(ctx context.Context, schema string, u *user.User) error {
	return m.updateFunc(ctx, schema, u)
}

type mockSessionRepo struct {
	createFunc                func(ctx context.Context, schema string, s *user.Session) error
	getByIDFunc               func(ctx context.Context, schema string, sessionID string) (*user.Session, error)
	getByRefreshTokenHashFunc func(ctx context.Context, schema string, hash string) (*user.Session, error)
	updateFunc                func(ctx context.Context, schema string, s *user.Session) error
	deleteFunc                func(ctx context.Context, schema string, sessionID string) error
	deleteExpiredFunc         func(ctx context.Context, schema string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, schema string, s *user.Session) error {
	return m.createFunc(ctx, schema, s)
}

func (m *mockSessionRepo) GetByID(ctx context.Context, schema string, sessionID string) (*user.Session, error) {
	return m.getByIDFunc(ctx, schema, sessionID)
}

func (m *mockSessionRepo) GetByRefreshTokenHash(ctx context.Context, schema string, hash string) (*user.Session, error) {
	return m.getByRefreshTokenHashFunc(ctx, schema, hash)
}

func (m *mockSessionRepo) Update(ctx context.Context, schema string, s *user.Session) error {
	return m.updateFunc(ctx, schema, s)
}

func (m *mockSessionRepo) Delete(ctx context.Context, schema string, sessionID string) error {
	return m.deleteFunc(ctx, schema, sessionID)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context, schema string) error {
	return m.deleteExpiredFunc(ctx, schema)
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
	return m.listActiveForUserFunc(ctx, schema, userID, at)
}

func (m *mockAliasRepo) Update(ctx context.Context, schema string, am *user.AliasMapping) error {
	return m.updateFunc(ctx, schema, am)
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
	return m.listSubordinateIDsFunc(ctx, schema, supervisorID)
}

func (m *mockSupervisorRepo) ListSupervisorIDs(ctx context.Context, schema string, userID uint) ([]uint, error) {
	return m.listSupervisorIDsFunc(ctx, schema, userID)
}

func (m *mockSupervisorRepo) SoftDelete(ctx context.Context, schema string, id uint) error {
	return m.softDeleteFunc(ctx, schema, id)
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
	return m.listActivePeerIDsFunc(ctx, schema, userID, at)
}

func (m *mockCollabRepo) Update(ctx context.Context, schema string, cm *user.CollaboratorMapping) error {
	return m.updateFunc(ctx, schema, cm)
}

// mockJWTService issues deterministic tokens so tests can assert rotation.
type mockJWTService struct {
	counter          int
	parseRefreshFunc func(token string) (*TokenClaims, error)
}

func (m *mockJWTService) GeneratePair(userID uint, sessionID string, role user.Role, schema string) (*TokenPair, error) {
	m.counter++
	return &TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", m.counter),
		RefreshToken: fmt.Sprintf("refresh-%d", m.counter),
		ExpiresIn:    900,
	}, nil
}

func (m *mockJWTService) ParseAccess(token string) (*TokenClaims, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockJWTService) ParseRefresh(token string) (*TokenClaims, error) {
	if m.parseRefreshFunc != nil {
		return m.parseRefreshFunc(token)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockHasher struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(hashed, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(hashed, password string) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(hashed, password)
	}
	if hashed == "hashed:"+password {
		return nil
	}
	return fmt.Errorf("mismatch")
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
