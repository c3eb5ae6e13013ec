// Package migration manages the common-schema migrations and tenant schema
// provisioning. The common schema holds tenant metadata; every tenant schema
// is stamped from the same template scripts.
package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/shared/constants"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// CommonMigrator runs the common-schema migration scripts with
// golang-migrate. The version table lives inside the common schema so tenant
// schemas stay clean.
type CommonMigrator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewCommonMigrator(scriptsPath string, logger logger.Interface) *CommonMigrator {
	return &CommonMigrator{
		scriptsPath: scriptsPath,
		logger:      logger.Named("migration.common"),
	}
}

func (m *CommonMigrator) newInstance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.CommonSchema).Error; err != nil {
		return nil, fmt.Errorf("failed to create common schema: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{
		SchemaName: constants.CommonSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	inst, err := migrate.NewWithDatabaseInstance("file://"+m.scriptsPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return inst, nil
}

func (m *CommonMigrator) Up(db *gorm.DB) error {
	inst, err := m.newInstance(db)
	if err != nil {
		return err
	}
	defer inst.Close()

	version, dirty, err := inst.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("common schema is dirty at version %d", version)
	}

	if err := inst.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run common migrations: %w", err)
	}

	final, _, err := inst.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}
	m.logger.Infow("common schema migrated", "from_version", version, "to_version", final)
	return nil
}

// Down rolls back the given number of common-schema migrations.
func (m *CommonMigrator) Down(db *gorm.DB, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	inst, err := m.newInstance(db)
	if err != nil {
		return err
	}
	defer inst.Close()

	if err := inst.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back common migrations: %w", err)
	}
	m.logger.Infow("common schema rolled back", "steps", steps)
	return nil
}

// Version reports the current common-schema migration version. The bool is
// false when no migration has been applied yet.
func (m *CommonMigrator) Version(db *gorm.DB) (uint, bool, error) {
	inst, err := m.newInstance(db)
	if err != nil {
		return 0, false, err
	}
	defer inst.Close()

	version, dirty, err := inst.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	if dirty {
		return version, true, fmt.Errorf("common schema is dirty at version %d", version)
	}
	return version, true, nil
}
