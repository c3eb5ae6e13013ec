package migration

import (
	"context"
	"embed"
	"fmt"
	"regexp"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

//go:embed scripts/tenant/*.sql
var tenantScripts embed.FS

var schemaNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// TenantProvisioner creates a tenant's dedicated schema and stamps it with
// the tenant template scripts. Goose keeps its version table inside the new
// schema, so later template versions can be rolled out per tenant.
type TenantProvisioner struct {
	db     *gorm.DB
	cfg    *config.DatabaseConfig
	logger logger.Interface

	// goose dialect/base-FS/table-name are package-level state.
	mu sync.Mutex
}

func NewTenantProvisioner(db *gorm.DB, cfg *config.DatabaseConfig, logger logger.Interface) tenant.SchemaProvisioner {
	return &TenantProvisioner{db: db, cfg: cfg, logger: logger.Named("migration.provisioner")}
}

func (p *TenantProvisioner) Provision(ctx context.Context, schemaName string) error {
	if !schemaNamePattern.MatchString(schemaName) {
		return fmt.Errorf("invalid schema name: %q", schemaName)
	}

	if err := p.db.WithContext(ctx).Exec("CREATE SCHEMA IF NOT EXISTS " + schemaName).Error; err != nil {
		return fmt.Errorf("failed to create schema %s: %w", schemaName, err)
	}

	// A dedicated connection pins search_path to the new schema for the
	// template scripts.
	dsn := p.cfg.GetDSN() + " search_path=" + schemaName
	scoped, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return fmt.Errorf("failed to open schema-scoped connection: %w", err)
	}
	sqlDB, err := scoped.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	defer sqlDB.Close()

	p.mu.Lock()
	defer p.mu.Unlock()

	goose.SetBaseFS(tenantScripts)
	defer goose.SetBaseFS(nil)
	goose.SetTableName(schemaName + ".goose_db_version")
	defer goose.SetTableName("goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "scripts/tenant"); err != nil {
		return fmt.Errorf("failed to apply tenant template to %s: %w", schemaName, err)
	}

	p.logger.Infow("tenant schema provisioned", "schema", schemaName)
	return nil
}
