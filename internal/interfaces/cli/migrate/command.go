// Package migrate implements the database migration CLI commands.
package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	userUsecases "github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/auth"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/config"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/database"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/migration"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/repository"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/constants"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

var (
	env           string
	steps         int
	migrationName string

	adminEmail     string
	adminPassword  string
	adminFirstName string
	adminLastName  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Common-schema migration tools",
		Long:  `Manage common-schema migrations and seed platform super admin accounts. Tenant schemas are migrated at provisioning time, not from here.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newCreateAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending common-schema migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback common-schema migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current common-schema migration version",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create empty up/down migration files for the common schema",
		RunE:  runCreate,
	}
	cmd.Flags().StringVar(&migrationName, "name", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a platform super admin account in the common schema",
		RunE:  runCreateAdmin,
	}
	cmd.Flags().StringVar(&adminEmail, "email", "", "Admin email (required)")
	cmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	cmd.Flags().StringVar(&adminFirstName, "first-name", "", "Admin first name")
	cmd.Flags().StringVar(&adminLastName, "last-name", "", "Admin last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

func newMigrator(log logger.Interface) (*migration.CommonMigrator, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts/common")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}
	return migration.NewCommonMigrator(scriptsPath, log), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	migrator, err := newMigrator(log)
	if err != nil {
		return err
	}
	return migrator.Up(database.Get())
}

func runDown(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	migrator, err := newMigrator(log)
	if err != nil {
		return err
	}
	return migrator.Down(database.Get(), steps)
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	migrator, err := newMigrator(log)
	if err != nil {
		return err
	}
	version, applied, err := migrator.Version(database.Get())
	if err != nil {
		return err
	}
	if !applied {
		fmt.Println("no migrations applied")
		return nil
	}
	fmt.Printf("current version: %d\n", version)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts/common")
	if err != nil {
		return fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	entries, err := os.ReadDir(scriptsPath)
	if err != nil {
		return fmt.Errorf("failed to read migration scripts directory: %w", err)
	}
	next := 1
	for _, e := range entries {
		var seq int
		if _, err := fmt.Sscanf(e.Name(), "%06d_", &seq); err == nil && seq >= next {
			next = seq + 1
		}
	}

	base := fmt.Sprintf("%06d_%s", next, migrationName)
	for _, suffix := range []string{".up.sql", ".down.sql"} {
		path := filepath.Join(scriptsPath, base+suffix)
		if err := os.WriteFile(path, []byte("-- "+migrationName+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Println("created", path)
	}
	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	userRepo := repository.NewUserRepository(database.Get(), log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	createUC := userUsecases.NewCreateUserUseCase(userRepo, hasher, log)

	created, err := createUC.Execute(context.Background(), userUsecases.CreateUserCommand{
		Schema:    constants.CommonSchema,
		Email:     adminEmail,
		FirstName: adminFirstName,
		LastName:  adminLastName,
		Role:      string(user.RoleSuperAdmin),
		Provider:  string(user.ProviderLocal),
		Password:  adminPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	fmt.Printf("super admin created: id=%d email=%s\n", created.ID, created.Email)
	return nil
}
