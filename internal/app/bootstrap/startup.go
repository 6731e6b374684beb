// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/domain/models"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. The only
// job here is seeding the first admin user from configuration: the
// POST /api/admin endpoint itself requires an existing admin.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail == "" || appCfg.AdminUsername == "" || appCfg.AdminPassword == "" {
		return nil
	}

	users := userstore.New(deps.MongoDatabase)
	exists, err := users.ExistsByEmail(ctx, appCfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("checking for seed admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(appCfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed admin password: %w", err)
	}

	_, err = users.Create(ctx, models.User{
		Username: appCfg.AdminUsername,
		Email:    appCfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	})
	if err != nil {
		// Another instance may have seeded it between the check and the insert.
		if errors.Is(err, userstore.ErrDuplicateUser) {
			return nil
		}
		return fmt.Errorf("creating seed admin: %w", err)
	}

	logger.Info("seeded admin user",
		zap.String("username", appCfg.AdminUsername),
		zap.String("email", appCfg.AdminEmail))
	return nil
}
