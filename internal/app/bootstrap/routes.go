// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountsfeature "github.com/sharewallet/sharewallet/internal/app/features/accounts"
	groupsfeature "github.com/sharewallet/sharewallet/internal/app/features/groups"
	healthfeature "github.com/sharewallet/sharewallet/internal/app/features/health"
	usersfeature "github.com/sharewallet/sharewallet/internal/app/features/users"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. ShareWallet initializes the token
// manager and mounts the API feature routers plus the health endpoint.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies in production regardless of the explicit flag.
	secure := appCfg.CookieSecure || coreCfg.Env == "prod"
	tokenMgr, err := auth.NewManager(appCfg.TokenSecret, appCfg.AccessTokenTTL, appCfg.RefreshTokenTTL, appCfg.CookieDomain, secure, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	r := chi.NewRouter()

	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/", accountsfeature.Routes(accountsfeature.NewHandler(db, tokenMgr, logger)))
		api.Mount("/users", usersfeature.Routes(usersfeature.NewHandler(db, tokenMgr, logger)))
		api.Mount("/groups", groupsfeature.Routes(groupsfeature.NewHandler(db, tokenMgr, logger)))
	})

	return r, nil
}
