// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ShareWallet.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_secret, etc.
//   - Environment variables: SHAREWALLET_MONGO_URI, SHAREWALLET_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "sharewallet", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Token configuration
	{Name: "token_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "JWT signing secret (must be strong in production)"},
	{Name: "access_token_ttl", Default: "1h", Desc: "Access token lifetime (e.g., 1h, 30m)"},
	{Name: "refresh_token_ttl", Default: "168h", Desc: "Refresh token lifetime (e.g., 168h for 7 days)"},
	{Name: "cookie_domain", Default: "", Desc: "Auth cookie domain (blank means current host)"},
	{Name: "cookie_secure", Default: false, Desc: "Force Secure auth cookies outside prod"},

	// Admin bootstrap
	{Name: "admin_username", Default: "", Desc: "Username of the admin user created on startup"},
	{Name: "admin_email", Default: "", Desc: "Email of the admin user created on startup"},
	{Name: "admin_password", Default: "", Desc: "Password of the admin user created on startup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SHAREWALLET_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SHAREWALLET", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSecret:     appValues.String("token_secret"),
		AccessTokenTTL:  appValues.Duration("access_token_ttl", time.Hour),
		RefreshTokenTTL: appValues.Duration("refresh_token_ttl", 7*24*time.Hour),
		CookieDomain:    appValues.String("cookie_domain"),
		CookieSecure:    appValues.Bool("cookie_secure"),

		AdminUsername: appValues.String("admin_username"),
		AdminEmail:    appValues.String("admin_email"),
		AdminPassword: appValues.String("admin_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// ShareWallet validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and enforces sane token
// lifetimes: a refresh token that outlives its access token is the whole
// point of the pair.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.TokenSecret == "" {
		return fmt.Errorf("token_secret must be set")
	}
	if appCfg.AccessTokenTTL <= 0 || appCfg.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	if appCfg.RefreshTokenTTL <= appCfg.AccessTokenTTL {
		return fmt.Errorf("refresh_token_ttl must exceed access_token_ttl")
	}

	return nil
}
