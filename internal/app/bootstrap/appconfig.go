// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: CoreConfig already covers
// ports, TLS, logging and the other framework concerns.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Token configuration
	TokenSecret     string        // HMAC signing key for the JWT pair (must be strong in production)
	AccessTokenTTL  time.Duration // Lifetime of the access token cookie
	RefreshTokenTTL time.Duration // Lifetime of the refresh token cookie
	CookieDomain    string        // Cookie domain (blank means current host)
	CookieSecure    bool          // Force Secure cookies even outside prod

	// Admin bootstrap: when all three are set, an admin user is created on
	// startup if one with this email does not exist yet.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}
