// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// request limits). AppConfig is everything specific to the console: where the
// device platform lives, where saved filters persist, and cookie secrets.
type AppConfig struct {
	// Device platform API
	PlatformAPIURL  string        // Base URL of the platform REST API (e.g., https://api.breeze.example)
	PlatformToken   string        // Bearer token for platform requests (blank means unauthenticated)
	PlatformTimeout time.Duration // Per-request timeout for platform calls

	// MongoDB connection configuration (saved filters only)
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session/cookie configuration
	SessionKey  string // Secret key for signing flash/session cookies (must be strong in production)
	SessionName string // Cookie name (default: breeze-console)
	CSRFKey     string // Secret key for CSRF tokens (32 bytes; must be strong in production)

	// Billing
	BillingCacheTTL time.Duration // How long a fetched billing snapshot may be reused

	// Branding
	SiteName string // Display name in the page chrome
}
