// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the console.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: platform_api_url, mongo_uri, etc.
//   - Environment variables: BREEZE_PLATFORM_API_URL, BREEZE_MONGO_URI, etc.
//   - Command-line flags: --platform_api_url, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "platform_api_url", Default: "http://localhost:4000", Desc: "Base URL of the Breeze platform REST API"},
	{Name: "platform_token", Default: "", Desc: "Bearer token for platform API requests"},
	{Name: "platform_timeout", Default: "10s", Desc: "Per-request timeout for platform API calls"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (saved filters)"},
	{Name: "mongo_database", Default: "breeze_console", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "breeze-console", Desc: "Session cookie name"},
	{Name: "csrf_key", Default: "dev-only-change-me-32-bytes-long", Desc: "CSRF token key, 32 bytes (must be strong in production)"},

	{Name: "billing_cache_ttl", Default: "5m", Desc: "How long a billing snapshot may be reused"},

	{Name: "site_name", Default: "Breeze Console", Desc: "Display name in the page chrome"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// CoreConfig comes from the shared WAFFLE layer (WAFFLE_* variables);
// AppConfig is specific to this app (BREEZE_* variables) and merges with
// precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BREEZE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		PlatformAPIURL:  appValues.String("platform_api_url"),
		PlatformToken:   appValues.String("platform_token"),
		PlatformTimeout: appValues.Duration("platform_timeout", 10*time.Second),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),
		CSRFKey:     appValues.String("csrf_key"),

		BillingCacheTTL: appValues.Duration("billing_cache_ttl", 5*time.Minute),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// connections are attempted.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	u, err := url.Parse(appCfg.PlatformAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid platform_api_url %q: expected an absolute http(s) URL", appCfg.PlatformAPIURL)
	}

	if len(appCfg.CSRFKey) < 32 {
		return fmt.Errorf("csrf_key must be at least 32 bytes")
	}

	return nil
}
