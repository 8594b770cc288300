// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	billingfeature "github.com/breezehq/breeze-console/internal/app/features/billing"
	errorsfeature "github.com/breezehq/breeze-console/internal/app/features/errors"
	healthfeature "github.com/breezehq/breeze-console/internal/app/features/health"
	homefeature "github.com/breezehq/breeze-console/internal/app/features/home"
	organizationsfeature "github.com/breezehq/breeze-console/internal/app/features/organizations"
	savedfiltersfeature "github.com/breezehq/breeze-console/internal/app/features/savedfilters"
	_ "github.com/breezehq/breeze-console/internal/app/features/shared" // layout templates
	sitesfeature "github.com/breezehq/breeze-console/internal/app/features/sites"
	billingstore "github.com/breezehq/breeze-console/internal/app/store/billing"
	organizationstore "github.com/breezehq/breeze-console/internal/app/store/organizations"
	savedfilterstore "github.com/breezehq/breeze-console/internal/app/store/savedfilters"
	sitestore "github.com/breezehq/breeze-console/internal/app/store/sites"
	"github.com/breezehq/breeze-console/internal/app/system/flash"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine, wires the
// shared flash store into view models, applies CSRF protection, and mounts
// the feature routers: home, organizations, sites, billing, saved filters,
// and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Flash notices ride a signed cookie session; view models drain them.
	flashStore := flash.New(appCfg.SessionKey, appCfg.SessionName, secure, logger)
	viewdata.Init(flashStore, appCfg.SiteName)

	errLog := errorsfeature.NewErrorLogger(logger)

	// Platform-backed stores.
	orgStore := organizationstore.New(deps.API)
	siteStore := sitestore.New(deps.API)
	billStore := billingstore.New(deps.API, appCfg.BillingCacheTTL, logger)
	filterStore := savedfilterstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// All mutations arrive as forms; every POST must carry a CSRF token.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey), csrf.Secure(secure), csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Settings landing page
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Organization management
	orgHandler := organizationsfeature.NewHandler(orgStore, flashStore, errLog, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler))

	// Site management
	siteHandler := sitesfeature.NewHandler(siteStore, flashStore, errLog, logger)
	r.Mount("/sites", sitesfeature.Routes(siteHandler))

	// Billing summary (display only)
	billingHandler := billingfeature.NewHandler(billStore, logger)
	r.Mount("/billing", billingfeature.Routes(billingHandler))

	// Saved filters
	filterHandler := savedfiltersfeature.NewHandler(filterStore, flashStore, errLog, logger)
	r.Mount("/saved-filters", savedfiltersfeature.Routes(filterHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
