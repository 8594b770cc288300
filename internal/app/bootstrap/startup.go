// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/app/system/timezones"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. The
// curated time zone list must parse or the site forms cannot render, so a
// broken data file fails startup rather than a later request.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if err := timezones.Load(); err != nil {
		return fmt.Errorf("load time zone data: %w", err)
	}

	timeouts.Configure(0, 0, appCfg.PlatformTimeout, 0)
	return nil
}
