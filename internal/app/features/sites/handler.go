// internal/app/features/sites/handler.go
package sites

import (
	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	sitestore "github.com/breezehq/breeze-console/internal/app/store/sites"
	"github.com/breezehq/breeze-console/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the Sites pages.
type Handler struct {
	Sites  *sitestore.Store
	Flash  *flash.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Sites handler bound to the platform store.
func NewHandler(sites *sitestore.Store, fl *flash.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Sites:  sites,
		Flash:  fl,
		ErrLog: errLog,
		Log:    logger,
	}
}
