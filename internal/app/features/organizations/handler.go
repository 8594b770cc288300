// internal/app/features/organizations/handler.go
package organizations

import (
	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	organizationstore "github.com/breezehq/breeze-console/internal/app/store/organizations"
	"github.com/breezehq/breeze-console/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the Organizations pages.
type Handler struct {
	Orgs   *organizationstore.Store
	Flash  *flash.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an Organizations handler bound to the platform store.
func NewHandler(orgs *organizationstore.Store, fl *flash.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Orgs:   orgs,
		Flash:  fl,
		ErrLog: errLog,
		Log:    logger,
	}
}
