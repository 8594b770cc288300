// internal/app/features/savedfilters/handler.go
package savedfilters

import (
	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	savedfilterstore "github.com/breezehq/breeze-console/internal/app/store/savedfilters"
	"github.com/breezehq/breeze-console/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the Saved Filters pages.
type Handler struct {
	Filters *savedfilterstore.Store
	Flash   *flash.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a Saved Filters handler bound to the mongo store.
func NewHandler(filters *savedfilterstore.Store, fl *flash.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Filters: filters,
		Flash:   fl,
		ErrLog:  errLog,
		Log:     logger,
	}
}
