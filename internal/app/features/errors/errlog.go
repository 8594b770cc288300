// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs a handler failure and renders the matching friendly page.
// Handlers keep one of these so the "log it, then show something humane"
// pairing never gets skipped in one place and forgotten in another.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at error level and renders a 500 page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogUnavailable logs err at error level and renders the full-page platform
// error with a retry action.
func (e *ErrorLogger) LogUnavailable(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, retryURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	RenderUnavailable(w, r, userMsg, retryURL)
}
