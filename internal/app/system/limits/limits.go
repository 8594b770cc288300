// internal/app/system/limits/limits.go
package limits

// Request body size limits for form submissions.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize is the maximum size for entity form submissions.
	MaxFormSize = 1 << 20 // 1 MB
)
