package meta

// Metadata is the per-request metadata result. Fetch never fails at the type
// level: total retrieval failure is encoded in Retrieved/ErrorDetail and the
// remaining fields carry deterministic placeholder values.
type Metadata struct {
	Title        string
	Author       string
	ThumbnailURL string
	// DurationSec is 0 when the retrieval method does not expose a duration.
	DurationSec int64
	Retrieved   bool
	ErrorDetail string
}

// Logger is an optional package logger used for non-fatal warnings.
type Logger interface {
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}
