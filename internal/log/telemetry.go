package log

import (
	"log/slog"

	"github.com/petal-labs/easel/core"
)

// TelemetryHook logs pipeline events. Prompts and keys never reach it.
type TelemetryHook struct {
	Logger *slog.Logger
}

// NewTelemetryHook returns a hook writing to logger.
func NewTelemetryHook(logger *slog.Logger) *TelemetryHook {
	return &TelemetryHook{Logger: logger}
}

// OnRequestStart logs the request shape at debug level.
func (h *TelemetryHook) OnRequestStart(e core.RequestStartEvent) {
	h.Logger.Debug("generation started",
		slog.String("generation_id", e.ID),
		slog.String("provider", e.Provider),
		slog.String("model", string(e.Model)),
		slog.String("size", string(e.Size)),
		slog.String("quality", string(e.Quality)),
		slog.Int("count", e.Count),
	)
}

// OnRequestEnd logs the outcome. Failures are logged at error level with
// their kind.
func (h *TelemetryHook) OnRequestEnd(e core.RequestEndEvent) {
	attrs := []any{
		slog.String("generation_id", e.ID),
		slog.String("provider", e.Provider),
		slog.String("model", string(e.Model)),
		slog.String("stage", string(e.Stage)),
		slog.Int("bytes", e.Bytes),
		slog.Duration("duration", e.Duration()),
	}
	if e.Err != nil {
		kind := "error"
		if f, ok := core.AsFailure(e.Err); ok {
			kind = string(f.Kind)
		}
		h.Logger.Error("generation failed", append(attrs, slog.String("kind", kind), slog.Any("err", e.Err))...)
		return
	}
	h.Logger.Info("generation finished", attrs...)
}

var _ core.TelemetryHook = (*TelemetryHook)(nil)
