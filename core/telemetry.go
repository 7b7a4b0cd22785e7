package core

import "time"

// Stage names a step of the pipeline.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageFetch    Stage = "fetch"
	StageDecode   Stage = "decode"
)

// TelemetryHook receives notifications about pipeline lifecycle events.
//
// Events carry operational metadata only. Prompt text, API keys and image
// bytes are never included, so events can be logged or exported as-is.
type TelemetryHook interface {
	// OnRequestStart is called before the provider call.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called once the asset is decoded or a Failure is produced.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting generation.
type RequestStartEvent struct {
	ID       string // Shared by the matching end event
	Provider string
	Model    ModelID
	Size     Size
	Quality  Quality
	Count    int
	Start    time.Time
}

// RequestEndEvent contains metadata about a finished generation.
type RequestEndEvent struct {
	ID       string
	Provider string
	Model    ModelID
	Start    time.Time
	End      time.Time
	Bytes    int   // Total image bytes downloaded
	Stage    Stage // Last stage reached
	Err      error // *Failure on error, nil on success
}

// Duration returns the elapsed time for the request.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

var _ TelemetryHook = NoopTelemetryHook{}
