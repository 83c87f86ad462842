package ports

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating stage spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
	// EmitPlan signals which stages the pipeline intends to run.
	EmitPlan(ctx context.Context, stages []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Renderer presents pipeline progress. It is fed by the telemetry bridge.
type Renderer interface {
	// OnPlanEmit is called once with the stages the pipeline intends to run.
	OnPlanEmit(stages []string)

	// OnStageStart is called when a stage span starts.
	OnStageStart(spanID, name string, startTime time.Time)

	// OnStageLog is called with raw output written to a stage span. data may
	// contain partial lines.
	OnStageLog(spanID string, data []byte)

	// OnStageComplete is called when a stage span ends. err is nil on success.
	OnStageComplete(spanID string, endTime time.Time, err error)

	// Stop flushes buffered output.
	Stop() error
}
