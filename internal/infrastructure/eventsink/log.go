package eventsink

import (
	"context"

	"designermonk/internal/domain/entity"
	"designermonk/pkg/logger"
)

// LogSink writes every pipeline event to the process logger.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (LogSink) Publish(_ context.Context, event entity.PipelineEvent) error {
	keyvals := []any{
		"request_id", event.RequestID,
		"stage", event.Stage,
	}

	if event.Kind != "" {
		keyvals = append(keyvals, "kind", event.Kind)
	}
	if event.Bytes > 0 {
		keyvals = append(keyvals, "bytes", event.Bytes)
	}
	if event.Escalated {
		keyvals = append(keyvals, "escalated", true)
	}
	if event.URL != "" {
		keyvals = append(keyvals, "url", event.URL)
	}
	if event.ProjectID != "" {
		keyvals = append(keyvals, "project_id", event.ProjectID)
	}
	if event.Message != "" {
		keyvals = append(keyvals, "message", event.Message)
	}

	if event.Failed() {
		logger.Warn("pipeline event", keyvals...)
	} else {
		logger.Info("pipeline event", keyvals...)
	}

	return nil
}
