package metrics

import (
	"context"

	"designermonk/internal/domain/entity"
)

// Sink records pipeline events as metrics. It never fails.
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Publish(_ context.Context, event entity.PipelineEvent) error {
	stage := string(event.Stage)

	PipelineEvents.WithLabelValues(stage, event.Kind).Inc()

	if event.Bytes > 0 {
		StageBytes.WithLabelValues(stage).Observe(float64(event.Bytes))
	}

	if event.Duration > 0 {
		StageDuration.WithLabelValues(stage).Observe(event.Duration)
	}

	if event.Escalated {
		Escalations.Inc()
	}

	return nil
}
