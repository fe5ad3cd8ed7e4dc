package eventsink

import (
	"context"
	"errors"

	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/repository/broker"
)

// Fanout delivers each event to every sink, in order. One failing sink does
// not stop the others; their errors are joined.
type Fanout struct {
	sinks []broker.Publisher
}

func NewFanout(sinks ...broker.Publisher) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(ctx context.Context, event entity.PipelineEvent) error {
	var errs []error

	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}

		if err := sink.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
