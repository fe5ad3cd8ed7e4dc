package broker

import (
	"context"

	"designermonk/internal/domain/entity"
)

// Publisher receives pipeline events. Implementations must not block the
// request for longer than their own timeout.
type Publisher interface {
	Publish(ctx context.Context, event entity.PipelineEvent) error
}
