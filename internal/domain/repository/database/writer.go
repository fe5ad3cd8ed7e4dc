package database

import (
	"context"

	"designermonk/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, project *model.Project) error
}
