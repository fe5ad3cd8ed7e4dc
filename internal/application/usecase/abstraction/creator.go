package abstraction

import (
	"context"

	"designermonk/internal/domain/dto"
	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/model"
)

type Creator interface {
	Create(ctx context.Context, requestID string, input dto.ProjectInput,
		blob *entity.UploadedBlob) (*model.Project, error)
}
