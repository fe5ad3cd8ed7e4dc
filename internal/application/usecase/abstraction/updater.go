package abstraction

import (
	"context"

	"designermonk/internal/domain/dto"
	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/model"
)

type Updater interface {
	Update(ctx context.Context, requestID, id string, input dto.ProjectInput,
		blob *entity.UploadedBlob) (*model.Project, error)
}
