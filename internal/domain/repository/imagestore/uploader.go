package imagestore

import (
	"context"

	"designermonk/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, upload entity.ImageUpload) (entity.StoredImage, error)
}
