package usecase

import (
	"context"
	"errors"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/repository/database"
	"designermonk/internal/domain/repository/imagestore"
	"designermonk/pkg/logger"
)

var errEmptyURL = errors.New("provider returned no URL")

func persistenceError(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return apperror.New(apperror.NotFound, "Project not found", err)
	}

	return apperror.New(apperror.PersistenceFailure, err.Error(), err)
}

// discardImage removes a remote image that is no longer referenced by any
// record. Failures are logged only.
func discardImage(ctx context.Context, remover imagestore.Remover, image *entity.StoredImage) {
	if remover == nil || image == nil || image.PublicID == "" {
		return
	}

	if err := remover.Remove(context.WithoutCancel(ctx), image.PublicID); err != nil {
		logger.Error("failed to remove image from remote store", "public_id", image.PublicID, "err", err)
	}
}
