package usecase

import (
	"context"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/dto"
	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/model"
	"designermonk/internal/domain/repository/database"
	"designermonk/internal/domain/repository/imagestore"
)

type Updater struct {
	pipeline  *ImagePipeline
	retriever database.Retriever
	updater   database.Updater
	remover   imagestore.Remover
}

func NewUpdater(pipeline *ImagePipeline, retriever database.Retriever, updater database.Updater,
	remover imagestore.Remover,
) *Updater {
	return &Updater{
		pipeline:  pipeline,
		retriever: retriever,
		updater:   updater,
		remover:   remover,
	}
}

// Update sets the fields present in input. A new image replaces the old one,
// which is removed from the remote store after the record points at the new
// URL.
func (u *Updater) Update(ctx context.Context, requestID, id string, input dto.ProjectInput,
	blob *entity.UploadedBlob,
) (*model.Project, error) {
	changes := input.Changes()

	if blob == nil {
		project, err := u.updater.UpdateByID(ctx, id, changes)
		if err != nil {
			return nil, persistenceError(err)
		}

		return project, nil
	}

	// Look the record up before uploading so a bad id costs no network I/O.
	previous, err := u.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, persistenceError(err)
	}

	stored, err := u.pipeline.Store(ctx, requestID, blob)
	if err != nil {
		return nil, err
	}

	changes["imageUrl"] = stored.URL
	changes["image"] = stored

	project, err := u.updater.UpdateByID(ctx, id, changes)
	if err != nil {
		discardImage(ctx, u.remover, &stored)
		u.pipeline.Emit(ctx, entity.PipelineEvent{
			RequestID: requestID,
			Stage:     entity.StagePersistenceFailed,
			Kind:      string(apperror.KindOf(persistenceError(err))),
			URL:       stored.URL,
			Message:   err.Error(),
		})

		return nil, persistenceError(err)
	}

	u.pipeline.Emit(ctx, entity.PipelineEvent{
		RequestID: requestID,
		Stage:     entity.StageCommitted,
		URL:       stored.URL,
		ProjectID: id,
	})

	discardImage(ctx, u.remover, previous.Image)

	return project, nil
}
