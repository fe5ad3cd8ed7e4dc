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

// Creator stores the image first and writes the project only once the
// remote store returned a URL.
type Creator struct {
	pipeline *ImagePipeline
	writer   database.Writer
	remover  imagestore.Remover
}

func NewCreator(pipeline *ImagePipeline, writer database.Writer, remover imagestore.Remover) *Creator {
	return &Creator{
		pipeline: pipeline,
		writer:   writer,
		remover:  remover,
	}
}

func (c *Creator) Create(ctx context.Context, requestID string, input dto.ProjectInput,
	blob *entity.UploadedBlob,
) (*model.Project, error) {
	if blob == nil {
		return nil, apperror.New(apperror.MissingImage, "Image is required", nil)
	}

	stored, err := c.pipeline.Store(ctx, requestID, blob)
	if err != nil {
		return nil, err
	}

	project := input.NewProject(stored)
	if err := c.writer.Write(ctx, project); err != nil {
		discardImage(ctx, c.remover, &stored)
		c.pipeline.Emit(ctx, entity.PipelineEvent{
			RequestID: requestID,
			Stage:     entity.StagePersistenceFailed,
			Kind:      string(apperror.PersistenceFailure),
			URL:       stored.URL,
			Message:   err.Error(),
		})

		return nil, apperror.New(apperror.PersistenceFailure, err.Error(), err)
	}

	c.pipeline.Emit(ctx, entity.PipelineEvent{
		RequestID: requestID,
		Stage:     entity.StageCommitted,
		URL:       project.ImageURL,
		ProjectID: project.ID.Hex(),
	})

	return project, nil
}
