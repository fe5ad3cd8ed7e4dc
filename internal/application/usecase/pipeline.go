package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/repository/broker"
	"designermonk/internal/domain/repository/imagestore"
	"designermonk/pkg/logger"
	"designermonk/pkg/utils"
)

type ImageCompressor interface {
	Compress(ctx context.Context, data []byte, contentType string) (entity.CompressionOutcome, error)
}

// ImagePipeline takes a filtered upload through compression and the remote
// store. A compression failure is recovered by uploading the original bytes;
// a store failure ends the pipeline.
type ImagePipeline struct {
	compressor ImageCompressor
	store      imagestore.Uploader
	publisher  broker.Publisher
	folder     string
}

func NewImagePipeline(compressor ImageCompressor, store imagestore.Uploader, publisher broker.Publisher,
	folder string,
) *ImagePipeline {
	return &ImagePipeline{
		compressor: compressor,
		store:      store,
		publisher:  publisher,
		folder:     folder,
	}
}

func (p *ImagePipeline) Store(ctx context.Context, requestID string, blob *entity.UploadedBlob) (
	entity.StoredImage, error,
) {
	start := time.Now()

	outcome, err := p.compressor.Compress(ctx, blob.Data, blob.ContentType)
	if err != nil {
		logger.Warn("compression failed, uploading original", "request_id", requestID, "err", err)
		p.Emit(ctx, entity.PipelineEvent{
			RequestID: requestID,
			Stage:     entity.StageCompressionFailed,
			Kind:      string(apperror.CompressionFailure),
			Bytes:     blob.Size,
			Message:   err.Error(),
		})

		outcome = entity.CompressionOutcome{
			Data:        blob.Data,
			Size:        blob.Size,
			ContentType: blob.ContentType,
		}
	}

	filename := blob.Filename
	blob.Release()

	p.Emit(ctx, entity.PipelineEvent{
		RequestID: requestID,
		Stage:     entity.StageCompressed,
		Bytes:     outcome.Size,
		Escalated: outcome.Escalated,
		Duration:  time.Since(start).Seconds(),
	})

	start = time.Now()
	stored, err := p.store.Upload(ctx, entity.ImageUpload{
		Data:        outcome.Data,
		ContentType: outcome.ContentType,
		Folder:      p.folder,
		PublicID:    PublicID(filename),
	})
	if err == nil && stored.URL == "" {
		err = errEmptyURL
	}
	if err != nil {
		storeErr := apperror.New(apperror.RemoteStoreFailure, "Upload failed: "+err.Error(), err)
		logger.Error("remote store upload failed", "request_id", requestID, "err", err)
		p.Emit(ctx, entity.PipelineEvent{
			RequestID: requestID,
			Stage:     entity.StageStoreError,
			Kind:      string(apperror.RemoteStoreFailure),
			Bytes:     outcome.Size,
			Message:   storeErr.Message,
			Duration:  time.Since(start).Seconds(),
		})

		return entity.StoredImage{}, storeErr
	}

	p.Emit(ctx, entity.PipelineEvent{
		RequestID: requestID,
		Stage:     entity.StageUploaded,
		Bytes:     stored.Bytes,
		URL:       stored.URL,
		Duration:  time.Since(start).Seconds(),
	})

	return stored, nil
}

// Emit hands the event to the publisher. Publishing never fails a request;
// it outlives request cancellation so failures are still recorded.
func (p *ImagePipeline) Emit(ctx context.Context, event entity.PipelineEvent) {
	if p.publisher == nil {
		return
	}

	event.At = time.Now().UTC()
	if err := p.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.Error("can't publish pipeline event", "stage", event.Stage, "err", err)
	}
}

// PublicID names an image after its original file, with a random suffix so
// uploads of the same name never overwrite each other.
func PublicID(filename string) string {
	id := uuid.NewString()

	slug := utils.Slugify(filename)
	if slug == "" {
		return id
	}

	return slug + "-" + id[:8]
}
