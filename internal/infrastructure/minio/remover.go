package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"designermonk/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Remove deletes the object whose key is publicID.
func (r *Remover) Remove(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err := r.minioClient.RemoveObject(ctx, r.cfg.Bucket, publicID, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to remove object", "key", publicID, "err", err)

		return err
	}

	return nil
}
