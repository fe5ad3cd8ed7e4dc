package commands

import (
	"context"

	"designermonk/config"
	"designermonk/internal/domain/repository/imagestore"
	"designermonk/internal/infrastructure/cloudinary"
	"designermonk/internal/infrastructure/minio"
	"designermonk/pkg/logger"
)

func newImageStore(ctx context.Context, cfg *config.Config) (imagestore.Uploader, imagestore.Remover, error) {
	if cfg.ImageStore.Provider == config.ProviderMinIO {
		client, err := minio.New(&cfg.MinIOClient)
		if err != nil {
			return nil, nil, err
		}

		if err := client.EnsureBucket(ctx, cfg.MinIOUploader.Bucket); err != nil {
			return nil, nil, err
		}

		if cfg.CloudinaryUploader.Transform.Enabled {
			logger.Warn("minio applies no provider transforms, only local compression is used")
		}

		return minio.NewUploader(client.MinioClient, &cfg.MinIOUploader),
			minio.NewRemover(client.MinioClient, &cfg.MinIORemover), nil
	}

	client, err := cloudinary.New(&cfg.CloudinaryClient)
	if err != nil {
		return nil, nil, err
	}

	return cloudinary.NewUploader(client.Cloudinary, &cfg.CloudinaryUploader),
		cloudinary.NewRemover(client.Cloudinary, &cfg.CloudinaryRemover), nil
}
