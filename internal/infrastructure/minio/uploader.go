package minio

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	_ "golang.org/x/image/webp"

	"designermonk/internal/domain/entity"
	"designermonk/pkg/logger"
	"designermonk/pkg/utils"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         config,
	}
}

// Upload writes the buffer as a single object named <folder>/<publicID><ext>.
func (u *Uploader) Upload(ctx context.Context, upload entity.ImageUpload) (entity.StoredImage, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	ext := utils.GetExtensionFromMimeType(upload.ContentType)
	key := path.Join(upload.Folder, upload.PublicID+ext)

	sum := sha256.Sum256(upload.Data)

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key, bytes.NewReader(upload.Data), int64(len(upload.Data)),
		minio.PutObjectOptions{
			ContentType:  upload.ContentType,
			UserMetadata: map[string]string{"sha256": hex.EncodeToString(sum[:])},
		})
	if err != nil {
		logger.Error("failed to put object", "key", key, "err", err)

		return entity.StoredImage{}, fmt.Errorf("put object: %w", err)
	}

	stored := entity.StoredImage{
		URL:      u.objectURL(key),
		PublicID: key,
		Provider: providerName,
		Format:   strings.TrimPrefix(ext, "."),
		Bytes:    info.Size,
	}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(upload.Data)); err == nil {
		stored.Width, stored.Height = cfg.Width, cfg.Height
	}

	return stored, nil
}

func (u *Uploader) objectURL(key string) string {
	return strings.TrimRight(u.cfg.PublicURL, "/") + "/" + u.cfg.Bucket + "/" + key
}
