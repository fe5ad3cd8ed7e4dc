package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"designermonk/internal/domain/entity"
)

var allowedFormats = api.CldAPIArray{"jpg", "jpeg", "png", "webp"}

type Uploader struct {
	cld *cloudinary.Cloudinary
	cfg *UploaderConfig
}

func NewUploader(cld *cloudinary.Cloudinary, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		cld: cld,
		cfg: cfg,
	}
}

// Upload sends the buffer in a single request and waits for Cloudinary to
// answer. There is no retry; one failed attempt fails the upload.
func (u *Uploader) Upload(ctx context.Context, upload entity.ImageUpload) (entity.StoredImage, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	params := uploader.UploadParams{
		PublicID:       upload.PublicID,
		Folder:         upload.Folder,
		AllowedFormats: allowedFormats,
		Transformation: u.cfg.Transform.Incoming(),
	}

	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(upload.Data), params)
	if err != nil {
		return entity.StoredImage{}, fmt.Errorf("cloudinary upload: %w", err)
	}

	if resp.Error.Message != "" {
		return entity.StoredImage{}, errors.New(resp.Error.Message)
	}

	url := resp.SecureURL
	if u.cfg.Transform.Enabled && u.cfg.Transform.AutoFormat {
		url = withDeliveryTransform(url, "f_auto")
	}

	return entity.StoredImage{
		URL:      url,
		PublicID: resp.PublicID,
		Provider: providerName,
		Format:   resp.Format,
		Width:    resp.Width,
		Height:   resp.Height,
		Bytes:    int64(resp.Bytes),
	}, nil
}

// withDeliveryTransform inserts a delivery transformation right after the
// "/upload/" segment of a Cloudinary URL.
func withDeliveryTransform(url, transform string) string {
	const marker = "/upload/"

	i := strings.Index(url, marker)
	if i < 0 {
		return url
	}

	return url[:i+len(marker)] + transform + "/" + url[i+len(marker):]
}
