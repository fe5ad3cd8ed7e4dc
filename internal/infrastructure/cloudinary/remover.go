package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Remover struct {
	cld *cloudinary.Cloudinary
	cfg *RemoverConfig
}

func NewRemover(cld *cloudinary.Cloudinary, cfg *RemoverConfig) *Remover {
	return &Remover{
		cld: cld,
		cfg: cfg,
	}
}

// Remove destroys the image and invalidates cached derivatives. An image
// that is already gone is not an error.
func (r *Remover) Remove(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	resp, err := r.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}

	if resp.Error.Message != "" {
		return errors.New(resp.Error.Message)
	}

	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: unexpected result %q", resp.Result)
	}

	return nil
}
