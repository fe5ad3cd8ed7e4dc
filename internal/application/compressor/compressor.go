// Package compressor shrinks uploaded images before they are sent to the
// remote image store. It decodes JPEG, PNG and WebP and always emits JPEG.
package compressor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register decoder

	_ "golang.org/x/image/webp" // register decoder
	"golang.org/x/sync/semaphore"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/entity"
)

const outputType = "image/jpeg"

type Compressor struct {
	cfg  Config
	pool *semaphore.Weighted
}

func New(cfg Config) *Compressor {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	if cfg.MaxInputPixels <= 0 {
		cfg.MaxInputPixels = DefaultMaxInputPixels
	}

	return &Compressor{
		cfg:  cfg,
		pool: semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// Compress runs the primary pass and, when its output is still above the
// escalation threshold, one more aggressive pass from the same decoded
// source. At most two encodes happen per call.
//
// Every error carries apperror.CompressionFailure; callers are expected to
// fall back to the original bytes.
func (c *Compressor) Compress(ctx context.Context, data []byte, contentType string) (
	outcome entity.CompressionOutcome, err error,
) {
	if !c.cfg.Enabled {
		return entity.CompressionOutcome{
			Data:        data,
			Size:        int64(len(data)),
			ContentType: contentType,
		}, nil
	}

	if err := c.pool.Acquire(ctx, 1); err != nil {
		return entity.CompressionOutcome{}, apperror.New(apperror.CompressionFailure,
			"no compression slot available", err)
	}
	defer c.pool.Release(1)

	defer func() {
		if r := recover(); r != nil {
			outcome = entity.CompressionOutcome{}
			err = apperror.New(apperror.CompressionFailure,
				fmt.Sprintf("compression panicked: %v", r), nil)
		}
	}()

	if err := c.checkDimensions(data); err != nil {
		return entity.CompressionOutcome{}, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return entity.CompressionOutcome{}, apperror.New(apperror.CompressionFailure,
			fmt.Sprintf("decode image: %v", err), err)
	}

	primary, err := encode(src, c.cfg.PrimaryBound, c.cfg.PrimaryQuality)
	if err != nil {
		return entity.CompressionOutcome{}, err
	}

	threshold := c.cfg.EscalationThresholdBytes
	if threshold <= 0 || primary.Size <= threshold {
		return primary, nil
	}

	if err := ctx.Err(); err != nil {
		return primary, nil //nolint
	}

	escalated, err := encode(src, c.cfg.EscalationBound, c.cfg.EscalationQuality)
	if err != nil || escalated.Size > primary.Size {
		return primary, nil //nolint
	}
	escalated.Escalated = true

	return escalated, nil
}

// checkDimensions reads only the image header, so oversized sources are
// refused before any pixel buffer is allocated.
func (c *Compressor) checkDimensions(data []byte) error {
	hdr, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return apperror.New(apperror.CompressionFailure,
			fmt.Sprintf("decode image header: %v", err), err)
	}

	if hdr.Width <= 0 || hdr.Height <= 0 {
		return apperror.New(apperror.CompressionFailure,
			fmt.Sprintf("invalid image dimensions %dx%d", hdr.Width, hdr.Height), nil)
	}

	if int64(hdr.Width)*int64(hdr.Height) > c.cfg.MaxInputPixels {
		return apperror.New(apperror.CompressionFailure,
			fmt.Sprintf("image %dx%d exceeds %d pixels", hdr.Width, hdr.Height, c.cfg.MaxInputPixels), nil)
	}

	return nil
}

func encode(src image.Image, bound Bound, quality int) (entity.CompressionOutcome, error) {
	b := src.Bounds()
	w, h := fit(b.Dx(), b.Dy(), bound)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flatten(src, w, h), &jpeg.Options{Quality: quality}); err != nil {
		return entity.CompressionOutcome{}, apperror.New(apperror.CompressionFailure,
			fmt.Sprintf("encode jpeg: %v", err), err)
	}

	return entity.CompressionOutcome{
		Data:        buf.Bytes(),
		Size:        int64(buf.Len()),
		ContentType: outputType,
		Width:       w,
		Height:      h,
		Compressed:  true,
	}, nil
}
