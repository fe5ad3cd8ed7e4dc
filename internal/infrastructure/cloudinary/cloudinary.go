package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"

	"designermonk/pkg/logger"
)

const providerName = "cloudinary"

type Client struct {
	Cloudinary *cloudinary.Cloudinary
}

// New builds a client from the three account secrets. The client is shared
// by all requests and never mutated after this call.
func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("configuring cloudinary", "cloud", cfg.CloudName)

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}

	cld.Config.URL.Secure = true
	if cfg.UploadPrefix != "" {
		cld.Config.API.UploadPrefix = cfg.UploadPrefix
	}

	return &Client{
		Cloudinary: cld,
	}, nil
}
