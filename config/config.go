package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"

	"designermonk/internal/application/compressor"
	"designermonk/internal/application/ingress"
	"designermonk/internal/infrastructure/broker"
	"designermonk/internal/infrastructure/cloudinary"
	"designermonk/internal/infrastructure/database"
	"designermonk/internal/infrastructure/minio"
	"designermonk/pkg/logger"
)

const (
	ProviderCloudinary = "cloudinary"
	ProviderMinIO      = "minio"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment        string                    `yaml:"environment"`
	HTTP               HTTPConfig                `yaml:"http"`
	Ingress            ingress.Config            `yaml:"ingress"`
	Compressor         compressor.Config         `yaml:"compressor"`
	ImageStore         ImageStoreConfig          `yaml:"image_store"`
	CloudinaryClient   cloudinary.ClientConfig   `yaml:"cloudinary_client"`
	CloudinaryUploader cloudinary.UploaderConfig `yaml:"cloudinary_uploader"`
	CloudinaryRemover  cloudinary.RemoverConfig  `yaml:"cloudinary_remover"`
	MinIOClient        minio.ClientConfig        `yaml:"minio_client"`
	MinIOUploader      minio.UploaderConfig      `yaml:"minio_uploader"`
	MinIORemover       minio.RemoverConfig       `yaml:"minio_remover"`
	DBConfig           database.Config           `yaml:"db_config"`
	BrokerConfig       broker.Config             `yaml:"redis_broker_config"`
	PublisherConfig    broker.PublisherConfig    `yaml:"publisher_config"`
	Logger             logger.Config             `yaml:"logger"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
	// BodyLimit uses echo's size syntax ("60M") and must exceed ingress.max_bytes
	// so oversize images are reported by the filter.
	BodyLimit         string   `yaml:"body_limit"`
	RateLimit         float64  `yaml:"rate_limit"`
	AllowOrigins      []string `yaml:"allow_origins"`
	EnvelopeResponses bool     `yaml:"envelope_responses"`
	ShutdownTimeout   int64    `yaml:"shutdown_timeout_in_ms"`
}

type ImageStoreConfig struct {
	Provider string `yaml:"provider"`
	Folder   string `yaml:"folder"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.CloudinaryClient.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	config.CloudinaryClient.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	config.CloudinaryClient.APISecret = os.Getenv("CLOUDINARY_API_SECRET")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address is required")
	}

	if c.DBConfig.URI == "" {
		return errors.New("DATABASE_URI is required")
	}

	if err := checkTimeout("db_config.connection_timeout_in_ms", c.DBConfig.ConnectionTimeout); err != nil {
		return err
	}

	if err := checkTimeout("db_config.query_timeout_in_ms", c.DBConfig.QueryTimeout); err != nil {
		return err
	}

	if c.BrokerConfig.URI != "" {
		if err := checkTimeout("publisher_config.timeout_in_ms", int64(c.PublisherConfig.Timeout)); err != nil {
			return err
		}
	}

	if err := c.checkIngress(); err != nil {
		return err
	}

	if err := c.checkCompressor(); err != nil {
		return err
	}

	return c.checkImageStore()
}

func (c *Config) checkIngress() error {
	if c.Ingress.FieldName == "" {
		return errors.New("ingress.field_name is required")
	}

	if c.Ingress.MaxBytes <= 0 {
		return errors.New("ingress.max_bytes must be positive")
	}

	if len(c.Ingress.AllowedTypes) == 0 {
		return errors.New("ingress.allowed_types is empty")
	}

	for _, t := range c.Ingress.AllowedTypes {
		if !strings.HasPrefix(t, "image/") {
			return fmt.Errorf("ingress.allowed_types: %q is not an image type", t)
		}
	}

	if c.HTTP.BodyLimit != "" {
		limit, err := bytes.Parse(c.HTTP.BodyLimit)
		if err != nil {
			return fmt.Errorf("http.body_limit: %w", err)
		}

		if limit <= c.Ingress.MaxBytes {
			return fmt.Errorf("http.body_limit (%s) must exceed ingress.max_bytes (%d)",
				c.HTTP.BodyLimit, c.Ingress.MaxBytes)
		}
	}

	return nil
}

func (c *Config) checkCompressor() error {
	cc := c.Compressor
	if !cc.Enabled {
		return nil
	}

	if err := checkPass("primary", cc.PrimaryBound, cc.PrimaryQuality); err != nil {
		return err
	}

	if cc.EscalationThresholdBytes < 0 {
		return errors.New("compressor.escalation_threshold_bytes must not be negative")
	}

	if cc.EscalationThresholdBytes > 0 {
		if err := checkPass("escalation", cc.EscalationBound, cc.EscalationQuality); err != nil {
			return err
		}
	}

	if cc.MaxConcurrent <= 0 {
		return errors.New("compressor.max_concurrent must be positive")
	}

	if cc.MaxInputPixels <= 0 {
		return errors.New("compressor.max_input_pixels must be positive")
	}

	return nil
}

func checkPass(name string, bound compressor.Bound, quality int) error {
	if bound.Width <= 0 || bound.Height <= 0 {
		return fmt.Errorf("compressor.%s_bound must be positive", name)
	}

	if quality < 1 || quality > 100 {
		return fmt.Errorf("compressor.%s_quality must be within 1..100", name)
	}

	return nil
}

func (c *Config) checkImageStore() error {
	switch c.ImageStore.Provider {
	case ProviderCloudinary:
		cc := c.CloudinaryClient
		if cc.CloudName == "" || cc.APIKey == "" || cc.APISecret == "" {
			return errors.New("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required")
		}

		if err := checkTimeout("cloudinary_uploader.timeout_in_ms", c.CloudinaryUploader.Timeout); err != nil {
			return err
		}

		return checkTimeout("cloudinary_remover.timeout_in_ms", c.CloudinaryRemover.Timeout)
	case ProviderMinIO:
		if c.MinIOUploader.Bucket == "" || c.MinIOUploader.PublicURL == "" {
			return errors.New("minio_uploader.bucket and minio_uploader.public_url are required")
		}

		if err := checkTimeout("minio_uploader.timeout_in_ms", c.MinIOUploader.Timeout); err != nil {
			return err
		}

		return checkTimeout("minio_remover.timeout_in_ms", c.MinIORemover.Timeout)
	default:
		return fmt.Errorf("image_store.provider must be %q or %q, got %q",
			ProviderCloudinary, ProviderMinIO, c.ImageStore.Provider)
	}
}

func checkTimeout(name string, ms int64) error {
	if ms <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}

	return nil
}
