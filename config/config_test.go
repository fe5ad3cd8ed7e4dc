package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("BROKER_URI", "redis://localhost:6379")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
}

func TestLoadfromFile(t *testing.T) {
	setSecrets(t)

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, ":5000", cfg.HTTP.Address)
	assert.Equal(t, "image", cfg.Ingress.FieldName)
	assert.EqualValues(t, 50<<20, cfg.Ingress.MaxBytes)
	assert.Equal(t, 1920, cfg.Compressor.PrimaryBound.Width)
	assert.EqualValues(t, 9<<20, cfg.Compressor.EscalationThresholdBytes)
	assert.EqualValues(t, 16383*16383, cfg.Compressor.MaxInputPixels)
	assert.Equal(t, ProviderCloudinary, cfg.ImageStore.Provider)
	assert.Equal(t, "designer-monk", cfg.ImageStore.Folder)
	assert.Equal(t, "c_limit,h_1080,w_1920/q_auto:good", cfg.CloudinaryUploader.Transform.Incoming())
	assert.Equal(t, "demo", cfg.CloudinaryClient.CloudName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DBConfig.URI)
	assert.Equal(t, "redis://localhost:6379", cfg.BrokerConfig.URI)
}

func TestLoadErrors(t *testing.T) {
	setSecrets(t)

	_, err := Load("./missing.yml")
	assert.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("http: [unclosed"), 0o600))
	_, err = Load(broken)
	assert.Error(t, err)

	t.Setenv("CLOUDINARY_API_SECRET", "")
	_, err = Load("./config.yml")
	assert.ErrorContains(t, err, "CLOUDINARY_API_SECRET")
}

func TestBasicCheck(t *testing.T) {
	setSecrets(t)

	valid, err := Load("./config.yml")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"no address", func(c *Config) { c.HTTP.Address = "" }, "http.address"},
		{"no database", func(c *Config) { c.DBConfig.URI = "" }, "DATABASE_URI"},
		{"no field name", func(c *Config) { c.Ingress.FieldName = "" }, "field_name"},
		{"zero max bytes", func(c *Config) { c.Ingress.MaxBytes = 0 }, "max_bytes"},
		{"non image type", func(c *Config) { c.Ingress.AllowedTypes = []string{"text/plain"} }, "not an image type"},
		{"body limit below max bytes", func(c *Config) { c.HTTP.BodyLimit = "10M" }, "must exceed"},
		{"bad body limit", func(c *Config) { c.HTTP.BodyLimit = "lots" }, "body_limit"},
		{"quality out of range", func(c *Config) { c.Compressor.PrimaryQuality = 101 }, "primary_quality"},
		{"zero escalation bound", func(c *Config) { c.Compressor.EscalationBound.Width = 0 }, "escalation_bound"},
		{"escalation disabled ignores its bound", func(c *Config) {
			c.Compressor.EscalationThresholdBytes = 0
			c.Compressor.EscalationBound.Width = 0
		}, ""},
		{"compressor disabled skips checks", func(c *Config) {
			c.Compressor.Enabled = false
			c.Compressor.MaxConcurrent = 0
		}, ""},
		{"no workers", func(c *Config) { c.Compressor.MaxConcurrent = 0 }, "max_concurrent"},
		{"no pixel limit", func(c *Config) { c.Compressor.MaxInputPixels = 0 }, "max_input_pixels"},
		{"no query timeout", func(c *Config) { c.DBConfig.QueryTimeout = 0 }, "query_timeout_in_ms"},
		{"no publish timeout", func(c *Config) { c.PublisherConfig.Timeout = 0 }, "publisher_config.timeout_in_ms"},
		{"publish timeout unused without broker", func(c *Config) {
			c.BrokerConfig.URI = ""
			c.PublisherConfig.Timeout = 0
		}, ""},
		{"no cloudinary upload timeout", func(c *Config) { c.CloudinaryUploader.Timeout = 0 }, "cloudinary_uploader.timeout_in_ms"},
		{"no cloudinary remove timeout", func(c *Config) { c.CloudinaryRemover.Timeout = 0 }, "cloudinary_remover.timeout_in_ms"},
		{"no minio upload timeout", func(c *Config) {
			c.ImageStore.Provider = ProviderMinIO
			c.MinIOUploader.Timeout = 0
		}, "minio_uploader.timeout_in_ms"},
		{"unknown provider", func(c *Config) { c.ImageStore.Provider = "s3" }, "image_store.provider"},
		{"minio without public url", func(c *Config) {
			c.ImageStore.Provider = ProviderMinIO
			c.MinIOUploader.PublicURL = ""
		}, "public_url"},
		{"minio", func(c *Config) { c.ImageStore.Provider = ProviderMinIO }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *valid
			cfg.Ingress.AllowedTypes = append([]string(nil), valid.Ingress.AllowedTypes...)
			tc.mutate(&cfg)

			err := cfg.basicCheck()
			if tc.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.errMsg)
			}
		})
	}
}
