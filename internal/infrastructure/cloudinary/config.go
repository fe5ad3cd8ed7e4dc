package cloudinary

import (
	"fmt"
	"strings"
)

type ClientConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	// UploadPrefix overrides the API host, e.g. for a local stub.
	UploadPrefix string `yaml:"upload_prefix"`
}

type UploaderConfig struct {
	Timeout   int64           `yaml:"timeout_in_ms"`
	Transform TransformConfig `yaml:"transform"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

// TransformConfig describes the normalization Cloudinary applies on its side.
// It is independent of local compression.
type TransformConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Crop       string `yaml:"crop"`
	Quality    string `yaml:"quality"`
	AutoFormat bool   `yaml:"auto_format"`
}

// Incoming renders the eager transformation applied to the stored original,
// e.g. "c_limit,h_1080,w_1920/q_auto:good".
func (t TransformConfig) Incoming() string {
	if !t.Enabled {
		return ""
	}

	steps := make([]string, 0, 2)
	if t.Width > 0 && t.Height > 0 {
		crop := t.Crop
		if crop == "" {
			crop = "limit"
		}
		steps = append(steps, fmt.Sprintf("c_%s,h_%d,w_%d", crop, t.Height, t.Width))
	}

	if t.Quality != "" {
		steps = append(steps, "q_"+t.Quality)
	}

	return strings.Join(steps, "/")
}
