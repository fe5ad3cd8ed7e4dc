package compressor

type Bound struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Enabled        bool  `yaml:"enabled"`
	PrimaryBound   Bound `yaml:"primary_bound"`
	PrimaryQuality int   `yaml:"primary_quality"`
	// EscalationThresholdBytes of zero disables the second pass.
	EscalationThresholdBytes int64 `yaml:"escalation_threshold_bytes"`
	EscalationBound          Bound `yaml:"escalation_bound"`
	EscalationQuality        int   `yaml:"escalation_quality"`
	MaxConcurrent            int64 `yaml:"max_concurrent"`
	// MaxInputPixels rejects sources whose header claims more pixels.
	MaxInputPixels int64 `yaml:"max_input_pixels"`
}

// DefaultMaxInputPixels matches a 16383x16383 source.
const DefaultMaxInputPixels = 16383 * 16383

