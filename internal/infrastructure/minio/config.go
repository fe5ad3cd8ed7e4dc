package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
}

type UploaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
	// PublicURL is the externally reachable base of the endpoint, e.g.
	// https://media.example.com. Image URLs are PublicURL/bucket/key.
	PublicURL string `yaml:"public_url"`
}

type RemoverConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}
