package entity

// ImageUpload is what the pipeline hands to a remote image store.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Folder      string
	PublicID    string
}

// StoredImage references an image persisted by a remote image store.
type StoredImage struct {
	URL      string `json:"url"      bson:"url"`
	PublicID string `json:"publicId" bson:"public_id"`
	Provider string `json:"provider" bson:"provider"`
	Format   string `json:"format"   bson:"format"`
	Width    int    `json:"width"    bson:"width"`
	Height   int    `json:"height"   bson:"height"`
	Bytes    int64  `json:"bytes"    bson:"bytes"`
}
