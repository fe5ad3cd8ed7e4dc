package entity

// UploadedBlob is a single file part buffered in memory by the ingress
// filter. It lives for one request only.
type UploadedBlob struct {
	FieldName    string
	Filename     string
	ContentType  string
	DetectedType string
	Size         int64
	Data         []byte
}

// Release drops the buffer so it can be collected before the request ends.
func (b *UploadedBlob) Release() {
	if b == nil {
		return
	}

	b.Data = nil
}
