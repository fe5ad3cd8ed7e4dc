package entity

type CompressionOutcome struct {
	Data        []byte
	Size        int64
	ContentType string
	Width       int
	Height      int
	// Compressed is false when the original bytes were passed through.
	Compressed bool
	Escalated  bool
}
