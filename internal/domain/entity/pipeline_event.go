package entity

import "time"

type Stage string

const (
	StageFiltered          Stage = "Filtered"
	StageInvalid           Stage = "Invalid"
	StageCompressed        Stage = "Compressed"
	StageCompressionFailed Stage = "CompressionFailed"
	StageUploaded          Stage = "Uploaded"
	StageStoreError        Stage = "StoreError"
	StageCommitted         Stage = "Committed"
	StagePersistenceFailed Stage = "PersistenceFailed"
)

// PipelineEvent is emitted on every state transition of an image ingestion.
type PipelineEvent struct {
	RequestID string    `json:"requestId"`
	Stage     Stage     `json:"stage"`
	Kind      string    `json:"kind,omitempty"`
	Bytes     int64     `json:"bytes,omitempty"`
	Escalated bool      `json:"escalated,omitempty"`
	URL       string    `json:"url,omitempty"`
	ProjectID string    `json:"projectId,omitempty"`
	Message   string    `json:"message,omitempty"`
	Duration  float64   `json:"durationSeconds,omitempty"`
	At        time.Time `json:"at"`
}

// Failed reports whether the event marks a terminal or recovered failure.
func (e PipelineEvent) Failed() bool {
	switch e.Stage {
	case StageInvalid, StageCompressionFailed, StageStoreError, StagePersistenceFailed:
		return true
	default:
		return false
	}
}
