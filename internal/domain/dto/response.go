package dto

import "designermonk/internal/domain/model"

type ProjectEnvelope struct {
	Success bool           `json:"success"`
	Project *model.Project `json:"project"`
}

type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
