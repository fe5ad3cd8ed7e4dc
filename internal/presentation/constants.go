package presentation

const (
	IDParam = "id"

	// echo.Context keys set by the ingress middleware.
	KeyFormValues   = "form_values"
	KeyUploadedBlob = "uploaded_blob"
)
