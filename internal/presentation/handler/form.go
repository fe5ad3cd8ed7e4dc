package handler

import (
	"mime"
	"net/url"

	"github.com/labstack/echo/v4"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/dto"
	"designermonk/internal/domain/entity"
	"designermonk/internal/presentation"
)

// requestForm returns the text fields and the optional image of a request.
// Multipart bodies were already consumed by the ingress middleware; JSON and
// urlencoded bodies are read here.
func requestForm(c echo.Context) (url.Values, *entity.UploadedBlob, error) {
	if values, ok := c.Get(presentation.KeyFormValues).(url.Values); ok {
		blob, _ := c.Get(presentation.KeyUploadedBlob).(*entity.UploadedBlob)

		return values, blob, nil
	}

	req := c.Request()
	if req.ContentLength == 0 {
		return url.Values{}, nil, nil
	}

	mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	if err != nil {
		return nil, nil, apperror.New(apperror.MalformedRequest, "missing or invalid Content-Type", err)
	}

	switch mediaType {
	case echo.MIMEApplicationJSON:
		var body map[string]any
		if err := c.Echo().JSONSerializer.Deserialize(c, &body); err != nil {
			return nil, nil, apperror.New(apperror.MalformedRequest, "malformed JSON body", err)
		}

		values, err := dto.ValuesFromJSON(body)

		return values, nil, err
	case echo.MIMEApplicationForm:
		values, err := c.FormParams()
		if err != nil {
			return nil, nil, apperror.New(apperror.MalformedRequest, "malformed form body", err)
		}

		return values, nil, nil
	default:
		return nil, nil, apperror.New(apperror.MalformedRequest, "unsupported Content-Type "+mediaType, nil)
	}
}
