package middleware

import (
	"context"
	"mime"
	"mime/multipart"
	"time"

	"github.com/labstack/echo/v4"

	"designermonk/internal/application/ingress"
	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/repository/broker"
	"designermonk/internal/presentation"
	"designermonk/pkg/logger"
)

// Ingress runs the upload filter over multipart requests before the handler.
// Rejected requests are answered here, so no compression or provider call is
// ever made for them. Other content types pass through untouched.
func Ingress(filter *ingress.Filter, publisher broker.Publisher, render *presentation.Renderer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mediaType, params, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
			if err != nil || mediaType != echo.MIMEMultipartForm {
				return next(c)
			}

			requestID := presentation.RequestID(c)

			boundary := params["boundary"]
			if boundary == "" {
				return reject(c, render, publisher, requestID,
					apperror.New(apperror.MalformedRequest, "missing multipart boundary", nil))
			}

			result, err := filter.Filter(multipart.NewReader(c.Request().Body, boundary))
			if err != nil {
				return reject(c, render, publisher, requestID, err)
			}

			event := entity.PipelineEvent{
				RequestID: requestID,
				Stage:     entity.StageFiltered,
			}
			if result.Blob != nil {
				event.Bytes = result.Blob.Size
			}
			emit(c.Request().Context(), publisher, event)

			c.Set(presentation.KeyFormValues, result.Values)
			c.Set(presentation.KeyUploadedBlob, result.Blob)

			return next(c)
		}
	}
}

func reject(c echo.Context, render *presentation.Renderer, publisher broker.Publisher, requestID string,
	err error,
) error {
	logger.Debug("upload rejected", "request_id", requestID, "err", err)

	emit(c.Request().Context(), publisher, entity.PipelineEvent{
		RequestID: requestID,
		Stage:     entity.StageInvalid,
		Kind:      string(apperror.KindOf(err)),
		Message:   err.Error(),
	})

	return render.Error(c, err)
}

func emit(ctx context.Context, publisher broker.Publisher, event entity.PipelineEvent) {
	if publisher == nil {
		return
	}

	event.At = time.Now().UTC()
	if err := publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.Error("can't publish pipeline event", "stage", event.Stage, "err", err)
	}
}
