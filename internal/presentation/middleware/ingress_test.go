package middleware

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designermonk/internal/application/ingress"
	"designermonk/internal/domain/entity"
	"designermonk/internal/presentation"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.PipelineEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event entity.PipelineEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func newFilter() *ingress.Filter {
	return ingress.NewFilter(ingress.Config{
		FieldName:    "image",
		MaxBytes:     1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
	})
}

func multipartBody(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Villa"))

	if field != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="villa.jpg"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

type captured struct {
	called bool
	values url.Values
	blob   *entity.UploadedBlob
}

func serve(t *testing.T, pub *recordingPublisher, req *http.Request) (*httptest.ResponseRecorder, *captured) {
	t.Helper()

	got := &captured{}
	e := echo.New()
	e.POST("/projects", func(c echo.Context) error {
		got.called = true
		got.values, _ = c.Get(presentation.KeyFormValues).(url.Values)
		got.blob, _ = c.Get(presentation.KeyUploadedBlob).(*entity.UploadedBlob)

		return c.NoContent(http.StatusNoContent)
	}, Ingress(newFilter(), pub, presentation.NewRenderer(false)))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, got
}

func TestIngressAccepts(t *testing.T) {
	pub := &recordingPublisher{}
	body, ct := multipartBody(t, "image", "image/jpeg", []byte("\xff\xd8\xff\xe0jpeg"))
	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set(echo.HeaderContentType, ct)

	rec, got := serve(t, pub, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, got.called)
	assert.Equal(t, "Villa", got.values.Get("title"))
	require.NotNil(t, got.blob)
	assert.Equal(t, "villa.jpg", got.blob.Filename)

	require.Len(t, pub.events, 1)
	assert.Equal(t, entity.StageFiltered, pub.events[0].Stage)
	assert.EqualValues(t, got.blob.Size, pub.events[0].Bytes)
	assert.NotEmpty(t, pub.events[0].RequestID)
}

func TestIngressRejects(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		contentType string
		code        string
	}{
		{"wrong field", "photo", "image/jpeg", "UnexpectedField"},
		{"not an image", "image", "application/pdf", "UnsupportedFormat"},
		{"gif", "image", "image/gif", "UnsupportedFormat"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pub := &recordingPublisher{}
			body, ct := multipartBody(t, tc.field, tc.contentType, []byte("data"))
			req := httptest.NewRequest(http.MethodPost, "/projects", body)
			req.Header.Set(echo.HeaderContentType, ct)

			rec, got := serve(t, pub, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tc.code+`"`)
			assert.False(t, got.called)

			require.Len(t, pub.events, 1)
			assert.Equal(t, entity.StageInvalid, pub.events[0].Stage)
			assert.Equal(t, tc.code, pub.events[0].Kind)
		})
	}
}

func TestIngressMissingBoundary(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader("x"))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data")

	rec, got := serve(t, &recordingPublisher{}, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MalformedRequest")
	assert.False(t, got.called)
}

func TestIngressSkipsOtherContentTypes(t *testing.T) {
	pub := &recordingPublisher{}
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(`{"title":"Villa"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec, got := serve(t, pub, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, got.called)
	assert.Nil(t, got.values)
	assert.Nil(t, got.blob)
	assert.Empty(t, pub.events)
}

func TestIngressNilPublisher(t *testing.T) {
	body, ct := multipartBody(t, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set(echo.HeaderContentType, ct)

	e := echo.New()
	called := false
	e.POST("/projects", func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	}, Ingress(newFilter(), nil, presentation.NewRenderer(false)))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
