package cloudinary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designermonk/internal/domain/entity"
)

type stubAPI struct {
	uploads  atomic.Int32
	destroys atomic.Int32
	form     map[string]string
	fail     bool
}

func (s *stubAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if s.fail {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key"}}`))

		return
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/image/upload"):
		s.uploads.Add(1)
		_ = r.ParseMultipartForm(1 << 20)
		s.form = map[string]string{
			"folder":         r.FormValue("folder"),
			"public_id":      r.FormValue("public_id"),
			"transformation": r.FormValue("transformation"),
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"public_id":  r.FormValue("folder") + "/" + r.FormValue("public_id"),
			"secure_url": "https://res.cloudinary.com/demo/image/upload/v1/designer-monk/villa-1a2b3c4d.jpg",
			"format":     "jpg",
			"width":      1440,
			"height":     1080,
			"bytes":      123456,
		})
	case strings.HasSuffix(r.URL.Path, "/image/destroy"):
		s.destroys.Add(1)
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestClient(t *testing.T, stub *stubAPI) *Client {
	t.Helper()

	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	c, err := New(&ClientConfig{
		CloudName:    "demo",
		APIKey:       "key",
		APISecret:    "secret",
		UploadPrefix: srv.URL,
	})
	require.NoError(t, err)

	return c
}

func transform() TransformConfig {
	return TransformConfig{
		Enabled:    true,
		Width:      1920,
		Height:     1080,
		Crop:       "limit",
		Quality:    "auto:good",
		AutoFormat: true,
	}
}

func TestIncomingTransform(t *testing.T) {
	assert.Equal(t, "c_limit,h_1080,w_1920/q_auto:good", transform().Incoming())
	assert.Equal(t, "", TransformConfig{Width: 1920, Height: 1080}.Incoming())
	assert.Equal(t, "q_80", TransformConfig{Enabled: true, Quality: "80"}.Incoming())
}

func TestWithDeliveryTransform(t *testing.T) {
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/f_auto/v1/a.jpg",
		withDeliveryTransform("https://res.cloudinary.com/demo/image/upload/v1/a.jpg", "f_auto"))
	assert.Equal(t, "https://cdn.example.com/a.jpg",
		withDeliveryTransform("https://cdn.example.com/a.jpg", "f_auto"))
}

func TestUpload(t *testing.T) {
	stub := &stubAPI{}
	c := newTestClient(t, stub)
	u := NewUploader(c.Cloudinary, &UploaderConfig{Timeout: 5000, Transform: transform()})

	stored, err := u.Upload(context.Background(), entity.ImageUpload{
		Data:        []byte("\xff\xd8\xff\xe0 fake jpeg"),
		ContentType: "image/jpeg",
		Folder:      "designer-monk",
		PublicID:    "villa-1a2b3c4d",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, stub.uploads.Load())
	assert.Equal(t, "designer-monk", stub.form["folder"])
	assert.Equal(t, "villa-1a2b3c4d", stub.form["public_id"])
	assert.Equal(t, "c_limit,h_1080,w_1920/q_auto:good", stub.form["transformation"])

	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/f_auto/v1/designer-monk/villa-1a2b3c4d.jpg", stored.URL)
	assert.Equal(t, "designer-monk/villa-1a2b3c4d", stored.PublicID)
	assert.Equal(t, providerName, stored.Provider)
	assert.Equal(t, 1440, stored.Width)
	assert.Equal(t, 1080, stored.Height)
	assert.EqualValues(t, 123456, stored.Bytes)
}

func TestUploadWithoutTransform(t *testing.T) {
	stub := &stubAPI{}
	c := newTestClient(t, stub)
	u := NewUploader(c.Cloudinary, &UploaderConfig{Timeout: 5000})

	stored, err := u.Upload(context.Background(), entity.ImageUpload{
		Data:     []byte("data"),
		Folder:   "designer-monk",
		PublicID: "x",
	})
	require.NoError(t, err)

	assert.Empty(t, stub.form["transformation"])
	assert.NotContains(t, stored.URL, "f_auto")
}

func TestUploadProviderError(t *testing.T) {
	stub := &stubAPI{fail: true}
	c := newTestClient(t, stub)
	u := NewUploader(c.Cloudinary, &UploaderConfig{Timeout: 5000})

	stored, err := u.Upload(context.Background(), entity.ImageUpload{Data: []byte("data"), PublicID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
	assert.Empty(t, stored.URL)
}

func TestRemove(t *testing.T) {
	stub := &stubAPI{}
	c := newTestClient(t, stub)
	r := NewRemover(c.Cloudinary, &RemoverConfig{Timeout: 5000})

	require.NoError(t, r.Remove(context.Background(), "designer-monk/villa-1a2b3c4d"))
	assert.EqualValues(t, 1, stub.destroys.Load())

	failing := NewRemover(newTestClient(t, &stubAPI{fail: true}).Cloudinary, &RemoverConfig{Timeout: 5000})
	assert.Error(t, failing.Remove(context.Background(), "gone"))
}
