package cloudinary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		baseURL:      serverURL,
		cloudName:    "decorcloud",
		uploadPreset: "decor_unsigned",
	}
}

func TestUploadImage(t *testing.T) {
	t.Run("success returns secure_url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/decorcloud/image/upload", r.URL.Path)

			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "decor_unsigned", r.FormValue("upload_preset"))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "portada.jpg", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"public_id": "abc123", "secure_url": "https://res.cloudinary.com/decorcloud/abc123.jpg"}`))
		}))
		defer server.Close()

		url, err := testClient(server.URL).UploadImage(context.Background(),
			"portada.jpg", strings.NewReader("imagen"), "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/decorcloud/abc123.jpg", url)
	})

	t.Run("non-2xx surfaces the hosting error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "Upload preset not found"}}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).UploadImage(context.Background(),
			"portada.jpg", strings.NewReader("imagen"), "image/jpeg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Upload preset not found")
	})

	t.Run("2xx without secure_url is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"public_id": "abc123"}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).UploadImage(context.Background(),
			"portada.jpg", strings.NewReader("imagen"), "image/jpeg")
		assert.Error(t, err)
	})
}
