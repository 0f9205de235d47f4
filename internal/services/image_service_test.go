// internal/services/image_service_test.go
package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisollie/tienda-backend/internal/config"
	"github.com/parisollie/tienda-backend/internal/models"
)

func testImageConfig() *config.Config {
	return &config.Config{
		Images: config.ImageConfig{
			FetchTimeout: 2,
			MaxBytes:     1024 * 1024,
		},
	}
}

func TestImageFetchSuccess(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer server.Close()

	svc := NewImageService(testImageConfig())

	state, _, _ := svc.Request(server.URL)
	assert.Equal(t, models.ImageStatePending, state)

	require.Eventually(t, func() bool {
		return svc.State(server.URL) == models.ImageStateLoaded
	}, 2*time.Second, 10*time.Millisecond)

	state, data, contentType := svc.Request(server.URL)
	assert.Equal(t, models.ImageStateLoaded, state)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestImageFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	svc := NewImageService(testImageConfig())
	svc.Request(server.URL)

	require.Eventually(t, func() bool {
		return svc.State(server.URL) == models.ImageStateFailed
	}, 2*time.Second, 10*time.Millisecond)

	// Failed stays failed; no retry.
	state, data, _ := svc.Request(server.URL)
	assert.Equal(t, models.ImageStateFailed, state)
	assert.Nil(t, data)
}

func TestImageFetchUnreachableHost(t *testing.T) {
	svc := NewImageService(testImageConfig())
	svc.Request("http://127.0.0.1:1/unreachable.jpg")

	require.Eventually(t, func() bool {
		return svc.State("http://127.0.0.1:1/unreachable.jpg") == models.ImageStateFailed
	}, 3*time.Second, 10*time.Millisecond)
}

func TestImageFailureIsPerURL(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0x01})
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	svc := NewImageService(testImageConfig())
	svc.Request(good.URL)
	svc.Request(bad.URL)

	// One card's failure never affects another card's rendering.
	require.Eventually(t, func() bool {
		return svc.State(good.URL) == models.ImageStateLoaded &&
			svc.State(bad.URL) == models.ImageStateFailed
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPlaceholderIsAValidPNG(t *testing.T) {
	svc := NewImageService(testImageConfig())

	placeholder := svc.Placeholder()
	require.NotEmpty(t, placeholder)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, placeholder[:4])
}

func TestStateWithoutRequestIsPending(t *testing.T) {
	svc := NewImageService(testImageConfig())

	assert.Equal(t, models.ImageStatePending, svc.State("https://example.com/never-requested.jpg"))
}
