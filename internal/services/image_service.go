// internal/services/image_service.go
package services

import (
	"encoding/base64"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/parisollie/tienda-backend/internal/config"
	"github.com/parisollie/tienda-backend/internal/models"
)

// placeholderPNG is a 1x1 neutral pixel served for any card whose image is
// still loading or failed to load.
var placeholderPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYAAAAAYA" +
		"AjCB0C8AAAAASUVORK5CYII=")

// ImageService fetches product images from their external URIs. Each URI is
// fetched at most once, fire-and-forget, and sits in exactly one of three
// states: pending, loaded, or failed. A failure never propagates and never
// retries; callers substitute the placeholder.
type ImageService struct {
	client   *http.Client
	maxBytes int64

	mu      sync.Mutex
	entries map[string]*imageEntry
}

type imageEntry struct {
	state       models.ImageState
	data        []byte
	contentType string
}

func NewImageService(cfg *config.Config) *ImageService {
	return &ImageService{
		client: &http.Client{
			Timeout: time.Duration(cfg.Images.FetchTimeout) * time.Second,
		},
		maxBytes: cfg.Images.MaxBytes,
		entries:  make(map[string]*imageEntry),
	}
}

// Request returns the current state for the URI, starting the fetch on
// first sight. Data and content type are only meaningful in the loaded
// state; otherwise callers should serve Placeholder().
func (s *ImageService) Request(url string) (models.ImageState, []byte, string) {
	s.mu.Lock()
	entry, exists := s.entries[url]
	if !exists {
		entry = &imageEntry{state: models.ImageStatePending}
		s.entries[url] = entry
		go s.fetch(url)
	}
	state, data, contentType := entry.state, entry.data, entry.contentType
	s.mu.Unlock()

	return state, data, contentType
}

// State reports the fetch state without starting a fetch.
func (s *ImageService) State(url string) models.ImageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, exists := s.entries[url]; exists {
		return entry.state
	}
	return models.ImageStatePending
}

func (s *ImageService) Placeholder() []byte {
	return placeholderPNG
}

func (s *ImageService) fetch(url string) {
	resp, err := s.client.Get(url)
	if err != nil {
		s.fail(url, err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.fail(url, resp.Status)
		return
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes))
	if err != nil {
		s.fail(url, err.Error())
		return
	}

	s.mu.Lock()
	if entry, exists := s.entries[url]; exists {
		entry.state = models.ImageStateLoaded
		entry.data = data
		entry.contentType = resp.Header.Get("Content-Type")
	}
	s.mu.Unlock()
}

func (s *ImageService) fail(url, reason string) {
	logrus.WithFields(logrus.Fields{
		"url":    url,
		"reason": reason,
	}).Warn("Image fetch failed")

	s.mu.Lock()
	if entry, exists := s.entries[url]; exists {
		entry.state = models.ImageStateFailed
	}
	s.mu.Unlock()
}
