package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tbellembois/golinks/extract"
	"github.com/tbellembois/golinks/models"
	"github.com/tbellembois/golinks/types"
)

// BookmarkService fetches pages, extracts their title and keeps
// the resulting bookmarks in a Datastore.
type BookmarkService struct {
	db     models.Datastore
	client *http.Client
	// mu pairs each datastore call with its FlushErrors check.
	mu sync.Mutex
}

// NewBookmarkService returns a service over db. A zero timeout leaves
// fetches bounded by the request context only.
func NewBookmarkService(db models.Datastore, timeout time.Duration) *BookmarkService {
	return &BookmarkService{
		db:     db,
		client: &http.Client{Timeout: timeout},
	}
}

// ValidateURL checks that rawURL is an absolute http(s) URL with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return types.NewError(types.KindValidation, rawURL, errors.New("URL is empty"))
	}

	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return types.NewError(types.KindValidation, rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return types.NewError(types.KindValidation, rawURL, fmt.Errorf("unsupported scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return types.NewError(types.KindValidation, rawURL, errors.New("URL has no host"))
	}
	return nil
}

// AddBookmark fetches rawURL once, extracts the page title and saves
// the bookmark. Nothing is stored when any step fails.
func (s *BookmarkService) AddBookmark(ctx context.Context, rawURL string) (*types.Bookmark, error) {
	log.WithFields(log.Fields{
		"rawURL": rawURL,
	}).Debug("AddBookmark")

	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	body, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, types.NewError(types.KindNetwork, rawURL, err)
	}

	title, err := extract.Title(body)
	if err != nil {
		return nil, types.NewError(types.KindExtraction, rawURL, err)
	}

	bkm := &types.Bookmark{Title: title, URL: rawURL}
	if err := s.save(bkm); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"bkm": bkm,
	}).Debug("AddBookmark:saved")
	return bkm, nil
}

func (s *BookmarkService) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	log.WithFields(log.Fields{
		"status":      resp.StatusCode,
		"contentType": resp.Header.Get("Content-Type"),
	}).Debug("AddBookmark:fetch")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(data), nil
}

func (s *BookmarkService) save(bkm *types.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.db.SaveBookmark(bkm)
	if err := s.db.FlushErrors(); err != nil {
		return types.NewError(types.KindStorage, bkm.URL, err)
	}
	return nil
}

// ListBookmarks returns every stored bookmark, never nil.
func (s *BookmarkService) ListBookmarks() (types.Bookmarks, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bkms := s.db.GetBookmarks()
	if err := s.db.FlushErrors(); err != nil {
		return nil, types.NewError(types.KindStorage, "", err)
	}
	if bkms == nil {
		bkms = types.Bookmarks{}
	}
	return bkms, nil
}

// ClearAll removes every stored bookmark.
func (s *BookmarkService) ClearAll() error {
	log.Debug("ClearAll")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.db.ClearBookmarks()
	if err := s.db.FlushErrors(); err != nil {
		return types.NewError(types.KindStorage, "", err)
	}
	return nil
}
