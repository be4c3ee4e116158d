// Package memory provides process-memory repositories for URLs and users.
// Every value returned is a copy; callers never share state with the store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

type URLRepository struct {
	mu   sync.RWMutex
	urls map[string]*entity.URL
	now  func() time.Time
}

func NewURLRepository() *URLRepository {
	return &URLRepository{
		urls: make(map[string]*entity.URL),
		now:  time.Now,
	}
}

func (r *URLRepository) Save(_ context.Context, url *entity.URL) error {
	const op = "adapter.repository.memory.URLRepository.Save"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.urls[url.ShortCode]; ok {
		return fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
	}

	r.urls[url.ShortCode] = url.Clone()

	return nil
}

func (r *URLRepository) RetrieveByShortCode(_ context.Context, shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.RetrieveByShortCode"

	r.mu.RLock()
	defer r.mu.RUnlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	return url.Clone(), nil
}

// RetrieveByOwner returns copies of the URLs owned by ownerID keyed by short code.
// The map is empty, never nil, for an unknown or empty ownerID.
func (r *URLRepository) RetrieveByOwner(_ context.Context, ownerID string) (map[string]*entity.URL, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make(map[string]*entity.URL)
	if ownerID == "" {
		return urls, nil
	}

	for shortCode, url := range r.urls {
		if url.OwnerID == ownerID {
			urls[shortCode] = url.Clone()
		}
	}

	return urls, nil
}

func (r *URLRepository) Update(_ context.Context, shortCode, longURL string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Update"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	url.LongURL = longURL
	url.UpdatedAt = r.now()

	return url.Clone(), nil
}

func (r *URLRepository) Remove(_ context.Context, shortCode string) error {
	const op = "adapter.repository.memory.URLRepository.Remove"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.urls[shortCode]; !ok {
		return fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	delete(r.urls, shortCode)

	return nil
}

// RecordVisit adds the visitor to the URL's visitor set if new and appends the
// visit to its log, as one step. Nothing changes if the short code is unknown.
func (r *URLRepository) RecordVisit(_ context.Context, shortCode string, visit entity.Visit) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.RecordVisit"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	url.AddVisit(visit)

	return url.Clone(), nil
}
