package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vadimbarashkov/tinyapp/internal/authz"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating code")

const defaultMaxRetries = 5

type codeGenerator interface {
	Generate(length int) string
}

type urlRepository interface {
	Save(ctx context.Context, url *entity.URL) error
	RetrieveByShortCode(ctx context.Context, shortCode string) (*entity.URL, error)
	RetrieveByOwner(ctx context.Context, ownerID string) (map[string]*entity.URL, error)
	Update(ctx context.Context, shortCode, longURL string) (*entity.URL, error)
	Remove(ctx context.Context, shortCode string) error
	RecordVisit(ctx context.Context, shortCode string, visit entity.Visit) (*entity.URL, error)
}

// Resolution is the outcome of following a short code.
// VisitorID must be persisted by the caller when it differs from the one it passed in.
type Resolution struct {
	LongURL   string
	VisitorID string
}

type URLUseCase struct {
	shortCodeLength int
	visitorIDLength int
	maxRetries      int
	codeGen         codeGenerator
	urlRepo         urlRepository
	now             func() time.Time
}

type URLUseCaseOption func(*URLUseCase)

func WithShortCodeLength(n int) URLUseCaseOption {
	return func(uc *URLUseCase) {
		uc.shortCodeLength = n
	}
}

func WithVisitorIDLength(n int) URLUseCaseOption {
	return func(uc *URLUseCase) {
		uc.visitorIDLength = n
	}
}

func WithURLMaxRetries(n int) URLUseCaseOption {
	return func(uc *URLUseCase) {
		if n > 0 {
			uc.maxRetries = n
		}
	}
}

func NewURLUseCase(codeGen codeGenerator, urlRepo urlRepository, opts ...URLUseCaseOption) *URLUseCase {
	uc := &URLUseCase{
		shortCodeLength: 6,
		visitorIDLength: 6,
		maxRetries:      defaultMaxRetries,
		codeGen:         codeGen,
		urlRepo:         urlRepo,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

func (uc *URLUseCase) ShortenURL(ctx context.Context, userID, longURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	if err := authz.Authorize(authz.Create, nil, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if longURL == "" {
		return nil, fmt.Errorf("%s: empty long url: %w", op, entity.ErrInvalidInput)
	}

	for i := 0; i < uc.maxRetries; i++ {
		shortCode := uc.codeGen.Generate(uc.shortCodeLength)
		if shortCode == "" {
			return nil, fmt.Errorf("%s: failed to generate short code of length %d", op, uc.shortCodeLength)
		}

		url := entity.NewURL(shortCode, longURL, userID, uc.now())

		if err := uc.urlRepo.Save(ctx, url); err != nil {
			if errors.Is(err, entity.ErrShortCodeExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return url, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// retrieve loads the URL and authorizes action on it. A missing URL is handed to
// authz as nil so that the login check still comes first.
func (uc *URLUseCase) retrieve(ctx context.Context, action authz.Action, userID, shortCode string) (*entity.URL, error) {
	if userID == "" {
		return nil, entity.ErrMustLogin
	}

	url, err := uc.urlRepo.RetrieveByShortCode(ctx, shortCode)
	if err != nil && !errors.Is(err, entity.ErrURLNotFound) {
		return nil, err
	}

	if err := authz.Authorize(action, url, userID); err != nil {
		return nil, err
	}

	return url, nil
}

func (uc *URLUseCase) GetURL(ctx context.Context, userID, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetURL"

	url, err := uc.retrieve(ctx, authz.Read, userID, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) ListURLs(ctx context.Context, userID string) (map[string]*entity.URL, error) {
	const op = "usecase.URLUseCase.ListURLs"

	if err := authz.Authorize(authz.List, nil, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	urls, err := uc.urlRepo.RetrieveByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list urls: %w", op, err)
	}

	return urls, nil
}

func (uc *URLUseCase) ModifyURL(ctx context.Context, userID, shortCode, longURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ModifyURL"

	if _, err := uc.retrieve(ctx, authz.Update, userID, shortCode); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if longURL == "" {
		return nil, fmt.Errorf("%s: empty long url: %w", op, entity.ErrInvalidInput)
	}

	url, err := uc.urlRepo.Update(ctx, shortCode, longURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to modify url: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) DeleteURL(ctx context.Context, userID, shortCode string) error {
	const op = "usecase.URLUseCase.DeleteURL"

	if _, err := uc.retrieve(ctx, authz.Delete, userID, shortCode); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := uc.urlRepo.Remove(ctx, shortCode); err != nil {
		return fmt.Errorf("%s: failed to delete url: %w", op, err)
	}

	return nil
}

// ResolveShortCode follows shortCode on behalf of a visitor. An empty visitorID
// gets a freshly generated one. Every call appends to the visit log; only the
// first call for a visitor adds to the visitor set.
func (uc *URLUseCase) ResolveShortCode(ctx context.Context, shortCode, visitorID string) (*Resolution, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	if visitorID == "" {
		visitorID = uc.codeGen.Generate(uc.visitorIDLength)
		if visitorID == "" {
			return nil, fmt.Errorf("%s: failed to generate visitor id of length %d", op, uc.visitorIDLength)
		}
	}

	url, err := uc.urlRepo.RecordVisit(ctx, shortCode, entity.Visit{
		VisitorID: visitorID,
		Timestamp: uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	return &Resolution{
		LongURL:   url.LongURL,
		VisitorID: visitorID,
	}, nil
}
