package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/internal/session"
	"github.com/vadimbarashkov/tinyapp/internal/usecase"
	"github.com/vadimbarashkov/tinyapp/pkg/response"
)

type urlUseCase interface {
	ShortenURL(ctx context.Context, userID, longURL string) (*entity.URL, error)
	GetURL(ctx context.Context, userID, shortCode string) (*entity.URL, error)
	ListURLs(ctx context.Context, userID string) (map[string]*entity.URL, error)
	ModifyURL(ctx context.Context, userID, shortCode, longURL string) (*entity.URL, error)
	DeleteURL(ctx context.Context, userID, shortCode string) error
	ResolveShortCode(ctx context.Context, shortCode, visitorID string) (*usecase.Resolution, error)
}

type urlHandler struct {
	useCase  urlUseCase
	sessions *session.Manager
	validate *validator.Validate
}

func newURLHandler(useCase urlUseCase, sessions *session.Manager, validate *validator.Validate) *urlHandler {
	return &urlHandler{
		useCase:  useCase,
		sessions: sessions,
		validate: validate,
	}
}

func (h *urlHandler) listURLs(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	urls, err := h.useCase.ListURLs(r.Context(), sess.UserID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "URLs retrieved.", toURLListResponse(urls)))
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	// Anonymous callers are rejected before the body is looked at.
	if sess.UserID == "" {
		renderError(w, r, entity.ErrMustLogin)
		return
	}

	var req urlRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), sess.UserID, req.LongURL)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusCreated, "URL shortened.", toURLResponse(url)))
}

func (h *urlHandler) getURL(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.GetURL(r.Context(), sess.UserID, shortCode)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "URL retrieved.", toURLStatsResponse(url)))
}

func (h *urlHandler) modifyURL(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if sess.UserID == "" {
		renderError(w, r, entity.ErrMustLogin)
		return
	}

	var req urlRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.ModifyURL(r.Context(), sess.UserID, shortCode, req.LongURL)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "URL modified.", toURLResponse(url)))
}

func (h *urlHandler) deleteURL(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	shortCode := chi.URLParam(r, "shortCode")

	if err := h.useCase.DeleteURL(r.Context(), sess.UserID, shortCode); err != nil {
		renderError(w, r, err)
		return
	}

	render.NoContent(w, r)
}

// redirect follows a short code for anyone, logged in or not. A visitor id
// minted for this request is stored in the session before redirecting.
func (h *urlHandler) redirect(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	shortCode := chi.URLParam(r, "shortCode")

	res, err := h.useCase.ResolveShortCode(r.Context(), shortCode, sess.VisitorID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if res.VisitorID != sess.VisitorID {
		sess.VisitorID = res.VisitorID
		saveSession(w, r, h.sessions, sess)
	}

	http.Redirect(w, r, res.LongURL, http.StatusFound)
}
