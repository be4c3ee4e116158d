package http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/internal/session"
	"github.com/vadimbarashkov/tinyapp/pkg/response"
)

type userUseCase interface {
	Register(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
}

type userHandler struct {
	useCase  userUseCase
	sessions *session.Manager
	validate *validator.Validate
}

func newUserHandler(useCase userUseCase, sessions *session.Manager, validate *validator.Validate) *userHandler {
	return &userHandler{
		useCase:  useCase,
		sessions: sessions,
		validate: validate,
	}
}

func (h *userHandler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	sess := session.FromContext(r.Context())
	sess.UserID = user.ID
	saveSession(w, r, h.sessions, sess)

	renderResponse(w, r, response.SuccessResponse(http.StatusCreated, "User registered.", toUserResponse(user)))
}

func (h *userHandler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	sess := session.FromContext(r.Context())
	sess.UserID = user.ID
	saveSession(w, r, h.sessions, sess)

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "Logged in.", toUserResponse(user)))
}

// logout forgets the user but keeps the visitor id.
func (h *userHandler) logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	sess.UserID = ""
	saveSession(w, r, h.sessions, sess)

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "Logged out."))
}

func (h *userHandler) me(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	user, err := h.useCase.GetUser(r.Context(), sess.UserID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "User retrieved.", toUserResponse(user)))
}
