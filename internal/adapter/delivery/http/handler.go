package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/internal/session"
	"github.com/vadimbarashkov/tinyapp/pkg/response"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

func newValidate() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

func renderResponse(w http.ResponseWriter, r *http.Request, resp response.Response) {
	render.Status(r, resp.StatusCode)
	render.JSON(w, r, resp)
}

// decodeAndValidate reads a JSON body into v and validates it. On failure the
// error response is already written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			renderResponse(w, r, response.EmptyRequestBodyResponse)
			return false
		}

		renderResponse(w, r, response.BadRequestResponse)
		return false
	}

	if err := validate.Struct(v); err != nil {
		renderResponse(w, r, response.ValidationErrorResponse(err))
		return false
	}

	return true
}

// renderError maps domain errors to their HTTP responses. Anything unknown is
// logged on the request entry and answered with 500.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrMustLogin), errors.Is(err, entity.ErrUserNotFound):
		renderResponse(w, r, response.UnauthorizedResponse)
	case errors.Is(err, entity.ErrForbidden):
		renderResponse(w, r, response.ForbiddenResponse)
	case errors.Is(err, entity.ErrURLNotFound):
		renderResponse(w, r, response.ResourseNotFoundResponse)
	case errors.Is(err, entity.ErrEmailTaken):
		renderResponse(w, r, response.EmailTakenResponse)
	case errors.Is(err, entity.ErrInvalidCredentials):
		renderResponse(w, r, response.InvalidCredentialsResponse)
	case errors.Is(err, entity.ErrInvalidInput):
		renderResponse(w, r, response.InvalidInputResponse)
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.StringValue(err.Error()))
		renderResponse(w, r, response.ServerErrorResponse)
	}
}

// saveSession re-issues the session cookie; a failure is only logged since the
// primary operation already succeeded.
func saveSession(w http.ResponseWriter, r *http.Request, sessions *session.Manager, s session.Session) {
	if err := sessions.Save(w, s); err != nil {
		httplog.LogEntrySetField(r.Context(), "session_err", slog.StringValue(err.Error()))
	}
}
