package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondError переводит ошибку домена в HTTP-статус.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		nf *domain.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: ve.Message, Field: ve.Field})
	case errors.As(err, &nf):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: nf.Error()})
	default:
		log.Printf("[%s] %s %s: %v", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "internal server error"})
	}
}

func respondBadJSON(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResponse{Error: "invalid request body: " + err.Error()})
}

// decode читает JSON-тело запроса. При ошибке ответ уже отправлен.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		respondBadJSON(w, r, err)
		return false
	}
	return true
}

func respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.Status(r, status)
	render.JSON(w, r, v)
}

func respondNoContent(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.NoContent(w, r)
}
