package api

import (
	"net/http"

	"github.com/UkralStul/portfolio-content-service/internal/content"
	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/validation"
	"github.com/go-chi/chi/v5"
)

type countResponse struct {
	Count int `json:"count"`
}

// commentRoutes - гостевая книга. Сида нет, есть счётчик и модерация.
func commentRoutes(c *content.Comments) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			list, err := c.List(r.Context())
			respond(w, r, http.StatusOK, list, err)
		})
		r.Get("/count", func(w http.ResponseWriter, r *http.Request) {
			n, err := c.Count(r.Context())
			respond(w, r, http.StatusOK, countResponse{Count: n}, err)
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var in validation.CommentInput
			if !decode(w, r, &in) {
				return
			}
			created, err := c.Create(r.Context(), in)
			respond(w, r, http.StatusCreated, created, err)
		})
		r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
			res, err := c.Clear(r.Context())
			respond(w, r, http.StatusOK, res, err)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				cm, err := c.Get(r.Context(), chi.URLParam(r, "id"))
				respond(w, r, http.StatusOK, cm, err)
			})
			r.Patch("/", func(w http.ResponseWriter, r *http.Request) {
				var patch domain.CommentPatch
				if !decode(w, r, &patch) {
					return
				}
				cm, err := c.Update(r.Context(), chi.URLParam(r, "id"), patch)
				respond(w, r, http.StatusOK, cm, err)
			})
			r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
				respondNoContent(w, r, c.Delete(r.Context(), chi.URLParam(r, "id")))
			})
			r.Post("/approval", func(w http.ResponseWriter, r *http.Request) {
				cm, err := c.ToggleApproval(r.Context(), chi.URLParam(r, "id"))
				respond(w, r, http.StatusOK, cm, err)
			})
		})
	}
}
