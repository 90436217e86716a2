package api

import (
	"context"
	"net/http"

	"github.com/UkralStul/portfolio-content-service/internal/content"
	"github.com/go-chi/chi/v5"
)

// collection - модуль с обычным набором операций. E - тип записи, P - патч.
type collection[E any, P any] interface {
	List(ctx context.Context) ([]*E, error)
	Get(ctx context.Context, id string) (*E, error)
	Create(ctx context.Context, rec *E) (*E, error)
	Update(ctx context.Context, id string, patch P) (*E, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (content.ClearResult, error)
	Seed(ctx context.Context) (content.SeedResult, error)
}

func collectionRoutes[E any, P any](c collection[E, P]) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			list, err := c.List(r.Context())
			respond(w, r, http.StatusOK, list, err)
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			rec := new(E)
			if !decode(w, r, rec) {
				return
			}
			created, err := c.Create(r.Context(), rec)
			respond(w, r, http.StatusCreated, created, err)
		})
		r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
			res, err := c.Clear(r.Context())
			respond(w, r, http.StatusOK, res, err)
		})
		r.Post("/seed", func(w http.ResponseWriter, r *http.Request) {
			res, err := c.Seed(r.Context())
			respond(w, r, http.StatusOK, res, err)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				rec, err := c.Get(r.Context(), chi.URLParam(r, "id"))
				respond(w, r, http.StatusOK, rec, err)
			})
			r.Patch("/", func(w http.ResponseWriter, r *http.Request) {
				var patch P
				if !decode(w, r, &patch) {
					return
				}
				rec, err := c.Update(r.Context(), chi.URLParam(r, "id"), patch)
				respond(w, r, http.StatusOK, rec, err)
			})
			r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
				respondNoContent(w, r, c.Delete(r.Context(), chi.URLParam(r, "id")))
			})
		})
	}
}
