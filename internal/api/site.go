package api

import (
	"net/http"
	"strconv"

	"github.com/UkralStul/portfolio-content-service/internal/content"
	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

func siteRoutes(s *content.SiteContent) func(r chi.Router) {
	return func(r chi.Router) {
		// Пустая шапка - это null, а не 404
		r.Get("/hero", func(w http.ResponseWriter, r *http.Request) {
			hero, err := s.Hero(r.Context())
			respond(w, r, http.StatusOK, hero, err)
		})
		r.Get("/about", func(w http.ResponseWriter, r *http.Request) {
			about, err := s.About(r.Context())
			respond(w, r, http.StatusOK, about, err)
		})
		r.Post("/seed", func(w http.ResponseWriter, r *http.Request) {
			res, err := s.Seed(r.Context())
			respond(w, r, http.StatusOK, res, err)
		})
		r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
			res, err := s.Clear(r.Context())
			respond(w, r, http.StatusOK, res, err)
		})

		r.Route("/social-links", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				all, _ := strconv.ParseBool(r.URL.Query().Get("all"))
				var (
					links []*domain.SocialLink
					err   error
				)
				if all {
					links, err = s.AllSocialLinks(r.Context())
				} else {
					links, err = s.SocialLinks(r.Context())
				}
				respond(w, r, http.StatusOK, links, err)
			})
			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				link := new(domain.SocialLink)
				if !decode(w, r, link) {
					return
				}
				created, err := s.CreateSocialLink(r.Context(), link)
				respond(w, r, http.StatusCreated, created, err)
			})
			r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
				link, err := s.GetSocialLink(r.Context(), chi.URLParam(r, "id"))
				respond(w, r, http.StatusOK, link, err)
			})
			r.Patch("/{id}", func(w http.ResponseWriter, r *http.Request) {
				var patch domain.SocialLinkPatch
				if !decode(w, r, &patch) {
					return
				}
				link, err := s.UpdateSocialLink(r.Context(), chi.URLParam(r, "id"), patch)
				respond(w, r, http.StatusOK, link, err)
			})
			r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
				respondNoContent(w, r, s.DeleteSocialLink(r.Context(), chi.URLParam(r, "id")))
			})
		})
	}
}
