// Package api - HTTP-интерфейс к модулям контента и лента изменений по WebSocket.
package api

import (
	"net/http"

	"github.com/UkralStul/portfolio-content-service/graph"
	"github.com/UkralStul/portfolio-content-service/internal/content"
	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// Options - настройки роутера.
type Options struct {
	AllowedOrigins []string
	// Broker включает /ws. Без него лента изменений не монтируется.
	Broker *events.Broker
}

// NewRouter собирает роутер со всеми маршрутами.
func NewRouter(svc *content.Service, opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Route("/comments", commentRoutes(svc.Comments))
		r.Route("/certifications", collectionRoutes[domain.Certification, domain.CertificationPatch](svc.Certifications))
		r.Route("/experiences", collectionRoutes[domain.Experience, domain.ExperiencePatch](svc.Experiences))
		r.Route("/hackathons", collectionRoutes[domain.Hackathon, domain.HackathonPatch](svc.Hackathons))
		r.Route("/projects", collectionRoutes[domain.Project, domain.ProjectPatch](svc.Projects))
		r.Route("/skills", collectionRoutes[domain.Skill, domain.SkillPatch](svc.Skills))
		r.Route("/site", siteRoutes(svc.SiteContent))
	})

	// GraphQL поверх тех же модулей
	router.Handle("/query", graph.Handler(svc))

	if opts.Broker != nil {
		router.Get("/ws", changesHandler(opts.Broker))
	}
	return router
}
