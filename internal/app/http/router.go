package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"buildsafe/go_backend/internal/app/config"
	"buildsafe/go_backend/internal/app/http/handlers"
	"buildsafe/go_backend/internal/app/http/middleware"
	"buildsafe/go_backend/internal/infra/db/postgres"
	"buildsafe/go_backend/internal/infra/supabase"
)

func NewRouter(cfg config.Config, db *postgres.DB, sb *supabase.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(db, sb, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Get("/quotes", h.ListQuotes)
		r.Post("/quotes", h.CreateQuote)
		r.Put("/quotes/{id}", h.UpdateQuote)
		r.Get("/quotes/{id}/pdf", h.QuotePDF)

		r.Get("/inspections/{kind}", h.ListInspections)
		r.Get("/inspections/{kind}/new", h.NewInspection)
		r.Post("/inspections/{kind}", h.CreateInspection)
		r.Put("/inspections/{kind}/{id}", h.UpdateInspection)
		r.Get("/inspections/{kind}/{id}/pdf", h.InspectionPDF)

		r.Post("/rams/ai/hazards", h.GenerateHazards)
		r.Post("/rams/ai/sequence", h.GenerateSequence)
		r.Post("/rams/ai/hospital", h.LocateHospital)
	})

	return r
}
