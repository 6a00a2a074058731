package app

import (
	"log"
	"net/http"
	"time"

	"buildsafe/go_backend/internal/app/config"
	apphttp "buildsafe/go_backend/internal/app/http"
	"buildsafe/go_backend/internal/infra/db/postgres"
	"buildsafe/go_backend/internal/infra/supabase"
)

func Run() {
	cfg := config.MustLoad()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	sb := supabase.New(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, nil)

	router := apphttp.NewRouter(cfg, db, sb)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
