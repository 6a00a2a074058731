package handlers

import (
	"net/http"
	"time"

	"buildsafe/go_backend/internal/app/config"
	"buildsafe/go_backend/internal/app/http/handlers/ai"
	"buildsafe/go_backend/internal/infra/db/postgres"
	"buildsafe/go_backend/internal/infra/supabase"
)

type Handlers struct {
	DB  *postgres.DB
	SB  *supabase.Client
	AI  *ai.Service
	Cfg config.Config
}

func New(db *postgres.DB, sb *supabase.Client, cfg config.Config) *Handlers {
	return &Handlers{
		DB:  db,
		SB:  sb,
		AI:  ai.New(cfg, &http.Client{Timeout: 60 * time.Second}),
		Cfg: cfg,
	}
}
