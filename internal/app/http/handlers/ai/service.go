package ai

import (
	"net/http"
	"time"

	"buildsafe/go_backend/internal/app/config"
)

// Service generates RAMS content through the OpenAI chat completions API.
type Service struct {
	Cfg  config.Config
	HTTP *http.Client
}

func New(cfg config.Config, httpClient *http.Client) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Service{Cfg: cfg, HTTP: httpClient}
}
