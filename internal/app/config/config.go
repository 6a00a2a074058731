package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr               string
	DatabaseURL            string
	InternalToken          string
	SupabaseURL            string
	SupabaseServiceRoleKey string
	OpenAIBaseURL          string
	OpenAIAPIKey           string
	OpenAIModel            string
	CORSAllowOrigin        string
}

func MustLoad() Config {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:               env("HTTP_ADDR", ":8080"),
		DatabaseURL:            mustEnv("DATABASE_URL"),
		InternalToken:          mustEnv("INTERNAL_TOKEN"),
		SupabaseURL:            mustEnv("SUPABASE_URL"),
		SupabaseServiceRoleKey: mustEnv("SUPABASE_SERVICE_ROLE_KEY"),
		OpenAIBaseURL:          env("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:           mustEnv("OPENAI_API_KEY"),
		OpenAIModel:            env("OPENAI_MODEL", "gpt-4o"),
		CORSAllowOrigin:        env("CORS_ALLOW_ORIGIN", "*"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
