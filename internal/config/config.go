package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de armazenamento aceitos em STORAGE_DRIVER
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config reúne as configurações da aplicação lidas do ambiente
type Config struct {
	Port string

	StorageDriver   string
	SupabaseURL     string
	SupabaseAnonKey string
	SurveyTable     string
	DatabaseURL     string
	RedisURL        string

	AdminPIN        string
	JWTSecret       string
	AdminSessionTTL time.Duration
	DraftTTL        time.Duration

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	AITimeout     time.Duration

	AllowedOrigins string
	PublicURL      string
	CouponPrefix   string
}

// Load lê as variáveis de ambiente (o .env já foi carregado pelo main)
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		StorageDriver:   strings.ToLower(getEnv("STORAGE_DRIVER", DriverSupabase)),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		SurveyTable:     getEnv("SURVEY_TABLE", "surveys"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		AdminPIN:        getEnv("ADMIN_PIN", "1234"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:   os.Getenv("GEMINI_BASE_URL"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173"),
		PublicURL:       getEnv("PUBLIC_URL", "http://localhost:3000"),
		CouponPrefix:    getEnv("COUPON_PREFIX", "VIOR"),
	}

	var err error
	if cfg.AdminSessionTTL, err = getDuration("ADMIN_SESSION_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.DraftTTL, err = getDuration("DRAFT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	timeoutMS, err := strconv.Atoi(getEnv("AI_TIMEOUT_MS", "20000"))
	if err != nil || timeoutMS <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT_MS inválido: %q", os.Getenv("AI_TIMEOUT_MS"))
	}
	cfg.AITimeout = time.Duration(timeoutMS) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate confere se o driver escolhido tem o que precisa
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_URL e SUPABASE_ANON_KEY são obrigatórias para o driver %q", c.StorageDriver)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL é obrigatória para o driver %q", c.StorageDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER desconhecido: %q", c.StorageDriver)
	}

	if c.AdminPIN == "" {
		return fmt.Errorf("ADMIN_PIN não pode ser vazio")
	}
	return nil
}

// SigningSecret retorna o segredo do JWT; sem JWT_SECRET, deriva do PIN
func (c *Config) SigningSecret() []byte {
	if c.JWTSecret != "" {
		return []byte(c.JWTSecret)
	}
	return []byte("vior-admin:" + c.AdminPIN)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s inválido: %q", key, raw)
	}
	return d, nil
}
