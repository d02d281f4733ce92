package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores portal settings.
type Config struct {
	Port      int
	API       API
	Session   Session
	Pprof     Pprof
	RateLimit RateLimit
}

// API stores backend gateway settings.
type API struct {
	BaseURL string
	Timeout time.Duration
}

// Session stores session persistence settings.
type Session struct {
	FilePath string
}

// Pprof stores the profiler side-listener settings. An empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// RateLimit stores login throttling settings.
type RateLimit struct {
	LoginPerMinute int
}

// Load reads configuration in order: .env (if present) → environment → flags.
// Portal-specific defaults come in through d.
func Load(d Defaults) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port: d.Port,
		API: API{
			BaseURL: d.APIBaseURL,
			Timeout: defaultAPITimeout,
		},
		Session: Session{
			FilePath: d.SessionFile,
		},
		RateLimit: RateLimit{
			LoginPerMinute: defaultLoginPerMinute,
		},
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		t, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT: %q", v)
		}
		cfg.API.Timeout = t
	}
	if v := os.Getenv("SESSION_FILE"); v != "" {
		cfg.Session.FilePath = v
	}
	cfg.Pprof.Addr = os.Getenv("PPROF_ADDR")
	cfg.Pprof.User = os.Getenv("PPROF_USER")
	cfg.Pprof.Pass = os.Getenv("PPROF_PASS")
	if v := os.Getenv("LOGIN_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %q", v)
		}
		cfg.RateLimit.LoginPerMinute = n
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.API.BaseURL, "api-base-url", cfg.API.BaseURL, "backend API base URL")
	pflag.StringVar(&cfg.Session.FilePath, "session-file", cfg.Session.FilePath, "session persistence file")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	if cfg.API.Timeout <= 0 {
		return nil, fmt.Errorf("invalid api timeout: %s", cfg.API.Timeout)
	}
	if cfg.RateLimit.LoginPerMinute <= 0 {
		return nil, fmt.Errorf("invalid login rate limit: %d", cfg.RateLimit.LoginPerMinute)
	}
	return cfg, nil
}
