package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogFile     string
	Server      ServerConfig
	Auth        AuthConfig
	Demo        DemoConfig
	Simulation  SimulationConfig
	UI          UIConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AuthConfig struct {
	JWTSecret     string
	JWTExpiration time.Duration
}

// DemoConfig is the single credential pair accepted by login.
type DemoConfig struct {
	Email    string
	Password string
}

// SimulationConfig holds the fixed latencies standing in for backend round trips.
type SimulationConfig struct {
	AuthDelay     time.Duration
	QuestionDelay time.Duration
	ProfileDelay  time.Duration
}

type UIConfig struct {
	ToastTTL time.Duration
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogFile:     getEnv("LOG_FILE", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("AUTH_JWT_SECRET", "femnest-dev-secret"),
			JWTExpiration: getDuration("AUTH_JWT_EXPIRATION", time.Hour),
		},
		Demo: DemoConfig{
			Email:    getEnv("DEMO_EMAIL", "test@example.com"),
			Password: getEnv("DEMO_PASSWORD", "password123"),
		},
		Simulation: SimulationConfig{
			AuthDelay:     getDuration("SIM_AUTH_DELAY", 1500*time.Millisecond),
			QuestionDelay: getDuration("SIM_QUESTION_DELAY", 2*time.Second),
			ProfileDelay:  getDuration("SIM_PROFILE_DELAY", 1500*time.Millisecond),
		},
		UI: UIConfig{
			ToastTTL: getDuration("UI_TOAST_TTL", 5*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go duration strings ("1.5s") or plain milliseconds ("1500").
func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
