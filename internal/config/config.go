package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Backend names accepted in DATA_BACKEND.
const (
	BackendFile  = "file"
	BackendMySQL = "mysql"
	BackendRedis = "redis"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Database fields are only required when
// the mysql backend is selected.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	DataBackend  string // record backend: file | mysql | redis
	DataDir      string // directory for the file backend
	LatencyMS    int    // artificial per-operation store delay, 0 disables
	DBUser       string // database username (mysql backend)
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
}

// Load reads configuration from environment variables. Required
// variables are enforced by must() and missing values cause the program
// to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         must("APP_PORT"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: atoi(getenv("ACCESS_TOKEN_TTL_MIN", "60")),
		DataBackend:  getenv("DATA_BACKEND", BackendFile),
		DataDir:      getenv("DATA_DIR", "data"),
		LatencyMS:    atoi(getenv("LATENCY_MS", "0")),
	}
	if cfg.DataBackend == BackendMySQL {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
