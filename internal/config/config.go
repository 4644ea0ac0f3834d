package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host        string
	Port        string
	Mode        string
	CORSOrigins []string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Catalog struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// ModelBackend configures one OpenAI-compatible chat completion backend.
type ModelBackend struct {
	Name     string
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

func (b ModelBackend) Configured() bool {
	return b.APIKey != ""
}

type Session struct {
	TTL          time.Duration
	SecureCookie bool
}

type Config struct {
	HTTP         HTTPServer
	Redis        RedisCache
	Postgres     Postgres
	Catalog      Catalog
	Groq         ModelBackend
	GitHubModels ModelBackend
	Session      Session
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()
	log.Printf("%s backend config : %s\n", logtag, cfg)
	return cfg
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() *Config {
	return &Config{
		HTTP:         *newHTTP(),
		Redis:        *newRedis(),
		Postgres:     *newPostgres(),
		Catalog:      *newCatalog(),
		Groq:         *newGroq(),
		GitHubModels: *newGitHubModels(),
		Session:      *newSession(),
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("{HTTP:%+v Redis:{%s:%s} Postgres:{%s:%s/%s} Catalog:{%s token:%s} Groq:{%s key:%s} GitHubModels:{%s key:%s} Session:%+v}",
		c.HTTP,
		c.Redis.Host, c.Redis.Port,
		c.Postgres.Host, c.Postgres.Port, c.Postgres.DBName,
		c.Catalog.BaseURL, mask(c.Catalog.Token),
		c.Groq.Model, mask(c.Groq.APIKey),
		c.GitHubModels.Model, mask(c.GitHubModels.APIKey),
		c.Session,
	)
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:        getenv("HTTP_PORT", "8080"),
		Host:        getenv("HTTP_HOST", "localhost"),
		Mode:        getenv("GIN_MODE", "debug"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getsecret("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getsecret("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "cinemind"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL: getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		Token:   getsecret("TMDB_API_KEY", ""),
		Timeout: getduration("TMDB_TIMEOUT", 8*time.Second),
	}
}

func newGroq() *ModelBackend {
	return &ModelBackend{
		Name:     "groq",
		APIKey:   getsecret("GROQ_API_KEY", ""),
		Model:    getenv("GROQ_MODEL", "llama-3.1-8b-instant"),
		Endpoint: getenv("GROQ_ENDPOINT", "https://api.groq.com/openai/v1/chat/completions"),
		Timeout:  getduration("LLM_TIMEOUT", 20*time.Second),
	}
}

func newGitHubModels() *ModelBackend {
	return &ModelBackend{
		Name:     "github",
		APIKey:   getsecret("GITHUB_API_KEY", ""),
		Model:    getenv("GITHUB_MODEL", "gpt-4o"),
		Endpoint: getenv("GITHUB_MODELS_ENDPOINT", "https://models.inference.ai.azure.com/chat/completions"),
		Timeout:  getduration("LLM_TIMEOUT", 20*time.Second),
	}
}

func newSession() *Session {
	return &Session{
		TTL:          getduration("SESSION_TTL", 7*24*time.Hour),
		SecureCookie: getenv("GIN_MODE", "debug") == "release",
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getsecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, mask(val))
	return val
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		fmt.Printf("%s %s is not a duration. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mask(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + "****" + secret[len(secret)-2:]
}
