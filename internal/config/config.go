package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	ACR     ACRConfig
	Gemini  GeminiConfig
	Cache   CacheConfig
	Archive ArchiveConfig
}

// ACRConfig configures the ACRCloud identification client.
type ACRConfig struct {
	Host         string
	AccessKey    string
	AccessSecret string
	Timeout      time.Duration
	RPS          float64
	Burst        int
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// CacheConfig controls the in-memory recognition cache. Disabled by
// default; enabling it only skips repeat provider calls for
// byte-identical clips.
type CacheConfig struct {
	Enabled bool
	Size    int
}

type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8000", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	acr, err := loadACRConfig()
	if err != nil {
		return nil, err
	}
	gemini, err := loadGeminiConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:    *port,
		Env:     env,
		ACR:     acr,
		Gemini:  gemini,
		Cache:   loadCacheConfig(),
		Archive: loadArchiveConfig(),
	}, nil
}

func loadACRConfig() (ACRConfig, error) {
	cfg := ACRConfig{
		Host:         strings.TrimSpace(os.Getenv("ACRCLOUD_HOST")),
		AccessKey:    strings.TrimSpace(os.Getenv("ACRCLOUD_KEY")),
		AccessSecret: strings.TrimSpace(os.Getenv("ACRCLOUD_SECRET")),
		Timeout:      durationEnv("ACRCLOUD_TIMEOUT", 10*time.Second),
		RPS:          floatEnv("ACRCLOUD_RPS", 0),
		Burst:        intEnv("ACRCLOUD_BURST", 0),
	}
	if cfg.Host == "" || cfg.AccessKey == "" || cfg.AccessSecret == "" {
		return ACRConfig{}, fmt.Errorf("ACRCLOUD_HOST, ACRCLOUD_KEY and ACRCLOUD_SECRET are required")
	}
	return cfg, nil
}

func loadGeminiConfig() (GeminiConfig, error) {
	cfg := GeminiConfig{
		APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:   firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
		Timeout: durationEnv("GEMINI_TIMEOUT", 60*time.Second),
	}
	if cfg.APIKey == "" {
		return GeminiConfig{}, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return cfg, nil
}

func loadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: boolEnv("RECOGNITION_CACHE", false),
		Size:    intEnv("RECOGNITION_CACHE_SIZE", 256),
	}
}

func loadArchiveConfig() ArchiveConfig {
	endpoint := strings.TrimSpace(os.Getenv("CLIP_S3_ENDPOINT"))
	return ArchiveConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("CLIP_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("CLIP_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("CLIP_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("CLIP_S3_BUCKET")), "soundclaim-clips"),
		UseSSL:    boolEnv("CLIP_S3_USE_SSL", false),
	}
}

func durationEnv(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func floatEnv(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return f
}

func intEnv(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(name string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
