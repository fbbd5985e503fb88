package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr       string        `yaml:"http_addr"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	Cluster ClusterConfig `yaml:"cluster"`

	EnableRunLog bool   `yaml:"enable_run_log"`
	DBDriver     string `yaml:"db_driver"` // sqlite|postgres
	DBDSN        string `yaml:"db_dsn"`
}

// ClusterConfig tunes the k-means stage. Changing seed or restarts may
// relabel clusters for the same upload.
type ClusterConfig struct {
	Seed      int64   `yaml:"seed"`
	Restarts  int     `yaml:"restarts"`
	MaxIter   int     `yaml:"max_iter"`
	Tolerance float64 `yaml:"tolerance"`
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		CORSOrigins:    csvOr("CORS_ORIGINS", "*"),
		MaxUploadBytes: int64(envInt("MAX_UPLOAD_BYTES", 10<<20)),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 30*time.Second),
		Cluster: ClusterConfig{
			Seed:      int64(envInt("CLUSTER_SEED", 42)),
			Restarts:  envInt("CLUSTER_RESTARTS", 10),
			MaxIter:   envInt("CLUSTER_MAX_ITER", 300),
			Tolerance: envFloat("CLUSTER_TOLERANCE", 1e-4),
		},
		EnableRunLog: envBool("ENABLE_RUN_LOG", true),
		DBDriver:     envOr("DB_DRIVER", "sqlite"),
		DBDSN:        envOr("DB_DSN", ""),
	}
}

// Load reads the environment and then overlays CONFIG_FILE (YAML) when set.
// Keys absent from the file keep their environment value.
func Load() (Config, error) {
	cfg := FromEnv()
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k))); err == nil {
		return v
	}
	return def
}
func envFloat(k string, def float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(k)), 64); err == nil {
		return v
	}
	return def
}
func envDuration(k string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
