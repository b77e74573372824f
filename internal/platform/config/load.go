package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultDir holds base.yaml and the profile files, relative to the
	// working directory. APP_CONFIG_DIR overrides it.
	DefaultDir = "configs"

	envPrefix         = "APP_"
	envLevelSeparator = "__"
	envConfigDir      = envPrefix + "CONFIG_DIR"
)

// Load reads the configuration for profile from DefaultDir, or from
// APP_CONFIG_DIR when set. Later layers win:
//
//	defaults < {dir}/base.yaml < {dir}/{profile}.yaml < APP_ variables
//
// Missing files are skipped. An empty profile loads base.yaml only. The
// result is not validated; call Config.Validate.
func Load(profile string) (*Config, error) {
	dir := os.Getenv(envConfigDir)
	if dir == "" {
		dir = DefaultDir
	}

	return LoadDir(dir, profile)
}

// LoadDir is Load with an explicit config directory.
func LoadDir(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	files := []string{"base.yaml"}
	if profile != "" {
		files = append(files, profile+".yaml")
	}

	for _, name := range files {
		if err := loadOptionalFile(k, filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("config: %s: %w", name, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return &cfg, nil
}

func loadOptionalFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

// envKey turns APP_LOG__FILE__MAX_SIZE into log.file.max_size.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, envLevelSeparator, ".")
}

// defaults is the lowest layer. Every key the service reads has a value here
// so that a missing configs directory still yields a runnable config.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "advisor-dashboard",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "advisor-dashboard",
		"telemetry.sampling_rate": 1.0,

		"auth.header": DefaultAuthHeader,
		"auth.tokens": []string{},

		"cors.allowed_origins":   []string{"http://localhost:5173"},
		"cors.allow_credentials": true,
		"cors.max_age":           "12h",

		"dora.retrieval_delay": DefaultRetrievalDelay.String(),

		"storage.seed": true,
	}
}
