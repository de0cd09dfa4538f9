package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. RHYTHM_LOG_LEVEL.
const EnvPrefix = "RHYTHM_"

// Load builds Settings by layering, low to high precedence:
//  1. embedded defaults
//  2. a YAML file: customPath, else ~/.rhythm/config.yaml, else ./configs/rhythm.yaml
//  3. env (prefix RHYTHM_)
//
// A customPath that cannot be read is an error; the other files are optional.
func Load(customPath string) (Settings, error) {
	base := Default()
	k := koanf.New(".")

	if path := resolvePath(customPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// RHYTHM_LOG_LEVEL -> log_level
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Settings{}, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	s := base
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// resolvePath picks the settings file to load, or "" for none.
func resolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := userConfigPath("config.yaml"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(filepath.Join("configs", "rhythm.yaml")); err == nil {
		return filepath.Join("configs", "rhythm.yaml")
	}
	return ""
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rhythm", filename)
}
