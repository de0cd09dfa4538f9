package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// Default returns the built-in settings.
func Default() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return fallbackSettings() // Fallback to hardcoded if embed fails
	}
	return s
}

func fallbackSettings() Settings {
	return Settings{
		LogLevel:    "info",
		Format:      FormatTable,
		Colour:      true,
		DefaultGame: "iidx",
	}
}
