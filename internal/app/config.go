package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds runtime options for building the app.
type Config struct {
	Home        string // key directory, e.g. $HOME/.keywire
	PreKeyCount int    // default batch size for prekey generation
}

func DefaultConfig() Config {
	return Config{PreKeyCount: 10}
}

// config.toml key mapping.
type fileConfig struct {
	Home        string `toml:"home"`
	PreKeyCount int    `toml:"prekey_count"`
}

// LoadConfig overlays values from a TOML file onto the defaults. A missing
// file is not an error; explicitly set keys win over defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("home") {
		cfg.Home = strings.TrimSpace(raw.Home)
	}
	if meta.IsDefined("prekey_count") {
		if raw.PreKeyCount < 1 {
			return Config{}, fmt.Errorf("load config: prekey_count must be positive, got %d", raw.PreKeyCount)
		}
		cfg.PreKeyCount = raw.PreKeyCount
	}
	return cfg, nil
}
