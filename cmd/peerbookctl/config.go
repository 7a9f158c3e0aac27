package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/peerbook/internal/addressbook"
)

// peerbookctl config.toml key mapping.
type fileConfig struct {
	AddressBookDir string `toml:"address_book_dir"`
}

const defaultConfigPath = "config.toml"

// loadFileConfig reads the tool's own config file. A missing file at the
// default path is not an error; the defaults apply.
func loadFileConfig(path string) (fileConfig, error) {
	cfg := fileConfig{AddressBookDir: addressbook.DefaultDir}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == defaultConfigPath {
			return cfg, nil
		}
		return fileConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fileConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if strings.TrimSpace(raw.AddressBookDir) != "" {
		cfg.AddressBookDir = strings.TrimSpace(raw.AddressBookDir)
	}
	return cfg, nil
}
