package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// SourceEmbedded is reported when no config file was found on disk.
const SourceEmbedded = "embedded"

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", s)
	}
}

// FormatForPath picks the decoder based on the file extension.
// Anything that is not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data on top of the built-in defaults, so partial files
// only override the keys they mention.
func Decode(data []byte, format Format) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", format, err)
	}
	return cfg, nil
}

// Encode serializes the configuration in the requested format.
func Encode(cfg FlappyConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return data, nil
	}
}

// LoadFlappy loads and validates the flappy configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default.
// The second return value names the source that was used.
func LoadFlappy(customPath string) (FlappyConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, cfg.Validate()
	}

	cfg, err := Decode(defaultFlappyYAML, FormatYAML)
	if err != nil {
		cfg = DefaultFlappyConfig()
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultFlappyConfig(), fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatForPath(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists candidate config files in priority order.
func searchPaths() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	dirs = append(dirs, "configs")

	paths := make([]string, 0, len(dirs)*2)
	for _, dir := range dirs {
		paths = append(paths,
			filepath.Join(dir, "flappy.yaml"),
			filepath.Join(dir, "flappy.toml"),
		)
	}
	return paths
}
