package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/govalues/units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the display preferences of the user.
// The unit is stored by its tag, which is stable across versions.
type Config struct {
	DisplayUnit uint8  `mapstructure:"display_unit" yaml:"display_unit"`
	Separators  string `mapstructure:"separators" yaml:"separators"`
	Privacy     bool   `mapstructure:"privacy" yaml:"privacy"`
}

// Defaults are used for keys that no other source sets.
var Defaults = map[string]any{
	"display_unit": units.LEX.Tag(),
	"separators":   units.SeparatorStandard.String(),
	"privacy":      false,
}

// Unit returns the display unit.
func (c Config) Unit() (units.Unit, error) {
	u, err := units.UnitFromTag(c.DisplayUnit)
	if err != nil {
		return units.LEX, fmt.Errorf("display_unit: %w", err)
	}
	return u, nil
}

// SeparatorStyle returns the digit grouping style.
func (c Config) SeparatorStyle() (units.SeparatorStyle, error) {
	s, err := units.ParseSeparatorStyle(c.Separators)
	if err != nil {
		return units.SeparatorStandard, fmt.Errorf("separators: %w", err)
	}
	return s, nil
}

// GetConfigPath returns the full path of the user configuration file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(configDir, "lexunits", "lexunits.yaml"), nil
}

// LoadConfig reads the configuration. Sources, highest precedence first:
// changed flags of cmd, LEXUNITS_* environment variables, the file at path
// (if not nil), lexunits.yaml in the user config directory or the current
// directory, and [Defaults].
// A missing configuration file is not an error.
func LoadConfig(cmd *cobra.Command, path *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("lexunits")
	v.SetConfigType("yaml")
	if path != nil && *path != "" {
		v.SetConfigFile(*path)
	}
	if userConfigPath, err := GetConfigPath(); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("lexunits")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// WriteConfigFile saves c as YAML to path, or to the user configuration
// file if path is empty. Missing directories are created.
// It returns the path written.
func WriteConfigFile[T any](c *T, path string) (string, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return "", err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// SetConfigValue saves one key to the file at path, or to the user
// configuration file if path is empty. Other keys already in the file are
// kept as they are; environment variables, flags and other configuration
// files are not consulted.
// It returns the path written.
func SetConfigValue(path, key string, value any) (string, error) {
	if _, ok := Defaults[key]; !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return "", err
		}
	}

	values := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// A missing file starts empty.
	case err != nil:
		return "", fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return "", fmt.Errorf("reading config %s: %w", path, err)
		}
		if values == nil {
			values = map[string]any{}
		}
	}

	values[key] = value
	return WriteConfigFile(&values, path)
}
