package config

import (
	"errors"
	"reflect"
	"strings"

	"ossdisk/core/logger"
	"ossdisk/core/server"
	"ossdisk/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the default disk.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Disks holds additional named disks, usually declared in config.yaml.
	Disks map[string]storage.Config `mapstructure:"disks"`
}

// LoadConfig loads configuration from config.yaml, environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// 2. Optional config.yaml
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")
	for name := range v.GetStringMap("disks") {
		bindValues(v, storage.Config{}, "disks."+name)
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultDisk returns the name of the disk declared by the storage section.
func (c *Config) DefaultDisk() string {
	return c.Storage.Name
}

// AllDisks returns every configured disk keyed by name, the storage section included.
// A disk of the same name in Disks takes precedence over the storage section.
func (c *Config) AllDisks() map[string]storage.Config {
	out := make(map[string]storage.Config, len(c.Disks)+1)
	for name, d := range c.Disks {
		d.Name = name
		out[name] = d
	}
	if _, ok := out[c.Storage.Name]; !ok && c.Storage.Name != "" {
		out[c.Storage.Name] = c.Storage
	}
	return out
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Maps are filled from config files only
		if field.Type.Kind() == reflect.Map {
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
