package cli

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ToolConfig is the optional configuration file for the dbus CLI tool. It
// only covers the client construction options; the library itself takes no
// configuration from files or the environment.
type ToolConfig struct {
	Language         string `yaml:"language" validate:"omitempty,oneof=es eu en fr"`
	ConnectTimeoutMS int    `yaml:"connectTimeoutMS" validate:"gte=0"`
	ReadTimeoutMS    int    `yaml:"readTimeoutMS" validate:"gte=0"`
}

// LoadToolConfig reads and validates a YAML config file. A missing path
// returns the zero config (everything defaulted by the client).
func LoadToolConfig(path string) (ToolConfig, error) {
	var config ToolConfig

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, err
	}

	if err := validator.New().Struct(config); err != nil {
		return config, err
	}

	return config, nil
}

func (c ToolConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutMS) * time.Millisecond
}

func (c ToolConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}
