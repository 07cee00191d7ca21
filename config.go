// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of a queue configuration.
//
//	name: ingest
//	capacity: 1024
//	spin_limit: 64
type Config struct {
	Name      string `yaml:"name"`
	Capacity  int    `yaml:"capacity"`
	SpinLimit int    `yaml:"spin_limit"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return invalidCapacity(c.Capacity)
	}
	if c.SpinLimit < 0 {
		return fmt.Errorf("bbq: spin_limit must be >= 0: got %d", c.SpinLimit)
	}
	return nil
}

// Builder returns a Builder preset from c. The observer is not part of the
// file form; attach one on the returned Builder.
func (c *Config) Builder() *Builder {
	return New(c.Capacity).Name(c.Name).Spin(c.SpinLimit)
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads, decodes and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}
