// Package config loads pokerduel configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete tool configuration.
type Config struct {
	Input   string        `hcl:"input,optional"`
	Output  string        `hcl:"output,optional"`
	Workers int           `hcl:"workers,optional"`
	NoColor bool          `hcl:"no_color,optional"`
	Server  *ServerConfig `hcl:"server,block"`
}

// ServerConfig configures the websocket evaluation service.
type ServerConfig struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:   "poker.txt",
		Output:  "csis.txt",
		Workers: 1,
		Server: &ServerConfig{
			Address: "localhost",
			Port:    8080,
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an error;
// defaults are returned.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Input == "" {
		config.Input = "poker.txt"
	}
	if config.Output == "" {
		config.Output = "csis.txt"
	}
	if config.Workers == 0 {
		config.Workers = 1
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	return nil
}

// Addr returns the full listen address for the server.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}
