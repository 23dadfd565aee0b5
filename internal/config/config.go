// Package config loads the project settings from uic.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the project configuration loaded from uic.yaml.
type Config struct {
	Input       string `yaml:"input"`        // directory holding the .def and .view files
	Output      string `yaml:"output"`       // generated App.jsx
	DefaultView string `yaml:"default_view"` // view shown when the app starts
}

// FileName is the configuration file name relative to the project root.
const FileName = "uic.yaml"

const (
	DefaultInput       = "ui/input"
	DefaultOutput      = "ui/output/App.jsx"
	DefaultDefaultView = "Main"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Input:       DefaultInput,
		Output:      DefaultOutput,
		DefaultView: DefaultDefaultView,
	}
}

// Load reads uic.yaml from projectDir. A missing file is not an error:
// the defaults are used. Values left empty in the file keep their
// defaults. UIC_INPUT, UIC_OUTPUT and UIC_DEFAULT_VIEW override the file.
//
// Relative paths are resolved against projectDir.
func Load(projectDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(projectDir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", FileName, err)
		}
		cfg.merge(&file)
	}

	cfg.merge(&Config{
		Input:       os.Getenv("UIC_INPUT"),
		Output:      os.Getenv("UIC_OUTPUT"),
		DefaultView: os.Getenv("UIC_DEFAULT_VIEW"),
	})
	cfg.resolve(projectDir)
	return cfg, nil
}

// merge copies every non-empty field of o into c.
func (c *Config) merge(o *Config) {
	if o.Input != "" {
		c.Input = o.Input
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.DefaultView != "" {
		c.DefaultView = o.DefaultView
	}
}

func (c *Config) resolve(projectDir string) {
	if c.Input != "" && !filepath.IsAbs(c.Input) {
		c.Input = filepath.Join(projectDir, c.Input)
	}
	if c.Output != "" && !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(projectDir, c.Output)
	}
}

// Override applies command-line values on top of the loaded config.
// Empty values are ignored.
func (c *Config) Override(input, output, defaultView string) {
	c.merge(&Config{Input: input, Output: output, DefaultView: defaultView})
}

// Validate reports settings the compiler cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("config: input directory is empty")
	case c.Output == "":
		return errors.New("config: output path is empty")
	case c.DefaultView == "":
		return errors.New("config: default_view is empty")
	case filepath.Ext(c.Output) != ".jsx" && filepath.Ext(c.Output) != ".js":
		return fmt.Errorf("config: output %s must be a .jsx or .js file", c.Output)
	}
	return nil
}

// Save writes cfg to uic.yaml in projectDir.
func Save(projectDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(projectDir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}
