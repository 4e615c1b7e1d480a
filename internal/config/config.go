// Package config loads the optional site configuration and locates the
// site root on disk.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	serrors "github.com/JonHurst/ssg/internal/errors"
)

// DefaultFileName is the optional per-site configuration file, looked up
// at the site root.
const DefaultFileName = "ssg.yaml"

// Config holds the site-level settings. Every field has a working
// default so a site without an ssg.yaml builds unchanged.
type Config struct {
	ContentDir   string `yaml:"content"`
	TemplatesDir string `yaml:"templates"`
	PublicDir    string `yaml:"public"`
	Quick        bool   `yaml:"quick"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ContentDir:   "content",
		TemplatesDir: "templates",
		PublicDir:    "public",
	}
}

// Load reads the configuration file at path, applying defaults for any
// unset field and expanding environment variables in directory names. A
// missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- path is <site root>/ssg.yaml.
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, serrors.IO(path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, serrors.Decode(path, err)
	}
	cfg.applyDefaults()

	cfg.ContentDir = os.ExpandEnv(cfg.ContentDir)
	cfg.TemplatesDir = os.ExpandEnv(cfg.TemplatesDir)
	cfg.PublicDir = os.ExpandEnv(cfg.PublicDir)
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.ContentDir == "" {
		c.ContentDir = d.ContentDir
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = d.TemplatesDir
	}
	if c.PublicDir == "" {
		c.PublicDir = d.PublicDir
	}
}
