package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for devtoolbox. Every
// field is optional; nil means "not set here".
type FileConfig struct {
	NoColor *bool   `yaml:"no_color"`
	Theme   *string `yaml:"theme"`

	// Contrast checker defaults
	Foreground *string `yaml:"foreground"`
	Background *string `yaml:"background"`
	Require    *string `yaml:"require"`

	JSONIndent *int `yaml:"json_indent"`

	UUIDCount     *int  `yaml:"uuid_count"`
	UUIDUppercase *bool `yaml:"uuid_uppercase"`
	UUIDNoDashes  *bool `yaml:"uuid_no_dashes"`

	CronCount *int `yaml:"cron_count"`

	QRSize  *int    `yaml:"qr_size"`
	QRLevel *string `yaml:"qr_level"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a project config file in dir.
// It supports .devtoolbox.yml/.yaml and devtoolbox.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".devtoolbox.yml", ".devtoolbox.yaml", "devtoolbox.yml", "devtoolbox.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "devtoolbox", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Load returns the local and global configs for dir. Missing files yield
// empty configs; only malformed files are reported.
func Load(dir string) (local, global FileConfig, err error) {
	if c, gerr := LoadGlobal(); gerr == nil {
		global = c
	} else if isParseError(gerr) {
		return local, global, gerr
	}
	if c, lerr := LoadLocal(dir); lerr == nil {
		local = c
	} else if isParseError(lerr) {
		return local, global, lerr
	}
	return local, global, nil
}

func isParseError(err error) bool {
	var te *yaml.TypeError
	if errors.As(err, &te) {
		return true
	}
	// yaml.v3 syntax errors are plain errors prefixed with "yaml:".
	return strings.HasPrefix(err.Error(), "yaml:")
}
