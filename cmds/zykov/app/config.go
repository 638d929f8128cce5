package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/goutils/generics"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

const CONFIG_NAME = ".zykov"

// Config is the content of a config file. Environment variables
// in a config file are expanded (${VAR} or $VAR).
type Config struct {
	Store    *string `json:"store,omitempty"`
	LogLevel *string `json:"logLevel,omitempty"`
	Strict   *bool   `json:"strict,omitempty"`
	Output   *string `json:"output,omitempty"`
	Layout   *string `json:"layout,omitempty"`
	Viewer   *string `json:"viewer,omitempty"`
}

// GetConfig merges the config files found in the home directory,
// the user config directory and the current directory, followed
// by the settings from the environment.
func GetConfig(fs vfs.FileSystem) *Config {
	var cfg Config

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_NAME)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, "zykov", "config.yaml")))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_NAME))

	if v := os.Getenv("ZYKOV_STORE"); v != "" {
		cfg.Store = generics.Pointer(v)
	}
	if v := os.Getenv("ZYKOV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = generics.Pointer(v)
	}
	if v := os.Getenv("ZYKOV_VIEWER"); v != "" {
		cfg.Viewer = generics.Pointer(v)
	}
	return &cfg
}

// ReadConfig reads a config file. Missing or invalid files are ignored.
func ReadConfig(fs vfs.FileSystem, path string) *Config {
	cfg, err := LoadConfig(fs, path)
	if err != nil {
		if !errors.Is(err, vfs.ErrNotExist) {
			log.Warn("ignoring config file {{path}}: {{error}}", "path", path, "error", err)
		}
		return nil
	}
	return cfg
}

// LoadConfig reads a config file.
func LoadConfig(fs vfs.FileSystem, path string) (*Config, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal([]byte(expanded), &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Store != nil {
		cfg.Store = add.Store
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
	if add.Strict != nil {
		cfg.Strict = add.Strict
	}
	if add.Output != nil {
		cfg.Output = add.Output
	}
	if add.Layout != nil {
		cfg.Layout = add.Layout
	}
	if add.Viewer != nil {
		cfg.Viewer = add.Viewer
	}
}
