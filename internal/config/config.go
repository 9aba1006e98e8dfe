// Package config loads the server options from a JSON file and the
// environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ferdiebergado/boring/internal/pkg/env"
	timex "github.com/ferdiebergado/boring/internal/pkg/time"
)

type ServerOptions struct {
	Port            int            `json:"port,omitempty" env:"PORT"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty" env:"READ_TIMEOUT"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty" env:"WRITE_TIMEOUT"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty" env:"IDLE_TIMEOUT"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty" env:"SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" env:"MAX_BODY_BYTES"`
	AllowedOrigin   string         `json:"allowed_origin,omitempty" env:"ALLOWED_ORIGIN"`
}

type StorageOptions struct {
	DataDir string `json:"data_dir,omitempty" env:"DATA_DIR"`
}

type StaticOptions struct {
	Dir   string `json:"dir,omitempty" env:"STATIC_DIR"`
	Index string `json:"index,omitempty"`
}

type LLMOptions struct {
	Model string `json:"model,omitempty" env:"GEMINI_MODEL"`
}

type Options struct {
	Server  *ServerOptions  `json:"server,omitempty"`
	Storage *StorageOptions `json:"storage,omitempty"`
	Static  *StaticOptions  `json:"static,omitempty"`
	LLM     *LLMOptions     `json:"llm,omitempty"`
}

func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", o.Server),
		slog.Any("storage", o.Storage),
		slog.Any("static", o.Static),
		slog.Any("llm", o.LLM),
	)
}

// Default returns the options used for anything the config file leaves out.
func Default() *Options {
	return &Options{
		Server: &ServerOptions{
			Port:            8080,
			ReadTimeout:     timex.Duration{Duration: 5 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 10 * time.Second},
			IdleTimeout:     timex.Duration{Duration: 60 * time.Second},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
			MaxBodyBytes:    1 << 20,
		},
		Storage: &StorageOptions{
			DataDir: "data",
		},
		Static: &StaticOptions{
			Dir:   "web",
			Index: "index.html",
		},
		LLM: &LLMOptions{},
	}
}

// Load reads cfgFile over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(cfgFile string) (*Options, error) {
	slog.Info("Loading config...")
	opts := Default()

	if err := parseCfgFile(cfgFile, opts); err != nil {
		return nil, err
	}

	if err := env.OverrideStruct(opts); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", opts))
	return opts, nil
}

func parseCfgFile(cfgFile string, opts *Options) error {
	cfgFile = filepath.Clean(cfgFile)
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Config file not found, using defaults.", "config_file", cfgFile)
			return nil
		}
		return fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	if err := json.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return nil
}
