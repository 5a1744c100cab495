package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "mocap.toml"

// EnvPrefix prefixes environment overrides, e.g. MOCAP_CLEAN_INPUT.
const EnvPrefix = "MOCAP"

type Config struct {
	Clean CleanConfig `toml:"clean"`
	Plot  PlotConfig  `toml:"plot"`
}

type CleanConfig struct {
	Input  string `toml:"input" validate:"required"`
	Output string `toml:"output" validate:"required"`
}

type PlotConfig struct {
	// Input is the cleaned file; it defaults to Clean.Output.
	Input     string   `toml:"input"`
	Dir       string   `toml:"dir" validate:"required"`
	Types     []string `toml:"types" validate:"required,min=1,dive,required"`
	Subject   string   `toml:"subject"`
	GroupKey  string   `toml:"group_key" split_words:"true" validate:"oneof=Subject Type Part Side"`
	Format    string   `toml:"format" validate:"oneof=png svg"`
	Width     int      `toml:"width" validate:"min=200,max=8000"`
	Height    int      `toml:"height" validate:"min=200,max=8000"`
	Azimuth   float64  `toml:"azimuth"`
	Elevation float64  `toml:"elevation" validate:"min=-90,max=90"`
	Show      bool     `toml:"show"`
}

// Default lays files out under data/ and selects the R and L types.
func Default() *Config {
	return &Config{
		Clean: CleanConfig{
			Input:  filepath.Join("data", "Results.txt"),
			Output: filepath.Join("data", "CleanedResults.csv"),
		},
		Plot: PlotConfig{
			Dir:       filepath.Join("data", "plots"),
			Types:     []string{"R", "L"},
			GroupKey:  "Type",
			Format:    "png",
			Width:     1200,
			Height:    1200,
			Azimuth:   -60,
			Elevation: 30,
		},
	}
}

// Load builds the configuration from defaults, then the TOML file at path
// (or DefaultFile if path is empty and it exists), then MOCAP_* variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	cfgPath := path
	if cfgPath == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgPath = DefaultFile
		}
	}
	if cfgPath != "" {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.Finish()
	return cfg, nil
}

// Finish fills derived values. Call it again after applying flag overrides.
func (c *Config) Finish() {
	home, _ := os.UserHomeDir()
	c.Clean.Input = expandHome(c.Clean.Input, home)
	c.Clean.Output = expandHome(c.Clean.Output, home)
	c.Plot.Dir = expandHome(c.Plot.Dir, home)
	if c.Plot.Input == "" {
		c.Plot.Input = c.Clean.Output
	}
	c.Plot.Input = expandHome(c.Plot.Input, home)
}

var validate = validator.New()

// Validate checks the configuration against its field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func expandHome(path, home string) string {
	if home != "" && len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
