package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/particles"
)

const (
	DefaultPort    = "8080"
	DefaultDataDir = ".folio"
	DefaultFPS     = 30
)

type Config struct {
	Port        string          `yaml:"port"`
	GinMode     string          `yaml:"gin_mode"`
	DataDir     string          `yaml:"data_dir"`
	Theme       string          `yaml:"theme"`
	PrefersDark bool            `yaml:"prefers_dark"`
	Particles   ParticlesConfig `yaml:"particles"`
	Carousel    CarouselConfig  `yaml:"carousel"`
}

type ParticlesConfig struct {
	particles.Tunables `yaml:",inline"`
	FPS                int `yaml:"fps"`
}

type CarouselConfig struct {
	Autoplay bool          `yaml:"autoplay"`
	Interval time.Duration `yaml:"interval"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:        DefaultPort,
		DataDir:     DefaultDataDir,
		Theme:       "system",
		PrefersDark: true,
		Particles: ParticlesConfig{
			Tunables: particles.Tunables{
				Cap:          particles.DefaultCap,
				Density:      particles.DefaultDensity,
				LinkDistance: particles.DefaultLinkDistance,
			},
			FPS: DefaultFPS,
		},
		Carousel: CarouselConfig{
			Autoplay: true,
			Interval: carousel.DefaultInterval,
		},
	}
}

// Load reads defaults, then the YAML file at path if one is given, then
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := getenv("GIN_MODE"); v != "" {
		c.GinMode = v
	}
	if v := getenv("DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := getenv("THEME"); v != "" {
		c.Theme = v
	}
}

func (c *Config) validate() error {
	if _, err := particles.ParseMode(c.Theme, c.PrefersDark); err != nil {
		return err
	}
	if c.Particles.FPS <= 0 {
		return fmt.Errorf("particles.fps must be positive, got %d", c.Particles.FPS)
	}
	if c.Carousel.Interval <= 0 {
		return fmt.Errorf("carousel.interval must be positive, got %s", c.Carousel.Interval)
	}
	return nil
}

// DBPath is the sqlite file holding local preferences.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "folio.db")
}

func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Particles.FPS)
}
