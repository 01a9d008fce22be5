package orion

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oliverbestmann/cadence/glimpse"
	"github.com/oliverbestmann/cadence/timestep"
	"gopkg.in/yaml.v3"
)

// Config is the file based configuration of RunGameOptions:
//
//	window:
//	  width: 1280
//	  height: 720
//	  title: Drift
//	  maxFps: 60
//	update:
//	  rate: 120/s
//	  maxCatchUp: 8
//	profile: false
//	debug: true
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Update  UpdateConfig `yaml:"update"`
	Profile bool         `yaml:"profile"`
	Debug   bool         `yaml:"debug"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	MaxFPS int    `yaml:"maxFps"`
}

type UpdateConfig struct {
	Rate       timestep.UpdateRate `yaml:"rate"`
	MaxCatchUp int                 `yaml:"maxCatchUp"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a yaml config. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var config Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if config.Window.Width < 0 || config.Window.Height < 0 {
		return Config{}, errors.New("window size must not be negative")
	}

	if config.Update.MaxCatchUp < 0 {
		return Config{}, errors.New("maxCatchUp must not be negative")
	}

	return config, nil
}

// Options builds the options to run the given game with this config.
func (c Config) Options(game Game, openWindow glimpse.Opener) RunGameOptions {
	return RunGameOptions{
		Game:         game,
		OpenWindow:   openWindow,
		WindowWidth:  c.Window.Width,
		WindowHeight: c.Window.Height,
		WindowTitle:  c.Window.Title,
		MaxFPS:       c.Window.MaxFPS,
		UpdateRate:   c.Update.Rate,
		MaxCatchUp:   c.Update.MaxCatchUp,
		Profile:      c.Profile,
		Debug:        c.Debug,
	}
}
