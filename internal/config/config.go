package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Players   Players   `yaml:"players"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Players struct {
	One Player `yaml:"one" env-prefix:"PLAYER_ONE_"`
	Two Player `yaml:"two" env-prefix:"PLAYER_TWO_"`
}

// Player describes how a player is named and drawn. Color is an ANSI SGR code;
// 0 leaves the glyph uncolored unless both players leave it 0, then 31 and 33 apply.
type Player struct {
	Name  string `yaml:"name" env:"NAME"`
	Glyph string `yaml:"glyph" env:"GLYPH" env-default:"●"`
	Color int    `yaml:"color" env:"COLOR"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"TELEMETRY_ENABLED" env-default:"false"`
	ServiceName string `yaml:"service-name" env:"TELEMETRY_SERVICE_NAME" env-default:"connectfour"`
}

// MustLoad - load all configurations in config.yml file. A missing file falls back
// to environment variables and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, err
	}

	config.Players.applyDefaults()

	return config, nil
}

func (that *Players) applyDefaults() {
	if that.One.Name == "" {
		that.One.Name = "Player 1"
	}
	if that.Two.Name == "" {
		that.Two.Name = "Player 2"
	}
	if that.One.Color == 0 && that.Two.Color == 0 {
		that.One.Color = 31
		that.Two.Color = 33
	}
}
