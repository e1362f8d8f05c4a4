package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// configFile is looked up in the working directory. Everything in it is
// caller-side policy; the engine itself imposes no size bound.
const configFile = "nqueens.toml"

// Config carries the CLI defaults that an optional nqueens.toml can
// override.
type Config struct {
	// MinSize and MaxSize bound the board sizes accepted for randomly
	// generated layouts. Layout files bypass the bounds.
	MinSize int `toml:"min_size"`
	MaxSize int `toml:"max_size"`

	// Strategy is the default search strategy.
	Strategy string `toml:"strategy"`
}

func defaultConfig() Config {
	return Config{
		MinSize:  1,
		MaxSize:  1000,
		Strategy: "mrv-lcv",
	}
}

// loadConfig returns the defaults merged with nqueens.toml when the file
// exists. A missing file is not an error; an unreadable or malformed one is.
func loadConfig() (Config, error) {
	config := defaultConfig()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(configFile, &config); err != nil {
		return Config{}, fmt.Errorf("cannot parse %v: %w", configFile, err)
	}

	if config.MinSize < 1 || config.MaxSize < config.MinSize {
		return Config{}, fmt.Errorf("invalid size bounds in %v: [%v, %v]", configFile, config.MinSize, config.MaxSize)
	}
	return config, nil
}
