package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/limaJavier/npnclass/pkg/enumerate"
	"github.com/limaJavier/npnclass/pkg/npn"
	"github.com/mitchellh/mapstructure"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Enumeration drives an enumeration run. Workers == 1 runs sequentially, 0 uses every CPU.
type Enumeration struct {
	NumVars       int    `mapstructure:"vars"`
	Mode          string `mapstructure:"mode"`
	Workers       int    `mapstructure:"workers"`
	ProgressEvery uint64 `mapstructure:"progressEvery"`
	Print         bool   `mapstructure:"print"`
}

func Default() Enumeration {
	return Enumeration{
		NumVars: 3,
		Mode:    enumerate.ModeNPN.String(),
		Workers: 1,
	}
}

// FromJson reads an enumeration config, fields missing from the file keep their default value
func FromJson(file string) (Enumeration, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Enumeration{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Enumeration{}, fmt.Errorf("cannot parse config file %v: %w", file, err)
	}
	return FromMap(configJson)
}

func FromMap(raw map[string]any) (Enumeration, error) {
	config := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return Enumeration{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Enumeration{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return config, config.Validate()
}

func (config Enumeration) Validate() error {
	mode, err := config.EnumerationMode()
	if err != nil {
		return err
	}

	// Self-dual modes canonicalize one variable wider than they enumerate
	maxVars := npn.MaxCanonicalVars - mode.RepresentativeVars(0)
	if config.Workers != 1 {
		maxVars = min(maxVars, enumerate.MaxParallelVars)
	}

	if config.NumVars < 0 || config.NumVars > maxVars {
		return fmt.Errorf("%w: vars must be between 0 and %d in %v mode with %d workers, got %d", ErrInvalidConfig, maxVars, mode, config.Workers, config.NumVars)
	} else if config.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative, got %d", ErrInvalidConfig, config.Workers)
	}
	return nil
}

func (config Enumeration) EnumerationMode() (enumerate.Mode, error) {
	mode, err := enumerate.ParseMode(config.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return mode, nil
}
