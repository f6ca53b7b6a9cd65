// Package config loads cmd/subleqvm's host configuration: ROM path, batch
// size and screen geometry. Grounded on the toml-based config loader in
// lookbusy1344-arm_emulator/config/config.go, scaled down to the handful of
// settings a bit-exact interpreter host actually needs.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"subleq/vm"
)

// Config is the VM host's configuration, loaded from an optional toml file.
type Config struct {
	ROMPath        string `toml:"rom_path"`
	RAMCells       int    `toml:"ram_cells"`
	StepsPerFrame  int    `toml:"steps_per_frame"`
	FrameDumpPath  string `toml:"frame_dump_path"`
	FramesPerDump  int    `toml:"frames_per_dump"`
	Screen struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"screen"`
}

// Default returns the configuration used when no config file is present,
// matching spec.md §4.9 and §6.4's defaults.
func Default() *Config {
	cfg := &Config{
		ROMPath:       "data/rom.dat",
		RAMCells:      vm.DefaultRAMCells,
		StepsPerFrame: 1000000,
		FrameDumpPath: "",
		FramesPerDump: 0,
	}
	cfg.Screen.Width = vm.DefaultScreenWidth
	cfg.Screen.Height = vm.DefaultScreenHeight
	return cfg
}

// Load reads path if it exists, overlaying its values onto Default(); a
// missing file is not an error (spec.md §6.4 names no config file at all,
// this is a pure host-side addition).
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode failed")
	}
	return cfg, nil
}
