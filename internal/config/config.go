// Package config loads the rescue-utils configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/ini.v1"
)

// DefaultPath is where the configuration file lives on a live ISO.
const DefaultPath = "/etc/rescue-utils/rescue-utils.ini"

// Config carries the tunables of the rescue subsystem.
type Config struct {
	// MountRoot is the directory under which an installed system is
	// assembled for repair.
	MountRoot string

	// TempDir is the base directory for btrfs probe mounts.
	TempDir string

	// ProbeTimeout bounds the btrfs probe's mount and query commands.
	ProbeTimeout time.Duration

	// CommandTimeout bounds every other privileged tool invocation.
	CommandTimeout time.Duration
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MountRoot:      "/mnt/chroot",
		TempDir:        os.TempDir(),
		ProbeTimeout:   10 * time.Second,
		CommandTimeout: 30 * time.Second,
	}
}

// Load reads the INI file at path, overlaying it on the defaults. A missing
// file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: cannot stat %s: %w", path, err)
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot load %s: %w", path, err)
	}

	sec := iniFile.Section("rescue")
	if v := sec.Key("mount_root").String(); v != "" {
		cfg.MountRoot = v
	}
	if v := sec.Key("temp_dir").String(); v != "" {
		cfg.TempDir = v
	}
	cfg.ProbeTimeout = sec.Key("probe_timeout").MustDuration(cfg.ProbeTimeout)
	cfg.CommandTimeout = sec.Key("command_timeout").MustDuration(cfg.CommandTimeout)

	return cfg, nil
}
