package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects values the generator cannot work with.
func (c *Config) validate() error {
	w := &c.World
	if w.ChunkSize <= 0 {
		return fmt.Errorf("world.chunk_size must be positive, got %d", w.ChunkSize)
	}
	if w.GenerationRadius <= 0 {
		return fmt.Errorf("world.generation_radius must be positive, got %d", w.GenerationRadius)
	}
	if w.QueueCapacity <= 0 {
		return fmt.Errorf("world.queue_capacity must be positive, got %d", w.QueueCapacity)
	}
	if len(w.BiomeFactors) == 0 {
		return fmt.Errorf("world.biome_factors must not be empty")
	}
	if len(w.Octaves) == 0 {
		return fmt.Errorf("world.octaves must not be empty")
	}
	for i, o := range w.Octaves {
		if o.Wavelength <= 0 {
			return fmt.Errorf("world.octaves[%d].wavelength must be positive, got %v", i, o.Wavelength)
		}
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "VoxelGame")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "VoxelGame")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "voxel-game")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "voxel-game")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
