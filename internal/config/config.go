// Package config handles client configuration loading and management.
package config

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	World    WorldConfig    `yaml:"world"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds camera projection and movement settings.
type CameraConfig struct {
	FOVDegrees  float32 `yaml:"fov_degrees"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	MoveSpeed   float32 `yaml:"move_speed"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// Octave is one noise layer of the terrain height function.
type Octave struct {
	Wavelength float32 `yaml:"wavelength"`
	Amplitude  float32 `yaml:"amplitude"`
}

// WorldConfig holds terrain generation settings.
type WorldConfig struct {
	Seed             int64   `yaml:"seed"`
	ChunkSize        int     `yaml:"chunk_size"`
	GenerationRadius int     `yaml:"generation_radius"`
	MaxChunks        int     `yaml:"max_chunks"`
	MaxWorldObjects  int     `yaml:"max_world_objects"`
	MaxHeight        float32 `yaml:"max_height"`
	TerrainScale     float32 `yaml:"terrain_scale"`
	NormalDelta      float32 `yaml:"normal_delta"`

	// BiomeFactors scales terrain height per biome band; the band is
	// selected from the low-frequency biome noise. Length defines the
	// biome count.
	BiomeFactors []float32 `yaml:"biome_factors"`
	Octaves      []Octave  `yaml:"octaves"`

	QueueCapacity        int `yaml:"queue_capacity"`
	GenerationIntervalMS int `yaml:"generation_interval_ms"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOVDegrees:  70,
			Near:        0.1,
			Far:         1000,
			MoveSpeed:   40,
			Sensitivity: 0.15,
		},
		World: WorldConfig{
			Seed:             0,
			ChunkSize:        16,
			GenerationRadius: 10,
			MaxChunks:        1000,
			MaxWorldObjects:  100,
			MaxHeight:        64,
			TerrainScale:     10,
			NormalDelta:      0.25,
			BiomeFactors:     []float32{0.15, 0.4, 0.7, 1.0},
			Octaves: []Octave{
				{Wavelength: 24, Amplitude: 1.0},
				{Wavelength: 12, Amplitude: 0.5},
				{Wavelength: 6, Amplitude: 0.25},
				{Wavelength: 3, Amplitude: 0.125},
			},
			QueueCapacity:        64,
			GenerationIntervalMS: 250,
		},
		Game: GameConfig{
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
