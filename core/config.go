package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the viewer settings loaded from a TOML file.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	Resizable  bool         `toml:"resizable"`
	VSync      bool         `toml:"vsync"`
	TextureDir string       `toml:"texture_dir"`
	LogLevel   string       `toml:"log_level"`
	Camera     CameraConfig `toml:"camera"`
}

type CameraConfig struct {
	MoveSpeed   float32 `toml:"move_speed"`
	LookSpeed   float32 `toml:"look_speed"`
	FieldOfView float32 `toml:"field_of_view"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "Room Renderer",
		Width:      1280,
		Height:     720,
		Resizable:  true,
		VSync:      true,
		TextureDir: "textures",
		LogLevel:   "info",
		Camera: CameraConfig{
			MoveSpeed:   10.0,
			LookSpeed:   0.1,
			FieldOfView: 60.0,
		},
	}
}

// LoadConfig reads a TOML config file, filling in defaults for anything the
// file leaves out. A missing file is not an error; the defaults are used.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}
