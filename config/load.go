package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a settings file. Sections left out of the
// file keep their defaults.
type File struct {
	Camera     CameraConfig     `yaml:"camera"`
	Controller ControllerConfig `yaml:"controller"`
}

// DefaultFile returns a File holding the stock configuration.
func DefaultFile() File {
	return File{
		Camera:     DefaultCamera(),
		Controller: DefaultController(),
	}
}

// Parse overlays YAML data onto the defaults and validates the result.
func Parse(data []byte) (File, error) {
	f := DefaultFile()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := f.Camera.Validate(); err != nil {
		return File{}, fmt.Errorf("config: camera: %w", err)
	}
	if err := f.Controller.Validate(); err != nil {
		return File{}, fmt.Errorf("config: controller: %w", err)
	}
	return f, nil
}

// LoadFile reads and parses a settings file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadCameraConfig reads only the camera section of a settings file.
func LoadCameraConfig(path string) (CameraConfig, error) {
	f, err := LoadFile(path)
	if err != nil {
		return CameraConfig{}, err
	}
	return f.Camera, nil
}

// Marshal renders a File back to YAML.
func (f File) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
