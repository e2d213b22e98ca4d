package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-pitchroll/curve"
	"go-pitchroll/debug"
	"go-pitchroll/editor"
	"go-pitchroll/geom"
)

// EditorConfig holds canvas geometry and interaction tuning
type EditorConfig struct {
	RowHeight        float64 `json:"rowHeight,omitempty"`
	Rows             int     `json:"rows,omitempty"`
	GridUnit         float64 `json:"gridUnit,omitempty"`
	Width            float64 `json:"width,omitempty"`
	Subdivision      string  `json:"subdivision,omitempty"`
	PointThreshold   float64 `json:"pointThreshold,omitempty"`
	CurveThreshold   float64 `json:"curveThreshold,omitempty"`
	MaxSegmentLength float64 `json:"maxSegmentLength,omitempty"`
	ResizeHandle     float64 `json:"resizeHandle,omitempty"`
	MinResizeWidth   float64 `json:"minResizeWidth,omitempty"`
	DefaultLyric     string  `json:"defaultLyric,omitempty"`

	Interpolation  curve.Shape `json:"interpolation"`
	HermiteTension float64     `json:"hermiteTension,omitempty"`
	Exponent       float64     `json:"exponent,omitempty"`
	Samples        int         `json:"samples,omitempty"`
}

// UIConfig stores UI preferences
type UIConfig struct {
	Palette  string  `json:"palette,omitempty"`  // path to a .gpl file
	ColWidth float64 `json:"colWidth,omitempty"` // canvas px per terminal column
	Layer    string  `json:"layer,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Editor EditorConfig `json:"editor"`
	UI     UIConfig     `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	s := editor.DefaultSettings()
	return &Config{
		Editor: EditorConfig{
			RowHeight:        s.RowHeight,
			Rows:             s.Rows,
			GridUnit:         s.GridUnit,
			Width:            s.Width,
			Subdivision:      string(s.Subdivision),
			PointThreshold:   s.PointThreshold,
			CurveThreshold:   s.CurveThreshold,
			MaxSegmentLength: s.MaxSegmentLength,
			ResizeHandle:     s.ResizeHandle,
			MinResizeWidth:   s.MinResizeWidth,
			DefaultLyric:     s.DefaultLyric,
			Interpolation:    s.Shape,
			HermiteTension:   s.Curve.Tension,
			Exponent:         s.Curve.Exponent,
			Samples:          s.Curve.Samples,
		},
		UI: UIConfig{
			ColWidth: geom.Sixteenth.Pixels(geom.GridUnit),
			Layer:    editor.LayerNotes.String(),
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-pitchroll"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadDefault reads ~/.config/go-pitchroll/config.json, or returns defaults
// if there is no home directory
func LoadDefault() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Load reads the config at path over the defaults. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			debug.Log(debug.CatConfig, "no config at %s, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	debug.Log(debug.CatConfig, "loaded %s", path)
	return cfg, nil
}

// Save writes the config to path, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the config can build an editor session
func (c *Config) Validate() error {
	if _, err := editor.ParseLayer(c.UI.Layer); err != nil {
		return err
	}
	if c.UI.ColWidth <= 0 {
		return errors.New("colWidth must be positive")
	}
	_, err := c.Settings()
	return err
}

// Settings converts the editor section into session settings
func (c *Config) Settings() (editor.Settings, error) {
	e := c.Editor
	sub, err := geom.ParseSubdivision(e.Subdivision)
	if err != nil {
		return editor.Settings{}, err
	}

	s := editor.Settings{
		RowHeight:        e.RowHeight,
		Rows:             e.Rows,
		GridUnit:         e.GridUnit,
		Width:            e.Width,
		Subdivision:      sub,
		PointThreshold:   e.PointThreshold,
		CurveThreshold:   e.CurveThreshold,
		MaxSegmentLength: e.MaxSegmentLength,
		ResizeHandle:     e.ResizeHandle,
		MinResizeWidth:   e.MinResizeWidth,
		DefaultLyric:     e.DefaultLyric,
		Shape:            e.Interpolation,
		Curve: curve.Options{
			Tension:  e.HermiteTension,
			Exponent: e.Exponent,
			Samples:  e.Samples,
		},
	}
	if err := s.Validate(); err != nil {
		return editor.Settings{}, err
	}
	return s, nil
}
