package config

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"toolvision/internal/models"
)

const (
	DefaultConfigPath  string = "config.json"
	DefaultDetectorURL string = "http://localhost:8000"
	DefaultExpected    int    = 11

	EnvDetectorURL = "DETECTOR_URL"
)

type ParamsConfig struct {
	Confidence float64 `json:"confidence"`
	IoU        float64 `json:"iou"`
}

type WindowConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type Config struct {
	mu sync.RWMutex

	// detectorOverride comes from the environment and is never saved.
	detectorOverride string

	DetectorURL   string       `json:"detector_url"`
	ExpectedTools int          `json:"expected_tools"`
	Params        ParamsConfig `json:"params"`
	Window        WindowConfig `json:"window"`
}

func (c *Config) GetParams() models.Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.Params{Confidence: c.Params.Confidence, IoU: c.Params.IoU}
}

func (c *Config) SetParams(p models.Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Params = ParamsConfig{Confidence: p.Confidence, IoU: p.IoU}
}

func (c *Config) GetDetectorURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.detectorOverride != "" {
		return strings.TrimRight(c.detectorOverride, "/")
	}
	return strings.TrimRight(c.DetectorURL, "/")
}

func (c *Config) GetExpectedTools() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ExpectedTools
}

func (c *Config) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	c.mu.RLock()
	defer c.mu.RUnlock()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

func (c *Config) SaveByDefault() error {
	return c.Save(DefaultConfigPath)
}

// LoadConfigFile never fails: a missing or broken file yields defaults.
// DETECTOR_URL from the environment (or .env) wins over the file for the
// session but is not written back by Save.
func LoadConfigFile(path string) *Config {
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	if f, err := os.Open(path); err == nil {
		loaded := NewDefaultConfig()
		if err := json.NewDecoder(f).Decode(loaded); err == nil {
			cfg = loaded
		}
		f.Close()
	}

	if v := strings.TrimSpace(os.Getenv(EnvDetectorURL)); v != "" {
		cfg.detectorOverride = v
	}

	cfg.sanitize()
	return cfg
}

func (c *Config) sanitize() {
	if c.DetectorURL == "" {
		c.DetectorURL = DefaultDetectorURL
	}
	if c.ExpectedTools <= 0 {
		c.ExpectedTools = DefaultExpected
	}
	p := models.DefaultParams().
		WithConfidence(c.Params.Confidence).
		WithIoU(c.Params.IoU)
	c.Params = ParamsConfig{Confidence: p.Confidence, IoU: p.IoU}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window = WindowConfig{Width: 1200, Height: 760}
	}
}

func NewDefaultConfig() *Config {
	return &Config{
		DetectorURL:   DefaultDetectorURL,
		ExpectedTools: DefaultExpected,
		Params: ParamsConfig{
			Confidence: models.DefaultConfidence,
			IoU:        models.DefaultIoU,
		},
		Window: WindowConfig{Width: 1200, Height: 760},
	}
}
