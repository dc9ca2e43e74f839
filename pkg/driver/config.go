package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ci-foundry/vmcat/pkg/machine"
	"github.com/ci-foundry/vmcat/pkg/platform"
)

const (
	defaultMaxWaitTime  = 600
	defaultMaxRetries   = 1
	defaultPollInterval = 5
)

// Config is the driver configuration surface.
type Config struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`

	// MaxWaitTime is the wall-clock budget, in seconds, for each poll
	// phase.
	MaxWaitTime int `yaml:"max_wait_time"`

	// MaxRetries is the number of additional failing poll attempts
	// tolerated before a transient error becomes fatal. Explicit zero is
	// honored.
	MaxRetries *int `yaml:"max_retries"`

	// PollInterval is the sleep between poll cycles, in seconds.
	PollInterval int `yaml:"poll_interval"`

	Bootstrap Bootstrap       `yaml:"bootstrap"`
	Transport machine.Options `yaml:"transport"`
}

// Bootstrap holds the per-machine provisioning inputs.
type Bootstrap struct {
	CatalogID       string               `yaml:"catalog_id"`
	CPUs            int                  `yaml:"cpus"`
	MemoryMB        int                  `yaml:"memory"`
	RequestedFor    string               `yaml:"requested_for"`
	LeaseDays       *int                 `yaml:"lease_days"`
	SubtenantID     string               `yaml:"subtenant_id"`
	ExtraParameters []platform.Parameter `yaml:"extra_parameters"`
}

// LoadConfig reads a YAML config file and applies defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("error in config file %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.MaxWaitTime <= 0 {
		c.MaxWaitTime = defaultMaxWaitTime
	}
	if c.MaxRetries == nil {
		retries := defaultMaxRetries
		c.MaxRetries = &retries
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
}
