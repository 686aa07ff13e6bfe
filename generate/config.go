package generate

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "PROXYGEN"

type ProxyConfig struct {
	Interface string `mapstructure:"interface" yaml:"interface"`
	Name      string `mapstructure:"name" yaml:"name"`
	Output    string `mapstructure:"output" yaml:"output"`
	// Package overrides Config.Package for this proxy.
	Package string `mapstructure:"package" yaml:"package,omitempty"`
}

// Config describes a batch of proxies to generate.
type Config struct {
	Package   string        `mapstructure:"package" yaml:"package"`
	OutputDir string        `mapstructure:"output_dir" yaml:"output_dir"`
	Proxies   []ProxyConfig `mapstructure:"proxies" yaml:"proxies"`
}

// ReadConfig loads a config file. Top level keys can be overridden with
// PROXYGEN_* environment variables.
func ReadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	return LoadConfig(v)
}

// LoadConfig decodes a config from an already populated viper instance.
func LoadConfig(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"package", "output_dir"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if len(c.Proxies) == 0 {
		errs = append(errs, errors.New("no proxies configured"))
	}
	for i, p := range c.Proxies {
		if p.Interface == "" {
			errs = append(errs, fmt.Errorf("proxies[%d]: interface is required", i))
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("proxies[%d]: name is required", i))
		}
		if p.Output == "" {
			errs = append(errs, fmt.Errorf("proxies[%d]: output is required", i))
		}
		if c.PackageFor(p) == "" {
			errs = append(errs, fmt.Errorf("proxies[%d]: package is required", i))
		}
	}

	return errors.Join(errs...)
}

func (c *Config) PackageFor(p ProxyConfig) string {
	if p.Package != "" {
		return p.Package
	}

	return c.Package
}

// OutputFor resolves p.Output against OutputDir unless it is absolute.
func (c *Config) OutputFor(p ProxyConfig) string {
	if filepath.IsAbs(p.Output) || c.OutputDir == "" {
		return p.Output
	}

	return filepath.Join(c.OutputDir, p.Output)
}

func SampleConfig() *Config {
	return &Config{
		Package:   "proxies",
		OutputDir: "./proxies",
		Proxies: []ProxyConfig{
			{
				Interface: "io.ReadWriter",
				Name:      "ReadWriterProxy",
				Output:    "read_writer_proxy.go",
			},
		},
	}
}

func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return enc.Close()
}
