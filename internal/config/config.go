package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vukan322/statcards/internal/core"
	githubprovider "github.com/vukan322/statcards/internal/providers/github"
)

// Sentinel validation errors.
var (
	ErrMissingToken     = fmt.Errorf("%w: GITHUB_TOKEN is not defined", core.ErrConfiguration)
	ErrMissingLogin     = fmt.Errorf("%w: login is required", core.ErrConfiguration)
	ErrMissingOutputDir = fmt.Errorf("%w: output directory is required", core.ErrConfiguration)
	ErrInvalidTimeout   = fmt.Errorf("%w: timeout must be positive", core.ErrConfiguration)
)

// Default configuration values.
const (
	DefaultLogin     = "agneja00"
	DefaultOutputDir = "cards"
	DefaultTimeout   = 30 * time.Second

	envPrefix = "STATCARDS"
)

// Config holds everything one generation run needs.
type Config struct {
	Login     string          `mapstructure:"login"`
	OutputDir string          `mapstructure:"output_dir"`
	Token     string          `mapstructure:"token"`
	Endpoint  string          `mapstructure:"endpoint"`
	Timeout   time.Duration   `mapstructure:"timeout"`
	Demo      bool            `mapstructure:"demo"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Report    ReportConfig    `mapstructure:"report"`
	Colors    []ColorOverride `mapstructure:"colors"`
}

// ColorOverride replaces the palette color of one language. It is a list
// entry rather than a map key because viper lower-cases map keys.
type ColorOverride struct {
	Language string `mapstructure:"language"`
	Color    string `mapstructure:"color"`
}

// FilterConfig selects which repositories count toward the cards.
type FilterConfig struct {
	IncludeArchived bool `mapstructure:"include_archived"`
	IncludeForks    bool `mapstructure:"include_forks"`
}

// ReportConfig controls optional outputs besides the two SVG cards.
type ReportConfig struct {
	HTML bool `mapstructure:"html"`
}

func (c FilterConfig) RepositoryFilter() core.RepositoryFilter {
	return core.RepositoryFilter{
		IncludeArchived: c.IncludeArchived,
		IncludeForks:    c.IncludeForks,
	}
}

// ColorOverrides returns the configured palette overrides keyed by language.
func (c *Config) ColorOverrides() map[string]string {
	if len(c.Colors) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.Colors))
	for _, o := range c.Colors {
		if o.Language != "" {
			out[o.Language] = o.Color
		}
	}
	return out
}

// Load reads configuration from configPath (or statcards.yaml in the usual
// places when empty) and the environment. Values already set on v, such as
// bound CLI flags, take precedence. v may be nil.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("statcards")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("token", envPrefix+"_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("bind token env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("login", DefaultLogin)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("endpoint", githubprovider.DefaultEndpoint)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("demo", false)
	v.SetDefault("filter.include_archived", false)
	v.SetDefault("filter.include_forks", false)
	v.SetDefault("report.html", false)
}

// Validate checks the configuration. The token is only required when data is
// fetched from GitHub.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Login) == "" {
		return ErrMissingLogin
	}
	if c.OutputDir == "" {
		return ErrMissingOutputDir
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if !c.Demo && c.Token == "" {
		return ErrMissingToken
	}
	return nil
}
