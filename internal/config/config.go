package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/matheuskafuri/techtell/internal/aggregator"
	"github.com/matheuskafuri/techtell/internal/cache"
	"github.com/matheuskafuri/techtell/internal/feed"
	"github.com/matheuskafuri/techtell/internal/registry"
	"github.com/matheuskafuri/techtell/internal/render"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Environment overrides, applied after the config file.
const (
	EnvArticleLimit  = "TECHTELL_ARTICLE_LIMIT"
	EnvCacheDuration = "TECHTELL_CACHE_DURATION"
	EnvFetchTimeout  = "TECHTELL_FETCH_TIMEOUT"
)

type Config struct {
	ArticleLimit         int               `yaml:"article_limit"`
	CacheDuration        string            `yaml:"cache_duration"`
	FetchTimeout         string            `yaml:"fetch_timeout"`
	TitleMaxLength       int               `yaml:"title_max_length"`
	DescriptionMaxLength int               `yaml:"description_max_length"`
	Sources              []registry.Source `yaml:"sources"`
}

func (c *Config) GetArticleLimit() int {
	if c.ArticleLimit <= 0 {
		return aggregator.DefaultLimit
	}
	return c.ArticleLimit
}

// CacheTTL returns how long fetched sources stay cached. Accepts Go
// durations, "Nd" days, or a bare number of seconds.
func (c *Config) CacheTTL() time.Duration {
	return parseDuration(c.CacheDuration, cache.DefaultDuration)
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	return parseDuration(c.FetchTimeout, feed.DefaultTimeout)
}

func (c *Config) GetTitleMax() int {
	if c.TitleMaxLength <= 0 {
		return render.DefaultTitleMax
	}
	return c.TitleMaxLength
}

func (c *Config) GetDescriptionMax() int {
	if c.DescriptionMaxLength <= 0 {
		return render.DefaultDescriptionMax
	}
	return c.DescriptionMaxLength
}

// Registry builds a fresh source registry seeded from the configured sources.
func (c *Config) Registry() *registry.Registry {
	return registry.New(c.Sources...)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(s); err == nil {
		if secs <= 0 {
			return fallback
		}
		return time.Duration(secs) * time.Second
	}
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "techtell", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (DefaultConfigPath when empty), fills unset
// values from the embedded defaults and applies environment overrides. A
// missing file is not an error: the defaults are written there and used.
func Load(path string) (*Config, error) {
	// Optional .env; absence is fine.
	_ = godotenv.Load()

	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Non-fatal: the embedded defaults still apply.
		_ = writeDefaults(path)
		if err := applyEnv(defaults, os.Getenv); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	mergeDefaults(&cfg, defaults)
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// mergeDefaults fills zero scalars from defaults and appends default sources
// the user did not name. User sources keep their URLs and come first.
func mergeDefaults(cfg, defaults *Config) {
	if cfg.ArticleLimit <= 0 {
		cfg.ArticleLimit = defaults.ArticleLimit
	}
	if cfg.CacheDuration == "" {
		cfg.CacheDuration = defaults.CacheDuration
	}
	if cfg.FetchTimeout == "" {
		cfg.FetchTimeout = defaults.FetchTimeout
	}
	if cfg.TitleMaxLength <= 0 {
		cfg.TitleMaxLength = defaults.TitleMaxLength
	}
	if cfg.DescriptionMaxLength <= 0 {
		cfg.DescriptionMaxLength = defaults.DescriptionMaxLength
	}

	seen := make(map[string]bool, len(cfg.Sources))
	for _, s := range cfg.Sources {
		seen[s.Name] = true
	}
	for _, s := range defaults.Sources {
		if !seen[s.Name] {
			cfg.Sources = append(cfg.Sources, s)
		}
	}
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvArticleLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: expected a positive integer, got %q", EnvArticleLimit, v)
		}
		cfg.ArticleLimit = n
	}
	if v := getenv(EnvCacheDuration); v != "" {
		cfg.CacheDuration = v
	}
	if v := getenv(EnvFetchTimeout); v != "" {
		cfg.FetchTimeout = v
	}
	return nil
}

func validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Sources))
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("source %q: defined more than once", s.Name)
		}
		seen[s.Name] = true
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Name)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("source %q: invalid url: %w", s.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Name, u.Scheme)
		}
	}
	if cfg.ArticleLimit < 0 {
		return fmt.Errorf("article_limit must not be negative, got %d", cfg.ArticleLimit)
	}
	return nil
}
