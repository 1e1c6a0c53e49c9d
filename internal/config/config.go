// Package config loads and validates the blogd configuration file.
package config

import (
	"fmt"
	"net/url"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Server  ServerConfig  `yaml:"server"`
	Views   ViewsConfig   `yaml:"views"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig carries site-wide identity used by the feed renderer.
type SiteConfig struct {
	BaseURL     string `yaml:"base_url"`
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
}

// LocaleConfig describes one supported locale.
type LocaleConfig struct {
	Code            string `yaml:"code"`             // content subdirectory, e.g. "hu"
	Language        string `yaml:"language"`         // RSS language tag, e.g. "hu-HU"
	FeedTitle       string `yaml:"feed_title"`       // channel title for this locale
	FeedDescription string `yaml:"feed_description"` // channel description for this locale
}

// ContentConfig locates the content tree and its locales.
type ContentConfig struct {
	Dir           string         `yaml:"dir"`
	Locales       []LocaleConfig `yaml:"locales"`
	DefaultLocale string         `yaml:"default_locale"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ViewsConfig holds view-counter storage settings.
type ViewsConfig struct {
	Path string `yaml:"path"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFiles(); err != nil {
		// Don't fail if .env doesn't exist, just note it
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "https://your-domain.com"
	}
	if c.Content.Dir == "" {
		c.Content.Dir = "./content/posts"
	}
	if len(c.Content.Locales) == 0 {
		c.Content.Locales = []LocaleConfig{
			{Code: "hu", Language: "hu-HU", FeedTitle: "My Blog", FeedDescription: "Személyes blog technológiáról, életről és projektekről"},
			{Code: "en", Language: "en-US", FeedTitle: "My Blog - English", FeedDescription: "Personal blog about technology, life, and projects"},
		}
	}
	if c.Content.DefaultLocale == "" {
		c.Content.DefaultLocale = c.Content.Locales[0].Code
	}
	for i := range c.Content.Locales {
		if c.Content.Locales[i].Language == "" {
			c.Content.Locales[i].Language = c.Content.Locales[i].Code
		}
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Views.Path == "" {
		c.Views.Path = "./data/views.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = string(LogLevelInfo)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = string(LogFormatText)
	}
}

// Validate checks invariants the rest of the program relies on.
func (c *Config) Validate() error {
	if _, err := url.Parse(c.Site.BaseURL); err != nil {
		return fmt.Errorf("invalid site.base_url: %w", err)
	}
	if len(c.Content.Locales) == 0 {
		return fmt.Errorf("content.locales must not be empty")
	}
	seen := make(map[string]bool, len(c.Content.Locales))
	for _, loc := range c.Content.Locales {
		if loc.Code == "" {
			return fmt.Errorf("content.locales entries require a code")
		}
		if seen[loc.Code] {
			return fmt.Errorf("duplicate locale code %q", loc.Code)
		}
		seen[loc.Code] = true
		if _, err := language.Parse(loc.Language); err != nil {
			return fmt.Errorf("invalid language tag %q for locale %q: %w", loc.Language, loc.Code, err)
		}
	}
	if !seen[c.Content.DefaultLocale] {
		return fmt.Errorf("content.default_locale %q is not a configured locale", c.Content.DefaultLocale)
	}
	return nil
}

// LocaleCodes returns the configured locale codes in declaration order.
func (c *Config) LocaleCodes() []string {
	codes := make([]string, len(c.Content.Locales))
	for i, loc := range c.Content.Locales {
		codes[i] = loc.Code
	}
	return codes
}

// LocaleByCode looks up a locale definition by its code.
func (c *Config) LocaleByCode(code string) (LocaleConfig, bool) {
	for _, loc := range c.Content.Locales {
		if loc.Code == code {
			return loc, true
		}
	}
	return LocaleConfig{}, false
}
