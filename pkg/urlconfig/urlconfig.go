// Package urlconfig manages the persisted enterprise-URL list: custom
// entries, disabled built-in defaults, and a schema version. A version
// mismatch on load resets to defaults rather than attempting migration.
package urlconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vaultgen/vaultgen/pkg/vault"
)

// SchemaVersion is bumped whenever the stored shape changes.
const SchemaVersion = 1

// CustomURL is one user-added enterprise URL.
type CustomURL struct {
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Config is the stored blob.
type Config struct {
	CustomUrls       []CustomURL `json:"customUrls"`
	DisabledDefaults []string    `json:"disabledDefaults"`
	Version          int         `json:"version"`
}

// Default returns an empty config at the current schema version.
func Default() *Config {
	return &Config{
		CustomUrls:       []CustomURL{},
		DisabledDefaults: []string{},
		Version:          SchemaVersion,
	}
}

// Load reads the config from path. Missing file, unparseable content, or a
// schema version mismatch all reset to defaults: stale local config must
// never block generation.
func Load(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.Version != SchemaVersion {
		return Default()
	}
	if cfg.CustomUrls == nil {
		cfg.CustomUrls = []CustomURL{}
	}
	if cfg.DisabledDefaults == nil {
		cfg.DisabledDefaults = []string{}
	}
	return &cfg
}

// Save writes the config to path.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding url config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("error writing url config: %w", err)
	}
	return nil
}

// Add appends a custom URL, rejecting duplicates.
func (c *Config) Add(url, category string) error {
	if url == "" {
		return errors.New("url must not be empty")
	}
	for _, existing := range c.CustomUrls {
		if existing.URL == url {
			return fmt.Errorf("url %q already present", url)
		}
	}
	c.CustomUrls = append(c.CustomUrls, CustomURL{URL: url, Category: category})
	return nil
}

// Remove deletes a custom URL; removing an absent URL is a no-op.
func (c *Config) Remove(url string) {
	out := c.CustomUrls[:0]
	for _, existing := range c.CustomUrls {
		if existing.URL != url {
			out = append(out, existing)
		}
	}
	c.CustomUrls = out
}

// SetDefaultDisabled toggles one of the built-in enterprise URLs.
func (c *Config) SetDefaultDisabled(url string, disabled bool) {
	set := mapset.NewSet[string]()
	for _, u := range c.DisabledDefaults {
		set.Add(u)
	}
	if disabled {
		set.Add(url)
	} else {
		set.Remove(url)
	}
	c.DisabledDefaults = set.ToSlice()
}

// Resolve flattens the config into the URL list generation consumes:
// custom URLs plus every built-in default not disabled.
func (c *Config) Resolve() []string {
	disabled := mapset.NewSet[string]()
	for _, u := range c.DisabledDefaults {
		disabled.Add(u)
	}
	var out []string
	for _, custom := range c.CustomUrls {
		out = append(out, custom.URL)
	}
	for _, def := range vault.DefaultEnterpriseSites {
		if !disabled.Contains(def) {
			out = append(out, def)
		}
	}
	return out
}
