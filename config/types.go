package config

import (
	"time"

	"github.com/karwen/songlink"
)

// Config represents the complete configuration structure
type Config struct {
	SongLink SongLinkConfig `mapstructure:"songlink"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SongLinkConfig holds song.link API connection details
type SongLinkConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	APIURL         string        `mapstructure:"api_url"`
	APIVersion     string        `mapstructure:"api_version"`
	APITimeout     time.Duration `mapstructure:"api_timeout"`
	Proxies        []string      `mapstructure:"proxies"`
	AlwaysUseProxy bool          `mapstructure:"always_use_proxy"`
	FastJSON       bool          `mapstructure:"fast_json"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ClientConfig converts the file configuration into a songlink.Config
func (c *Config) ClientConfig() songlink.Config {
	return songlink.Config{
		APIKey:         c.SongLink.APIKey,
		APIURL:         c.SongLink.APIURL,
		APIVersion:     c.SongLink.APIVersion,
		APITimeout:     c.SongLink.APITimeout,
		Proxies:        c.SongLink.Proxies,
		AlwaysUseProxy: c.SongLink.AlwaysUseProxy,
		FastJSON:       c.SongLink.FastJSON,
	}
}
