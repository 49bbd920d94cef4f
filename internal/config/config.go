package config

import (
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the full configuration snapshot for the bot. It is loaded once
// at startup and treated as immutable afterwards.
type Config struct {
	Bot      BotConfig      `toml:"bot"`
	Channels ChannelConfig  `toml:"channels"`
	Filters  FilterConfig   `toml:"filters"`
	Database DatabaseConfig `toml:"database"`
}

// BotConfig holds credentials, presence and schedule settings.
type BotConfig struct {
	Token    string `toml:"token"`
	Activity string `toml:"activity"`
	Status   string `toml:"status"`
	Timezone string `toml:"timezone"`

	// DaysAhead and ResetInterval control when the recurring wipe fires:
	// the first fire is DaysAhead days from startup at ResetHour:ResetMinute
	// local time, then every ResetInterval hours.
	DaysAhead     int `toml:"days_ahead"`
	ResetInterval int `toml:"reset_interval"`
	ResetHour     int `toml:"reset_hour"`
	ResetMinute   int `toml:"reset_minute"`
}

// ChannelConfig names the three channels the bot works with.
type ChannelConfig struct {
	Vent            int64 `toml:"vent"`
	VentLog         int64 `toml:"vent_log"`
	VentAttachments int64 `toml:"vent_attachments"`
}

// FilterConfig is the raw form of the history filter policy.
type FilterConfig struct {
	Webhooks bool    `toml:"webhooks"`
	Bots     bool    `toml:"bots"`
	Pinned   bool    `toml:"pinned"`
	System   bool    `toml:"system"`
	Messages []int64 `toml:"messages"`
	Authors  []int64 `toml:"authors"`
}

// DatabaseConfig configures the optional run-history database.
// An empty path disables run recording.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Default returns a Config with the defaults applied. Token and channel ids
// have no sane defaults and must come from the file.
func Default() *Config {
	return &Config{
		Bot: BotConfig{
			Activity:      "listening",
			Status:        "Screams of the innocent",
			Timezone:      "America/Los_Angeles",
			DaysAhead:     1,
			ResetInterval: 24,
		},
		Filters: FilterConfig{
			Webhooks: true,
			Bots:     true,
			Pinned:   true,
			System:   true,
		},
	}
}

// Read decodes a Config from the provided reader on top of the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "config: failed to decode")
	}
	return cfg, nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: failed to open %s", path)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	return cfg, nil
}

// Validate checks the fields without which the bot cannot start.
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return errors.New("config: bot.token is required")
	}
	if c.Channels.Vent == 0 {
		return errors.New("config: channels.vent is required")
	}
	if c.Channels.VentLog == 0 {
		return errors.New("config: channels.vent_log is required")
	}
	if c.Channels.VentAttachments == 0 {
		return errors.New("config: channels.vent_attachments is required")
	}
	if c.Bot.ResetInterval <= 0 {
		return errors.New("config: bot.reset_interval must be positive")
	}
	if c.Bot.ResetHour < 0 || c.Bot.ResetHour > 23 {
		return errors.New("config: bot.reset_hour must be within 0..23")
	}
	if c.Bot.ResetMinute < 0 || c.Bot.ResetMinute > 59 {
		return errors.New("config: bot.reset_minute must be within 0..59")
	}
	if _, err := time.LoadLocation(c.Bot.Timezone); err != nil {
		return errors.Wrapf(err, "config: invalid bot.timezone %q", c.Bot.Timezone)
	}
	return nil
}

// Location resolves the configured timezone. Validate must have passed.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Bot.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
