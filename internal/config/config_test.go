package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventkeeper/ventkeeper/internal/config"
)

const sampleConfig = `
[bot]
token = "secret"
activity = "watching"
status = "the vents"
timezone = "Europe/Berlin"
days_ahead = 2
reset_interval = 12
reset_hour = 3
reset_minute = 45

[channels]
vent = 111
vent_log = 222
vent_attachments = 333

[filters]
webhooks = false
bots = true
pinned = true
system = false
messages = [900, 901]
authors = [800]

[database]
path = "runs.db"
`

func TestReadFullConfig(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(sampleConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "secret", cfg.Bot.Token)
	assert.Equal(t, "watching", cfg.Bot.Activity)
	assert.Equal(t, "the vents", cfg.Bot.Status)
	assert.Equal(t, 2, cfg.Bot.DaysAhead)
	assert.Equal(t, 12, cfg.Bot.ResetInterval)
	assert.Equal(t, 3, cfg.Bot.ResetHour)
	assert.Equal(t, 45, cfg.Bot.ResetMinute)

	assert.Equal(t, int64(111), cfg.Channels.Vent)
	assert.Equal(t, int64(222), cfg.Channels.VentLog)
	assert.Equal(t, int64(333), cfg.Channels.VentAttachments)

	assert.False(t, cfg.Filters.Webhooks)
	assert.True(t, cfg.Filters.Bots)
	assert.Equal(t, []int64{900, 901}, cfg.Filters.Messages)
	assert.Equal(t, []int64{800}, cfg.Filters.Authors)

	assert.Equal(t, "runs.db", cfg.Database.Path)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}

func TestReadAppliesDefaults(t *testing.T) {
	minimal := `
[bot]
token = "secret"

[channels]
vent = 1
vent_log = 2
vent_attachments = 3
`
	cfg, err := config.Read(strings.NewReader(minimal))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "listening", cfg.Bot.Activity)
	assert.Equal(t, "America/Los_Angeles", cfg.Bot.Timezone)
	assert.Equal(t, 1, cfg.Bot.DaysAhead)
	assert.Equal(t, 24, cfg.Bot.ResetInterval)
	assert.Equal(t, 0, cfg.Bot.ResetHour)
	assert.True(t, cfg.Filters.Webhooks)
	assert.True(t, cfg.Filters.Pinned)
	assert.Empty(t, cfg.Database.Path)
}

func TestReadRejectsMalformedToml(t *testing.T) {
	_, err := config.Read(strings.NewReader("[bot\ntoken ="))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *config.Config {
		cfg := config.Default()
		cfg.Bot.Token = "secret"
		cfg.Channels = config.ChannelConfig{Vent: 1, VentLog: 2, VentAttachments: 3}
		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing token", func(c *config.Config) { c.Bot.Token = "" }},
		{"missing vent", func(c *config.Config) { c.Channels.Vent = 0 }},
		{"missing vent log", func(c *config.Config) { c.Channels.VentLog = 0 }},
		{"missing vent attachments", func(c *config.Config) { c.Channels.VentAttachments = 0 }},
		{"zero interval", func(c *config.Config) { c.Bot.ResetInterval = 0 }},
		{"bad hour", func(c *config.Config) { c.Bot.ResetHour = 24 }},
		{"bad minute", func(c *config.Config) { c.Bot.ResetMinute = 60 }},
		{"bad timezone", func(c *config.Config) { c.Bot.Timezone = "Mars/Olympus" }},
	}

	require.NoError(t, base().Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestReadFromFileMissing(t *testing.T) {
	_, err := config.ReadFromFile("does-not-exist.toml")
	assert.Error(t, err)
}
