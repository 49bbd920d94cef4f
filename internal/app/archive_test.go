package app_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventkeeper/ventkeeper/internal/app"
)

func TestBuildManifest(t *testing.T) {
	ch := app.Channel{ID: 100, GuildID: 200, Name: "vent"}
	msgs := []app.Message{
		msg(1, func(m *app.Message) {
			m.Content = "first"
			m.EmbedCount = 2
			m.Attachments = []app.Attachment{{Filename: "a.png", SizeBytes: 10}}
		}),
		msg(2, func(m *app.Message) {
			m.AuthorName = "renamed"
			m.AuthorDisplayName = "Display"
		}),
	}
	date := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	m := app.BuildManifest(ch, msgs, date)

	assert.Equal(t, "vent", m.Data.ChannelName)
	assert.Equal(t, int64(100), m.Data.ChannelID)
	assert.Equal(t, int64(200), m.Data.GuildID)
	assert.Equal(t, "2024-03-01", m.Data.Date)

	require.Len(t, m.Messages, 2)
	assert.Equal(t, len(msgs), m.Data.MessageCount)

	assert.Equal(t, int64(1), m.Messages[0].MessageID)
	assert.Equal(t, "first", m.Messages[0].Content)
	assert.Equal(t, 2, m.Messages[0].EmbedCount)
	assert.Equal(t, 1, m.Messages[0].AttachmentCount)

	assert.Equal(t, "renamed", m.Messages[1].AuthorName)
	assert.Equal(t, "Display", m.Messages[1].AuthorDisplayName)
}

func TestManifestCountMatchesMessages(t *testing.T) {
	ch := app.Channel{ID: 1, GuildID: 2, Name: "vent"}
	for n := 0; n < 5; n++ {
		msgs := make([]app.Message, n)
		for i := range msgs {
			msgs[i] = msg(int64(i + 1))
		}
		m := app.BuildManifest(ch, msgs, time.Now())
		assert.Equal(t, n, m.Data.MessageCount)
		assert.Len(t, m.Messages, n)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	ch := app.Channel{ID: 100, GuildID: 200, Name: "vent"}
	msgs := []app.Message{msg(1), msg(2), msg(3)}

	original := app.BuildManifest(ch, msgs, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	encoded, err := original.Encode()
	require.NoError(t, err)

	decoded, err := app.DecodeManifest(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestManifestWireFormat(t *testing.T) {
	ch := app.Channel{ID: 100, GuildID: 200, Name: "vent"}
	m := app.BuildManifest(ch, []app.Message{msg(7)}, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	encoded, err := m.Encode()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &raw))
	require.Contains(t, raw, "data")
	require.Contains(t, raw, "messages")

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["data"], &data))
	assert.Equal(t, "vent", data["name"])
	assert.Equal(t, float64(200), data["server-id"])
	assert.Equal(t, float64(1), data["messages"])
	assert.Equal(t, "2024-03-01", data["date"])

	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["messages"], &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, float64(7), entries[0]["message-id"])
	assert.Contains(t, entries[0], "author-name")
	assert.Contains(t, entries[0], "author-display-name")
}

func TestManifestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 1, 13, 5, 9, 0, time.UTC)
	assert.Equal(t, "2024-03-01-13-05-09.json", app.ManifestFilename(ts))
}
