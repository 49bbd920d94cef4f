package app

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Manifest is the structured audit snapshot of all eligible messages, taken
// before any deletion. It is built once per run, serialized, posted to the
// log channel and then discarded.
type Manifest struct {
	Data     ManifestData      `json:"data"`
	Messages []ManifestMessage `json:"messages"`
}

type ManifestData struct {
	ChannelName  string `json:"name"`
	ChannelID    int64  `json:"id"`
	GuildID      int64  `json:"server-id"`
	MessageCount int    `json:"messages"`
	Date         string `json:"date"`
}

// ManifestMessage records one archived message. Both the stable author name
// and the transient display name are kept so audits stay attributable after
// an account renames itself.
type ManifestMessage struct {
	MessageID         int64  `json:"message-id"`
	AuthorID          int64  `json:"author-id"`
	AuthorName        string `json:"author-name"`
	AuthorDisplayName string `json:"author-display-name"`
	Content           string `json:"content"`
	EmbedCount        int    `json:"embeds"`
	AttachmentCount   int    `json:"attachments"`
}

// BuildManifest converts the eligible messages into a Manifest. Every message
// appears exactly once, in the original chronological order. The source
// messages are never mutated.
func BuildManifest(ch Channel, msgs []Message, dateLocal time.Time) Manifest {
	archived := make([]ManifestMessage, 0, len(msgs))
	for _, m := range msgs {
		archived = append(archived, ManifestMessage{
			MessageID:         m.ID,
			AuthorID:          m.AuthorID,
			AuthorName:        m.AuthorName,
			AuthorDisplayName: m.AuthorDisplayName,
			Content:           m.Content,
			EmbedCount:        m.EmbedCount,
			AttachmentCount:   len(m.Attachments),
		})
	}

	return Manifest{
		Data: ManifestData{
			ChannelName:  ch.Name,
			ChannelID:    ch.ID,
			GuildID:      ch.GuildID,
			MessageCount: len(archived),
			Date:         dateLocal.Format("2006-01-02"),
		},
		Messages: archived,
	}
}

// Encode serializes the manifest to its pretty-printed JSON form.
func (m Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "archive: failed to encode manifest")
	}
	return data, nil
}

// DecodeManifest parses a serialized manifest back into its structured form.
func DecodeManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, "archive: failed to decode manifest")
	}
	return m, nil
}

// ManifestFilename returns the human-sortable audit file name for a run.
func ManifestFilename(ts time.Time) string {
	return ts.Format("2006-01-02-15-04-05") + ".json"
}
