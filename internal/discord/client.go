package discord

import (
	"bytes"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/ventkeeper/ventkeeper/internal/app"
	"github.com/ventkeeper/ventkeeper/internal/bot"
)

const (
	megabyte = 1 << 20

	// defaultUploadLimit is the ceiling for guilds without a boost tier,
	// also used when the guild cannot be resolved.
	defaultUploadLimit = 25 * megabyte
	tier2UploadLimit   = 50 * megabyte
	tier3UploadLimit   = 100 * megabyte
)

// Client wraps a gateway session and implements app.ChannelStore on top of
// the platform REST surface.
type Client struct {
	session *discordgo.Session
	logger  bot.Logger
	clock   app.Clock
	http    *http.Client

	activity string
	status   string

	confirmer *app.Confirmer
	service   app.PurgeService
}

// New builds the client. BindService must be called before Open.
func New(token, activity, status string, logger bot.Logger, clock app.Clock) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.Wrap(err, "discord: failed to create session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	c := &Client{
		session:  session,
		logger:   logger,
		clock:    clock,
		http:     &http.Client{Timeout: 2 * time.Minute},
		activity: activity,
		status:   status,
	}
	session.AddHandler(c.onReady)
	session.AddHandler(c.onInteraction)
	return c, nil
}

// BindService attaches the purge pipeline and the confirmation dispatcher.
func (c *Client) BindService(service app.PurgeService, confirmer *app.Confirmer) {
	c.service = service
	c.confirmer = confirmer
}

// Open connects to the gateway.
func (c *Client) Open() error {
	if err := c.session.Open(); err != nil {
		return errors.Wrap(err, "discord: failed to open gateway connection")
	}
	return nil
}

// Close tears the gateway connection down.
func (c *Client) Close() error {
	return c.session.Close()
}

// Channel resolves a channel id, or errors when the destination is gone.
func (c *Client) Channel(id int64) (*app.Channel, error) {
	ch, err := c.session.Channel(formatID(id))
	if err != nil {
		return nil, errors.Wrapf(err, "discord: failed to resolve channel %d", id)
	}
	return &app.Channel{
		ID:      c.parseID(ch.ID),
		GuildID: c.parseID(ch.GuildID),
		Name:    ch.Name,
	}, nil
}

// MessagesFromStart fetches the oldest page of the channel, newest first.
func (c *Client) MessagesFromStart(channelID int64, limit int) ([]app.Message, error) {
	msgs, err := c.session.ChannelMessages(formatID(channelID), limit, "", "0", "")
	if err != nil {
		return nil, errors.Wrapf(err, "discord: failed to fetch history of channel %d", channelID)
	}
	return c.convertMessages(msgs), nil
}

// MessagesAfter fetches the page following afterID, newest first.
func (c *Client) MessagesAfter(channelID, afterID int64, limit int) ([]app.Message, error) {
	msgs, err := c.session.ChannelMessages(formatID(channelID), limit, "", formatID(afterID), "")
	if err != nil {
		return nil, errors.Wrapf(err, "discord: failed to fetch history of channel %d after %d", channelID, afterID)
	}
	return c.convertMessages(msgs), nil
}

// BulkDelete removes up to 100 messages younger than two weeks in one call.
func (c *Client) BulkDelete(channelID int64, ids []int64) error {
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, formatID(id))
	}
	if err := c.session.ChannelMessagesBulkDelete(formatID(channelID), strIDs); err != nil {
		return errors.Wrapf(err, "discord: bulk delete of %d messages in channel %d failed", len(ids), channelID)
	}
	return nil
}

// Delete removes a single message.
func (c *Client) Delete(channelID, messageID int64) error {
	if err := c.session.ChannelMessageDelete(formatID(channelID), formatID(messageID)); err != nil {
		return errors.Wrapf(err, "discord: delete of message %d in channel %d failed", messageID, channelID)
	}
	return nil
}

// PostFile posts content with one file attached.
func (c *Client) PostFile(channelID int64, content, filename string, data []byte) error {
	_, err := c.session.ChannelMessageSendComplex(formatID(channelID), &discordgo.MessageSend{
		Content: content,
		Files:   []*discordgo.File{{Name: filename, Reader: bytes.NewReader(data)}},
	})
	if err != nil {
		return errors.Wrapf(err, "discord: failed to post file %s to channel %d", filename, channelID)
	}
	return nil
}

// PostAudit posts one attachment-audit message as an embed plus files.
func (c *Client) PostAudit(channelID int64, post app.AuditPost) error {
	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    post.AuthorName,
			IconURL: post.AuthorIconURL,
		},
		Title:       "Message ID: " + formatID(post.MessageID),
		Description: post.Note,
	}

	files := make([]*discordgo.File, 0, len(post.Files))
	for _, f := range post.Files {
		files = append(files, &discordgo.File{Name: f.Name, Reader: bytes.NewReader(f.Data)})
	}

	_, err := c.session.ChannelMessageSendComplex(formatID(channelID), &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files:  files,
	})
	if err != nil {
		return errors.Wrapf(err, "discord: failed to post attachment audit for message %d", post.MessageID)
	}
	return nil
}

// PostNotice posts a plain text message.
func (c *Client) PostNotice(channelID int64, text string) error {
	if _, err := c.session.ChannelMessageSend(formatID(channelID), text); err != nil {
		return errors.Wrapf(err, "discord: failed to post notice to channel %d", channelID)
	}
	return nil
}

// DownloadAttachment fetches the raw bytes behind an attachment URL.
func (c *Client) DownloadAttachment(url string) ([]byte, error) {
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "discord: failed to download attachment %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("discord: attachment %s returned status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "discord: failed to read attachment %s", url)
	}
	return data, nil
}

// MaxUploadSize reports the guild's upload ceiling from its boost tier.
func (c *Client) MaxUploadSize(guildID int64) int {
	guild, err := c.session.Guild(formatID(guildID))
	if err != nil {
		c.logger.Warnf("discord: failed to resolve guild %d, assuming default upload limit: %v", guildID, err)
		return defaultUploadLimit
	}
	switch guild.PremiumTier {
	case discordgo.PremiumTier2:
		return tier2UploadLimit
	case discordgo.PremiumTier3:
		return tier3UploadLimit
	default:
		return defaultUploadLimit
	}
}

func (c *Client) convertMessages(msgs []*discordgo.Message) []app.Message {
	out := make([]app.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, c.convertMessage(m))
	}
	// The platform is inconsistent about page ordering depending on the
	// pagination anchor; normalize to newest first.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (c *Client) convertMessage(m *discordgo.Message) app.Message {
	msg := app.Message{
		ID:         c.parseID(m.ID),
		Content:    m.Content,
		CreatedAt:  m.Timestamp,
		Pinned:     m.Pinned,
		Webhook:    m.WebhookID != "",
		EmbedCount: len(m.Embeds),
	}

	if m.Author != nil {
		msg.AuthorID = c.parseID(m.Author.ID)
		msg.AuthorName = m.Author.Username
		msg.AuthorDisplayName = m.Author.GlobalName
		msg.AuthorIconURL = m.Author.AvatarURL("")
		msg.Bot = m.Author.Bot
		msg.System = m.Author.System
	}
	if m.Member != nil && m.Member.Nick != "" {
		msg.AuthorDisplayName = m.Member.Nick
	}
	if msg.AuthorDisplayName == "" {
		msg.AuthorDisplayName = msg.AuthorName
	}

	for _, a := range m.Attachments {
		msg.Attachments = append(msg.Attachments, app.Attachment{
			Filename:  a.Filename,
			SizeBytes: a.Size,
			URL:       a.URL,
		})
	}
	return msg
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// parseID converts a snowflake string. A malformed payload maps to 0 and is
// logged, never fatal.
func (c *Client) parseID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		c.logger.Warnf("discord: malformed id %q: %v", id, err)
	}
	return n
}
