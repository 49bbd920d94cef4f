package app

import "time"

//go:generate mockgen -destination mocks/mock_store.go github.com/ventkeeper/ventkeeper/internal/app ChannelStore,RunStore

// Channel identifies a resolved channel and its guild.
type Channel struct {
	ID      int64
	GuildID int64
	Name    string
}

// File is an in-memory file to be uploaded with a post.
type File struct {
	Name string
	Data []byte
}

// AuditPost is one attachment-audit message: the relayed files of a single
// source message together with its author identity.
type AuditPost struct {
	AuthorName    string
	AuthorID      int64
	AuthorIconURL string
	MessageID     int64
	Note          string
	Files         []File
}

// ChannelStore is the chat-platform surface the pipeline consumes. Paged
// history methods return at most limit messages, newest first; callers
// reassemble chronological order. Only BulkDelete and Delete are
// destructive.
type ChannelStore interface {
	// Channel resolves a channel id. An error means the destination no
	// longer exists and the run must abort without side effects.
	Channel(id int64) (*Channel, error)

	// MessagesFromStart fetches the oldest page of the channel.
	MessagesFromStart(channelID int64, limit int) ([]Message, error)
	// MessagesAfter fetches the page following afterID.
	MessagesAfter(channelID, afterID int64, limit int) ([]Message, error)

	// BulkDelete removes a batch of messages in one call. The platform
	// rejects batches with fewer than two ids and messages older than the
	// bulk-delete age window.
	BulkDelete(channelID int64, ids []int64) error
	// Delete removes a single message.
	Delete(channelID, messageID int64) error

	// PostFile posts content with one file attached.
	PostFile(channelID int64, content, filename string, data []byte) error
	// PostAudit posts one attachment-audit message.
	PostAudit(channelID int64, post AuditPost) error
	// PostNotice posts a plain text message.
	PostNotice(channelID int64, text string) error

	// DownloadAttachment fetches the raw bytes behind an attachment URL.
	DownloadAttachment(url string) ([]byte, error)

	// MaxUploadSize reports the guild's current upload ceiling in bytes.
	MaxUploadSize(guildID int64) int
}

// RunRecord is the persisted summary of one purge run.
type RunRecord struct {
	ID           string    `db:"id"`
	ChannelID    int64     `db:"channel_id"`
	Source       string    `db:"source"`
	Actor        string    `db:"actor"`
	StartedAt    time.Time `db:"started_at"`
	FinishedAt   time.Time `db:"finished_at"`
	Retrieved    int       `db:"retrieved"`
	Archived     int       `db:"archived"`
	Relayed      int       `db:"relayed"`
	Deleted      int       `db:"deleted"`
	FailedChunks int       `db:"failed_chunks"`
	Aged         int       `db:"aged"`
	Error        string    `db:"error"`
}

// RunStore records purge runs for later inspection.
type RunStore interface {
	RecordRun(rec RunRecord) error
}

// NopRunStore discards run records. Used when no database is configured.
type NopRunStore struct{}

func (NopRunStore) RecordRun(RunRecord) error { return nil }
