package app

import (
	"time"

	"github.com/ventkeeper/ventkeeper/internal/config"
)

// Attachment is a file attached to a retrieved message. The bytes live
// behind URL until the relay downloads them.
type Attachment struct {
	Filename  string
	SizeBytes int
	URL       string
}

// Message is the platform-supplied record of one channel message. It is
// read-only to the pipeline.
type Message struct {
	ID                int64
	AuthorID          int64
	AuthorName        string
	AuthorDisplayName string
	AuthorIconURL     string
	CreatedAt         time.Time
	Content           string
	Pinned            bool
	Webhook           bool
	Bot               bool
	System            bool
	Attachments       []Attachment
	EmbedCount        int
}

// FilterPolicy decides which retrieved messages are eligible for archival
// and deletion. Loaded once per run, immutable during a run.
type FilterPolicy struct {
	ExcludeWebhooks bool
	ExcludeBots     bool
	ExcludeSystem   bool
	ExcludePinned   bool

	ExcludedMessageIDs map[int64]bool
	ExcludedAuthorIDs  map[int64]bool
}

// PolicyFromConfig builds a FilterPolicy from its configuration form.
func PolicyFromConfig(fc config.FilterConfig) FilterPolicy {
	p := FilterPolicy{
		ExcludeWebhooks:    fc.Webhooks,
		ExcludeBots:        fc.Bots,
		ExcludeSystem:      fc.System,
		ExcludePinned:      fc.Pinned,
		ExcludedMessageIDs: map[int64]bool{},
		ExcludedAuthorIDs:  map[int64]bool{},
	}
	for _, id := range fc.Messages {
		p.ExcludedMessageIDs[id] = true
	}
	for _, id := range fc.Authors {
		p.ExcludedAuthorIDs[id] = true
	}
	return p
}

// Apply filters msgs down to the eligible set, preserving order. Pure: no
// side effects, the input slice is not modified. An empty result is a valid
// no-op run.
func (p FilterPolicy) Apply(msgs []Message) []Message {
	eligible := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if p.excludes(m) {
			continue
		}
		eligible = append(eligible, m)
	}
	return eligible
}

// excludes applies the predicates in fixed order: explicit id, explicit
// author, then the four toggle-gated category exclusions.
func (p FilterPolicy) excludes(m Message) bool {
	switch {
	case p.ExcludedMessageIDs[m.ID]:
		return true
	case p.ExcludedAuthorIDs[m.AuthorID]:
		return true
	case p.ExcludePinned && m.Pinned:
		return true
	case p.ExcludeWebhooks && m.Webhook:
		return true
	case p.ExcludeBots && m.Bot:
		return true
	case p.ExcludeSystem && m.System:
		return true
	}
	return false
}
