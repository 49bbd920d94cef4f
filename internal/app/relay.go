package app

import "fmt"

// droppedNote covers both causes at once: a file over the upload ceiling and
// a file deleted before the relay could fetch it are indistinguishable here.
const droppedNote = "File was either too large to send in this server or was deleted during purge."

// relayAttachments re-uploads the attachments of eligible messages to the
// attachment channel, one audit post per source message. Attachments above
// the guild's upload ceiling are dropped and noted. A failure on one message
// never blocks the next; returns the number of audit posts made.
func (s *purgeService) relayAttachments(dest *Channel, msgs []Message) int {
	ceiling := s.store.MaxUploadSize(dest.GuildID)

	var posted int
	for _, m := range msgs {
		if len(m.Attachments) == 0 {
			continue
		}

		post := AuditPost{
			AuthorName:    fmt.Sprintf("%s <%d>", m.AuthorName, m.AuthorID),
			AuthorID:      m.AuthorID,
			AuthorIconURL: m.AuthorIconURL,
			MessageID:     m.ID,
		}

		for _, a := range m.Attachments {
			if a.SizeBytes > ceiling {
				s.logger.Debugf("purge: dropping attachment %s of message %d, %d bytes over the %d byte ceiling",
					a.Filename, m.ID, a.SizeBytes, ceiling)
				continue
			}
			data, err := s.store.DownloadAttachment(a.URL)
			if err != nil {
				s.logger.Errorf("purge: failed to download attachment %s of message %d: %v", a.Filename, m.ID, err)
				continue
			}
			post.Files = append(post.Files, File{Name: a.Filename, Data: data})
		}

		if len(post.Files) == 0 {
			post.Note = droppedNote
		}

		if err := s.store.PostAudit(dest.ID, post); err != nil {
			s.logger.Errorf("purge: failed to post attachment audit for message %d: %v", m.ID, err)
			continue
		}
		posted++
	}
	return posted
}
