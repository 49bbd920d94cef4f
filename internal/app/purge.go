package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ventkeeper/ventkeeper/internal/bot"
)

const (
	// historyPageSize bounds each of the two history fetch calls.
	historyPageSize = 100
	// bulkDeleteChunkSize is the platform's bulk-delete batch cap.
	bulkDeleteChunkSize = 100
	// bulkDeleteMaxAge is the platform's age ceiling for bulk deletion.
	// Older messages need manual removal.
	bulkDeleteMaxAge = 14 * 24 * time.Hour
)

// TriggerSource says what started a purge run.
type TriggerSource string

const (
	TriggerScheduled TriggerSource = "scheduled"
	TriggerManual    TriggerSource = "manual"
)

// Trigger is created at invocation and discarded after the run completes.
type Trigger struct {
	Source   TriggerSource
	ActorID  int64
	ActorTag string
	FiredAt  time.Time
}

// Targets names the channels one purge pipeline works against.
type Targets struct {
	Vent            int64
	VentLog         int64
	VentAttachments int64
}

// Stats summarizes what one run did.
type Stats struct {
	Retrieved    int
	Eligible     int
	Relayed      int
	Deleted      int
	FailedChunks int
	TotalChunks  int
	Aged         int
}

// Result is returned from a completed run.
type Result struct {
	RunID string
	Stats Stats
}

// PurgeService runs the archive-then-delete pipeline against the vent
// channel.
type PurgeService interface {
	Run(trigger Trigger) (*Result, error)
}

type purgeService struct {
	store    ChannelStore
	runs     RunStore
	logger   bot.Logger
	policy   FilterPolicy
	targets  Targets
	location *time.Location
	clock    Clock
	locks    *channelLocks
}

// NewPurgeService wires the purge pipeline. runs may be a NopRunStore.
func NewPurgeService(store ChannelStore, runs RunStore, logger bot.Logger,
	policy FilterPolicy, targets Targets, location *time.Location, clock Clock) PurgeService {
	return &purgeService{
		store:    store,
		runs:     runs,
		logger:   logger,
		policy:   policy,
		targets:  targets,
		location: location,
		clock:    clock,
		locks:    newChannelLocks(),
	}
}

// Run executes one purge: fetch, filter, archive, relay, post manifest,
// delete. Archival failures abort before any destructive call; deletion
// failures are isolated per chunk and reported, never re-raised. Two runs
// against the same channel never interleave.
func (s *purgeService) Run(trigger Trigger) (res *Result, err error) {
	unlock := s.locks.acquire(s.targets.Vent)
	defer unlock()

	runID := uuid.New().String()
	startedAt := s.clock.Now()
	stats := Stats{}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("purge: run %s panicked: %v", runID, r)
			s.postNotice(fmt.Sprintf("developer intervention required: purge run %s failed unexpectedly", runID))
			err = errors.Errorf("purge: run %s failed unexpectedly: %v", runID, r)
		}
		s.recordRun(runID, trigger, startedAt, stats, err)
	}()

	s.logger.Infof("purge: run %s started, source %s", runID, trigger.Source)

	vent, err := s.store.Channel(s.targets.Vent)
	if err != nil {
		s.logger.Errorf("purge: vent channel <%d> doesn't exist: %v", s.targets.Vent, err)
		return nil, errors.Wrapf(err, "purge: vent channel <%d> doesn't exist", s.targets.Vent)
	}
	ventLog, err := s.store.Channel(s.targets.VentLog)
	if err != nil {
		s.logger.Errorf("purge: vent log channel <%d> doesn't exist: %v", s.targets.VentLog, err)
		return nil, errors.Wrapf(err, "purge: vent log channel <%d> doesn't exist", s.targets.VentLog)
	}
	ventAttachments, err := s.store.Channel(s.targets.VentAttachments)
	if err != nil {
		s.logger.Errorf("purge: vent attachment channel <%d> doesn't exist: %v", s.targets.VentAttachments, err)
		return nil, errors.Wrapf(err, "purge: vent attachment channel <%d> doesn't exist", s.targets.VentAttachments)
	}

	history, err := s.fetchHistory(vent.ID)
	if err != nil {
		return nil, err
	}
	stats.Retrieved = len(history)

	eligible := s.policy.Apply(history)
	stats.Eligible = len(eligible)

	// Nothing eligible means a no-op run, and no log entry is produced.
	if len(eligible) == 0 {
		s.logger.Infof("purge: run %s found no eligible messages", runID)
		return &Result{RunID: runID, Stats: stats}, nil
	}

	now := s.clock.Now()
	manifest := BuildManifest(*vent, eligible, now.In(s.location))
	encoded, err := manifest.Encode()
	if err != nil {
		// The audit artifact must exist before anything is destroyed.
		return nil, err
	}

	stats.Relayed = s.relayAttachments(ventAttachments, eligible)

	localNow := now.In(s.location)
	formatted := localNow.Format("2006-01-02-15-04-05")
	if err := s.store.PostFile(ventLog.ID, "Vent log for "+formatted, ManifestFilename(localNow), encoded); err != nil {
		return nil, errors.Wrap(err, "purge: failed to post vent log")
	}

	deleted, failed, total, aged := s.deleteMessages(vent.ID, eligible, now)
	stats.Deleted = deleted
	stats.FailedChunks = failed
	stats.TotalChunks = total
	stats.Aged = aged

	s.logger.Infof("purge: run %s completed, archived %d, deleted %d, aged %d",
		runID, stats.Eligible, stats.Deleted, stats.Aged)
	return &Result{RunID: runID, Stats: stats}, nil
}

// fetchHistory performs the two-phase paginated fetch: the oldest page, then
// its forward continuation, reassembled into chronological order.
func (s *purgeService) fetchHistory(channelID int64) ([]Message, error) {
	first, err := s.store.MessagesFromStart(channelID, historyPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "purge: failed to fetch channel history")
	}
	if len(first) == 0 {
		return nil, nil
	}

	// Pages arrive newest first; the newest id of the first page anchors
	// the continuation.
	cont, err := s.store.MessagesAfter(channelID, first[0].ID, historyPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "purge: failed to fetch channel history continuation")
	}

	combined := make([]Message, 0, len(first)+len(cont))
	combined = append(combined, cont...)
	combined = append(combined, first...)

	// Reverse to chronological order.
	for i, j := 0, len(combined)-1; i < j; i, j = i+1, j-1 {
		combined[i], combined[j] = combined[j], combined[i]
	}
	return combined, nil
}

// deleteMessages age-partitions the archived messages and deletes the recent
// ones in chunks. A chunk failure is reported and never stops the remaining
// chunks. Aged messages are escalated, not deleted.
func (s *purgeService) deleteMessages(channelID int64, msgs []Message, now time.Time) (deleted, failedChunks, totalChunks, aged int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("purge: delete phase panicked: %v", r)
			s.postNotice("developer intervention required: the delete phase failed unexpectedly")
		}
	}()

	cutoff := now.Add(-bulkDeleteMaxAge)
	var recent, old []Message
	for _, m := range msgs {
		if m.CreatedAt.After(cutoff) {
			recent = append(recent, m)
		} else {
			old = append(old, m)
		}
	}
	aged = len(old)

	switch {
	case len(recent) == 1:
		// Bulk delete needs at least two messages.
		totalChunks = 1
		if err := s.store.Delete(channelID, recent[0].ID); err != nil {
			s.logger.Errorf("purge: failed to delete message %d: %v", recent[0].ID, err)
			failedChunks++
			s.postNotice("developer intervention required, chunk 1/1 failed")
		} else {
			deleted = 1
		}
	case len(recent) > 1:
		chunks := chunkIDs(recent, bulkDeleteChunkSize)
		totalChunks = len(chunks)
		for i, chunk := range chunks {
			if err := s.store.BulkDelete(channelID, chunk); err != nil {
				s.logger.Errorf("purge: failed to delete chunk %d/%d: %v", i+1, totalChunks, err)
				failedChunks++
				s.postNotice(fmt.Sprintf("developer intervention required, chunk %d/%d failed", i+1, totalChunks))
				continue
			}
			deleted += len(chunk)
		}
	}

	if aged > 0 {
		s.logger.Warnf("purge: %d messages are older than the bulk-delete window", aged)
		s.postNotice(fmt.Sprintf("admin intervention required: %d messages older than the bulk-delete window exist and need manual removal", aged))
	}
	return deleted, failedChunks, totalChunks, aged
}

// chunkIDs splits msgs into id batches of at most size, preserving order.
func chunkIDs(msgs []Message, size int) [][]int64 {
	var chunks [][]int64
	for start := 0; start < len(msgs); start += size {
		end := start + size
		if end > len(msgs) {
			end = len(msgs)
		}
		ids := make([]int64, 0, end-start)
		for _, m := range msgs[start:end] {
			ids = append(ids, m.ID)
		}
		chunks = append(chunks, ids)
	}
	return chunks
}

// postNotice posts to the vent log, best effort: a failed notice is logged
// and never escalated further.
func (s *purgeService) postNotice(text string) {
	if err := s.store.PostNotice(s.targets.VentLog, text); err != nil {
		s.logger.Errorf("purge: failed to post notice to vent log: %v", err)
	}
}

func (s *purgeService) recordRun(runID string, trigger Trigger, startedAt time.Time, stats Stats, runErr error) {
	rec := RunRecord{
		ID:           runID,
		ChannelID:    s.targets.Vent,
		Source:       string(trigger.Source),
		Actor:        trigger.ActorTag,
		StartedAt:    startedAt,
		FinishedAt:   s.clock.Now(),
		Retrieved:    stats.Retrieved,
		Archived:     stats.Eligible,
		Relayed:      stats.Relayed,
		Deleted:      stats.Deleted,
		FailedChunks: stats.FailedChunks,
		Aged:         stats.Aged,
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	if err := s.runs.RecordRun(rec); err != nil {
		s.logger.Errorf("purge: failed to record run %s: %v", runID, err)
	}
}

// channelLocks serializes pipeline executions per channel, so a scheduled
// run and a manual run never fetch and delete against the same channel
// concurrently.
type channelLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newChannelLocks() *channelLocks {
	return &channelLocks{locks: map[int64]*sync.Mutex{}}
}

func (c *channelLocks) acquire(channelID int64) (release func()) {
	c.mu.Lock()
	l, ok := c.locks[channelID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[channelID] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}
