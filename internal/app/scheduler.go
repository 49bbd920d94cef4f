package app

import (
	"time"

	"github.com/ventkeeper/ventkeeper/internal/bot"
)

// Schedule describes when the recurring wipe fires.
type Schedule struct {
	DaysAhead   int
	Interval    time.Duration
	ResetHour   int
	ResetMinute int
	Location    *time.Location
}

// Scheduler owns the recurring purge timer. The first fire is anchored at
// DaysAhead days from startup at ResetHour:ResetMinute local time; every
// later fire is the anchor advanced by whole intervals. The next fire is
// re-derived from the wall clock on every arming rather than accumulated, so
// the timer never drifts. Nothing is persisted: a restart recomputes the
// anchor.
type Scheduler struct {
	logger   bot.Logger
	clock    Clock
	service  PurgeService
	schedule Schedule
	anchor   time.Time

	stopc chan struct{}
	done  chan struct{}
}

func NewScheduler(logger bot.Logger, clock Clock, service PurgeService, schedule Schedule) *Scheduler {
	return &Scheduler{
		logger:   logger,
		clock:    clock,
		service:  service,
		schedule: schedule,
		anchor:   firstFire(clock.Now(), schedule),
		stopc:    make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// firstFire is DaysAhead days from now at ResetHour:ResetMinute in the
// configured timezone.
func firstFire(now time.Time, sch Schedule) time.Time {
	local := now.In(sch.Location)
	first := time.Date(local.Year(), local.Month(), local.Day(),
		sch.ResetHour, sch.ResetMinute, 0, 0, sch.Location)
	return first.AddDate(0, 0, sch.DaysAhead)
}

// NextFireTime advances the first-fire anchor by whole intervals until it is
// strictly in the future. Pure function of now, the anchor and the schedule.
func (s *Scheduler) NextFireTime(now time.Time) time.Time {
	next := s.anchor
	if !next.After(now) {
		elapsed := now.Sub(next)
		next = next.Add(elapsed - elapsed%s.schedule.Interval + s.schedule.Interval)
	}
	return next
}

// Start arms the timer and returns. Each fire launches the pipeline on its
// own goroutine so a slow run never delays the next arming.
func (s *Scheduler) Start() {
	go s.loop()
}

// Stop tears the timer down. Any run already in flight completes on its own.
func (s *Scheduler) Stop() {
	close(s.stopc)
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)

	for {
		now := s.clock.Now()
		next := s.NextFireTime(now)
		s.logger.Infof("scheduler: vent channel is set to wipe on %s", next)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-s.stopc:
			timer.Stop()
			return
		case <-timer.C:
			firedAt := s.clock.Now()
			s.logger.Infof("scheduler: vent channel wipe initiated at %s", firedAt)
			go func() {
				trigger := Trigger{Source: TriggerScheduled, FiredAt: firedAt}
				if _, err := s.service.Run(trigger); err != nil {
					s.logger.Errorf("scheduler: scheduled purge failed: %v", err)
				}
			}()
		}
	}
}
