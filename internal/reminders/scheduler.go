package reminders

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
)

// Minutes before the workout at which a notification is sent.
var leadTimes = []int{5, 2}

const (
	defaultCleanupEvery = 5 * time.Minute
	defaultSendTimeout  = 10 * time.Second
)

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=reminders

type activeRemindersStore interface {
	ListActive(ctx context.Context) ([]Reminder, error)
	DeactivateOverdue(ctx context.Context, id int, now time.Time) (bool, error)
}

type SchedulerParams struct {
	Clock          clock.Clock
	Location       *time.Location
	Store          activeRemindersStore
	Notifier       Notifier
	MetricsManager *metrics.Manager
	CleanupEvery   time.Duration
	SendTimeout    time.Duration
}

// Scheduler owns the pending reminder notifications of the process.
// Each reminder id has at most one registry entry holding its timers;
// scheduling a reminder again replaces the previous entry.
type Scheduler struct {
	clock          clock.Clock
	location       *time.Location
	store          activeRemindersStore
	notifier       Notifier
	metricsManager *metrics.Manager
	cleanupEvery   time.Duration
	sendTimeout    time.Duration

	mu       sync.Mutex
	registry map[int]*entry
	stopped  bool

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

type entry struct {
	reminder Reminder
	// keyed by minutes before the workout
	timers map[int]*clock.Timer
}

func NewScheduler(params SchedulerParams) *Scheduler {
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	cleanupEvery := params.CleanupEvery
	if cleanupEvery <= 0 {
		cleanupEvery = defaultCleanupEvery
	}
	sendTimeout := params.SendTimeout
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return &Scheduler{
		clock:          params.Clock,
		location:       loc,
		store:          params.Store,
		notifier:       params.Notifier,
		metricsManager: params.MetricsManager,
		cleanupEvery:   cleanupEvery,
		sendTimeout:    sendTimeout,
		registry:       make(map[int]*entry),
		stopCh:         make(chan struct{}),
	}
}

// Start schedules all active reminders from the store and starts the
// periodic overdue cleanup. The cleanup loop runs even when the initial load
// fails, and it retries the load on every tick until it succeeds.
func (s *Scheduler) Start(ctx context.Context) error {
	err := s.load(ctx)

	ticker := s.clock.Ticker(s.cleanupEvery)
	s.wg.Add(1)
	go s.cleanupLoop(ticker, err == nil)

	return err
}

func (s *Scheduler) load(ctx context.Context) error {
	active, err := s.store.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("load active reminders: %w", err)
	}

	scheduled := 0
	for _, r := range active {
		scheduled += s.Schedule(r)
	}
	log.Infof("reminders scheduler loaded %d active reminders, %d pending notifications", len(active), scheduled)
	return nil
}

// Schedule registers the notifications of the reminder that are still in the
// future and returns how many were scheduled. An inactive reminder only has its
// previous notifications cancelled.
func (s *Scheduler) Schedule(r Reminder) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0
	}

	s.cancelLocked(r.ID)
	if !r.IsActive {
		return 0
	}

	now := s.clock.Now()
	workoutAt := r.WorkoutAt(s.location)
	e := &entry{
		reminder: r,
		timers:   make(map[int]*clock.Timer, len(leadTimes)),
	}
	for _, minutesBefore := range leadTimes {
		fireAt := workoutAt.Add(-time.Duration(minutesBefore) * time.Minute)
		if !fireAt.After(now) {
			continue
		}
		e.timers[minutesBefore] = s.clock.AfterFunc(fireAt.Sub(now), func() {
			s.fire(e, minutesBefore)
		})
	}

	if len(e.timers) == 0 {
		return 0
	}

	s.registry[r.ID] = e
	s.metricsManager.CounterRemindersScheduled.Add(float64(len(e.timers)))
	s.metricsManager.GaugeScheduledReminders.Set(float64(len(s.registry)))
	return len(e.timers)
}

// Cancel stops the pending notifications of the reminder. It reports whether
// there were any.
func (s *Scheduler) Cancel(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked(id)
}

func (s *Scheduler) cancelLocked(id int) bool {
	e, ok := s.registry[id]
	if !ok {
		return false
	}
	for _, t := range e.timers {
		t.Stop()
	}
	delete(s.registry, id)
	s.metricsManager.GaugeScheduledReminders.Set(float64(len(s.registry)))
	return true
}

// cancelOverdue cancels the reminder only if the registry still holds a version
// of it whose workout started before now. A reminder moved into the future in
// the meantime keeps its timers.
func (s *Scheduler) cancelOverdue(id int, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.registry[id]
	if !ok || !e.reminder.WorkoutAt(s.location).Before(now) {
		return false
	}
	return s.cancelLocked(id)
}

// Pending returns the lead times (minutes before the workout) still scheduled
// for the reminder, largest first.
func (s *Scheduler) Pending(id int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.registry[id]
	if !ok {
		return nil
	}
	pending := make([]int, 0, len(e.timers))
	for minutesBefore := range e.timers {
		pending = append(pending, minutesBefore)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pending)))
	return pending
}

// Len returns the number of reminders with pending notifications.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.registry)
}

func (s *Scheduler) fire(e *entry, minutesBefore int) {
	s.mu.Lock()
	// the entry was cancelled or replaced after the timer went off
	if s.stopped || s.registry[e.reminder.ID] != e {
		s.mu.Unlock()
		return
	}
	if _, ok := e.timers[minutesBefore]; !ok {
		s.mu.Unlock()
		return
	}
	delete(e.timers, minutesBefore)
	if len(e.timers) == 0 {
		delete(s.registry, e.reminder.ID)
		s.metricsManager.GaugeScheduledReminders.Set(float64(len(s.registry)))
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.sendTimeout)
	defer cancel()

	n := NewNotification(e.reminder, minutesBefore, s.location, s.clock.Now())
	if err := s.notifier.Notify(ctx, n); err != nil {
		log.Errorf("send %d-minute reminder %d: %s", minutesBefore, e.reminder.ID, err)
		s.metricsManager.CounterRemindersFailed.Inc()
		return
	}

	log.Debugf("sent %d-minute reminder for: %s", minutesBefore, e.reminder.Title)
	s.metricsManager.CounterRemindersSent.With(prometheus.Labels{
		"minutes_before": strconv.Itoa(minutesBefore),
	}).Inc()
}

// Cleanup deactivates active reminders whose workout start has passed and
// cancels whatever is still pending for them. A reminder updated between the
// listing and its deactivation is left alone. It returns how many were deactivated.
func (s *Scheduler) Cleanup(ctx context.Context) (int, error) {
	active, err := s.store.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active reminders: %w", err)
	}

	now := s.clock.Now()
	deactivated := 0
	for _, r := range active {
		if !r.WorkoutAt(s.location).Before(now) {
			continue
		}
		ok, err := s.store.DeactivateOverdue(ctx, r.ID, now.In(s.location))
		if err != nil {
			log.Errorf("deactivate overdue reminder %d: %s", r.ID, err)
			continue
		}
		if !ok {
			log.Debugf("reminder %d changed since listed, not deactivated", r.ID)
			continue
		}
		s.cancelOverdue(r.ID, now)
		deactivated++
	}

	if deactivated > 0 {
		s.metricsManager.CounterRemindersExpired.Add(float64(deactivated))
		log.Debugf("reminders cleanup: %d overdue reminders deactivated", deactivated)
	}
	return deactivated, nil
}

func (s *Scheduler) cleanupLoop(ticker *clock.Ticker, loaded bool) {
	defer s.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.cleanupEvery)
			if !loaded {
				if err := s.load(ctx); err != nil {
					log.Errorf("reminders scheduler: %s", err)
				} else {
					loaded = true
				}
			}
			if _, err := s.Cleanup(ctx); err != nil {
				log.Errorf("reminders cleanup: %s", err)
			}
			cancel()
		}
	}
}

// Stop cancels every pending notification and waits for the cleanup loop and
// in-flight sends to finish. The scheduler cannot be restarted.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id := range s.registry {
		s.cancelLocked(id)
	}
	s.mu.Unlock()

	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	log.Debugln("reminders scheduler stopped")
}
