package helpers

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/domain/contracts"
	"hostpro/test/mocks"
)

// FakeScheduler is a manually advanced Scheduler. Callbacks run on the
// goroutine that calls Advance.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*FakeTimer
}

// FakeTimer is a timer created by FakeScheduler.
type FakeTimer struct {
	owner   *FakeScheduler
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewFakeScheduler creates a scheduler whose clock starts at zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc implements application.Scheduler.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) application.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &FakeTimer{owner: s, due: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Stop implements application.Timer.
func (t *FakeTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Stopped reports whether the timer was cancelled.
func (t *FakeTimer) Stopped() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.stopped
}

// Advance moves the clock forward by d and runs every callback that became
// due, earliest first.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*FakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.due <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].seq < due[j].seq
		}
		return due[i].due < due[j].due
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of timers neither fired nor stopped.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Timers returns every timer created so far.
func (s *FakeScheduler) Timers() []*FakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*FakeTimer(nil), s.timers...)
}

// LoadCatalog loads the embedded catalog or fails the test.
func LoadCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

// NewFailingPreferenceStore returns a store mock whose reads find nothing
// and whose writes fail with err.
func NewFailingPreferenceStore(err error) *mocks.MockPreferenceStore {
	store := &mocks.MockPreferenceStore{}
	store.On("Get", anyArgs(3)...).Return("", contracts.ErrPreferenceNotFound)
	store.On("Set", anyArgs(4)...).Return(err)
	store.On("Delete", anyArgs(3)...).Return(err)
	store.On("Close").Return(nil)
	return store
}

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}
