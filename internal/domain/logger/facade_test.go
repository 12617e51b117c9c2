package logger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logsnack/logsnack/internal/domain/port/core"
	mockscore "github.com/logsnack/logsnack/mocks/port/core"
)

// recordedCall captures one sink invocation for order-sensitive assertions.
type recordedCall struct {
	sink    string
	level   core.Level
	message string
}

// recordingSink appends every invocation to a shared journal so tests can
// assert cross-sink ordering.
type recordingSink struct {
	name    string
	mu      *sync.Mutex
	journal *[]recordedCall
}

func newJournal() (*sync.Mutex, *[]recordedCall) {
	return &sync.Mutex{}, &[]recordedCall{}
}

func (s *recordingSink) Log(level core.Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.journal = append(*s.journal, recordedCall{sink: s.name, level: level, message: message})
}

// panickingSink simulates a broken sink implementation.
type panickingSink struct{}

func (s *panickingSink) Log(core.Level, string) {
	panic("sink failure")
}

var allLevels = []core.Level{
	core.LevelDebug,
	core.LevelInfo,
	core.LevelUserAction,
	core.LevelWarn,
	core.LevelError,
	core.LevelBug,
	core.LevelDev,
}

func TestDispatchThresholdGrid(t *testing.T) {
	// A call at severity S reaches sinks iff ordinal(S) >= ordinal(T),
	// across all 7x7 combinations. Equality always passes.
	for _, threshold := range allLevels {
		for _, severity := range allLevels {
			name := fmt.Sprintf("threshold=%s/severity=%s", threshold, severity)
			t.Run(name, func(t *testing.T) {
				mu, journal := newJournal()
				logs := New(threshold, &recordingSink{name: "rec", mu: mu, journal: journal})

				logs.Log(severity, "m")

				wantDispatch := severity >= threshold
				assert.Equal(t, wantDispatch, len(*journal) == 1)
				assert.Equal(t, wantDispatch, logs.Enabled(severity))
				if wantDispatch {
					assert.Equal(t, severity, (*journal)[0].level)
					assert.Equal(t, "m", (*journal)[0].message)
				}
			})
		}
	}
}

func TestEntryPointsMapToLevels(t *testing.T) {
	mu, journal := newJournal()
	logs := New(core.LevelDebug, &recordingSink{name: "rec", mu: mu, journal: journal})

	logs.Debug("a")
	logs.Info("b")
	logs.UserAction("c")
	logs.Warn("d")
	logs.Error("e")
	logs.Bug("f")
	logs.Dev("g")

	if assert.Len(t, *journal, 7) {
		for i, level := range allLevels {
			assert.Equal(t, level, (*journal)[i].level)
		}
	}
}

func TestSuppressedCallInvokesNoSink(t *testing.T) {
	// Suppression is a cost guarantee, not just a filter: nothing reaches
	// the sink, not even a normalized message.
	mockSink := new(mockscore.MockSink)

	logs := New(core.LevelWarn, mockSink)
	logs.Debug("expensive message")
	logs.Info("")

	mockSink.AssertNotCalled(t, "Log")
}

func TestEmptyMessageNormalized(t *testing.T) {
	mockSink := new(mockscore.MockSink)
	mockSink.On("Log", core.LevelInfo, NoMessage).Return()

	logs := New(core.LevelDebug, mockSink)
	logs.Info("")

	mockSink.AssertExpectations(t)
}

func TestSinksInvokedInRegistrationOrder(t *testing.T) {
	mu, journal := newJournal()
	first := &recordingSink{name: "first", mu: mu, journal: journal}
	second := &recordingSink{name: "second", mu: mu, journal: journal}
	third := &recordingSink{name: "third", mu: mu, journal: journal}

	logs := New(core.LevelDebug, first, second, third)
	logs.Warn("ordered")

	if assert.Len(t, *journal, 3) {
		assert.Equal(t, "first", (*journal)[0].sink)
		assert.Equal(t, "second", (*journal)[1].sink)
		assert.Equal(t, "third", (*journal)[2].sink)
		for _, call := range *journal {
			assert.Equal(t, core.LevelWarn, call.level)
			assert.Equal(t, "ordered", call.message)
		}
	}
}

func TestConfigureReplacesWholeList(t *testing.T) {
	mu, journal := newJournal()
	oldSink := &recordingSink{name: "old", mu: mu, journal: journal}
	newSink := &recordingSink{name: "new", mu: mu, journal: journal}

	logs := New(core.LevelDebug, oldSink)
	logs.Info("before")

	logs.Configure(core.LevelDebug, newSink)
	logs.Info("after")

	// No mixed list: "before" went only to the old sink, "after" only to
	// the new one.
	if assert.Len(t, *journal, 2) {
		assert.Equal(t, recordedCall{sink: "old", level: core.LevelInfo, message: "before"}, (*journal)[0])
		assert.Equal(t, recordedCall{sink: "new", level: core.LevelInfo, message: "after"}, (*journal)[1])
	}
}

func TestSetThresholdKeepsSinks(t *testing.T) {
	mu, journal := newJournal()
	logs := New(core.LevelDebug, &recordingSink{name: "rec", mu: mu, journal: journal})

	logs.SetThreshold(core.LevelError)

	logs.Warn("dropped")
	logs.Error("kept")

	if assert.Len(t, *journal, 1) {
		assert.Equal(t, "kept", (*journal)[0].message)
	}
	assert.Equal(t, core.LevelError, logs.Threshold())
}

func TestPanickingSinkDoesNotSuppressLaterSinks(t *testing.T) {
	mu, journal := newJournal()
	survivor := &recordingSink{name: "survivor", mu: mu, journal: journal}

	logs := New(core.LevelDebug, &panickingSink{}, survivor)

	assert.NotPanics(t, func() {
		logs.Error("still delivered")
	})

	if assert.Len(t, *journal, 1) {
		assert.Equal(t, "still delivered", (*journal)[0].message)
	}
}

func TestSinksReturnsCopy(t *testing.T) {
	mu, journal := newJournal()
	rec := &recordingSink{name: "rec", mu: mu, journal: journal}
	logs := New(core.LevelDebug, rec)

	sinks := logs.Sinks()
	sinks[0] = &panickingSink{}

	// Mutating the returned slice must not affect dispatch.
	assert.NotPanics(t, func() {
		logs.Info("untouched")
	})
	assert.Len(t, *journal, 1)
}

func TestConcurrentLoggingAndReconfiguration(t *testing.T) {
	mu, journal := newJournal()
	rec := &recordingSink{name: "rec", mu: mu, journal: journal}
	logs := New(core.LevelDebug, rec)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logs.Info("concurrent")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			logs.Configure(core.LevelDebug, rec)
		}
	}()
	wg.Wait()

	// Every dispatched call saw a complete snapshot.
	for _, call := range *journal {
		assert.Equal(t, "concurrent", call.message)
	}
}
