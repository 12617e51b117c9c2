package sink

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/logsnack/logsnack/internal/domain/port/core"
	mockscore "github.com/logsnack/logsnack/mocks/port/core"
)

// fixedTime renders as "12:34:56.789" in the line timestamp.
var fixedTime = time.Date(2023, 1, 1, 12, 34, 56, 789*int(time.Millisecond), time.UTC)

func fixedTimeProvider(t *testing.T) *mockscore.MockTimeProvider {
	t.Helper()
	tp := new(mockscore.MockTimeProvider)
	tp.On("Now").Return(fixedTime)
	return tp
}

func TestConsoleSinkLineFormat(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(&buf, fixedTimeProvider(t))

	s.Log(core.LevelInfo, "hello")

	assert.Equal(t, "12:34:56.789 I  hello\n", buf.String())
}

func TestConsoleSinkTagPerLevel(t *testing.T) {
	testCases := []struct {
		level core.Level
		want  string
	}{
		{core.LevelDebug, "12:34:56.789 D  msg\n"},
		{core.LevelInfo, "12:34:56.789 I  msg\n"},
		{core.LevelUserAction, "12:34:56.789 UA msg\n"},
		{core.LevelWarn, "12:34:56.789 W  msg\n"},
		{core.LevelError, "12:34:56.789 EE msg\n"},
		{core.LevelBug, "12:34:56.789 EE msg\n"},
		{core.LevelDev, "12:34:56.789 XX msg\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			s := NewConsoleSink(&buf, fixedTimeProvider(t))

			s.Log(tc.level, "msg")

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestConsoleSinkCropBoundary(t *testing.T) {
	// Crop is exact at the 500-character boundary.
	testCases := []struct {
		name    string
		length  int
		emitted int
	}{
		{"just under", 499, 499},
		{"exactly at", 500, 500},
		{"just over", 501, 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewConsoleSink(&buf, fixedTimeProvider(t))

			s.Log(core.LevelWarn, strings.Repeat("a", tc.length))

			want := "12:34:56.789 W  " + strings.Repeat("a", tc.emitted) + "\n"
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestConsoleSinkEmptyMessagePassedThrough(t *testing.T) {
	// Normalization is the facade's job; the sink emits what it is given.
	var buf bytes.Buffer
	s := NewConsoleSink(&buf, fixedTimeProvider(t))

	s.Log(core.LevelInfo, "_")

	assert.Equal(t, "12:34:56.789 I  _\n", buf.String())
}
