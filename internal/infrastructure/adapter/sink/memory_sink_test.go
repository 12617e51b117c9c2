package sink

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logsnack/logsnack/internal/domain/entity"
	errs "github.com/logsnack/logsnack/internal/domain/error"
	"github.com/logsnack/logsnack/internal/domain/port/core"
)

func TestMemorySinkRetainsNewestFirst(t *testing.T) {
	s := NewMemorySink(10, fixedTimeProvider(t))

	s.Log(core.LevelInfo, "first")
	s.Log(core.LevelWarn, "second")
	s.Log(core.LevelError, "third")

	entries, err := s.Recent(context.Background(), 10)
	assert.NoError(t, err)
	if assert.Len(t, entries, 3) {
		assert.Equal(t, "third", entries[0].Message)
		assert.Equal(t, "second", entries[1].Message)
		assert.Equal(t, "first", entries[2].Message)
		assert.Equal(t, core.LevelError, entries[0].Level)
		assert.Equal(t, fixedTime, entries[0].Time)
	}
}

func TestMemorySinkEvictsOldestWhenFull(t *testing.T) {
	s := NewMemorySink(3, fixedTimeProvider(t))

	for i := 1; i <= 5; i++ {
		s.Log(core.LevelInfo, fmt.Sprintf("msg-%d", i))
	}

	assert.Equal(t, 3, s.Len())

	entries, err := s.Recent(context.Background(), 10)
	assert.NoError(t, err)
	if assert.Len(t, entries, 3) {
		assert.Equal(t, "msg-5", entries[0].Message)
		assert.Equal(t, "msg-4", entries[1].Message)
		assert.Equal(t, "msg-3", entries[2].Message)
	}
}

func TestMemorySinkRecentHonorsLimit(t *testing.T) {
	s := NewMemorySink(10, fixedTimeProvider(t))
	for i := 0; i < 6; i++ {
		s.Log(core.LevelDebug, fmt.Sprintf("msg-%d", i))
	}

	entries, err := s.Recent(context.Background(), 2)
	assert.NoError(t, err)
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "msg-5", entries[0].Message)
		assert.Equal(t, "msg-4", entries[1].Message)
	}
}

func TestMemorySinkRecentRejectsNonPositiveLimit(t *testing.T) {
	s := NewMemorySink(10, fixedTimeProvider(t))

	_, err := s.Recent(context.Background(), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidLimit)

	_, err = s.Recent(context.Background(), -1)
	assert.ErrorIs(t, err, errs.ErrInvalidLimit)
}

func TestMemorySinkImplementsRepositoryPort(t *testing.T) {
	s := NewMemorySink(10, fixedTimeProvider(t))

	err := s.Save(context.Background(), &entity.Entry{
		Time:    fixedTime,
		Level:   core.LevelUserAction,
		Message: "saved directly",
	})
	assert.NoError(t, err)

	entries, err := s.Recent(context.Background(), 1)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "saved directly", entries[0].Message)
		assert.Equal(t, core.LevelUserAction, entries[0].Level)
	}
}

func TestMemorySinkDefaultCapacity(t *testing.T) {
	s := NewMemorySink(0, fixedTimeProvider(t))

	for i := 0; i < DefaultMemoryCapacity+5; i++ {
		s.Log(core.LevelInfo, "x")
	}

	assert.Equal(t, DefaultMemoryCapacity, s.Len())
}
