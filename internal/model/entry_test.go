package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/temps/internal/model"
)

func TestEntrySpan(t *testing.T) {
	start := time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)
	end := start.Add(4*time.Hour + 24*time.Minute)
	now := start.Add(10 * time.Hour)

	closed := model.Entry{Project: "world domination", Start: start, End: &end}
	assert.False(t, closed.IsOngoing())
	assert.Equal(t, 4*time.Hour+24*time.Minute, closed.Span(now).Duration())

	open := model.Entry{Project: "lunch", Start: start}
	assert.True(t, open.IsOngoing())
	assert.Equal(t, now, open.EndOr(now))
	assert.Equal(t, 10*time.Hour, open.Span(now).Duration())
}

func TestSpanDurationNeverNegative(t *testing.T) {
	start := time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)
	s := model.Span{Project: "p", Start: start, End: start.Add(-time.Minute)}
	assert.Equal(t, time.Duration(0), s.Duration())
}

func TestOpen(t *testing.T) {
	start := time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	_, ok := model.Open(nil)
	assert.False(t, ok)

	_, ok = model.Open([]model.Entry{{Project: "a", Start: start, End: &end}})
	assert.False(t, ok)

	open, ok := model.Open([]model.Entry{
		{Project: "a", Start: start, End: &end},
		{Project: "b", Start: end},
	})
	assert.True(t, ok)
	assert.Equal(t, "b", open.Project)
}
