package leads

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyitalypro/landing/pkg/logging"
)

func TestSessions_GetReturnsSameForm(t *testing.T) {
	s := NewSessions(time.Minute, Options{Logger: logging.New("error")})
	defer s.Close()

	a := s.Get("visitor-a")
	assert.Same(t, a, s.Get("visitor-a"))
	assert.NotSame(t, a, s.Get("visitor-b"))
	assert.Equal(t, 2, s.Len())
}

func TestSessions_SweepEvictsIdle(t *testing.T) {
	s := NewSessions(time.Minute, Options{Logger: logging.New("error"), SubmitDelay: time.Millisecond})
	defer s.Close()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	old := s.Get("old")
	_, err := old.Submit(context.Background(), validInput())
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(50 * time.Second) }
	s.Get("fresh")

	removed := s.Sweep(base.Add(90 * time.Second))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())
	assert.NotSame(t, old, s.Get("old"), "evicted session starts over")
}

func TestSessions_CloseIsIdempotent(t *testing.T) {
	s := NewSessions(0, Options{Logger: logging.New("error")})
	assert.Equal(t, DefaultSessionTTL, s.ttl)
	s.Get("a")
	s.Close()
	s.Close()
	assert.Equal(t, 0, s.Len())
}

func TestSessions_GetAfterCloseIsNotRetained(t *testing.T) {
	s := NewSessions(time.Minute, Options{Logger: logging.New("error")})
	s.Get("a")
	s.Close()

	f := s.Get("a")
	require.NotNil(t, f)
	assert.Equal(t, StateEditing, f.State())
	assert.NotSame(t, f, s.Get("a"))
	assert.Equal(t, 0, s.Len())
}
