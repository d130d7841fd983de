package leads

import (
	"sync"
	"time"
)

// DefaultSessionTTL is how long an untouched visitor form is kept.
const DefaultSessionTTL = 30 * time.Minute

// Sessions holds one Form per visitor session in memory. Forms idle longer
// than the TTL are evicted by a background sweep.
type Sessions struct {
	opts Options
	ttl  time.Duration
	now  func() time.Time

	mu     sync.Mutex
	forms  map[string]*session
	closed bool

	stop     chan struct{}
	stopOnce sync.Once
}

type session struct {
	form     *Form
	lastSeen time.Time
}

// NewSessions creates a session store whose forms share opts. The sweep
// runs every ttl/2 until Close.
func NewSessions(ttl time.Duration, opts Options) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Sessions{
		opts:  opts.withDefaults(),
		ttl:   ttl,
		now:   time.Now,
		forms: make(map[string]*session),
		stop:  make(chan struct{}),
	}
	go s.sweepLoop(ttl / 2)
	return s
}

// Get returns the form for id, creating it on first use. After Close it
// returns a fresh form that is not kept.
func (s *Sessions) Get(id string) *Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewForm(s.opts)
	}
	sess, ok := s.forms[id]
	if !ok {
		sess = &session{form: NewForm(s.opts)}
		s.forms[id] = sess
	}
	sess.lastSeen = s.now()
	return sess.form
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Sweep evicts sessions not seen since now minus the TTL and returns how
// many were removed.
func (s *Sessions) Sweep(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	var stale []*Form
	for id, sess := range s.forms {
		if sess.lastSeen.Before(cutoff) {
			stale = append(stale, sess.form)
			delete(s.forms, id)
		}
	}
	s.mu.Unlock()

	for _, form := range stale {
		form.Close()
	}
	if len(stale) > 0 {
		s.opts.Logger.Debug("evicted idle contact form sessions", "count", len(stale))
	}
	return len(stale)
}

func (s *Sessions) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep(s.now())
		case <-s.stop:
			return
		}
	}
}

// Close stops the sweep and every pending auto-dismiss timer.
func (s *Sessions) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.closed = true
		for id, sess := range s.forms {
			sess.form.Close()
			delete(s.forms, id)
		}
	})
}
