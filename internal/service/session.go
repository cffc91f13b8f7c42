package service

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/models"
)

// SessionState is where a user's recommendation view is in its lifecycle.
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateLoading   SessionState = "loading"
	StatePopulated SessionState = "populated"
	StateEmpty     SessionState = "empty"
)

// Outcome says how the last load or generate for a session ended.
type Outcome string

const (
	OutcomeLoaded           Outcome = "loaded"
	OutcomeGenerated        Outcome = "generated"
	OutcomeNoProfile        Outcome = "no_profile"
	OutcomeEmptyCatalog     Outcome = "empty_catalog"
	OutcomeGenerationFailed Outcome = "generation_failed"
)

// User facing notices.
const (
	NoticeGenerated        = "New recommendations generated!"
	NoticeGenerationFailed = "Failed to generate recommendations"
	NoticeRatingSaved      = "Thank you for your feedback!"
	NoticeRatingFailed     = "Failed to save rating"
)

// Session is one user's current recommendation view.
type Session struct {
	UserID          uuid.UUID
	State           SessionState
	Outcome         Outcome
	Notice          string
	Recommendations []models.Recommendation
}

func (s Session) clone() Session {
	if s.Recommendations != nil {
		recs := make([]models.Recommendation, len(s.Recommendations))
		copy(recs, s.Recommendations)
		s.Recommendations = recs
	}
	return s
}

// Has reports whether id is one of the session's recommendations.
func (s Session) Has(id uuid.UUID) bool {
	for i := range s.Recommendations {
		if s.Recommendations[i].ID == id {
			return true
		}
	}
	return false
}

func (s Session) food(id uuid.UUID) *models.Food {
	for i := range s.Recommendations {
		if s.Recommendations[i].ID == id {
			return s.Recommendations[i].Food
		}
	}
	return nil
}

type sessionEntry struct {
	userID  uuid.UUID
	session Session
	latest  uint64
	touched time.Time
	elem    *list.Element
}

// Defaults for a SessionRegistry.
const (
	DefaultSessionIdleTTL = 30 * time.Minute
	DefaultMaxSessions    = 10000
)

// SessionOption configures a SessionRegistry.
type SessionOption func(*SessionRegistry)

// WithIdleTTL drops sessions that have not been touched for d.
func WithIdleTTL(d time.Duration) SessionOption {
	return func(r *SessionRegistry) {
		if d > 0 {
			r.idleTTL = d
		}
	}
}

// WithMaxSessions caps how many sessions are held. The least recently used
// one is dropped first.
func WithMaxSessions(n int) SessionOption {
	return func(r *SessionRegistry) {
		if n > 0 {
			r.maxSessions = n
		}
	}
}

// WithSessionClock replaces time.Now.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(r *SessionRegistry) {
		if now != nil {
			r.now = now
		}
	}
}

// SessionRegistry holds the sessions of recently active users. Each load or
// generate takes a token from begin; its result is applied only while that
// token is still the most recent one issued for the user. Tokens are unique
// across the registry, so a dropped session never revives a stale result.
//
// A session that is loading is never dropped. Idle sessions fall back to the
// store on their next load.
type SessionRegistry struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*sessionEntry
	lru         *list.List
	seq         uint64
	idleTTL     time.Duration
	maxSessions int
	now         func() time.Time
}

func NewSessionRegistry(opts ...SessionOption) *SessionRegistry {
	r := &SessionRegistry{
		sessions:    make(map[uuid.UUID]*sessionEntry),
		lru:         list.New(),
		idleTTL:     DefaultSessionIdleTTL,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of sessions held.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *SessionRegistry) expired(e *sessionEntry, now time.Time) bool {
	return e.session.State != StateLoading && now.Sub(e.touched) > r.idleTTL
}

func (r *SessionRegistry) touch(e *sessionEntry, now time.Time) {
	e.touched = now
	r.lru.MoveToFront(e.elem)
}

func (r *SessionRegistry) remove(e *sessionEntry) {
	r.lru.Remove(e.elem)
	delete(r.sessions, e.userID)
}

// lookup returns the user's live session without creating one.
func (r *SessionRegistry) lookup(userID uuid.UUID) (*sessionEntry, bool) {
	e, ok := r.sessions[userID]
	if !ok {
		return nil, false
	}
	now := r.now()
	if r.expired(e, now) {
		r.remove(e)
		return nil, false
	}
	r.touch(e, now)
	return e, true
}

// entry returns the user's session, making room for a new one if needed.
func (r *SessionRegistry) entry(userID uuid.UUID) *sessionEntry {
	if e, ok := r.lookup(userID); ok {
		return e
	}
	now := r.now()
	r.evict(now)

	e := &sessionEntry{userID: userID, session: Session{UserID: userID, State: StateIdle}, touched: now}
	e.elem = r.lru.PushFront(e)
	r.sessions[userID] = e
	return e
}

// evict drops expired sessions and then the least recently used ones until
// there is room for one more. Loading sessions are moved to the front instead.
func (r *SessionRegistry) evict(now time.Time) {
	for i := r.lru.Len(); i > 0; i-- {
		back := r.lru.Back()
		if back == nil {
			return
		}
		e := back.Value.(*sessionEntry)
		switch {
		case e.session.State == StateLoading:
			r.touch(e, now)
		case r.expired(e, now), len(r.sessions) >= r.maxSessions:
			r.remove(e)
		default:
			return
		}
	}
}

// begin marks the session as loading and returns the new token together with
// the session as it was before.
func (r *SessionRegistry) begin(userID uuid.UUID) (uint64, Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(userID)
	prev := e.session.clone()
	r.seq++
	e.latest = r.seq
	e.session.State = StateLoading
	return e.latest, prev
}

// finish applies fn if token is still current and returns the resulting
// session. ok is false when the token was superseded or the session dropped.
func (r *SessionRegistry) finish(userID uuid.UUID, token uint64, fn func(*Session)) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(userID)
	if !ok || e.latest != token {
		return Session{}, false
	}
	fn(&e.session)
	return e.session.clone(), true
}

// restore puts prev back if token is still current, keeping outcome.
func (r *SessionRegistry) restore(userID uuid.UUID, token uint64, prev Session, outcome Outcome) (Session, bool) {
	return r.finish(userID, token, func(s *Session) {
		*s = prev
		if outcome != "" {
			s.Outcome = outcome
		}
	})
}

// setRating updates the rating of one in-memory row and returns that row.
func (r *SessionRegistry) setRating(userID, recID uuid.UUID, rating int) (models.Recommendation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(userID)
	if !ok {
		return models.Recommendation{}, false
	}
	for i := range e.session.Recommendations {
		if e.session.Recommendations[i].ID == recID {
			v := rating
			e.session.Recommendations[i].UserRating = &v
			return e.session.Recommendations[i], true
		}
	}
	return models.Recommendation{}, false
}

// Snapshot returns a copy of the user's session. Users without one get an
// idle session and nothing is stored for them.
func (r *SessionRegistry) Snapshot(userID uuid.UUID) Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(userID)
	if !ok {
		return Session{UserID: userID, State: StateIdle}
	}
	return e.session.clone()
}

// Invalidate drops the session and discards any result still in flight.
func (r *SessionRegistry) Invalidate(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[userID]; ok {
		r.remove(e)
	}
}
