package user

import "sync"

// State is a snapshot of the session handed to subscribers. Pages use it to
// sync auth-gated chrome (login link vs. user menu vs. admin link).
type State struct {
	User          *User
	Authenticated bool
	Admin         bool
}

// Session is the single-slot CurrentUserRef: at most one live user,
// overwritten wholesale on login and cleared on logout. Every transition
// notifies subscribers, including a logout from an already-anonymous state.
type Session struct {
	mu      sync.RWMutex
	current *User
	subs    map[int]func(State)
	nextSub int
}

func NewSession() *Session {
	return &Session{subs: make(map[int]func(State))}
}

// Login replaces the current user and notifies subscribers.
func (s *Session) Login(usr User) {
	s.mu.Lock()
	s.current = &usr
	st := s.state()
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs, st)
}

// Logout clears the slot unconditionally. Idempotent.
func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	st := s.state()
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs, st)
}

// Current returns the logged-in user, if any.
func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

func (s *Session) IsAdmin() bool {
	usr, ok := s.Current()
	return ok && usr.IsAdmin()
}

// Subscribe registers fn to run on every state transition and returns a
// cancel func. Cancel must be called on component teardown so a removed
// page is never re-rendered.
func (s *Session) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// state must be called with the lock held.
func (s *Session) state() State {
	st := State{}
	if s.current != nil {
		usr := *s.current
		st.User = &usr
		st.Authenticated = true
		st.Admin = usr.IsAdmin()
	}
	return st
}

// snapshotSubs must be called with the lock held.
func (s *Session) snapshotSubs() []func(State) {
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(State), st State) {
	for _, fn := range subs {
		fn(st)
	}
}
