package attendance

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/user"
)

var (
	// errors
	ErrInvalidCode      = errors.New("invalid session code")
	ErrNotAuthenticated = errors.New("please log in to mark attendance")
	ErrRedeemInFlight   = errors.New("attendance submission already in progress")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateSession(ctx context.Context, s Session) (Session, error)
		CreateRecord(ctx context.Context, r Record) (Record, error)
		QueryRecordsByStudent(ctx context.Context, studentID string) ([]Record, error)
	}

	Service struct {
		repo Repository
		log  core.Logger

		mu       sync.Mutex
		current  *Session            // last-issued session, local slot only
		inFlight map[string]struct{} // student ids with a pending redemption
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log, inFlight: make(map[string]struct{})}
}

// Issue generates and persists a new session and remembers it as the
// current one for the "end session" affordance.
func (svc *Service) Issue(ctx context.Context, ns NewSession, createdBy string) (Session, error) {
	if err := ns.Validate(); err != nil {
		return Session{}, err
	}
	s := Session{
		SessionID: core.NewSessionID(),
		CourseID:  ns.CourseID,
		CreatedBy: createdBy,
		ExpiresAt: NowFunc().Add(time.Duration(ns.DurationMinutes) * time.Minute),
		Active:    true,
	}
	s, err := svc.repo.CreateSession(ctx, s)
	if err != nil {
		return Session{}, err
	}

	svc.mu.Lock()
	svc.current = &s
	svc.mu.Unlock()
	return s, nil
}

// CurrentSession returns the last-issued session, if one is still held.
func (svc *Service) CurrentSession() (Session, bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.current == nil {
		return Session{}, false
	}
	return *svc.current, true
}

// EndSession clears the local slot and reports whether one was held.
// The persisted Active flag is NOT flipped; see DESIGN.md.
func (svc *Service) EndSession() bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	had := svc.current != nil
	svc.current = nil
	return had
}

// Redeem checks the code against the fixed whitelist and writes a presence
// record for the current user. Re-entrant calls for the same student are
// rejected while a write is in flight.
func (svc *Service) Redeem(ctx context.Context, code string, usr user.User) (Record, error) {
	code = core.CleanString(code)
	if code == "" {
		return Record{}, core.NewValidationError(
			errors.New("session code is required"),
			core.FieldError{Field: "code", Error: "this field is required"},
		)
	}
	if usr.ID == "" {
		return Record{}, ErrNotAuthenticated
	}
	if !CodeRedeemable(code) {
		return Record{}, ErrInvalidCode
	}

	svc.mu.Lock()
	if _, busy := svc.inFlight[usr.ID]; busy {
		svc.mu.Unlock()
		return Record{}, ErrRedeemInFlight
	}
	svc.inFlight[usr.ID] = struct{}{}
	svc.mu.Unlock()
	defer func() {
		svc.mu.Lock()
		delete(svc.inFlight, usr.ID)
		svc.mu.Unlock()
	}()

	r := Record{
		SessionID:    code,
		CourseID:     placeholderCourseID,
		StudentID:    usr.ID,
		StudentEmail: usr.Email,
		Status:       StatusPresent,
	}
	return svc.repo.CreateRecord(ctx, r)
}

// Records returns the student's presence history, newest first.
func (svc *Service) Records(ctx context.Context, studentID string) ([]Record, error) {
	recs, err := svc.repo.QueryRecordsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Timestamp.After(recs[j].Timestamp) })
	return recs, nil
}
