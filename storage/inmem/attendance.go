package inmemdb

import (
	"context"
	"time"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTables
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) CreateSession(_ context.Context, s attendance.Session) (attendance.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if len(repo.db.sessions) >= repo.db.cap {
		return attendance.Session{}, core.ErrStorageFull
	}
	// commit-time stamp: "server time" semantics for the start of the window
	if s.StartTime.IsZero() {
		s.StartTime = time.Now().UTC()
	}
	repo.db.sessions = append(repo.db.sessions, s)
	return s, nil
}

func (repo *attendanceRepository) CreateRecord(_ context.Context, r attendance.Record) (attendance.Record, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if len(repo.db.records) >= repo.db.cap {
		return attendance.Record{}, core.ErrStorageFull
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	repo.db.records = append(repo.db.records, r)
	return r, nil
}

func (repo *attendanceRepository) QueryRecordsByStudent(_ context.Context, studentID string) ([]attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	recs := make([]attendance.Record, 0, len(repo.db.records))
	for _, r := range repo.db.records {
		if r.StudentID == studentID {
			recs = append(recs, r)
		}
	}
	return recs, nil
}
