package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abdelrhmanQ/shc2/core/attendance"
)

type attendanceRepository struct {
	sessions *mongo.Collection
	records  *mongo.Collection
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{
		sessions: db.db.Collection(colAttendanceSessions),
		records:  db.db.Collection(colAttendanceRecords),
	}
}

func (repo *attendanceRepository) CreateSession(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	if s.StartTime.IsZero() {
		s.StartTime = time.Now().UTC()
	}
	if _, err := repo.sessions.InsertOne(ctx, s); err != nil {
		return attendance.Session{}, errors.Wrap(err, "inserting attendance session")
	}
	return s, nil
}

func (repo *attendanceRepository) CreateRecord(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	if _, err := repo.records.InsertOne(ctx, r); err != nil {
		return attendance.Record{}, errors.Wrap(err, "inserting attendance record")
	}
	return r, nil
}

func (repo *attendanceRepository) QueryRecordsByStudent(ctx context.Context, studentID string) ([]attendance.Record, error) {
	cur, err := repo.records.Find(ctx, bson.M{"student_id": studentID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "querying attendance records")
	}
	var recs []attendance.Record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(err, "decoding attendance records")
	}
	return recs, nil
}
