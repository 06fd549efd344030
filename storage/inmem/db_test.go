package inmemdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/assignment"
	"github.com/abdelrhmanQ/shc2/core/attendance"
	"github.com/abdelrhmanQ/shc2/core/news"
	"github.com/abdelrhmanQ/shc2/core/user"
)

func Test_userRepository_roundTrip(t *testing.T) {
	db, _ := Open()
	repo := NewUserRepository(db)
	ctx := context.Background()

	usr := user.User{
		ID:        "u1",
		Name:      "Jane",
		Email:     "jane@test.cd",
		Role:      user.RoleStudent,
		CreatedAt: time.Now().UTC(),
	}
	created, err := repo.CreateUser(ctx, usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	assert.Equal(t, usr, created)

	byID, err := repo.GetUserByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserByID() failed: %v", err)
	}
	assert.Equal(t, usr, byID)

	byEmail, err := repo.GetUserByEmail(ctx, "jane@test.cd")
	if err != nil {
		t.Fatalf("GetUserByEmail() failed: %v", err)
	}
	assert.Equal(t, usr, byEmail)

	if _, err = repo.GetUserByID(ctx, "nope"); err != user.ErrNotFound {
		t.Errorf("GetUserByID() error = %v; wantErr %v", err, user.ErrNotFound)
	}
	if err = repo.CheckEmailUniqueness(ctx, "jane@test.cd"); err != user.ErrEmailExists {
		t.Errorf("CheckEmailUniqueness() error = %v; wantErr %v", err, user.ErrEmailExists)
	}
	assert.NoError(t, repo.CheckEmailUniqueness(ctx, "free@test.cd"))
}

func Test_userRepository_UpdateUser(t *testing.T) {
	db, _ := Open()
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.UpdateUser(ctx, user.User{ID: "ghost"}); err != user.ErrNotFound {
		t.Errorf("UpdateUser() error = %v; wantErr %v", err, user.ErrNotFound)
	}

	usr, _ := repo.CreateUser(ctx, user.User{ID: "u1", Role: user.RoleStudent})
	usr.Role = user.RoleAdmin
	updated, err := repo.UpdateUser(ctx, usr)
	if err != nil {
		t.Fatalf("UpdateUser() failed: %v", err)
	}
	assert.Equal(t, user.RoleAdmin, updated.Role)
}

func Test_userRepository_insertionOrder(t *testing.T) {
	db, _ := Open()
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if _, err := repo.CreateUser(ctx, user.User{ID: id}); err != nil {
			t.Fatalf("CreateUser(%s) failed: %v", id, err)
		}
	}

	users, err := repo.QueryAllUsers(ctx)
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	if assert.Len(t, users, 3) {
		assert.Equal(t, "c", users[0].ID)
		assert.Equal(t, "a", users[1].ID)
		assert.Equal(t, "b", users[2].ID)
	}
}

func Test_userRepository_DeleteUserByID(t *testing.T) {
	db, _ := Open()
	repo := NewUserRepository(db)
	ctx := context.Background()

	repo.CreateUser(ctx, user.User{ID: "u1"})
	repo.CreateUser(ctx, user.User{ID: "u2"})

	if err := repo.DeleteUserByID(ctx, "u1"); err != nil {
		t.Fatalf("DeleteUserByID() failed: %v", err)
	}

	users, _ := repo.QueryAllUsers(ctx)
	if assert.Len(t, users, 1) {
		assert.Equal(t, "u2", users[0].ID)
	}

	// deleting a missing id is a no-op
	assert.NoError(t, repo.DeleteUserByID(ctx, "ghost"))
}

func Test_capacity(t *testing.T) {
	db, err := OpenWithCapacity(2)
	if err != nil {
		t.Fatalf("OpenWithCapacity() failed: %v", err)
	}
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	userRepo.CreateUser(ctx, user.User{ID: "u1"})
	userRepo.CreateUser(ctx, user.User{ID: "u2"})
	if _, err = userRepo.CreateUser(ctx, user.User{ID: "u3"}); err != core.ErrStorageFull {
		t.Errorf("CreateUser() error = %v; wantErr %v", err, core.ErrStorageFull)
	}
	// a full table is left as it was
	users, _ := userRepo.QueryAllUsers(ctx)
	assert.Len(t, users, 2)

	attRepo := NewAttendanceRepository(db)
	attRepo.CreateRecord(ctx, attendance.Record{SessionID: "ABC123"})
	attRepo.CreateRecord(ctx, attendance.Record{SessionID: "XYZ789"})
	if _, err = attRepo.CreateRecord(ctx, attendance.Record{SessionID: "QWE456"}); err != core.ErrStorageFull {
		t.Errorf("CreateRecord() error = %v; wantErr %v", err, core.ErrStorageFull)
	}
}

func Test_assignmentRepository_commitStamp(t *testing.T) {
	db, _ := Open()
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	// a zero timestamp is stamped at write commit
	a, err := repo.CreateAssignment(ctx, assignment.Assignment{ID: "a1", Title: "t"})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	assert.False(t, a.Timestamp.IsZero())

	// a preset timestamp is preserved
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	b, err := repo.CreateAssignment(ctx, assignment.Assignment{ID: "a2", Title: "t", Timestamp: ts})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	assert.Equal(t, ts, b.Timestamp)
}

func Test_newsRepository_delete(t *testing.T) {
	db, _ := Open()
	repo := NewNewsRepository(db)
	ctx := context.Background()

	repo.CreateNews(ctx, news.News{ID: "n1", Title: "t1"})
	repo.CreateNews(ctx, news.News{ID: "n2", Title: "t2"})

	if err := repo.DeleteNewsByID(ctx, "n2"); err != nil {
		t.Fatalf("DeleteNewsByID() failed: %v", err)
	}

	items, _ := repo.QueryAllNews(ctx)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "n1", items[0].ID)
	}
}

func Test_attendanceRepository(t *testing.T) {
	db, _ := Open()
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	s, err := repo.CreateSession(ctx, attendance.Session{SessionID: "SESS_ABC123XYZ", Active: true})
	if err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}
	assert.False(t, s.StartTime.IsZero())

	repo.CreateRecord(ctx, attendance.Record{SessionID: "ABC123", StudentID: "u1"})
	repo.CreateRecord(ctx, attendance.Record{SessionID: "XYZ789", StudentID: "u2"})
	repo.CreateRecord(ctx, attendance.Record{SessionID: "QWE456", StudentID: "u1"})

	recs, err := repo.QueryRecordsByStudent(ctx, "u1")
	if err != nil {
		t.Fatalf("QueryRecordsByStudent() failed: %v", err)
	}
	assert.Len(t, recs, 2)

	recs, _ = repo.QueryRecordsByStudent(ctx, "ghost")
	assert.Empty(t, recs)
}
