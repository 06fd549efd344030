package inmemdb

import (
	"context"
	"time"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if len(repo.db.table) >= repo.db.cap {
		return assignment.Assignment{}, core.ErrStorageFull
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	repo.db.table[a.ID] = &a
	repo.db.order = append(repo.db.order, a.ID)
	return a, nil
}

func (repo *assignmentRepository) QueryAllAssignments(_ context.Context) ([]assignment.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]assignment.Assignment, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		if a, ok := repo.db.table[id]; ok {
			items = append(items, *a)
		}
	}
	return items, nil
}

func (repo *assignmentRepository) DeleteAssignmentByID(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.table, id)
	for i, oid := range repo.db.order {
		if oid == id {
			repo.db.order = append(repo.db.order[:i], repo.db.order[i+1:]...)
			break
		}
	}
	return nil
}
