package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abdelrhmanQ/shc2/core/assignment"
)

type assignmentRepository struct {
	c *mongo.Collection
}

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{c: db.db.Collection(colAssignments)}
}

func (repo *assignmentRepository) CreateAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	// server-time semantics: the stamp is taken at write commit, not call time
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	if _, err := repo.c.InsertOne(ctx, a); err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) QueryAllAssignments(ctx context.Context) ([]assignment.Assignment, error) {
	cur, err := repo.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	var items []assignment.Assignment
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decoding assignments")
	}
	return items, nil
}

func (repo *assignmentRepository) DeleteAssignmentByID(ctx context.Context, id string) error {
	if _, err := repo.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return nil
}
