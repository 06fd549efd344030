package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abdelrhmanQ/shc2/core/news"
)

type newsRepository struct {
	c *mongo.Collection
}

func NewNewsRepository(db *DB) news.Repository {
	return &newsRepository{c: db.db.Collection(colNews)}
}

func (repo *newsRepository) CreateNews(ctx context.Context, n news.News) (news.News, error) {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	if _, err := repo.c.InsertOne(ctx, n); err != nil {
		return news.News{}, errors.Wrap(err, "inserting news")
	}
	return n, nil
}

func (repo *newsRepository) QueryAllNews(ctx context.Context) ([]news.News, error) {
	cur, err := repo.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "querying news")
	}
	var items []news.News
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decoding news")
	}
	return items, nil
}

func (repo *newsRepository) DeleteNewsByID(ctx context.Context, id string) error {
	if _, err := repo.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(err, "deleting news")
	}
	return nil
}
