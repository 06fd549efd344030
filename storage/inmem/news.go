package inmemdb

import (
	"context"
	"time"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/news"
)

type newsRepository struct {
	db *newsTable
}

func NewNewsRepository(db *DB) news.Repository {
	return &newsRepository{db: db.news}
}

func (repo *newsRepository) CreateNews(_ context.Context, n news.News) (news.News, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if len(repo.db.table) >= repo.db.cap {
		return news.News{}, core.ErrStorageFull
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	repo.db.table[n.ID] = &n
	repo.db.order = append(repo.db.order, n.ID)
	return n, nil
}

func (repo *newsRepository) QueryAllNews(_ context.Context) ([]news.News, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]news.News, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		if n, ok := repo.db.table[id]; ok {
			items = append(items, *n)
		}
	}
	return items, nil
}

func (repo *newsRepository) DeleteNewsByID(_ context.Context, id string) error {
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
