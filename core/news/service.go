package news

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/abdelrhmanQ/shc2/core"
)

var (
	ErrNotFound = errors.New("news item not found")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateNews(ctx context.Context, n News) (News, error)
		QueryAllNews(ctx context.Context) ([]News, error)
		DeleteNewsByID(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create publishes a news item stamped with the author's email, or the
// configured admin fallback when posted outside a session.
func (svc *Service) Create(ctx context.Context, nn NewNews, authorEmail string) (News, error) {
	if err := nn.Validate(); err != nil {
		return News{}, err
	}
	n := News{
		ID:          core.NewID(),
		Title:       nn.Title,
		Description: nn.Description,
		AuthorEmail: authorEmail,
		Timestamp:   NowFunc().UTC(),
		FileURL:     nn.FileURL,
	}
	return svc.repo.CreateNews(ctx, n)
}

// Search loads the whole collection, applies the case-insensitive substring
// match and sorts newest first.
func (svc *Service) Search(ctx context.Context, term string) (ListResult, error) {
	all, err := svc.repo.QueryAllNews(ctx)
	if err != nil {
		return ListResult{}, err
	}

	term = core.CleanString(term, true /* lower */)
	items := make([]News, 0, len(all))
	for _, n := range all {
		if term != "" && !matchesSearch(n, term) {
			continue
		}
		items = append(items, n)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Timestamp.After(items[j].Timestamp) })
	return ListResult{Items: items, Total: len(all)}, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	if err := svc.repo.DeleteNewsByID(ctx, id); err != nil {
		svc.log.Error("deleting news item", err, id)
		return err
	}
	return nil
}

func matchesSearch(n News, term string) bool {
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Description), term)
}
