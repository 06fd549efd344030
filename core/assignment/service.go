package assignment

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/abdelrhmanQ/shc2/core"
)

var (
	ErrNotFound = errors.New("assignment not found")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
		QueryAllAssignments(ctx context.Context) ([]Assignment, error)
		DeleteAssignmentByID(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create posts an assignment. authorEmail comes from the current session;
// callers pass the configured admin fallback when there is none.
func (svc *Service) Create(ctx context.Context, na NewAssignment, authorEmail string) (Assignment, error) {
	if err := na.Validate(); err != nil {
		return Assignment{}, err
	}
	now := NowFunc().UTC()
	a := Assignment{
		ID:          core.NewID(),
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		AuthorEmail: authorEmail,
		CreatedAt:   now,
		Timestamp:   now,
	}
	return svc.repo.CreateAssignment(ctx, a)
}

// Filter loads the whole collection, applies search and due-date filter in
// memory and sorts ascending by due date.
func (svc *Service) Filter(ctx context.Context, q Query) (ListResult, error) {
	all, err := svc.repo.QueryAllAssignments(ctx)
	if err != nil {
		return ListResult{}, err
	}

	now := NowFunc()
	search := core.CleanString(q.Search, true /* lower */)
	items := make([]Assignment, 0, len(all))
	for _, a := range all {
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		switch q.Filter {
		case FilterUpcoming:
			if a.Overdue(now) {
				continue
			}
		case FilterOverdue:
			if !a.Overdue(now) {
				continue
			}
		}
		items = append(items, a)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].DueDate.Before(items[j].DueDate) })
	return ListResult{Items: items, Total: len(all)}, nil
}

// Delete removes exactly the matching record. Storage errors are logged and
// surfaced; the collection is left unchanged.
func (svc *Service) Delete(ctx context.Context, id string) error {
	if err := svc.repo.DeleteAssignmentByID(ctx, id); err != nil {
		svc.log.Error("deleting assignment", err, id)
		return err
	}
	return nil
}

func matchesSearch(a Assignment, term string) bool {
	return strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Description), term)
}
