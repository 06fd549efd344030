package news_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abdelrhmanQ/shc2/core/news"
	inmemdb "github.com/abdelrhmanQ/shc2/storage/inmem"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setup(t *testing.T) *news.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return news.NewService(inmemdb.NewNewsRepository(db), nopLogger{})
}

func Test_Service_Create(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, news.NewNews{
		Title:       " Exam schedule ",
		Description: "Finals start next Monday.",
		FileURL:     "https://cdn.shc.com/exams.pdf",
	}, "admin@shc.com")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "Exam schedule", n.Title)
	assert.Equal(t, "admin@shc.com", n.AuthorEmail)
	assert.Equal(t, "https://cdn.shc.com/exams.pdf", n.FileURL)
	assert.False(t, n.Timestamp.IsZero())
}

func Test_Service_Create_validation(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	tests := []struct {
		name string
		nn   news.NewNews
	}{
		{name: "all missing", nn: news.NewNews{}},
		{name: "missing description", nn: news.NewNews{Title: "t"}},
		{name: "bad file url", nn: news.NewNews{Title: "t", Description: "d", FileURL: "not a url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.nn, "admin@shc.com"); err == nil {
				t.Error("Create() expected a validation error")
			}
		})
	}
}

func Test_Service_Search(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	news.NowFunc = func() time.Time {
		now = now.Add(time.Minute) // each publish lands later than the previous
		return now
	}
	defer func() { news.NowFunc = time.Now }()

	mustCreate := func(title, desc string) news.News {
		n, err := svc.Create(ctx, news.NewNews{Title: title, Description: desc}, "admin@shc.com")
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", title, err)
		}
		return n
	}

	n1 := mustCreate("Sports day", "annual sports day on friday")
	n2 := mustCreate("Library hours", "the library closes early")
	n3 := mustCreate("Exam schedule", "finals schedule published in the library")

	ids := func(items []news.News) []string {
		out := make([]string, 0, len(items))
		for _, n := range items {
			out = append(out, n.ID)
		}
		return out
	}

	tests := []struct {
		name      string
		term      string
		wantIDs   []string
		wantTotal int
	}{
		{name: "all, newest first", term: "", wantIDs: []string{n3.ID, n2.ID, n1.ID}, wantTotal: 3},
		{name: "search title or description", term: "LIBRARY", wantIDs: []string{n3.ID, n2.ID}, wantTotal: 3},
		{name: "no match keeps total", term: "lol", wantIDs: []string{}, wantTotal: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Search(ctx, tt.term)
			if err != nil {
				t.Fatalf("Search() failed: %v", err)
			}
			assert.Equal(t, tt.wantIDs, ids(res.Items))
			assert.Equal(t, tt.wantTotal, res.Total)
		})
	}
}

func Test_Service_Delete(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	n1, err := svc.Create(ctx, news.NewNews{Title: "t1", Description: "d1"}, "admin@shc.com")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	n2, err := svc.Create(ctx, news.NewNews{Title: "t2", Description: "d2"}, "admin@shc.com")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if err := svc.Delete(ctx, n2.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	res, _ := svc.Search(ctx, "")
	if assert.Len(t, res.Items, 1) {
		assert.Equal(t, n1.ID, res.Items[0].ID)
	}
}
