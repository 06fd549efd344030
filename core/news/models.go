package news

import (
	"time"

	"github.com/abdelrhmanQ/shc2/core"
)

type News struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	AuthorEmail string    `json:"author_email" bson:"author_email"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"` // store-assigned
	FileURL     string    `json:"file_url,omitempty" bson:"file_url,omitempty"`
}

// NewNews contains the fields required to publish a news item.
type NewNews struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	FileURL     string `json:"file_url" validate:"omitempty,url"`
}

func (nn *NewNews) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Description = core.CleanString(nn.Description)
	nn.FileURL = core.CleanString(nn.FileURL)
	return core.Validate.Struct(nn)
}

// ListResult distinguishes an empty collection from an empty match set.
type ListResult struct {
	Items []News `json:"items"`
	Total int    `json:"total"` // collection size before search
}
