package links

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Link is a tracked short link.
type Link struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Destination string    `json:"destination"`
	Visits      int64     `json:"visits"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository persists links.
type Repository interface {
	// Insert stores a new link, failing with ErrCodeTaken if the code exists.
	Insert(ctx context.Context, link Link) error
	// FindByCode fails with ErrNotFound for unknown codes.
	FindByCode(ctx context.Context, code string) (Link, error)
	// IncrementVisits atomically adds one visit and returns the new count.
	IncrementVisits(ctx context.Context, code string) (int64, error)
}
