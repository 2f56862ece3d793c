// Package feed stores the append-only public feed in the list
// latest_stocks as encoded models.FeedEntry records.
package feed

import (
	"context"

	"github.com/dmitrijs2005/vaccx/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, entry models.FeedEntry) error
	// Latest returns up to limit raw records, most recent first. Decoding is
	// left to the caller so one bad record does not fail the read.
	Latest(ctx context.Context, limit int) ([][]byte, error)
}
