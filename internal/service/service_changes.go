package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
)

type changeService struct {
	feed store.ChangeFeed

	logger *logger.Logger
}

func NewChangeService(feed store.ChangeFeed, logger *logger.Logger) ChangeService {
	return &changeService{feed: feed, logger: logger}
}

// Subscribe rejects unknown table names; no tables means all of them.
func (c *changeService) Subscribe(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error) {
	for _, t := range tables {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTable, t)
		}
	}

	events, err := c.feed.Subscribe(ctx, tables...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "changeService.Subscribe").Msg("error subscribing to change feed")
		return nil, fmt.Errorf("error subscribing to change feed: %w", err)
	}
	return events, nil
}
