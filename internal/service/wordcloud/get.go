package wordcloud

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wordcloud/internal/domain"
	wordfreq "github.com/heartmarshall/wordcloud/internal/wordcloud"
	"github.com/heartmarshall/wordcloud/pkg/ctxutil"
)

// Get returns a stored cloud of the authenticated user with its top-N words.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.WordCloud, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	cloud, err := s.clouds.GetByID(ctx, userID, input.CloudID)
	if err != nil {
		return nil, fmt.Errorf("get word cloud: %w", err)
	}

	top := s.top(input.Top)

	switch input.Sort.OrDefault() {
	case domain.SortAlpha:
		// Alphabetical order needs the whole table before truncating.
		all, err := s.clouds.ListWords(ctx, cloud.ID, 0)
		if err != nil {
			return nil, fmt.Errorf("list words: %w", err)
		}
		table := make(wordfreq.Table, len(all))
		for _, w := range all {
			table[w.Word] = w.Count
		}
		cloud.Words = table.Sorted(domain.SortAlpha, top)
	default:
		cloud.Words, err = s.clouds.ListWords(ctx, cloud.ID, top)
		if err != nil {
			return nil, fmt.Errorf("list words: %w", err)
		}
	}

	return cloud, nil
}

// List returns a page of the authenticated user's clouds, newest first.
// Words are not loaded.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.limit()
	clouds, total, err := s.clouds.List(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list word clouds: %w", err)
	}

	return &ListResult{Clouds: clouds, Total: total, Limit: limit, Offset: input.Offset}, nil
}
