package wordcloud

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordcloud/internal/domain"
	"github.com/heartmarshall/wordcloud/pkg/ctxutil"
)

// Preview builds a word cloud from text without storing it. Anonymous
// callers are allowed.
func (s *Service) Preview(ctx context.Context, input PreviewInput) (*domain.WordCloud, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	table, cloud := s.build("preview", input.Title, input.Text)
	cloud.UserID, _ = ctxutil.UserIDFromCtx(ctx)
	cloud.Words = table.Sorted(input.Sort.OrDefault(), s.top(input.Top))

	s.log.DebugContext(ctx, "preview built",
		slog.Int("total_words", cloud.TotalWords),
		slog.Int("unique_words", cloud.UniqueWords),
	)

	return cloud, nil
}

// PreviewBatch builds one word cloud per document, concurrently, bounded by
// the configured number of workers. Results keep the order of the input.
func (s *Service) PreviewBatch(ctx context.Context, input BatchInput) ([]*domain.WordCloud, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	order := input.Sort.OrDefault()
	top := s.top(input.Top)

	results := make([]*domain.WordCloud, len(input.Documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchWorkers)

	for i, doc := range input.Documents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			table, cloud := s.build("batch", doc.Title, doc.Text)
			cloud.UserID = userID
			cloud.Words = table.Sorted(order, top)
			results[i] = cloud
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preview batch: %w", err)
	}

	s.log.DebugContext(ctx, "batch preview built", slog.Int("documents", len(results)))

	return results, nil
}
