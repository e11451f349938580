package wordcloud

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcloud/internal/domain"
	"github.com/heartmarshall/wordcloud/pkg/ctxutil"
)

// Create builds a word cloud from text and stores it for the authenticated
// user. The full table is stored; the returned cloud carries the requested
// top-N view.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.WordCloud, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	table, cloud := s.build("create", input.Title, input.Text)
	cloud.ID = uuid.New()
	cloud.UserID = userID
	cloud.Words = table.Ranked()

	if err := s.clouds.Create(ctx, cloud); err != nil {
		return nil, fmt.Errorf("create word cloud: %w", err)
	}

	s.log.InfoContext(ctx, "word cloud created",
		slog.String("user_id", userID.String()),
		slog.String("cloud_id", cloud.ID.String()),
		slog.Int("total_words", cloud.TotalWords),
		slog.Int("unique_words", cloud.UniqueWords),
	)

	cloud.Words = table.Sorted(input.Sort.OrDefault(), s.top(input.Top))
	return cloud, nil
}
