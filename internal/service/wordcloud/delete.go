package wordcloud

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordcloud/internal/domain"
	"github.com/heartmarshall/wordcloud/pkg/ctxutil"
)

// Delete removes a stored cloud of the authenticated user.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.clouds.Delete(ctx, userID, input.CloudID); err != nil {
		return fmt.Errorf("delete word cloud: %w", err)
	}

	s.log.InfoContext(ctx, "word cloud deleted",
		slog.String("user_id", userID.String()),
		slog.String("cloud_id", input.CloudID.String()),
	)

	return nil
}
