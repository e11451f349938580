package wordcloud

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcloud/internal/config"
	"github.com/heartmarshall/wordcloud/internal/domain"
	wordfreq "github.com/heartmarshall/wordcloud/internal/wordcloud"
)

type cloudRepo interface {
	Create(ctx context.Context, cloud *domain.WordCloud) error
	GetByID(ctx context.Context, userID, cloudID uuid.UUID) (*domain.WordCloud, error)
	ListWords(ctx context.Context, cloudID uuid.UUID, limit int) ([]domain.WordCount, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WordCloud, int, error)
	Delete(ctx context.Context, userID, cloudID uuid.UUID) error
}

// Service builds word frequency tables and manages stored word clouds.
type Service struct {
	clouds cloudRepo
	cfg    config.WordCloudConfig
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new word cloud service.
func NewService(log *slog.Logger, clouds cloudRepo, cfg config.WordCloudConfig) *Service {
	return &Service{
		clouds: clouds,
		cfg:    cfg,
		log:    log.With("service", "wordcloud"),
		now:    time.Now,
	}
}

// ListResult is one page of stored clouds. Limit is the page size applied.
type ListResult struct {
	Clouds []domain.WordCloud
	Total  int
	Limit  int
	Offset int
}

// build counts text and returns the table with an unsaved cloud describing it.
// The cloud's Words are left empty.
func (s *Service) build(operation, title, text string) (wordfreq.Table, *domain.WordCloud) {
	table := wordfreq.BuildFrequencyTable(text)
	total := table.Total()

	recordTable(operation, len(text), total)

	title = strings.TrimSpace(title)
	return table, &domain.WordCloud{
		Title:       title,
		SourceSlug:  slugify(title),
		TotalWords:  total,
		UniqueWords: len(table),
		CreatedAt:   s.now().UTC(),
	}
}

func (s *Service) top(requested int) int {
	if requested == 0 {
		return s.cfg.DefaultTop
	}
	return requested
}

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases s and joins its ASCII alphanumeric runs with hyphens.
func slugify(s string) string {
	return strings.Trim(slugNonAlnum.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
