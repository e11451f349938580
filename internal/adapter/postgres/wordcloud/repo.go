// Package wordcloud implements word cloud persistence using PostgreSQL.
// A cloud row stores the table summary; every table entry is a row in
// word_cloud_words.
package wordcloud

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordcloud/internal/adapter/postgres"
	"github.com/heartmarshall/wordcloud/internal/domain"
)

const (
	cloudsTable = "word_clouds"
	wordsTable  = "word_cloud_words"
	entity      = "word_cloud"
)

var cloudColumns = []string{
	"id", "user_id", "title", "source_slug", "total_words", "unique_words", "created_at",
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides word cloud persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  txManager
}

// New creates a new word cloud repository.
func New(pool *pgxpool.Pool, txm txManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the cloud row and all of its words in one transaction.
// cloud.Words must hold the full table, not a top-N slice.
func (r *Repo) Create(ctx context.Context, cloud *domain.WordCloud) error {
	return r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		query, args, err := postgres.Builder().
			Insert(cloudsTable).
			Columns(cloudColumns...).
			Values(cloud.ID, cloud.UserID, cloud.Title, cloud.SourceSlug,
				cloud.TotalWords, cloud.UniqueWords, cloud.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert %s: %w", cloudsTable, err)
		}

		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, entity, cloud.ID)
		}

		if len(cloud.Words) == 0 {
			return nil
		}

		rows := make([][]any, len(cloud.Words))
		for i, w := range cloud.Words {
			rows[i] = []any{cloud.ID, w.Word, w.Count}
		}

		n, err := q.CopyFrom(ctx,
			pgx.Identifier{wordsTable},
			[]string{"cloud_id", "word", "count"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return postgres.MapError(err, entity, cloud.ID)
		}
		if int(n) != len(rows) {
			return fmt.Errorf("copy %s: wrote %d of %d rows", wordsTable, n, len(rows))
		}

		return nil
	})
}

// Delete removes a cloud and its words. Returns domain.ErrNotFound if the
// cloud does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, cloudID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(cloudsTable).
		Where(sq.Eq{"id": cloudID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", cloudsTable, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, cloudID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, cloudID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the cloud summary without words.
// Returns domain.ErrNotFound if the cloud does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, cloudID uuid.UUID) (*domain.WordCloud, error) {
	query, args, err := postgres.Builder().
		Select(cloudColumns...).
		From(cloudsTable).
		Where(sq.Eq{"id": cloudID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", cloudsTable, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	cloud, err := scanCloud(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, cloudID)
	}

	return cloud, nil
}

// ListWords returns the words of a cloud ordered by count descending, then
// word in byte order. limit <= 0 returns every word.
func (r *Repo) ListWords(ctx context.Context, cloudID uuid.UUID, limit int) ([]domain.WordCount, error) {
	builder := postgres.Builder().
		Select("word", "count").
		From(wordsTable).
		Where(sq.Eq{"cloud_id": cloudID}).
		OrderBy("count DESC", `word COLLATE "C" ASC`)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", wordsTable, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", wordsTable, err)
	}

	words, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WordCount, error) {
		var w domain.WordCount
		err := row.Scan(&w.Word, &w.Count)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", wordsTable, err)
	}

	return words, nil
}

// List returns a user's clouds ordered by created_at DESC with pagination,
// plus the total number of clouds the user owns.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WordCloud, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(cloudsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count %s: %w", cloudsTable, err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", cloudsTable, err)
	}

	query, args, err := postgres.Builder().
		Select(cloudColumns...).
		From(cloudsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build select %s: %w", cloudsTable, err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", cloudsTable, err)
	}
	defer rows.Close()

	clouds := make([]domain.WordCloud, 0, limit)
	for rows.Next() {
		cloud, err := scanCloud(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", cloudsTable, err)
		}
		clouds = append(clouds, *cloud)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s: %w", cloudsTable, err)
	}

	return clouds, total, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanCloud(row pgx.Row) (*domain.WordCloud, error) {
	var c domain.WordCloud
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.SourceSlug, &c.TotalWords, &c.UniqueWords, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
