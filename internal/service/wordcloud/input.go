package wordcloud

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcloud/internal/config"
	"github.com/heartmarshall/wordcloud/internal/domain"
)

const (
	maxTitleLength = 200
	maxListLimit   = 100
	defaultLimit   = 20
)

// PreviewInput holds the parameters for building a table without storing it.
type PreviewInput struct {
	Title string
	Text  string
	Top   int              // 0 = configured default
	Sort  domain.SortOrder // "" = count
}

// Validate checks all fields against the configured limits and collects all errors.
func (i PreviewInput) Validate(cfg config.WordCloudConfig) error {
	errs := validateDocument("", i.Title, i.Text, cfg)
	errs = append(errs, validateView(i.Top, i.Sort, cfg)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the parameters for building and storing a table.
type CreateInput struct {
	Title string
	Text  string
	Top   int
	Sort  domain.SortOrder
}

// Validate checks all fields and collects all errors. A title is required
// for stored clouds.
func (i CreateInput) Validate(cfg config.WordCloudConfig) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	errs = append(errs, validateDocument("", i.Title, i.Text, cfg)...)
	errs = append(errs, validateView(i.Top, i.Sort, cfg)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetInput holds the parameters for reading a stored cloud.
type GetInput struct {
	CloudID uuid.UUID
	Top     int
	Sort    domain.SortOrder
}

// Validate checks all fields and collects all errors.
func (i GetInput) Validate(cfg config.WordCloudConfig) error {
	var errs []domain.FieldError

	if i.CloudID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cloud_id", Message: "required"})
	}
	errs = append(errs, validateView(i.Top, i.Sort, cfg)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination parameters for listing stored clouds.
type ListInput struct {
	Limit  int // 0 = 20
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return defaultLimit
	}
	return i.Limit
}

// DeleteInput holds the parameters for deleting a stored cloud.
type DeleteInput struct {
	CloudID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.CloudID == uuid.Nil {
		return domain.NewValidationError("cloud_id", "required")
	}
	return nil
}

// Document is one text of a batch preview.
type Document struct {
	Title string
	Text  string
}

// BatchInput holds the parameters for previewing several documents at once.
// Top and Sort apply to every document.
type BatchInput struct {
	Documents []Document
	Top       int
	Sort      domain.SortOrder
}

// Validate checks all fields and collects all errors.
func (i BatchInput) Validate(cfg config.WordCloudConfig) error {
	var errs []domain.FieldError

	switch {
	case len(i.Documents) == 0:
		errs = append(errs, domain.FieldError{Field: "documents", Message: "at least one document required"})
	case len(i.Documents) > cfg.MaxBatchDocuments:
		errs = append(errs, domain.FieldError{
			Field:   "documents",
			Message: fmt.Sprintf("max %d documents per batch", cfg.MaxBatchDocuments),
		})
	}
	for idx, doc := range i.Documents {
		prefix := fmt.Sprintf("documents[%d].", idx)
		errs = append(errs, validateDocument(prefix, doc.Title, doc.Text, cfg)...)
	}
	errs = append(errs, validateView(i.Top, i.Sort, cfg)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateDocument checks a title/text pair. The text may contain no words,
// but it may not be blank.
func validateDocument(prefix, title, text string, cfg config.WordCloudConfig) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "text", Message: "required"})
	}
	if len(text) > cfg.MaxTextBytes {
		errs = append(errs, domain.FieldError{
			Field:   prefix + "text",
			Message: fmt.Sprintf("max %d bytes", cfg.MaxTextBytes),
		})
	}
	if !storable(text) {
		errs = append(errs, domain.FieldError{Field: prefix + "text", Message: unstorableMessage})
	}
	if !storable(title) {
		errs = append(errs, domain.FieldError{Field: prefix + "title", Message: unstorableMessage})
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{
			Field:   prefix + "title",
			Message: fmt.Sprintf("max %d characters", maxTitleLength),
		})
	}

	return errs
}

const unstorableMessage = "must be valid UTF-8 without NUL characters"

// storable reports whether s can go into a PostgreSQL text column. Words are
// slices of the text, so a NUL anywhere in the text may end up in a word.
func storable(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

func validateView(top int, order domain.SortOrder, cfg config.WordCloudConfig) []domain.FieldError {
	var errs []domain.FieldError

	if top < 0 || top > cfg.MaxTop {
		errs = append(errs, domain.FieldError{Field: "top", Message: fmt.Sprintf("must be between 0 and %d", cfg.MaxTop)})
	}
	if !order.OrDefault().IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be one of: count, alpha"})
	}

	return errs
}
