package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcloud/internal/domain"
	"github.com/heartmarshall/wordcloud/internal/service/wordcloud"
)

// bodyOverhead covers JSON framing and escaping around the text fields.
const bodyOverhead = 64 << 10

// wordCloudService defines the minimal interface needed by WordCloudHandler.
type wordCloudService interface {
	Preview(ctx context.Context, input wordcloud.PreviewInput) (*domain.WordCloud, error)
	PreviewBatch(ctx context.Context, input wordcloud.BatchInput) ([]*domain.WordCloud, error)
	Create(ctx context.Context, input wordcloud.CreateInput) (*domain.WordCloud, error)
	Get(ctx context.Context, input wordcloud.GetInput) (*domain.WordCloud, error)
	List(ctx context.Context, input wordcloud.ListInput) (*wordcloud.ListResult, error)
	Delete(ctx context.Context, input wordcloud.DeleteInput) error
}

// WordCloudHandler serves the word cloud REST endpoints.
type WordCloudHandler struct {
	svc          wordCloudService
	log          *slog.Logger
	maxBody      int64
	maxBatchBody int64
}

// NewWordCloudHandler creates a WordCloudHandler. Request bodies are capped
// relative to the text and batch limits the service enforces.
func NewWordCloudHandler(svc wordCloudService, logger *slog.Logger, maxTextBytes, maxBatchDocuments int) *WordCloudHandler {
	return &WordCloudHandler{
		svc:          svc,
		log:          logger.With("handler", "wordcloud"),
		maxBody:      int64(maxTextBytes)*2 + bodyOverhead,
		maxBatchBody: (int64(maxTextBytes)*2+bodyOverhead)*int64(maxBatchDocuments) + bodyOverhead,
	}
}

type textRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Top   int    `json:"top"`
	Sort  string `json:"sort"`
}

type documentRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type batchRequest struct {
	Documents []documentRequest `json:"documents"`
	Top       int               `json:"top"`
	Sort      string            `json:"sort"`
}

type wordCloudResponse struct {
	ID          *string            `json:"id,omitempty"`
	Title       string             `json:"title"`
	SourceSlug  string             `json:"sourceSlug"`
	TotalWords  int                `json:"totalWords"`
	UniqueWords int                `json:"uniqueWords"`
	CreatedAt   time.Time          `json:"createdAt"`
	Words       []domain.WordCount `json:"words,omitempty"`
}

type batchResponse struct {
	Results []wordCloudResponse `json:"results"`
}

type listResponse struct {
	Items  []wordCloudResponse `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// Preview handles POST /word-clouds/preview.
func (h *WordCloudHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	cloud, err := h.svc.Preview(r.Context(), wordcloud.PreviewInput{
		Title: req.Title,
		Text:  req.Text,
		Top:   req.Top,
		Sort:  domain.SortOrder(req.Sort),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordCloudResponse(cloud))
}

// PreviewBatch handles POST /word-clouds/preview/batch.
func (h *WordCloudHandler) PreviewBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(w, r, h.maxBatchBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	docs := make([]wordcloud.Document, len(req.Documents))
	for i, d := range req.Documents {
		docs[i] = wordcloud.Document{Title: d.Title, Text: d.Text}
	}

	clouds, err := h.svc.PreviewBatch(r.Context(), wordcloud.BatchInput{
		Documents: docs,
		Top:       req.Top,
		Sort:      domain.SortOrder(req.Sort),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := batchResponse{Results: make([]wordCloudResponse, len(clouds))}
	for i, c := range clouds {
		resp.Results[i] = toWordCloudResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /word-clouds.
func (h *WordCloudHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	cloud, err := h.svc.Create(r.Context(), wordcloud.CreateInput{
		Title: req.Title,
		Text:  req.Text,
		Top:   req.Top,
		Sort:  domain.SortOrder(req.Sort),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/word-clouds/"+cloud.ID.String())
	writeJSON(w, http.StatusCreated, toWordCloudResponse(cloud))
}

// Get handles GET /word-clouds/{id}?top=&sort=.
func (h *WordCloudHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	top, ok := queryInt(w, r, "top")
	if !ok {
		return
	}

	cloud, err := h.svc.Get(r.Context(), wordcloud.GetInput{
		CloudID: id,
		Top:     top,
		Sort:    domain.SortOrder(r.URL.Query().Get("sort")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordCloudResponse(cloud))
}

// List handles GET /word-clouds?limit=&offset=.
func (h *WordCloudHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	result, err := h.svc.List(r.Context(), wordcloud.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{
		Items:  make([]wordCloudResponse, len(result.Clouds)),
		Total:  result.Total,
		Limit:  result.Limit,
		Offset: result.Offset,
	}
	for i := range result.Clouds {
		resp.Items[i] = toWordCloudResponse(&result.Clouds[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /word-clouds/{id}.
func (h *WordCloudHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), wordcloud.DeleteInput{CloudID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toWordCloudResponse(c *domain.WordCloud) wordCloudResponse {
	resp := wordCloudResponse{
		Title:       c.Title,
		SourceSlug:  c.SourceSlug,
		TotalWords:  c.TotalWords,
		UniqueWords: c.UniqueWords,
		CreatedAt:   c.CreatedAt,
		Words:       c.Words,
	}
	if c.ID != uuid.Nil {
		id := c.ID.String()
		resp.ID = &id
	}
	return resp
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}
