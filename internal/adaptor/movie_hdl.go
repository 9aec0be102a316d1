package adaptor

import (
	"net/http"

	"lotr-api/internal/dto/response"
	"lotr-api/internal/oneapi"
	"lotr-api/pkg/apperr"
	"lotr-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	client *oneapi.Client
	log    *zap.Logger
}

func NewMovieHandler(client *oneapi.Client, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		client: client,
		log:    log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/v1/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	limit := utils.ParseLimit(query.Get("limit"), 10)

	resp, err := h.client.GetMovies(r.Context(), page, limit)
	if err != nil {
		h.upstreamError(w, err, "get movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, remoteListResponse(resp.Docs, page, limit, resp))
}

// GetMovieByID handles GET /api/v1/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.client.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.upstreamError(w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

func (h *MovieHandler) upstreamError(w http.ResponseWriter, err error, operation string) {
	appErr := apperr.From(err)
	h.log.Warn("One API call failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.Any("details", appErr.Details),
	)
	utils.ResponseError(w, err)
}

// remoteListResponse reshapes a One API page into the list envelope.
// The remote reports pages itself; fall back to computing them.
func remoteListResponse[T any](docs []T, page, limit int, resp *oneapi.Response[T]) *response.PaginatedResponse[T] {
	envelope := response.NewPaginatedResponse(docs, page, limit, resp.Total)
	if resp.Pages > 0 {
		envelope.Pagination.Pages = resp.Pages
	}
	return envelope
}
