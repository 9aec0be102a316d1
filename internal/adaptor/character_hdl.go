package adaptor

import (
	"net/http"

	"lotr-api/internal/oneapi"
	"lotr-api/pkg/apperr"
	"lotr-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CharacterHandler struct {
	client *oneapi.Client
	log    *zap.Logger
}

func NewCharacterHandler(client *oneapi.Client, log *zap.Logger) *CharacterHandler {
	return &CharacterHandler{
		client: client,
		log:    log.With(zap.String("handler", "character")),
	}
}

// GetCharacters handles GET /api/v1/characters
func (h *CharacterHandler) GetCharacters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	limit := utils.ParseLimit(query.Get("limit"), 10)

	resp, err := h.client.GetCharacters(r.Context(), page, limit)
	if err != nil {
		h.upstreamError(w, err, "get characters")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, remoteListResponse(resp.Docs, page, limit, resp))
}

// GetCharacterByID handles GET /api/v1/characters/{id}
func (h *CharacterHandler) GetCharacterByID(w http.ResponseWriter, r *http.Request) {
	character, err := h.client.GetCharacterByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.upstreamError(w, err, "get character")
		return
	}

	utils.ResponseSuccess(w, character)
}

func (h *CharacterHandler) upstreamError(w http.ResponseWriter, err error, operation string) {
	appErr := apperr.From(err)
	h.log.Warn("One API call failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.Any("details", appErr.Details),
	)
	utils.ResponseError(w, err)
}
