package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"lotr-api/internal/dto/request"
	"lotr-api/internal/usecase"
	"lotr-api/pkg/apperr"
	"lotr-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseValidation(w, "Invalid request body", nil)
		return
	}

	// length rules apply to the trimmed name
	req.UserName = strings.TrimSpace(req.UserName)

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Create review validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)),
		)
		utils.ResponseValidation(w, "Invalid input data", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}

// GetReviews handles GET /api/v1/reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ListReviewsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParseInt(query.Get("page"), 1),
			Limit: utils.ParseLimit(query.Get("limit"), 10),
		},
		MovieID: query.Get("movieId"),
	}

	reviews, err := h.service.GetReviews(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get reviews")
		return
	}

	// the paginated envelope already carries the success flag
	utils.ResponseJSON(w, http.StatusOK, reviews)
}

// GetReviewByID handles GET /api/v1/reviews/{id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reviewID(w, r)
	if !ok {
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// UpdateReview handles PATCH /api/v1/reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reviewID(w, r)
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseValidation(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Update review validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)),
		)
		utils.ResponseValidation(w, "Invalid input data", validationErrors)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// DeleteReview handles DELETE /api/v1/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reviewID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteReview(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	if !deleted {
		utils.ResponseError(w, apperr.NotFound("Review not found"))
		return
	}

	utils.ResponseMessage(w, "Review deleted successfully")
}

// reviewID parses the numeric id path param, writing a 400 on failure
func (h *ReviewHandler) reviewID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseValidation(w, "Invalid review ID", nil)
		return 0, false
	}
	return id, true
}

// handleServiceError writes the error envelope. Not-found is an
// expected outcome and stays out of the error log.
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if !apperr.IsNotFound(err) {
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
		)
	}
	utils.ResponseError(w, err)
}
