package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/performance"
	"github.com/kerjapedia/hrms-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	GetReview(w http.ResponseWriter, r *http.Request)
	GetMyReviews(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	SubmitFeedback(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	reviewService performance.ReviewService
}

func NewPerformanceHandler(reviewService performance.ReviewService) PerformanceHandler {
	return &PerformanceHandlerImpl{reviewService: reviewService}
}

// CreateReview implements PerformanceHandler.
func (p *PerformanceHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateReview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := p.reviewService.CreateReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review created successfully", created)
}

// GetReview implements PerformanceHandler. Employees may only read reviews
// about themselves.
func (p *PerformanceHandlerImpl) GetReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := p.reviewService.GetReview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	claims, err := claimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	if !claims.isAdmin() && claims.EmployeeID != review.EmployeeID {
		response.Forbidden(w, "Access denied")
		return
	}

	response.Success(w, review)
}

// GetMyReviews implements PerformanceHandler.
func (p *PerformanceHandlerImpl) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	if claims.EmployeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	reviews, err := p.reviewService.ListByEmployee(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// ListReviews implements PerformanceHandler.
func (p *PerformanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	var period *string
	if raw := r.URL.Query().Get("period"); raw != "" {
		period = &raw
	}

	reviews, err := p.reviewService.ListReviews(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// SubmitFeedback implements PerformanceHandler. Only the reviewed employee
// may respond, and only once.
func (p *PerformanceHandlerImpl) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	var req performance.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitFeedback decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	claims, err := claimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	review, err := p.reviewService.GetReview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !claims.isAdmin() && claims.EmployeeID != review.EmployeeID {
		response.Forbidden(w, "Access denied")
		return
	}

	updated, err := p.reviewService.SubmitFeedback(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Feedback submitted", updated)
}
