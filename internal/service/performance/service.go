package performance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/performance"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
)

const dateLayout = "2006-01-02"

type ReviewServiceImpl struct {
	db           *database.DB
	reviewRepo   performance.ReviewRepository
	employeeRepo employee.EmployeeRepository
}

func NewReviewService(
	db *database.DB,
	reviewRepo performance.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
) performance.ReviewService {
	return &ReviewServiceImpl{
		db:           db,
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
	}
}

// OverallScore is the weight-averaged KPI score rounded to two decimals.
// A zero weight sum would divide by zero, so it is treated as one; an empty
// KPI list therefore scores 0.
func OverallScore(kpis []performance.KPI) float64 {
	var weightedSum, weightSum float64
	for _, kpi := range kpis {
		weightedSum += kpi.Score * kpi.Weight
		weightSum += kpi.Weight
	}

	if weightSum == 0 {
		weightSum = 1
	}
	return math.Round(weightedSum/weightSum*100) / 100
}

// CreateReview implements performance.ReviewService.
func (s *ReviewServiceImpl) CreateReview(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	reviewDate, _ := time.Parse(dateLayout, req.ReviewDate)

	kpis := make(performance.KPIs, 0, len(req.KPIs))
	for _, kpi := range req.KPIs {
		if kpi.ID == "" {
			kpi.ID = uuid.New().String()
		}
		kpis = append(kpis, kpi)
	}

	newReview := performance.Review{
		EmployeeID:          emp.ID,
		EmployeeName:        emp.FullName,
		Period:              req.Period,
		ReviewerName:        req.ReviewerName,
		ReviewDate:          reviewDate,
		OverallScore:        OverallScore(req.KPIs),
		Status:              performance.ReviewStatusCompleted,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		KPIs:                kpis,
	}

	created, err := s.reviewRepo.Create(ctx, newReview)
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to create review: %w", err)
	}

	return toReviewResponse(created), nil
}

// GetReview implements performance.ReviewService.
func (s *ReviewServiceImpl) GetReview(ctx context.Context, id string) (performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	return toReviewResponse(review), nil
}

// ListReviews implements performance.ReviewService.
func (s *ReviewServiceImpl) ListReviews(ctx context.Context, period *string) ([]performance.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return toReviewResponses(reviews), nil
}

// ListByEmployee implements performance.ReviewService.
func (s *ReviewServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.ReviewResponse, error) {
	reviews, err := s.reviewRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return toReviewResponses(reviews), nil
}

// SubmitFeedback implements performance.ReviewService. The conditional
// update only touches rows with no feedback yet, so a second submission
// affects zero rows and surfaces as a conflict.
func (s *ReviewServiceImpl) SubmitFeedback(ctx context.Context, reviewID string, req performance.SubmitFeedbackRequest) (performance.ReviewResponse, error) {
	rowsAffected, err := s.reviewRepo.SetEmployeeFeedback(ctx, reviewID, req.Feedback)
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to submit feedback: %w", err)
	}

	if rowsAffected == 0 {
		if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
			if errors.Is(err, performance.ErrReviewNotFound) {
				return performance.ReviewResponse{}, performance.ErrReviewNotFound
			}
			return performance.ReviewResponse{}, err
		}
		return performance.ReviewResponse{}, performance.ErrFeedbackAlreadySubmitted
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	return toReviewResponse(review), nil
}

func toReviewResponse(rv performance.Review) performance.ReviewResponse {
	return performance.ReviewResponse{
		ID:                  rv.ID,
		EmployeeID:          rv.EmployeeID,
		EmployeeName:        rv.EmployeeName,
		Period:              rv.Period,
		ReviewerName:        rv.ReviewerName,
		ReviewDate:          rv.ReviewDate.Format(dateLayout),
		OverallScore:        rv.OverallScore,
		Status:              string(rv.Status),
		Strengths:           rv.Strengths,
		AreasForImprovement: rv.AreasForImprovement,
		EmployeeFeedback:    rv.EmployeeFeedback,
		KPIs:                rv.KPIs,
		CreatedAt:           rv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           rv.UpdatedAt.Format(time.RFC3339),
	}
}

func toReviewResponses(reviews []performance.Review) []performance.ReviewResponse {
	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		responses = append(responses, toReviewResponse(rv))
	}
	return responses
}
