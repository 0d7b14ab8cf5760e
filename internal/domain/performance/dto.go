package performance

import "github.com/kerjapedia/hrms-backend-go/internal/pkg/validator"

type CreateReviewRequest struct {
	EmployeeID          string `json:"employee_id"`
	Period              string `json:"period"`
	ReviewerName        string `json:"reviewer_name"`
	ReviewDate          string `json:"review_date"`
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
	KPIs                []KPI  `json:"kpis"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "is required"})
	}
	if validator.IsEmpty(r.ReviewerName) {
		errs = append(errs, validator.ValidationError{Field: "reviewer_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "review_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	for _, kpi := range r.KPIs {
		if validator.IsEmpty(kpi.Metric) {
			errs = append(errs, validator.ValidationError{Field: "kpis", Message: "every KPI needs a metric"})
			break
		}
		if kpi.Weight < 0 || kpi.Weight > 1 {
			errs = append(errs, validator.ValidationError{Field: "kpis", Message: "weight must be within [0,1]"})
			break
		}
		if kpi.Score < 1 || kpi.Score > 5 {
			errs = append(errs, validator.ValidationError{Field: "kpis", Message: "score must be within [1,5]"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

func (r *SubmitFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Feedback) {
		errs = append(errs, validator.ValidationError{Field: "feedback", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	Period              string  `json:"period"`
	ReviewerName        string  `json:"reviewer_name"`
	ReviewDate          string  `json:"review_date"`
	OverallScore        float64 `json:"overall_score"`
	Status              string  `json:"status"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	EmployeeFeedback    *string `json:"employee_feedback,omitempty"`
	KPIs                KPIs    `json:"kpis"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}
