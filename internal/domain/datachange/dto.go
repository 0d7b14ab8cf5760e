package datachange

import "github.com/kerjapedia/hrms-backend-go/internal/pkg/validator"

type CreateDataChangeRequest struct {
	Message string `json:"message"`
}

func (r *CreateDataChangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DataChangeResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	RequestDate  string `json:"request_date"`
	Message      string `json:"message"`
	Status       string `json:"status"`
}
