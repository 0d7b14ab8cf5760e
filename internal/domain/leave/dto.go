package leave

import "github.com/kerjapedia/hrms-backend-go/internal/pkg/validator"

type CreateLeaveRequestRequest struct {
	// EmployeeID may be set by an admin filing on behalf of an employee;
	// otherwise it is resolved from the caller's token.
	EmployeeID         *string `json:"employee_id,omitempty"`
	Type               string  `json:"type"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Reason             string  `json:"reason"`
	SupportingDocument *string `json:"supporting_document,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(LeaveTypeAnnual), string(LeaveTypeSick), string(LeaveTypeSpecial)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'annual', 'sick' or 'special'"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequestRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

type LeaveRequestResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	Type               string  `json:"type"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	WorkingDays        int     `json:"working_days"`
	Reason             string  `json:"reason"`
	Status             string  `json:"status"`
	SupportingDocument *string `json:"supporting_document,omitempty"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}
