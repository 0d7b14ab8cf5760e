package employee

import (
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	NIP        *string `json:"nip,omitempty"` // auto-generated when absent
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Position   string  `json:"position"`
	Grade      string  `json:"grade"`
	Department string  `json:"department"`
	JoinDate   string  `json:"join_date"`

	Address          *string `json:"address,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	PlaceOfBirth     *string `json:"place_of_birth,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Religion         *string `json:"religion,omitempty"`
	MaritalStatus    *string `json:"marital_status,omitempty"`
	NumberOfChildren *int    `json:"number_of_children,omitempty"`

	Education    []EducationEntry   `json:"education,omitempty"`
	WorkHistory  []WorkHistoryEntry `json:"work_history,omitempty"`
	Certificates []CertificateEntry `json:"certificates,omitempty"`
	PayrollInfo  *PayrollInfo       `json:"payroll_info,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.NIP != nil && !validator.IsValidNIP(*r.NIP) {
		errs = append(errs, validator.ValidationError{Field: "nip", Message: "must be numeric"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.PayrollInfo != nil && r.PayrollInfo.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "payroll_info.base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Position   *string `json:"position,omitempty"`
	Grade      *string `json:"grade,omitempty"`
	Department *string `json:"department,omitempty"`
	JoinDate   *string `json:"join_date,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`

	Address          *string `json:"address,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	PlaceOfBirth     *string `json:"place_of_birth,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Religion         *string `json:"religion,omitempty"`
	MaritalStatus    *string `json:"marital_status,omitempty"`
	NumberOfChildren *int    `json:"number_of_children,omitempty"`

	Education    *EducationHistory `json:"education,omitempty"`
	WorkHistory  *WorkHistory      `json:"work_history,omitempty"`
	Certificates *Certificates     `json:"certificates,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollInfoRequest struct {
	EmployeeID string            `json:"-"`
	BaseSalary decimal.Decimal   `json:"base_salary"`
	Incomes    PayrollComponents `json:"incomes"`
	Deductions PayrollComponents `json:"deductions"`
}

func (r *UpdatePayrollInfoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	for _, c := range r.Incomes {
		if validator.IsEmpty(c.Name) {
			errs = append(errs, validator.ValidationError{Field: "incomes", Message: "every component needs a name"})
			break
		}
	}
	for _, c := range r.Deductions {
		if validator.IsEmpty(c.Name) {
			errs = append(errs, validator.ValidationError{Field: "deductions", Message: "every component needs a name"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	NIP          string  `json:"nip"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Position     string  `json:"position"`
	Grade        string  `json:"grade"`
	Department   string  `json:"department"`
	JoinDate     string  `json:"join_date"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	LeaveBalance int     `json:"leave_balance"`
	IsActive     bool    `json:"is_active"`

	Address          *string `json:"address,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	PlaceOfBirth     *string `json:"place_of_birth,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Religion         *string `json:"religion,omitempty"`
	MaritalStatus    *string `json:"marital_status,omitempty"`
	NumberOfChildren int     `json:"number_of_children"`

	Education    EducationHistory `json:"education"`
	WorkHistory  WorkHistory      `json:"work_history"`
	Certificates Certificates     `json:"certificates"`
	PayrollInfo  PayrollInfo      `json:"payroll_info"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
