package employee

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLeaveBalance is granted to every newly created employee.
const DefaultLeaveBalance = 18

// DefaultPayrollInfo is the payroll configuration assigned until HR sets a
// real one.
func DefaultPayrollInfo() PayrollInfo {
	return PayrollInfo{
		BaseSalary: decimal.NewFromInt(5_000_000),
		Incomes:    PayrollComponents{},
		Deductions: PayrollComponents{},
	}
}

// GenerateNIP derives a numeric employee number from the creation time.
func GenerateNIP(now time.Time) string {
	return now.Format("20060102") + fmt.Sprintf("%06d", now.UnixNano()%1_000_000)
}

type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "single"
	MaritalStatusMarried  MaritalStatus = "married"
	MaritalStatusDivorced MaritalStatus = "divorced"
	MaritalStatusWidowed  MaritalStatus = "widowed"
)

type Employee struct {
	ID           string
	NIP          string // unique employee number
	FullName     string
	Email        string
	Position     string
	Grade        string
	Department   string
	JoinDate     time.Time
	AvatarURL    *string
	LeaveBalance int
	IsActive     bool

	// Personal details
	Address          *string
	Phone            *string
	PlaceOfBirth     *string
	DateOfBirth      *time.Time
	Religion         *string
	MaritalStatus    *MaritalStatus
	NumberOfChildren int

	// JSON-encoded sub-documents
	Education    EducationHistory
	WorkHistory  WorkHistory
	Certificates Certificates
	PayrollInfo  PayrollInfo

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EducationEntry struct {
	ID          string `json:"id"`
	Level       string `json:"level"`
	Institution string `json:"institution"`
	Major       string `json:"major,omitempty"`
	YearStart   int    `json:"year_start,omitempty"`
	YearEnd     int    `json:"year_end,omitempty"`
}

type WorkHistoryEntry struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`
	YearFrom int    `json:"year_from,omitempty"`
	YearTo   int    `json:"year_to,omitempty"`
}

type CertificateEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Issuer   string `json:"issuer,omitempty"`
	IssuedAt string `json:"issued_at,omitempty"`
}

// PayComponent is a named income or deduction line in the payroll template.
type PayComponent struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PayrollComponents is an ordered list of income or deduction lines.
type PayrollComponents []PayComponent

// PayrollInfo is the employee's payroll configuration template. Changing it
// only affects future payroll runs, never past payslip snapshots.
type PayrollInfo struct {
	BaseSalary decimal.Decimal   `json:"base_salary"`
	Incomes    PayrollComponents `json:"incomes"`
	Deductions PayrollComponents `json:"deductions"`
}

type (
	EducationHistory []EducationEntry
	WorkHistory      []WorkHistoryEntry
	Certificates     []CertificateEntry
)

// The sub-document columns are stored as JSONB. Scanning is fail-soft: a
// malformed stored document degrades to the zero value instead of failing the
// whole row read.

func (e EducationHistory) Value() (driver.Value, error) {
	if e == nil {
		return json.Marshal(EducationHistory{})
	}
	return json.Marshal(e)
}

func (e *EducationHistory) Scan(value interface{}) error {
	*e = EducationHistory{}
	return scanJSON(value, e)
}

func (w WorkHistory) Value() (driver.Value, error) {
	if w == nil {
		return json.Marshal(WorkHistory{})
	}
	return json.Marshal(w)
}

func (w *WorkHistory) Scan(value interface{}) error {
	*w = WorkHistory{}
	return scanJSON(value, w)
}

func (c Certificates) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal(Certificates{})
	}
	return json.Marshal(c)
}

func (c *Certificates) Scan(value interface{}) error {
	*c = Certificates{}
	return scanJSON(value, c)
}

func (p PayrollComponents) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(PayrollComponents{})
	}
	return json.Marshal(p)
}

func (p *PayrollComponents) Scan(value interface{}) error {
	*p = PayrollComponents{}
	return scanJSON(value, p)
}

func (p PayrollInfo) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PayrollInfo) Scan(value interface{}) error {
	*p = PayrollInfo{}
	return scanJSON(value, p)
}

func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	// Fail-soft: leave dst at its zero value when the stored JSON is malformed.
	_ = json.Unmarshal(bytes, dst)
	return nil
}
