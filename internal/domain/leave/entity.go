package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual  LeaveType = "annual"
	LeaveTypeSick    LeaveType = "sick"
	LeaveTypeSpecial LeaveType = "special"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity. EmployeeName is a denormalized snapshot taken at
// submission time; it is not kept in sync with later employee renames.
type LeaveRequest struct {
	ID                 string
	EmployeeID         string
	EmployeeName       string
	Type               LeaveType
	StartDate          time.Time
	EndDate            time.Time
	Reason             string
	Status             LeaveRequestStatus
	SupportingDocument *string
	RejectionReason    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Summary is the read-only leave balance view for one employee.
// CurrentBalance is the persisted running balance maintained by the approval
// workflow; CalculatedRemaining is the from-scratch recomputation. The two can
// diverge and are intentionally reported side by side.
type Summary struct {
	InitialAllotment    int `json:"initial_allotment"`
	NationalHolidays    int `json:"national_holidays"`
	ApprovedLeaveTaken  int `json:"approved_leave_taken"`
	CurrentBalance      int `json:"current_balance"`
	CalculatedRemaining int `json:"calculated_remaining"`
}
