package performance

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type ReviewStatus string

const (
	ReviewStatusCompleted ReviewStatus = "completed"
	ReviewStatusDraft     ReviewStatus = "draft"
)

// KPI is one weighted metric inside a review. Weight is expected in [0,1] and
// Score in [1,5]; bounds are checked at the API boundary, not here.
type KPI struct {
	ID     string  `json:"id"`
	Metric string  `json:"metric"`
	Target string  `json:"target,omitempty"`
	Result string  `json:"result,omitempty"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
	Notes  string  `json:"notes,omitempty"`
}

type KPIs []KPI

func (k KPIs) Value() (driver.Value, error) {
	if k == nil {
		return json.Marshal(KPIs{})
	}
	return json.Marshal(k)
}

func (k *KPIs) Scan(value interface{}) error {
	*k = KPIs{}
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

	// Fail-soft on malformed stored JSON.
	_ = json.Unmarshal(bytes, k)
	return nil
}

type Review struct {
	ID                  string
	EmployeeID          string
	EmployeeName        string
	Period              string
	ReviewerName        string
	ReviewDate          time.Time
	OverallScore        float64
	Status              ReviewStatus
	Strengths           string
	AreasForImprovement string
	EmployeeFeedback    *string // write-once
	KPIs                KPIs
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
