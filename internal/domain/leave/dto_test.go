package leave

import (
	"errors"
	"testing"

	"github.com/kerjapedia/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequestValidate(t *testing.T) {
	req := CreateLeaveRequestRequest{
		Type:      "annual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
		Reason:    "Family trip",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateLeaveRequestValidateErrors(t *testing.T) {
	cases := []struct {
		name  string
		req   CreateLeaveRequestRequest
		field string
	}{
		{
			"unknown type",
			CreateLeaveRequestRequest{Type: "sabbatical", StartDate: "2026-03-02", EndDate: "2026-03-06", Reason: "x"},
			"type",
		},
		{
			"bad start date",
			CreateLeaveRequestRequest{Type: "sick", StartDate: "03/02/2026", EndDate: "2026-03-06", Reason: "x"},
			"start_date",
		},
		{
			"end before start",
			CreateLeaveRequestRequest{Type: "annual", StartDate: "2026-03-06", EndDate: "2026-03-02", Reason: "x"},
			"end_date",
		},
		{
			"missing reason",
			CreateLeaveRequestRequest{Type: "annual", StartDate: "2026-03-02", EndDate: "2026-03-06", Reason: "  "},
			"reason",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}
