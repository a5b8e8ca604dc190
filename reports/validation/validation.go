package validation

import (
	"fmt"
	"strings"

	"github.com/sojang/bizboard/reports/models"
)

// ValidateCreateReportRequest validates the create report request
func ValidateCreateReportRequest(req *models.CreateReportRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.PostID <= 0 {
		return fmt.Errorf("post_id is required")
	}

	if req.UserID <= 0 {
		return fmt.Errorf("user_id is required")
	}

	if strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("reason cannot be empty or whitespace only")
	}

	if len(req.Reason) > 500 {
		return fmt.Errorf("reason must be less than 500 characters")
	}

	return nil
}

// ValidateStatus checks that a status is one of the known workflow states
func ValidateStatus(status string) error {
	switch status {
	case models.StatusPending, models.StatusResolved, models.StatusRejected:
		return nil
	default:
		return fmt.Errorf("status must be one of PENDING, RESOLVED, REJECTED")
	}
}
