package validation

import (
	"fmt"
	"strings"

	"github.com/sojang/bizboard/posts/models"
)

// ValidateSavePostRequest validates the save post request
func ValidateSavePostRequest(req *models.SavePostRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title cannot be empty or whitespace only")
	}

	if len(req.Title) > 200 {
		return fmt.Errorf("title must be less than 200 characters")
	}

	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty or whitespace only")
	}

	if req.UserID <= 0 {
		return fmt.Errorf("user_id is required")
	}

	if req.IndustryID != nil && *req.IndustryID <= 0 {
		return fmt.Errorf("industry_id must be positive when provided")
	}

	if len(req.Tags) > 10 {
		return fmt.Errorf("a post can carry at most 10 tags")
	}

	return nil
}
