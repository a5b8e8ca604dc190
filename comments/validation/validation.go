package validation

import (
	"fmt"
	"strings"

	"github.com/sojang/bizboard/comments/models"
)

// ValidateCreateCommentRequest validates the create comment request
func ValidateCreateCommentRequest(req *models.CreateCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.PostID <= 0 {
		return fmt.Errorf("post_id is required")
	}

	if req.UserID <= 0 {
		return fmt.Errorf("user_id is required")
	}

	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty or whitespace only")
	}

	if len(req.Content) > 1000 {
		return fmt.Errorf("content must be less than 1000 characters")
	}

	return nil
}
