// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"strings"

	tagErrors "github.com/sojang/bizboard/tags/errors"
	"github.com/sojang/bizboard/tags/repository"
)

// TagService defines the interface for tag resolution
type TagService interface {
	// ResolveAndLinkTags resolves tag names to identifiers, creating missing
	// tags, and links them to the post. Runs against whatever transaction is
	// travelling in the context, so a failing tag aborts the caller's save.
	ResolveAndLinkTags(ctx context.Context, postID int64, names []string) error

	// NamesForPost returns the tag names linked to a post
	NamesForPost(ctx context.Context, postID int64) ([]string, error)

	// UnlinkByPost removes all tag links for a post (cascade delete step)
	UnlinkByPost(ctx context.Context, postID int64) (int64, error)
}

// tagService implements the TagService interface
type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new instance of the tag service
func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// ResolveAndLinkTags resolves a set of free-text tag names and links them to a
// post. Names are trimmed and deduplicated before any database work; an empty
// sequence is a valid no-op.
func (s *tagService) ResolveAndLinkTags(ctx context.Context, postID int64, names []string) error {
	if postID <= 0 {
		return fmt.Errorf("%w: postID must be positive", tagErrors.ErrInvalidTagName)
	}

	normalized, err := normalizeTagNames(names)
	if err != nil {
		return err
	}
	if len(normalized) == 0 {
		return nil
	}

	for _, name := range normalized {
		tagID, err := s.tagRepo.UpsertByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}

		if err := s.tagRepo.Link(ctx, postID, tagID); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", name, err)
		}
	}

	return nil
}

// NamesForPost returns the tag names linked to a post
func (s *tagService) NamesForPost(ctx context.Context, postID int64) ([]string, error) {
	return s.tagRepo.NamesForPost(ctx, postID)
}

// UnlinkByPost removes all tag links for a post
func (s *tagService) UnlinkByPost(ctx context.Context, postID int64) (int64, error) {
	return s.tagRepo.UnlinkByPost(ctx, postID)
}

// normalizeTagNames trims surrounding whitespace and removes duplicates while
// preserving first-seen order. Matching stays case-sensitive: tag names in the
// wild are mostly Korean, where case folding has no meaning, and merging
// differently-cased names would change visible behavior.
func normalizeTagNames(names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("%w: tag name cannot be empty", tagErrors.ErrInvalidTagName)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}

	return normalized, nil
}
