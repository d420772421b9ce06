package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation constants for list parameters
const (
	// MaxPageSize is the maximum allowed page size to prevent resource exhaustion
	MaxPageSize = 100
	// MinPageSize is the minimum allowed page size
	MinPageSize = 1
)

// Entry is a single submitted guestbook entry.
type Entry struct {
	ID        uuid.UUID
	Content   string
	CreatedAt time.Time
}

// EntryListParams controls pagination of the entry list.
type EntryListParams struct {
	// Page is 1-based.
	Page     int
	PageSize int
}

// EntryList is one page of entries plus pagination bookkeeping.
type EntryList struct {
	Entries    []*Entry
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
	HasMore    bool
}

// ValidatePage ensures a 1-based page number.
func ValidatePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ValidatePageSize ensures the page size is within acceptable bounds.
func ValidatePageSize(size int) int {
	if size < MinPageSize {
		return MinPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// AddEntry stores new content and returns the created entry.
// Content is expected to be validated by the caller; only the bare
// non-empty invariant is enforced here.
func (s *Service) AddEntry(ctx context.Context, content string) (*Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	entry := &Entry{
		ID:        uuid.New(),
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AddEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns one page of entries, newest first. Out-of-range
// parameters are clamped rather than rejected.
func (s *Service) ListEntries(ctx context.Context, params EntryListParams) (*EntryList, error) {
	page := ValidatePage(params.Page)
	size := ValidatePageSize(params.PageSize)

	entries, total, err := s.store.ListEntries(ctx, (page-1)*size, size)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	return &EntryList{
		Entries:    entries,
		TotalCount: total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		HasMore:    page*size < total,
	}, nil
}

// GetEntry returns a single entry by ID.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.store.GetEntry(ctx, id)
}
