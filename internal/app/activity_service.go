package app

import (
	"context"
	"fmt"

	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/ports/secondary"
)

// DefaultActivityLimit caps the activity listing when the caller does not
// ask for a specific count.
const DefaultActivityLimit = 20

// ActivityServiceImpl implements primary.ActivityService.
type ActivityServiceImpl struct {
	activity secondary.ActivityLogRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activity secondary.ActivityLogRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{activity: activity}
}

// Recent returns the newest entries, newest first.
func (s *ActivityServiceImpl) Recent(ctx context.Context, limit int) ([]*primary.ActivityEntry, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	records, err := s.activity.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity log: %w", err)
	}

	entries := make([]*primary.ActivityEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, &primary.ActivityEntry{
			ID:        r.ID,
			Actor:     r.Actor,
			Action:    r.Action,
			EntityID:  r.EntityID,
			Detail:    r.Detail,
			CreatedAt: r.CreatedAt,
		})
	}
	return entries, nil
}

// Ensure ActivityServiceImpl implements the interface
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
