package booking

import (
	"context"

	"salonbook/database/repository"
	"salonbook/models"
)

// AssignmentStrategy picks the staff member for one appointment. The booking
// flow only depends on this interface, so the policy can be upgraded (e.g.
// round-robin, least-loaded) without touching the submission cycle.
type AssignmentStrategy interface {
	Assign(ctx context.Context, serviceID string) (*models.Staff, error)
}

// FirstAvailableStrategy takes whatever staff row the gateway returns first.
// This mirrors the placeholder policy of the original flow: an unfiltered,
// unordered, limit-1 query, not an availability decision.
type FirstAvailableStrategy struct {
	Repo repository.StaffRepository
}

func (s *FirstAvailableStrategy) Assign(ctx context.Context, serviceID string) (*models.Staff, error) {
	return s.Repo.FindAny(ctx)
}
