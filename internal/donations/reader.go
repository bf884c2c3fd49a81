// Package donations reads donation records for display in the console's
// per-animal overlay. The console never writes donations.
package donations

import (
	"context"
	"errors"

	"bagisadmin/internal/domain"
)

// Result is the outcome of a per-animal donation listing. On failure the
// donation list is empty and exactly one of the two flags explains why:
// IndexRequired marks a backend rejection that an operator can fix by
// creating the missing composite index, Failed covers everything else.
type Result struct {
	Donations     []domain.Donation
	IndexRequired bool
	Failed        bool
}

// Reader fetches donations filtered by animal, newest first.
type Reader struct {
	repo domain.DonationRepository
}

// NewReader creates a donation reader.
func NewReader(repo domain.DonationRepository) *Reader {
	return &Reader{repo: repo}
}

// ListForAnimal queries the store fresh on every call; nothing is cached
// between overlay opens.
func (r *Reader) ListForAnimal(ctx context.Context, animalID string) Result {
	donations, err := r.repo.ListForAnimal(ctx, animalID)
	if err != nil {
		if errors.Is(err, domain.ErrIndexRequired) {
			return Result{IndexRequired: true}
		}
		return Result{Failed: true}
	}
	return Result{Donations: donations}
}
