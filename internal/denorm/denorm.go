// Package denorm holds the write-time denormalization rules for animal
// records.
//
// A shelter's display name is copied onto each of its animals when the animal
// is written, so the public platform can render lists without joining. The
// copy is made exactly once per submission; nothing revisits it when the
// shelter is later renamed or deleted, so a stale shelterName is an accepted
// staleness window, not a defect to repair here.
package denorm

import (
	"fmt"

	"bagisadmin/internal/domain"
)

// ApplyShelterName resolves the animal's shelter reference against the
// currently loaded shelter list and copies the shelter's name onto the
// animal. It fails with a validation error when the reference does not
// resolve, which covers a shelter deleted while the form was open.
func ApplyShelterName(animal *domain.Animal, shelters []domain.Shelter) error {
	for i := range shelters {
		if shelters[i].ID == animal.ShelterID {
			animal.ShelterName = shelters[i].Name
			return nil
		}
	}
	return fmt.Errorf("%w: shelter %q does not resolve to a loaded shelter", domain.ErrValidation, animal.ShelterID)
}
