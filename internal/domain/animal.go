package domain

import (
	"fmt"
	"strings"
	"time"
)

// Animal type and gender options offered by the console forms. The values are
// stored verbatim, so they stay in Turkish to match existing records.
var (
	AnimalTypes   = []string{"Köpek", "Kedi", "Kuş", "Diğer"}
	AnimalGenders = []string{"Dişi", "Erkek"}
)

// Animal is an adoptable animal registered under a shelter.
//
// ShelterName is a denormalized copy of the owning shelter's name taken at the
// moment the animal record was last written. It is not kept in sync when the
// shelter is later renamed or deleted. DonationCount and TotalDonationAmount
// are aggregates maintained outside the console; the console only reads them.
type Animal struct {
	ID                   string
	Name                 string
	Type                 string
	Breed                string
	Age                  string
	Gender               string
	Description          string
	ImageURL             string
	Photos               []string
	Needs                []string
	ShelterID            string
	ShelterName          string
	DateAdded            time.Time
	LastUpdated          time.Time
	VirtualAdoptersCount int
	DonationCount        int
	TotalDonationAmount  float64
}

// Validate checks the fields required before an animal may be stored.
func (a *Animal) Validate() error {
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Type) == "" || strings.TrimSpace(a.ShelterID) == "" {
		return fmt.Errorf("%w: animal name, type and shelter are required", ErrValidation)
	}
	return nil
}

// SplitList turns comma-separated form input into trimmed, non-empty entries.
func SplitList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SplitPhotoURLs is SplitList restricted to entries that look like web URLs.
func SplitPhotoURLs(input string) []string {
	var out []string
	for _, v := range SplitList(input) {
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			out = append(out, v)
		}
	}
	return out
}
