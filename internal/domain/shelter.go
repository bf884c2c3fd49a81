package domain

import (
	"fmt"
	"strings"
	"time"
)

// Shelter is a partner shelter that houses animals open for donations.
type Shelter struct {
	ID           string
	Name         string
	City         string
	Address      string
	ContactPhone string
	ContactEmail string
	Description  string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the fields required before a shelter may be stored.
func (s *Shelter) Validate() error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.City) == "" || strings.TrimSpace(s.Address) == "" {
		return fmt.Errorf("%w: shelter name, city and address are required", ErrValidation)
	}
	return nil
}
