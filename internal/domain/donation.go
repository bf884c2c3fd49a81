package domain

import "time"

// DonationTypeCash marks a monetary donation; all other types are in-kind
// (food, toys, medicine) and carry no amount.
const DonationTypeCash = "Nakit"

// DefaultCurrency is used for display when a cash donation omits its currency.
const DefaultCurrency = "TL"

// Donation is a supporter contribution recorded against an animal. Donations
// are written by the public platform; the console only reads them.
type Donation struct {
	ID           string
	AnimalID     string
	UserID       string
	UserName     string
	DonationType string
	Amount       float64
	Currency     string
	Description  string
	DonationDate time.Time
}

// IsCash reports whether the donation carries a monetary amount.
func (d *Donation) IsCash() bool {
	return d.DonationType == DonationTypeCash
}
