package domain

// ItemPrice is the unit price of a chargeable donation item. The ID doubles
// as the item key in the donationItemPrices collection; entries are upserted
// and never deleted.
type ItemPrice struct {
	ID        string
	Name      string
	UnitPrice float64
}
