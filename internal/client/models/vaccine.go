// Package models holds the client-side view of exchange data.
package models

// Credentials identify an exchange account.
type Credentials struct {
	UserID   string
	Password string
}

// Offer is one side of a listing: its stock id and current price.
type Offer struct {
	StockID string
	Price   float64
}

// Vaccine is a listing as returned to its seller. Public is nil for a
// private-only listing.
type Vaccine struct {
	RNAInfo  string
	Name     string
	SellerID string
	Private  Offer
	Public   *Offer
}

// Listing is one entry of the public feed.
type Listing struct {
	Name    string
	StockID string
}

// NewVaccine describes a listing to create. PublicPrice is optional.
type NewVaccine struct {
	RNAInfo      string
	Name         string
	PrivatePrice float64
	PublicPrice  *float64
}
