// Package models defines the exchange's domain records and the byte
// encoding used for the ones stored as opaque values.
package models

// VaccineInfo is the immutable payload of a listing.
type VaccineInfo struct {
	RNAInfo  string
	Name     string
	SellerID string
}

// SellInfo is one priced instance of a listing. ID is the stock id.
type SellInfo struct {
	ID    string
	Price float64
}

// Vaccine is a full listing: the info, the owner-only private tier and an
// optional public tier.
type Vaccine struct {
	Info    VaccineInfo
	Private SellInfo
	Public  *SellInfo
}

// FeedEntry is one element of the public feed.
type FeedEntry struct {
	Name    string
	StockID string
}
