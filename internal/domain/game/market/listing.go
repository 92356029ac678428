package market

import "time"

// Listing is one item lot offered for sale on a realm's marketplace.
// The listed quantity is escrowed out of the seller's inventory until
// the listing sells or is cancelled.
type Listing struct {
	ID        string    `json:"id"`
	RealmID   string    `json:"realm_id"`
	SellerID  string    `json:"seller_id"`
	ItemKey   string    `json:"item_key"`
	Quantity  int       `json:"quantity"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
