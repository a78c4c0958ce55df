package inventory

import "github.com/google/uuid"

// Status is the sale state of an inventory item. There are exactly two.
type Status string

const (
	StatusForSale Status = "FOR_SALE"
	StatusSold    Status = "SOLD"
)

// Toggle returns the opposite status. Applying it twice is the identity.
func (s Status) Toggle() Status {
	if s == StatusForSale {
		return StatusSold
	}
	return StatusForSale
}

// Attribute is a free-form key-value descriptor attached to an item.
// Keys need not be unique; slice order is display order only.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Item is a committed inventory record. Items are created by the listing
// workflow on publish (or seeded at startup), mutated only by status toggle,
// and destroyed by explicit delete.
type Item struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Category   string      `json:"category"`
	Condition  string      `json:"condition"`
	Price      float64     `json:"price"`
	Status     Status      `json:"status"`
	DateAdded  string      `json:"dateAdded"`
	ImageURL   string      `json:"imageUrl,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// NewID returns a fresh item identifier.
func NewID() string {
	return uuid.NewString()
}
