package models

// Service represents a bookable salon offering.
type Service struct {
	ID    string  `bson:"id" json:"id"`       // Unique service identifier (e.g., UUID)
	Name  string  `bson:"name" json:"name"`   // Display name shown on the booking form
	Price float64 `bson:"price" json:"price"` // Listed price in the salon's currency
}
