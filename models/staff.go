package models

// Staff represents a bookable staff member. Only the ID participates in the
// booking flow; the name is carried for future assignment policies.
type Staff struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name,omitempty" json:"name,omitempty"`
}
