package domain

// UserProfile holds the user's setup choices. A single 'default' row is
// seeded at migration time.
type UserProfile struct {
	ID          string
	Equipment   EquipmentSet
	SessionSize int
}
