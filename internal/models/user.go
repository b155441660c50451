package models

// User represents a friend the user splits payments with.
// Users are created the first time a name is referenced and are never
// renamed or deleted.
type User struct {
	// ID is the database-assigned identity.
	ID int64

	// Name is the display name of the friend (unique).
	Name string
}
