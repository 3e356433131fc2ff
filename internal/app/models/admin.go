package models

// Admin defines the administrator model based on the 'admins' table
type Admin struct {
	ID             int64  `json:"id" db:"id"`
	Email          string `json:"email" db:"email"`
	HashedPassword string `json:"-" db:"hashed_password"` // Excluded from JSON
	FullName       string `json:"fullName" db:"full_name"`
}
