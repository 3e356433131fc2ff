package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64  `json:"id" db:"id"`
	Email          string `json:"email" db:"email"`
	HashedPassword string `json:"-" db:"hashed_password"` // Excluded from JSON
	FullName       string `json:"fullName" db:"full_name"`
	Age            *int   `json:"age,omitempty" db:"age"`                    // Pointer for potential NULL
	DepartmentID   *int64 `json:"departmentId,omitempty" db:"department_id"` // Pointer for potential NULL

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
	Formations []Formation `json:"formations"`
}
