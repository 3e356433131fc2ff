package models

// Formation represents a course offering belonging to a department
type Formation struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description,omitempty" db:"description"`
	DepartmentID int64  `json:"departmentId" db:"department_id"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
