package dto

// CreateStudentRequest represents a student registration payload
type CreateStudentRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	FullName     string `json:"fullName" binding:"required"`
	Age          *int   `json:"age,omitempty" binding:"omitempty,min=1"`
	DepartmentID *int64 `json:"departmentId,omitempty" binding:"omitempty,min=1"`
}
