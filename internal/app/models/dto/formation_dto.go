package dto

// CreateFormationRequest represents a formation creation payload
type CreateFormationRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description,omitempty"`
	DepartmentID int64  `json:"departmentId" binding:"required,min=1"`
}

// UpdateFormationRequest represents a formation update payload
type UpdateFormationRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description,omitempty"`
	DepartmentID int64  `json:"departmentId" binding:"required,min=1"`
}
