package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	AdminRepository      *AdminRepository
	DepartmentRepository *DepartmentRepository
	FormationRepository  *FormationRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		AdminRepository:      NewAdminRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		FormationRepository:  NewFormationRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
