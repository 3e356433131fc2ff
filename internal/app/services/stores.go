package services

import (
	"context"

	"github.com/mchellal/studia/internal/app/models"
)

// Store interfaces consumed by the services. The concrete implementations
// live in the repositories package; tests substitute fakes.

// StudentReader provides read access to student records
type StudentReader interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// StudentStore provides full access to student records
type StudentStore interface {
	StudentReader
	Create(ctx context.Context, student *models.Student) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context, skip, limit int) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// AdminReader provides read access to admin records
type AdminReader interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// AdminStore provides full access to admin records
type AdminStore interface {
	AdminReader
	Create(ctx context.Context, admin *models.Admin) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// DepartmentReader provides read access to department records
type DepartmentReader interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// DepartmentStore provides full access to department records
type DepartmentStore interface {
	DepartmentReader
	Create(ctx context.Context, department *models.Department) error
	GetAll(ctx context.Context, skip, limit int) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// FormationReader provides read access to formation records
type FormationReader interface {
	GetByID(ctx context.Context, id int64) (*models.Formation, error)
}

// FormationStore provides full access to formation records
type FormationStore interface {
	FormationReader
	Create(ctx context.Context, formation *models.Formation) error
	GetAll(ctx context.Context, skip, limit int) ([]*models.Formation, error)
	Update(ctx context.Context, formation *models.Formation) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore manages the student <-> formation relation
type EnrollmentStore interface {
	Enroll(ctx context.Context, studentID, formationID int64) error
	IsEnrolled(ctx context.Context, studentID, formationID int64) (bool, error)
	ListFormationsByStudent(ctx context.Context, studentID int64) ([]models.Formation, error)
	ListStudentsByFormation(ctx context.Context, formationID int64) ([]*models.Student, error)
}
