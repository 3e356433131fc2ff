package services

import (
	"context"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

// In-memory fakes standing in for the repositories.

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64

	lastSkip  int
	lastLimit int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (s *fakeStudentStore) add(student *models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = s.nextID
		s.nextID++
	}
	s.students[student.ID] = student
	return student
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, student := range s.students {
		if student.Email == email {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, existing := range s.students {
		if existing.Email == student.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	s.add(student)
	return student.ID, nil
}

func (s *fakeStudentStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, student := range s.students {
		if student.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStudentStore) GetAll(_ context.Context, skip, limit int) ([]*models.Student, error) {
	s.lastSkip = skip
	s.lastLimit = limit

	result := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		result = append(result, student)
	}
	return result, nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

type fakeAdminStore struct {
	admins map[int64]*models.Admin
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]*models.Admin), nextID: 1}
}

func (s *fakeAdminStore) add(admin *models.Admin) *models.Admin {
	if admin.ID == 0 {
		admin.ID = s.nextID
		s.nextID++
	}
	s.admins[admin.ID] = admin
	return admin
}

func (s *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, admin := range s.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (s *fakeAdminStore) Create(_ context.Context, admin *models.Admin) (int64, error) {
	s.add(admin)
	return admin.ID, nil
}

func (s *fakeAdminStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, admin := range s.admins {
		if admin.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeDepartmentStore struct {
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{departments: make(map[int64]*models.Department), nextID: 1}
}

func (s *fakeDepartmentStore) add(department *models.Department) *models.Department {
	if department.ID == 0 {
		department.ID = s.nextID
		s.nextID++
	}
	s.departments[department.ID] = department
	return department
}

func (s *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := s.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	for _, existing := range s.departments {
		if existing.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	s.add(department)
	return nil
}

func (s *fakeDepartmentStore) GetAll(_ context.Context, skip, limit int) ([]*models.Department, error) {
	result := make([]*models.Department, 0, len(s.departments))
	for _, department := range s.departments {
		result = append(result, department)
	}
	return result, nil
}

func (s *fakeDepartmentStore) Update(_ context.Context, department *models.Department) error {
	if _, ok := s.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	s.departments[department.ID] = department
	return nil
}

func (s *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(s.departments, id)
	return nil
}

type fakeFormationStore struct {
	formations map[int64]*models.Formation
	nextID     int64
}

func newFakeFormationStore() *fakeFormationStore {
	return &fakeFormationStore{formations: make(map[int64]*models.Formation), nextID: 1}
}

func (s *fakeFormationStore) add(formation *models.Formation) *models.Formation {
	if formation.ID == 0 {
		formation.ID = s.nextID
		s.nextID++
	}
	s.formations[formation.ID] = formation
	return formation
}

func (s *fakeFormationStore) GetByID(_ context.Context, id int64) (*models.Formation, error) {
	formation, ok := s.formations[id]
	if !ok {
		return nil, apperrors.ErrFormationNotFound
	}
	return formation, nil
}

func (s *fakeFormationStore) Create(_ context.Context, formation *models.Formation) error {
	s.add(formation)
	return nil
}

func (s *fakeFormationStore) GetAll(_ context.Context, skip, limit int) ([]*models.Formation, error) {
	result := make([]*models.Formation, 0, len(s.formations))
	for _, formation := range s.formations {
		result = append(result, formation)
	}
	return result, nil
}

func (s *fakeFormationStore) Update(_ context.Context, formation *models.Formation) error {
	if _, ok := s.formations[formation.ID]; !ok {
		return apperrors.ErrFormationNotFound
	}
	s.formations[formation.ID] = formation
	return nil
}

func (s *fakeFormationStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.formations[id]; !ok {
		return apperrors.ErrFormationNotFound
	}
	delete(s.formations, id)
	return nil
}

type enrollmentKey struct {
	studentID   int64
	formationID int64
}

// fakeEnrollmentStore mirrors the conditional-insert semantics of the real
// repository: both endpoints must exist, duplicates are silent no-ops.
type fakeEnrollmentStore struct {
	students   *fakeStudentStore
	formations *fakeFormationStore
	pairs      map[enrollmentKey]bool

	enrollCalls int
}

func newFakeEnrollmentStore(students *fakeStudentStore, formations *fakeFormationStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		students:   students,
		formations: formations,
		pairs:      make(map[enrollmentKey]bool),
	}
}

func (s *fakeEnrollmentStore) Enroll(ctx context.Context, studentID, formationID int64) error {
	s.enrollCalls++

	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return apperrors.ErrStudentNotFound
	}
	if _, err := s.formations.GetByID(ctx, formationID); err != nil {
		return apperrors.ErrFormationNotFound
	}

	s.pairs[enrollmentKey{studentID, formationID}] = true
	return nil
}

func (s *fakeEnrollmentStore) IsEnrolled(_ context.Context, studentID, formationID int64) (bool, error) {
	return s.pairs[enrollmentKey{studentID, formationID}], nil
}

func (s *fakeEnrollmentStore) ListFormationsByStudent(_ context.Context, studentID int64) ([]models.Formation, error) {
	result := make([]models.Formation, 0)
	for key := range s.pairs {
		if key.studentID != studentID {
			continue
		}
		if formation, ok := s.formations.formations[key.formationID]; ok {
			result = append(result, *formation)
		}
	}
	return result, nil
}

func (s *fakeEnrollmentStore) ListStudentsByFormation(_ context.Context, formationID int64) ([]*models.Student, error) {
	result := make([]*models.Student, 0)
	for key := range s.pairs {
		if key.formationID != formationID {
			continue
		}
		if student, ok := s.students.students[key.studentID]; ok {
			result = append(result, student)
		}
	}
	return result, nil
}
