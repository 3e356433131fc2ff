package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

type enrollmentServiceFixture struct {
	service     *EnrollmentService
	students    *fakeStudentStore
	formations  *fakeFormationStore
	enrollments *fakeEnrollmentStore
}

func newEnrollmentServiceFixture() *enrollmentServiceFixture {
	students := newFakeStudentStore()
	formations := newFakeFormationStore()
	enrollments := newFakeEnrollmentStore(students, formations)

	return &enrollmentServiceFixture{
		service:     NewEnrollmentService(enrollments, formations, zerolog.Nop()),
		students:    students,
		formations:  formations,
		enrollments: enrollments,
	}
}

func TestEnroll(t *testing.T) {
	f := newEnrollmentServiceFixture()
	student := f.students.add(&models.Student{Email: "alice@example.com"})
	formation := f.formations.add(&models.Formation{Title: "Algorithms"})

	require.NoError(t, f.service.Enroll(context.Background(), student.ID, formation.ID))

	enrolled, err := f.enrollments.IsEnrolled(context.Background(), student.ID, formation.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestEnrollIdempotent(t *testing.T) {
	f := newEnrollmentServiceFixture()
	student := f.students.add(&models.Student{Email: "alice@example.com"})
	formation := f.formations.add(&models.Formation{Title: "Algorithms"})

	require.NoError(t, f.service.Enroll(context.Background(), student.ID, formation.ID))
	require.NoError(t, f.service.Enroll(context.Background(), student.ID, formation.ID))

	formations, err := f.enrollments.ListFormationsByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, formations, 1)
}

func TestEnrollMissingTargets(t *testing.T) {
	f := newEnrollmentServiceFixture()
	student := f.students.add(&models.Student{Email: "alice@example.com"})
	formation := f.formations.add(&models.Formation{Title: "Algorithms"})

	t.Run("unknown student", func(t *testing.T) {
		err := f.service.Enroll(context.Background(), 999, formation.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("unknown formation", func(t *testing.T) {
		err := f.service.Enroll(context.Background(), student.ID, 999)
		assert.ErrorIs(t, err, apperrors.ErrFormationNotFound)
	})

	t.Run("invalid ids rejected before hitting the store", func(t *testing.T) {
		calls := f.enrollments.enrollCalls

		assert.ErrorIs(t, f.service.Enroll(context.Background(), 0, formation.ID), apperrors.ErrValidationFailed)
		assert.ErrorIs(t, f.service.Enroll(context.Background(), student.ID, -1), apperrors.ErrValidationFailed)
		assert.Equal(t, calls, f.enrollments.enrollCalls)
	})
}

func TestListStudents(t *testing.T) {
	f := newEnrollmentServiceFixture()
	formation := f.formations.add(&models.Formation{Title: "Algorithms"})
	alice := f.students.add(&models.Student{Email: "alice@example.com"})
	bob := f.students.add(&models.Student{Email: "bob@example.com"})

	require.NoError(t, f.service.Enroll(context.Background(), alice.ID, formation.ID))
	require.NoError(t, f.service.Enroll(context.Background(), bob.ID, formation.ID))

	students, err := f.service.ListStudents(context.Background(), formation.ID)
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestListStudentsUnknownFormation(t *testing.T) {
	f := newEnrollmentServiceFixture()

	_, err := f.service.ListStudents(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrFormationNotFound)
}
