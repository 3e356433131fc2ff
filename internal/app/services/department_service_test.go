package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

func TestCreateDepartment(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentStore())

	department, err := service.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		Name:        "Computer Science",
		Description: "CS department",
	})
	require.NoError(t, err)
	assert.NotZero(t, department.ID)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := service.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
			Name: "Computer Science",
		})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := service.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
			Name: "   ",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestUpdateDepartment(t *testing.T) {
	store := newFakeDepartmentStore()
	service := NewDepartmentService(store)

	created, err := service.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{Name: "Maths"})
	require.NoError(t, err)

	updated, err := service.UpdateDepartment(context.Background(), created.ID, &dto.UpdateDepartmentRequest{
		Name: "Mathematics",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", updated.Name)

	t.Run("unknown department", func(t *testing.T) {
		_, err := service.UpdateDepartment(context.Background(), 999, &dto.UpdateDepartmentRequest{Name: "Physics"})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}

func TestDeleteDepartment(t *testing.T) {
	store := newFakeDepartmentStore()
	service := NewDepartmentService(store)

	created, err := service.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{Name: "Maths"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteDepartment(context.Background(), created.ID))

	_, err = service.GetDepartmentByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}
