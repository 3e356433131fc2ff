package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/app/services"
	"github.com/mchellal/studia/internal/middleware"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

type stubFormationReader struct {
	formations map[int64]*models.Formation
}

func (s *stubFormationReader) GetByID(_ context.Context, id int64) (*models.Formation, error) {
	formation, ok := s.formations[id]
	if !ok {
		return nil, apperrors.ErrFormationNotFound
	}
	return formation, nil
}

type stubEnrollmentStore struct {
	students   map[int64]bool
	formations *stubFormationReader
	pairs      map[[2]int64]bool
}

func (s *stubEnrollmentStore) Enroll(ctx context.Context, studentID, formationID int64) error {
	if !s.students[studentID] {
		return apperrors.ErrStudentNotFound
	}
	if _, err := s.formations.GetByID(ctx, formationID); err != nil {
		return err
	}
	s.pairs[[2]int64{studentID, formationID}] = true
	return nil
}

func (s *stubEnrollmentStore) IsEnrolled(_ context.Context, studentID, formationID int64) (bool, error) {
	return s.pairs[[2]int64{studentID, formationID}], nil
}

func (s *stubEnrollmentStore) ListFormationsByStudent(_ context.Context, _ int64) ([]models.Formation, error) {
	return []models.Formation{}, nil
}

func (s *stubEnrollmentStore) ListStudentsByFormation(_ context.Context, _ int64) ([]*models.Student, error) {
	return []*models.Student{}, nil
}

func newEnrollTestController() (*FormationController, *stubEnrollmentStore) {
	formations := &stubFormationReader{formations: map[int64]*models.Formation{
		10: {ID: 10, Title: "Algorithms"},
	}}
	store := &stubEnrollmentStore{
		students:   map[int64]bool{1: true},
		formations: formations,
		pairs:      make(map[[2]int64]bool),
	}

	enrollmentService := services.NewEnrollmentService(store, formations, zerolog.Nop())
	return NewFormationController(nil, enrollmentService), store
}

func newEnrollContext(t *testing.T, formationID, studentID string, authenticated *models.Student) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/formations/"+formationID+"/enroll/"+studentID, nil)
	c.Params = gin.Params{
		{Key: "id", Value: formationID},
		{Key: "studentId", Value: studentID},
	}
	if authenticated != nil {
		c.Set(middleware.ContextStudentKey, authenticated)
	}
	return c, recorder
}

func TestEnrollSelf(t *testing.T) {
	controller, store := newEnrollTestController()

	c, recorder := newEnrollContext(t, "10", "1", &models.Student{ID: 1})
	controller.Enroll(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, store.pairs[[2]int64{1, 10}])

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Enrollment successful", body["message"])
}

func TestEnrollAnotherStudentForbidden(t *testing.T) {
	controller, store := newEnrollTestController()

	// Authenticated as student 1, trying to enroll student 2
	c, recorder := newEnrollContext(t, "10", "2", &models.Student{ID: 1})
	controller.Enroll(c)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, store.pairs)
	assert.Contains(t, recorder.Body.String(), "Not authorized to enroll another student")
}

func TestEnrollUnknownFormation(t *testing.T) {
	controller, _ := newEnrollTestController()

	c, recorder := newEnrollContext(t, "999", "1", &models.Student{ID: 1})
	controller.Enroll(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Student or formation not found")
}

func TestEnrollRepeatIsIdempotent(t *testing.T) {
	controller, store := newEnrollTestController()

	for i := 0; i < 2; i++ {
		c, recorder := newEnrollContext(t, "10", "1", &models.Student{ID: 1})
		controller.Enroll(c)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}

	assert.Len(t, store.pairs, 1)
}
