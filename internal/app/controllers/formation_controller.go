package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/app/services"
	"github.com/mchellal/studia/internal/middleware"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

// FormationController handles formation and enrollment endpoints
type FormationController struct {
	formationService  *services.FormationService
	enrollmentService *services.EnrollmentService
}

// NewFormationController creates a new FormationController
func NewFormationController(formationService *services.FormationService, enrollmentService *services.EnrollmentService) *FormationController {
	return &FormationController{
		formationService:  formationService,
		enrollmentService: enrollmentService,
	}
}

// CreateFormation creates a new formation
// @Summary Create formation
// @Tags formations
// @Accept json
// @Produce json
// @Param request body dto.CreateFormationRequest true "Formation data"
// @Success 201 {object} models.Formation
// @Failure 404 {object} dto.ErrorResponse
// @Router /formations [post]
func (c *FormationController) CreateFormation(ctx *gin.Context) {
	var req dto.CreateFormationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	formation, err := c.formationService.CreateFormation(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, formation)
}

// GetFormations lists formations
func (c *FormationController) GetFormations(ctx *gin.Context) {
	skip, limit := paginationParams(ctx)

	formations, err := c.formationService.GetFormations(ctx.Request.Context(), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, formations)
}

// GetFormationByID returns a single formation
func (c *FormationController) GetFormationByID(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	formation, err := c.formationService.GetFormationByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, formation)
}

// UpdateFormation updates a formation (admin only)
func (c *FormationController) UpdateFormation(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateFormationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	formation, err := c.formationService.UpdateFormation(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, formation)
}

// DeleteFormation deletes a formation (admin only)
func (c *FormationController) DeleteFormation(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.formationService.DeleteFormation(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Formation deleted"})
}

// Enroll links the authenticated student to a formation. Students may only
// enroll themselves; re-enrolling is a no-op.
// @Summary Enroll in formation
// @Tags formations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Formation ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /formations/{id}/enroll/{studentId} [post]
func (c *FormationController) Enroll(ctx *gin.Context) {
	formationID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, ok := middleware.CurrentStudent(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	if student.ID != studentID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Not authorized to enroll another student")))
		return
	}

	if err := c.enrollmentService.Enroll(ctx.Request.Context(), studentID, formationID); err != nil {
		// Either endpoint missing collapses to a single not-found response
		if isEnrollmentTargetMissing(err) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student or formation not found")))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Enrollment successful"})
}

// GetEnrolledStudents lists the students enrolled in a formation (admin only)
func (c *FormationController) GetEnrolledStudents(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, err := c.enrollmentService.ListStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

func isEnrollmentTargetMissing(err error) bool {
	return errors.Is(err, apperrors.ErrStudentNotFound) || errors.Is(err, apperrors.ErrFormationNotFound)
}
