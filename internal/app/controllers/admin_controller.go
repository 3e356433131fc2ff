package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/app/services"
	"github.com/mchellal/studia/internal/middleware"
)

// AdminController handles administrator endpoints
type AdminController struct {
	adminService   *services.AdminService
	studentService *services.StudentService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, studentService *services.StudentService) *AdminController {
	return &AdminController{
		adminService:   adminService,
		studentService: studentService,
	}
}

// CreateAdmin registers a new administrator
// @Summary Create admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Admin data"
// @Success 201 {object} models.Admin
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	admin, err := c.adminService.CreateAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, admin)
}

// GetStudents lists all students for administrators
// @Summary List students (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.Student
// @Failure 401 {object} dto.ErrorResponse
// @Router /admin/students [get]
func (c *AdminController) GetStudents(ctx *gin.Context) {
	skip, limit := paginationParams(ctx)

	students, err := c.studentService.GetStudents(ctx.Request.Context(), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}
