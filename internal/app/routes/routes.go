package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mchellal/studia/internal/app/controllers"
	"github.com/mchellal/studia/internal/middleware"
)

// Controllers groups the controller instances wired into the router
type Controllers struct {
	Auth       *controllers.AuthController
	Student    *controllers.StudentController
	Admin      *controllers.AdminController
	Department *controllers.DepartmentController
	Formation  *controllers.FormationController
}

// SetupRoutes registers all API routes
func SetupRoutes(router *gin.Engine, ctrl *Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Authentication
	v1.POST("/token", ctrl.Auth.LoginStudent)

	// Admin surface
	admin := v1.Group("/admin")
	{
		admin.POST("", ctrl.Admin.CreateAdmin)
		admin.POST("/login", ctrl.Auth.LoginAdmin)
		admin.GET("/students", authMW.AdminAuth(), ctrl.Admin.GetStudents)
	}

	// Students
	students := v1.Group("/students")
	{
		students.POST("", ctrl.Student.CreateStudent)
		students.GET("", ctrl.Student.GetStudents)
		students.GET("/me", authMW.StudentAuth(), ctrl.Student.GetCurrentStudent)
		students.GET("/:id", ctrl.Student.GetStudentByID)
		students.DELETE("/:id", authMW.AdminAuth(), ctrl.Student.DeleteStudent)
	}

	// Departments
	departments := v1.Group("/departments")
	{
		departments.POST("", ctrl.Department.CreateDepartment)
		departments.GET("", ctrl.Department.GetDepartments)
		departments.GET("/:id", ctrl.Department.GetDepartmentByID)
		departments.PUT("/:id", authMW.AdminAuth(), ctrl.Department.UpdateDepartment)
		departments.DELETE("/:id", authMW.AdminAuth(), ctrl.Department.DeleteDepartment)
	}

	// Formations and enrollment
	formations := v1.Group("/formations")
	{
		formations.POST("", ctrl.Formation.CreateFormation)
		formations.GET("", ctrl.Formation.GetFormations)
		formations.GET("/:id", ctrl.Formation.GetFormationByID)
		formations.PUT("/:id", authMW.AdminAuth(), ctrl.Formation.UpdateFormation)
		formations.DELETE("/:id", authMW.AdminAuth(), ctrl.Formation.DeleteFormation)
		formations.POST("/:id/enroll/:studentId", authMW.StudentAuth(), ctrl.Formation.Enroll)
		formations.GET("/:id/students", authMW.AdminAuth(), ctrl.Formation.GetEnrolledStudents)
	}
}
