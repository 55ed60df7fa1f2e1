package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/school-erp/school-erp-api/api/swagger"
	"github.com/school-erp/school-erp-api/internal/handler"
	"github.com/school-erp/school-erp-api/internal/middleware"
	"github.com/school-erp/school-erp-api/internal/models"
	"github.com/school-erp/school-erp-api/internal/service"
	"github.com/school-erp/school-erp-api/pkg/config"
)

type routeHandlers struct {
	auth       *handler.AuthHandler
	students   *handler.StudentHandler
	teachers   *handler.TeacherHandler
	classes    *handler.ClassHandler
	attendance *handler.AttendanceHandler
	notices    *handler.NoticeHandler
	fees       *handler.FeeHandler
	exams      *handler.ExamHandler
	charts     *handler.ChartHandler
	dashboard  *handler.DashboardHandler
	pages      *handler.PageHandler
	health     *handler.HealthHandler
	exports    *handler.ExportHandler
}

// registerRoutes lays out the full HTTP surface. The session gate runs
// globally; mutations and edit forms additionally require the teacher or
// admin role.
func registerRoutes(r *gin.Engine, cfg *config.Config, h routeHandlers, metrics *service.MetricsService) {
	staff := middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin)

	// Public pages and auth.
	r.GET("/", h.dashboard.Index)
	r.GET("/home", h.pages.Home)
	r.GET("/teams", h.pages.Teams)
	r.GET("/contact", h.pages.Contact)
	r.GET("/about", h.pages.About)
	r.POST("/login", h.auth.Login)
	r.POST("/signup", h.auth.Signup)
	r.POST("/logout", h.auth.Logout)

	// Diagnostics.
	r.GET("/db-check", h.health.DBCheck)
	r.GET("/health", h.health.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Students.
	r.GET("/students", h.students.List)
	r.GET("/students/export", h.exports.Students)
	r.GET("/students/edit/:id", staff, h.students.EditForm)
	r.POST("/students/add", staff, h.students.Add)
	r.POST("/students/edit/:id", staff, h.students.Edit)
	r.POST("/students/delete/:id", staff, h.students.Delete)

	// Teachers.
	r.GET("/teachers", h.teachers.List)
	r.GET("/teachers/export", h.exports.Teachers)
	r.GET("/teachers/edit/:id", staff, h.teachers.EditForm)
	r.POST("/teachers/add", staff, h.teachers.Add)
	r.POST("/teachers/edit/:id", staff, h.teachers.Edit)
	r.POST("/teachers/delete/:id", staff, h.teachers.Delete)

	// Classes.
	r.GET("/classes", h.classes.List)
	r.GET("/classes/edit/:id", staff, h.classes.EditForm)
	r.POST("/classes/add", staff, h.classes.Add)
	r.POST("/classes/edit/:id", staff, h.classes.Edit)
	r.POST("/classes/delete/:id", staff, h.classes.Delete)

	// Attendance.
	r.GET("/attendance", h.attendance.List)
	r.GET("/attendance/chart-data", h.charts.AttendanceChart)
	r.GET("/attendance/edit/:id", staff, h.attendance.EditForm)
	r.POST("/attendance/add", staff, h.attendance.Add)
	r.POST("/attendance/edit/:id", staff, h.attendance.Edit)
	r.POST("/attendance/delete/:id", staff, h.attendance.Delete)

	// Notices.
	r.GET("/notices", h.notices.List)
	r.GET("/notices/edit/:id", staff, h.notices.EditForm)
	r.POST("/notices/add", staff, h.notices.Add)
	r.POST("/notices/edit/:id", staff, h.notices.Edit)
	r.POST("/notices/delete/:id", staff, h.notices.Delete)

	// Fees.
	r.GET("/fees", h.fees.List)
	r.GET("/fees/chart-data", h.charts.FeesChart)
	r.GET("/fees/export", h.exports.Fees)
	r.GET("/fees/edit/:id", staff, h.fees.EditForm)
	r.POST("/fees/add", staff, h.fees.Add)
	r.POST("/fees/edit/:id", staff, h.fees.Edit)
	r.POST("/fees/delete/:id", staff, h.fees.Delete)

	// Exams.
	r.GET("/exams", h.exams.List)
	r.GET("/exams/edit/:id", staff, h.exams.EditForm)
	r.POST("/exams/add", staff, h.exams.Add)
	r.POST("/exams/edit/:id", staff, h.exams.Edit)
	r.POST("/exams/delete/:id", staff, h.exams.Delete)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
