package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/config"
	"github.com/scholaris/scholaris-backend/internal/handler"
	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	School       *handler.SchoolHandler
	Student      *handler.StudentHandler
	Staff        *handler.StaffHandler
	Parent       *handler.ParentHandler
	Result       *handler.ResultHandler
	Fee          *handler.FeeHandler
	Attendance   *handler.AttendanceHandler
	Announcement *handler.AnnouncementHandler
	Dashboard    *handler.DashboardHandler
	WS           *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
		auth.POST("/change-password", middleware.RequireAuth(authService), handlers.Auth.ChangePassword)
	}

	// ─── 2. Authenticated API (all roles; record access is scoped) ─────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		api.GET("/dashboard", handlers.Dashboard.Stats)

		api.GET("/academic-years", handlers.School.ListAcademicYears)
		api.GET("/academic-years/active", handlers.School.GetActiveAcademicYear)
		api.GET("/classes", handlers.School.ListClasses)
		api.GET("/classes/:id", handlers.School.GetClass)
		api.GET("/subjects", handlers.School.ListSubjects)

		api.GET("/students", handlers.Student.List)
		api.GET("/students/:id", handlers.Student.Get)
		api.GET("/students/:id/results", handlers.Result.ListForStudent)
		api.GET("/students/:id/attendance", handlers.Attendance.StudentHistory)
		api.GET("/students/:id/fees", handlers.Fee.GetLedger)

		api.GET("/results", handlers.Result.List)
		api.GET("/classes/:id/rankings", handlers.Result.ClassRankings)

		api.GET("/fees/structures", handlers.Fee.ListStructures)
		api.GET("/fees/payments", handlers.Fee.ListPayments)

		api.GET("/announcements", handlers.Announcement.List)
		api.GET("/announcements/:id", handlers.Announcement.Get)

		// Staff-facing write endpoints; admin and management included.
		staffAPI := api.Group("")
		staffAPI.Use(middleware.RequireRoles(model.RoleAdmin, model.RoleManagement, model.RoleStaff))
		{
			staffAPI.POST("/results", handlers.Result.Record)
			staffAPI.POST("/attendance", handlers.Attendance.Mark)
			staffAPI.GET("/classes/:id/attendance", handlers.Attendance.ClassSheet)
			staffAPI.GET("/staff", handlers.Staff.List)
			staffAPI.GET("/staff/:id", handlers.Staff.Get)
		}
	}

	// ─── 3. WebSocket Group (token query auth) ─────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/announcements", handlers.WS.AnnouncementFeed)
	}

	// ─── 4. Admin Group (admin and management only) ────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireAuth(authService),
		middleware.RequireRoles(model.RoleAdmin, model.RoleManagement),
	)
	{
		// Reference data
		adminAPI.POST("/academic-years", handlers.School.CreateAcademicYear)
		adminAPI.POST("/classes", handlers.School.CreateClass)
		adminAPI.PUT("/classes/:id", handlers.School.UpdateClass)
		adminAPI.DELETE("/classes/:id", handlers.School.DeleteClass)
		adminAPI.POST("/subjects", handlers.School.CreateSubject)
		adminAPI.DELETE("/subjects/:id", handlers.School.DeleteSubject)

		// People
		adminAPI.POST("/students", handlers.Student.Enroll)
		adminAPI.PUT("/students/:id/class", handlers.Student.AssignClass)
		adminAPI.DELETE("/students/:id", handlers.Student.Delete)
		adminAPI.POST("/students/:id/reset-session", handlers.Auth.ResetStudentSession)
		adminAPI.POST("/staff", handlers.Staff.Register)
		adminAPI.PUT("/staff/:id/subjects", handlers.Staff.AssignSubjects)
		adminAPI.DELETE("/staff/:id", handlers.Staff.Delete)
		adminAPI.POST("/parents", handlers.Parent.Register)
		adminAPI.GET("/parents", handlers.Parent.List)
		adminAPI.GET("/parents/:id", handlers.Parent.Get)
		adminAPI.PUT("/parents/:id/children", handlers.Parent.AssignChildren)
		adminAPI.DELETE("/parents/:id", handlers.Parent.Delete)

		// Results
		adminAPI.DELETE("/results/:id", handlers.Result.Delete)

		// Fees
		adminAPI.POST("/fees/structures", handlers.Fee.CreateStructure)
		adminAPI.DELETE("/fees/structures/:id", handlers.Fee.DeleteStructure)
		adminAPI.POST("/fees/payments", handlers.Fee.ApplyPayment)

		// Announcements
		adminAPI.POST("/announcements", handlers.Announcement.Publish)
		adminAPI.PUT("/announcements/:id/deactivate", handlers.Announcement.Deactivate)
		adminAPI.DELETE("/announcements/:id", handlers.Announcement.Delete)
	}

	return router
}
