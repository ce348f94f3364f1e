package routes

import (
	authapi "servicetrack/internal/api/auth"
	servicesapi "servicetrack/internal/api/services"
	usersapi "servicetrack/internal/api/users"
	"servicetrack/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ✅ Input sanitization on public JSON routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/services", servicesapi.ListServices)
	auth.GET("/services/stats", servicesapi.GetStats)
	auth.POST("/services", servicesapi.CreateService)
	auth.GET("/services/:id", servicesapi.GetService)
	auth.DELETE("/services/:id", servicesapi.DeleteService)

	auth.PUT("/services/:id/status", servicesapi.UpdateStatus)
	auth.PUT("/services/:id/technical", servicesapi.UpdateTechnical)
	auth.POST("/services/:id/notes", servicesapi.AddNote)

	auth.POST("/services/:id/images", servicesapi.UploadImages)
	auth.DELETE("/services/:id/images", servicesapi.RemoveImage)

	auth.GET("/services/:id/export/txt", servicesapi.ExportText)
	auth.GET("/services/:id/export/pdf", servicesapi.ExportPDF)
}
