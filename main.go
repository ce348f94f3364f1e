package main

import (
	"log"
	"os"
	"time"

	"servicetrack/config"
	"servicetrack/database"
	routes "servicetrack/internal/app/http"
	"servicetrack/internal/infra/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	if err := storage.Init(config.UPLOAD_DIR, config.PUBLIC_BASE_URL); err != nil {
		log.Fatal("❌ Failed to initialize blob storage:", err)
	}

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded evidence photos are served straight from the blob directory.
	r.Static("/uploads", config.UPLOAD_DIR)

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
