// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(frontendURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", SessionHeader},
		ExposeHeaders:    []string{SessionHeader, "X-Total-Count", "X-Total-Pages", "X-Image-State"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
