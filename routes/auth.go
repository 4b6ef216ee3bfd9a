package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/admin-login", auth.AdminLoginHandler(auth.EnvVerifier))
	}
}
