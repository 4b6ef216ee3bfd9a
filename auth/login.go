package auth

import (
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// sessionTTL bounds how long an admin token stays valid.
const sessionTTL = 12 * time.Hour

// Verifier checks an admin credential pair. The login handler takes it
// as a parameter so the credential source stays pluggable.
type Verifier func(email, password string) bool

// EnvVerifier compares against ADMIN_EMAIL / ADMIN_PASSWORD from the
// environment. Both must be set; an unconfigured deployment rejects
// every login instead of accepting empty credentials.
func EnvVerifier(email, password string) bool {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1
	return emailOK && passOK
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/admin-login
func AdminLoginHandler(verify Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		if !verify(req.Email, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}

		token, err := issueAdminToken(req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"token":      token,
			"expires_at": time.Now().Add(sessionTTL),
		})
	}
}

func issueAdminToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"exp":   time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
