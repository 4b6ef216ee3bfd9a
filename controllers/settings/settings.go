package settingsControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

type SettingsInput struct {
	LogoURL      string `json:"logo_url"`
	InstagramURL string `json:"instagram_url"`
	ContactPhone string `json:"contact_phone"`
	PixKey       string `json:"pix_key"`
	PixQRCodeURL string `json:"pix_qr_code_url"`
}

// GetSettings returns the single site_settings row. A missing row is not
// an error; the storefront renders zero-value defaults.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		if err := db.First(&settings).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, models.SiteSettings{})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// UpdateSettings upserts the single row from the admin panel form.
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var settings models.SiteSettings
		err := db.First(&settings).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		settings.LogoURL = input.LogoURL
		settings.InstagramURL = input.InstagramURL
		settings.ContactPhone = input.ContactPhone
		settings.PixKey = input.PixKey
		settings.PixQRCodeURL = input.PixQRCodeURL

		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = db.Create(&settings).Error
		} else {
			err = db.Save(&settings).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
