package productcontroller

import (
	"net/http"

	"github.com/earlbobfabe09861-ux/newfabes-farm-store/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts returns the full catalog in creation order. Clients filter
// locally, so there are no query parameters.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
