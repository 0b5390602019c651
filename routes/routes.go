package routes

import (
	productcontroller "github.com/earlbobfabe09861-ux/newfabes-farm-store/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the catalog API.
//
// Note: the mutation routes carry no authorization. The storefront's admin
// gate is a client-side rendering toggle only; any caller can hit these
// endpoints directly.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(db))
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
