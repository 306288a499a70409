package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/easyshop/backend/pkg/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	CatalogHandler  *CatalogHTTP
	CategoryHandler *CategoryHTTP
	CartHandler     *CartHTTP
	ProfileHandler  *ProfileHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	guard := middleware.NewGuard(d.JWTSecret)

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)

	products := e.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	adminProducts := products.Group("", guard.RequireAdmin)
	adminProducts.POST("", d.CatalogHandler.CreateProduct)
	adminProducts.PUT("/:id", d.CatalogHandler.UpdateProduct)
	adminProducts.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	categories := e.Group("/categories")
	categories.GET("", d.CategoryHandler.ListCategories)
	categories.GET("/:id", d.CategoryHandler.GetCategory)
	categories.GET("/:id/products", d.CategoryHandler.GetCategoryProducts)

	adminCategories := categories.Group("", guard.RequireAdmin)
	adminCategories.POST("", d.CategoryHandler.CreateCategory)
	adminCategories.PUT("/:id", d.CategoryHandler.UpdateCategory)
	adminCategories.DELETE("/:id", d.CategoryHandler.DeleteCategory)

	profile := e.Group("/profile", guard.RequireAuth)
	profile.GET("", d.ProfileHandler.GetProfile)
	profile.PUT("", d.ProfileHandler.UpdateProfile)

	cart := e.Group("/cart", guard.RequireAuth)
	cart.GET("", d.CartHandler.GetCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/products/:id", d.CartHandler.AddItem)
	cart.PUT("/products/:id", d.CartHandler.UpdateItem)
	cart.DELETE("/products/:id", d.CartHandler.RemoveItem)
}
