package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ecomm/internal/handlers"
	"ecomm/internal/middleware"
	"ecomm/internal/token"
)

type Deps struct {
	DB             *gorm.DB
	Tokens         *token.Service
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
}

// Register wires the route table. Only the cart endpoint sits behind the
// token middleware; product mutations are deliberately left open to match
// the historical API surface.
func Register(e *echo.Echo, d *Deps) {
	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)

	e.POST("/products", d.ProductHandler.CreateProduct)
	e.GET("/products", d.ProductHandler.GetProducts)
	e.GET("/products/:id", d.ProductHandler.GetProduct)
	e.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	e.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	e.POST("/cart", d.CartHandler.AddToCart, middleware.RequireToken(d.Tokens, d.DB))
}
