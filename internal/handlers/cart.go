package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecomm/internal/events"
	"ecomm/internal/middleware"
	"ecomm/internal/models"
)

type CartHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

// AddToCart inserts a cart row for the authenticated user, or bumps the
// quantity of the existing one. The insert-or-increment is a single statement
// riding on the (user_id, product_id) unique index, so concurrent adds for
// the same pair always net to one row.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.String(http.StatusUnauthorized, "Invalid Token")
	}

	var req struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error adding item to cart")
	}

	var product models.Product
	if err := h.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.String(http.StatusNotFound, "Product not found")
		}
		c.Logger().Errorf("error adding item to cart: %v", err)
		return c.String(http.StatusInternalServerError, "Error adding item to cart")
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", req.Quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		c.Logger().Errorf("error adding item to cart: %v", err)
		return c.String(http.StatusInternalServerError, "Error adding item to cart")
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(userID), map[string]interface{}{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": req.ProductID,
		"quantity":  req.Quantity,
	})

	return c.String(http.StatusCreated, "Item added to cart successfully")
}
