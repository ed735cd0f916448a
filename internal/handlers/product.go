package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ecomm/internal/events"
	"ecomm/internal/models"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusInternalServerError, "Error adding product")
	}

	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		c.Logger().Errorf("error adding product: %v", err)
		return respondError(c, http.StatusInternalServerError, "Error adding product")
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	return respondData(c, http.StatusCreated, product)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	var products []models.Product
	if err := h.DB.Find(&products).Error; err != nil {
		c.Logger().Errorf("error fetching products: %v", err)
		return respondError(c, http.StatusInternalServerError, "Error fetching products")
	}

	return respondData(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		c.Logger().Errorf("error fetching product: %v", err)
		return respondError(c, http.StatusInternalServerError, "Error fetching product")
	}

	return respondData(c, http.StatusOK, product)
}

// UpdateProduct replaces all three writable fields of the record.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusInternalServerError, "Error updating product")
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		c.Logger().Errorf("error updating product: %v", err)
		return respondError(c, http.StatusInternalServerError, "Error updating product")
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Description = req.Description

	if err := h.DB.Save(&product).Error; err != nil {
		c.Logger().Errorf("error updating product: %v", err)
		return respondError(c, http.StatusInternalServerError, "Error updating product")
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	return respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		c.Logger().Errorf("error deleting product: %v", err)
		return respondError(c, http.StatusInternalServerError, "Error deleting product")
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		c.Logger().Errorf("error deleting product: %v", err)
		return respondError(c, http.StatusInternalServerError, "Error deleting product")
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(id), map[string]interface{}{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Product deleted successfully"})
}
