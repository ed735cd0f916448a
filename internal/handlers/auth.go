package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ecomm/internal/events"
	"ecomm/internal/hash"
	"ecomm/internal/models"
	"ecomm/internal/token"
)

type AuthHandler struct {
	DB       *gorm.DB
	Tokens   *token.Service
	Producer *events.Producer
}

// Register creates a user from the request's "name" field and a bcrypt hash
// of its password. The stored hash is never echoed back.
func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error registering user")
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		c.Logger().Errorf("error registering user: %v", err)
		return c.String(http.StatusInternalServerError, "Error registering user")
	}

	user := models.User{
		Username:     req.Name,
		PasswordHash: passwordHash,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.Logger().Errorf("error registering user: %v", err)
		return c.String(http.StatusInternalServerError, "Error registering user")
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, user)
}

// Login verifies the password against the stored hash and answers with a
// signed token embedding the user id.
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error during login")
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.String(http.StatusUnauthorized, "Invalid credentials")
		}
		c.Logger().Errorf("error during login: %v", err)
		return c.String(http.StatusInternalServerError, "Error during login")
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return c.String(http.StatusUnauthorized, "Invalid credentials")
	}

	signed, err := h.Tokens.Issue(user.ID)
	if err != nil {
		c.Logger().Errorf("error during login: %v", err)
		return c.String(http.StatusInternalServerError, "Error during login")
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{"token": signed})
}
