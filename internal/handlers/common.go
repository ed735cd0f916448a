package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"ecomm/internal/events"
)

func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.Publish(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("event publish error: %v", err)
	}
}

func respondData(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, echo.Map{"success": true, "data": data})
}

func respondError(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"success": false, "error": msg})
}
