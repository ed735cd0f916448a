package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"ecomm/internal/config"
	"ecomm/internal/events"
	"ecomm/internal/handlers"
	"ecomm/internal/httpserver"
	"ecomm/internal/logging"
	"ecomm/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.LogLevel)

	db := config.OpenDB(cfg, log)

	producer := events.NewProducer(cfg.KafkaAddress)
	defer producer.Close()

	tokens := &token.Service{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	httpserver.Register(e, &httpserver.Deps{
		DB:             db,
		Tokens:         tokens,
		AuthHandler:    &handlers.AuthHandler{DB: db, Tokens: tokens, Producer: producer},
		ProductHandler: &handlers.ProductHandler{DB: db, Producer: producer},
		CartHandler:    &handlers.CartHandler{DB: db, Producer: producer},
	})

	log.Info("server is running", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
