package main

import (
	"log"

	"github.com/omarfessi/fyyur/config"
	"github.com/omarfessi/fyyur/internal/handler"
	"github.com/omarfessi/fyyur/internal/middleware"
	"github.com/omarfessi/fyyur/internal/monitoring"
	"github.com/omarfessi/fyyur/internal/repository"
	"github.com/omarfessi/fyyur/internal/service"
	"github.com/omarfessi/fyyur/pkg/database"
	"github.com/omarfessi/fyyur/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	venueSvc := service.NewVenueService(venueRepo, showRepo, publisher)
	artistSvc := service.NewArtistService(artistRepo, showRepo, publisher)
	showSvc := service.NewShowService(showRepo, venueRepo, artistRepo, publisher)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			monitoring.ObserveRequest(v.Method, c.Path(), v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"service": "fyyur"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "fyyur"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewVenueHandler(venueSvc).RegisterRoutes(e.Group("/venues"))
	handler.NewArtistHandler(artistSvc).RegisterRoutes(e.Group("/artists"))
	handler.NewShowHandler(showSvc).RegisterRoutes(e.Group("/shows"))

	log.Printf("Fyyur starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
