package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sahil00000001/SMFurnishAdmin/config"
	"github.com/sahil00000001/SMFurnishAdmin/internal/clients"
	"github.com/sahil00000001/SMFurnishAdmin/internal/delivery"
	"github.com/sahil00000001/SMFurnishAdmin/internal/middleware"
	"github.com/sahil00000001/SMFurnishAdmin/internal/repository"
	"github.com/sahil00000001/SMFurnishAdmin/internal/usecase"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.Info("Starting SM Furnishing admin server...")
	logger.Infof("External backend target: %s", cfg.BackendBaseURL)

	storage, err := repository.NewMemoryStorage(cfg.AdminUsername, cfg.AdminPassword, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to initialize storage: %v", err)
	}

	backend := clients.NewBackendHTTPClient(cfg.BackendBaseURL, cfg.BackendTimeout, logger)

	productUC := usecase.NewProductUseCase(backend, logger)
	categoryUC := usecase.NewCategoryUseCase(backend, logger)
	orderUC := usecase.NewOrderUseCase(backend, logger)
	authUC := usecase.NewAuthUseCase(storage, logger)

	authHandler := delivery.NewAuthHandler(authUC, logger)
	productHandler := delivery.NewProductHandler(productUC, logger)
	categoryHandler := delivery.NewCategoryHandler(categoryUC, logger)
	orderHandler := delivery.NewOrderHandler(orderUC, logger)

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", delivery.Health)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/products", productHandler.ListProducts)
		api.POST("/products", productHandler.CreateProduct)
		api.GET("/products/:id", productHandler.GetProduct)
		api.PUT("/products/:id", productHandler.UpdateProduct)
		api.DELETE("/products/:id", productHandler.DeleteProduct)

		api.GET("/categories", categoryHandler.ListCategories)
		api.POST("/categories", categoryHandler.CreateCategory)
		api.GET("/categories/:id", categoryHandler.GetCategory)
		api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
	}

	logger.Infof("Admin server listening on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start admin server: %v", err)
		os.Exit(1)
	}
}
