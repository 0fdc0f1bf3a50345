package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/fenglian/fee-engine/internal/api"
	"github.com/fenglian/fee-engine/internal/catalog"
	"github.com/fenglian/fee-engine/internal/config"
	"github.com/fenglian/fee-engine/internal/document"
	"github.com/fenglian/fee-engine/internal/repository"
	"github.com/fenglian/fee-engine/internal/service"
	"github.com/fenglian/fee-engine/pkg/database"
	"github.com/fenglian/fee-engine/pkg/utils"
)

func main() {
	// Local overrides from .env, ignored when absent
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting fee engine service",
		zap.Int("port", cfg.Server.Port))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Document.OutputDir, 0755); err != nil {
		logger.Fatal("Failed to create document output directory", zap.Error(err))
	}

	serviceCatalog := catalog.Default()
	logger.Info("Service catalog loaded",
		zap.Int("categories", len(serviceCatalog.Categories())),
		zap.Int("items", serviceCatalog.ItemCount()))

	contractRepo := repository.NewContractRepository(db.DB, logger)
	expenseRepo := repository.NewExpenseRepository(db.DB, logger)

	filler := document.NewContractFiller(serviceCatalog, cfg.Document.CompanyName, logger)
	contractService := service.NewContractService(serviceCatalog, contractRepo, filler, logger)
	expenseService := service.NewExpenseService(expenseRepo, logger)

	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := api.NewHandler(serviceCatalog, contractService, expenseService, cfg.Document.OutputDir, logger)
	router := api.NewRouter(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
