package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Govind-619/Storefront/api"
	"github.com/Govind-619/Storefront/checkout"
	"github.com/Govind-619/Storefront/config"
	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/geography"
	"github.com/Govind-619/Storefront/promotion"
	"github.com/Govind-619/Storefront/routes"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// promotionStore picks the deadline store named by PROMOTION_STORE
func promotionStore(cfg *config.Config) (controllers.StoreProvider, func(), error) {
	switch cfg.PromotionStore {
	case config.StoreMemory:
		return controllers.SharedStoreProvider(promotion.NewMemoryStore()), func() {}, nil
	case config.StoreRedis:
		client, err := config.InitRedis(cfg)
		if err != nil {
			return nil, nil, err
		}
		// keys outlive a full window so a renewal always finds the previous deadline
		store := promotion.NewRedisStore(client, utils.AppName+":", 2*cfg.PromotionDuration)
		return controllers.SharedStoreProvider(store), func() { _ = client.Close() }, nil
	case config.StorePostgres:
		db, err := config.InitDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return controllers.SharedStoreProvider(promotion.NewGormStore(db)), closeDB, nil
	default:
		return controllers.SessionStoreProvider, func() {}, nil
	}
}

func main() {
	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogDir); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	geo := geography.Default()
	if cfg.GeographyFile != "" {
		if geo, err = geography.Load(cfg.GeographyFile); err != nil {
			utils.LogError("Failed to load geography file %s: %v", cfg.GeographyFile, err)
			log.Fatal("Failed to load geography file:", err)
		}
	}

	storeProvider, closeStore, err := promotionStore(cfg)
	if err != nil {
		utils.LogError("Failed to initialize %s promotion store: %v", cfg.PromotionStore, err)
		log.Fatal("Failed to initialize promotion store:", err)
	}
	defer closeStore()

	engine := promotion.NewEngine()
	engine.Duration = cfg.PromotionDuration
	engine.MinRemaining = cfg.PromotionMinRemaining

	drafts := checkout.NewRegistry(cfg.DraftTTL)
	defer drafts.Close()

	ctl := &controllers.Controller{
		API:            api.New(cfg.APIEndpoint, cfg.APITimeout),
		Promotion:      engine,
		Store:          storeProvider,
		PromotionScope: cfg.PromotionScope,
		Drafts:         drafts,
		Geography:      geo,
		Sampler:        promotion.NewSampler(time.Now().UnixNano()),
	}

	router := routes.SetupRouter(cfg, ctl)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.LogInfo("Server starting on port %s (api %s, promotion store %s, scope %s)", cfg.Port, cfg.APIEndpoint, cfg.PromotionStore, cfg.PromotionScope)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	utils.LogInfo("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.LogError("Server shutdown error: %v", err)
	}
}
