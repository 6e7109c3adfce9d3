package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/config"
	"marketplace_admin/internal/database"
	"marketplace_admin/internal/middleware"
	"marketplace_admin/internal/models"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/router"
	"marketplace_admin/internal/seed"
	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

const archiveTimeout = 3 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Logger
	utils.InitLogger(cfg.LogLevel)

	clock := time.Now
	stores := seed.Stores{
		Staff:      services.NewStaffStore(clock),
		Shops:      services.NewShopStore(clock),
		Products:   services.NewProductStore(clock),
		Promotions: services.NewPromotionStore(clock),
		Reviews:    services.NewReviewStore(clock),
	}

	fixtures, err := seed.LoadFile(cfg.SeedPath)
	if err != nil {
		utils.LogError(err, "Failed to read seed file")
		log.Fatalf("Failed to read seed file: %v", err)
	}

	// Optional Postgres archive for the ledger
	var archive repositories.TransactionArchive
	primeArchive := false
	if cfg.DatabaseURL != "" {
		db, err := database.InitDB(cfg.DatabaseURL)
		if err != nil {
			utils.LogError(err, "Failed to initialize database")
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		if err := database.ApplySchema(db, cfg.SchemaPath); err != nil {
			utils.LogError(err, "Failed to apply database schema")
			log.Fatalf("Failed to apply database schema: %v", err)
		}
		archive = repositories.NewPostgresTransactionArchive(db)

		archived, err := loadArchived(archive)
		if err != nil {
			utils.LogError(err, "Failed to restore archived ledger")
			log.Fatalf("Failed to restore archived ledger: %v", err)
		}
		// A populated archive wins over the fixture ledger.
		if len(archived) > 0 {
			fixtures.Transactions = archived
			utils.LogInfo("Ledger restored from archive", map[string]interface{}{"transactions": len(archived)})
		} else {
			primeArchive = true
		}
	}

	var hook repositories.CommitHook[models.Transaction]
	if archive != nil {
		hook = repositories.ArchiveHook(archive, archiveTimeout)
	}
	stores.Transactions = services.NewTransactionStore(clock, hook)

	if err := fixtures.Apply(stores); err != nil {
		utils.LogError(err, "Failed to seed stores")
		log.Fatalf("Failed to seed stores: %v", err)
	}
	utils.LogInfo("Stores seeded", map[string]interface{}{"path": cfg.SeedPath, "records": fixtures.Count()})

	if primeArchive {
		if err := archiveAll(archive, stores.Transactions.List(nil)); err != nil {
			utils.LogError(err, "Failed to prime transaction archive")
			log.Fatalf("Failed to prime transaction archive: %v", err)
		}
	}

	formatter := utils.NewCurrencyFormatter(cfg.CurrencyLocale, cfg.CurrencyCode)
	staffService := services.NewStaffService(stores.Staff)
	promotionService := services.NewPromotionService(stores.Promotions)
	reviewService := services.NewReviewService(stores.Reviews)
	financeService := services.NewFinanceService(stores.Transactions, formatter, cfg.WeekStart)
	catalogService := services.NewCatalogService(stores.Shops, stores.Products)
	dashboardService := services.NewDashboardService(staffService, promotionService, reviewService, financeService, catalogService, formatter)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader, middleware.RequestTimeHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	// Setup all application routes
	router.Setup(engine, router.Services{
		Staff:      staffService,
		Promotions: promotionService,
		Reviews:    reviewService,
		Finance:    financeService,
		Catalog:    catalogService,
		Dashboard:  dashboardService,
	}, clock)

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port, "week_start": cfg.WeekStart.String()})
	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadArchived(archive repositories.TransactionArchive) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return archive.LoadArchived(ctx)
}

// archiveAll mirrors seeded transactions into an empty archive so both agree from the first run.
func archiveAll(archive repositories.TransactionArchive, txns []models.Transaction) error {
	for _, txn := range txns {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		err := archive.ArchiveTransaction(ctx, txn)
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}
