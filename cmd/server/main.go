package main

import (
	"fmt"
	"log"

	"rentintel/internal/config"
	"rentintel/internal/email/noop"
	"rentintel/internal/email/ses"
	"rentintel/internal/extract"
	"rentintel/internal/extract/claude"
	"rentintel/internal/extract/gemini"
	"rentintel/internal/handler"
	"rentintel/internal/ledger"
	"rentintel/internal/port"
	"rentintel/internal/repository/postgres"
	"rentintel/internal/router"
	"rentintel/internal/service"
	s3storage "rentintel/internal/storage/s3"
)

func init() {
	extract.RegisterProvider("gemini", func(cfg *config.ExtractorProviderConfig) (port.EvidenceExtractor, error) {
		return gemini.NewExtractor(cfg), nil
	})
	extract.RegisterProvider("claude", func(cfg *config.ExtractorProviderConfig) (port.EvidenceExtractor, error) {
		return claude.NewExtractor(cfg), nil
	})
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	recordRepo := postgres.NewRecordRepo(db)
	unitRepo := postgres.NewUnitRepo(db)

	// Initialize the extraction chain
	extractor, err := buildExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	// Initialize evidence storage. An empty bucket disables archival.
	var objStorage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		objStorage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize the reminder sender
	var sender port.ReminderSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize auth service: %w", err)
	}
	extractionSvc := service.NewExtractionService(extractor, objStorage, &cfg.S3)
	recordSvc := service.NewRecordService(recordRepo, unitRepo, ledger.NewFinalizer())
	unitSvc := service.NewUnitService(unitRepo, sender)
	portfolioSvc := service.NewPortfolioService(unitRepo, recordRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	extractH := handler.NewExtractHandler(extractionSvc)
	recordH := handler.NewRecordHandler(recordSvc)
	unitH := handler.NewUnitHandler(unitSvc, recordSvc)
	portfolioH := handler.NewPortfolioHandler(portfolioSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, extractH, recordH, unitH, portfolioH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildExtractor wires the primary provider and, when configured, a secondary
// one behind a fallback chain.
func buildExtractor(cfg *config.ExtractorConfig) (port.EvidenceExtractor, error) {
	primary, err := extract.NewExtractor(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := extract.NewExtractor(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return extract.NewFallbackExtractor(
		[]port.EvidenceExtractor{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
