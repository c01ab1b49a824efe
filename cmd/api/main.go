package main

import (
	"context"
	"log"
	"time"

	"waste-movements/internal/core/config"
	"waste-movements/internal/core/logger"
	"waste-movements/internal/core/server"
	"waste-movements/internal/core/storage"
	draftadapter "waste-movements/internal/features/drafts/adapters"
	draftdomain "waste-movements/internal/features/drafts/domain"
	drafthandler "waste-movements/internal/features/drafts/handler"
	draftservice "waste-movements/internal/features/drafts/service"
	refadapter "waste-movements/internal/features/refdata/adapters"
	refhandler "waste-movements/internal/features/refdata/handler"
	refports "waste-movements/internal/features/refdata/ports"
	refservice "waste-movements/internal/features/refdata/service"

	"go.uber.org/zap"
)

// @title Waste Movements API
// @version 1.0
// @description Gateway for composing and submitting green list waste export submissions.
// @contact.name API Support
// @contact.email support@wastemovements.example
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the draft store and verify connectivity.
	store, err := storage.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer store.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Draft Service & Handler
	draftRepo := draftadapter.NewRedisDraftRepository(store)
	limits := draftservice.Limits{
		Carriers: cfg.Limits.CarrierLimit,
		Facilities: draftdomain.FacilityLimits{
			InterimSite:      cfg.Limits.InterimSiteLimit,
			RecoveryFacility: cfg.Limits.RecoveryFacilityLimit,
		},
	}
	draftSvc := draftservice.NewDraftService(draftRepo, draftadapter.UUIDGenerator{}, limits)
	draftHdl := drafthandler.NewDraftHandler(draftSvc)

	// Initialize Reference Data Service & Handler
	var refProvider refports.ReferenceDataProvider = refadapter.NewSeededProvider()
	if cfg.ReferenceData.URL != "" {
		refProvider = refadapter.NewRemoteProvider(cfg.ReferenceData.URL)
		l.Info("Using remote reference data source", zap.String("url", cfg.ReferenceData.URL))
	}
	refSvc := refservice.NewReferenceDataService(refProvider)
	refHdl := refhandler.NewReferenceDataHandler(refSvc)

	srv := server.New(cfg)

	// Register Routes
	app := srv.App
	app.Post("/drafts", draftHdl.CreateDraft)
	app.Get("/drafts", draftHdl.GetDrafts)
	app.Get("/drafts/:id", draftHdl.GetDraft)
	app.Delete("/drafts/:id", draftHdl.DeleteDraft)

	app.Get("/drafts/:id/waste-description", draftHdl.GetWasteDescription)
	app.Put("/drafts/:id/waste-description", draftHdl.SetWasteDescription)
	app.Get("/drafts/:id/waste-quantity", draftHdl.GetWasteQuantity)
	app.Put("/drafts/:id/waste-quantity", draftHdl.SetWasteQuantity)
	app.Get("/drafts/:id/exporter-detail", draftHdl.GetExporterDetail)
	app.Put("/drafts/:id/exporter-detail", draftHdl.SetExporterDetail)
	app.Get("/drafts/:id/importer-detail", draftHdl.GetImporterDetail)
	app.Put("/drafts/:id/importer-detail", draftHdl.SetImporterDetail)
	app.Get("/drafts/:id/collection-date", draftHdl.GetCollectionDate)
	app.Put("/drafts/:id/collection-date", draftHdl.SetCollectionDate)
	app.Get("/drafts/:id/collection-detail", draftHdl.GetCollectionDetail)
	app.Put("/drafts/:id/collection-detail", draftHdl.SetCollectionDetail)
	app.Get("/drafts/:id/exit-location", draftHdl.GetExitLocation)
	app.Put("/drafts/:id/exit-location", draftHdl.SetExitLocation)
	app.Get("/drafts/:id/transit-countries", draftHdl.GetTransitCountries)
	app.Put("/drafts/:id/transit-countries", draftHdl.SetTransitCountries)

	app.Get("/drafts/:id/carriers", draftHdl.GetCarriers)
	app.Post("/drafts/:id/carriers", draftHdl.CreateCarrier)
	app.Get("/drafts/:id/carriers/:carrierId", draftHdl.GetCarrier)
	app.Put("/drafts/:id/carriers/:carrierId", draftHdl.SetCarrier)
	app.Delete("/drafts/:id/carriers/:carrierId", draftHdl.DeleteCarrier)

	app.Get("/drafts/:id/recovery-facilities", draftHdl.GetRecoveryFacilities)
	app.Post("/drafts/:id/recovery-facilities", draftHdl.CreateRecoveryFacility)
	app.Get("/drafts/:id/recovery-facilities/:facilityId", draftHdl.GetRecoveryFacility)
	app.Put("/drafts/:id/recovery-facilities/:facilityId", draftHdl.SetRecoveryFacility)
	app.Delete("/drafts/:id/recovery-facilities/:facilityId", draftHdl.DeleteRecoveryFacility)

	app.Get("/drafts/:id/submission-confirmation", draftHdl.GetSubmissionConfirmation)
	app.Put("/drafts/:id/submission-confirmation", draftHdl.SetSubmissionConfirmation)
	app.Get("/drafts/:id/submission-declaration", draftHdl.GetSubmissionDeclaration)
	app.Put("/drafts/:id/submission-declaration", draftHdl.SetSubmissionDeclaration)

	app.Get("/submissions", draftHdl.GetSubmissions)
	app.Get("/submissions/:id", draftHdl.GetSubmission)
	app.Put("/submissions/:id/cancel", draftHdl.CancelSubmission)
	app.Put("/submissions/:id/collection-date", draftHdl.SetSubmissionCollectionDate)
	app.Put("/submissions/:id/waste-quantity", draftHdl.SetSubmissionWasteQuantity)

	app.Get("/reference-data/countries", refHdl.GetCountries)
	app.Get("/reference-data/waste-codes", refHdl.GetWasteCodes)
	app.Get("/reference-data/ewc-codes", refHdl.GetEWCCodes)
	app.Get("/reference-data/pops", refHdl.GetPops)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
