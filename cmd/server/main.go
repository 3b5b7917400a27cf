package main

import (
	"net/http"

	"go.uber.org/zap"

	"CleanSort/internal/config"
	"CleanSort/internal/handlers"
	"CleanSort/internal/middleware"
	"CleanSort/internal/ocr"
	"CleanSort/internal/repo"
	"CleanSort/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	itemRepo := repo.NewItemRepository(gormDB)
	reminderRepo := repo.NewReminderRepository(gormDB)
	settingRepo := repo.NewSettingRepository(gormDB)

	itemService := service.NewItemService(itemRepo, reminderRepo, sugar)
	reminderService := service.NewReminderService(itemRepo, reminderRepo, sugar)
	bulkService := service.NewBulkService(reminderService, sugar)
	settingService := service.NewSettingService(settingRepo, itemRepo, reminderRepo, sugar)

	geminiClient := ocr.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, sugar)
	scanService := service.NewScanService(geminiClient, settingService, sugar)

	digestService := service.NewDigestService(reminderService, sugar)
	if err := digestService.Start(cfg.DigestInterval); err != nil {
		sugar.Fatalw("failed to start reminder digest", "error", err)
	}
	defer digestService.Stop()

	h := handlers.NewHandler(itemService, reminderService, bulkService, scanService, settingService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"DigestInterval", cfg.DigestInterval,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
