package handlers

import (
	"CleanSort/internal/config"
	"CleanSort/internal/middleware"
	"CleanSort/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	reminderService *service.ReminderService,
	bulkService *service.BulkService,
	scanService *service.ScanService,
	settingService *service.SettingService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	itemHandler := NewItemHandler(itemService, logger)
	reminderHandler := NewReminderHandler(reminderService, bulkService, logger)
	scanHandler := NewScanHandler(scanService, logger)
	settingHandler := NewSettingHandler(settingService, logger)

	// Items
	r.Post("/api/items", itemHandler.Create)
	r.Post("/api/items/bulk", itemHandler.CreateBulk)
	r.Get("/api/items", itemHandler.List)
	r.Get("/api/items/{id}", itemHandler.Get)
	r.Patch("/api/items/{id}", itemHandler.Update)
	r.Delete("/api/items/{id}", itemHandler.Delete)

	// Reminders
	r.Get("/api/reminders", reminderHandler.List)
	r.Post("/api/reminders/{id}/done", reminderHandler.MarkDone)
	r.Post("/api/reminders/{id}/snooze", reminderHandler.Snooze)
	r.Delete("/api/reminders/{id}", reminderHandler.Delete)
	r.Post("/api/reminders/bulk/done", reminderHandler.BulkMarkDone)
	r.Post("/api/reminders/bulk/snooze", reminderHandler.BulkSnooze)
	r.Post("/api/reminders/bulk/delete", reminderHandler.BulkDelete)

	// Receipt scanning
	r.Post("/api/scan", scanHandler.ProcessReceipt)

	// Settings and reference data
	r.Get("/api/settings/city", settingHandler.GetCity)
	r.Put("/api/settings/city", settingHandler.PutCity)
	r.Get("/api/settings/onboarding", settingHandler.GetOnboarding)
	r.Post("/api/settings/onboarding", settingHandler.CompleteOnboarding)
	r.Get("/api/settings", settingHandler.GetAll)
	r.Put("/api/settings", settingHandler.PutAll)
	r.Post("/api/data/clear", settingHandler.ClearAll)
	r.Get("/api/data/export", settingHandler.Export)
	r.Get("/api/guides", settingHandler.Guides)
	r.Get("/api/categories", settingHandler.Categories)

	return &Handler{Router: r}
}
